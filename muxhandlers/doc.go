// Package muxhandlers provides HTTP handlers and middleware for the mux
// router.
//
// # Static Files
//
// StaticFilesHandler serves files from any fs.FS, with optional directory
// listing and single-page-application fallback. MountStaticFiles registers
// it on a router under a path prefix; the openapi generator excludes the
// same prefix from generated documents by default.
//
//	err := muxhandlers.MountStaticFiles(r, "/static", muxhandlers.StaticFilesConfig{
//	    FS: os.DirFS("./public"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Request ID Middleware
//
// RequestIDMiddleware generates or propagates an X-Request-ID header and
// stores the ID in the request context. UUID v4 and v7 generators are
// provided per RFC 9562.
//
//	r.Use(muxhandlers.RequestIDMiddleware(muxhandlers.RequestIDConfig{}))
//
// # Recovery Middleware
//
// RecoveryMiddleware recovers from panics in downstream handlers, returns
// 500 Internal Server Error, and optionally reports the recovered value
// and stack trace to a callback.
//
//	r.Use(muxhandlers.RecoveryMiddleware(muxhandlers.RecoveryConfig{
//	    LogFunc: func(r *http.Request, err any, stack []byte) {
//	        log.Printf("panic on %s: %v", r.URL.Path, err)
//	    },
//	}))
package muxhandlers
