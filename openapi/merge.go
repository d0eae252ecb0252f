package openapi

// Merge overlays src onto dst in place and returns dst. Keys present in
// both sides merge recursively when both values are maps; in every other
// case the overlay value replaces the base value. Keys only in src are
// added; keys only in dst are untouched. Merge(a, b) and Merge(b, a) can
// differ.
//
//	Merge({"c": {"a": 1}}, {"c": {"b": 2}})  // {"c": {"a": 1, "b": 2}}
//	Merge({"c": 1}, {"c": {"b": 2}})         // {"c": {"b": 2}}
func Merge(dst, src map[string]any) map[string]any {
	for key, overlay := range src {
		base, ok := dst[key]
		if !ok {
			dst[key] = overlay
			continue
		}

		baseMap, baseIsMap := base.(map[string]any)
		overlayMap, overlayIsMap := overlay.(map[string]any)
		if baseIsMap && overlayIsMap {
			Merge(baseMap, overlayMap)
			continue
		}

		dst[key] = overlay
	}
	return dst
}
