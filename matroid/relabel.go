package matroid

// relabelSlice applies mapping elementwise; elements missing from mapping
// keep their label (identity default).
func relabelSlice[E comparable](mapping map[E]E, xs []E) []E {
	out := make([]E, len(xs))
	for i, e := range xs {
		if v, ok := mapping[e]; ok {
			out[i] = v
		} else {
			out[i] = e
		}
	}

	return out
}

// relabelSets applies mapping to every subset.
func relabelSets[E comparable](mapping map[E]E, sets [][]E) [][]E {
	out := make([][]E, len(sets))
	for i, s := range sets {
		out[i] = relabelSlice(mapping, s)
	}

	return out
}
