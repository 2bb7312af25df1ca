package automaton

// words returns every word over alphabet of length at most maxLen,
// the empty word included.
func words(alphabet []rune, maxLen int) []string {
	out := []string{""}
	frontier := []string{""}
	for n := 0; n < maxLen; n++ {
		var next []string
		for _, prefix := range frontier {
			for _, r := range alphabet {
				next = append(next, prefix+string(r))
			}
		}
		out = append(out, next...)
		frontier = next
	}
	return out
}
