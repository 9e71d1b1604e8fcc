package merger

// overlap returns the length in runes of the longest suffix of previous that is
// also a prefix of current. It runs in O(len(previous)+len(current)) using the
// prefix function of current.
func overlap(previous, current []rune) int {
	if len(previous) == 0 || len(current) == 0 {
		return 0
	}

	fail := prefixFunction(current)

	matched := 0
	for _, r := range previous {
		for matched > 0 && (matched == len(current) || current[matched] != r) {
			matched = fail[matched-1]
		}
		if current[matched] == r {
			matched++
		}
	}
	return matched
}

// prefixFunction returns, for each i, the length of the longest proper prefix
// of s[:i+1] that is also its suffix.
func prefixFunction(s []rune) []int {
	fail := make([]int, len(s))
	k := 0
	for i := 1; i < len(s); i++ {
		for k > 0 && s[i] != s[k] {
			k = fail[k-1]
		}
		if s[i] == s[k] {
			k++
		}
		fail[i] = k
	}
	return fail
}
