package common

// UnknownStr is the String() rendering of out-of-range enum values.
const UnknownStr = "unknown"

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// Duplicates returns, in order of first repetition, every element whose key
// was already seen earlier in the slice.
func Duplicates[S ~[]E, E any, K comparable](s S, key func(E) K) []E {
	seen := make(map[K]struct{}, len(s))

	var dups []E

	for _, e := range s {
		k := key(e)
		if _, ok := seen[k]; ok {
			dups = append(dups, e)
			continue
		}

		seen[k] = struct{}{}
	}

	return dups
}
