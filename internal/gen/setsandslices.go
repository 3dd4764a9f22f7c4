//    CrisisCompass
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

//
// SETS AND SLICES
//

// Unique - return only the unique items from a slice; the order of the results is not stable
func Unique[T comparable](s []T) []T {
	set := make(map[T]struct{})
	for i := 0; i < len(s); i++ {
		set[s[i]] = struct{}{}
	}

	var result []T
	for k := range set {
		result = append(result, k)
	}

	return result
}

// StableUnique - return only the unique items from a slice, keeping first-appearance order
func StableUnique[T comparable](s []T) []T {
	seen := make(map[T]struct{}, len(s))
	var result []T
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}
