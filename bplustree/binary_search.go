package bplus

// lowerBound returns the first index whose key is >= target.
func lowerBound[K any](keys []K, target K, cmp func(a, b K) int) int {
	lo, hi := 0, len(keys)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if cmp(keys[mid], target) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// upperBound returns the first index whose key is > target.
// Used for child routing: a key equal to a separator goes right.
func upperBound[K any](keys []K, target K, cmp func(a, b K) int) int {
	lo, hi := 0, len(keys)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if cmp(keys[mid], target) <= 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// binarySearch returns the index of target and whether it is present.
// When absent the index is the sorted insertion point.
func binarySearch[K any](keys []K, target K, cmp func(a, b K) int) (int, bool) {
	i := lowerBound(keys, target, cmp)
	return i, i < len(keys) && cmp(keys[i], target) == 0
}
