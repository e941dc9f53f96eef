package array

// Returns the index of the first element that is true on the condition.
// Otherwise, returns -1.
func Some[T any](arr []T, cond func(T) bool) int {
	for i, elem := range arr {
		if cond(elem) {
			return i
		}
	}
	return -1
}

// Returns true if the array contains the given value.
func Contains[T comparable](arr []T, value T) bool {
	index := Some(arr, func(elem T) bool {
		return elem == value
	})
	return index > -1
}

// Returns a new array holding transform applied to every element in order.
func Map[T, U any](arr []T, transform func(T) U) []U {
	mapped := make([]U, 0, len(arr))
	for _, elem := range arr {
		mapped = append(mapped, transform(elem))
	}
	return mapped
}
