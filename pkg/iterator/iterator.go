package iterator

import "iter"

// Collect drains a sequence into a slice.
func Collect[T any](it iter.Seq[T]) []T {
	elems := []T{}
	for value := range it {
		elems = append(elems, value)
	}
	return elems
}

// Collect2 drains a two-valued sequence into a pair of parallel slices.
func Collect2[K, V any](it iter.Seq2[K, V]) ([]K, []V) {
	leftElems := []K{}
	rightElems := []V{}
	for left, right := range it {
		leftElems = append(leftElems, left)
		rightElems = append(rightElems, right)
	}
	return leftElems, rightElems
}
