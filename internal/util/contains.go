package util

import "cmp"

// LinearContains reports whether key is present in the slice, scanning
// front to back.
func LinearContains[T comparable](items []T, key T) bool {
	for _, item := range items {
		if item == key {
			return true
		}
	}
	return false
}

// BinaryContains reports whether key is present in the sorted slice.
// The slice must be in ascending order.
func BinaryContains[T cmp.Ordered](sorted []T, key T) bool {
	low, high := 0, len(sorted)
	for low < high {
		mid := low + (high-low)/2
		switch {
		case key < sorted[mid]:
			high = mid
		case key > sorted[mid]:
			low = mid + 1
		default:
			return true
		}
	}
	return false
}
