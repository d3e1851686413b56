// Package collections holds small generic slice helpers.
package collections

// Apply applies the applicator function to each item in the input slice.
func Apply[T, V any](items []T, applicator func(T) V) []V {
	result := make([]V, len(items))
	for i, item := range items {
		result[i] = applicator(item)
	}
	return result
}

// Pairs calls fn for each adjacent pair of items, in order.
func Pairs[T any](items []T, fn func(a, b T)) {
	for i := 0; i+1 < len(items); i++ {
		fn(items[i], items[i+1])
	}
}
