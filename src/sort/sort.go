// Package sort orders small in-memory sequences with an exchange (bubble) sort.
//
// Every routine mutates its input in place, except Sorted which works on a copy.
package sort

import "cmp"

type IntArray []int

type Sorter interface {
	Len() int
	Less(i, j int) bool
	Swap(i, j int)
}

func (p IntArray) Len() int { return len(p) }

func (p IntArray) Less(i, j int) bool { return p[i] < p[j] }

func (p IntArray) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

type ordered[T cmp.Ordered] []T

func (p ordered[T]) Len() int { return len(p) }

func (p ordered[T]) Less(i, j int) bool { return cmp.Less(p[i], p[j]) }

func (p ordered[T]) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

// Stats describes the work done by a single sort call.
type Stats struct {
	Passes      int
	Comparisons int
	Swaps       int
}

// Sort orders data in non-decreasing order. It stops after the first pass that
// exchanges nothing, so already sorted input costs a single pass.
func Sort(data Sorter) Stats {
	return bubble(data, true)
}

// SortFixed is like Sort but always runs Len()-1 passes.
func SortFixed(data Sorter) Stats {
	return bubble(data, false)
}

func bubble(data Sorter, early bool) Stats {
	var st Stats
	n := data.Len()
	for pass := 1; pass < n; pass++ {
		st.Passes++
		swapped := false
		// the last pass-1 elements are already in their final place
		for i := 0; i < n-pass; i++ {
			st.Comparisons++
			if data.Less(i+1, i) {
				data.Swap(i, i+1)
				st.Swaps++
				swapped = true
			}
		}
		if early && !swapped {
			break
		}
	}
	return st
}

// Ints sorts a slice of ints in place.
func Ints(a []int) Stats { return Sort(IntArray(a)) }

// Slice sorts any slice of ordered values in place.
func Slice[T cmp.Ordered](s []T) Stats { return Sort(ordered[T](s)) }

// Sorted returns a sorted copy of s. s itself is not modified.
func Sorted[T cmp.Ordered](s []T) []T {
	if s == nil {
		return nil
	}
	c := make([]T, len(s))
	copy(c, s)
	Slice(c)
	return c
}

// IsSorted reports whether data is in non-decreasing order.
func IsSorted(data Sorter) bool {
	for i := data.Len() - 1; i > 0; i-- {
		if data.Less(i, i-1) {
			return false
		}
	}
	return true
}
