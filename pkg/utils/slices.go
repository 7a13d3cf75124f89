package utils

import (
	"iter"
	"slices"
)

// Chunk yields consecutive slices of s of at most size elements.
func Chunk[Slice ~[]E, E any](s Slice, size int) iter.Seq[Slice] {
	if size <= 0 {
		size = max(len(s), 1)
	}
	return slices.Chunk(s, size)
}
