package grader

import "github.com/Rick999-star/ElecTestSystem/internal/exam"

// Partition splits items into contiguous groups of at most size elements.
// The last group may be shorter. Concatenating the groups in order
// reproduces the input exactly; an empty input yields no groups.
func Partition(items []exam.Item, size int) [][]exam.Item {
	if size <= 0 {
		size = 1
	}

	var groups [][]exam.Item
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		groups = append(groups, items[start:end])
	}
	return groups
}
