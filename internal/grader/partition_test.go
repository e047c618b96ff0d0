package grader

import (
	"fmt"
	"testing"

	"github.com/Rick999-star/ElecTestSystem/internal/exam"
)

func makeItems(n int) []exam.Item {
	items := make([]exam.Item, n)
	for i := range items {
		items[i] = exam.Item{QuestionID: fmt.Sprintf("q%d", i+1), Points: 1}
	}
	return items
}

func TestPartition_Sizes(t *testing.T) {
	tests := []struct {
		length, size int
		wantGroups   int
		wantLast     int
	}{
		{0, 10, 0, 0},
		{1, 10, 1, 1},
		{10, 10, 1, 10},
		{11, 10, 2, 1},
		{15, 10, 2, 5},
		{15, 4, 4, 3},
		{9, 1, 9, 1},
	}

	for _, tt := range tests {
		groups := Partition(makeItems(tt.length), tt.size)
		if len(groups) != tt.wantGroups {
			t.Errorf("Partition(%d items, size %d): %d groups, want %d",
				tt.length, tt.size, len(groups), tt.wantGroups)
			continue
		}
		if tt.wantGroups == 0 {
			continue
		}
		for i, g := range groups[:len(groups)-1] {
			if len(g) != tt.size {
				t.Errorf("group %d has %d items, want %d", i, len(g), tt.size)
			}
		}
		if last := groups[len(groups)-1]; len(last) != tt.wantLast {
			t.Errorf("last group has %d items, want %d", len(last), tt.wantLast)
		}
	}
}

func TestPartition_ConcatenationReproducesInput(t *testing.T) {
	items := makeItems(13)
	groups := Partition(items, 5)

	var flat []exam.Item
	for _, g := range groups {
		flat = append(flat, g...)
	}
	if len(flat) != len(items) {
		t.Fatalf("concatenation has %d items, want %d", len(flat), len(items))
	}
	for i := range items {
		if flat[i].QuestionID != items[i].QuestionID {
			t.Errorf("position %d: got %s, want %s", i, flat[i].QuestionID, items[i].QuestionID)
		}
	}
}

func TestPartition_NonPositiveSize(t *testing.T) {
	groups := Partition(makeItems(3), 0)
	if len(groups) != 3 {
		t.Fatalf("size 0 should degrade to 1, got %d groups", len(groups))
	}
}
