package trend

import (
	"errors"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		n    int
		want []Segment
	}{
		{n: 3, want: []Segment{{0, 1}, {1, 2}, {2, 3}}},
		{n: 6, want: []Segment{{0, 2}, {2, 4}, {4, 6}}},
		{n: 7, want: []Segment{{0, 3}, {3, 5}, {5, 7}}},
		{n: 8, want: []Segment{{0, 3}, {3, 6}, {6, 8}}},
		{n: 9, want: []Segment{{0, 3}, {3, 6}, {6, 9}}},
		{n: 12, want: []Segment{{0, 4}, {4, 8}, {8, 12}}},
	}

	for _, tt := range tests {
		got, err := Split(tt.n)
		if err != nil {
			t.Errorf("Split(%d): unexpected error: %v", tt.n, err)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("Split(%d) = %v, want %v", tt.n, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Split(%d)[%d] = %v, want %v", tt.n, i, got[i], tt.want[i])
			}
		}
	}
}

func TestSplitPartitionProperties(t *testing.T) {
	for n := 3; n <= 100; n++ {
		segments, err := Split(n)
		if err != nil {
			t.Fatalf("Split(%d): unexpected error: %v", n, err)
		}
		if len(segments) != 3 {
			t.Fatalf("Split(%d): got %d segments, want 3", n, len(segments))
		}

		// Contiguous and exhaustive over [0, n).
		if segments[0].Start != 0 {
			t.Errorf("Split(%d): first segment starts at %d", n, segments[0].Start)
		}
		if segments[2].End != n {
			t.Errorf("Split(%d): last segment ends at %d, want %d", n, segments[2].End, n)
		}
		total := 0
		for i, seg := range segments {
			total += seg.Len()
			if i > 0 && seg.Start != segments[i-1].End {
				t.Errorf("Split(%d): gap or overlap between segment %d and %d", n, i-1, i)
			}
		}
		if total != n {
			t.Errorf("Split(%d): segment lengths sum to %d", n, total)
		}

		// Lengths differ pairwise by at most one.
		for i := range segments {
			for j := range segments {
				if diff := segments[i].Len() - segments[j].Len(); diff > 1 || diff < -1 {
					t.Errorf("Split(%d): segment lengths %d and %d differ by more than 1",
						n, segments[i].Len(), segments[j].Len())
				}
			}
		}
	}
}

func TestSplitInsufficientData(t *testing.T) {
	for _, n := range []int{0, 1, 2} {
		_, err := Split(n)
		var ide *InsufficientDataError
		if !errors.As(err, &ide) {
			t.Errorf("Split(%d): got %v, want InsufficientDataError", n, err)
		}
	}
}

func TestSplitDeterministic(t *testing.T) {
	first, err := Split(11)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Split(11)
	if err != nil {
		t.Fatal(err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Split(11) not deterministic: %v vs %v", first, second)
		}
	}
}
