package pager

import "testing"

func TestWrapStaysInRange(t *testing.T) {
	cases := []struct {
		i, n, want int
	}{
		{0, 1189, 0},
		{1188, 1189, 1188},
		{1189, 1189, 0},
		{-1, 1189, 1188},
		{-3, 1189, 1186},
		{1191, 1189, 2},
		{-2378, 1189, 0},
		{5945, 1189, 0},
		{7, 1, 0},
		{-7, 1, 0},
	}
	for _, tc := range cases {
		if got := Wrap(tc.i, tc.n); got != tc.want {
			t.Fatalf("Wrap(%d, %d) = %d, want %d", tc.i, tc.n, got, tc.want)
		}
	}
}

func TestWrapPeriodicity(t *testing.T) {
	for _, n := range []int{1, 2, 5, 7, 1189} {
		for _, i := range []int{-1000000, -17, 0, 3, 999983} {
			base := Wrap(i, n)
			if base < 0 || base >= n {
				t.Fatalf("Wrap(%d, %d) = %d outside [0, %d)", i, n, base, n)
			}
			for _, k := range []int{-3, -1, 1, 4} {
				if got := Wrap(i+k*n, n); got != base {
					t.Fatalf("Wrap(%d+%d*%d, %d) = %d, want %d", i, k, n, n, got, base)
				}
			}
		}
	}
}

func TestWrapEmptyCatalog(t *testing.T) {
	if got := Wrap(42, 0); got != 0 {
		t.Fatalf("Wrap with n=0 = %d, want 0", got)
	}
	if got := Wrap(42, -5); got != 0 {
		t.Fatalf("Wrap with negative n = %d, want 0", got)
	}
}

func TestSlotIndexAroundCenter(t *testing.T) {
	// W=7, C=3, centered on Genesis 1 (index 0): the ring supplies
	// Revelation chapters to the left and Genesis chapters to the right.
	wants := []int{1186, 1187, 1188, 0, 1, 2, 3}
	for slot, want := range wants {
		if got := SlotIndex(slot, 0, 7, 1189); got != want {
			t.Fatalf("SlotIndex(%d, 0, 7, 1189) = %d, want %d", slot, got, want)
		}
	}
}

func TestCenter(t *testing.T) {
	if got := Center(7); got != 3 {
		t.Fatalf("Center(7) = %d", got)
	}
	if got := Center(5); got != 2 {
		t.Fatalf("Center(5) = %d", got)
	}
}
