package paginate

import "testing"

func TestTotalPages(t *testing.T) {
	cases := []struct {
		n, size, want int
	}{
		{0, 6, 1},
		{1, 6, 1},
		{6, 6, 1},
		{7, 6, 2},
		{12, 6, 2},
		{13, 6, 3},
		{25, 8, 4},
		{5, 0, 1},
	}
	for _, c := range cases {
		if got := TotalPages(c.n, c.size); got != c.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", c.n, c.size, got, c.want)
		}
	}
}

func TestPage_SliceBounds(t *testing.T) {
	items := make([]int, 0, 20)
	for i := 0; i < 20; i++ {
		items = append(items, i)
	}

	// Every in-range page has length min(size, n-(p-1)*size).
	for p := 1; p <= 4; p++ {
		got, info := Page(items, p, 6)
		wantLen := 6
		if p == 4 {
			wantLen = 2
		}
		if len(got) != wantLen {
			t.Fatalf("page %d: got %d items, want %d", p, len(got), wantLen)
		}
		if got[0] != (p-1)*6 {
			t.Fatalf("page %d starts at %d, want %d", p, got[0], (p-1)*6)
		}
		if info.TotalPages != 4 || info.Total != 20 || info.Page != p {
			t.Fatalf("page %d: unexpected info %+v", p, info)
		}
	}
}

func TestPage_ClampsOutOfRange(t *testing.T) {
	items := []string{"a", "b", "c"}

	got, info := Page(items, 99, 2)
	if info.Page != 2 {
		t.Fatalf("expected clamp to last page 2, got %d", info.Page)
	}
	if len(got) != 1 || got[0] != "c" {
		t.Fatalf("unexpected last page contents: %v", got)
	}

	got, info = Page(items, 0, 2)
	if info.Page != 1 || len(got) != 2 {
		t.Fatalf("expected clamp to first page, got page %d with %v", info.Page, got)
	}
}

func TestPage_StepsBackAfterShrink(t *testing.T) {
	// 7 items at size 6 -> 2 pages; viewer sits on page 2.
	items := []int{1, 2, 3, 4, 5, 6, 7}
	_, info := Page(items, 2, 6)
	if info.Page != 2 {
		t.Fatalf("precondition failed: %+v", info)
	}

	// Deleting the only item on page 2 shrinks the collection to 6; the same
	// page request now lands on page 1, never on an empty page.
	shrunk := items[:6]
	got, info := Page(shrunk, 2, 6)
	if info.Page != 1 {
		t.Fatalf("expected step back to page 1, got %d", info.Page)
	}
	if len(got) != 6 {
		t.Fatalf("expected full page 1, got %d items", len(got))
	}
}

func TestPage_EmptyCollection(t *testing.T) {
	got, info := Page([]int(nil), 3, 6)
	if len(got) != 0 {
		t.Fatalf("expected no items, got %v", got)
	}
	if info.Page != 1 || info.TotalPages != 1 || info.Total != 0 {
		t.Fatalf("unexpected info %+v", info)
	}
}
