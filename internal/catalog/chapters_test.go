package catalog

import "testing"

func TestCanonTotalsElevenEightyNine(t *testing.T) {
	c := NewChapters(Canon())
	if c.Len() != 1189 {
		t.Fatalf("expected 1189 chapters, got %d", c.Len())
	}
}

func TestChapterIndexKnownPositions(t *testing.T) {
	c := NewChapters(Canon())
	cases := []struct {
		ref  ChapterRef
		want int
	}{
		{ChapterRef{Book: 1, Chapter: 1}, 0},
		{ChapterRef{Book: 1, Chapter: 50}, 49},
		{ChapterRef{Book: 2, Chapter: 1}, 50},
		{ChapterRef{Book: 66, Chapter: 20}, 1186},
		{ChapterRef{Book: 66, Chapter: 22}, 1188},
	}
	for _, tc := range cases {
		if got := c.Index(tc.ref); got != tc.want {
			t.Fatalf("Index(%v) = %d, want %d", tc.ref, got, tc.want)
		}
	}
}

func TestChapterIndexRejectsUnknownKeys(t *testing.T) {
	c := NewChapters(Canon())
	bad := []ChapterRef{
		{Book: 0, Chapter: 1},
		{Book: 67, Chapter: 1},
		{Book: 1, Chapter: 0},
		{Book: 1, Chapter: 51},
	}
	for _, ref := range bad {
		if got := c.Index(ref); got != NotFound {
			t.Fatalf("Index(%v) = %d, want NotFound", ref, got)
		}
	}
}

func TestChapterBijection(t *testing.T) {
	c := NewChapters(Canon())
	for i := 0; i < c.Len(); i++ {
		ref, ok := c.Ref(i)
		if !ok {
			t.Fatalf("Ref(%d) unexpectedly failed", i)
		}
		if got := c.Index(ref); got != i {
			t.Fatalf("Index(Ref(%d)) = %d", i, got)
		}
	}
}

func TestChapterRefOutOfRange(t *testing.T) {
	c := NewChapters(Canon())
	for _, i := range []int{-1, 1189, 5000} {
		if _, ok := c.Ref(i); ok {
			t.Fatalf("Ref(%d) should fail; wrapping is the caller's job", i)
		}
	}
}

func TestNilCatalogFallbacks(t *testing.T) {
	var c *Chapters
	if c.Len() != 0 {
		t.Fatalf("nil catalog length = %d", c.Len())
	}
	if got := c.Index(ChapterRef{Book: 1, Chapter: 1}); got != NotFound {
		t.Fatalf("nil catalog Index = %d, want NotFound", got)
	}
	if _, ok := c.Ref(0); ok {
		t.Fatalf("nil catalog Ref should fail")
	}
	if first := c.First(); first != (ChapterRef{}) {
		t.Fatalf("nil catalog First = %v", first)
	}
}

func TestFirstIsGenesisOne(t *testing.T) {
	c := NewChapters(Canon())
	if got := c.First(); got != (ChapterRef{Book: 1, Chapter: 1}) {
		t.Fatalf("First() = %v", got)
	}
}

func TestChapterRefString(t *testing.T) {
	ref := ChapterRef{Book: 66, Chapter: 20}
	if got := ref.String(); got != "Revelation 20" {
		t.Fatalf("String() = %q", got)
	}
}
