package catalog

import "testing"

func TestNewRejectsEmptyCatalog(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("expected error for empty catalog")
	}
}

func TestNewRejectsDoublePricedItem(t *testing.T) {
	_, err := New([]Section{{
		ID:    "x",
		Title: "X",
		Mode:  SinglePrice,
		Items: []Item{{Name: "Bad", Price: 10, Sizes: &SizePrices{Small: 5, Large: 8}}},
	}})
	if err == nil {
		t.Fatal("expected error for item with both pricing shapes")
	}
}

func TestDefaultMenuIsValid(t *testing.T) {
	c := Default()
	if len(c.Sections()) == 0 {
		t.Fatal("default menu is empty")
	}
	if _, ok := c.SectionByID("pizza"); !ok {
		t.Fatal("default menu missing pizza section")
	}
}

func TestMatchSection(t *testing.T) {
	c := Default()

	s, ok := c.MatchSection("pizza")
	if !ok || s.ID != "pizza" {
		t.Fatalf("expected pizza section, got %+v ok=%v", s, ok)
	}

	// list-only boards never match
	if _, ok := c.MatchSection("suppléments"); ok {
		t.Fatal("list-only section should not be orderable")
	}

	if _, ok := c.MatchSection("sushi"); ok {
		t.Fatal("unexpected match for unknown section")
	}
}

func TestMatchItemContainsBothDirections(t *testing.T) {
	c := Default()
	s, _ := c.SectionByID("pizza")

	if it, ok := c.MatchItem(s, "margherita"); !ok || it.Name != "Pizza Margherita" {
		t.Fatalf("partial name should match, got %+v ok=%v", it, ok)
	}
	if it, ok := c.MatchItem(s, "pizza thon extra"); !ok || it.Name != "Pizza Thon" {
		t.Fatalf("full name inside text should match, got %+v ok=%v", it, ok)
	}
	if _, ok := c.MatchItem(s, "couscous"); ok {
		t.Fatal("unexpected item match")
	}
}
