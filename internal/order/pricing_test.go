package order

import (
	"testing"

	"sniptaste/internal/catalog"
	"sniptaste/internal/textutil"
)

func TestLineTotalSinglePrice(t *testing.T) {
	it := catalog.Item{Name: "Tacos Poulet", Price: 25}
	extras := []Extra{{Name: "Fromage", UnitPrice: 5}, {Name: "Oeuf", UnitPrice: 3}}

	l := NewLine("Tacos", it, 3, textutil.SizeNone, "Biggy", extras)

	if l.UnitPrice != 33 {
		t.Fatalf("unit price: expected 33, got %f", l.UnitPrice)
	}
	if l.LineTotal != 99 {
		t.Fatalf("line total: expected 99, got %f", l.LineTotal)
	}
}

func TestExtrasOrderingDoesNotChangeTotal(t *testing.T) {
	it := catalog.Item{Name: "Tacos Poulet", Price: 25}
	a := NewLine("Tacos", it, 2, textutil.SizeNone, "", []Extra{{Name: "A", UnitPrice: 5}, {Name: "B", UnitPrice: 3}})
	b := NewLine("Tacos", it, 2, textutil.SizeNone, "", []Extra{{Name: "B", UnitPrice: 3}, {Name: "A", UnitPrice: 5}})

	if a.LineTotal != b.LineTotal {
		t.Fatalf("extras ordering changed total: %f vs %f", a.LineTotal, b.LineTotal)
	}
}

func TestExtrasApplyOncePerLine(t *testing.T) {
	it := catalog.Item{Name: "Kabab", Price: 22}
	l := NewLine("Kabab", it, 4, textutil.SizeNone, "", []Extra{{Name: "Fromage", UnitPrice: 3}})

	// (22 + 3) * 4, never 22*4 + 3*4*extraQty mistakes
	if l.LineTotal != 100 {
		t.Fatalf("expected 100, got %f", l.LineTotal)
	}
}

func TestBasePriceBySize(t *testing.T) {
	it := catalog.Item{Name: "Pizza Margherita", Sizes: &catalog.SizePrices{Small: 25, Large: 45}}

	if p := BasePrice(it, textutil.SizeLarge); p != 45 {
		t.Fatalf("large: expected 45, got %f", p)
	}
	if p := BasePrice(it, textutil.SizeSmall); p != 25 {
		t.Fatalf("small: expected 25, got %f", p)
	}
}

func TestDeliveryFeeOnlyForDelivery(t *testing.T) {
	c := Customer{Method: MethodPickup, DistanceTier: "mid"}
	if DeliveryFee(c) != 0 {
		t.Fatal("pickup must not pay a delivery fee")
	}

	c.Method = MethodDelivery
	if DeliveryFee(c) != 15 {
		t.Fatalf("expected mid tier fee 15, got %f", DeliveryFee(c))
	}

	c.DistanceTier = "nowhere"
	if DeliveryFee(c) != 0 {
		t.Fatal("unknown tier must cost nothing")
	}
}

func TestCartTotal(t *testing.T) {
	cart := []Line{{LineTotal: 30}, {LineTotal: 45.5}}
	if CartTotal(cart) != 75.5 {
		t.Fatalf("expected 75.5, got %f", CartTotal(cart))
	}
}
