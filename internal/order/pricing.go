package order

import (
	"sniptaste/internal/catalog"
	"sniptaste/internal/textutil"
)

// BasePrice resolves the item's base price: the single price, or the
// size-selected member of its pair.
func BasePrice(it catalog.Item, size textutil.Size) float64 {
	if !it.HasSizes() {
		return it.Price
	}
	if size == textutil.SizeLarge {
		return it.Sizes.Large
	}
	return it.Sizes.Small
}

// NewLine builds a committed cart line with its computed totals.
// Extras apply once per line, never multiplied by quantity.
func NewLine(sectionTitle string, it catalog.Item, qty int, size textutil.Size, sauce string, extras []Extra) Line {
	unit := BasePrice(it, size)
	for _, e := range extras {
		unit += e.UnitPrice
	}
	return Line{
		Section:   sectionTitle,
		Item:      it.Name,
		Qty:       qty,
		Size:      size,
		Sauce:     sauce,
		Extras:    extras,
		UnitPrice: unit,
		LineTotal: unit * float64(qty),
	}
}

// CartTotal sums the line totals. The delivery fee is never part of
// a line.
func CartTotal(cart []Line) float64 {
	var total float64
	for _, l := range cart {
		total += l.LineTotal
	}
	return total
}

// DistanceTier is one flat-fee delivery distance band.
type DistanceTier struct {
	ID    string
	Label string
	Fee   float64
}

// Tiers are the three delivery distance bands, in prompt order.
var Tiers = []DistanceTier{
	{ID: "near", Label: "Qrib (aqal mn 2km)", Fee: 10},
	{ID: "mid", Label: "Mabin 2km w 5km", Fee: 15},
	{ID: "far", Label: "B3id (ktar mn 5km)", Fee: 20},
}

// TierByID returns the tier for a stored tier id.
func TierByID(id string) (DistanceTier, bool) {
	for _, t := range Tiers {
		if t.ID == id {
			return t, true
		}
	}
	return DistanceTier{}, false
}

// DeliveryFee is the flat fee for the chosen tier, zero for pickup
// or an unknown tier.
func DeliveryFee(c Customer) float64 {
	if c.Method != MethodDelivery {
		return 0
	}
	t, ok := TierByID(c.DistanceTier)
	if !ok {
		return 0
	}
	return t.Fee
}
