package catalog

// PricingMode tells how a section prices its items.
type PricingMode string

const (
	// SinglePrice sections carry one flat price per item.
	SinglePrice PricingMode = "single-price"
	// DualPrice sections carry a small/large price pair per item.
	DualPrice PricingMode = "dual-price"
	// ListOnly sections are displayed but not orderable on their own
	// (e.g. the supplements board).
	ListOnly PricingMode = "list-only"
)

// SizePrices is the small/large price pair of a dual-price item.
type SizePrices struct {
	Small float64 `yaml:"small" json:"small"`
	Large float64 `yaml:"large" json:"large"`
}

// Item is one menu entry. Exactly one pricing shape is populated:
// Price for single-price sections, Sizes for dual-price ones.
type Item struct {
	Name  string      `yaml:"name" json:"name"`
	Price float64     `yaml:"price,omitempty" json:"price,omitempty"`
	Sizes *SizePrices `yaml:"sizes,omitempty" json:"sizes,omitempty"`
}

// HasSizes reports whether the item is priced per size.
func (i Item) HasSizes() bool {
	return i.Sizes != nil
}

// Supplement is a paid extra a section allows on top of an item.
type Supplement struct {
	Name  string  `yaml:"name" json:"name"`
	Price float64 `yaml:"price" json:"price"`
}

// Section groups items under one title with one pricing mode.
// Immutable once loaded.
type Section struct {
	ID          string       `yaml:"id" json:"id"`
	Title       string       `yaml:"title" json:"title"`
	Mode        PricingMode  `yaml:"mode" json:"mode"`
	Items       []Item       `yaml:"items" json:"items"`
	Supplements []Supplement `yaml:"supplements,omitempty" json:"supplements,omitempty"`
	Note        string       `yaml:"note,omitempty" json:"note,omitempty"`
}

// HasSupplements reports whether the section carries an extras rule.
func (s Section) HasSupplements() bool {
	return len(s.Supplements) > 0
}
