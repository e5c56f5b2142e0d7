package order

import "sniptaste/internal/textutil"

// Phase is one named state of the guided ordering flow.
type Phase string

const (
	PhaseIdle             Phase = "idle"
	PhaseBrowsing         Phase = "browsing"
	PhaseAwaitSize        Phase = "await-size"
	PhaseAwaitQuantity    Phase = "await-quantity"
	PhaseAskSauce         Phase = "ask-sauce"
	PhaseAwaitExtras      Phase = "await-extras"
	PhaseCartActions      Phase = "cart-actions"
	PhaseDeliveryMethod   Phase = "delivery-method"
	PhaseDeliveryDistance Phase = "delivery-distance"
	PhaseAddress          Phase = "address"
	PhasePayment          Phase = "payment"
)

// Extra is one chosen paid supplement on a cart line.
type Extra struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
}

// Line is one committed cart entry. Immutable once added; removal
// is whole-line only.
type Line struct {
	Section   string        `json:"section"`
	Item      string        `json:"item"`
	Qty       int           `json:"qty"`
	Size      textutil.Size `json:"size,omitempty"`
	Sauce     string        `json:"sauce,omitempty"`
	Extras    []Extra       `json:"extras,omitempty"`
	UnitPrice float64       `json:"unit_price"`
	LineTotal float64       `json:"line_total"`
}

// Pending is the transient in-progress item pick. It exists only
// between "item chosen" and "added to cart".
type Pending struct {
	Active    bool          `json:"active"`
	SectionID string        `json:"section_id,omitempty"`
	ItemName  string        `json:"item_name,omitempty"`
	Size      textutil.Size `json:"size,omitempty"`
	Qty       int           `json:"qty,omitempty"`
	Sauce     string        `json:"sauce,omitempty"`
}

// Delivery methods and payment choices.
const (
	MethodDelivery = "delivery"
	MethodPickup   = "pickup"

	PaymentCash = "cash"
	PaymentCard = "card"
)

// Customer holds the in-progress checkout answers.
type Customer struct {
	Method       string `json:"method,omitempty"`
	DistanceTier string `json:"distance_tier,omitempty"`
	Address      string `json:"address,omitempty"`
	Payment      string `json:"payment,omitempty"`
}

// State is the full conversation ordering state. The caller owns it;
// the machine never mutates a prior state, every turn returns a new
// value.
type State struct {
	Phase    Phase    `json:"phase"`
	Cart     []Line   `json:"cart,omitempty"`
	Pending  Pending  `json:"pending,omitempty"`
	Customer Customer `json:"customer,omitempty"`
}

// NewState returns a fresh idle state with an empty cart.
func NewState() State {
	return State{Phase: PhaseIdle}
}
