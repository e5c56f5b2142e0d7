package order

import (
	"fmt"
	"strconv"
	"strings"

	"sniptaste/internal/catalog"
	"sniptaste/internal/summary"
	"sniptaste/internal/textutil"
)

// Turn is the machine's answer to one inbound message.
type Turn struct {
	Reply   string
	Options []string
	State   State

	// Completed is set only on the finalize transition, so callers
	// can persist the order after the reply goes out.
	Completed *CompletedOrder
}

// CompletedOrder is the finalized order the machine hands back
// alongside its summary reply.
type CompletedOrder struct {
	Summary string
	Total   float64
	Method  string
	Payment string
}

// Machine drives the guided ordering flow over one catalog.
// It is stateless itself; all conversation state travels in State
// values, so one Machine serves any number of conversations.
type Machine struct {
	cat   *catalog.Catalog
	phone string
}

// NewMachine builds a machine over the catalog. phone is the
// order-confirmation number used in the deep link.
func NewMachine(cat *catalog.Catalog, phone string) *Machine {
	return &Machine{cat: cat, phone: phone}
}

// --------------------------------------------------
// KEYWORD SETS
// --------------------------------------------------

var (
	resetWords    = []string{"reset", "annuler", "khwi", "recommencer", "cancel"}
	backWords     = []string{"back", "rje3", "rja3", "retour"}
	addMoreWords  = []string{"zid", "encore", "add", "ajouter"}
	finishWords   = []string{"salina", "safi", "finish", "terminer", "commander", "bon"}
	removeWords   = []string{"7yed", "hyed", "supprimer", "remove", "enlever"}
	deliveryWords = []string{"livraison", "livrer", "delivery", "twsil", "tawsil", "wesslo", "توصيل"}
	pickupWords   = []string{"pickup", "retrait", "emporter", "njib", "nji", "place", "سلبلاصة"}
	cashWords     = []string{"cash", "especes", "khles", "flous", "كاش"}
	cardWords     = []string{"carte", "card", "bita9a", "cb", "بطاقة"}
	yesWords      = []string{"ah", "oui", "yes", "wah", "bghit", "نعم"}
	noWords       = []string{"la", "no", "non", "safi", "makanch", "لا"}
)

var quantityWords = map[string]int{
	"wa7d": 1, "wahd": 1, "wa7da": 1, "un": 1, "une": 1, "one": 1, "واحد": 1,
	"juj": 2, "zouj": 2, "deux": 2, "two": 2, "جوج": 2,
	"tlata": 3, "trois": 3, "three": 3, "تلاتة": 3,
	"rb3a": 4, "rab3a": 4, "quatre": 4, "four": 4, "ربعة": 4,
}

func hasWord(words []string, set []string) bool {
	for _, w := range words {
		for _, k := range set {
			if w == k {
				return true
			}
		}
	}
	return false
}

// --------------------------------------------------
// TURN DISPATCH
// --------------------------------------------------

// Handle processes one inbound message in the guided flow. Every
// phase answers every input; unrecognized input re-prompts without
// touching the cart or the phase.
func (m *Machine) Handle(rawInput string, st State) Turn {
	text := textutil.Normalize(rawInput)
	words := strings.Fields(text)

	// the address phase takes free text, so reset words stay literal there
	if st.Phase != PhaseAddress && hasWord(words, resetWords) {
		return m.idlePrompt(NewState())
	}

	switch st.Phase {
	case PhaseIdle:
		return m.handleIdle(text, st)
	case PhaseBrowsing:
		return m.handleBrowsing(text, words, st)
	case PhaseAwaitSize:
		return m.handleSize(text, st)
	case PhaseAwaitQuantity:
		return m.handleQuantity(words, st)
	case PhaseAskSauce:
		return m.handleSauce(text, st)
	case PhaseAwaitExtras:
		return m.handleExtras(text, words, st)
	case PhaseCartActions:
		return m.handleCartActions(words, st)
	case PhaseDeliveryMethod:
		return m.handleDeliveryMethod(words, st)
	case PhaseDeliveryDistance:
		return m.handleDistance(text, words, st)
	case PhaseAddress:
		return m.handleAddress(rawInput, st)
	case PhasePayment:
		return m.handlePayment(words, st)
	default:
		// unknown phase value means corrupted state
		return m.idlePrompt(NewState())
	}
}

// EnterSection jumps an idle conversation into browsing one section.
// Used when the classifier recognizes a catalog category.
func (m *Machine) EnterSection(sectionID string, st State) Turn {
	s, ok := m.cat.SectionByID(sectionID)
	if !ok || s.Mode == catalog.ListOnly {
		return m.idlePrompt(st)
	}
	return m.browsePrompt(s, st)
}

// --------------------------------------------------
// PHASE HANDLERS
// --------------------------------------------------

func (m *Machine) handleIdle(text string, st State) Turn {
	if s, ok := m.cat.MatchSection(text); ok {
		return m.browsePrompt(s, st)
	}
	return m.idlePrompt(st)
}

func (m *Machine) handleBrowsing(text string, words []string, st State) Turn {
	if hasWord(words, backWords) {
		st.Phase = PhaseIdle
		st.Pending = Pending{}
		return m.idlePrompt(st)
	}

	s, ok := m.cat.SectionByID(st.Pending.SectionID)
	if !ok {
		return m.idlePrompt(NewState())
	}

	size, rest := textutil.ExtractSize(text)
	it, found := m.cat.MatchItem(s, rest)
	if !found {
		return m.browsePrompt(s, st)
	}

	st.Pending.Active = true
	st.Pending.ItemName = it.Name

	if it.HasSizes() {
		if size == textutil.SizeNone {
			st.Phase = PhaseAwaitSize
			return m.sizePrompt(st)
		}
		st.Pending.Size = size
	}

	st.Phase = PhaseAwaitQuantity
	return m.quantityPrompt(st)
}

func (m *Machine) handleSize(text string, st State) Turn {
	if _, _, ok := m.pendingRefs(st); !ok {
		return m.idlePrompt(NewState())
	}

	size, _ := textutil.ExtractSize(text)
	if size == textutil.SizeNone {
		return m.sizePrompt(st)
	}

	st.Pending.Size = size
	st.Phase = PhaseAwaitQuantity
	return m.quantityPrompt(st)
}

func (m *Machine) handleQuantity(words []string, st State) Turn {
	s, _, ok := m.pendingRefs(st)
	if !ok {
		return m.idlePrompt(NewState())
	}

	qty := parseQuantity(words)
	if qty < 1 {
		return m.quantityPrompt(st)
	}
	st.Pending.Qty = qty

	if RequiresSauce(s) {
		st.Phase = PhaseAskSauce
		return m.saucePrompt(s, st)
	}
	if s.HasSupplements() {
		st.Phase = PhaseAwaitExtras
		return m.extrasPrompt(s, st)
	}
	return m.commit(st, nil)
}

func (m *Machine) handleSauce(text string, st State) Turn {
	s, _, ok := m.pendingRefs(st)
	if !ok {
		return m.idlePrompt(NewState())
	}

	sauce, found := MatchSauce(s, text)
	if !found {
		return m.saucePrompt(s, st)
	}
	st.Pending.Sauce = sauce

	if s.HasSupplements() {
		st.Phase = PhaseAwaitExtras
		return m.extrasPrompt(s, st)
	}
	return m.commit(st, nil)
}

func (m *Machine) handleExtras(text string, words []string, st State) Turn {
	s, _, ok := m.pendingRefs(st)
	if !ok {
		return m.idlePrompt(NewState())
	}

	if extras := matchExtras(s, text); len(extras) > 0 {
		return m.commit(st, extras)
	}
	if hasWord(words, noWords) {
		return m.commit(st, nil)
	}
	if hasWord(words, yesWords) {
		// wants extras but did not name one yet
		return m.extrasPrompt(s, st)
	}
	return m.extrasPrompt(s, st)
}

func (m *Machine) handleCartActions(words []string, st State) Turn {
	switch {
	case hasWord(words, removeWords):
		if len(st.Cart) == 0 {
			return m.idlePrompt(st)
		}
		st.Cart = append([]Line{}, st.Cart[:len(st.Cart)-1]...)
		if len(st.Cart) == 0 {
			st.Phase = PhaseIdle
			return m.idlePrompt(st)
		}
		return m.cartPrompt("7yedna lik lakhra mn l'panier 👍", st)

	case hasWord(words, addMoreWords):
		st.Phase = PhaseIdle
		st.Pending = Pending{}
		return m.idlePrompt(st)

	case hasWord(words, finishWords):
		st.Phase = PhaseDeliveryMethod
		return m.deliveryPrompt(st)
	}
	return m.cartPrompt("", st)
}

func (m *Machine) handleDeliveryMethod(words []string, st State) Turn {
	switch {
	case hasWord(words, deliveryWords):
		st.Customer.Method = MethodDelivery
		st.Phase = PhaseDeliveryDistance
		return m.distancePrompt(st)
	case hasWord(words, pickupWords):
		st.Customer.Method = MethodPickup
		st.Phase = PhasePayment
		return m.paymentPrompt(st)
	}
	return m.deliveryPrompt(st)
}

func (m *Machine) handleDistance(text string, words []string, st State) Turn {
	tier, ok := matchTier(text, words)
	if !ok {
		return m.distancePrompt(st)
	}
	st.Customer.DistanceTier = tier.ID
	st.Phase = PhaseAddress
	return m.addressPrompt(st)
}

func (m *Machine) handleAddress(rawInput string, st State) Turn {
	addr := strings.TrimSpace(rawInput)
	if addr == "" {
		return m.addressPrompt(st)
	}
	st.Customer.Address = addr
	st.Phase = PhasePayment
	return m.paymentPrompt(st)
}

func (m *Machine) handlePayment(words []string, st State) Turn {
	switch {
	case hasWord(words, cashWords):
		st.Customer.Payment = PaymentCash
	case hasWord(words, cardWords):
		st.Customer.Payment = PaymentCard
	default:
		return m.paymentPrompt(st)
	}
	return m.finalize(st)
}

// --------------------------------------------------
// COMMIT + FINALIZE
// --------------------------------------------------

func (m *Machine) commit(st State, extras []Extra) Turn {
	s, it, ok := m.pendingRefs(st)
	if !ok {
		return m.idlePrompt(NewState())
	}

	line := NewLine(s.Title, it, st.Pending.Qty, st.Pending.Size, st.Pending.Sauce, extras)

	st.Cart = append(append([]Line{}, st.Cart...), line)
	st.Pending = Pending{}
	st.Phase = PhaseCartActions

	head := fmt.Sprintf("Zedna lik %dx %s (%.2f dh) ✅", line.Qty, line.Item, line.LineTotal)
	return m.cartPrompt(head, st)
}

func (m *Machine) finalize(st State) Turn {
	fee := DeliveryFee(st.Customer)
	subtotal := CartTotal(st.Cart)

	o := summary.Order{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Total:       subtotal + fee,
		Method:      st.Customer.Method,
		Address:     st.Customer.Address,
		Payment:     st.Customer.Payment,
	}
	if t, ok := TierByID(st.Customer.DistanceTier); ok {
		o.DistanceLabel = t.Label
	}
	for _, l := range st.Cart {
		names := make([]string, 0, len(l.Extras))
		for _, e := range l.Extras {
			names = append(names, e.Name)
		}
		o.Lines = append(o.Lines, summary.Line{
			Qty:       l.Qty,
			Name:      l.Item,
			Size:      string(l.Size),
			Sauce:     l.Sauce,
			Extras:    names,
			LineTotal: l.LineTotal,
		})
	}

	text := summary.Render(o)
	link := summary.DeepLink(m.phone, text)

	reply := text + "\nSift lina la commande hna bach nconfirmiw: " + link + "\nChokran bzaf! 🙏"
	return Turn{
		Reply:   reply,
		Options: m.cat.SectionTitles(),
		State:   NewState(),
		Completed: &CompletedOrder{
			Summary: text,
			Total:   o.Total,
			Method:  o.Method,
			Payment: o.Payment,
		},
	}
}

// pendingRefs resolves the pending selection back to catalog data.
// A selection that no longer resolves means corrupted state; callers
// soft-reset to idle.
func (m *Machine) pendingRefs(st State) (catalog.Section, catalog.Item, bool) {
	if !st.Pending.Active {
		return catalog.Section{}, catalog.Item{}, false
	}
	s, ok := m.cat.SectionByID(st.Pending.SectionID)
	if !ok {
		return catalog.Section{}, catalog.Item{}, false
	}
	for _, it := range s.Items {
		if it.Name == st.Pending.ItemName {
			return s, it, true
		}
	}
	return catalog.Section{}, catalog.Item{}, false
}

// --------------------------------------------------
// PARSERS
// --------------------------------------------------

func parseQuantity(words []string) int {
	for _, w := range words {
		if n, err := strconv.Atoi(w); err == nil && n >= 1 {
			return n
		}
		if n, ok := quantityWords[w]; ok {
			return n
		}
	}
	return 0
}

func matchExtras(s catalog.Section, text string) []Extra {
	var extras []Extra
	for _, sup := range s.Supplements {
		name := textutil.Normalize(sup.Name)
		if strings.Contains(text, name) {
			extras = append(extras, Extra{Name: sup.Name, UnitPrice: sup.Price})
		}
	}
	return extras
}

func matchTier(text string, words []string) (DistanceTier, bool) {
	// accept the tier number directly
	for i, t := range Tiers {
		if hasWord(words, []string{strconv.Itoa(i + 1)}) {
			return t, true
		}
	}
	tierWords := [][]string{
		{"qrib", "proche", "near", "قريب"},
		{"mabin", "bin", "moyen", "mid", "وسط"},
		{"b3id", "loin", "far", "بعيد"},
	}
	for i, set := range tierWords {
		if hasWord(words, set) {
			return Tiers[i], true
		}
	}
	// full label typed back
	for _, t := range Tiers {
		if textutil.Normalize(t.Label) == text {
			return t, true
		}
	}
	return DistanceTier{}, false
}

// --------------------------------------------------
// PROMPTS
// --------------------------------------------------

func (m *Machine) idlePrompt(st State) Turn {
	return Turn{
		Reply:   "Chno bghiti takol lyoum? 😋 Khtar mn l'menu:",
		Options: m.cat.SectionTitles(),
		State:   st,
	}
}

func (m *Machine) browsePrompt(s catalog.Section, st State) Turn {
	var b strings.Builder
	b.WriteString("Hahoma " + s.Title + " li 3andna:\n")
	for _, it := range s.Items {
		if it.HasSizes() {
			b.WriteString(fmt.Sprintf("- %s: %.0f / %.0f dh\n", it.Name, it.Sizes.Small, it.Sizes.Large))
		} else {
			b.WriteString(fmt.Sprintf("- %s: %.0f dh\n", it.Name, it.Price))
		}
	}
	if s.Note != "" {
		b.WriteString("ℹ️ " + s.Note + "\n")
	}
	b.WriteString("Ama wa7d bghiti?")

	st.Phase = PhaseBrowsing
	st.Pending = Pending{SectionID: s.ID}

	return Turn{
		Reply:   b.String(),
		Options: append(catalog.ItemNames(s), "Rje3"),
		State:   st,
	}
}

func (m *Machine) sizePrompt(st State) Turn {
	return Turn{
		Reply:   "Kbira wla sghira? 📏",
		Options: []string{"Kbira", "Sghira"},
		State:   st,
	}
}

func (m *Machine) quantityPrompt(st State) Turn {
	return Turn{
		Reply:   "Ch7al bghiti mn wa7da? 🔢",
		Options: []string{"1", "2", "3", "4"},
		State:   st,
	}
}

func (m *Machine) saucePrompt(s catalog.Section, st State) Turn {
	return Turn{
		Reply:   "Ama sauce bghiti? 🥫",
		Options: SauceList(s),
		State:   st,
	}
}

func (m *Machine) extrasPrompt(s catalog.Section, st State) Turn {
	opts := make([]string, 0, len(s.Supplements)+1)
	for _, sup := range s.Supplements {
		opts = append(opts, fmt.Sprintf("%s (+%.0f dh)", sup.Name, sup.Price))
	}
	opts = append(opts, "La, safi")

	return Turn{
		Reply:   "Bghiti chi supplément? 🧀",
		Options: opts,
		State:   st,
	}
}

func (m *Machine) cartPrompt(head string, st State) Turn {
	reply := fmt.Sprintf("L'panier dyalek: %d, total %.2f dh.\nZid chi 7aja khra wla salina?", len(st.Cart), CartTotal(st.Cart))
	if head != "" {
		reply = head + "\n" + reply
	}
	return Turn{
		Reply:   reply,
		Options: []string{"Zid 7aja khra", "Salina", "7yed lakhra"},
		State:   st,
	}
}

func (m *Machine) deliveryPrompt(st State) Turn {
	return Turn{
		Reply:   "Livraison wla ghadi tji tjib? 🛵",
		Options: []string{"Livraison", "Pickup"},
		State:   st,
	}
}

func (m *Machine) distancePrompt(st State) Turn {
	opts := make([]string, 0, len(Tiers))
	for _, t := range Tiers {
		opts = append(opts, fmt.Sprintf("%s (%.0f dh)", t.Label, t.Fee))
	}
	return Turn{
		Reply:   "Ch7al b3id 3lina? 📍",
		Options: opts,
		State:   st,
	}
}

func (m *Machine) addressPrompt(st State) Turn {
	return Turn{
		Reply:   "3tini l'adresse dyalek kamla 🏠",
		Options: nil,
		State:   st,
	}
}

func (m *Machine) paymentPrompt(st State) Turn {
	return Turn{
		Reply:   "Kifach bghiti tkhelles? 💳",
		Options: []string{"Cash", "Carte"},
		State:   st,
	}
}
