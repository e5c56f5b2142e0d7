package engine

import (
	"strings"
	"testing"

	"sniptaste/internal/catalog"
	"sniptaste/internal/classifier"
	"sniptaste/internal/knowledge"
	"sniptaste/internal/order"
)

func newTestEngine() *Engine {
	cat := catalog.Default()
	cls := classifier.New(knowledge.Build(cat), classifier.WithRand(func(n int) int { return 0 }))
	return New(cat, "212661234567", WithClassifier(cls))
}

func TestNoCatalogDegradesGracefully(t *testing.T) {
	e := New(nil, "212661234567")

	res := e.Process("pizza", order.NewState())
	if res.Reply == "" {
		t.Fatal("expected a graceful no-menu reply")
	}
	if res.State.Phase != order.PhaseIdle {
		t.Fatalf("state must not change, got %+v", res.State)
	}
}

func TestIdlePizzaRoutesToCategory(t *testing.T) {
	e := newTestEngine()

	res := e.Process("pizza", order.NewState())

	if res.Intent != "category:pizza" {
		t.Fatalf("expected pizza category intent, got %q", res.Intent)
	}
	if res.State.Phase != order.PhaseBrowsing {
		t.Fatalf("expected browsing phase, got %s", res.State.Phase)
	}
	if !strings.Contains(res.Reply, "Pizza Margherita") {
		t.Fatalf("reply should list pizza items: %q", res.Reply)
	}
}

func TestMorningGreetingLeavesStateUntouched(t *testing.T) {
	e := newTestEngine()

	res := e.Process("sbah lkhir", order.NewState())

	if res.Intent != "greeting_morning" {
		t.Fatalf("expected morning greeting, got %q", res.Intent)
	}
	if res.Reply == "" {
		t.Fatal("expected scripted greeting reply")
	}
	if res.State.Phase != order.PhaseIdle || len(res.State.Cart) != 0 {
		t.Fatalf("greeting must not touch order state: %+v", res.State)
	}
}

func TestGuidedPhaseAlwaysWins(t *testing.T) {
	e := newTestEngine()

	// reach the address phase, then send something the classifier
	// would otherwise claim with high confidence
	st := order.NewState()
	for _, in := range []string{"jus", "Panaché", "1", "salina", "livraison", "qrib"} {
		st = e.Process(in, st).State
	}
	if st.Phase != order.PhaseAddress {
		t.Fatalf("setup failed, expected address phase, got %s", st.Phase)
	}

	res := e.Process("salam sbah lkhir", st)
	if res.State.Phase != order.PhasePayment {
		t.Fatalf("guided flow must consume the input as an address, got %s", res.State.Phase)
	}
	if res.State.Customer.Address != "salam sbah lkhir" {
		t.Fatalf("address not captured: %+v", res.State.Customer)
	}
}

func TestLowConfidenceFallsThroughToMenu(t *testing.T) {
	e := newTestEngine()

	res := e.Process("chi haja okhra mafhamtch", order.NewState())

	if res.Intent != classifier.Unknown {
		t.Fatalf("expected fall-through, got %q", res.Intent)
	}
	if len(res.Options) == 0 {
		t.Fatal("fall-through must offer the menu sections")
	}
}

func TestMoodIntentSuggestions(t *testing.T) {
	e := newTestEngine()

	res := e.Process("chi haja harra", order.NewState())

	if res.Intent != "mood_spicy" {
		t.Fatalf("expected spicy mood, got %+v", res)
	}
	found := false
	for _, o := range res.Options {
		if strings.Contains(o, "Harissa") {
			found = true
		}
	}
	if !found {
		t.Fatalf("spicy intent should suggest spicy quick replies: %v", res.Options)
	}
}

func TestDeterministicForIdenticalInput(t *testing.T) {
	e := newTestEngine()
	st := order.NewState()

	a := e.Process("pizza", st)
	b := e.Process("pizza", st)

	if a.Reply != b.Reply || a.Intent != b.Intent || a.State.Phase != b.State.Phase {
		t.Fatalf("identical (state, input) must give identical output:\n%+v\n%+v", a, b)
	}
}

func TestFullScenarioThroughEngine(t *testing.T) {
	e := newTestEngine()

	st := order.NewState()
	inputs := []string{
		"pizza",
		"Pizza Margherita",
		"kbira",
		"2",
		"la", // no extras
		"salina",
		"livraison",
		"mabin 2km w 5km",
		"Rue 10, Hay Salam",
		"cash",
	}

	var last Response
	for _, in := range inputs {
		last = e.Process(in, st)
		st = last.State
	}

	if !strings.Contains(last.Reply, "2x Pizza Margherita") {
		t.Fatalf("summary missing line: %q", last.Reply)
	}
	// 45*2 + 15 delivery
	if !strings.Contains(last.Reply, "Total: 105.00 dh") {
		t.Fatalf("wrong grand total: %q", last.Reply)
	}
	if !strings.Contains(last.Reply, "https://wa.me/212661234567?text=") {
		t.Fatalf("deep link missing: %q", last.Reply)
	}
	if st.Phase != order.PhaseIdle || len(st.Cart) != 0 {
		t.Fatalf("state must reset after finalize: %+v", st)
	}
}
