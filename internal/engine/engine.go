package engine

import (
	"strings"

	"sniptaste/internal/catalog"
	"sniptaste/internal/classifier"
	"sniptaste/internal/knowledge"
	"sniptaste/internal/order"
	"sniptaste/internal/textutil"
)

// Response is the uniform envelope every processed turn returns.
type Response struct {
	Reply   string      `json:"reply"`
	Options []string    `json:"options"`
	State   order.State `json:"state"`
	Intent  string      `json:"intent"`

	// Completed is set when this turn finalized an order.
	Completed *order.CompletedOrder `json:"-"`
}

// Engine is the conversational ordering engine: the guided state
// machine fused with the fuzzy intent classifier. It is synchronous
// and carries no per-conversation state; callers pass the prior
// state in and keep the returned one.
type Engine struct {
	cat     *catalog.Catalog
	cls     *classifier.Classifier
	machine *order.Machine
}

// Option configures an Engine.
type Option func(*Engine)

// WithClassifier swaps the classifier, mostly to inject a seeded
// random picker in tests.
func WithClassifier(c *classifier.Classifier) Option {
	return func(e *Engine) { e.cls = c }
}

// New wires the engine over one catalog. cat may be nil; the engine
// then degrades to the "no menu" reply instead of failing.
func New(cat *catalog.Catalog, phone string, opts ...Option) *Engine {
	e := &Engine{cat: cat}
	if cat != nil {
		e.cls = classifier.New(knowledge.Build(cat))
		e.machine = order.NewMachine(cat, phone)
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

const noMenuReply = "Smh lina, l'menu mazal ma wajd daba 😔 3awd jarreb mn b3d"

// Catalog exposes the read-only catalog the engine was built over.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}

// Process handles one inbound message. A conversation inside a
// guided phase always goes to the state machine; idle conversations
// ask the classifier first and fall through below its threshold.
func (e *Engine) Process(rawInput string, prior order.State) Response {
	if e.cat == nil || len(e.cat.Sections()) == 0 {
		return Response{Reply: noMenuReply, State: prior, Intent: classifier.Unknown}
	}

	if prior.Phase != order.PhaseIdle && prior.Phase != "" {
		turn := e.machine.Handle(rawInput, prior)
		return Response{
			Reply:     turn.Reply,
			Options:   turn.Options,
			State:     turn.State,
			Intent:    "order:" + string(turn.State.Phase),
			Completed: turn.Completed,
		}
	}

	normalized := textutil.Normalize(rawInput)
	res := e.cls.Classify(normalized, rawInput)

	if res.Confidence > classifier.Threshold {
		if id, ok := strings.CutPrefix(res.Intent, knowledge.CategoryPrefix); ok {
			turn := e.machine.EnterSection(id, prior)
			return Response{
				Reply:   turn.Reply,
				Options: turn.Options,
				State:   turn.State,
				Intent:  res.Intent,
			}
		}
		return Response{
			Reply:   res.Reply,
			Options: e.suggestionsFor(res.Intent),
			State:   prior,
			Intent:  res.Intent,
		}
	}

	turn := e.machine.Handle(rawInput, prior)
	return Response{
		Reply:   turn.Reply,
		Options: turn.Options,
		State:   turn.State,
		Intent:  classifier.Unknown,
	}
}

// suggestionsFor maps a winning intent to smart quick replies.
// Unmapped intents fall back to the menu sections.
func (e *Engine) suggestionsFor(intent string) []string {
	switch intent {
	case "mood_spicy":
		return []string{"Tacos Mixte", "Kabab", "Sauce Harissa"}
	case "mood_cheesy":
		return []string{"Pizza 4 Fromages", "Tacos + Fromage", "Kabab Fromage"}
	case "mood_budget":
		return []string{"Panini Thon", "Kabab", "Jus d'Orange"}
	case "mood_hungry":
		return []string{"Pizza", "Tacos", "Plat - Assiettes"}
	case "faq_delivery":
		return []string{"Commander daba", "Pizza", "Tacos"}
	case "domain_vegetarian":
		return []string{"Pizza Végétarienne", "Panini Thon", "Jus"}
	}
	return e.cat.SectionTitles()
}
