package classifier

import (
	"math/rand"
	"strings"

	"sniptaste/internal/knowledge"
	"sniptaste/internal/textutil"
)

// Threshold is the confidence above which the classifier's reply is
// used instead of falling through to the guided ordering flow.
const Threshold = 0.3

// Unknown is the sentinel intent name for a no-match result.
const Unknown = "unknown"

const genericReply = "Fhemtek, walakin ma3rftch chno ngoul lik 😅 Jarreb tgoul liya chno bghiti takol"

// Result is the outcome of classifying one utterance.
type Result struct {
	Intent     string
	Confidence float64
	Reply      string
}

// Classifier scores normalized input against the knowledge base's
// ordered groups.
type Classifier struct {
	base *knowledge.Base
	rng  func(n int) int
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithRand injects the random picker used for variant replies.
// Tests pass a deterministic function.
func WithRand(rng func(n int) int) Option {
	return func(c *Classifier) { c.rng = rng }
}

// New builds a classifier over the given base.
func New(base *knowledge.Base, opts ...Option) *Classifier {
	c := &Classifier{base: base, rng: rand.Intn}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Classify returns the best-matching group for the normalized input.
// rawInput is only consulted for script detection when resolving a
// bilingual reply. Groups are evaluated in base order; a later group
// overrides an earlier one only on a strictly greater score.
func (c *Classifier) Classify(normalized, rawInput string) Result {
	words := strings.Fields(normalized)
	if len(words) == 0 {
		return Result{Intent: Unknown}
	}

	var (
		best      *knowledge.Group
		bestScore float64
	)

	for i := range c.base.Groups {
		g := &c.base.Groups[i]
		score := c.score(g, normalized, words)
		if score <= g.Floor {
			continue
		}
		if score > bestScore {
			best = g
			bestScore = score
		}
	}

	if best == nil {
		return Result{Intent: Unknown}
	}

	return Result{
		Intent:     best.Name,
		Confidence: bestScore,
		Reply:      c.resolveReply(best, rawInput),
	}
}

func (c *Classifier) score(g *knowledge.Group, normalized string, words []string) float64 {
	switch g.Kind {
	case knowledge.MatchExactPhrase:
		for _, k := range g.Keywords {
			if normalized == k {
				return g.Forced
			}
		}
		return 0

	case knowledge.MatchExactWord:
		for _, w := range words {
			for _, k := range g.Keywords {
				if w == k {
					return g.Forced
				}
			}
		}
		return 0

	default:
		matched := 0
		for _, w := range words {
			if matchesKeyword(g, w) {
				matched++
			}
		}
		return float64(matched) / float64(len(words))
	}
}

func matchesKeyword(g *knowledge.Group, word string) bool {
	if g.Laughter && isLaughterToken(word) {
		return true
	}
	for _, k := range g.Keywords {
		if word == k {
			return true
		}
		// longer words may sit inside a keyword ("marghe" in "margherita")
		if len([]rune(word)) > 4 && strings.Contains(k, word) {
			return true
		}
	}
	return false
}

// isLaughterToken accepts "hh"/"hhhh" runs and "lol"/"lool"-style
// tokens as fuzzy laughter.
func isLaughterToken(w string) bool {
	if len(w) >= 2 && strings.Count(w, "h") == len(w) {
		return true
	}
	if len(w) >= 3 && w[0] == 'l' && w[len(w)-1] == 'l' {
		middle := w[1 : len(w)-1]
		if len(middle) > 0 && strings.Count(middle, "o") == len(middle) {
			return true
		}
	}
	return false
}

func (c *Classifier) resolveReply(g *knowledge.Group, rawInput string) string {
	switch g.Reply.Kind {
	case knowledge.ReplyVariants:
		if len(g.Reply.Variants) > 0 {
			return g.Reply.Variants[c.rng(len(g.Reply.Variants))]
		}
	case knowledge.ReplyBilingual:
		if textutil.ContainsArabic(rawInput) && g.Reply.Arabic != "" {
			return g.Reply.Arabic
		}
		if g.Reply.Latin != "" {
			return g.Reply.Latin
		}
	case knowledge.ReplyNone:
		return ""
	}
	return genericReply
}
