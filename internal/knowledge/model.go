package knowledge

// MatchKind tells how a group's keywords are matched against input.
type MatchKind int

const (
	// MatchKeywords scores per-word keyword overlap.
	MatchKeywords MatchKind = iota
	// MatchExactPhrase requires the whole normalized input to equal a keyword.
	MatchExactPhrase
	// MatchExactWord requires one input word to equal a keyword.
	MatchExactWord
)

// ReplyKind is the tag of the Reply union. Each group carries exactly
// one reply shape, resolved here at construction time instead of by
// shape-sniffing at classification time.
type ReplyKind int

const (
	// ReplyNone defers to the caller (category groups hand control
	// back to the ordering flow).
	ReplyNone ReplyKind = iota
	// ReplyVariants picks one of several canned replies at random.
	ReplyVariants
	// ReplyBilingual picks the Arabic-script or Latin variant by
	// the script of the raw input.
	ReplyBilingual
)

// Reply is the tagged-union response payload of a group.
type Reply struct {
	Kind     ReplyKind
	Variants []string
	Latin    string
	Arabic   string
}

// Variants builds a random-variant reply.
func Variants(v ...string) Reply {
	return Reply{Kind: ReplyVariants, Variants: v}
}

// Bilingual builds a fixed two-script reply.
func Bilingual(latin, arabic string) Reply {
	return Reply{Kind: ReplyBilingual, Latin: latin, Arabic: arabic}
}

// Group is one named keyword set plus its canned reply.
type Group struct {
	Name     string
	Kind     MatchKind
	Keywords []string

	// Forced overrides the word-overlap score when > 0
	// (scripted flows and personality comebacks).
	Forced float64

	// Floor is the minimum score for the group to count as a
	// candidate at all (greeting 0.1, event groups 0.3).
	Floor float64

	// Laughter marks groups that accept fuzzy laughter tokens
	// ("hhhh", "lol", "lool") as keyword hits.
	Laughter bool

	Reply Reply
}

// Base is the immutable, ordered knowledge base. Order IS the
// classifier's precedence: a later group only beats an earlier one
// on a strictly greater score.
type Base struct {
	Groups []Group
}
