package textutil

import (
	"strings"
	"unicode"
)

// --------------------------------------------------
// TEXT NORMALIZATION (PURE, NO STATE)
// --------------------------------------------------

// Normalize lowercases the input, strips punctuation and
// collapses runs of whitespace into single spaces.
func Normalize(raw string) string {
	lower := strings.ToLower(raw)

	var b strings.Builder
	b.Grow(len(lower))

	for _, r := range lower {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		default:
			// punctuation becomes a space so "pizza,large" still splits
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Size is the detected size marker of an utterance.
type Size string

const (
	SizeNone  Size = ""
	SizeSmall Size = "small"
	SizeLarge Size = "large"
)

// Large keywords are checked BEFORE small ones: when both appear
// in the same utterance, large wins.
var largeKeywords = []string{"kbira", "kbir", "grande", "grand", "large", "big", "كبيرة", "كبير"}

var smallKeywords = []string{"sghira", "sghir", "petite", "petit", "small", "صغيرة", "صغير"}

// ExtractSize scans normalized text for a size marker and returns
// the detected size plus the text with the marker removed, so that
// "pizza kbira" and "pizza" resolve to the same item lookup.
func ExtractSize(text string) (Size, string) {
	words := strings.Fields(text)

	if idx := indexOfAny(words, largeKeywords); idx >= 0 {
		return SizeLarge, strings.Join(removeAt(words, idx), " ")
	}
	if idx := indexOfAny(words, smallKeywords); idx >= 0 {
		return SizeSmall, strings.Join(removeAt(words, idx), " ")
	}
	return SizeNone, text
}

func indexOfAny(words, keywords []string) int {
	for i, w := range words {
		for _, k := range keywords {
			if w == k {
				return i
			}
		}
	}
	return -1
}

func removeAt(words []string, idx int) []string {
	out := make([]string, 0, len(words)-1)
	out = append(out, words[:idx]...)
	return append(out, words[idx+1:]...)
}

// ContainsArabic reports whether the raw input carries Arabic-script
// characters. Used to pick the Arabic reply variant.
func ContainsArabic(raw string) bool {
	for _, r := range raw {
		if unicode.Is(unicode.Arabic, r) {
			return true
		}
	}
	return false
}
