// Package textnorm cleans free-form review text before classification.
//
// Both entry points apply the same four steps in order:
//   - lowercase (locale independent)
//   - drop every run of decimal digits
//   - drop every rune that is neither a word rune (letter, number, underscore)
//     nor whitespace
//   - collapse whitespace runs to a single space and trim the ends
//
// Normalize is the regexp pipeline. NormalizeFast produces identical output
// in a single pass over the runes and is used on the gRPC hot path.
package textnorm

import (
	"regexp"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Func is the signature shared by Normalize and NormalizeFast.
type Func func(text string) string

// whitespace mirrors unicode.IsSpace plus the file/group/record/unit
// separators U+001C..U+001F and every Z category rune.
const whitespace = `\t\n\v\f\r\x{1C}-\x{1F} \x{85}\p{Z}`

var (
	digitRuns   = regexp.MustCompile(`\p{Nd}+`)
	nonWordRuns = regexp.MustCompile(`[^\p{L}\p{N}_` + whitespace + `]+`)
	spaceRuns   = regexp.MustCompile(`[` + whitespace + `]+`)
)

// cases.Caser keeps internal state and must not be shared between goroutines.
var lowerPool = sync.Pool{
	New: func() any {
		c := cases.Lower(language.Und)
		return &c
	},
}

func lower(text string) string {
	c := lowerPool.Get().(*cases.Caser)
	defer lowerPool.Put(c)
	return c.String(text)
}

// Normalize cleans text with precompiled regular expressions.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = lower(text)
	text = digitRuns.ReplaceAllString(text, "")
	text = nonWordRuns.ReplaceAllString(text, "")
	text = spaceRuns.ReplaceAllString(text, " ")
	return strings.Trim(text, " ")
}

// NormalizeFast returns the same result as Normalize without regular
// expressions. ASCII input is lowercased inline; anything else goes through
// the Unicode caser first.
func NormalizeFast(text string) string {
	if text == "" {
		return ""
	}
	if !isASCII(text) {
		text = lower(text)
	}

	var b strings.Builder
	b.Grow(len(text))
	pendingSpace := false
	for _, r := range text {
		if 'A' <= r && r <= 'Z' {
			r += 'a' - 'A'
		}
		switch {
		case unicode.IsDigit(r):
			// dropped
		case isSpace(r):
			pendingSpace = b.Len() > 0
		case isWord(r):
			if pendingSpace {
				b.WriteByte(' ')
				pendingSpace = false
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', 0x85, 0x1C, 0x1D, 0x1E, 0x1F:
		return true
	}
	if r < utf8.RuneSelf {
		return false
	}
	return unicode.In(r, unicode.Z)
}
