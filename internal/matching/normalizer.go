package matching

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// arabicFold maps Arabic letter variants onto one canonical form so that
// common spelling alternations (alef hamza, ta marbuta, alef maqsura)
// collapse to the same token.
var arabicFold = map[rune]rune{
	'أ': 'ا',
	'إ': 'ا',
	'آ': 'ا',
	'ة': 'ه',
	'ى': 'ي',
	'ؤ': 'و',
	'ئ': 'ي',
}

// Normalize cleans raw user text for comparison: lowercase, diacritics
// removed (covers Arabic tashkeel, which are combining marks), Arabic
// letter variants folded, Arabic-Indic digits converted to ASCII,
// punctuation stripped and whitespace collapsed.
func Normalize(s string) string {
	// Convert to lowercase
	s = strings.ToLower(s)

	// Remove combining marks (Latin accents and Arabic tashkeel)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, _ = transform.String(t, s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == 'ـ': // tatweel, purely presentational
			continue
		case r >= '٠' && r <= '٩':
			b.WriteRune('0' + (r - '٠'))
		case r >= '۰' && r <= '۹':
			b.WriteRune('0' + (r - '۰'))
		default:
			if folded, ok := arabicFold[r]; ok {
				r = folded
			}
			if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
				b.WriteRune(r)
			} else {
				// Punctuation and symbols become word boundaries
				b.WriteRune(' ')
			}
		}
	}
	s = b.String()

	// Collapse whitespace and trim
	s = strings.Join(strings.Fields(s), " ")

	return strings.TrimSpace(s)
}

// ParseYear extracts a plausible model year from a string
// (handles "2020", "2019 -->", "2007.5").
func ParseYear(s string) int {
	normalized := strings.TrimSpace(s)
	if len(normalized) >= 4 {
		if year, err := strconv.Atoi(normalized[:4]); err == nil {
			if year >= 1900 && year <= 2100 {
				return year
			}
		}
	}
	return 0
}
