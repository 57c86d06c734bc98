package slug

import (
	"crypto/rand"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Letters that do not decompose into a base letter plus combining marks.
var foldReplacer = strings.NewReplacer(
	"ß", "ss",
	"ẞ", "SS",
	"æ", "ae",
	"Æ", "AE",
	"œ", "oe",
	"Œ", "OE",
	"ø", "o",
	"Ø", "O",
	"đ", "d",
	"Đ", "D",
	"ł", "l",
	"Ł", "L",
	"þ", "th",
	"Þ", "TH",
)

type options struct {
	separator    string
	maxLength    int
	lowercase    bool
	suffixLength int
	replacements map[string]string
	strip        string
}

// Option configures Make.
type Option func(*options)

// Separator sets the string placed between words. Empty values are ignored.
func Separator(sep string) Option {
	return func(o *options) {
		if sep != "" {
			o.separator = sep
		}
	}
}

// MaxLength limits the slug length in runes, suffix included. Zero means no limit.
func MaxLength(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.maxLength = n
		}
	}
}

// Lowercase controls case folding (default true).
func Lowercase(enabled bool) Option {
	return func(o *options) {
		o.lowercase = enabled
	}
}

// WithSuffix appends a random suffix of n lowercase alphanumerics.
func WithSuffix(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.suffixLength = n
		}
	}
}

// CustomReplace substitutes substrings before any other processing.
// Longer keys are applied first.
func CustomReplace(replacements map[string]string) Option {
	return func(o *options) {
		o.replacements = replacements
	}
}

// StripChars removes the given characters entirely instead of turning them into separators.
func StripChars(chars string) Option {
	return func(o *options) {
		o.strip = chars
	}
}

// Make converts s into a URL-safe slug.
func Make(s string, opts ...Option) string {
	o := &options{
		separator: "-",
		lowercase: true,
	}
	for _, opt := range opts {
		opt(o)
	}

	s = applyReplacements(s, o.replacements)
	s = fold(s)
	if o.lowercase {
		s = strings.ToLower(s)
	}

	var b strings.Builder
	b.Grow(len(s))
	pending := false
	for _, r := range s {
		if o.strip != "" && strings.ContainsRune(o.strip, r) {
			continue
		}
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if pending && b.Len() > 0 {
				b.WriteString(o.separator)
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	result := b.String()

	var suffix string
	if o.suffixLength > 0 {
		suffix = randomSuffix(o.suffixLength)
	}

	if o.maxLength > 0 {
		limit := o.maxLength
		if suffix != "" {
			limit -= utf8.RuneCountInString(suffix) + utf8.RuneCountInString(o.separator)
		}
		result = truncate(result, limit, o.separator)
	}

	switch {
	case suffix == "":
		return result
	case result == "":
		return suffix
	default:
		return result + o.separator + suffix
	}
}

func applyReplacements(s string, replacements map[string]string) string {
	if len(replacements) == 0 {
		return s
	}
	keys := make([]string, 0, len(replacements))
	for k := range replacements {
		if k != "" {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		// Pad with spaces so replacements stay separate words.
		pairs = append(pairs, k, " "+replacements[k]+" ")
	}
	return strings.NewReplacer(pairs...).Replace(s)
}

// fold strips diacritics: "Café" becomes "Cafe".
func fold(s string) string {
	s = foldReplacer.Replace(s)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func truncate(s string, limit int, sep string) string {
	if limit <= 0 {
		return ""
	}
	rs := []rune(s)
	if len(rs) <= limit {
		return s
	}
	s = string(rs[:limit])
	for strings.HasSuffix(s, sep) {
		s = strings.TrimSuffix(s, sep)
	}
	return s
}

func randomSuffix(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// Deterministic fallback keeps Make error-free.
		for i := range buf {
			buf[i] = suffixAlphabet[i%len(suffixAlphabet)]
		}
		return string(buf)
	}
	for i, v := range buf {
		buf[i] = suffixAlphabet[int(v)%len(suffixAlphabet)]
	}
	return string(buf)
}
