package analyzer

import (
	"errors"
	"fmt"
)

// Variant selects which set of step-2 rules the stemmer applies.
type Variant int

const (
	// VariantStandard applies the de facto departures from the published
	// algorithm: bli maps to ble (instead of abli to able) and logi maps
	// to log. This is the behavior of the author's reference code.
	VariantStandard Variant = iota
	// VariantPaper follows the 1980 paper exactly.
	VariantPaper
)

// ParseVariant converts a config string into a Variant.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "", "standard":
		return VariantStandard, nil
	case "paper":
		return VariantPaper, nil
	}
	return VariantStandard, fmt.Errorf("unknown stemmer variant: %q", s)
}

// ErrNotLowercaseASCII is returned by StemChecked when the input contains
// anything other than the letters a-z.
var ErrNotLowercaseASCII = errors.New("word must contain only lowercase ASCII letters")

// PorterStemmer implements the Porter stemming algorithm. The zero value is
// usable and applies the standard departures; all per-word state lives in an
// invocation-local region, so a single stemmer is safe for concurrent use.
type PorterStemmer struct {
	variant Variant
}

// NewPorterStemmer creates a stemmer using the standard departures.
func NewPorterStemmer() *PorterStemmer {
	return &PorterStemmer{variant: VariantStandard}
}

// NewPorterStemmerVariant creates a stemmer with an explicit rule variant.
func NewPorterStemmerVariant(v Variant) *PorterStemmer {
	return &PorterStemmer{variant: v}
}

// Stem reduces a lowercase ASCII word to its stem. Words of length two or
// less are returned unchanged, as are words containing characters outside
// a-z: callers are expected to case-fold first, and silently stemming
// arbitrary bytes would corrupt them. Use StemChecked to get an error for
// invalid input instead.
func (p *PorterStemmer) Stem(word string) string {
	if len(word) <= 2 || !isLowerASCII(word) {
		return word
	}
	r := &region{
		buf:   []byte(word),
		k:     len(word) - 1,
		paper: p.variant == VariantPaper,
	}
	r.step1ab()
	r.step1c()
	r.step2()
	r.step3()
	r.step4()
	r.step5()
	return string(r.buf[r.k0 : r.k+1])
}

// StemChecked is Stem with input validation.
func (p *PorterStemmer) StemChecked(word string) (string, error) {
	if !isLowerASCII(word) {
		return "", fmt.Errorf("stem %q: %w", word, ErrNotLowercaseASCII)
	}
	return p.Stem(word), nil
}

func isLowerASCII(word string) bool {
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return false
		}
	}
	return true
}

// region is the active span of one word being stemmed. The word occupies
// buf[k0..k] inclusive; k0 is fixed at zero and k shrinks as suffixes come
// off. j marks the last character of the stem preceding the most recent
// successful endsWith match and is meaningless before one.
type region struct {
	buf   []byte
	k0    int
	k     int
	j     int
	paper bool
}

// isConsonant reports whether buf[i] is a consonant. A y is a consonant
// when it starts the word or follows a vowel.
func (r *region) isConsonant(i int) bool {
	switch r.buf[i] {
	case 'a', 'e', 'i', 'o', 'u':
		return false
	case 'y':
		if i == r.k0 {
			return true
		}
		return !r.isConsonant(i - 1)
	}
	return true
}

// measure counts vowel-to-consonant transitions in buf[k0..j]. With c a
// consonant sequence and v a vowel sequence, <c><v> gives 0, <c>vc<v>
// gives 1, <c>vcvc<v> gives 2, and so on.
func (r *region) measure() int {
	m := 0
	i := r.k0
	for i <= r.j && r.isConsonant(i) {
		i++
	}
	for {
		for i <= r.j && !r.isConsonant(i) {
			i++
		}
		if i > r.j {
			return m
		}
		m++
		for i <= r.j && r.isConsonant(i) {
			i++
		}
	}
}

// hasVowelInStem reports whether buf[k0..j] contains a vowel.
func (r *region) hasVowelInStem() bool {
	for i := r.k0; i <= r.j; i++ {
		if !r.isConsonant(i) {
			return true
		}
	}
	return false
}

// hasDoubleConsonant reports whether buf[i-1..i] is a doubled consonant.
func (r *region) hasDoubleConsonant(i int) bool {
	if i < r.k0+1 {
		return false
	}
	if r.buf[i] != r.buf[i-1] {
		return false
	}
	return r.isConsonant(i)
}

// endsCVC reports whether buf[i-2..i] is consonant-vowel-consonant with the
// final consonant not w, x or y. Used to decide whether to restore a final
// e: cav(e), lov(e), hop(e) qualify; snow, box, tray do not.
func (r *region) endsCVC(i int) bool {
	if i < r.k0+2 || !r.isConsonant(i) || r.isConsonant(i-1) || !r.isConsonant(i-2) {
		return false
	}
	switch r.buf[i] {
	case 'w', 'x', 'y':
		return false
	}
	return true
}

// endsWith reports whether the active word ends with s. On success j is left
// at the last character of the stem preceding the suffix; on failure j is
// untouched.
func (r *region) endsWith(s string) bool {
	l := len(s)
	if s[l-1] != r.buf[r.k] {
		return false
	}
	if l > r.k-r.k0+1 {
		return false
	}
	for i := 0; i < l; i++ {
		if r.buf[r.k-l+1+i] != s[i] {
			return false
		}
	}
	r.j = r.k - l
	return true
}

// setSuffix overwrites everything after j with s and re-clamps k.
func (r *region) setSuffix(s string) {
	r.buf = append(r.buf[:r.j+1], s...)
	r.k = r.j + len(s)
}

// replaceSuffix applies setSuffix only when the stem measure is positive.
func (r *region) replaceSuffix(s string) {
	if r.measure() > 0 {
		r.setSuffix(s)
	}
}

// step1ab removes plurals and -ed or -ing:
//
//	caresses -> caress    feed   -> feed     matting -> mat
//	ponies   -> poni      agreed -> agree    mating  -> mate
//	cats     -> cat       milling -> mill    messing -> mess
func (r *region) step1ab() {
	if r.buf[r.k] == 's' {
		switch {
		case r.endsWith("sses"):
			r.k -= 2
		case r.endsWith("ies"):
			r.setSuffix("i")
		case r.buf[r.k-1] != 's':
			r.k--
		}
	}
	if r.endsWith("eed") {
		if r.measure() > 0 {
			r.k--
		}
	} else if (r.endsWith("ed") || r.endsWith("ing")) && r.hasVowelInStem() {
		r.k = r.j
		switch {
		case r.endsWith("at"):
			r.setSuffix("ate")
		case r.endsWith("bl"):
			r.setSuffix("ble")
		case r.endsWith("iz"):
			r.setSuffix("ize")
		case r.hasDoubleConsonant(r.k):
			r.k--
			if c := r.buf[r.k]; c == 'l' || c == 's' || c == 'z' {
				r.k++
			}
		case r.measure() == 1 && r.endsCVC(r.k):
			r.setSuffix("e")
		}
	}
}

// step1c turns a terminal y into i when there is another vowel in the stem.
func (r *region) step1c() {
	if r.endsWith("y") && r.hasVowelInStem() {
		r.buf[r.k] = 'i'
	}
}

// step2 maps double suffixes to single ones, so -ization (-ize plus -ation)
// becomes -ize. The stem before the suffix must have positive measure.
// Dispatch is on the penultimate character of the word.
func (r *region) step2() {
	if r.k <= r.k0 {
		return
	}
	switch r.buf[r.k-1] {
	case 'a':
		if r.endsWith("ational") {
			r.replaceSuffix("ate")
		} else if r.endsWith("tional") {
			r.replaceSuffix("tion")
		}
	case 'c':
		if r.endsWith("enci") {
			r.replaceSuffix("ence")
		} else if r.endsWith("anci") {
			r.replaceSuffix("ance")
		}
	case 'e':
		if r.endsWith("izer") {
			r.replaceSuffix("ize")
		}
	case 'l':
		switch {
		case r.paper && r.endsWith("abli"):
			r.replaceSuffix("able")
		case !r.paper && r.endsWith("bli"):
			r.replaceSuffix("ble")
		case r.endsWith("alli"):
			r.replaceSuffix("al")
		case r.endsWith("entli"):
			r.replaceSuffix("ent")
		case r.endsWith("eli"):
			r.replaceSuffix("e")
		case r.endsWith("ousli"):
			r.replaceSuffix("ous")
		}
	case 'o':
		if r.endsWith("ization") {
			r.replaceSuffix("ize")
		} else if r.endsWith("ation") {
			r.replaceSuffix("ate")
		} else if r.endsWith("ator") {
			r.replaceSuffix("ate")
		}
	case 's':
		switch {
		case r.endsWith("alism"):
			r.replaceSuffix("al")
		case r.endsWith("iveness"):
			r.replaceSuffix("ive")
		case r.endsWith("fulness"):
			r.replaceSuffix("ful")
		case r.endsWith("ousness"):
			r.replaceSuffix("ous")
		}
	case 't':
		switch {
		case r.endsWith("aliti"):
			r.replaceSuffix("al")
		case r.endsWith("iviti"):
			r.replaceSuffix("ive")
		case r.endsWith("biliti"):
			r.replaceSuffix("ble")
		}
	case 'g':
		if !r.paper && r.endsWith("logi") {
			r.replaceSuffix("log")
		}
	}
}

// step3 deals with -ic-, -full, -ness and friends, dispatching on the final
// character.
func (r *region) step3() {
	switch r.buf[r.k] {
	case 'e':
		switch {
		case r.endsWith("icate"):
			r.replaceSuffix("ic")
		case r.endsWith("ative"):
			r.replaceSuffix("")
		case r.endsWith("alize"):
			r.replaceSuffix("al")
		}
	case 'i':
		if r.endsWith("iciti") {
			r.replaceSuffix("ic")
		}
	case 'l':
		if r.endsWith("ical") {
			r.replaceSuffix("ic")
		} else if r.endsWith("ful") {
			r.replaceSuffix("")
		}
	case 's':
		if r.endsWith("ness") {
			r.replaceSuffix("")
		}
	}
}

// step4 takes off -ant, -ence and the rest when the residual stem has
// measure greater than one. The matched suffix is truncated, never replaced.
func (r *region) step4() {
	if r.k <= r.k0 {
		return
	}
	switch r.buf[r.k-1] {
	case 'a':
		if !r.endsWith("al") {
			return
		}
	case 'c':
		if !r.endsWith("ance") && !r.endsWith("ence") {
			return
		}
	case 'e':
		if !r.endsWith("er") {
			return
		}
	case 'i':
		if !r.endsWith("ic") {
			return
		}
	case 'l':
		if !r.endsWith("able") && !r.endsWith("ible") {
			return
		}
	case 'n':
		if !r.endsWith("ant") && !r.endsWith("ement") && !r.endsWith("ment") && !r.endsWith("ent") {
			return
		}
	case 'o':
		// -ion only comes off after s or t; -ou covers -ous words.
		ion := r.endsWith("ion") && r.j >= r.k0 && (r.buf[r.j] == 's' || r.buf[r.j] == 't')
		if !ion && !r.endsWith("ou") {
			return
		}
	case 's':
		if !r.endsWith("ism") {
			return
		}
	case 't':
		if !r.endsWith("ate") && !r.endsWith("iti") {
			return
		}
	case 'u':
		if !r.endsWith("ous") {
			return
		}
	case 'v':
		if !r.endsWith("ive") {
			return
		}
	case 'z':
		if !r.endsWith("ize") {
			return
		}
	default:
		return
	}
	if r.measure() > 1 {
		r.k = r.j
	}
}

// step5 removes a final -e if the measure is greater than one, or exactly
// one without a trailing consonant-vowel-consonant, then reduces a final
// -ll to -l when the measure is greater than one.
func (r *region) step5() {
	r.j = r.k
	if r.buf[r.k] == 'e' {
		a := r.measure()
		if a > 1 || (a == 1 && !r.endsCVC(r.k-1)) {
			r.k--
		}
	}
	if r.buf[r.k] == 'l' && r.hasDoubleConsonant(r.k) && r.measure() > 1 {
		r.k--
	}
}
