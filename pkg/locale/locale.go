// Package locale resolves the free-form "lang" codes found in definition
// files to one of the locales the fake data corpus supports.
//
// Codes are matched with golang.org/x/text/language, so "EN", "en-US",
// "ja_jp" and "JA_JP" all resolve. Codes that cannot be matched resolve to
// the default locale (EN) unless the caller asks for strict resolution.
package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale is a supported corpus locale, identified by its canonical code.
type Locale string

// Supported locales.
const (
	EN   Locale = "EN"
	JaJP Locale = "JA_JP"
	ArSA Locale = "AR_SA"
	FrFR Locale = "FR_FR"
	PtBR Locale = "PT_BR"
	ZhCN Locale = "ZH_CN"
	ZhTW Locale = "ZH_TW"
)

// Default is the locale used when a code is not recognized.
const Default = EN

// Policy controls what happens to codes that match no supported locale.
type Policy string

// Resolution policies.
const (
	// PolicyFallback substitutes Default for unrecognized codes.
	PolicyFallback Policy = "fallback"
	// PolicyStrict reports unrecognized codes as errors.
	PolicyStrict Policy = "strict"
)

// ParsePolicy parses a policy name. Empty means PolicyFallback.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(PolicyFallback):
		return PolicyFallback, nil
	case string(PolicyStrict):
		return PolicyStrict, nil
	default:
		return "", fmt.Errorf("invalid locale policy %q (valid: fallback, strict)", s)
	}
}

// supported is ordered so that index 0 is the matcher's default.
var supported = []struct {
	locale Locale
	tag    language.Tag
}{
	{EN, language.English},
	{JaJP, language.MustParse("ja-JP")},
	{ArSA, language.MustParse("ar-SA")},
	{FrFR, language.MustParse("fr-FR")},
	{PtBR, language.MustParse("pt-BR")},
	{ZhCN, language.MustParse("zh-CN")},
	{ZhTW, language.MustParse("zh-TW")},
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(supported))
	for i, s := range supported {
		tags[i] = s.tag
	}
	return language.NewMatcher(tags)
}()

// All returns every supported locale, default first.
func All() []Locale {
	out := make([]Locale, len(supported))
	for i, s := range supported {
		out[i] = s.locale
	}
	return out
}

// Lookup resolves code to a supported locale. The boolean reports whether
// the code was recognized; when it is false the returned locale is Default.
func Lookup(code string) (Locale, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Default, false
	}
	for _, s := range supported {
		if strings.EqualFold(code, string(s.locale)) {
			return s.locale, true
		}
	}

	tag, err := language.Parse(strings.ReplaceAll(code, "_", "-"))
	if err != nil {
		return Default, false
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Default, false
	}
	return supported[idx].locale, true
}

// Resolve is Lookup without the recognition flag.
func Resolve(code string) Locale {
	l, _ := Lookup(code)
	return l
}

// Tag returns the BCP 47 language tag of l. Unknown values map to the
// default locale's tag.
func (l Locale) Tag() language.Tag {
	for _, s := range supported {
		if s.locale == l {
			return s.tag
		}
	}
	return supported[0].tag
}

// UsesSpaces reports whether words in l are separated by spaces.
func (l Locale) UsesSpaces() bool {
	switch l {
	case JaJP, ZhCN, ZhTW:
		return false
	default:
		return true
	}
}
