package cprintf

import (
	"fmt"

	"golang.org/x/text/language"
)

// Locale holds the symbols used when rendering a value.
type Locale struct {
	DecimalSeparator string
	PositiveSign     string
	NegativeSign     string
	NaN              string
	PositiveInfinity string
	NegativeInfinity string
}

// symbols of the C locale. Infinity and NaN are spelled per verb case instead.
var cLocale = Locale{
	DecimalSeparator: ".",
	PositiveSign:     "+",
	NegativeSign:     "-",
	NaN:              "nan",
	PositiveInfinity: "inf",
	NegativeInfinity: "-inf",
}

var (
	pointLocale = Locale{
		DecimalSeparator: ".",
		PositiveSign:     "+",
		NegativeSign:     "-",
		NaN:              "NaN",
		PositiveInfinity: "∞",
		NegativeInfinity: "-∞",
	}
	commaLocale = Locale{
		DecimalSeparator: ",",
		PositiveSign:     "+",
		NegativeSign:     "-",
		NaN:              "NaN",
		PositiveInfinity: "∞",
		NegativeInfinity: "-∞",
	}
)

var supportedTags = []language.Tag{
	language.English, // the first tag is the fallback of the matcher
	language.Japanese,
	language.Chinese,
	language.Korean,
	language.German,
	language.French,
	language.Spanish,
	language.Italian,
	language.Dutch,
	language.Portuguese,
	language.Russian,
	language.Swedish,
}

var supportedLocales = []*Locale{
	&pointLocale,
	&pointLocale,
	&pointLocale,
	&pointLocale,
	&commaLocale,
	&commaLocale,
	&commaLocale,
	&commaLocale,
	&commaLocale,
	&commaLocale,
	&commaLocale,
	&commaLocale,
}

var localeMatcher = language.NewMatcher(supportedTags)

// LocaleFor returns the symbols of the locale that best matches tag.
// The returned value is shared and must not be modified.
func LocaleFor(tag language.Tag) *Locale {
	_, i, _ := localeMatcher.Match(tag)
	return supportedLocales[i]
}

// ParseLocale parses a BCP 47 language tag such as "de-CH" and returns its symbols.
// "C" and "POSIX" select the C locale, which is represented by nil.
func ParseLocale(s string) (*Locale, error) {
	switch s {
	case "", "C", "POSIX":
		return nil, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("cprintf: parse locale %q: %w", s, err)
	}
	return LocaleFor(tag), nil
}

func (l *Locale) orC() *Locale {
	if l == nil {
		return &cLocale
	}
	return l
}
