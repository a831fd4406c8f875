package ordinal

import "golang.org/x/text/language"

// SuffixGrammar is a table-driven Grammar: a set of allowed separators and a
// function listing the valid suffixes for a number.
type SuffixGrammar struct {
	// Language is the language served.
	Language language.Tag

	// Separators lists the allowed separators between digits and suffix.
	// The empty string means the suffix follows the digits directly.
	Separators []string

	// Suffixes returns the lower-case suffixes valid for n.
	Suffixes func(n int) []string
}

// Tag implements Grammar.
func (g SuffixGrammar) Tag() language.Tag {
	return g.Language
}

// Accepts implements Grammar.
func (g SuffixGrammar) Accepts(n int, sep, suffix string) bool {
	if !contains(g.Separators, sep) {
		return false
	}
	if g.Suffixes == nil {
		return false
	}
	return contains(g.Suffixes(n), suffix)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

var noSeparator = []string{""}

// English accepts 1st, 2nd, 3rd, 4th, 11th-13th, 21st, 112th ...
func English() Grammar {
	return SuffixGrammar{
		Language:   language.English,
		Separators: noSeparator,
		Suffixes: func(n int) []string {
			if r := n % 100; r >= 11 && r <= 13 {
				return []string{"th"}
			}
			switch n % 10 {
			case 1:
				return []string{"st"}
			case 2:
				return []string{"nd"}
			case 3:
				return []string{"rd"}
			default:
				return []string{"th"}
			}
		},
	}
}

// French accepts 1er/1re/1ère, 2e/2ème/2nd/2nde and ne/nème for n >= 2.
func French() Grammar {
	return SuffixGrammar{
		Language:   language.French,
		Separators: noSeparator,
		Suffixes: func(n int) []string {
			switch n {
			case 1:
				return []string{"er", "re", "ère", "ere"}
			case 2:
				return []string{"e", "ème", "eme", "nd", "nde", "d"}
			default:
				return []string{"e", "ème", "eme"}
			}
		},
	}
}

// German ordinals are normally written "2."; this grammar covers the
// abbreviated inflected forms (2te, 3ter, 20ste).
func German() Grammar {
	return SuffixGrammar{
		Language:   language.German,
		Separators: noSeparator,
		Suffixes: func(n int) []string {
			forms := []string{"te", "ter", "ten", "tes", "tem"}
			if n >= 20 {
				forms = append(forms, "ste", "ster", "sten", "stes", "stem")
			}
			return forms
		},
	}
}

// romanceIndicators are the ordinal indicators shared by Spanish, Italian
// and Portuguese. "°" is the degree sign commonly typed in place of "º".
var romanceIndicators = []string{"º", "ª", "°", "o", "a"}

// Spanish accepts 2º, 2.ª, 1er, 3er.
func Spanish() Grammar {
	return SuffixGrammar{
		Language:   language.Spanish,
		Separators: []string{"", "."},
		Suffixes: func(n int) []string {
			if d := n % 10; (d == 1 || d == 3) && n%100 != 11 && n%100 != 13 {
				return append([]string{"er"}, romanceIndicators...)
			}
			return romanceIndicators
		},
	}
}

// Italian accepts 2º, 2ª, 2°.
func Italian() Grammar {
	return SuffixGrammar{
		Language:   language.Italian,
		Separators: []string{"", "."},
		Suffixes:   func(int) []string { return romanceIndicators },
	}
}

// Portuguese accepts 2º, 2.ª, 2°.
func Portuguese() Grammar {
	return SuffixGrammar{
		Language:   language.Portuguese,
		Separators: []string{"", "."},
		Suffixes:   func(int) []string { return romanceIndicators },
	}
}

// Dutch accepts 2e everywhere, plus 1ste, 8ste, 20ste and 2de, 3de.
func Dutch() Grammar {
	return SuffixGrammar{
		Language:   language.Dutch,
		Separators: noSeparator,
		Suffixes: func(n int) []string {
			r := n % 100
			if r == 1 || r == 8 || r >= 20 || (r == 0 && n > 0) {
				return []string{"e", "ste"}
			}
			return []string{"e", "de"}
		},
	}
}

// Russian accepts case endings with or without a hyphen: 5-й, 2-я, 3-го.
func Russian() Grammar {
	endings := []string{"й", "я", "е", "го", "му", "м", "ом", "ый", "ой", "ая", "ое", "ые", "х", "ых"}
	return SuffixGrammar{
		Language:   language.Russian,
		Separators: []string{"", "-"},
		Suffixes:   func(int) []string { return endings },
	}
}
