package numeric

import (
	"errors"
	"sync"
	"testing"

	"github.com/c360studio/citenum/ordinal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		locale string
		want   bool
		rule   Rule
	}{
		// Plain numbers
		{"integer", "42", "en", true, RuleNumeric},
		{"negative decimal", "-3.5", "en", true, RuleNumeric},
		{"signed", "+7", "en", true, RuleNumeric},
		{"leading dot", ".5", "en", true, RuleNumeric},
		{"trailing dot", "2.", "en", true, RuleNumeric},
		{"exponent", "1e3", "en", true, RuleNumeric},
		{"surrounding space", "  12 ", "en", true, RuleNumeric},

		// Ordinals
		{"english ordinal", "2nd", "en", true, RuleOrdinal},
		{"wrong suffix", "2rd", "en", false, RuleOrdinal},
		{"teen", "12th", "en", true, RuleOrdinal},
		{"affix not ordinal", "2b", "en", false, RuleOrdinal},
		{"french in english", "2e", "en", false, RuleOrdinal},
		{"french", "2e", "fr", true, RuleOrdinal},
		{"regional locale", "2nd", "en-GB", true, RuleOrdinal},
		{"unknown locale falls back", "2nd", "xx-invalid", true, RuleOrdinal},
		{"empty locale falls back", "3rd", "", true, RuleOrdinal},
		{"ordinal beyond int range", "99999999999999999999th", "en", true, RuleOrdinal},
		{"wrong suffix beyond int range", "99999999999999999992th", "en", false, RuleOrdinal},
		{"trailing word", "2nd edition", "en", false, RuleNone},

		// Roman numerals
		{"roman", "IV", "en", true, RuleRoman},
		{"lower roman", "xiv", "en", true, RuleRoman},
		{"roman with period", "XII.", "en", true, RuleRoman},
		{"non-canonical roman", "IIII", "en", true, RuleRoman},
		{"roman-letter word did", "did", "en", true, RuleRoman},
		{"roman-letter word mix", "mix", "en", true, RuleRoman},
		{"roman-letter word civil", "civil", "en", true, RuleRoman},

		// Ranges and lists
		{"comma list", "2, 3", "en", true, RuleRange},
		{"hyphen range", "2-4", "en", true, RuleRange},
		{"spaced hyphen", "2 - 4", "en", true, RuleRange},
		{"ampersand", "2 & 4", "en", true, RuleRange},
		{"en dash", "12–15", "en", true, RuleRange},
		{"affixed items", "D2-D5", "en", true, RuleRange},
		{"long list", "1, 3, 5-7 & 9", "en", true, RuleRange},

		// Literal text
		{"empty", "", "en", false, RuleNone},
		{"word", "second", "en", false, RuleNone},
		{"letters", "abc", "en", false, RuleNone},
		{"single prefixed item", "D2", "en", false, RuleNone},
		{"single affixed item", "L2d", "en", false, RuleNone},
		{"dangling separator", "2-", "en", false, RuleNone},
		{"ordinal in list", "2nd-4th", "en", false, RuleNone},
		{"trailing text after number", "12 pages", "en", false, RuleNone},
	}

	c := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.value, tt.locale))

			v := c.Explain(tt.value, tt.locale)
			assert.Equal(t, tt.want, v.Numeric)
			assert.Equal(t, tt.rule, v.Rule)
		})
	}
}

func TestClassify_PackageLevel(t *testing.T) {
	assert.True(t, Classify("2nd", "en"))
	assert.False(t, Classify("2rd", "en"))
}

func TestClassify_StrictRoman(t *testing.T) {
	c := New(WithRomanMode(RomanStrict))
	assert.Equal(t, RomanStrict, c.RomanMode())

	assert.True(t, c.Classify("XIV", "en"))
	assert.True(t, c.Classify("mcmxcix", "en"))
	assert.False(t, c.Classify("IIII", "en"))
	assert.False(t, c.Classify("VX", "en"))

	// Roman-letter words only pass when they happen to be canonical.
	assert.False(t, c.Classify("did", "en"))
	assert.False(t, c.Classify("civil", "en"))
	assert.True(t, c.Classify("mix", "en"))

	// A failed decode does not fall through to later rules.
	v := c.Explain("IIII", "en")
	assert.Equal(t, RuleRoman, v.Rule)
}

func TestClassify_LocaleIndependentForNonOrdinals(t *testing.T) {
	c := New()
	values := []string{"42", "-3.5", "IV", "IIII", "2, 3", "2 - 4", "2 & 4", "second", ""}
	locales := []string{"en", "fr", "de", "ru", "", "zz"}

	for _, value := range values {
		want := c.Classify(value, "en")
		for _, locale := range locales {
			assert.Equal(t, want, c.Classify(value, locale), "value %q locale %q", value, locale)
		}
	}
}

func TestClassify_Idempotent(t *testing.T) {
	c := New()
	for i := 0; i < 3; i++ {
		assert.True(t, c.Classify("2nd", "en"))
		assert.False(t, c.Classify("2rd", "en"))
	}
}

func TestClassify_Concurrent(t *testing.T) {
	c := New()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				assert.True(t, c.Classify("2-4", "en"))
				assert.True(t, c.Classify("21st", "en"))
				assert.False(t, c.Classify("2nd edition", "en"))
			}
		}()
	}
	wg.Wait()
}

func TestClassifyInput(t *testing.T) {
	c := New()
	n := 7
	assert.True(t, c.ClassifyInput(Input{Value: "2nd", Locale: "en", CitationNumber: &n}))
	assert.False(t, c.ClassifyInput(Input{Value: "2nd edition"}))
}

func TestWithDefaultLocale(t *testing.T) {
	c := New(WithDefaultLocale("fr"))
	assert.True(t, c.Classify("2e", ""))
	assert.False(t, c.Classify("2e", "en"))

	// Blank values keep the built-in default.
	c = New(WithDefaultLocale("  "))
	assert.True(t, c.Classify("2nd", ""))
}

type stubOrdinals struct {
	calls []string
}

func (s *stubOrdinals) ParseOrdinal(value, locale string) (int, error) {
	s.calls = append(s.calls, locale)
	if value == "9z" {
		return 9, nil
	}
	return 0, ordinal.ErrNotOrdinal
}

func TestWithOrdinals(t *testing.T) {
	stub := &stubOrdinals{}
	c := New(WithOrdinals(stub))

	assert.True(t, c.Classify("9z", "xx"))
	assert.False(t, c.Classify("2nd", "en"))
	assert.Equal(t, []string{"xx", "en"}, stub.calls)

	// Non-ordinal shapes never reach the parser.
	c.Classify("42", "en")
	c.Classify("IV", "en")
	assert.Len(t, stub.calls, 2)
}

func TestWithOrdinals_CustomGrammar(t *testing.T) {
	reg := ordinal.NewEmptyRegistry(language.English)
	reg.Register(ordinal.English())
	reg.Register(ordinal.SuffixGrammar{
		Language:   language.Swedish,
		Separators: []string{"", ":"},
		Suffixes:   func(n int) []string { return []string{"a", "e"} },
	})
	c := New(WithOrdinals(reg))

	assert.True(t, c.Classify("2a", "sv"))
	assert.False(t, c.Classify("2a", "en"))
}

func TestRules(t *testing.T) {
	assert.Equal(t, []Rule{RuleNumeric, RuleOrdinal, RuleRoman, RuleRange}, New().Rules())
}

func TestDecodeRoman(t *testing.T) {
	tests := []struct {
		in      string
		mode    RomanMode
		want    int
		wantErr bool
	}{
		{"IV", RomanLenient, 4, false},
		{"iv", RomanStrict, 4, false},
		{"XIV.", RomanStrict, 14, false},
		{"MCMXCIX", RomanStrict, 1999, false},
		{"MMMCMXCIX", RomanStrict, 3999, false},
		{"IIII", RomanLenient, 4, false},
		{"IIII", RomanStrict, 0, true},
		{"IIX", RomanLenient, 10, false},
		{"IIX", RomanStrict, 0, true},
		{"VX", RomanStrict, 0, true},
		{"IC", RomanStrict, 0, true},
		{"MMMM", RomanLenient, 4000, false},
		{"MMMM", RomanStrict, 0, true},
		{"", RomanLenient, 0, true},
		{"ABC", RomanLenient, 0, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode)+"/"+tt.in, func(t *testing.T) {
			got, err := DecodeRoman(tt.in, tt.mode)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidRoman))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeRoman(t *testing.T) {
	for n := 1; n <= 3999; n++ {
		s, err := EncodeRoman(n)
		require.NoError(t, err)
		got, err := DecodeRoman(s, RomanStrict)
		require.NoError(t, err, s)
		require.Equal(t, n, got)
	}

	_, err := EncodeRoman(0)
	assert.ErrorIs(t, err, ErrInvalidRoman)
	_, err = EncodeRoman(4000)
	assert.ErrorIs(t, err, ErrInvalidRoman)
}

func TestParseRomanMode(t *testing.T) {
	m, err := ParseRomanMode("")
	require.NoError(t, err)
	assert.Equal(t, RomanLenient, m)

	m, err = ParseRomanMode("STRICT")
	require.NoError(t, err)
	assert.Equal(t, RomanStrict, m)

	_, err = ParseRomanMode("loose")
	assert.Error(t, err)
}
