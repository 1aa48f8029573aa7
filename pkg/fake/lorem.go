package fake

import (
	mathrand "math/rand/v2"
	"strings"

	"github.com/getmockd/fakegen/pkg/locale"
	"golang.org/x/text/cases"
)

// Sentence and paragraph sizes used when a generator asks for whole
// sentences or paragraphs rather than words.
const (
	sentenceMinWords      = 4
	sentenceMaxWords      = 10
	paragraphMinSentences = 3
	paragraphMaxSentences = 7
)

func words(rng *mathrand.Rand, c *corpus, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = pick(rng, c.words)
	}
	return out
}

// sentence joins n words in the locale's manner, capitalizes the first and
// terminates with the locale's period. Zero words yield "".
func sentence(rng *mathrand.Rand, loc locale.Locale, c *corpus, n int) string {
	if n == 0 {
		return ""
	}
	w := words(rng, c, n)
	// Casers are stateful; one per call keeps Draw safe for concurrent use.
	w[0] = cases.Title(loc.Tag(), cases.NoLower).String(w[0])

	sep := " "
	if !loc.UsesSpaces() {
		sep = ""
	}
	return strings.Join(w, sep) + c.period
}

func sentences(rng *mathrand.Rand, loc locale.Locale, c *corpus, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = sentence(rng, loc, c, between(rng, sentenceMinWords, sentenceMaxWords))
	}
	return out
}

// paragraph is n sentences separated by newlines.
func paragraph(rng *mathrand.Rand, loc locale.Locale, c *corpus, n int) string {
	return strings.Join(sentences(rng, loc, c, n), "\n")
}

func paragraphs(rng *mathrand.Rand, loc locale.Locale, c *corpus, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = paragraph(rng, loc, c, between(rng, paragraphMinSentences, paragraphMaxSentences))
	}
	return out
}
