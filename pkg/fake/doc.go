// Package fake provides the data corpus behind leaf generators.
//
// The Provider interface is the seam between generator evaluation and the
// source of fake values: the evaluator hands it a tag, a resolved locale,
// the compiled parameters and a random source, and gets back one
// JSON-compatible value. Faker is the built-in implementation, backed by
// word lists for EN, JA_JP, AR_SA, FR_FR, PT_BR, ZH_CN and ZH_TW. Lists a
// locale lacks are taken from EN.
//
// Output types:
//
//	words, sentences, paragraphs   []string, length in [min, max)
//	sentence                       string, word count in [min, max)
//	paragraph                      string, newline-separated sentences, count in [min, max)
//	password                       string, length in [min, max)
//	digit                          int64 0-9
//	boolean                        bool, true with probability ratio%
//	number_with_format             string, '#' -> 0-9, '^' -> 1-9
//	everything else                string
package fake
