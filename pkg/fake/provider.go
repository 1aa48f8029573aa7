package fake

import (
	"fmt"
	mathrand "math/rand/v2"
	"strconv"
	"strings"

	"github.com/getmockd/fakegen/pkg/locale"
	"github.com/getmockd/fakegen/pkg/schema"
	"github.com/google/uuid"
)

// Params carries the compiled parameters of a leaf generator. Only the
// fields of the tag's shape are meaningful.
type Params struct {
	Min    int
	Max    int
	Ratio  uint8
	Format string
}

// Provider draws values for leaf tags.
//
// Draw must return a JSON-compatible value: string, bool, int64, float64
// or []string. Implementations must be safe for concurrent use and take
// all randomness from rng so that seeded runs are reproducible.
type Provider interface {
	Draw(rng *mathrand.Rand, tag schema.Tag, loc locale.Locale, p Params) any
}

// Faker is the built-in corpus-backed Provider. It is stateless.
type Faker struct{}

// New returns the default provider.
func New() *Faker {
	return &Faker{}
}

// Supports reports whether f can draw tag.
func (f *Faker) Supports(tag schema.Tag) bool {
	shape, ok := schema.ShapeOf(tag)
	return ok && shape.IsLeaf()
}

// Draw implements Provider. Unknown tags yield nil; the compiler never
// produces them.
func (f *Faker) Draw(rng *mathrand.Rand, tag schema.Tag, loc locale.Locale, p Params) any {
	c := corpusFor(loc)

	switch tag {
	// --- Lorem ---
	case schema.TagWord:
		return pick(rng, c.words)
	case schema.TagWords:
		return words(rng, c, between(rng, p.Min, p.Max))
	case schema.TagSentence:
		return sentence(rng, loc, c, between(rng, p.Min, p.Max))
	case schema.TagSentences:
		return sentences(rng, loc, c, between(rng, p.Min, p.Max))
	case schema.TagParagraph:
		return paragraph(rng, loc, c, between(rng, p.Min, p.Max))
	case schema.TagParagraphs:
		return paragraphs(rng, loc, c, between(rng, p.Min, p.Max))

	// --- Names ---
	case schema.TagFirstName:
		return pick(rng, c.firstNames)
	case schema.TagLastName:
		return pick(rng, c.lastNames)
	case schema.TagTitle:
		return pick(rng, c.titles)
	case schema.TagSuffix:
		return pick(rng, c.suffixes)
	case schema.TagName:
		return fullName(rng, c)
	case schema.TagNameWithTitle:
		if c.familyFirst {
			return fullName(rng, c) + pick(rng, c.titles)
		}
		return pick(rng, c.titles) + " " + fullName(rng, c)

	// --- Numbers ---
	case schema.TagDigit:
		return int64(intN(rng, 10))
	case schema.TagNumberWithFormat:
		return numberWithFormat(rng, p.Format)
	case schema.TagBoolean:
		return boolean(rng, p.Ratio)

	// --- Internet ---
	case schema.TagFreeEmailProvider:
		return pick(rng, freeEmailProviders)
	case schema.TagDomainSuffix:
		return pick(rng, domainSuffixes)
	case schema.TagFreeEmail:
		return username(rng) + "@" + pick(rng, freeEmailProviders)
	case schema.TagSafeEmail:
		return username(rng) + "@" + pick(rng, safeEmailDomains)
	case schema.TagUsername:
		return username(rng)
	case schema.TagIP:
		if intN(rng, 2) == 0 {
			return ipv4(rng)
		}
		return ipv6(rng)
	case schema.TagIPv4:
		return ipv4(rng)
	case schema.TagIPv6:
		return ipv6(rng)
	case schema.TagMACAddress:
		return macAddress(rng)
	case schema.TagUserAgent:
		return pick(rng, userAgents)
	case schema.TagPassword:
		return password(rng, between(rng, p.Min, p.Max))

	// --- HTTP ---
	case schema.TagRFCStatusCode:
		s := statusCodes[intN(rng, len(statusCodes))]
		return strconv.Itoa(s.code) + " " + s.reason
	case schema.TagValidStatusCode:
		return strconv.Itoa(between(rng, 100, 600))

	// --- Color ---
	case schema.TagColor:
		return pick(rng, colors)
	case schema.TagHexColor:
		return fmt.Sprintf("#%02x%02x%02x", intN(rng, 256), intN(rng, 256), intN(rng, 256))
	case schema.TagRGBColor:
		return fmt.Sprintf("rgb(%d,%d,%d)", intN(rng, 256), intN(rng, 256), intN(rng, 256))

	// --- Company ---
	case schema.TagCompanyName:
		return companyName(rng, c)
	case schema.TagCompanySuffix:
		return pick(rng, companySuffixes)
	case schema.TagProfession:
		return pick(rng, jobLevels) + " " + pick(rng, jobFields) + " " + pick(rng, jobRoles)
	case schema.TagIndustry:
		return pick(rng, industries)
	case schema.TagBuzzword:
		return pick(rng, buzzwords)

	// --- Identifiers ---
	case schema.TagUUID:
		if rng == nil {
			return uuid.NewString()
		}
		id, err := uuid.NewRandomFromReader(rngReader{rng})
		if err != nil {
			return uuid.NewString()
		}
		return id.String()
	}
	return nil
}

func fullName(rng *mathrand.Rand, c *corpus) string {
	first, last := pick(rng, c.firstNames), pick(rng, c.lastNames)
	if c.familyFirst {
		return last + first
	}
	return first + " " + last
}

func companyName(rng *mathrand.Rand, c *corpus) string {
	switch intN(rng, 3) {
	case 0:
		return pick(rng, c.lastNames) + " " + pick(rng, companySuffixes)
	case 1:
		return pick(rng, c.lastNames) + "-" + pick(rng, c.lastNames)
	default:
		return pick(rng, c.lastNames) + ", " + pick(rng, c.lastNames) + " and " + pick(rng, c.lastNames)
	}
}

// boolean is true with probability ratio percent; ratios of 100 and above
// are always true.
func boolean(rng *mathrand.Rand, ratio uint8) bool {
	return intN(rng, 100) < int(ratio)
}

// numberWithFormat replaces '#' with a digit 0-9 and '^' with a digit 1-9.
// Every other character is copied.
func numberWithFormat(rng *mathrand.Rand, format string) string {
	var sb strings.Builder
	sb.Grow(len(format))
	for _, r := range format {
		switch r {
		case '#':
			sb.WriteByte(byte('0' + intN(rng, 10)))
		case '^':
			sb.WriteByte(byte('1' + intN(rng, 9)))
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func password(rng *mathrand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = passwordChars[intN(rng, len(passwordChars))]
	}
	return string(b)
}

func username(rng *mathrand.Rand) string {
	stem := pick(rng, usernameStems)
	switch intN(rng, 3) {
	case 0:
		return stem
	case 1:
		return stem + "." + pick(rng, usernameStems)
	default:
		return stem + strconv.Itoa(intN(rng, 1000))
	}
}

func ipv4(rng *mathrand.Rand) string {
	return fmt.Sprintf("%d.%d.%d.%d", intN(rng, 256), intN(rng, 256), intN(rng, 256), intN(rng, 256))
}

// ipv6 renders the full expanded notation.
func ipv6(rng *mathrand.Rand) string {
	groups := make([]string, 8)
	for i := range groups {
		groups[i] = fmt.Sprintf("%04x", intN(rng, 65536))
	}
	return strings.Join(groups, ":")
}

func macAddress(rng *mathrand.Rand) string {
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X",
		intN(rng, 256), intN(rng, 256), intN(rng, 256),
		intN(rng, 256), intN(rng, 256), intN(rng, 256))
}
