package schema

import (
	"slices"
)

// Tag is the value of a schema node's "fake_type" field.
type Tag string

// Scalar tags.
const (
	TagWord              Tag = "word"
	TagFirstName         Tag = "first_name"
	TagLastName          Tag = "last_name"
	TagTitle             Tag = "title"
	TagSuffix            Tag = "suffix"
	TagName              Tag = "name"
	TagNameWithTitle     Tag = "name_with_title"
	TagDigit             Tag = "digit"
	TagFreeEmailProvider Tag = "free_email_provider"
	TagDomainSuffix      Tag = "domain_suffix"
	TagFreeEmail         Tag = "free_email"
	TagSafeEmail         Tag = "safe_email"
	TagUsername          Tag = "username"
	TagIP                Tag = "ip"
	TagIPv4              Tag = "ip_v4"
	TagIPv6              Tag = "ip_v6"
	TagMACAddress        Tag = "mac_address"
	TagUserAgent         Tag = "user_agent"
	TagRFCStatusCode     Tag = "rfc_status_code"
	TagValidStatusCode   Tag = "valid_status_code"
	TagColor             Tag = "color"
	TagHexColor          Tag = "hex_color"
	TagRGBColor          Tag = "rgb_color"
	TagCompanyName       Tag = "company_name"
	TagCompanySuffix     Tag = "company_suffix"
	TagProfession        Tag = "profession"
	TagIndustry          Tag = "industry"
	TagBuzzword          Tag = "buzzword"
	TagUUID              Tag = "uuid"
)

// Ranged scalar tags.
const (
	TagWords      Tag = "words"
	TagSentence   Tag = "sentence"
	TagSentences  Tag = "sentences"
	TagParagraph  Tag = "paragraph"
	TagParagraphs Tag = "paragraphs"
	TagPassword   Tag = "password"
)

// Remaining tags, one per shape.
const (
	TagBoolean          Tag = "boolean"
	TagNumberWithFormat Tag = "number_with_format"
	TagArray            Tag = "array"
	TagMap              Tag = "map"
	TagConstant         Tag = "constant"
)

// Shape is the parameter shape of a generator. The set is closed.
type Shape int

// Generator shapes.
const (
	ShapeScalar Shape = iota
	ShapeRangedScalar
	ShapeRatioScalar
	ShapeFormattedScalar
	ShapeArray
	ShapeMap
	ShapeConstant
)

func (s Shape) String() string {
	switch s {
	case ShapeScalar:
		return "scalar"
	case ShapeRangedScalar:
		return "ranged_scalar"
	case ShapeRatioScalar:
		return "ratio_scalar"
	case ShapeFormattedScalar:
		return "formatted_scalar"
	case ShapeArray:
		return "array"
	case ShapeMap:
		return "map"
	case ShapeConstant:
		return "constant"
	default:
		return "unknown"
	}
}

// IsLeaf reports whether generators of this shape draw from a provider.
func (s Shape) IsLeaf() bool {
	return s <= ShapeFormattedScalar
}

// Schema node field names.
const (
	FieldFakeType = "fake_type"
	FieldLang     = "lang"
	FieldMin      = "min"
	FieldMax      = "max"
	FieldRatio    = "ratio"
	FieldFormat   = "format"
	FieldCount    = "count"
	FieldValue    = "value"
)

// RequiredFields returns the fields a node of shape s must carry besides
// fake_type. Composite shapes additionally need nested generator fields.
func (s Shape) RequiredFields() []string {
	switch s {
	case ShapeScalar:
		return []string{FieldLang}
	case ShapeRangedScalar:
		return []string{FieldLang, FieldMin, FieldMax}
	case ShapeRatioScalar:
		return []string{FieldLang, FieldRatio}
	case ShapeFormattedScalar:
		return []string{FieldLang, FieldFormat}
	case ShapeArray:
		return []string{FieldCount}
	case ShapeConstant:
		return []string{FieldValue}
	default:
		return nil
	}
}

var registry = map[Tag]Shape{
	TagWord:              ShapeScalar,
	TagFirstName:         ShapeScalar,
	TagLastName:          ShapeScalar,
	TagTitle:             ShapeScalar,
	TagSuffix:            ShapeScalar,
	TagName:              ShapeScalar,
	TagNameWithTitle:     ShapeScalar,
	TagDigit:             ShapeScalar,
	TagFreeEmailProvider: ShapeScalar,
	TagDomainSuffix:      ShapeScalar,
	TagFreeEmail:         ShapeScalar,
	TagSafeEmail:         ShapeScalar,
	TagUsername:          ShapeScalar,
	TagIP:                ShapeScalar,
	TagIPv4:              ShapeScalar,
	TagIPv6:              ShapeScalar,
	TagMACAddress:        ShapeScalar,
	TagUserAgent:         ShapeScalar,
	TagRFCStatusCode:     ShapeScalar,
	TagValidStatusCode:   ShapeScalar,
	TagColor:             ShapeScalar,
	TagHexColor:          ShapeScalar,
	TagRGBColor:          ShapeScalar,
	TagCompanyName:       ShapeScalar,
	TagCompanySuffix:     ShapeScalar,
	TagProfession:        ShapeScalar,
	TagIndustry:          ShapeScalar,
	TagBuzzword:          ShapeScalar,
	TagUUID:              ShapeScalar,

	TagWords:      ShapeRangedScalar,
	TagSentence:   ShapeRangedScalar,
	TagSentences:  ShapeRangedScalar,
	TagParagraph:  ShapeRangedScalar,
	TagParagraphs: ShapeRangedScalar,
	TagPassword:   ShapeRangedScalar,

	TagBoolean:          ShapeRatioScalar,
	TagNumberWithFormat: ShapeFormattedScalar,
	TagArray:            ShapeArray,
	TagMap:              ShapeMap,
	TagConstant:         ShapeConstant,
}

// ShapeOf returns the shape registered for tag.
func ShapeOf(tag Tag) (Shape, bool) {
	s, ok := registry[tag]
	return s, ok
}

// Tags returns every registered tag in ascending order.
func Tags() []Tag {
	tags := make([]Tag, 0, len(registry))
	for t := range registry {
		tags = append(tags, t)
	}
	slices.Sort(tags)
	return tags
}

// TagsOf returns the registered tags of shape s in ascending order.
func TagsOf(s Shape) []Tag {
	var tags []Tag
	for t, shape := range registry {
		if shape == s {
			tags = append(tags, t)
		}
	}
	slices.Sort(tags)
	return tags
}
