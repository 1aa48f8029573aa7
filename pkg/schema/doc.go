// Package schema compiles fake data definitions into generator trees.
//
// A definition is a JSON (or YAML) object whose values are schema nodes.
// Every node names its generator in "fake_type" and carries the fields that
// generator's shape requires:
//
//	{
//	  "name":  {"fake_type": "first_name", "lang": "EN"},
//	  "bio":   {"fake_type": "sentence", "lang": "EN", "min": 4, "max": 10},
//	  "admin": {"fake_type": "boolean", "lang": "EN", "ratio": 10},
//	  "phone": {"fake_type": "number_with_format", "lang": "EN", "format": "0##-####-####"},
//	  "tags":  {"fake_type": "array", "count": 3, "template": {"fake_type": "word", "lang": "EN"}},
//	  "home":  {"fake_type": "map", "ip": {"fake_type": "ip_v4", "lang": "EN"}},
//	  "kind":  {"fake_type": "constant", "value": "user"}
//	}
//
// # Shapes
//
//   - scalar: lang
//   - ranged_scalar: lang, min, max (integers, 0 <= min < max)
//   - ratio_scalar: lang, ratio (integer 0-255)
//   - formatted_scalar: lang, format
//   - array: count plus exactly one nested schema node under any key
//   - map: one or more nested schema nodes
//   - constant: value, any JSON value
//
// Compilation is all-or-nothing: the first invalid node aborts it with a
// *CompileError carrying the node's JSONPath. Compiled generators are
// immutable; randomness is drawn only when they are evaluated (see package
// generate).
package schema
