package pugrest

import (
	"fmt"
	"strconv"
	"strings"
)

// Identifiers holds the lookup values of a request: a single numeric
// id, an ordered list of numeric ids, or one string payload (name,
// SMILES, InChI, formula, ...). The zero value is empty and only valid
// for system domains.
//
// Numeric lists keep their input order and are never deduplicated:
// response rows correlate with request positions, so reordering or
// collapsing ids would break caller-side matching.
type Identifiers struct {
	ids  []uint32
	text string
}

// ID builds Identifiers from a single numeric id.
func ID(id uint32) (Identifiers, error) {
	if id == 0 {
		return Identifiers{}, invalidInput("identifier cannot be zero")
	}
	return Identifiers{ids: []uint32{id}}, nil
}

// IDs builds Identifiers from an ordered list of numeric ids.
func IDs(ids ...uint32) (Identifiers, error) {
	if len(ids) == 0 {
		return Identifiers{}, invalidInput("identifier list cannot be empty")
	}
	for _, id := range ids {
		if id == 0 {
			return Identifiers{}, invalidInput("identifier cannot be zero")
		}
	}
	return Identifiers{ids: append([]uint32(nil), ids...)}, nil
}

// Query builds Identifiers from a string payload.
func Query(s string) (Identifiers, error) {
	if strings.TrimSpace(s) == "" {
		return Identifiers{}, invalidInput("identifier string cannot be empty")
	}
	return Identifiers{text: s}, nil
}

// MustID is ID, panicking on invalid input. Intended for constants and
// tests.
func MustID(id uint32) Identifiers {
	v, err := ID(id)
	if err != nil {
		panic(err)
	}
	return v
}

// MustQuery is Query, panicking on invalid input.
func MustQuery(s string) Identifiers {
	v, err := Query(s)
	if err != nil {
		panic(err)
	}
	return v
}

// From converts loosely typed caller input into Identifiers. Accepted
// kinds: uint32, int, []uint32, []int, string.
func From(v any) (Identifiers, error) {
	switch val := v.(type) {
	case uint32:
		return ID(val)
	case int:
		if val <= 0 {
			return Identifiers{}, invalidInput("identifier must be positive, got %d", val)
		}
		return ID(uint32(val))
	case []uint32:
		return IDs(val...)
	case []int:
		ids := make([]uint32, len(val))
		for i, n := range val {
			if n <= 0 {
				return Identifiers{}, invalidInput("identifier must be positive, got %d", n)
			}
			ids[i] = uint32(n)
		}
		return IDs(ids...)
	case string:
		return Query(val)
	default:
		return Identifiers{}, invalidInput("unsupported identifier type %T", v)
	}
}

// Empty reports whether no identifier values are present.
func (ids Identifiers) Empty() bool {
	return len(ids.ids) == 0 && ids.text == ""
}

// Numeric reports whether the identifiers are numeric ids.
func (ids Identifiers) Numeric() bool {
	return len(ids.ids) > 0
}

// Value returns the raw identifier value: numeric ids comma-joined in
// original order, or the string payload. Not percent-encoded.
func (ids Identifiers) Value() string {
	if len(ids.ids) == 0 {
		return ids.text
	}
	parts := make([]string, len(ids.ids))
	for i, id := range ids.ids {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return strings.Join(parts, ",")
}

// encode renders the identifier value with each element escaped
// individually, keeping the commas between numeric ids literal.
func (ids Identifiers) encode(escape func(string) string) string {
	if len(ids.ids) == 0 {
		return escape(ids.text)
	}
	parts := make([]string, len(ids.ids))
	for i, id := range ids.ids {
		parts[i] = escape(strconv.FormatUint(uint64(id), 10))
	}
	return strings.Join(parts, ",")
}

// String implements fmt.Stringer.
func (ids Identifiers) String() string {
	if ids.Empty() {
		return "<empty>"
	}
	return ids.Value()
}

var _ fmt.Stringer = Identifiers{}
