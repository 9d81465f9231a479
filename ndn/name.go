package ndn

import (
	"strings"

	"github.com/usnistgov/ndnwire/ndn/an"
	"github.com/usnistgov/ndnwire/ndn/tlv"
)

// Name represents a name.
// The zero Name has zero components.
type Name []NameComponent

var _ Encodable = Name{}

// Length returns NDN-TLV TLV-LENGTH.
// Use len(name) to get number of components.
func (name Name) Length() int {
	sum := 0
	for _, comp := range name {
		sum += comp.Size()
	}
	return sum
}

// Get returns i-th component.
// If negative, count from the end.
// If out-of-range, return invalid NameComponent.
func (name Name) Get(i int) NameComponent {
	if i < 0 {
		i += len(name)
	}
	if i < 0 || i >= len(name) {
		return NameComponent{}
	}
	return name[i]
}

// GetPrefix returns a prefix of i components.
// If negative, count from the end.
func (name Name) GetPrefix(i int) Name {
	if i < 0 {
		i += len(name)
	}
	if i <= 0 {
		return Name{}
	}
	if i >= len(name) {
		return name
	}
	return name[:i]
}

// Equal determines whether two names are the same.
func (name Name) Equal(other Name) bool {
	return name.Compare(other) == 0
}

// Compare returns negative when name<other, zero when name==other, positive when name>other.
func (name Name) Compare(other Name) int {
	if d := name.compareCommonPrefix(other); d != 0 {
		return d
	}
	return len(name) - len(other)
}

// IsPrefixOf returns true if this name is a prefix of other name.
func (name Name) IsPrefixOf(other Name) bool {
	if d := name.compareCommonPrefix(other); d != 0 {
		return false
	}
	return len(name) <= len(other)
}

func (name Name) compareCommonPrefix(other Name) int {
	commonPrefixLen := len(name)
	if commonPrefixLen > len(other) {
		commonPrefixLen = len(other)
	}
	for i := 0; i < commonPrefixLen; i++ {
		if d := name[i].Compare(other[i]); d != 0 {
			return d
		}
	}
	return 0
}

// PrependTo implements Encodable interface.
// Components are written last to first, followed by the Name TLV header.
func (name Name) PrependTo(enc *tlv.Encoder) error {
	return enc.PrependNested(an.TtName, func(enc *tlv.Encoder) error {
		for i := len(name) - 1; i >= 0; i-- {
			if e := name[i].PrependTo(enc); e != nil {
				return e
			}
		}
		return nil
	})
}

// MarshalText implements encoding.TextMarshaler interface.
func (name Name) MarshalText() (text []byte, e error) {
	return []byte(name.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler interface.
func (name *Name) UnmarshalText(text []byte) error {
	*name = ParseName(string(text))
	return nil
}

// String returns URI representation of this name.
func (name Name) String() string {
	if len(name) == 0 {
		return "/"
	}
	b := make([]byte, 0, 2*name.Length())
	for _, comp := range name {
		b = append(b, '/')
		b = comp.appendStringTo(b)
	}
	return string(b)
}

// ParseName parses URI representation of name.
// It uses best effort and can accept any input.
func ParseName(input string) (name Name) {
	input = strings.TrimPrefix(input, "ndn:")
	name = Name{}
	for _, token := range strings.Split(input, "/") {
		if token == "" {
			continue
		}
		name = append(name, ParseNameComponent(token))
	}
	return name
}
