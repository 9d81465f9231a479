package ndn

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/usnistgov/ndnwire/ndn/an"
	"github.com/usnistgov/ndnwire/ndn/tlv"
)

var (
	unescapedChars = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-._~")
	hexChars       = []byte("0123456789ABCDEF")
)

func isValidNameComponentType(typ uint64) bool {
	return typ >= 1 && typ <= 65535
}

// NameComponent represents a name component.
// Type is the suite-local component type, such as an.TtNameComponent in NDN-TLV.
type NameComponent struct {
	Type  uint64
	Value []byte
}

// MakeNameComponent constructs a NameComponent from TLV-TYPE and TLV-VALUE.
func MakeNameComponent(typ uint64, value []byte) NameComponent {
	return NameComponent{Type: typ, Value: value}
}

// MakeMarkedComponent constructs a generic NameComponent that carries a marker octet followed by a NonNegativeInteger.
//
//	MakeMarkedComponent(an.MarkerVersion, 1)
func MakeMarkedComponent(marker an.Marker, v uint64) NameComponent {
	value := tlv.NNI(v).Encode([]byte{byte(marker)})
	return NameComponent{Type: an.TtNameComponent, Value: value}
}

// Valid checks whether this component has a valid TLV-TYPE.
func (comp NameComponent) Valid() bool {
	return isValidNameComponentType(comp.Type)
}

// Marker interprets this component as a marker octet followed by a NonNegativeInteger.
// ok is false if the component does not follow this convention.
func (comp NameComponent) Marker() (marker an.Marker, v uint64, ok bool) {
	if len(comp.Value) < 2 {
		return 0, 0, false
	}
	marker = an.Marker(comp.Value[0])
	if !marker.IsKnown() {
		return 0, 0, false
	}
	v, e := tlv.DecodeNNI(comp.Value[1:])
	if e != nil {
		return 0, 0, false
	}
	return marker, v, true
}

// Size returns the NDN-TLV encoded size.
func (comp NameComponent) Size() int {
	return tlv.VarNumHeader.HeaderSize(comp.Type, uint64(len(comp.Value))) + len(comp.Value)
}

// Equal determines whether two components are the same.
func (comp NameComponent) Equal(other NameComponent) bool {
	return comp.Compare(other) == 0
}

// Compare returns negative when comp<other, zero when comp==other, positive when comp>other.
func (comp NameComponent) Compare(other NameComponent) int {
	switch {
	case comp.Type < other.Type:
		return -1
	case comp.Type > other.Type:
		return 1
	}
	if d := len(comp.Value) - len(other.Value); d != 0 {
		return d
	}
	return bytes.Compare(comp.Value, other.Value)
}

// PrependTo implements Encodable interface.
func (comp NameComponent) PrependTo(enc *tlv.Encoder) error {
	if !comp.Valid() {
		return ErrComponentType
	}
	return enc.PrependBlob(comp.Type, comp.Value)
}

// String returns URI representation of this component.
// Generic components are written without a type prefix.
func (comp NameComponent) String() string {
	return string(comp.appendStringTo(make([]byte, 0, 6+3*len(comp.Value))))
}

func (comp NameComponent) appendStringTo(b []byte) []byte {
	if comp.Type != an.TtNameComponent {
		b = strconv.AppendUint(b, comp.Type, 10)
		b = append(b, '=')
	}

	allPeriods := true
	for _, ch := range comp.Value {
		if bytes.IndexByte(unescapedChars, ch) >= 0 {
			b = append(b, ch)
		} else {
			b = append(b, '%', hexChars[ch>>4], hexChars[ch&0x0F])
		}
		allPeriods = allPeriods && (ch == '.')
	}

	if allPeriods {
		b = append(b, '.', '.', '.')
	}
	return b
}

// ParseNameComponent parses URI representation of name component.
// It uses best effort and can accept any input.
func ParseNameComponent(input string) (comp NameComponent) {
	comp.Type = an.TtNameComponent
	if typS, valS, hasTyp := strings.Cut(input, "="); hasTyp {
		typ, e := strconv.ParseUint(typS, 10, 16)
		if e == nil && isValidNameComponentType(typ) {
			comp.Type = typ
			input = valS
		}
	}

	if len(strings.TrimRight(input, ".")) == 0 && len(input) >= 3 {
		comp.Value = []byte(input)[3:]
		return comp
	}

	var value bytes.Buffer
	value.Grow(len(input))
	for i := 0; i < len(input); {
		ch := input[i]
		if ch == '%' && i+2 < len(input) {
			if b, e := strconv.ParseUint(input[i+1:i+3], 16, 8); e == nil {
				value.WriteByte(byte(b))
				i += 3
				continue
			}
		}
		value.WriteByte(ch)
		i++
	}
	comp.Value = value.Bytes()
	return comp
}
