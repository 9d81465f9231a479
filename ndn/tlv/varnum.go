// Package tlv implements Type-Length-Value (TLV) primitives shared by the length-prefixed wire suites.
package tlv

import "math"

// VarNum represents a number in variable size encoding for TLV-TYPE or TLV-LENGTH.
type VarNum uint64

// Size returns the wire encoding size.
func (n VarNum) Size() int {
	switch {
	case n < 0xFD:
		return 1
	case n <= math.MaxUint16:
		return 3
	case n <= math.MaxUint32:
		return 5
	default:
		return 9
	}
}

// Encode appends this number to a buffer, in its minimal form.
func (n VarNum) Encode(buf []byte) []byte {
	switch {
	case n < 0xFD:
		return append(buf, byte(n))
	case n <= math.MaxUint16:
		return append(buf, 0xFD, byte(n>>8), byte(n))
	case n <= math.MaxUint32:
		return append(buf, 0xFE, byte(n>>24), byte(n>>16), byte(n>>8), byte(n))
	default:
		return append(buf, 0xFF, byte(n>>56), byte(n>>48), byte(n>>40), byte(n>>32),
			byte(n>>24), byte(n>>16), byte(n>>8), byte(n))
	}
}

// Decode extracts a VarNum from the buffer.
// Non-minimal forms are accepted.
func (n *VarNum) Decode(wire []byte) (rest []byte, e error) {
	v, size, e := DecodeVarNum(wire, 0)
	if e != nil {
		return nil, e
	}
	*n = VarNum(v)
	return wire[size:], nil
}

// DecodeVarNum decodes a VarNum starting at wire[pos].
// Returns the value and the number of octets consumed.
func DecodeVarNum(wire []byte, pos int) (v uint64, size int, e error) {
	if pos < 0 || pos >= len(wire) {
		return 0, 0, ErrTruncated
	}
	switch lead := wire[pos]; lead {
	case 0xFD:
		size = 3
	case 0xFE:
		size = 5
	case 0xFF:
		size = 9
	default:
		return uint64(lead), 1, nil
	}
	if len(wire)-pos < size {
		return 0, 0, ErrTruncated
	}
	for _, b := range wire[pos+1 : pos+size] {
		v = v<<8 | uint64(b)
	}
	return v, size, nil
}

// EncodeVarNum returns the minimal encoding of v.
func EncodeVarNum(v uint64) []byte {
	return VarNum(v).Encode(nil)
}
