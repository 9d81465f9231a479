package tlv

import "encoding"

// NNI is a non-negative integer.
// It is encoded in the fewest big-endian octets that hold the value; zero occupies one octet.
type NNI uint64

var _ encoding.BinaryUnmarshaler = (*NNI)(nil)

// Size returns the wire encoding size.
func (n NNI) Size() int {
	size := 1
	for v := uint64(n) >> 8; v != 0; v >>= 8 {
		size++
	}
	return size
}

// Encode appends this number to a buffer.
func (n NNI) Encode(b []byte) []byte {
	for i := n.Size() - 1; i >= 0; i-- {
		b = append(b, byte(n>>(8*i)))
	}
	return b
}

// UnmarshalBinary decodes this number.
// Between 1 and 8 octets are accepted.
func (n *NNI) UnmarshalBinary(wire []byte) error {
	v, e := DecodeNNI(wire)
	if e != nil {
		return e
	}
	*n = NNI(v)
	return nil
}

// DecodeNNI decodes a NonNegativeInteger TLV-VALUE.
func DecodeNNI(value []byte) (v uint64, e error) {
	if len(value) < 1 || len(value) > 8 {
		return 0, ErrMalformedValue
	}
	for _, b := range value {
		v = v<<8 | uint64(b)
	}
	return v, nil
}
