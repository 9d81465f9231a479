package tlv

import "math"

// Header is a decoded TLV header.
type Header struct {
	Type   uint64
	Length uint64
	// Size is the number of octets occupied by TLV-TYPE and TLV-LENGTH.
	Size int
}

// HeaderFormat is a TLV header shape.
type HeaderFormat interface {
	// DecodeHeader decodes a header starting at wire[pos].
	DecodeHeader(wire []byte, pos int) (Header, error)
	// AppendHeader appends the encoding of a header.
	AppendHeader(b []byte, typ, length uint64) ([]byte, error)
	// HeaderSize returns the encoded header size.
	HeaderSize(typ, length uint64) int
}

// Header formats.
var (
	// VarNumHeader encodes TLV-TYPE and TLV-LENGTH as VarNum.
	VarNumHeader HeaderFormat = varNumHeader{}
	// Fixed16Header encodes TLV-TYPE and TLV-LENGTH as 16-bit big-endian integers.
	Fixed16Header HeaderFormat = fixed16Header{}
)

type varNumHeader struct{}

func (varNumHeader) DecodeHeader(wire []byte, pos int) (h Header, e error) {
	typ, typSize, e := DecodeVarNum(wire, pos)
	if e != nil {
		return h, e
	}
	length, lenSize, e := DecodeVarNum(wire, pos+typSize)
	if e != nil {
		return h, e
	}
	return Header{Type: typ, Length: length, Size: typSize + lenSize}, nil
}

func (varNumHeader) AppendHeader(b []byte, typ, length uint64) ([]byte, error) {
	b = VarNum(typ).Encode(b)
	return VarNum(length).Encode(b), nil
}

func (varNumHeader) HeaderSize(typ, length uint64) int {
	return VarNum(typ).Size() + VarNum(length).Size()
}

type fixed16Header struct{}

func (fixed16Header) DecodeHeader(wire []byte, pos int) (h Header, e error) {
	if pos < 0 || len(wire)-pos < 4 {
		return h, ErrTruncated
	}
	return Header{
		Type:   uint64(wire[pos])<<8 | uint64(wire[pos+1]),
		Length: uint64(wire[pos+2])<<8 | uint64(wire[pos+3]),
		Size:   4,
	}, nil
}

func (fixed16Header) AppendHeader(b []byte, typ, length uint64) ([]byte, error) {
	if typ > math.MaxUint16 || length > math.MaxUint16 {
		return b, ErrMalformedHeader
	}
	return append(b, byte(typ>>8), byte(typ), byte(length>>8), byte(length)), nil
}

func (fixed16Header) HeaderSize(typ, length uint64) int {
	return 4
}

// DecodeHeader decodes a VarNum TLV header starting at wire[pos].
func DecodeHeader(wire []byte, pos int) (Header, error) {
	return VarNumHeader.DecodeHeader(wire, pos)
}

// EncodeHeader encodes a VarNum TLV header.
func EncodeHeader(typ, length uint64) []byte {
	b, _ := VarNumHeader.AppendHeader(nil, typ, length)
	return b
}
