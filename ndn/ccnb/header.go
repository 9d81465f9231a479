// Package ccnb implements the CCNB legacy binary tag-length encoding.
package ccnb

import (
	"strconv"

	"github.com/usnistgov/ndnwire/ndn/tlv"
)

// TokenType is the type of a CCNB header, carried in the low 3 bits of its terminal octet.
type TokenType uint8

// TokenType values.
const (
	TtExt TokenType = iota
	TtTag
	TtDTag
	TtAttr
	TtDAttr
	TtBlob
	TtUData
)

func (tt TokenType) String() string {
	switch tt {
	case TtExt:
		return "EXT"
	case TtTag:
		return "TAG"
	case TtDTag:
		return "DTAG"
	case TtAttr:
		return "ATTR"
	case TtDAttr:
		return "DATTR"
	case TtBlob:
		return "BLOB"
	case TtUData:
		return "UDATA"
	}
	return strconv.Itoa(int(tt))
}

// MaxHeaderWidth is the maximum number of octets in one header.
const MaxHeaderWidth = 4

// MaxHeaderNum is the largest number that fits in MaxHeaderWidth octets.
const MaxHeaderNum = 1<<(7*(MaxHeaderWidth-1)+4) - 1

// CloseMarker is the octet that closes the innermost open container.
const CloseMarker = 0x00

// Header is a decoded CCNB header.
type Header struct {
	Type TokenType
	Num  uint64
	Size int
}

// IsClose determines whether this header is a close marker.
// DecodeHeader never returns any other header of type EXT.
func (h Header) IsClose() bool {
	return h.Type == TtExt && h.Size == 1
}

// DecodeHeader decodes a header starting at wire[pos].
//
// Each octet before the terminal one contributes 7 bits to the number.
// The terminal octet has its high bit set; bits 3..6 are the low 4 bits of the number and bits 0..2 are the TokenType.
func DecodeHeader(wire []byte, pos int) (h Header, e error) {
	if pos < 0 || pos >= len(wire) {
		return h, tlv.ErrTruncated
	}
	if wire[pos] == CloseMarker {
		return Header{Type: TtExt, Size: 1}, nil
	}

	var val uint64
	for i := 0; i < MaxHeaderWidth; i++ {
		if pos+i >= len(wire) {
			return h, tlv.ErrTruncated
		}
		c := wire[pos+i]
		if c&0x80 == 0 {
			val = val<<7 | uint64(c)
			continue
		}
		h = Header{
			Type: TokenType(c & 0x07),
			Num:  val<<4 | uint64((c>>3)&0x0F),
			Size: i + 1,
		}
		if h.Type == TtExt {
			return Header{}, tlv.ErrMalformedHeader
		}
		return h, nil
	}
	return h, tlv.ErrMalformedHeader
}

// HeaderSize returns the encoded size of a header.
func HeaderSize(num uint64) int {
	size := 1
	for v := num >> 4; v != 0; v >>= 7 {
		size++
	}
	return size
}

// AppendHeader appends a header.
// num must not exceed MaxHeaderNum (1<<25 - 1), otherwise the header exceeds MaxHeaderWidth and cannot be decoded.
func AppendHeader(b []byte, tt TokenType, num uint64) []byte {
	var groups [10]byte
	n := 0
	for v := num >> 4; v != 0; v >>= 7 {
		groups[n] = byte(v & 0x7F)
		n++
	}
	for i := n - 1; i >= 0; i-- {
		b = append(b, groups[i])
	}
	return append(b, 0x80|byte(num&0x0F)<<3|byte(tt&0x07))
}

// AppendClose appends a close marker.
func AppendClose(b []byte) []byte {
	return append(b, CloseMarker)
}

// AppendBlob appends a BLOB element.
func AppendBlob(b []byte, value []byte) []byte {
	b = AppendHeader(b, TtBlob, uint64(len(value)))
	return append(b, value...)
}

// AppendUData appends a UDATA element.
func AppendUData(b []byte, text string) []byte {
	b = AppendHeader(b, TtUData, uint64(len(text)))
	return append(b, text...)
}
