package tlv

import (
	"fmt"

	binutils "github.com/jfoster/binary-utilities"
	"github.com/pkg/math"
)

// Encoder capacity limits and defaults.
const (
	MinCapacity     = 64
	MaxCapacity     = 1 << 20
	DefaultCapacity = 4096
)

// AlignCapacity adjusts encoder capacity to a power of two between MinCapacity and MaxCapacity.
// DefaultCapacity is used if input is zero.
func AlignCapacity(capacity int) int {
	if capacity <= 0 {
		capacity = DefaultCapacity
	} else {
		capacity = int(binutils.NextPowerOfTwo(int64(capacity)))
	}
	return math.MinInt(math.MaxInt(MinCapacity, capacity), MaxCapacity)
}

// Encoder builds TLV elements back to front in a fixed-capacity buffer.
//
// Every Prepend method either writes all of its octets or none of them.
// Contents of a nested element are written before its header, so that the header carries the exact length.
type Encoder struct {
	buf []byte
	off int
}

// NewEncoder creates an Encoder that accepts at most capacity octets.
// DefaultCapacity is used if capacity is zero; it is truncated to MaxCapacity.
// The underlying allocation is sized with AlignCapacity.
func NewEncoder(capacity int) *Encoder {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	capacity = math.MinInt(capacity, MaxCapacity)
	alloc := AlignCapacity(capacity)
	return &Encoder{
		buf: make([]byte, alloc)[alloc-capacity:],
		off: capacity,
	}
}

// Cap returns the octet limit.
func (enc *Encoder) Cap() int {
	return len(enc.buf)
}

// Offset returns the write offset, measured from the start of the buffer.
// It is also the number of octets still available.
func (enc *Encoder) Offset() int {
	return enc.off
}

// Len returns the number of octets written, measured from the end of the buffer.
func (enc *Encoder) Len() int {
	return len(enc.buf) - enc.off
}

// Bytes returns written octets.
// The slice aliases the buffer and is valid until the next Reset.
func (enc *Encoder) Bytes() []byte {
	return enc.buf[enc.off:]
}

// Reset discards written octets.
func (enc *Encoder) Reset() {
	enc.off = len(enc.buf)
}

func (enc *Encoder) reserve(n int) ([]byte, error) {
	if n > enc.off {
		return nil, fmt.Errorf("%w: need %d octets, %d available", ErrBufferTooSmall, n, enc.off)
	}
	enc.off -= n
	return enc.buf[enc.off : enc.off+n], nil
}

// PrependBytes prepends raw octets.
func (enc *Encoder) PrependBytes(b []byte) error {
	room, e := enc.reserve(len(b))
	if e != nil {
		return e
	}
	copy(room, b)
	return nil
}

// PrependByte prepends one octet.
func (enc *Encoder) PrependByte(c byte) error {
	room, e := enc.reserve(1)
	if e != nil {
		return e
	}
	room[0] = c
	return nil
}

// PrependVarNum prepends a VarNum in its minimal form.
func (enc *Encoder) PrependVarNum(v uint64) error {
	room, e := enc.reserve(VarNum(v).Size())
	if e != nil {
		return e
	}
	VarNum(v).Encode(room[:0])
	return nil
}

// PrependTL prepends TLV-TYPE and TLV-LENGTH.
func (enc *Encoder) PrependTL(typ, length uint64) error {
	typSize := VarNum(typ).Size()
	room, e := enc.reserve(typSize + VarNum(length).Size())
	if e != nil {
		return e
	}
	VarNum(typ).Encode(room[:0])
	VarNum(length).Encode(room[typSize:typSize])
	return nil
}

// PrependNNI prepends a NonNegativeInteger without TLV header.
func (enc *Encoder) PrependNNI(v uint64) error {
	room, e := enc.reserve(NNI(v).Size())
	if e != nil {
		return e
	}
	NNI(v).Encode(room[:0])
	return nil
}

// PrependTLNNI prepends a TLV element whose TLV-VALUE is a NonNegativeInteger.
func (enc *Encoder) PrependTLNNI(typ, v uint64) error {
	return enc.atomic(func() error {
		if e := enc.PrependNNI(v); e != nil {
			return e
		}
		return enc.PrependTL(typ, uint64(NNI(v).Size()))
	})
}

// PrependMarkedNNI prepends a TLV element whose TLV-VALUE is a marker octet followed by a NonNegativeInteger.
func (enc *Encoder) PrependMarkedNNI(typ uint64, marker byte, v uint64) error {
	return enc.atomic(func() error {
		if e := enc.PrependNNI(v); e != nil {
			return e
		}
		if e := enc.PrependByte(marker); e != nil {
			return e
		}
		return enc.PrependTL(typ, uint64(1+NNI(v).Size()))
	})
}

// PrependBlob prepends a TLV element with given TLV-VALUE.
func (enc *Encoder) PrependBlob(typ uint64, value []byte) error {
	return enc.atomic(func() error {
		if e := enc.PrependBytes(value); e != nil {
			return e
		}
		return enc.PrependTL(typ, uint64(len(value)))
	})
}

// PrependNested prepends a TLV element whose TLV-VALUE is written by fn.
// fn must prepend the last child first.
// If fn or the header write fails, everything written since the call is discarded.
func (enc *Encoder) PrependNested(typ uint64, fn func(enc *Encoder) error) error {
	return enc.atomic(func() error {
		end := enc.off
		if e := fn(enc); e != nil {
			return e
		}
		return enc.PrependTL(typ, uint64(end-enc.off))
	})
}

func (enc *Encoder) atomic(fn func() error) error {
	saved := enc.off
	if e := fn(); e != nil {
		enc.off = saved
		return e
	}
	return nil
}

// Compose runs fn on a new Encoder and returns a copy of the written octets.
// If fn fails, no octets are returned.
func Compose(capacity int, fn func(enc *Encoder) error) ([]byte, error) {
	enc := NewEncoder(capacity)
	if e := fn(enc); e != nil {
		return nil, e
	}
	return append([]byte{}, enc.Bytes()...), nil
}
