package ccnb

import (
	"io"

	"github.com/usnistgov/ndnwire/ndn/tlv"
)

// TokenKind classifies tokens returned by Reader.
type TokenKind uint8

// TokenKind values.
const (
	KindOpen TokenKind = iota + 1
	KindClose
	KindBlob
	KindUData
	KindAttribute
)

func (k TokenKind) String() string {
	switch k {
	case KindOpen:
		return "open"
	case KindClose:
		return "close"
	case KindBlob:
		return "blob"
	case KindUData:
		return "udata"
	case KindAttribute:
		return "attribute"
	}
	return "invalid"
}

// Token is one syntactic unit of a CCNB stream.
type Token struct {
	Kind TokenKind
	Type TokenType
	// Num is the dictionary tag of DTAG and DATTR, or the value length of BLOB and UDATA.
	// In a close token it is copied from the matching open token.
	Num uint64
	// Tag is the tag name of TAG and ATTR.
	Tag []byte

	// Offset is where the token starts.
	// In a close token it is the offset of the matching open token.
	Offset     int
	HeaderSize int
	// End is the offset just past this token.
	End int

	Value       []byte
	ValueOffset int

	// Depth is the number of open containers enclosing this token.
	// An open token and its close token have the same depth.
	Depth int
}

type openContainer struct {
	typ    TokenType
	num    uint64
	tag    []byte
	offset int
	size   int
}

// Reader is a state machine that tokenizes CCNB with strict nesting.
type Reader struct {
	wire     []byte
	pos      int
	maxDepth int
	stack    []openContainer
}

// NewReader creates a Reader.
// maxDepth limits the number of simultaneously open containers.
func NewReader(wire []byte, maxDepth int) *Reader {
	return &Reader{
		wire:     wire,
		maxDepth: maxDepth,
	}
}

// Pos returns the offset of the next token.
func (r *Reader) Pos() int {
	return r.pos
}

// Depth returns the number of open containers.
func (r *Reader) Depth() int {
	return len(r.stack)
}

// Next reads the next token.
// Returns io.EOF when input is exhausted with no open container.
func (r *Reader) Next() (tok Token, e error) {
	if r.pos >= len(r.wire) {
		if len(r.stack) > 0 {
			return tok, tlv.ErrAt(r.pos, tlv.ErrTruncated)
		}
		return tok, io.EOF
	}

	h, e := DecodeHeader(r.wire, r.pos)
	if e != nil {
		return tok, tlv.ErrAt(r.pos, e)
	}
	if h.IsClose() {
		return r.close()
	}

	tok = Token{
		Type:       h.Type,
		Num:        h.Num,
		Offset:     r.pos,
		HeaderSize: h.Size,
		Depth:      len(r.stack),
	}
	after := r.pos + h.Size

	switch h.Type {
	case TtDTag, TtTag:
		if h.Type == TtTag {
			if tok.Tag, after, e = r.slice(after, h.Num+1); e != nil {
				return Token{}, e
			}
		}
		if len(r.stack) >= r.maxDepth {
			return Token{}, tlv.ErrAt(r.pos, tlv.ErrNestingTooDeep)
		}
		tok.Kind = KindOpen
		r.stack = append(r.stack, openContainer{typ: h.Type, num: h.Num, tag: tok.Tag, offset: r.pos, size: after - r.pos})
	case TtBlob, TtUData:
		tok.Kind = KindBlob
		if h.Type == TtUData {
			tok.Kind = KindUData
		}
		tok.ValueOffset = after
		if tok.Value, after, e = r.slice(after, h.Num); e != nil {
			return Token{}, e
		}
	case TtAttr, TtDAttr:
		if h.Type == TtAttr {
			if tok.Tag, after, e = r.slice(after, h.Num+1); e != nil {
				return Token{}, e
			}
		}
		vh, e := DecodeHeader(r.wire, after)
		if e != nil {
			return Token{}, tlv.ErrAt(after, e)
		}
		if vh.Type != TtUData {
			return Token{}, tlv.ErrAt(after, tlv.ErrMalformedHeader)
		}
		tok.Kind = KindAttribute
		tok.ValueOffset = after + vh.Size
		if tok.Value, after, e = r.slice(after+vh.Size, vh.Num); e != nil {
			return Token{}, e
		}
	}

	tok.End = after
	r.pos = after
	return tok, nil
}

func (r *Reader) slice(start int, length uint64) (b []byte, end int, e error) {
	if length > uint64(len(r.wire)-start) {
		return nil, 0, tlv.ErrAt(r.pos, tlv.ErrLengthOverrun)
	}
	end = start + int(length)
	return r.wire[start:end], end, nil
}

func (r *Reader) close() (tok Token, e error) {
	n := len(r.stack)
	if n == 0 {
		return tok, tlv.ErrAt(r.pos, tlv.ErrMalformedHeader)
	}
	c := r.stack[n-1]
	r.stack = r.stack[:n-1]
	r.pos++
	return Token{
		Kind:        KindClose,
		Type:        c.typ,
		Num:         c.num,
		Tag:         c.tag,
		Offset:      c.offset,
		HeaderSize:  c.size,
		End:         r.pos,
		Value:       r.wire[c.offset+c.size : r.pos-1],
		ValueOffset: c.offset + c.size,
		Depth:       n - 1,
	}, nil
}

// Skip consumes tokens until the container opened by tok is closed.
// tok must be the most recently returned open token.
func (r *Reader) Skip(tok Token) (closed Token, e error) {
	for {
		if closed, e = r.Next(); e != nil {
			if e == io.EOF {
				e = tlv.ErrAt(r.pos, tlv.ErrTruncated)
			}
			return closed, e
		}
		if closed.Kind == KindClose && closed.Depth == tok.Depth {
			return closed, nil
		}
	}
}
