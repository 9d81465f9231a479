package ccnb_test

import (
	"io"
	"testing"

	"github.com/usnistgov/ndnwire/ndn/an"
	"github.com/usnistgov/ndnwire/ndn/ccnb"
	"github.com/usnistgov/ndnwire/ndn/tlv"
)

func TestReader(t *testing.T) {
	assert, require := makeAR(t)

	wire := bytesFromHex("01D2 F2 FA 9D616263 00 00 02CA A5A0A1A2A3 00 02D2 8E31 00 00")
	r := ccnb.NewReader(wire, 8)

	expects := []struct {
		kind   ccnb.TokenKind
		num    uint64
		offset int
		end    int
		depth  int
		value  string
	}{
		{ccnb.KindOpen, an.CcnbInterest, 0, 2, 0, ""},
		{ccnb.KindOpen, an.CcnbName, 2, 3, 1, ""},
		{ccnb.KindOpen, an.CcnbComponent, 3, 4, 2, ""},
		{ccnb.KindBlob, 3, 4, 8, 3, "616263"},
		{ccnb.KindClose, an.CcnbComponent, 3, 9, 2, "9D616263"},
		{ccnb.KindClose, an.CcnbName, 2, 10, 1, "FA9D61626300"},
		{ccnb.KindOpen, an.CcnbNonce, 10, 12, 1, ""},
		{ccnb.KindBlob, 4, 12, 17, 2, "A0A1A2A3"},
		{ccnb.KindClose, an.CcnbNonce, 10, 18, 1, "A5A0A1A2A3"},
		{ccnb.KindOpen, an.CcnbScope, 18, 20, 1, ""},
		{ccnb.KindUData, 1, 20, 22, 2, "31"},
		{ccnb.KindClose, an.CcnbScope, 18, 23, 1, "8E31"},
		{ccnb.KindClose, an.CcnbInterest, 0, 24, 0, ""},
	}
	for i, expect := range expects {
		tok, e := r.Next()
		require.NoError(e, i)
		assert.Equal(expect.kind, tok.Kind, i)
		assert.Equal(expect.num, tok.Num, i)
		assert.Equal(expect.offset, tok.Offset, i)
		assert.Equal(expect.end, tok.End, i)
		assert.Equal(expect.depth, tok.Depth, i)
		if expect.value != "" {
			assert.Equal(bytesFromHex(expect.value), tok.Value, i)
		}
	}
	assert.Equal(len(wire), r.Pos())
	assert.Equal(0, r.Depth())

	_, e := r.Next()
	assert.Equal(io.EOF, e)
}

func TestReaderAttribute(t *testing.T) {
	assert, require := makeAR(t)

	wire := ccnb.AppendHeader(nil, ccnb.TtDTag, an.CcnbName)
	wire = ccnb.AppendHeader(wire, ccnb.TtDAttr, 5)
	wire = ccnb.AppendUData(wire, "xy")
	wire = ccnb.AppendHeader(wire, ccnb.TtTag, 1)
	wire = append(wire, "ab"...)
	wire = ccnb.AppendBlob(wire, []byte{0xC0})
	wire = ccnb.AppendClose(wire)
	wire = ccnb.AppendClose(wire)

	r := ccnb.NewReader(wire, 8)
	tok, e := r.Next()
	require.NoError(e)
	assert.Equal(ccnb.KindOpen, tok.Kind)

	tok, e = r.Next()
	require.NoError(e)
	assert.Equal(ccnb.KindAttribute, tok.Kind)
	assert.Equal(ccnb.TtDAttr, tok.Type)
	assert.EqualValues(5, tok.Num)
	assert.Equal([]byte("xy"), tok.Value)

	tok, e = r.Next()
	require.NoError(e)
	assert.Equal(ccnb.KindOpen, tok.Kind)
	assert.Equal(ccnb.TtTag, tok.Type)
	assert.Equal([]byte("ab"), tok.Tag)

	closed, e := r.Skip(tok)
	require.NoError(e)
	assert.Equal(ccnb.KindClose, closed.Kind)
	assert.Equal([]byte("ab"), closed.Tag)
	assert.Equal(bytesFromHex("8DC0"), closed.Value)

	tok, e = r.Next()
	require.NoError(e)
	assert.Equal(ccnb.KindClose, tok.Kind)
	assert.EqualValues(an.CcnbName, tok.Num)
}

func TestReaderErrors(t *testing.T) {
	assert, _ := makeAR(t)

	tests := []struct {
		wire   string
		bad    error
		offset int
	}{
		{"00", tlv.ErrMalformedHeader, 0},
		{"F2 00 00", tlv.ErrMalformedHeader, 2},
		{"01D2 F2", tlv.ErrTruncated, 3},
		{"F2 9D41", tlv.ErrLengthOverrun, 1},
		{"F2 80", tlv.ErrMalformedHeader, 1},
		{"F2 8C 9D414243", tlv.ErrMalformedHeader, 2},
		{"F2F2F2F2", tlv.ErrNestingTooDeep, 3},
	}
	for _, tt := range tests {
		r := ccnb.NewReader(bytesFromHex(tt.wire), 3)
		var e error
		for e == nil {
			_, e = r.Next()
		}
		assert.ErrorIs(e, tt.bad, tt.wire)
		assert.Equal(tt.offset, tlv.OffsetOf(e), tt.wire)
	}
}
