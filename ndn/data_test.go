package ndn_test

import (
	"errors"
	"testing"
	"time"

	"github.com/usnistgov/ndnwire/ndn"
	"github.com/usnistgov/ndnwire/ndn/an"
	"github.com/usnistgov/ndnwire/ndn/grammar"
	"github.com/usnistgov/ndnwire/ndn/tlv"
)

func TestDataEncode(t *testing.T) {
	assert, _ := makeAR(t)

	data := ndn.MakeData("/A", []byte("hi"))
	wire, e := ndn.Encode(data)
	assert.NoError(e)
	assert.Equal(bytesFromHex("0612 name=0703080141 meta=1400 content=15026869 "+
		"siginfo=1603(sigtype=1B0101) sigvalue=1700"), wire)

	data = ndn.MakeData("/A", ndn.ContentType(an.ContentKey), 10*time.Second, ndn.FinalBlock(5),
		[]byte("hi"), ndn.SigType(an.SigSha256WithEcdsa))
	data.KeyLocator = ndn.ParseName("/K")
	data.SigValue = bytesFromHex("C0C1")
	wire, e = ndn.Encode(data)
	assert.NoError(e)
	assert.Equal(bytesFromHex("0628 name=0703080141 "+
		"meta=140D(contenttype=180102 freshness=19022710 finalblock=1A04(08020005)) content=15026869 "+
		"siginfo=160A(sigtype=1B0102 keylocator=1C05(0703 08014B)) sigvalue=1702C0C1"), wire)
	assert.Equal("/A", data.String())
	assert.Equal("ECDSA", data.SigType.String())
}

func TestDataEncodeContentOffset(t *testing.T) {
	assert, require := makeAR(t)

	wire, contentOffset, e := ndn.EncoderConfig{}.EncodeData(ndn.MakeData("/A", []byte("hi")))
	require.NoError(e)
	assert.Equal(11, contentOffset)
	assert.Equal([]byte("hi"), wire[contentOffset:contentOffset+2])

	content := make([]byte, 300)
	wire, contentOffset, e = ndn.EncoderConfig{}.EncodeData(ndn.MakeData("/A/B/C", content))
	require.NoError(e)
	pkt, e := ndn.Decode(wire)
	require.NoError(e)
	span, ok := pkt.Span(grammar.FieldPayload)
	require.True(ok)
	assert.Equal(span.Value.Offset, contentOffset)
	assert.Equal(300, span.Value.Length)
}

func TestDataRoundTrip(t *testing.T) {
	assert, require := makeAR(t)

	data := ndn.MakeData("/A/B", ndn.ContentType(an.ContentLink), 2500*time.Millisecond, ndn.FinalBlock(300),
		[]byte("payload"), ndn.SigType(an.SigHmacWithSha256))
	data.SigValue = bytesFromHex("D0D1D2D3")
	wire, e := ndn.Encode(data)
	require.NoError(e)

	pkt, e := ndn.Decode(wire)
	require.NoError(e)
	assert.Equal(ndn.PktData, pkt.Type)
	assert.True(pkt.Name.Equal(data.Name))
	assert.Equal([]byte("payload"), pkt.Payload())

	for f, v := range map[grammar.Field]uint64{
		grammar.FieldContentType: an.ContentLink,
		grammar.FieldFreshness:   2500,
		grammar.FieldSigType:     an.SigHmacWithSha256,
	} {
		actual, ok := pkt.Scalar(f)
		assert.True(ok, f)
		assert.Equal(v, actual, f)
	}

	sigValue, _ := pkt.Opaque(grammar.FieldSigValue)
	assert.Equal(data.SigValue, sigValue)
	finalBlock, _ := pkt.Opaque(grammar.FieldFinalBlockID)
	assert.Equal(bytesFromHex("0803 00012C"), finalBlock)
}

func TestDataBufferTooSmall(t *testing.T) {
	assert, _ := makeAR(t)

	data := ndn.MakeData("/A", make([]byte, 100))
	_, e := ndn.EncoderConfig{Capacity: 64}.Encode(data)
	assert.ErrorIs(e, tlv.ErrBufferTooSmall)

	_, e = ndn.EncoderConfig{Capacity: 256}.Encode(data)
	assert.NoError(e)

	_, e = ndn.EncoderConfig{Capacity: 1500}.Encode(ndn.MakeData("/A", make([]byte, 1700)))
	assert.ErrorIs(e, tlv.ErrBufferTooSmall)

	_, e = ndn.EncoderConfig{Capacity: 10}.Encode(ndn.MakeInterest("/A"))
	assert.ErrorIs(e, tlv.ErrBufferTooSmall)

	wire, e := ndn.Encode(data)
	assert.NoError(e)
	_, e = ndn.EncoderConfig{Capacity: len(wire)}.Encode(data)
	assert.NoError(e)
	_, _, e = ndn.EncoderConfig{Capacity: len(wire) - 1}.EncodeData(data)
	assert.ErrorIs(e, tlv.ErrBufferTooSmall)
}

func TestDataFreshnessRounding(t *testing.T) {
	assert, require := makeAR(t)

	wire, e := ndn.Encode(ndn.MakeData("/A", 100*time.Microsecond))
	require.NoError(e)
	pkt, e := ndn.Decode(wire)
	require.NoError(e)
	freshness, ok := pkt.Scalar(grammar.FieldFreshness)
	assert.True(ok)
	assert.EqualValues(1, freshness)
}

func TestDataValidate(t *testing.T) {
	assert, _ := makeAR(t)

	data := ndn.MakeData("/A", ndn.SigType(3), -time.Second)
	data.KeyLocator = ndn.Name{ndn.MakeNameComponent(0, nil)}
	e := data.Validate()
	assert.ErrorIs(e, ndn.ErrSigType)
	assert.ErrorIs(e, ndn.ErrComponentType)

	_, e = ndn.Encode(data)
	assert.True(errors.Is(e, ndn.ErrSigType))

	assert.Panics(func() { ndn.MakeData(1.5) })
}
