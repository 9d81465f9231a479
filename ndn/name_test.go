package ndn_test

import (
	"testing"

	"github.com/usnistgov/ndnwire/ndn"
	"github.com/usnistgov/ndnwire/ndn/an"
	"github.com/usnistgov/ndnwire/ndn/tlv"
)

func TestNameComponentString(t *testing.T) {
	assert, _ := makeAR(t)

	tests := []struct {
		typ   uint64
		value string
		uri   string
	}{
		{an.TtNameComponent, "41", "A"},
		{an.TtNameComponent, "", "..."},
		{an.TtNameComponent, "2E", "...."},
		{an.TtNameComponent, "00FF", "%00%FF"},
		{0x20, "41", "32=A"},
		{an.CcnbComponent, "414243", "15=ABC"},
	}
	for _, tt := range tests {
		comp := ndn.MakeNameComponent(tt.typ, bytesFromHex(tt.value))
		assert.Equal(tt.uri, comp.String())

		parsed := ndn.ParseNameComponent(tt.uri)
		assert.True(parsed.Equal(comp), tt.uri)
	}
}

func TestNameComponentMarker(t *testing.T) {
	assert, _ := makeAR(t)

	tests := []struct {
		marker an.Marker
		v      uint64
		value  string
	}{
		{an.MarkerSegmentNumber, 0, "0000"},
		{an.MarkerByteOffset, 0x0102, "FB0102"},
		{an.MarkerTimestamp, 0x01020304, "FC01020304"},
		{an.MarkerVersion, 1, "FD01"},
		{an.MarkerSequenceNumber, 0x0100000000, "FE0100000000"},
	}
	for _, tt := range tests {
		comp := ndn.MakeMarkedComponent(tt.marker, tt.v)
		assert.EqualValues(an.TtNameComponent, comp.Type)
		assert.Equal(bytesFromHex(tt.value), comp.Value, tt.marker)

		marker, v, ok := comp.Marker()
		if assert.True(ok, tt.marker) {
			assert.Equal(tt.marker, marker)
			assert.Equal(tt.v, v)
		}
	}

	for _, value := range []string{"", "FD", "41", "FD000000000000000001"} {
		_, _, ok := ndn.MakeNameComponent(an.TtNameComponent, bytesFromHex(value)).Marker()
		assert.False(ok, value)
	}
}

func TestNameMarkerRoundTrip(t *testing.T) {
	assert, require := makeAR(t)

	name := ndn.Name{
		ndn.ParseNameComponent("A"),
		ndn.MakeMarkedComponent(an.MarkerVersion, 7),
		ndn.MakeMarkedComponent(an.MarkerSegmentNumber, 300),
	}
	wire, e := ndn.Encode(ndn.MakeInterest(name, ndn.NonceFromUint(1)))
	require.NoError(e)

	pkt, e := ndn.Decode(wire)
	require.NoError(e)
	require.Len(pkt.Name, 3)

	marker, v, ok := pkt.Name[1].Marker()
	assert.True(ok)
	assert.Equal(an.MarkerVersion, marker)
	assert.EqualValues(7, v)

	marker, v, ok = pkt.Name[2].Marker()
	assert.True(ok)
	assert.Equal(an.MarkerSegmentNumber, marker)
	assert.EqualValues(300, v)
}

func TestNameCompare(t *testing.T) {
	assert, _ := makeAR(t)

	a := ndn.ParseName("/A")
	ab := ndn.ParseName("/A/B")
	b := ndn.ParseName("/B")
	assert.True(a.IsPrefixOf(ab))
	assert.True(a.IsPrefixOf(a))
	assert.False(ab.IsPrefixOf(a))
	assert.False(b.IsPrefixOf(ab))
	assert.Negative(a.Compare(ab))
	assert.Negative(ab.Compare(b))
	assert.Positive(b.Compare(a))
	assert.True(ab.GetPrefix(-1).Equal(a))
	assert.True(ab.Get(-1).Equal(ndn.ParseNameComponent("B")))
	assert.False(ab.Get(5).Valid())

	var parsed ndn.Name
	assert.NoError(parsed.UnmarshalText([]byte("/A/B")))
	assert.True(parsed.Equal(ab))
	text, e := ab.MarshalText()
	assert.NoError(e)
	assert.Equal("/A/B", string(text))
}

func TestNameEncode(t *testing.T) {
	assert, _ := makeAR(t)

	wire, e := ndn.Encode(ndn.ParseName("/A/32=B"))
	assert.NoError(e)
	assert.Equal(bytesFromHex("0706 080141 200142"), wire)

	wire, e = ndn.Encode(ndn.Name{})
	assert.NoError(e)
	assert.Equal(bytesFromHex("0700"), wire)

	_, e = ndn.Encode(ndn.Name{ndn.MakeNameComponent(0, nil)})
	assert.ErrorIs(e, ndn.ErrComponentType)

	name := ndn.ParseName("/A/B/C")
	assert.Equal(11, len(tlv.EncodeHeader(an.TtName, uint64(name.Length())))+name.Length())
}
