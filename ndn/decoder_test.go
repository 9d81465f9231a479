package ndn_test

import (
	"encoding/json"
	"testing"

	"github.com/usnistgov/ndnwire/ndn"
	"github.com/usnistgov/ndnwire/ndn/an"
	"github.com/usnistgov/ndnwire/ndn/grammar"
	"github.com/usnistgov/ndnwire/ndn/ndntestvector"
	"github.com/usnistgov/ndnwire/ndn/tlv"
)

func TestDecodeVectors(t *testing.T) {
	assert, _ := makeAR(t)

	for _, tt := range ndntestvector.DecodeTests {
		wire := bytesFromHex(tt.Input)
		var pkt *ndn.Packet
		var e error
		if tt.Suite == an.SuiteUnknown {
			pkt, e = ndn.Decode(wire)
		} else {
			pkt, e = ndn.DecodeSuite(tt.Suite, wire)
		}

		if tt.Err != nil {
			if assert.ErrorIs(e, tt.Err, tt.Input) {
				assert.Equal(tt.ErrOffset, tlv.OffsetOf(e), tt.Input)
			}
			assert.Nil(pkt, tt.Input)
			continue
		}

		if !assert.NoError(e, tt.Input) {
			continue
		}
		assert.Equal(tt.Type, pkt.Type.String(), tt.Input)
		assert.Equal(tt.Name, pkt.Name.String(), tt.Input)
		assert.Equal(makeSpan(0, len(wire)), pkt.Raw, tt.Input)
		assert.Equal(wire, pkt.Wire(), tt.Input)
		for f, v := range tt.Scalars {
			actual, ok := pkt.Scalar(f)
			if assert.True(ok, "%s %s", tt.Input, f) {
				assert.Equal(v, actual, "%s %s", tt.Input, f)
			}
		}
		for f, value := range tt.Opaques {
			actual, ok := pkt.Opaque(f)
			if assert.True(ok, "%s %s", tt.Input, f) {
				bytesEqual(assert, bytesFromHex(value), actual, "%s %s", tt.Input, f)
			}
		}
		assert.Len(pkt.Extensions, tt.NExtensions, tt.Input)
	}
}

func makeSpan(offset, length int) ndn.Span {
	return ndn.Span{Offset: offset, Length: length}
}

func TestDecodeExtension(t *testing.T) {
	assert, require := makeAR(t)

	wire := bytesFromHex("0511 0703080141 FD032002C0C1 0A04A0A1A2A3")
	pkt, e := ndn.Decode(wire)
	require.NoError(e)
	require.Len(pkt.Extensions, 1)

	ext := pkt.Extensions[0]
	assert.EqualValues(800, ext.Type)
	assert.Equal(makeSpan(7, 6), ext.Element)
	assert.Equal(makeSpan(11, 2), ext.Value)
	assert.Equal(bytesFromHex("C0C1"), ext.Value.Of(wire))

	require.Len(pkt.Root.Children, 3)
	assert.False(pkt.Root.Children[1].Known)
	assert.True(pkt.Root.Children[2].Known)
	assert.Equal(grammar.FieldNonce, pkt.Root.Children[2].Field)
}

func TestDecodeFirst(t *testing.T) {
	assert, require := makeAR(t)

	wire := bytesFromHex("0505 0703080141 0602 0700")
	pkt, rest, e := ndn.DecodeFirst(an.SuiteNamedDataTLV, wire)
	require.NoError(e)
	assert.Equal(ndn.PktInterest, pkt.Type)
	assert.Equal(bytesFromHex("0602 0700"), rest)

	_, rest, e = ndn.DecodeFirst(an.SuiteNamedDataTLV, rest)
	require.NoError(e)
	assert.Len(rest, 0)

	_, _, e = ndn.DecodeFirst(an.SuiteUnknown, wire)
	assert.ErrorIs(e, ndn.ErrUnknownSuite)
}

func TestDecodeTree(t *testing.T) {
	assert, require := makeAR(t)

	wire := bytesFromHex("0512 0706080141080142 0A04A0A1A2A3 0C020FA0")
	pkt, e := ndn.Decode(wire)
	require.NoError(e)

	var types []uint64
	var depths []int
	pkt.Root.Walk(func(n *ndn.Node, depth int) bool {
		types = append(types, n.Type)
		depths = append(depths, depth)
		return true
	})
	assert.Equal([]uint64{0x05, 0x07, 0x08, 0x08, 0x0A, 0x0C}, types)
	assert.Equal([]int{0, 1, 2, 2, 1, 1}, depths)

	// children of each container fill its TLV-VALUE exactly
	pkt.Root.Walk(func(n *ndn.Node, depth int) bool {
		if len(n.Children) > 0 {
			sum := 0
			for _, child := range n.Children {
				sum += child.Element.Length
			}
			assert.Equal(n.Value.Length, sum)
		}
		return true
	})

	nVisited := 0
	pkt.Root.Walk(func(n *ndn.Node, depth int) bool {
		nVisited++
		return n.Type != an.TtName
	})
	assert.Equal(4, nVisited)
}

func TestDecodeJSON(t *testing.T) {
	assert, require := makeAR(t)

	pkt, e := ndn.Decode(bytesFromHex("0510 0708 080141 0803FD0102 0A04A0A1A2A3"))
	require.NoError(e)

	j, e := json.Marshal(pkt)
	require.NoError(e)
	var m map[string]interface{}
	require.NoError(json.Unmarshal(j, &m))
	assert.Equal("ndn2013", m["suite"])
	assert.Equal("Interest", m["type"])
	assert.Equal("/A/%FD%01%02", m["name"])
	assert.Equal("a0a1a2a3", m["opaques"].(map[string]interface{})["nonce"])
	comps := m["components"].([]interface{})
	require.Len(comps, 2)
	assert.Equal("v", comps[1].(map[string]interface{})["marker"])
	assert.EqualValues(0x0102, comps[1].(map[string]interface{})["number"])
}

func TestDecodeNestingTooDeep(t *testing.T) {
	assert, _ := makeAR(t)

	ndnNested := func(levels int) []byte {
		wire := bytesFromHex("0700")
		for i := 0; i < levels; i++ {
			wire = append(tlv.EncodeHeader(an.TtKeyLocator, uint64(len(wire))), wire...)
		}
		wire = append(tlv.EncodeHeader(an.TtSignatureInfo, uint64(len(wire))), wire...)
		return append(tlv.EncodeHeader(an.TtData, uint64(len(wire))), wire...)
	}
	ccnxNested := func(levels int) []byte {
		var wire []byte
		for i := 0; i < levels; i++ {
			wire = append(bytesFromHex("0005"), append([]byte{byte(len(wire) >> 8), byte(len(wire))}, wire...)...)
		}
		wire = append(bytesFromHex("0002"), append([]byte{byte(len(wire) >> 8), byte(len(wire))}, wire...)...)
		return append(bytesFromHex("0002"), append([]byte{byte(len(wire) >> 8), byte(len(wire)), 0, 0, 0, 0}, wire...)...)
	}
	rpcNested := func(levels int) []byte {
		wire := []byte{0x01}
		for i := 0; i < levels; i++ {
			wire = append(tlv.EncodeHeader(an.RpcTtSequence, uint64(len(wire))), wire...)
		}
		return append(tlv.EncodeHeader(an.RpcTtApplication, uint64(len(wire))), wire...)
	}
	ccnbNested := func(levels int) []byte {
		wire := bytesFromHex("01D2")
		for i := 0; i < levels; i++ {
			wire = append(wire, 0xF2)
		}
		for i := 0; i <= levels; i++ {
			wire = append(wire, 0x00)
		}
		return wire
	}

	cfg := ndn.DecoderConfig{MaxDepth: 4}
	for _, tt := range []struct {
		suite  an.Suite
		make   func(levels int) []byte
		okLvls int
	}{
		{an.SuiteNamedDataTLV, ndnNested, 1},
		{an.SuiteContentTLV, ccnxNested, 3},
		{an.SuiteLocalRPC, rpcNested, 3},
		{an.SuiteLegacyBinary, ccnbNested, 3},
	} {
		_, e := cfg.DecodeSuite(tt.suite, tt.make(tt.okLvls))
		assert.NoError(e, tt.suite)

		// MaxDepth is raised to MinMaxDepth
		_, e = ndn.DecoderConfig{MaxDepth: 1}.DecodeSuite(tt.suite, tt.make(tt.okLvls))
		assert.NoError(e, tt.suite)

		_, e = cfg.DecodeSuite(tt.suite, tt.make(tt.okLvls+1))
		assert.ErrorIs(e, tlv.ErrNestingTooDeep, tt.suite)

		_, e = cfg.DecodeSuite(tt.suite, tt.make(200))
		assert.ErrorIs(e, tlv.ErrNestingTooDeep, tt.suite)

		_, e = ndn.DecodeSuite(tt.suite, tt.make(200))
		assert.ErrorIs(e, tlv.ErrNestingTooDeep, tt.suite)
	}
}

func TestDecodeNeverPanics(t *testing.T) {
	assert, _ := makeAR(t)

	inputs := []string{
		"0512 0706080141080142 0A04A0A1A2A3 0C020FA0",
		"00 01 001E 0000 000D 0001 0004 A0A1A2A3 0002 0001 20 " +
			"0001 001A 0000 000B 0001 0001 41 0002 0002 C0C1 0003 0001 02 0005 0002 0FA0",
		"8008 830100 05 84026F6B",
		"01D2 F2 FA9D414243 00 00 02CA A5A0A1A2A3 00 02D2 8E31 00 0382 954000 00 00",
		"0621 0703080141 140D 180102 19022710 1A0408020005 15026869 16031B0101 1702C0C1",
	}
	for _, input := range inputs {
		wire := bytesFromHex(input)
		for n := 0; n < len(wire); n++ {
			assert.NotPanics(func() {
				_, e := ndn.Decode(wire[:n])
				assert.Error(e, "%s [:%d]", input, n)
			}, input)
		}
	}
}
