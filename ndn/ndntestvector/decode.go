package ndntestvector

import (
	"github.com/usnistgov/ndnwire/ndn"
	"github.com/usnistgov/ndnwire/ndn/an"
	"github.com/usnistgov/ndnwire/ndn/grammar"
	"github.com/usnistgov/ndnwire/ndn/tlv"
)

// DecodeTests contains test vectors for the multi-suite decoder.
// If Suite is unknown, the suite is detected from the input.
// If Err is set, decoding fails with that error at ErrOffset.
var DecodeTests = []struct {
	Suite       an.Suite
	Input       string
	Err         error
	ErrOffset   int
	Type        string
	Name        string
	Scalars     map[grammar.Field]uint64
	Opaques     map[grammar.Field]string
	NExtensions int
}{
	{
		Input: "0512 0706080141080142 0A04A0A1A2A3 0C020FA0",
		Type:  "Interest",
		Name:  "/A/B",
		Scalars: map[grammar.Field]uint64{
			grammar.FieldNonce:    0xA0A1A2A3,
			grammar.FieldLifetime: 4000,
		},
		Opaques: map[grammar.Field]string{
			grammar.FieldName:  "080141080142",
			grammar.FieldNonce: "A0A1A2A3",
		},
	},
	{
		Input: "0518 0703080141 0908 0D0101 0E0102 1200 0A04A0A1A2A3 0B0101",
		Type:  "Interest",
		Name:  "/A",
		Scalars: map[grammar.Field]uint64{
			grammar.FieldMinSuffix:   1,
			grammar.FieldMaxSuffix:   2,
			grammar.FieldMustBeFresh: 1,
			grammar.FieldNonce:       0xA0A1A2A3,
			grammar.FieldScope:       1,
		},
	},
	{
		Input: "0621 0703080141 140D 180102 19022710 1A0408020005 15026869 16031B0101 1702C0C1",
		Type:  "Data",
		Name:  "/A",
		Scalars: map[grammar.Field]uint64{
			grammar.FieldContentType: 2,
			grammar.FieldFreshness:   10000,
			grammar.FieldSigType:     1,
		},
		Opaques: map[grammar.Field]string{
			grammar.FieldFinalBlockID: "08020005",
			grammar.FieldPayload:      "6869",
			grammar.FieldSigInfo:      "1B0101",
			grammar.FieldSigValue:     "C0C1",
		},
	},
	{ // Name in KeyLocator is not the packet name
		Input: "061A 0703080141 1400 1500 160D 1B0101 1C08 0706 080443455254 1700",
		Type:  "Data",
		Name:  "/A",
		Opaques: map[grammar.Field]string{
			grammar.FieldName:       "080141",
			grammar.FieldKeyLocator: "0706080443455254",
		},
	},
	{
		Suite: an.SuiteNamedDataTLV,
		Input: "640C 5006 510101 5C0103 52020500",
		Type:  "Fragment",
		Name:  "/",
		Scalars: map[grammar.Field]uint64{
			grammar.FieldSequence:  1,
			grammar.FieldFragFlags: 3,
		},
		Opaques: map[grammar.Field]string{
			grammar.FieldPayload: "0500",
		},
	},
	{ // unknown element is skipped
		Input: "0511 0703080141 FD032002C0C1 0A04A0A1A2A3",
		Type:  "Interest",
		Name:  "/A",
		Scalars: map[grammar.Field]uint64{
			grammar.FieldNonce: 0xA0A1A2A3,
		},
		NExtensions: 1,
	},
	{ // only the first occurrence is recorded
		Input: "0511 0703080141 0A04A0A1A2A3 0A04B0B1B2B3",
		Type:  "Interest",
		Name:  "/A",
		Scalars: map[grammar.Field]uint64{
			grammar.FieldNonce: 0xA0A1A2A3,
		},
	},
	{
		Input: "00 01 001E 0000 000D" +
			"0001 0004 A0A1A2A3 0002 0001 20" +
			"0001 001A 0000 000B 0001 0001 41 0002 0002 C0C1 0003 0001 02 0005 0002 0FA0",
		Type: "Interest",
		Name: "/1=A/2=%C0%C1",
		Scalars: map[grammar.Field]uint64{
			grammar.FieldHopLimit: 0x20,
			grammar.FieldScope:    2,
			grammar.FieldLifetime: 4000,
		},
		Opaques: map[grammar.Field]string{
			grammar.FieldNonce: "A0A1A2A3",
		},
	},
	{
		Input: "00 02 0024 0000 0000" +
			"0002 0020 0000 0005 0001 0001 41 0004 0002 6869 000C 0001 00 0005 0008 000E 0004 D0D1D2D3",
		Type: "Object",
		Name: "/1=A",
		Scalars: map[grammar.Field]uint64{
			grammar.FieldContentType: 0,
		},
		Opaques: map[grammar.Field]string{
			grammar.FieldPayload:  "6869",
			grammar.FieldSigInfo:  "000E0004D0D1D2D3",
			grammar.FieldSigValue: "D0D1D2D3",
		},
	},
	{ // message type differs from the fixed header
		Input:     "00 01 0008 0000 0000 0002 0004 0000 0000",
		Err:       ndn.ErrPacketType,
		ErrOffset: 8,
	},
	{ // CCNx version
		Suite:     an.SuiteContentTLV,
		Input:     "01 01 0004 0000 0000 0001 0000",
		Err:       tlv.ErrMalformedHeader,
		ErrOffset: 0,
	},
	{ // CCNx total length exceeds input
		Input:     "00 01 0010 0000 0000 0001 0000",
		Err:       tlv.ErrLengthOverrun,
		ErrOffset: 2,
	},
	{
		Input: "8008 830100 05 84026F6B",
		Type:  "RPC-Application",
		Name:  "/",
		Scalars: map[grammar.Field]uint64{
			grammar.FieldRPCResult: 0,
		},
		Opaques: map[grammar.Field]string{
			grammar.FieldRPCResult: "00",
		},
	},
	{
		Suite: an.SuiteLocalRPC,
		Input: "8106 8204 0102 8300",
		Type:  "RPC-Lambda",
		Name:  "/",
	},
	{
		Input: "01D2 F2 FA9D414243 00 00 02CA A5A0A1A2A3 00 02D2 8E31 00 0382 954000 00 00",
		Type:  "Interest",
		Name:  "/15=ABC",
		Scalars: map[grammar.Field]uint64{
			grammar.FieldNonce:    0xA0A1A2A3,
			grammar.FieldScope:    1,
			grammar.FieldLifetime: 4000,
		},
		Opaques: map[grammar.Field]string{
			grammar.FieldNonce: "A0A1A2A3",
		},
	},
	{
		Input: "0482 02AA 03B2 95D0D1 00 00 F2 FA9D414243 00 00 01A2 03D2 963130 00 00 019A 956869 00 00",
		Type:  "Object",
		Name:  "/15=ABC",
		Scalars: map[grammar.Field]uint64{
			grammar.FieldFreshness: 10000,
		},
		Opaques: map[grammar.Field]string{
			grammar.FieldPayload:  "6869",
			grammar.FieldSigValue: "D0D1",
		},
	},
	{ // CCNB scalar without a BLOB or UDATA
		Input:     "01D2 02D2 00 00",
		Err:       tlv.ErrMalformedValue,
		ErrOffset: 2,
	},
	{ // CCNB input ends inside a container
		Input:     "01D2 F2 00",
		Err:       tlv.ErrTruncated,
		ErrOffset: 4,
	},
	{
		Input:     "0505 0703080141 00",
		Err:       tlv.ErrTail,
		ErrOffset: 7,
	},
	{
		Input:     "0506 0703080141",
		Err:       tlv.ErrLengthOverrun,
		ErrOffset: 0,
	},
	{ // Name exceeds the Interest
		Input:     "0504 0703080141",
		Err:       tlv.ErrLengthOverrun,
		ErrOffset: 2,
	},
	{
		Input:     "0510 0703080141 0C09000000000000000001",
		Err:       tlv.ErrMalformedValue,
		ErrOffset: 9,
	},
	{
		Input:     "0800",
		Err:       ndn.ErrUnknownSuite,
		ErrOffset: 0,
	},
	{
		Input:     "",
		Err:       ndn.ErrUnknownSuite,
		ErrOffset: 0,
	},
}
