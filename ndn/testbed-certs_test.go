package ndn_test

import (
	"testing"

	"github.com/usnistgov/ndnwire/ndn"
	"github.com/usnistgov/ndnwire/ndn/an"
	"github.com/usnistgov/ndnwire/ndn/grammar"
	"github.com/usnistgov/ndnwire/ndn/ndntestvector"
)

func TestTestbedCerts(t *testing.T) {
	assert, require := makeAR(t)

	tests := []struct {
		cert    func() *ndn.Packet
		prefix  string
		nComps  int
		version uint64
		sigType uint64
	}{
		{ndntestvector.TestbedRootV2, "/ndn/KEY", 5, 0x0160714A519B, 3},
		{ndntestvector.TestbedArizona20200301, "/ndn/edu/arizona/KEY", 7, 0x01709C63E0BA, 3},
		{ndntestvector.TestbedShijunxiao20200301, "/ndn/edu/arizona/cs/shijunxiao/KEY", 9, 0x01709D1DCC4F, 1},
	}
	for _, tt := range tests {
		pkt := tt.cert()
		require.NotNil(pkt)
		assert.Equal(an.SuiteNamedDataTLV, pkt.Suite)
		assert.Equal(ndn.PktData, pkt.Type)
		require.Len(pkt.Name, tt.nComps, tt.prefix)
		assert.True(ndn.ParseName(tt.prefix).IsPrefixOf(pkt.Name), tt.prefix)

		marker, version, ok := pkt.Name.Get(-1).Marker()
		assert.True(ok, tt.prefix)
		assert.Equal(an.MarkerVersion, marker, tt.prefix)
		assert.Equal(tt.version, version, tt.prefix)

		contentType, _ := pkt.Scalar(grammar.FieldContentType)
		assert.EqualValues(an.ContentKey, contentType, tt.prefix)
		freshness, _ := pkt.Scalar(grammar.FieldFreshness)
		assert.EqualValues(3600000, freshness, tt.prefix)
		sigType, _ := pkt.Scalar(grammar.FieldSigType)
		assert.Equal(tt.sigType, sigType, tt.prefix)

		_, ok = pkt.Span(grammar.FieldKeyLocator)
		assert.True(ok, tt.prefix)
		sigValue, _ := pkt.Opaque(grammar.FieldSigValue)
		assert.NotEmpty(sigValue, tt.prefix)

		// ValidityPeriod and AdditionalDescription are outside the grammar
		assert.Len(pkt.Extensions, 2, tt.prefix)
		assert.Len(pkt.Wire(), pkt.Raw.Length)
	}
}
