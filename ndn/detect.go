package ndn

import (
	"github.com/usnistgov/ndnwire/ndn/an"
)

// DetectSuite guesses the wire suite from the leading octets.
// It is a heuristic; callers that know the suite out of band should use DecodeSuite.
func DetectSuite(wire []byte) an.Suite {
	if len(wire) == 0 {
		return an.SuiteUnknown
	}
	switch wire[0] {
	case 0x01, 0x04:
		return an.SuiteLegacyBinary
	case an.TtInterest, an.TtData:
		return an.SuiteNamedDataTLV
	case an.RpcTtApplication:
		return an.SuiteLocalRPC
	case an.CcnxVersion:
		if len(wire) >= 2 && (wire[1] == an.CcnxMsgInterest || wire[1] == an.CcnxMsgObject) {
			return an.SuiteContentTLV
		}
	}
	return an.SuiteUnknown
}
