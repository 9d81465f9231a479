package an

import (
	"fmt"
	"strconv"
	"strings"
)

// Suite identifies a wire encoding suite.
// A buffer is decoded with exactly one suite.
type Suite uint8

// Suite values.
const (
	SuiteUnknown Suite = iota
	SuiteLegacyBinary
	SuiteContentTLV
	SuiteNamedDataTLV
	SuiteLocalRPC
)

var suiteNames = map[Suite]string{
	SuiteUnknown:      "unknown",
	SuiteLegacyBinary: "ccnb",
	SuiteContentTLV:   "ccnx2014",
	SuiteNamedDataTLV: "ndn2013",
	SuiteLocalRPC:     "localrpc",
}

// Suites lists every known suite, in the order of their legacy numeric selectors.
var Suites = []Suite{SuiteLegacyBinary, SuiteContentTLV, SuiteNamedDataTLV, SuiteLocalRPC}

// Valid determines whether s is a known suite.
func (s Suite) Valid() bool {
	return s >= SuiteLegacyBinary && s <= SuiteLocalRPC
}

func (s Suite) String() string {
	if name, ok := suiteNames[s]; ok {
		return name
	}
	return strconv.Itoa(int(s))
}

// MarshalText implements encoding.TextMarshaler interface.
func (s Suite) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler interface.
func (s *Suite) UnmarshalText(text []byte) (e error) {
	*s, e = ParseSuite(string(text))
	return e
}

// ParseSuite parses suite name.
// Numeric input follows legacy selectors: 0=ccnb, 1=ccntlv, 2=ndntlv, 3=localrpc.
func ParseSuite(input string) (Suite, error) {
	switch strings.ToLower(input) {
	case "ccnb", "0":
		return SuiteLegacyBinary, nil
	case "ccnx2014", "ccntlv", "1":
		return SuiteContentTLV, nil
	case "ndn2013", "ndntlv", "2":
		return SuiteNamedDataTLV, nil
	case "localrpc", "rpc", "3":
		return SuiteLocalRPC, nil
	}
	return SuiteUnknown, fmt.Errorf("unknown suite %q", input)
}
