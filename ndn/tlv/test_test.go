package tlv_test

import (
	"github.com/usnistgov/ndnwire/core/testenv"
)

var (
	makeAR       = testenv.MakeAR
	bytesFromHex = testenv.BytesFromHex
)
