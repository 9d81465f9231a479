package grammar_test

import (
	"github.com/usnistgov/ndnwire/core/testenv"
)

var makeAR = testenv.MakeAR
