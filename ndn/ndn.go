// Package ndn decodes and composes Named Data Networking packets in four wire suites.
//
// Decoding is driven by the grammar tables in package grammar, and produces a Packet that records
// the byte spans of every recognized field within the input buffer.
// Composing is performed by a backward encoder from package tlv, and only emits NDN-TLV.
package ndn

import (
	"github.com/usnistgov/ndnwire/core/logging"
)

var logger = logging.New("ndn")
