// Package an contains assigned numbers of the wire suites understood by ndnwire.
package an

// Well-known transport numbers.
const (
	UDPPortNDN   = 6363
	EtherTypeNDN = 0x8624
	DefaultMTU   = 4096
)
