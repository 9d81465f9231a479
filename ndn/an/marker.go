package an

import "strconv"

// Marker is the octet that precedes a NonNegativeInteger in a naming-convention name component.
type Marker uint8

// Marker values.
const (
	MarkerSegmentNumber  Marker = 0x00
	MarkerByteOffset     Marker = 0xFB
	MarkerTimestamp      Marker = 0xFC
	MarkerVersion        Marker = 0xFD
	MarkerSequenceNumber Marker = 0xFE
)

// IsKnown determines whether m is an assigned marker.
func (m Marker) IsKnown() bool {
	switch m {
	case MarkerSegmentNumber, MarkerByteOffset, MarkerTimestamp, MarkerVersion, MarkerSequenceNumber:
		return true
	}
	return false
}

func (m Marker) String() string {
	switch m {
	case MarkerSegmentNumber:
		return "seg"
	case MarkerByteOffset:
		return "off"
	case MarkerTimestamp:
		return "t"
	case MarkerVersion:
		return "v"
	case MarkerSequenceNumber:
		return "seq"
	}
	return strconv.Itoa(int(m))
}
