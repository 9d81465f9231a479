package ndnlayer_test

import (
	"net"
	"testing"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"

	"github.com/usnistgov/ndnwire/core/testenv"
	"github.com/usnistgov/ndnwire/ndn"
	"github.com/usnistgov/ndnwire/ndn/ndnlayer"
)

var (
	makeAR       = testenv.MakeAR
	bytesFromHex = testenv.BytesFromHex
)

var (
	srcMAC = net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x01}
	dstMAC = net.HardwareAddr{0x01, 0x00, 0x5E, 0x00, 0x17, 0xAA}
)

func TestEthernet(t *testing.T) {
	assert, require := makeAR(t)

	buf := gopacket.NewSerializeBuffer()
	require.NoError(gopacket.SerializeLayers(buf, gopacket.SerializeOptions{FixLengths: true},
		&layers.Ethernet{SrcMAC: srcMAC, DstMAC: dstMAC, EthernetType: ndnlayer.EthernetTypeNDN},
		ndnlayer.SerializeFrom(ndn.MakeInterest("/A", ndn.NonceFromUint(0xA0A1A2A3))),
	))

	packet := gopacket.NewPacket(buf.Bytes(), layers.LayerTypeEthernet, gopacket.Default)
	require.Nil(packet.ErrorLayer())
	layer, ok := packet.Layer(ndnlayer.LayerTypeNDN).(*ndnlayer.NDN)
	require.True(ok)
	assert.Equal(ndn.PktInterest, layer.Packet.Type)
	assert.Equal("/A", layer.Packet.Name.String())
	assert.Equal(bytesFromHex("050F 0703080141 0A04A0A1A2A3 0C020FA0"), layer.LayerContents())
	assert.Equal(layer, packet.ApplicationLayer())
}

func TestUDP(t *testing.T) {
	assert, require := makeAR(t)

	data := ndn.MakeData("/A", []byte("hi"))
	ip := &layers.IPv4{
		Version:  4,
		TTL:      64,
		Protocol: layers.IPProtocolUDP,
		SrcIP:    net.IPv4(192, 0, 2, 1),
		DstIP:    net.IPv4(192, 0, 2, 2),
	}
	udp := &layers.UDP{SrcPort: 56363, DstPort: ndnlayer.UDPPortNDN}
	buf := gopacket.NewSerializeBuffer()
	require.NoError(gopacket.SerializeLayers(buf, gopacket.SerializeOptions{FixLengths: true},
		ip, udp, ndnlayer.SerializeFrom(data)))

	packet := gopacket.NewPacket(buf.Bytes(), layers.LayerTypeIPv4, gopacket.Default)
	require.Nil(packet.ErrorLayer())
	layer, ok := packet.Layer(ndnlayer.LayerTypeNDN).(*ndnlayer.NDN)
	require.True(ok)
	assert.Equal(ndn.PktData, layer.Packet.Type)
	assert.Equal([]byte("hi"), layer.Payload())
}

func TestWholeFragment(t *testing.T) {
	assert, require := makeAR(t)

	data, e := ndn.Encode(ndn.MakeData("/A", []byte("hi")))
	require.NoError(e)
	frag := ndn.LpFragment{Sequence: 1, Begin: true, End: true, Payload: data}

	buf := gopacket.NewSerializeBuffer()
	require.NoError(gopacket.SerializeLayers(buf, gopacket.SerializeOptions{FixLengths: true},
		&layers.Ethernet{SrcMAC: srcMAC, DstMAC: dstMAC, EthernetType: ndnlayer.EthernetTypeNDN},
		ndnlayer.SerializeFrom(frag),
	))

	packet := gopacket.NewPacket(buf.Bytes(), layers.LayerTypeEthernet, gopacket.Default)
	require.Nil(packet.ErrorLayer())
	var ndnLayers []*ndnlayer.NDN
	for _, layer := range packet.Layers() {
		if l, ok := layer.(*ndnlayer.NDN); ok {
			ndnLayers = append(ndnLayers, l)
		}
	}
	require.Len(ndnLayers, 2)
	assert.True(ndnLayers[0].IsWholeFragment())
	assert.Equal(ndn.PktFragment, ndnLayers[0].Packet.Type)
	assert.Equal(ndn.PktData, ndnLayers[1].Packet.Type)
	assert.Equal(data, ndnLayers[1].LayerContents())
}

func TestDecodeFromBytes(t *testing.T) {
	assert, require := makeAR(t)

	wire := bytesFromHex("0482 02AA 03B2 95D0D1 00 00 F2 FA9D414243 00 00 019A 956869 00 00")
	var l ndnlayer.NDN
	require.NoError(l.DecodeFromBytes(append(append([]byte{}, wire...), 0, 0, 0, 0), gopacket.NilDecodeFeedback))
	assert.Equal(wire, l.LayerContents())
	assert.Equal([]byte("hi"), l.LayerPayload())
	assert.Equal(gopacket.LayerTypePayload, l.NextLayerType())

	buf := gopacket.NewSerializeBuffer()
	require.NoError(gopacket.SerializeLayers(buf, gopacket.SerializeOptions{}, &l))
	assert.Equal(wire, buf.Bytes())

	assert.Error(l.DecodeFromBytes(bytesFromHex("0506 0703080141"), gopacket.NilDecodeFeedback))
}

func TestLayerType(t *testing.T) {
	assert, require := makeAR(t)

	assert.Equal("NDN", ndnlayer.LayerTypeNDN.String())
	assert.Equal(ndnlayer.LayerTypeNDN, ndnlayer.NDN{}.LayerType())

	data, e := ndn.Encode(ndn.MakeData("/A", []byte("hi")))
	require.NoError(e)
	frag, e := ndn.Encode(ndn.LpFragment{Sequence: 1, Begin: true, End: true, Payload: data})
	require.NoError(e)

	packet := gopacket.NewPacket(frag, ndnlayer.LayerTypeNDN, gopacket.Default)
	require.Nil(packet.ErrorLayer())
	decoded := packet.Layers()
	require.Len(decoded, 2)
	assert.Equal(ndnlayer.LayerTypeNDN, decoded[0].LayerType())
	assert.Equal(ndnlayer.LayerTypeNDN, decoded[1].LayerType())
	assert.Equal(ndn.PktData, decoded[1].(*ndnlayer.NDN).Packet.Type)
}
