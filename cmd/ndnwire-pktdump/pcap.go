package main

import (
	"encoding/json"
	"io"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/pcapgo"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go4.org/must"

	"github.com/usnistgov/ndnwire/core/runningstat"
	"github.com/usnistgov/ndnwire/ndn"
	"github.com/usnistgov/ndnwire/ndn/ndnlayer"
)

type pcapRecord struct {
	Index     int         `json:"index"`
	Timestamp time.Time   `json:"timestamp"`
	Packet    *ndn.Packet `json:"packet"`
}

// dumpPcap prints NDN packets found in Ethernet frames or UDP datagrams of a pcap file.
// A fragment that carries a whole packet yields both the fragment and the inner packet.
func dumpPcap(filename string, each func(rec pcapRecord) error) error {
	file, e := os.Open(filename)
	if e != nil {
		return e
	}
	defer must.Close(file)

	r, e := pcapgo.NewReader(file)
	if e != nil {
		return e
	}

	src := gopacket.NewPacketSource(r, r.LinkType())
	index := 0
	for packet := range src.Packets() {
		index++
		if errLayer := packet.ErrorLayer(); errLayer != nil {
			logger.Debug("pcap packet error", zap.Int("index", index), zap.Error(errLayer.Error()))
		}
		for _, layer := range packet.Layers() {
			l, ok := layer.(*ndnlayer.NDN)
			if !ok {
				continue
			}
			if e := each(pcapRecord{
				Index:     index,
				Timestamp: packet.Metadata().Timestamp,
				Packet:    l.Packet,
			}); e != nil {
				return e
			}
		}
	}
	return nil
}

// pcapSummary collects packet size statistics per suite and packet type.
type pcapSummary map[string]*runningstat.IntStat

func (sum pcapSummary) Add(pkt *ndn.Packet) {
	key := pkt.Suite.String() + "/" + pkt.Type.String()
	st := sum[key]
	if st == nil {
		st = &runningstat.IntStat{}
		sum[key] = st
	}
	st.Push(uint64(pkt.Raw.Length))
}

func (sum pcapSummary) MarshalJSON() ([]byte, error) {
	m := map[string]runningstat.Snapshot{}
	var total runningstat.Snapshot
	for key, st := range sum {
		s := st.Read()
		m[key] = s
		total = total.Add(s)
	}
	m["total"] = total
	return json.Marshal(m)
}

// Render prints the statistics as a table sorted by suite and packet type.
func (sum pcapSummary) Render(w io.Writer) {
	keys := make([]string, 0, len(sum))
	for key := range sum {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"packet", "count", "min", "mean", "max", "stdev"})
	for _, key := range keys {
		s := sum[key].Read()
		table.Append([]string{
			key,
			strconv.FormatUint(s.Count, 10),
			strconv.FormatUint(*s.Min, 10),
			strconv.FormatFloat(s.Mean, 'f', 1, 64),
			strconv.FormatUint(*s.Max, 10),
			strconv.FormatFloat(s.Stdev, 'f', 1, 64),
		})
	}
	table.Render()
}

func init() {
	var filename string
	var summaryOnly, asTable bool
	defineCommand(&cli.Command{
		Name:  "pcap",
		Usage: "Decode NDN packets in a pcap file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "input",
				Aliases:     []string{"i"},
				Usage:       "pcap `FILE`",
				Destination: &filename,
				Required:    true,
			},
			&cli.BoolFlag{
				Name:        "summary",
				Usage:       "print packet size statistics instead of packets",
				Destination: &summaryOnly,
			},
			&cli.BoolFlag{
				Name:        "table",
				Usage:       "print statistics as a table (implies --summary)",
				Destination: &asTable,
			},
		},
		Action: func(c *cli.Context) error {
			summaryOnly = summaryOnly || asTable
			sum := pcapSummary{}
			e := dumpPcap(filename, func(rec pcapRecord) error {
				sum.Add(rec.Packet)
				if summaryOnly {
					return nil
				}
				rec.Packet.Root = ndn.Node{}
				return printJSON(rec)
			})
			switch {
			case e != nil || !summaryOnly:
				return e
			case asTable:
				sum.Render(os.Stdout)
				return nil
			default:
				return printJSON(sum)
			}
		},
	})
}
