package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/usnistgov/ndnwire/ndn"
	"github.com/usnistgov/ndnwire/ndn/an"
	"github.com/usnistgov/ndnwire/ndn/tlv"
)

func printJSON(v interface{}) error {
	j, e := json.Marshal(v)
	if e != nil {
		return e
	}
	fmt.Println(string(j))
	return nil
}

// decodeAll decodes a sequence of packets of one suite.
// If suite is unknown, it is detected from the first packet.
// Spans in each packet are relative to the start of that packet; error offsets are relative to the input.
func decodeAll(cfg ndn.DecoderConfig, suite an.Suite, wire []byte, all bool, each func(pkt *ndn.Packet) error) error {
	if suite == an.SuiteUnknown {
		if suite = ndn.DetectSuite(wire); suite == an.SuiteUnknown {
			return tlv.ErrAt(0, ndn.ErrUnknownSuite)
		}
	}

	if !all {
		pkt, e := cfg.DecodeSuite(suite, wire)
		if e != nil {
			return e
		}
		return each(pkt)
	}

	for offset := 0; offset < len(wire); {
		pkt, rest, e := cfg.DecodeFirst(suite, wire[offset:])
		if e != nil {
			var de *tlv.DecodeError
			if errors.As(e, &de) {
				de.Offset += offset
			}
			return e
		}
		if e = each(pkt); e != nil {
			return e
		}
		offset = len(wire) - len(rest)
	}
	return nil
}

func init() {
	var input inputFlags
	var all, tree bool
	var cfg ndn.DecoderConfig
	defineCommand(&cli.Command{
		Name:  "decode",
		Usage: "Decode packets and print them as JSON",
		Flags: append(input.flags(),
			&cli.BoolFlag{
				Name:        "all",
				Usage:       "decode concatenated packets until input is exhausted",
				Destination: &all,
			},
			&cli.BoolFlag{
				Name:        "tree",
				Usage:       "include the element tree",
				Destination: &tree,
			},
			&cli.IntFlag{
				Name:        "max-depth",
				Usage:       "maximum nesting `DEPTH`",
				Value:       ndn.DefaultMaxDepth,
				Destination: &cfg.MaxDepth,
			},
		),
		Action: func(c *cli.Context) error {
			suite, e := input.Suite()
			if e != nil {
				return e
			}
			wire, e := input.Read()
			if e != nil {
				return e
			}
			return decodeAll(cfg, suite, wire, all, func(pkt *ndn.Packet) error {
				if !tree {
					pkt.Root = ndn.Node{}
				}
				return printJSON(pkt)
			})
		},
	})

	var detectInput inputFlags
	defineCommand(&cli.Command{
		Name:  "detect",
		Usage: "Detect wire suite",
		Flags: detectInput.flags()[:2],
		Action: func(c *cli.Context) error {
			wire, e := detectInput.Read()
			if e != nil {
				return e
			}
			fmt.Println(ndn.DetectSuite(wire))
			return nil
		},
	})
}
