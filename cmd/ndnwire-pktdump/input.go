package main

import (
	"bytes"
	"encoding/hex"
	"io"
	"os"

	"github.com/rickb777/plural"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go4.org/must"

	"github.com/usnistgov/ndnwire/ndn/an"
)

var sizeFormat = plural.FromZero("%d bytes", "%d byte", "%d bytes")

// inputFlags selects and reads packet input.
type inputFlags struct {
	filename string
	isHex    bool
	suite    string
}

func (f *inputFlags) flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "read from `FILE` instead of stdin",
			Destination: &f.filename,
		},
		&cli.BoolFlag{
			Name:        "hex",
			Usage:       "input is hexadecimal text",
			Destination: &f.isHex,
		},
		&cli.StringFlag{
			Name:        "suite",
			Usage:       "wire `SUITE` (ccnb, ccnx2014, ndn2013, localrpc, or 0-3); detected if omitted",
			Destination: &f.suite,
		},
	}
}

// Suite returns the selected suite, or an.SuiteUnknown if it should be detected.
func (f *inputFlags) Suite() (an.Suite, error) {
	if f.suite == "" {
		return an.SuiteUnknown, nil
	}
	return an.ParseSuite(f.suite)
}

// Read reads the whole input.
func (f *inputFlags) Read() (wire []byte, e error) {
	var r io.Reader = os.Stdin
	if f.filename != "" {
		file, e := os.Open(f.filename)
		if e != nil {
			return nil, e
		}
		defer must.Close(file)
		r = file
	}

	if wire, e = io.ReadAll(r); e != nil {
		return nil, e
	}
	if f.isHex {
		if wire, e = parseHex(wire); e != nil {
			return nil, e
		}
	}

	size, _ := sizeFormat.Format(len(wire))
	logger.Debug("parsing "+size, zap.String("input", f.filename))
	return wire, nil
}

// parseHex decodes hexadecimal text, ignoring whitespace.
func parseHex(text []byte) ([]byte, error) {
	text = bytes.Join(bytes.Fields(text), nil)
	wire := make([]byte, hex.DecodedLen(len(text)))
	n, e := hex.Decode(wire, text)
	return wire[:n], e
}
