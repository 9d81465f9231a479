package main

import (
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"github.com/xeipuuv/gojsonschema"

	"github.com/usnistgov/ndnwire/ndn"
)

//go:embed request.schema.json
var requestSchema []byte

type schemaError struct {
	*gojsonschema.Result
}

func (e schemaError) Error() string {
	var b strings.Builder
	fmt.Fprintln(&b, "JSON document failed schema validation:")
	for _, re := range e.Errors() {
		fmt.Fprintln(&b, "-", re)
	}
	return b.String()
}

func checkSchema(input gojsonschema.JSONLoader) error {
	result, e := gojsonschema.Validate(gojsonschema.NewBytesLoader(requestSchema), input)
	if e != nil {
		return e
	}
	if !result.Valid() {
		return schemaError{result}
	}
	return nil
}

// readRequest parses and optionally validates a JSON request.
func readRequest(r io.Reader, skipSchema bool) (req request, e error) {
	loader, tee := gojsonschema.NewReaderLoader(r)
	if e = json.NewDecoder(tee).Decode(&req); e != nil {
		return req, e
	}
	if !skipSchema {
		if e = checkSchema(loader); e != nil {
			return req, e
		}
	}
	return req, nil
}

func init() {
	var skipSchema, binary bool
	var cfg ndn.EncoderConfig
	defineCommand(&cli.Command{
		Name:  "encode",
		Usage: "Encode an Interest, Data, or fragment in NDN-TLV (pass request via stdin)",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "skip-schema",
				Usage:       "do not check JSON schema",
				Destination: &skipSchema,
			},
			&cli.BoolFlag{
				Name:        "binary",
				Usage:       "write raw bytes instead of hexadecimal",
				Destination: &binary,
			},
			&cli.IntFlag{
				Name:        "capacity",
				Usage:       "encoding buffer `SIZE`",
				Destination: &cfg.Capacity,
			},
		},
		Action: func(c *cli.Context) error {
			req, e := readRequest(os.Stdin, skipSchema)
			if e != nil {
				return e
			}
			encodable, e := req.Encodable()
			if e != nil {
				return e
			}
			wire, e := cfg.Encode(encodable)
			if e != nil {
				return e
			}

			if binary {
				_, e = os.Stdout.Write(wire)
				return e
			}
			fmt.Println(strings.ToUpper(hex.EncodeToString(wire)))
			return nil
		},
	})
}
