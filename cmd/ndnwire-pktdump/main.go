// Command ndnwire-pktdump decodes and encodes NDN packets of every wire suite.
package main

import (
	"os"
	"sort"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/usnistgov/ndnwire/core/logging"
	"github.com/usnistgov/ndnwire/mk/version"
)

var logger = logging.New("pktdump")

var app = &cli.App{
	Version: version.Get().String(),
	Usage:   "Decode and encode NDN packets.",
}

func defineCommand(command *cli.Command) {
	app.Commands = append(app.Commands, command)
}

func main() {
	sort.Sort(cli.CommandsByName(app.Commands))
	if e := app.Run(os.Args); e != nil {
		logger.Fatal("command error", zap.Error(e))
	}
}
