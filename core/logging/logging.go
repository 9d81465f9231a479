// Package logging is a thin wrapper of zap logging library.
//
// Log level is configured per package through environment variables:
//  NDNWIRE_LOG_<pkg>=<level>   applies to one package
//  NDNWIRE_LOG=<level>         applies to packages without a specific setting
// Log format is JSON by default; NDNWIRE_LOG_FORMAT=console selects human readable lines.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Format names accepted in NDNWIRE_LOG_FORMAT.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

func newEncoder(format string) zapcore.Encoder {
	switch strings.ToLower(format) {
	case FormatConsole:
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewConsoleEncoder(cfg)
	default:
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}
}

var root = zap.New(zapcore.NewCore(newEncoder(os.Getenv("NDNWIRE_LOG_FORMAT")), zapcore.Lock(os.Stderr), zap.DebugLevel))

// Named creates a named logger that ignores the package log level.
func Named(pkg string) *zap.Logger {
	return root.Named(pkg)
}

// New creates a logger that follows the package log level.
// It is declared next to the package doc:
//  var logger = logging.New("ndn")
func New(pkg string) *zap.Logger {
	return Named(pkg).WithOptions(zap.IncreaseLevel(GetLevel(pkg).al))
}
