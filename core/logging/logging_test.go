package logging_test

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/usnistgov/ndnwire/core/logging"
	"github.com/usnistgov/ndnwire/core/testenv"
)

func TestPkgLevel(t *testing.T) {
	assert, _ := testenv.MakeAR(t)

	t.Setenv("NDNWIRE_LOG_LoggingTestW", "WARN")
	pl := logging.GetLevel("LoggingTestW")
	assert.Equal("LoggingTestW", pl.Package())
	assert.EqualValues('W', pl.Level())
	assert.Same(pl, logging.GetLevel("LoggingTestW"))
	assert.Contains(logging.ListLevels(), pl)

	logger := logging.New("LoggingTestW")
	assert.False(logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(logger.Core().Enabled(zapcore.WarnLevel))

	pl.SetLevel("V")
	assert.EqualValues('V', pl.Level())
	assert.True(logger.Core().Enabled(zapcore.DebugLevel))

	pl.SetLevel("x")
	assert.EqualValues('I', pl.Level())
	assert.False(logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(logger.Core().Enabled(zapcore.InfoLevel))
}

func TestGlobalLevel(t *testing.T) {
	assert, _ := testenv.MakeAR(t)

	t.Setenv("NDNWIRE_LOG", "E")
	t.Setenv("NDNWIRE_LOG_LoggingTestD", "D")
	assert.EqualValues('E', logging.GetLevel("LoggingTestE").Level())
	assert.EqualValues('D', logging.GetLevel("LoggingTestD").Level())

	assert.False(logging.New("LoggingTestE").Core().Enabled(zapcore.WarnLevel))
	assert.True(logging.Named("LoggingTestE").Core().Enabled(zapcore.DebugLevel))
}
