package logging_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"caseshop/internal/logging"
)

func TestNew_DefaultSuppressesInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(logging.Options{Out: &buf})

	log.Info("hidden")
	log.Warn("shown")
	_ = log.Sync()

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}

func TestNew_DebugWritesConsole(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(logging.Options{Debug: true, Out: &buf})

	log.Debug("request sent")
	_ = log.Sync()

	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "request sent")
}

func TestNew_QuietDropsWarnings(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(logging.Options{Quiet: true, Out: &buf})

	log.Warn("dropped")
	_ = log.Sync()

	assert.Empty(t, buf.String())
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, logging.OrNop(nil))
}
