package logger_test

import (
	"bytes"
	"testing"

	"github.com/stampkit/stamp/internal/adapters/logger"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/zerr"
)

func TestLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New()
	log.SetOutput(&buf)

	log.Info("checking artifact", "artifact", "/tmp/mod.so")

	out := buf.String()
	assert.Contains(t, out, "checking artifact")
	assert.Contains(t, out, "artifact=/tmp/mod.so")
	assert.Contains(t, out, "level=INFO")
}

func TestLogger_Warn(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New()
	log.SetOutput(&buf)

	log.Warn("stamp failed", "reason", "disk full")
	assert.Contains(t, buf.String(), "level=WARN")
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New()
	log.SetOutput(&buf)

	log.Error(zerr.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "boom")
}

func TestLogger_SetOutputRedirects(t *testing.T) {
	var first, second bytes.Buffer
	log := logger.New()

	log.SetOutput(&first)
	log.Info("one")
	log.SetOutput(&second)
	log.Info("two")

	assert.Contains(t, first.String(), "one")
	assert.NotContains(t, first.String(), "two")
	assert.Contains(t, second.String(), "two")
}
