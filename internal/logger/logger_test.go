package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitialize_DefaultIsUnstructured(t *testing.T) {
	t.Setenv("UNSTRUCTURED_LOGS", "")
	Initialize(false)
	assert.NotNil(t, Get())
}

func TestSet_CapturesOutput(t *testing.T) {
	var buf bytes.Buffer
	Set(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { Initialize(false) })

	Infof("converted %d documents", 3)
	assert.Contains(t, buf.String(), "converted 3 documents")

	Infow("request complete", "status", 200)
	assert.Contains(t, buf.String(), "status=200")
}

func TestDebugSuppressedByDefault(t *testing.T) {
	var buf bytes.Buffer
	Set(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { Initialize(false) })

	Debugf("hidden detail")
	assert.NotContains(t, buf.String(), "hidden detail")
}
