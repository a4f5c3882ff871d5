package memory_test

import (
	"bytes"
	"log"
	"os"
	"testing"

	"mining-profit/pkg/infrastructure/memory"
	color "mining-profit/pkg/usecase/log"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]int{
		"debug":   memory.Debug,
		"DEBUG":   memory.Debug,
		"info":    memory.Info,
		"warn":    memory.Warn,
		"warning": memory.Warn,
		"error":   memory.Error,
		"":        memory.Info,
		"verbose": memory.Info,
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, memory.ParseLevel(in))
		})
	}
}

func TestLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)
	defer func(enabled bool) { color.Enabled = enabled }(color.Enabled)
	color.Enabled = false

	l := &memory.Logger{Level: memory.Warn}
	l.Debug("debug %d", 1)
	l.Info("info %d", 2)
	l.Warn("warn %d", 3)
	l.Error("error %d", 4)

	out := buf.String()
	assert.NotContains(t, out, "debug 1")
	assert.NotContains(t, out, "info 2")
	assert.Contains(t, out, "[WARN] warn 3")
	assert.Contains(t, out, "[ERROR] error 4")
}
