package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_Info(t *testing.T) {
	core, recorded := observer.New(zap.DebugLevel)
	log := New(zap.New(core), "send-test-order")

	log.Info("order_published", "order published", "req-1")

	entries := recorded.All()
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, zapcore.InfoLevel, e.Level)
	assert.Equal(t, "order published", e.Message)

	fields := e.ContextMap()
	assert.Equal(t, "send-test-order", fields["service"])
	assert.Equal(t, "order_published", fields["action"])
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Contains(t, fields, "hostname")
}

func TestLogger_OmitsEmptyRequestID(t *testing.T) {
	core, recorded := observer.New(zap.DebugLevel)
	log := New(zap.New(core), "svc")

	log.Debug("queue_declared", "queue ready")

	require.Equal(t, 1, recorded.Len())
	assert.NotContains(t, recorded.All()[0].ContextMap(), "request_id")
}

func TestLogger_Error(t *testing.T) {
	core, recorded := observer.New(zap.DebugLevel)
	log := New(zap.New(core), "svc")

	log.Error(errors.New("connection refused"), "rabbitmq_connection_failed", "could not connect")

	entries := recorded.FilterLevelExact(zapcore.ErrorLevel).All()
	require.Len(t, entries, 1)
	assert.Equal(t, "connection refused", entries[0].ContextMap()["error"])
	assert.Equal(t, "rabbitmq_connection_failed", entries[0].ContextMap()["action"])
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		name         string
		verbose      bool
		errorEnabled bool
		debugEnabled bool
	}{
		{name: "quiet", verbose: false, errorEnabled: false, debugEnabled: false},
		{name: "verbose", verbose: true, errorEnabled: true, debugEnabled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := NewLogger("svc", tt.verbose)
			require.NoError(t, err)
			require.NotNil(t, log)

			core := log.z.Desugar().Core()
			assert.Equal(t, tt.errorEnabled, core.Enabled(zapcore.ErrorLevel))
			assert.Equal(t, tt.debugEnabled, core.Enabled(zapcore.DebugLevel))
		})
	}
}

func TestNop(t *testing.T) {
	log := Nop()

	assert.False(t, log.z.Desugar().Core().Enabled(zapcore.ErrorLevel))
	assert.NotPanics(t, func() {
		log.Info("a", "b", "req-1")
		log.Error(errors.New("x"), "a", "b")
	})
}
