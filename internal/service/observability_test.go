package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/goalaudit/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestLogUseCaseObserver_WritesFailure(t *testing.T) {
	var buf bytes.Buffer
	cfg := logger.DefaultConfig()
	cfg.Output = &buf
	obs := NewLogUseCaseObserver(logger.New(cfg))

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "export",
		Duration: 15 * time.Millisecond,
		Err:      errors.New("disk full"),
		Fields:   map[string]any{"patient": "RT000123"},
	})

	out := buf.String()
	assert.Contains(t, out, "use case failed")
	assert.Contains(t, out, "use_case=export")
	assert.Contains(t, out, "patient=RT000123")
	assert.Contains(t, out, "disk full")
}

func TestLogUseCaseObserver_NilLoggerIsNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}

func TestUseCaseObserverOrNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop([]UseCaseObserver{nil}))

	rec := &recordingObserver{}
	assert.Same(t, rec, useCaseObserverOrNoop([]UseCaseObserver{nil, rec}))
}
