package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingObserver) last(t *testing.T) UseCaseEvent {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.events, "no use case observed")
	return r.events[len(r.events)-1]
}

func TestLogUseCaseObserver_SuccessAndFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	obs := NewLogUseCaseObserver(logger)
	ctx := context.Background()

	obs.ObserveUseCase(ctx, UseCaseEvent{Name: "create-client", Success: true, Fields: map[string]any{"starter_set": "standard"}})
	obs.ObserveUseCase(ctx, UseCaseEvent{Name: "import-csv", Err: errors.New("disk full")})

	out := buf.String()
	assert.Contains(t, out, "service_use_case")
	assert.Contains(t, out, "use_case=create-client")
	assert.Contains(t, out, "starter_set=standard")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, `error="disk full"`)
}

func TestNewLogUseCaseObserver_NilLoggerIsNoop(t *testing.T) {
	_, ok := NewLogUseCaseObserver(nil).(NoopUseCaseObserver)
	assert.True(t, ok)
}

func TestObserve_ReadsErrorAfterReturn(t *testing.T) {
	rec := &recordingObserver{}
	run := func() (err error) {
		defer observe(context.Background(), rec, "op", nil, &err)()
		return errors.New("late failure")
	}
	require.Error(t, run())

	e := rec.last(t)
	assert.Equal(t, "op", e.Name)
	assert.False(t, e.Success)
	assert.EqualError(t, e.Err, "late failure")
}
