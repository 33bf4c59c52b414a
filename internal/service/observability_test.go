package service

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/alexanderramin/projects/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}

func TestProjectService_ReportsUseCases(t *testing.T) {
	obs := &recordingObserver{}
	svc := newTestService(t, obs)
	ctx := context.Background()

	_, err := svc.Create(ctx, testutil.NewTestDraft("Observed"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, testutil.NewTestDraft("", testutil.WithoutName()))
	require.Error(t, err)

	require.Len(t, obs.events, 2)
	assert.Equal(t, "create-project", obs.events[0].Name)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, "Observed", obs.events[0].Fields["name"])
	assert.False(t, obs.events[1].Success)
	assert.Error(t, obs.events[1].Err)
}

func TestLogUseCaseObserver_WritesLevelByOutcome(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	obs := NewLogUseCaseObserver(logger)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "create-project", Success: true})
	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "create-project", Err: assert.AnError})

	out := buf.String()
	assert.Contains(t, out, "level=INFO msg=service_use_case use_case=create-project")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, assert.AnError.Error())
}

func TestNewLogUseCaseObserver_NilLoggerIsNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}
