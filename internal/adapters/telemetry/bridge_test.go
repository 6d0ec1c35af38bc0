package telemetry_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/jitsnap/internal/adapters/telemetry"
	"go.trai.ch/jitsnap/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestBridge_OnEnd_LogsSpan(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	var logged string
	mockLogger.EXPECT().Debug(gomock.Any()).Do(func(msg string) { logged = msg }).Times(1)

	tp := telemetry.NewProvider(mockLogger)
	defer func() { _ = tp.Shutdown(context.Background()) }()

	tracer := telemetry.NewOTelTracer(tp, telemetry.InstrumentationName)
	_, span := tracer.Start(context.Background(), "snapshot.bundle")
	span.SetAttribute("files", 3)
	span.End()

	assert.True(t, strings.HasPrefix(logged, "span snapshot.bundle took "), logged)
	assert.Contains(t, logged, "files=3")
	assert.NotContains(t, logged, "error=")
}

func TestBridge_OnEnd_LogsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	var logged string
	mockLogger.EXPECT().Debug(gomock.Any()).Do(func(msg string) { logged = msg }).Times(1)

	tp := telemetry.NewProvider(mockLogger)
	defer func() { _ = tp.Shutdown(context.Background()) }()

	tracer := telemetry.NewOTelTracer(tp, telemetry.InstrumentationName)
	_, span := tracer.Start(context.Background(), "snapshot.bundle")
	span.RecordError(errors.New("bundle failed"))
	span.End()

	assert.Contains(t, logged, `error="bundle failed"`)
}

func TestBridge_NilLogger(t *testing.T) {
	tp := telemetry.NewProvider(nil)
	defer func() { _ = tp.Shutdown(context.Background()) }()

	tracer := telemetry.NewOTelTracer(tp, telemetry.InstrumentationName)
	_, span := tracer.Start(context.Background(), "quiet")
	span.End()

	b := telemetry.NewBridge(nil)
	assert.NoError(t, b.ForceFlush(context.Background()))
	assert.NoError(t, b.Shutdown(context.Background()))
}
