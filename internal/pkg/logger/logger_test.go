package logger

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"testing"
)

func TestWithFieldsAttachesContextFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(zap.NewNop()) })

	ctx := WithFields(context.Background(), "property_id", int64(7))
	ctx = WithFields(ctx, "year", 2024)
	Warnf(ctx, "month %d skipped", 3)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "month 3 skipped", entries[0].Message)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(7), fields["property_id"])
	assert.Equal(t, int64(2024), fields["year"])
}

func TestWithFieldsDoesNotLeakIntoParent(t *testing.T) {
	parent := WithFields(context.Background(), "a", 1)
	_ = WithFields(parent, "b", 2)

	assert.Len(t, fieldsFrom(parent), 2)
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	assert.Error(t, Init("loud", true))
}
