package context

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestManager_RoundTrip(t *testing.T) {
	m := NewManager()
	userID := uuid.New()

	ctx := m.SetUserIDToContext(context.Background(), userID)
	got, ok := m.GetUserIDFromContext(ctx)

	assert.True(t, ok)
	assert.Equal(t, userID, got)
}

func TestManager_Missing(t *testing.T) {
	m := NewManager()

	tests := []struct {
		name string
		ctx  context.Context
	}{
		{name: "empty context", ctx: context.Background()},
		{name: "nil uuid", ctx: m.SetUserIDToContext(context.Background(), uuid.Nil)},
		{name: "foreign value under other key", ctx: context.WithValue(context.Background(), struct{}{}, uuid.New())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.GetUserIDFromContext(tt.ctx)
			assert.False(t, ok)
			assert.Equal(t, uuid.Nil, got)
		})
	}
}
