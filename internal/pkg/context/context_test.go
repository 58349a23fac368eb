package context

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestWithRequestID(t *testing.T) {
	tests := []struct {
		name      string
		requestID string
		expected  func(string) bool
	}{
		{
			name:      "Valid request ID",
			requestID: "req-123-456",
			expected: func(result string) bool {
				return result == "req-123-456"
			},
		},
		{
			name:      "Empty request ID generates UUID",
			requestID: "",
			expected: func(result string) bool {
				_, err := uuid.Parse(result)
				return err == nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := WithRequestID(context.Background(), tt.requestID)
			result := GetRequestID(ctx)
			assert.True(t, tt.expected(result), "unexpected request ID: %s", result)
		})
	}
}

func TestGetRequestID_Missing(t *testing.T) {
	assert.Empty(t, GetRequestID(context.Background()))

	// wrong value type
	ctx := context.WithValue(context.Background(), RequestIDKey, 42)
	assert.Empty(t, GetRequestID(ctx))
}

func TestSessionID(t *testing.T) {
	assert.Empty(t, GetSessionID(context.Background()))

	ctx := WithSessionID(context.Background(), "view-1")
	assert.Equal(t, "view-1", GetSessionID(ctx))
	assert.Empty(t, GetRequestID(ctx))

	ctx = WithRequestID(ctx, "req-1")
	assert.Equal(t, "view-1", GetSessionID(ctx))
	assert.Equal(t, "req-1", GetRequestID(ctx))
}
