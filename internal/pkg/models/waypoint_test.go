package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in    string
		role  Role
		known bool
	}{
		{"START", RoleStart, true},
		{" end ", RoleEnd, true},
		{"via", RoleVia, true},
		{"anchor", RoleVia, false},
		{"", RoleVia, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			role, known := ParseRole(tt.in)
			assert.Equal(t, tt.role, role)
			assert.Equal(t, tt.known, known)
		})
	}
}

func TestSnapshot_MarshalLogArray(t *testing.T) {
	snapshot := Snapshot{
		{Role: RoleStart, Label: "BUSAN", Lat: 35.1, Lon: 129.04},
		{Role: RoleEnd, Lat: 1.29, Lon: 103.85},
	}

	enc := zapcore.NewMapObjectEncoder()
	require.NoError(t, enc.AddArray("waypoints", snapshot))

	got, ok := enc.Fields["waypoints"].([]interface{})
	require.True(t, ok)
	require.Len(t, got, 2)
	assert.Equal(t, map[string]interface{}{"type": "START", "port": "BUSAN", "lat": 35.1, "lon": 129.04}, got[0])
	assert.Equal(t, map[string]interface{}{"type": "END", "lat": 1.29, "lon": 103.85}, got[1])
}
