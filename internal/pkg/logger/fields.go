package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field aliases zap.Field so call sites only import this package
type Field = zap.Field

// Generic constructors
var (
	String   = zap.String
	Strings  = zap.Strings
	Int      = zap.Int
	Int64    = zap.Int64
	Uint32   = zap.Uint32
	Float64  = zap.Float64
	Bool     = zap.Bool
	Duration = zap.Duration
	Any      = zap.Any
	Err      = zap.Error
)

// Array logs a value that marshals itself as a list, such as a waypoint snapshot
func Array(key string, val zapcore.ArrayMarshaler) Field {
	if val == nil {
		return zap.Skip()
	}
	return zap.Array(key, val)
}

// SessionID tags an entry with the map view session it belongs to
func SessionID(id string) Field {
	return zap.String("session_id", id)
}

// RequestID tags an entry with a route search or HTTP request ID
func RequestID(id string) Field {
	return zap.String("request_id", id)
}

// Command names the bridge command an entry is about
func Command(kind string) Field {
	return zap.String("command", kind)
}
