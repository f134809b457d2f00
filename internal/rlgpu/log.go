package rlgpu

import (
	"context"
	"log/slog"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RouteTraceLog sends raylib's own log output to log instead of stdout.
func RouteTraceLog(log *slog.Logger) {
	rl.SetTraceLogLevel(rl.LogInfo)
	rl.SetTraceLogCallback(func(level int, msg string) {
		log.Log(context.Background(), traceLevel(rl.TraceLogLevel(level)), "raylib: "+strings.TrimSpace(msg))
	})
}

func traceLevel(l rl.TraceLogLevel) slog.Level {
	switch l {
	case rl.LogTrace, rl.LogDebug:
		return slog.LevelDebug
	case rl.LogWarning:
		return slog.LevelWarn
	case rl.LogError, rl.LogFatal:
		return slog.LevelError
	}
	return slog.LevelInfo
}
