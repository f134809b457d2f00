package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

// DefaultPath is the log file, relative to the working directory.
const DefaultPath = "logs/room.txt"

// maxLines is how many recent lines Lines keeps in memory.
const maxLines = 500

// sink is shared by a Handler and every handler derived from it.
type sink struct {
	mu     sync.Mutex
	lines  []string
	path   string
	mirror io.Writer
}

// Handler is a slog.Handler that keeps recent lines in memory and appends each
// line to a file on disk. Each line is prefixed with [timestamp] using
// computer time, e.g.
//
//	[2025-01-02 15:04:05] INFO composer: prepared scene=room textures=14
type Handler struct {
	sink   *sink
	level  slog.Leveler
	prefix string // rendered WithAttrs attributes
	group  string
}

// New returns a logger writing to the file at path and, when mirror is not
// nil, to mirror as well. An empty path keeps lines in memory only. The log
// directory is created if needed.
func New(path string, level slog.Leveler, mirror io.Writer) (*slog.Logger, *Handler) {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	if level == nil {
		level = slog.LevelInfo
	}
	h := &Handler{
		sink:  &sink{path: path, mirror: mirror},
		level: level,
	}
	return slog.New(h), h
}

// Enabled reports whether l is at or above the handler's level.
func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

// Handle formats r as one line and stores it.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	b.WriteString("[" + ts.Format("2006-01-02 15:04:05") + "] ")
	b.WriteString(r.Level.String())
	b.WriteByte(' ')
	b.WriteString(r.Message)
	b.WriteString(h.prefix)
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, h.group, a)
		return true
	})
	return h.sink.write(b.String())
}

// WithAttrs returns a handler that adds as to every line.
func (h *Handler) WithAttrs(as []slog.Attr) slog.Handler {
	var b strings.Builder
	for _, a := range as {
		writeAttr(&b, h.group, a)
	}
	h2 := *h
	h2.prefix = h.prefix + b.String()
	return &h2
}

// WithGroup returns a handler that qualifies later attribute keys with name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	if h.group != "" {
		h2.group = h.group + "." + name
	} else {
		h2.group = name
	}
	return &h2
}

// Lines returns a copy of the most recent lines, oldest first.
func (h *Handler) Lines() []string {
	h.sink.mu.Lock()
	defer h.sink.mu.Unlock()
	out := make([]string, len(h.sink.lines))
	copy(out, h.sink.lines)
	return out
}

func (s *sink) write(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = append(s.lines, line)
	if len(s.lines) > maxLines {
		s.lines = s.lines[len(s.lines)-maxLines:]
	}
	if s.mirror != nil {
		_, _ = io.WriteString(s.mirror, line+"\n")
	}
	if s.path == "" {
		return nil
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	_, err = f.WriteString(line + "\n")
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func writeAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if group != "" {
		key = group + "." + key
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			writeAttr(b, key, ga)
		}
		return
	}
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(quote(a.Value.String()))
}

func quote(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}

// ParseLevel accepts the slog level names (debug, info, warn, error) in any
// case, with optional offsets such as "info+2".
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}
