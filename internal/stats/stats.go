// Package stats produces the text of the on-screen stats overlay. It does not
// draw; graphics.DrawLines does.
package stats

import (
	"fmt"
	"runtime"

	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/composer"
)

// updateInterval: only refresh the text every N frames to reduce allocations.
const updateInterval = 30

// Stats holds the overlay switches and the last rendered text. All overlays
// are off by default.
type Stats struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowFrame    bool
	// FPS reports the current frame rate, usually rl.GetFPS.
	FPS func() int32

	frameCount uint32
	lines      []string
	memStats   runtime.MemStats
}

// New returns a Stats with every overlay shown, reading the frame rate from fps.
func New(fps func() int32) *Stats {
	return &Stats{ShowFPS: true, ShowMemAlloc: true, ShowFrame: true, FPS: fps}
}

// Tick is called once per frame with the last composer frame and returns
// the lines to draw. The text is only recomputed every updateInterval frames,
// or when there is nothing cached yet.
func (s *Stats) Tick(f composer.Frame) []string {
	s.frameCount++
	if s.frameCount%updateInterval != 0 && s.lines != nil {
		return s.lines
	}
	s.lines = s.lines[:0:0]
	if s.ShowFPS && s.FPS != nil {
		s.lines = append(s.lines, fmt.Sprintf("FPS: %d", s.FPS()))
	}
	if s.ShowMemAlloc {
		runtime.ReadMemStats(&s.memStats)
		mb := float64(s.memStats.Alloc) / (1024 * 1024)
		s.lines = append(s.lines, fmt.Sprintf("Mem: %.2f MiB", mb))
	}
	if s.ShowFrame {
		s.lines = append(s.lines, fmt.Sprintf("Draws: %d/%d", f.Draws, f.Objects))
	}
	return s.lines
}
