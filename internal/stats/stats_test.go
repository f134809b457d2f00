package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taylorstapus/Comp-Graphics-Visuals-C/internal/composer"
)

func TestTickRefreshesEveryInterval(t *testing.T) {
	fps := int32(60)
	s := New(func() int32 { return fps })
	frame := composer.Frame{Objects: 33, Draws: 33}

	lines := s.Tick(frame)
	require.Len(t, lines, 3)
	assert.Equal(t, "FPS: 60", lines[0])
	assert.Regexp(t, `^Mem: \d+\.\d\d MiB$`, lines[1])
	assert.Equal(t, "Draws: 33/33", lines[2])

	fps = 30
	for i := 2; i < updateInterval; i++ {
		assert.Equal(t, "FPS: 60", s.Tick(frame)[0], "frame %d", i)
	}
	assert.Equal(t, "FPS: 30", s.Tick(frame)[0])
}

func TestTickRespectsSwitches(t *testing.T) {
	s := New(nil)
	s.ShowMemAlloc = false

	assert.Equal(t, []string{"Draws: 31/33"}, s.Tick(composer.Frame{Objects: 33, Draws: 31}))

	off := &Stats{}
	assert.Empty(t, off.Tick(composer.Frame{}))
}
