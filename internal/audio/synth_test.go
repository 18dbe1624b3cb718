package audio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhijitkoch19060-lgtm/Flappy-bird-2.0/internal/game"
)

func TestGeneratorsStayWithinUnityGain(t *testing.T) {
	tests := []struct {
		name string
		gen  func() floatBuffer
	}{
		{"flap", generateFlapSound},
		{"score", generateScoreSound},
		{"collision", generateCollisionSound},
		{"start", generateStartSound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := tc.gen()
			require.NotEmpty(t, buf)
			for i, v := range buf {
				require.GreaterOrEqualf(t, v, -1.5, "sample %d", i)
				require.LessOrEqualf(t, v, 1.5, "sample %d", i)
			}
		})
	}
}

func TestEnvelopeFadesEdges(t *testing.T) {
	buf := oscillator(waveSquare, 440, sampleRate.N(100*time.Millisecond))
	applyEnvelope(buf, 10*time.Millisecond, 10*time.Millisecond)

	assert.Zero(t, buf[0], "attack must start from silence")
	assert.InDelta(t, 0, buf[len(buf)-1], 0.01, "release must end near silence")

	mid := buf[len(buf)/2]
	assert.InDelta(t, 1, mid*mid, 0.01, "body stays at unity gain")
}

func TestConcatAndMixLengths(t *testing.T) {
	a := make(floatBuffer, 100)
	b := make(floatBuffer, 250)

	assert.Len(t, concatFloatBuffers(a, b), 350)
	assert.Len(t, mixFloatBuffers(a, b, 0.5), 250, "mix extends to the longer buffer")
	assert.Len(t, mixFloatBuffers(b, a, 0.5), 250)
}

func TestBufferStreamerAppliesGain(t *testing.T) {
	s := &bufferStreamer{buf: floatBuffer{1, 1, 1, 1}, gain: 0.25}

	out := make([][2]float64, 4)
	n, ok := s.Stream(out)
	require.True(t, ok)
	require.Equal(t, 4, n)
	for _, frame := range out {
		assert.Equal(t, 0.25, frame[0])
		assert.Equal(t, frame[0], frame[1], "mono source plays on both channels")
	}

	n, ok = s.Stream(out)
	assert.False(t, ok, "streamer is one-shot")
	assert.Zero(t, n)
}

func TestDisabledEnginePlayIsSafe(t *testing.T) {
	e := &Engine{
		sounds: map[game.Cue]floatBuffer{game.CueFlap: generateFlapSound()},
	}

	assert.NotPanics(t, func() {
		e.Play(game.CueFlap, 0.8)
		e.Play(game.CueScore, 0.8)
		e.Close()
	})
	assert.False(t, e.Enabled())
}
