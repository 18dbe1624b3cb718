package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/abhijitkoch19060-lgtm/Flappy-bird-2.0/internal/game"
)

// Engine synthesizes and plays the game cues. When no audio backend is
// available (headless hosts, SSH sessions) the engine stays disabled and
// Play is a no-op.
type Engine struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	sounds  map[game.Cue]floatBuffer
	enabled bool
	logger  *log.Logger
}

var _ game.Sink = (*Engine)(nil)

// NewEngine generates the cue sounds and opens the speaker. Backend
// failures are logged and leave the engine disabled instead of erroring.
func NewEngine(logger *log.Logger) *Engine {
	e := &Engine{
		mixer:  &beep.Mixer{},
		logger: logger,
		sounds: map[game.Cue]floatBuffer{
			game.CueFlap:         generateFlapSound(),
			game.CueScore:        generateScoreSound(),
			game.CueCollision:    generateCollisionSound(),
			game.CueSessionStart: generateStartSound(),
		},
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		logger.Warn("audio backend unavailable, running silent", "err", err)
		return e
	}

	speaker.Play(e.mixer)
	e.enabled = true
	return e
}

// Enabled reports whether a backend was opened.
func (e *Engine) Enabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.enabled
}

// Play queues the cue at the given volume. Unknown cues and volumes at
// or below zero are dropped.
func (e *Engine) Play(cue game.Cue, volume float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.enabled || volume <= 0 {
		return
	}
	buf, ok := e.sounds[cue]
	if !ok {
		return
	}
	if volume > 1 {
		volume = 1
	}

	speaker.Lock()
	e.mixer.Add(&bufferStreamer{buf: buf, gain: volume})
	speaker.Unlock()
}

// Close silences the mixer. beep exposes no speaker teardown, so
// clearing all streamers is the whole shutdown.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.enabled {
		return
	}
	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
	e.enabled = false
}
