package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

const sampleRate = beep.SampleRate(48000)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveSaw
	waveNoise
)

// floatBuffer is mono float64 samples at unity gain.
type floatBuffer []float64

// oscillator generates raw waveform samples.
func oscillator(waveType int, freq float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	phaseInc := freq / float64(sampleRate)

	for i := 0; i < samples; i++ {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveSaw:
			buf[i] = 2.0 * (phase - 0.5)
		case waveNoise:
			buf[i] = rand.Float64()*2 - 1
		}

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies a linear attack/release envelope in place.
func applyEnvelope(buf floatBuffer, attack, release time.Duration) {
	total := len(buf)
	attackSamples := sampleRate.N(attack)
	releaseSamples := sampleRate.N(release)

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// mixFloatBuffers adds b into a (in place), extending a if needed.
func mixFloatBuffers(a, b floatBuffer, bScale float64) floatBuffer {
	if len(b) > len(a) {
		extended := make(floatBuffer, len(b))
		copy(extended, a)
		a = extended
	}
	for i := range b {
		a[i] += b[i] * bScale
	}
	return a
}

// concatFloatBuffers appends b to a.
func concatFloatBuffers(a, b floatBuffer) floatBuffer {
	result := make(floatBuffer, len(a)+len(b))
	copy(result, a)
	copy(result[len(a):], b)
	return result
}

// --- Cue generators (unity gain) ---

// generateFlapSound is a short airy puff: noise burst over a quick
// rising sine chirp.
func generateFlapSound() floatBuffer {
	samples := sampleRate.N(70 * time.Millisecond)

	puff := oscillator(waveNoise, 0, samples)
	applyEnvelope(puff, 5*time.Millisecond, 50*time.Millisecond)

	chirp := oscillator(waveSine, 520.0, samples)
	applyEnvelope(chirp, 5*time.Millisecond, 55*time.Millisecond)

	return mixFloatBuffers(chirp, puff, 0.4)
}

// generateScoreSound is a two-note square arpeggio, B5 then E6.
func generateScoreSound() floatBuffer {
	n1Samples := sampleRate.N(60 * time.Millisecond)
	n1 := oscillator(waveSquare, 987.77, n1Samples)
	applyEnvelope(n1, 3*time.Millisecond, 25*time.Millisecond)

	n2Samples := sampleRate.N(110 * time.Millisecond)
	n2 := oscillator(waveSquare, 1318.51, n2Samples)
	applyEnvelope(n2, 3*time.Millisecond, 70*time.Millisecond)

	return concatFloatBuffers(n1, n2)
}

// generateCollisionSound is a harsh low saw buzz.
func generateCollisionSound() floatBuffer {
	samples := sampleRate.N(280 * time.Millisecond)
	buf := oscillator(waveSaw, 95.0, samples)
	applyEnvelope(buf, 4*time.Millisecond, 200*time.Millisecond)
	return buf
}

// generateStartSound is a bell: A5 fundamental with a fading A6 overtone.
func generateStartSound() floatBuffer {
	samples := sampleRate.N(350 * time.Millisecond)

	fund := oscillator(waveSine, 880.0, samples)
	applyEnvelope(fund, 5*time.Millisecond, 300*time.Millisecond)

	over := oscillator(waveSine, 1760.0, samples)
	applyEnvelope(over, 5*time.Millisecond, 150*time.Millisecond)

	return mixFloatBuffers(fund, over, 0.3/0.7)
}

// bufferStreamer plays a mono floatBuffer once at a fixed gain.
type bufferStreamer struct {
	buf  floatBuffer
	gain float64
	pos  int
}

func (s *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	for i := range samples {
		if s.pos >= len(s.buf) {
			return i, true
		}
		v := s.buf[s.pos] * s.gain
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *bufferStreamer) Err() error {
	return nil
}
