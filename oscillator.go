package main

import (
	"math"
	"sync"
)

// sineStream generates a fixed-amplitude sine tone as 16-bit little-endian
// stereo PCM for the audio player. It is intentionally independent of the
// chamber: the tone is driven only by its own frequency, which the input
// handler adjusts at runtime. Read runs on the audio goroutine, so the phase
// and frequency are guarded by a mutex.
type sineStream struct {
	mu    sync.Mutex
	phase float64
	hz    float64
}

func newSineStream(hz float64) *sineStream {
	return &sineStream{hz: hz}
}

// Frequency reports the current tone frequency in Hz.
func (s *sineStream) Frequency() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hz
}

// AdjustFrequency shifts the tone by delta Hz, clamping at zero.
func (s *sineStream) AdjustFrequency(delta float64) {
	s.mu.Lock()
	s.hz += delta
	if s.hz < 0 {
		s.hz = 0
	}
	s.mu.Unlock()
}

// Read fills p with whole stereo frames of the running sine tone. The phase
// accumulates hz/sampleRate per frame and wraps at 1 to keep precision over
// long runs.
func (s *sineStream) Read(p []byte) (int, error) {
	frameBytes := len(p) - len(p)%audioFrameBytes
	if frameBytes == 0 {
		return 0, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < frameBytes; i += audioFrameBytes {
		v := int16(math.Sin(2*math.Pi*s.phase) * oscillatorVolume * pcm16MaxValue)
		s.phase += s.hz / audioSampleRate
		if s.phase >= 1 {
			s.phase -= math.Floor(s.phase)
		}
		p[i] = byte(v)
		p[i+1] = byte(v >> 8)
		p[i+2] = p[i]
		p[i+3] = p[i+1]
	}
	return frameBytes, nil
}

func (s *sineStream) Close() error { return nil }
