package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/rs/zerolog/log"
)

// pcmRecorder tees every PCM chunk the audio player pulls from the wrapped
// stream into a WAV file. It sits between the oscillator and the player, so
// the recording contains exactly what was heard.
type pcmRecorder struct {
	src io.Reader

	mu     sync.Mutex
	file   *os.File
	enc    *wav.Encoder
	buf    *audio.IntBuffer
	closed bool
}

// newPCMRecorder opens path for writing and prepares a 16-bit stereo WAV
// encoder at the application sample rate.
func newPCMRecorder(src io.Reader, path string) (*pcmRecorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create recording %q: %w", path, err)
	}
	enc := wav.NewEncoder(f, audioSampleRate, wavBitDepth, audioChannels, 1)
	return &pcmRecorder{
		src:  src,
		file: f,
		enc:  enc,
		buf: &audio.IntBuffer{
			Format:         &audio.Format{NumChannels: audioChannels, SampleRate: audioSampleRate},
			SourceBitDepth: wavBitDepth,
		},
	}, nil
}

// Read satisfies the audio player's stream interface, forwarding to the
// wrapped source and appending whatever was produced to the recording.
func (r *pcmRecorder) Read(p []byte) (int, error) {
	n, err := r.src.Read(p)
	if n > 0 {
		r.append(p[:n])
	}
	return n, err
}

func (r *pcmRecorder) append(pcm []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	data := r.buf.Data[:0]
	for i := 0; i+audioBytesPerSample <= len(pcm); i += audioBytesPerSample {
		data = append(data, int(int16(binary.LittleEndian.Uint16(pcm[i:i+audioBytesPerSample]))))
	}
	r.buf.Data = data
	if err := r.enc.Write(r.buf); err != nil {
		log.Warn().Err(err).Msg("recording write failed")
	}
}

// Close finalizes the WAV header and closes the file. Safe to call more than
// once; reads arriving after Close are forwarded but no longer recorded.
func (r *pcmRecorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	if err := r.enc.Close(); err != nil {
		_ = r.file.Close()
		return fmt.Errorf("finalize recording: %w", err)
	}
	if err := r.file.Close(); err != nil {
		return fmt.Errorf("close recording: %w", err)
	}
	return nil
}
