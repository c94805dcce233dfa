// Package audio turns audio files into the normalized loudness samples
// the waveform renderer consumes.
//
// Decoding is streaming and format-specific (WAV, MP3, FLAC); the
// sampler downmixes to mono, buckets the signal across the requested
// resolution and converts each bucket's RMS power to a decibel value
// normalized against a fixed noise floor.
package audio

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Decoder is the interface all format decoders implement. Decoders
// produce mono float64 samples in [-1, 1].
type Decoder interface {
	// ReadChunk reads roughly numSamples mono samples; block-based
	// formats may return slightly more to avoid splitting a frame. It
	// returns io.EOF once the stream is exhausted.
	ReadChunk(numSamples int) ([]float64, error)

	// SampleRate returns the audio sample rate in Hz.
	SampleRate() int

	// NumChannels returns the channel count of the source before
	// downmixing (1=mono, 2=stereo).
	NumChannels() int

	// Close closes the decoder and releases resources.
	Close() error
}

// Open selects a decoder by file extension.
func Open(filename string) (Decoder, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		return NewWAVDecoder(filename)
	case ".mp3":
		return NewMP3Decoder(filename)
	case ".flac":
		return NewFLACDecoder(filename)
	}
	return nil, fmt.Errorf("unsupported audio format %q (want .wav, .mp3 or .flac)", filepath.Ext(filename))
}
