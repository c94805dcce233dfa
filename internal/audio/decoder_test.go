package audio

import (
	"io"
	"testing"
)

func TestNewWAVDecoder(t *testing.T) {
	path := writeWAV(t, "tone.wav", squareWave(4096), 44100, 1)

	decoder, err := NewWAVDecoder(path)
	if err != nil {
		t.Fatalf("failed to create WAV decoder: %v", err)
	}
	defer decoder.Close()

	if decoder.SampleRate() != 44100 {
		t.Errorf("sample rate: got %d, want 44100", decoder.SampleRate())
	}
	if decoder.NumChannels() != 1 {
		t.Errorf("channels: got %d, want 1", decoder.NumChannels())
	}
}

func TestWAVDecoderReadChunk(t *testing.T) {
	path := writeWAV(t, "tone.wav", squareWave(4096), 44100, 1)

	decoder, err := NewWAVDecoder(path)
	if err != nil {
		t.Fatalf("failed to create WAV decoder: %v", err)
	}
	defer decoder.Close()

	chunk, err := decoder.ReadChunk(2048)
	if err != nil {
		t.Fatalf("failed to read chunk: %v", err)
	}
	if len(chunk) != 2048 {
		t.Errorf("chunk size: got %d, want 2048", len(chunk))
	}
	for i, sample := range chunk {
		if sample < -1.0 || sample > 1.0 {
			t.Fatalf("sample %d out of range: %f (should be between -1.0 and 1.0)", i, sample)
		}
	}
}

func TestWAVDecoderStereoDownmix(t *testing.T) {
	// Interleaved stereo with opposite-phase channels must cancel to
	// silence when averaged.
	data := make([]int, 2048)
	for i := 0; i < len(data); i += 2 {
		data[i] = 16000
		data[i+1] = -16000
	}
	path := writeWAV(t, "opposed.wav", data, 44100, 2)

	decoder, err := NewWAVDecoder(path)
	if err != nil {
		t.Fatalf("failed to create WAV decoder: %v", err)
	}
	defer decoder.Close()

	if decoder.NumChannels() != 2 {
		t.Fatalf("channels: got %d, want 2", decoder.NumChannels())
	}

	chunk, err := decoder.ReadChunk(512)
	if err != nil {
		t.Fatalf("failed to read chunk: %v", err)
	}
	for i, sample := range chunk {
		if sample != 0 {
			t.Fatalf("downmixed sample %d: got %v, want 0 (channels cancel)", i, sample)
		}
	}
}

func TestWAVDecoderEOF(t *testing.T) {
	path := writeWAV(t, "short.wav", squareWave(100), 44100, 1)

	decoder, err := NewWAVDecoder(path)
	if err != nil {
		t.Fatalf("failed to create WAV decoder: %v", err)
	}
	defer decoder.Close()

	total := 0
	for {
		chunk, err := decoder.ReadChunk(64)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("unexpected read error: %v", err)
		}
		total += len(chunk)
	}
	if total != 100 {
		t.Errorf("total samples read: got %d, want 100", total)
	}
}

func TestNewWAVDecoderInvalidFile(t *testing.T) {
	if _, err := NewWAVDecoder("nonexistent.wav"); err == nil {
		t.Error("expected error for nonexistent file, got nil")
	}
}

func TestOpenDispatch(t *testing.T) {
	path := writeWAV(t, "dispatch.wav", squareWave(256), 44100, 1)

	decoder, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed for WAV: %v", err)
	}
	decoder.Close()

	if _, err := Open("track.ogg"); err == nil {
		t.Error("expected error for unsupported extension, got nil")
	}
	if _, err := Open("missing.mp3"); err == nil {
		t.Error("expected error for missing MP3, got nil")
	}
	if _, err := Open("missing.flac"); err == nil {
		t.Error("expected error for missing FLAC, got nil")
	}
}
