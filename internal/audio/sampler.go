package audio

import (
	"fmt"
	"io"
	"math"
)

// NoiseFloorDB is the attenuation treated as silence. Bucket loudness is
// clamped to [NoiseFloorDB, 0] dB before normalization.
const NoiseFloorDB = -50.0

// readChunkSize is how many samples each decoder read requests.
const readChunkSize = 8192

// Samples decodes the audio file at filename and reduces it to count
// normalized loudness values in left-to-right time order. Each value is
// in [0, 1] with the scale inverted: 1.0 is silence at the noise floor,
// 0.0 is full amplitude.
func Samples(filename string, count int) ([]float64, error) {
	if count <= 0 {
		return nil, nil
	}

	decoder, err := Open(filename)
	if err != nil {
		return nil, err
	}
	defer decoder.Close()

	pcm, err := readAll(decoder)
	if err != nil {
		return nil, err
	}
	if len(pcm) == 0 {
		return nil, fmt.Errorf("no audio data in %s", filename)
	}

	return envelope(pcm, count), nil
}

// readAll drains a decoder into memory.
func readAll(d Decoder) ([]float64, error) {
	var pcm []float64
	for {
		chunk, err := d.ReadChunk(readChunkSize)
		if err != nil {
			if err == io.EOF {
				return pcm, nil
			}
			return nil, fmt.Errorf("failed to read audio: %w", err)
		}
		pcm = append(pcm, chunk...)
	}
}

// envelope buckets the PCM signal into count windows and converts each
// window's RMS power to a noise-floor-normalized loudness sample.
func envelope(pcm []float64, count int) []float64 {
	out := make([]float64, count)
	for i := range out {
		start := i * len(pcm) / count
		end := (i + 1) * len(pcm) / count
		if end <= start {
			end = start + 1
		}
		if end > len(pcm) {
			end = len(pcm)
		}
		out[i] = normalize(rms(pcm[start:end]))
	}
	return out
}

// rms returns the root-mean-square power of a window. Empty windows are
// silent.
func rms(window []float64) float64 {
	if len(window) == 0 {
		return 0
	}
	var sumSquares float64
	for _, sample := range window {
		sumSquares += sample * sample
	}
	return math.Sqrt(sumSquares / float64(len(window)))
}

// normalize maps an RMS power onto the inverted loudness scale: 0 dB
// (full scale) maps to 0.0 and the noise floor maps to 1.0.
func normalize(power float64) float64 {
	db := 20 * math.Log10(power)
	if db < NoiseFloorDB {
		db = NoiseFloorDB
	}
	if db > 0 {
		db = 0
	}
	return db / NoiseFloorDB
}
