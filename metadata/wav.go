package metadata

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrCorruptAudio marks a wav file whose header could not be parsed.
var ErrCorruptAudio = errors.New("corrupt audio header")

// WavDuration returns the duration of a wav file in seconds, computed from
// the RIFF header alone (data frames / sample rate). No audio samples are
// decoded.
func WavDuration(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	duration, err := parseWavHeader(f)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	return duration, nil
}

// parseWavHeader walks the RIFF chunk list until it has seen both the fmt
// chunk and the data chunk size.
func parseWavHeader(r io.ReadSeeker) (float64, error) {
	var riff [12]byte
	if _, err := io.ReadFull(r, riff[:]); err != nil {
		return 0, fmt.Errorf("%w: file too short", ErrCorruptAudio)
	}
	if string(riff[0:4]) != "RIFF" || string(riff[8:12]) != "WAVE" {
		return 0, fmt.Errorf("%w: not a RIFF/WAVE file", ErrCorruptAudio)
	}

	var (
		sampleRate uint32
		blockAlign uint16
		dataSize   uint32
		haveFmt    bool
		haveData   bool
	)

	for !haveFmt || !haveData {
		var hdr [8]byte
		if _, err := io.ReadFull(r, hdr[:]); err != nil {
			break
		}
		size := binary.LittleEndian.Uint32(hdr[4:8])

		switch string(hdr[0:4]) {
		case "fmt ":
			if size < 16 {
				return 0, fmt.Errorf("%w: fmt chunk too short", ErrCorruptAudio)
			}
			var fmtChunk [16]byte
			if _, err := io.ReadFull(r, fmtChunk[:]); err != nil {
				return 0, fmt.Errorf("%w: truncated fmt chunk", ErrCorruptAudio)
			}
			sampleRate = binary.LittleEndian.Uint32(fmtChunk[4:8])
			blockAlign = binary.LittleEndian.Uint16(fmtChunk[12:14])
			haveFmt = true
			if err := skipChunk(r, int64(size)-16); err != nil {
				return 0, err
			}
		case "data":
			dataSize = size
			haveData = true
			if err := skipChunk(r, int64(size)); err != nil {
				return 0, err
			}
		default:
			if err := skipChunk(r, int64(size)); err != nil {
				return 0, err
			}
		}
	}

	if !haveFmt || !haveData {
		return 0, fmt.Errorf("%w: missing fmt or data chunk", ErrCorruptAudio)
	}
	if sampleRate == 0 || blockAlign == 0 {
		return 0, fmt.Errorf("%w: invalid fmt chunk", ErrCorruptAudio)
	}

	frames := dataSize / uint32(blockAlign)
	return float64(frames) / float64(sampleRate), nil
}

// skipChunk advances past a chunk body. RIFF pads odd-sized chunks to an
// even byte boundary.
func skipChunk(r io.ReadSeeker, size int64) error {
	if size <= 0 {
		return nil
	}
	if size%2 == 1 {
		size++
	}
	if _, err := r.Seek(size, io.SeekCurrent); err != nil {
		return fmt.Errorf("%w: truncated chunk", ErrCorruptAudio)
	}
	return nil
}
