package metadata

import (
	"audiokit/types"
)

// Extract probes a scanned file and returns its metadata. Duration is
// computed only for wav files; for every other extension it is reported as
// absent rather than zero. A malformed wav header returns the metadata
// without a duration alongside an error wrapping ErrCorruptAudio, so the
// caller can log and continue.
func Extract(entry types.FileEntry) (types.AudioMetadata, error) {
	meta := types.AudioMetadata{File: entry}

	if entry.Ext != "wav" {
		return meta, nil
	}

	duration, err := WavDuration(entry.Path)
	if err != nil {
		return meta, err
	}

	meta.DurationSec = &duration
	return meta, nil
}
