package scanner

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"audiokit/types"
)

// audioExts is the fixed set of extensions the scanner treats as audio.
var audioExts = map[string]bool{
	".wav":  true,
	".mp3":  true,
	".flac": true,
	".ogg":  true,
	".m4a":  true,
}

// IsAudioFile reports whether name carries a recognized audio extension.
// The check is case-insensitive.
func IsAudioFile(name string) bool {
	return audioExts[strings.ToLower(filepath.Ext(name))]
}

// Scan returns the recognized audio files directly inside dir, sorted by
// name. Subdirectories are not descended into and non-audio files are
// ignored. A missing or unreadable directory is a fatal setup error for the
// caller.
func Scan(dir string) ([]types.FileEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	// os.ReadDir already sorts entries by filename, which keeps every run
	// deterministic regardless of the underlying filesystem order.
	var files []types.FileEntry
	for _, entry := range entries {
		if entry.IsDir() || !IsAudioFile(entry.Name()) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			log.Printf("Warning: could not stat %s: %v", entry.Name(), err)
			continue
		}

		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(entry.Name())), ".")
		files = append(files, types.FileEntry{
			Path: filepath.Join(dir, entry.Name()),
			Name: entry.Name(),
			Ext:  ext,
			Size: info.Size(),
		})
	}

	return files, nil
}
