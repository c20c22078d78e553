package metadata

import (
	"log"
	"os"

	"github.com/dhowden/tag"

	"audiokit/types"
)

// ReadTags extracts embedded tag metadata (ID3, vorbis comments, MP4 atoms)
// from an audio file. Files without readable tags yield nil rather than an
// error; a missing tag block is normal for raw recordings.
func ReadTags(path string) *types.TagInfo {
	file, err := os.Open(path)
	if err != nil {
		log.Printf("Warning: could not open audio file %s: %v", path, err)
		return nil
	}
	defer file.Close()

	meta, err := tag.ReadFrom(file)
	if err != nil {
		log.Printf("Warning: could not parse audio metadata from %s: %v", path, err)
		return nil
	}

	track, _ := meta.Track()
	return &types.TagInfo{
		Title:       meta.Title(),
		Artist:      meta.Artist(),
		Album:       meta.Album(),
		TrackNumber: track,
	}
}
