package types

// FileEntry represents a recognized audio file found by the scanner
type FileEntry struct {
	Path string `json:"path"`
	Name string `json:"name"`
	Ext  string `json:"ext"` // lower-case, without the leading dot
	Size int64  `json:"size"`
}

// AudioMetadata couples a scanned file with everything that could be read
// from it. DurationSec is set only for well-formed wav files; every other
// extension reports no duration.
type AudioMetadata struct {
	File        FileEntry `json:"file"`
	DurationSec *float64  `json:"durationSec,omitempty"`
	Tags        *TagInfo  `json:"tags,omitempty"`
}

// TagInfo represents embedded tag metadata for an audio file
type TagInfo struct {
	Title       string `json:"title,omitempty"`
	Artist      string `json:"artist,omitempty"`
	Album       string `json:"album,omitempty"`
	TrackNumber int    `json:"trackNumber,omitempty"`
}
