package rename

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audiokit/types"
)

func fileEntries(dir string, names ...string) []types.FileEntry {
	entries := make([]types.FileEntry, 0, len(names))
	for _, name := range names {
		ext := filepath.Ext(name)
		entries = append(entries, types.FileEntry{
			Path: filepath.Join(dir, name),
			Name: name,
			Ext:  ext[1:],
		})
	}
	return entries
}

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
}

// TestNewName tests the filename pattern
func TestNewName(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		index    int
		pad      int
		ext      string
		expected string
	}{
		{"padded", "speaker", 1, 3, "wav", "speaker_001.wav"},
		{"padded double digit", "speaker", 10, 3, "wav", "speaker_010.wav"},
		{"unpadded", "speaker1", 1, 0, "wav", "speaker1_1.wav"},
		{"index wider than pad", "s", 12345, 3, "mp3", "s_12345.mp3"},
		{"start at zero", "take", 0, 2, "ogg", "take_00.ogg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewName(tt.prefix, tt.index, tt.pad, tt.ext))
		})
	}
}

// TestNewNamePaddingSorts tests that a fixed pad width keeps 9 and 10 ordered
func TestNewNamePaddingSorts(t *testing.T) {
	names := []string{
		NewName("p", 9, 3, "wav"),
		NewName("p", 10, 3, "wav"),
	}
	assert.True(t, sort.StringsAreSorted(names), "p_009 must sort before p_010")
}

// TestBuild tests the worked example: two files, prefix speaker1, start 1
func TestBuild(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.wav", "b.mp3")

	plan := Build(dir, fileEntries(dir, "a.wav", "b.mp3"), Options{Prefix: "speaker1", Start: 1})

	require.Len(t, plan.Entries, 2)
	assert.Equal(t, "speaker1_1.wav", plan.Entries[0].NewName)
	assert.Equal(t, "speaker1_2.mp3", plan.Entries[1].NewName)
	assert.Equal(t, 1, plan.Entries[0].Index)
	assert.Equal(t, 2, plan.Entries[1].Index)
	assert.Empty(t, plan.Skipped)
}

// TestBuildSkipsAlreadyRenamed tests that prefixed files consume no index
func TestBuildSkipsAlreadyRenamed(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "speaker_005.wav", "zz.mp3")

	plan := Build(dir, fileEntries(dir, "speaker_005.wav", "zz.mp3"), Options{Prefix: "speaker", Start: 1, Pad: 3})

	require.Len(t, plan.Entries, 1)
	assert.Equal(t, "zz.mp3", plan.Entries[0].OldName)
	assert.Equal(t, "speaker_001.mp3", plan.Entries[0].NewName)
	assert.Equal(t, []string{"speaker_005.wav"}, plan.Skipped)
}

// TestBuildCollision tests that a foreign file at a target name is flagged
func TestBuildCollision(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.wav", "b.mp3", "speaker1_002.mp3")

	// speaker1_002.mp3 carries the prefix so the scanner result includes
	// it, but it is skipped, making it a foreign occupant of b.mp3's
	// target name.
	plan := Build(dir, fileEntries(dir, "a.wav", "b.mp3", "speaker1_002.mp3"), Options{Prefix: "speaker1", Start: 1, Pad: 3})

	require.Len(t, plan.Entries, 2)
	assert.False(t, plan.Entries[0].Collision)
	assert.True(t, plan.Entries[1].Collision, "b.mp3 -> speaker1_002.mp3 is occupied")
}

// TestBuildFreeTarget tests that a free target name raises no collision
func TestBuildFreeTarget(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "take_2.wav", "a.wav")

	// a.wav -> take_1.wav, and take_2.wav is skipped (already prefixed);
	// nothing occupies take_1.wav, so no collision anywhere.
	plan := Build(dir, fileEntries(dir, "a.wav", "take_2.wav"), Options{Prefix: "take", Start: 1})
	require.Len(t, plan.Entries, 1)
	assert.False(t, plan.Entries[0].Collision)
}

// TestBuildBijection tests that targets are unique and one per entry
func TestBuildBijection(t *testing.T) {
	dir := t.TempDir()
	names := []string{"a.wav", "b.wav", "c.mp3", "d.flac", "e.ogg", "f.m4a", "g.wav", "h.mp3", "i.wav", "j.wav", "k.wav"}
	touch(t, dir, names...)

	plan := Build(dir, fileEntries(dir, names...), Options{Prefix: "clip", Start: 7, Pad: 3})
	require.Len(t, plan.Entries, len(names))

	seen := make(map[string]bool)
	for i, entry := range plan.Entries {
		assert.False(t, seen[entry.NewName], "duplicate target %s", entry.NewName)
		seen[entry.NewName] = true
		assert.Equal(t, 7+i, entry.Index)
	}
}
