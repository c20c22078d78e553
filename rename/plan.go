package rename

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"audiokit/types"
)

// Output files produced by a rename run, always in the working directory.
const (
	LogFile     = "rename_log.txt"
	MappingFile = "rename_mapping.csv"
)

// Options is the static option set for one rename run. It is fixed before
// the plan is built and never changes mid-run.
type Options struct {
	Prefix string
	Start  int
	// Pad is the zero-pad width for the index. It is fixed for the whole
	// run so that padded names sort correctly across the 9 -> 10 boundary.
	// Zero disables padding.
	Pad int
}

// PlanEntry is one planned rename, immutable once built.
type PlanEntry struct {
	OldPath string
	OldName string
	NewName string
	Index   int
	// Collision is set when the target name already exists in the
	// directory as a file that is not being renamed in this run. The
	// executor records such entries as failed and never touches them.
	Collision bool
}

// Plan is the ordered rename plan for one directory.
type Plan struct {
	Dir     string
	Entries []PlanEntry
	// Skipped lists files that already carry the prefix and are left
	// untouched. They consume no index.
	Skipped []string
}

// NewName builds the standardized filename for an index, preserving the
// original extension. Example: prefix "speaker1", index 1, ext "wav" with
// pad 3 gives "speaker1_001.wav".
func NewName(prefix string, index, pad int, ext string) string {
	if pad > 0 {
		return fmt.Sprintf("%s_%0*d.%s", prefix, pad, index, ext)
	}
	return fmt.Sprintf("%s_%d.%s", prefix, index, ext)
}

// AlreadyRenamed reports whether a file already follows the naming pattern
// for the given prefix.
func AlreadyRenamed(name, prefix string) bool {
	return strings.HasPrefix(name, prefix+"_")
}

// Build produces the rename plan for the scanned files, in scan order.
// Indexes are assigned monotonically starting at opts.Start and only to
// files that receive a plan entry, so the old -> new mapping is a bijection
// with no duplicate targets.
func Build(dir string, files []types.FileEntry, opts Options) Plan {
	plan := Plan{Dir: dir}

	index := opts.Start
	for _, f := range files {
		if AlreadyRenamed(f.Name, opts.Prefix) {
			plan.Skipped = append(plan.Skipped, f.Name)
			continue
		}

		newName := NewName(opts.Prefix, index, opts.Pad, f.Ext)
		entry := PlanEntry{
			OldPath: f.Path,
			OldName: f.Name,
			NewName: newName,
			Index:   index,
		}

		// Every target carries the prefix and every planned original
		// does not, so an existing file at a target name is always a
		// foreign occupant, never one of this run's own sources.
		if _, err := os.Stat(filepath.Join(dir, newName)); err == nil {
			entry.Collision = true
		}

		plan.Entries = append(plan.Entries, entry)
		index++
	}

	return plan
}
