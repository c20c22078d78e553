package rename

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// Statuses recorded in the mapping file for each planned entry.
const (
	StatusRenamed = "renamed"
	StatusDryRun  = "dry-run"
)

// Result is the recorded outcome of one planned entry.
type Result struct {
	Entry  PlanEntry
	Status string
}

// Executor walks a plan in order, either previewing it (dry-run) or applying
// it. The mode is fixed for the lifetime of the run. A per-entry failure is
// logged and recorded, never aborting the remaining entries.
type Executor struct {
	Apply bool
	Log   *OpLog
}

// Run processes every plan entry in order and returns one result per entry.
func (e *Executor) Run(plan Plan) []Result {
	var bar *progressbar.ProgressBar
	if e.Apply && isatty.IsTerminal(os.Stderr.Fd()) {
		bar = progressbar.Default(int64(len(plan.Entries)), "renaming")
	}

	results := make([]Result, 0, len(plan.Entries))
	for _, entry := range plan.Entries {
		results = append(results, e.runOne(plan.Dir, entry))
		if bar != nil {
			bar.Add(1)
		}
	}
	return results
}

func (e *Executor) runOne(dir string, entry PlanEntry) Result {
	if entry.Collision {
		e.Log.Printf("COLLISION: %s -> %s (target already exists)", entry.OldName, entry.NewName)
		return Result{Entry: entry, Status: "failed: target already exists"}
	}

	if !e.Apply {
		e.Log.Printf("DRY RUN: %s -> %s", entry.OldName, entry.NewName)
		return Result{Entry: entry, Status: StatusDryRun}
	}

	if err := os.Rename(entry.OldPath, filepath.Join(dir, entry.NewName)); err != nil {
		e.Log.Printf("FAILED: %s -> %s: %v", entry.OldName, entry.NewName, err)
		return Result{Entry: entry, Status: fmt.Sprintf("failed: %v", err)}
	}

	e.Log.Printf("RENAMED: %s -> %s", entry.OldName, entry.NewName)
	return Result{Entry: entry, Status: StatusRenamed}
}
