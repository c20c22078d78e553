package handlers

import (
	"errors"
	"io/fs"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"audiokit/metadata"
	"audiokit/scanner"
	"audiokit/types"
)

// FileHandler serves the audio inventory endpoints
type FileHandler struct {
	inputDir string
}

// NewFileHandler creates a new file handler for the given input directory
func NewFileHandler(inputDir string) *FileHandler {
	return &FileHandler{
		inputDir: inputDir,
	}
}

// ListFiles scans the input directory and returns the inventory as JSON.
// Corrupt wav headers keep their row without a duration, mirroring the CSV
// report's log-and-continue policy.
func (h *FileHandler) ListFiles(c *gin.Context) {
	files, err := scanner.Scan(h.inputDir)
	if err != nil {
		log.Printf("Error scanning audio files: %v", err)
		status := http.StatusInternalServerError
		if errors.Is(err, fs.ErrNotExist) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{
			"error":   "failed to scan files",
			"details": err.Error(),
		})
		return
	}

	inventory := make([]types.AudioMetadata, 0, len(files))
	for _, file := range files {
		meta, err := metadata.Extract(file)
		if err != nil {
			log.Printf("Warning: could not read duration: %v", err)
		}
		meta.Tags = metadata.ReadTags(file.Path)
		inventory = append(inventory, meta)
	}

	c.JSON(http.StatusOK, gin.H{
		"files": inventory,
		"count": len(inventory),
	})
}
