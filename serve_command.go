package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"audiokit/handlers"
	"audiokit/middleware"
)

func newServeCommand() *cobra.Command {
	var (
		inputDir string
		port     int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the audio inventory over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(inputDir); err != nil {
				return fmt.Errorf("input directory: %w", err)
			}
			return startServer(inputDir, port)
		},
	}

	cmd.Flags().StringVarP(&inputDir, "input", "i", "input_audio", "Directory containing audio files to serve")
	cmd.Flags().IntVar(&port, "port", 8080, "Port for the HTTP server")

	return cmd
}

// newRouter wires the read-only inventory API.
func newRouter(inputDir string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.Logging())

	fileHandler := handlers.NewFileHandler(inputDir)
	healthHandler := handlers.NewHealthHandler(inputDir)

	r.GET("/health", healthHandler.HealthCheck)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/status", healthHandler.APIStatus)
		apiGroup.GET("/files", fileHandler.ListFiles)
	}

	return r
}

func startServer(inputDir string, port int) error {
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := newRouter(inputDir)

	portStr := strconv.Itoa(port)
	if serverPort := os.Getenv("SERVER_PORT"); serverPort != "" {
		portStr = serverPort
	}

	log.Printf("audiokit inventory server starting on port %s", portStr)
	log.Printf("Serving audio inventory for: %s", inputDir)
	return r.Run(":" + portStr)
}
