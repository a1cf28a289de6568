// Command pulseicon renders the ServerPulse application icon to
// Resources/AppIcon.png at the repository root.
package main

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/serverpulse/pulseicon"
	"github.com/serverpulse/pulseicon/internal/logging"
)

func main() {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "2006-01-02 15:04:05",
	}
	log := zerolog.New(consoleWriter).With().Timestamp().Logger()
	pulseicon.SetLogger(slog.New(logging.NewHandler(log, slog.LevelInfo)))

	path := outputPath()
	size, err := run(path, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to generate icon")
	}

	fmt.Printf("Icon saved to %s\n", path)
	fmt.Printf("Size: %dx%d\n", size.X, size.Y)
}

// run renders the default icon to path and returns the size of the
// image it wrote.
func run(path string, log zerolog.Logger) (image.Point, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return image.Point{}, fmt.Errorf("create output directory: %w", err)
	}
	ic, err := pulseicon.New()
	if err != nil {
		return image.Point{}, err
	}

	img := ic.Render()
	if err := img.SavePNG(path); err != nil {
		return image.Point{}, err
	}
	log.Info().
		Str("path", path).
		Str("sha256", img.Digest()).
		Msg("icon written")
	return img.Bounds().Size(), nil
}

// outputPath returns Resources/AppIcon.png under the module root, found
// from this file's location. Binaries built without source paths fall
// back to the working directory.
func outputPath() string {
	root := "."
	if _, file, _, ok := runtime.Caller(0); ok && filepath.IsAbs(file) {
		root = filepath.Dir(filepath.Dir(filepath.Dir(file)))
	} else if wd, err := os.Getwd(); err == nil {
		root = wd
	}
	return filepath.Join(root, "Resources", "AppIcon.png")
}
