// Command roadrush-assets writes the procedural sprites and backdrops out as PNG files.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/golangdaddy/roadrush/pkg/background"
	"github.com/golangdaddy/roadrush/pkg/config"
	"github.com/golangdaddy/roadrush/pkg/logging"
	"github.com/golangdaddy/roadrush/pkg/sprites"
	"github.com/rs/zerolog"
)

// exportSeed matches the backdrop the game paints
const exportSeed = 1987

func savePNG(img image.Image, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// export writes every image into dir and returns the file names written
func export(dir string, width, height int, log zerolog.Logger) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	sheet := sprites.Generate()
	images := []struct {
		name string
		img  image.Image
	}{
		{"img_sky.png", background.NewGenerator(width, height).GenerateSky(exportSeed)},
		{"img_city.png", background.NewGenerator(width, height/4).GenerateSkyline(exportSeed)},
		{"img_player.png", sheet.Player},
		{"img_car.png", sheet.Car},
		{"img_truck.png", sheet.Truck},
	}

	written := make([]string, 0, len(images))
	for _, entry := range images {
		filename := filepath.Join(dir, entry.name)
		if err := savePNG(entry.img, filename); err != nil {
			return written, fmt.Errorf("failed to save %s: %w", filename, err)
		}
		log.Info().Str("file", filename).Msg("generated")
		written = append(written, filename)
	}
	return written, nil
}

func main() {
	dir := flag.String("out", filepath.Join("assets", "img"), "output directory")
	flag.Parse()

	log := logging.New("info", os.Stdout)
	settings := config.Default()

	if _, err := export(*dir, settings.Screen.Width, settings.Screen.Height, log); err != nil {
		log.Error().Err(err).Msg("asset generation failed")
		os.Exit(1)
	}
}
