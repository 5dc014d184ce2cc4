package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/df07/go-diffuse-raytracer/pkg/core"
	"github.com/df07/go-diffuse-raytracer/pkg/renderer"
	"github.com/df07/go-diffuse-raytracer/pkg/scene"
)

const defaultEnvFile = ".env"

// renderConfig holds the fixed render parameters
type renderConfig struct {
	Scene           string
	Width           int
	AspectRatio     float64
	SamplesPerPixel int
	MaxDepth        int
	Seed            int64
}

func defaultRenderConfig() renderConfig {
	sampling := renderer.DefaultSamplingConfig()
	return renderConfig{
		Scene:           "default",
		Width:           sampling.Width,
		AspectRatio:     renderer.DefaultCameraConfig().AspectRatio,
		SamplesPerPixel: sampling.SamplesPerPixel,
		MaxDepth:        sampling.MaxDepth,
		Seed:            time.Now().UnixNano(),
	}
}

// Height derives the image height from the width and aspect ratio
func (c renderConfig) Height() int {
	return int(float64(c.Width) / c.AspectRatio)
}

// envSource looks up settings in the process environment first, then in the env file
type envSource struct {
	file map[string]string
}

func (e envSource) get(key string) (string, bool) {
	if v := os.Getenv(key); v != "" {
		return v, true
	}
	v, ok := e.file[key]
	return v, ok && v != ""
}

func (e envSource) intVar(key string, target *int) error {
	if v, ok := e.get(key); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %v", key, v, err)
		}
		*target = n
	}
	return nil
}

func (e envSource) int64Var(key string, target *int64) error {
	if v, ok := e.get(key); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %v", key, v, err)
		}
		*target = n
	}
	return nil
}

func (e envSource) floatVar(key string, target *float64) error {
	if v, ok := e.get(key); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %v", key, v, err)
		}
		*target = f
	}
	return nil
}

// loadConfig reads RAYTRACER_* settings. A missing env file is only an error
// when it was asked for explicitly.
func loadConfig(envFile string, required bool) (renderConfig, error) {
	cfg := defaultRenderConfig()

	file, err := godotenv.Read(envFile)
	if err != nil {
		if required || !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("failed to read env file %s: %v", envFile, err)
		}
		file = map[string]string{}
	}
	env := envSource{file: file}

	if v, ok := env.get("RAYTRACER_SCENE"); ok {
		cfg.Scene = v
	}
	for _, load := range []func() error{
		func() error { return env.intVar("RAYTRACER_WIDTH", &cfg.Width) },
		func() error { return env.floatVar("RAYTRACER_ASPECT_RATIO", &cfg.AspectRatio) },
		func() error { return env.intVar("RAYTRACER_SAMPLES", &cfg.SamplesPerPixel) },
		func() error { return env.intVar("RAYTRACER_MAX_DEPTH", &cfg.MaxDepth) },
		func() error { return env.int64Var("RAYTRACER_SEED", &cfg.Seed) },
	} {
		if err := load(); err != nil {
			return cfg, err
		}
	}

	if cfg.AspectRatio <= 0 {
		return cfg, fmt.Errorf("invalid aspect ratio %f: must be positive", cfg.AspectRatio)
	}
	return cfg, nil
}

func printHelp(w io.Writer, flags *flag.FlagSet) {
	fmt.Fprintln(w, "Diffuse Raytracer")
	fmt.Fprintln(w, "Usage: raytracer [options] > image.ppm")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	flags.SetOutput(w)
	flags.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment (also read from the env file):")
	fmt.Fprintln(w, "  RAYTRACER_SCENE, RAYTRACER_WIDTH, RAYTRACER_ASPECT_RATIO,")
	fmt.Fprintln(w, "  RAYTRACER_SAMPLES, RAYTRACER_MAX_DEPTH, RAYTRACER_SEED")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, name := range scene.Names() {
		fmt.Fprintf(w, "  %s\n", name)
	}
}

// savePreview writes a PNG thumbnail to path. A failed close is an error.
func savePreview(path string, img *renderer.Image, samplesPerPixel int, maxSize uint) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create preview file: %v", err)
	}
	if err := renderer.WritePreviewPNG(file, img, samplesPerPixel, maxSize); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close preview file: %v", err)
	}
	return nil
}

// run renders one image as P3 to stdout; progress and errors go to stderr
func run(args []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	flags.SetOutput(stderr)
	envFile := flags.String("env", defaultEnvFile, "Env file with RAYTRACER_* settings")
	sceneType := flags.String("scene", "", "Scene type, overrides RAYTRACER_SCENE")
	previewPath := flags.String("preview", "", "Also write a PNG thumbnail to this path")
	previewSize := flags.Uint("preview-size", 256, "Maximum thumbnail width and height")
	help := flags.Bool("help", false, "Show help information")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *help {
		printHelp(stderr, flags)
		return nil
	}

	cfg, err := loadConfig(*envFile, *envFile != defaultEnvFile)
	if err != nil {
		return err
	}
	if *sceneType != "" {
		cfg.Scene = *sceneType
	}

	selectedScene, err := scene.Create(cfg.Scene, cfg.AspectRatio)
	if err != nil {
		return err
	}

	logger := renderer.NewWriterLogger(stderr)
	raytracer := renderer.NewRaytracer(selectedScene.World, selectedScene.Camera,
		renderer.DefaultSamplingConfig(), core.NewSeededSampler(cfg.Seed), logger)
	raytracer.SetSamplingConfig(renderer.SamplingConfig{
		Width:           cfg.Width,
		Height:          cfg.Height(),
		SamplesPerPixel: cfg.SamplesPerPixel,
		MaxDepth:        cfg.MaxDepth,
	})

	sampling := raytracer.Config()
	if err := sampling.Validate(); err != nil {
		return err
	}

	logger.Printf("Rendering %s scene at %dx%d (aspect %.3f), %d samples, depth %d\n",
		selectedScene.Name, sampling.Width, sampling.Height, selectedScene.CameraConfig.AspectRatio,
		sampling.SamplesPerPixel, sampling.MaxDepth)

	img, stats := raytracer.Render()
	logger.Printf("Render completed in %v (%d samples, %.0f samples/s)\n",
		stats.Elapsed, stats.TotalSamples, stats.SamplesPerSecond())

	if err := img.WritePPM(stdout, sampling.SamplesPerPixel); err != nil {
		return err
	}

	if *previewPath != "" {
		if err := savePreview(*previewPath, img, sampling.SamplesPerPixel, *previewSize); err != nil {
			return err
		}
		logger.Printf("Preview saved as %s\n", *previewPath)
	}

	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
