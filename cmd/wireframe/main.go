package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"obj-wireframe/internal/config"
	"obj-wireframe/internal/frame"
	"obj-wireframe/internal/mathutil"
	"obj-wireframe/internal/mesh"
	"obj-wireframe/internal/present"
	"obj-wireframe/internal/raster"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config file (.json, .toml, .yaml)")
	meshPath := flag.String("mesh", "", "OBJ file to render (default: Spaceship.obj)")
	mode := flag.String("mode", "", "window or frames (default: window)")
	outputDir := flag.String("output", "", "Frame output directory (default: frames)")
	format := flag.String("format", "", "Frame format: webp, tga or png (default: webp)")
	frames := flag.Int("frames", 0, "Frames to write in frames mode (default: 120)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	scale := flag.Float64("scale", 0, "Output scale factor for written frames (default: 1)")
	overlay := flag.Bool("overlay", false, "Draw the frame rate onto written frames")
	verbose := flag.Bool("v", false, "Log per-frame timings")

	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Mesh:      *meshPath,
		Mode:      *mode,
		OutputDir: *outputDir,
		Format:    *format,
		Frames:    *frames,
		Workers:   *workers,
		Scale:     *scale,
		Overlay:   *overlay,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Load mesh; nothing is rendered from a partial load.
	m, err := mesh.Load(cfg.Mesh)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading mesh: %v\n", err)
		os.Exit(1)
	}
	verts, err := mesh.Flatten(m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading mesh: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Mesh: %s (%d vertices, %d faces, %d triangles)\n", cfg.Mesh, len(m.Vertices), len(m.Faces), len(verts)/3)
	fmt.Printf("Viewport: %dx%d, Workers: %d, Mode: %s\n", cfg.Width, cfg.Height, cfg.Workers, cfg.Mode)

	tilt := mathutil.RotAxis(mathutil.Vec3(cfg.TiltAxis), cfg.TiltAngle)
	cycle := &frame.Cycle{
		Buffer:   raster.NewPixelBuffer(cfg.Width, cfg.Height),
		Vertices: verts,
		Rotation: frame.NewRotationState(tilt, mathutil.Vec3(cfg.SpinAxis)),
		Speed:    cfg.RotationSpeed,
		Workers:  cfg.Workers,
		Color:    raster.White,
		Logger:   logger,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch cfg.Mode {
	case config.ModeWindow:
		err = present.RunWindow(ctx, cycle, "obj-wireframe")
	case config.ModeFrames:
		err = renderFrames(ctx, cfg, cycle, logger)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// renderFrames runs the cycle headless with a fixed time step and writes
// every frame to disk.
func renderFrames(ctx context.Context, cfg config.Config, cycle *frame.Cycle, logger *slog.Logger) error {
	seq, err := present.NewSequence(present.SequenceConfig{
		OutputDir: cfg.OutputDir,
		Format:    cfg.Format,
		Frames:    cfg.Frames,
		Scale:     cfg.Scale,
		Overlay:   cfg.Overlay,
		Workers:   cfg.Workers,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Output: %s (%d frames, %s)\n", cfg.OutputDir, cfg.Frames, cfg.Format)
	fmt.Println("------------------------------------------------------------")

	// Fixed step keeps headless output independent of machine speed.
	step := time.Duration(cfg.FrameStepMS) * time.Millisecond
	t := time.Unix(0, 0)
	cycle.Now = func() time.Time {
		t = t.Add(step)
		return t
	}

	start := time.Now()
	runErr := cycle.Run(ctx, seq)
	results, closeErr := seq.Close()
	elapsed := time.Since(start)

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
			if failed <= 20 {
				fmt.Printf("  frame %d: %s\n", r.Frame, r.Error)
			}
		}
	}
	fmt.Printf("Written: %d/%d\n", len(results)-failed, len(results))

	if runErr != nil {
		return runErr
	}
	if closeErr != nil {
		return closeErr
	}
	if failed > 0 {
		return fmt.Errorf("%d frames failed", failed)
	}
	return nil
}
