package present

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"obj-wireframe/internal/frame"
	"obj-wireframe/internal/raster"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Supported frame file formats.
const (
	FormatWebP = "webp"
	FormatTGA  = "tga"
	FormatPNG  = "png"
)

// SequenceConfig holds the settings for writing a frame sequence.
type SequenceConfig struct {
	OutputDir string
	Format    string
	Frames    int     // Present returns frame.ErrStop after this many; 0 = unlimited
	Scale     float64 // output scale factor; 0 or 1 keeps buffer size
	Overlay   bool    // draw the FPS label onto each frame
	Workers   int     // encoder goroutines
	Logger    *slog.Logger
}

// Result holds the outcome of writing one frame.
type Result struct {
	Frame   int
	Path    string
	Success bool
	Error   string
}

type job struct {
	frame int
	img   *image.RGBA
}

// Sequence is a Presenter that writes every frame to OutputDir. Present only
// snapshots the buffer; encoding happens on a worker pool so the render loop
// can start the next frame.
type Sequence struct {
	cfg     SequenceConfig
	log     *slog.Logger
	jobs    chan job
	wg      sync.WaitGroup
	done    chan struct{}
	written atomic.Int64

	mu      sync.Mutex
	results []Result

	count int
	last  time.Time
	start time.Time
}

// NewSequence creates the output directory and starts the encoder pool.
func NewSequence(cfg SequenceConfig) (*Sequence, error) {
	switch cfg.Format {
	case FormatWebP, FormatTGA, FormatPNG:
	default:
		return nil, fmt.Errorf("present: unknown frame format %q", cfg.Format)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("present: %w", err)
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	s := &Sequence{
		cfg:   cfg,
		log:   log,
		jobs:  make(chan job, cfg.Workers*2),
		done:  make(chan struct{}),
		start: time.Now(),
	}

	for w := 0; w < cfg.Workers; w++ {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			for j := range s.jobs {
				r := s.write(j)
				s.mu.Lock()
				s.results = append(s.results, r)
				s.mu.Unlock()
				s.written.Add(1)
			}
		}()
	}

	// Progress reporter
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-s.done:
				return
			case <-ticker.C:
				n := s.written.Load()
				if n > 0 {
					rate := float64(n) / time.Since(s.start).Seconds()
					s.log.Info("frames written", "count", n, "per_sec", fmt.Sprintf("%.1f", rate))
				}
			}
		}
	}()

	return s, nil
}

// Present copies buf and queues it for encoding. It blocks while the queue
// is full, and returns frame.ErrStop once the configured frame count is reached.
func (s *Sequence) Present(ctx context.Context, buf *raster.PixelBuffer) error {
	img := NewSnapshot(buf, s.cfg.Workers)

	now := time.Now()
	if s.cfg.Overlay {
		fps := 0.0
		if !s.last.IsZero() {
			if d := now.Sub(s.last).Seconds(); d > 0 {
				fps = 1 / d
			}
		}
		DrawFPS(img, fps)
	}
	s.last = now

	select {
	case s.jobs <- job{frame: s.count, img: img}:
	case <-ctx.Done():
		return ctx.Err()
	}
	s.count++

	if s.cfg.Frames > 0 && s.count >= s.cfg.Frames {
		return frame.ErrStop
	}
	return nil
}

// Close waits for queued frames, writes manifest.json and returns the
// per-frame results ordered by frame number.
func (s *Sequence) Close() ([]Result, error) {
	close(s.jobs)
	s.wg.Wait()
	close(s.done)

	s.mu.Lock()
	results := s.results
	s.mu.Unlock()
	sortResults(results)

	if err := WriteManifest(filepath.Join(s.cfg.OutputDir, "manifest.json"), s.cfg, results); err != nil {
		return results, fmt.Errorf("present: manifest: %w", err)
	}
	return results, nil
}

// FramePath returns the file name for frame n.
func (s *Sequence) FramePath(n int) string {
	return filepath.Join(s.cfg.OutputDir, fmt.Sprintf("frame_%05d.%s", n, s.cfg.Format))
}

func (s *Sequence) write(j job) Result {
	path := s.FramePath(j.frame)
	img := Resize(j.img, s.cfg.Scale)

	f, err := os.Create(path)
	if err != nil {
		return Result{Frame: j.frame, Path: path, Error: err.Error()}
	}
	defer f.Close()

	if err := Encode(f, img, s.cfg.Format); err != nil {
		return Result{Frame: j.frame, Path: path, Error: fmt.Sprintf("%s encode: %v", s.cfg.Format, err)}
	}
	return Result{Frame: j.frame, Path: path, Success: true}
}

// Encode writes img in the named format.
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case FormatWebP:
		return nativewebp.Encode(w, img, nil)
	case FormatTGA:
		return tga.Encode(w, img)
	case FormatPNG:
		return png.Encode(w, img)
	}
	return fmt.Errorf("present: unknown frame format %q", format)
}
