// Package wallpaper rotates the desktop background through a directory of
// images.
package wallpaper

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math/rand/v2"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// Extensions lists the file suffixes treated as images.
var Extensions = []string{".jpg", ".jpeg", ".png", ".webp", ".bmp"}

// ErrNoImages is returned when a directory holds no usable image.
var ErrNoImages = errors.New("wallpaper: no images found")

// LoadImages walks dir recursively and returns every image path in lexical
// order.
func LoadImages(dir string) ([]string, error) {
	var images []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if isImage(path) {
			images = append(images, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("wallpaper: load %s: %w", dir, err)
	}
	if len(images) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoImages, dir)
	}
	return images, nil
}

func isImage(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// NextIndex picks a random index in [0, n). When n > 1 it never returns prev.
// A negative prev means there is no previous pick.
func NextIndex(r *rand.Rand, n, prev int) int {
	if n <= 1 {
		return 0
	}
	if prev < 0 || prev >= n {
		return r.IntN(n)
	}
	i := r.IntN(n - 1)
	if i >= prev {
		i++
	}
	return i
}

// Setter applies an image as the desktop background.
type Setter interface {
	Set(ctx context.Context, path string) error
}

// Feh sets the background with feh, scaling the image to fill the screen.
type Feh struct {
	Path string
}

// Set runs feh without writing ~/.fehbg.
func (f Feh) Set(ctx context.Context, path string) error {
	out, err := exec.CommandContext(ctx, f.Path, f.args(path)...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("wallpaper: %s: %w: %s", f.Path, err, strings.TrimSpace(string(out)))
	}
	return nil
}

func (f Feh) args(path string) []string {
	return []string{"--no-fehbg", "--bg-fill", path}
}

// Rotator changes the background every Interval.
type Rotator struct {
	Images   []string
	Interval time.Duration
	Setter   Setter
	Rand     *rand.Rand
	Logger   *slog.Logger
}

// Run sets a background immediately and then after every interval until ctx
// is done. It returns nil on cancellation and the first Setter error
// otherwise.
func (r *Rotator) Run(ctx context.Context) error {
	if len(r.Images) == 0 {
		return ErrNoImages
	}
	rng := r.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	prev := -1
	for {
		idx := NextIndex(rng, len(r.Images), prev)
		prev = idx
		if err := r.Setter.Set(ctx, r.Images[idx]); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		logger.Debug("wallpaper set", "path", r.Images[idx])
		if ctx.Err() != nil {
			return nil
		}

		timer := time.NewTimer(r.Interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}
