package statusline

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"
)

// PollInterval is the delay between two samples of the keyboard segment.
// Neither Fcitx nor the LED class notify changes, so the segment is polled.
const PollInterval = 50 * time.Millisecond

// Emitter remembers the last line printed. It is a value: Next returns the
// updated state instead of mutating the receiver.
type Emitter struct {
	// Last is the last line printed.
	Last string
	// KeepEmpty makes an empty sample a printable line. Otherwise empty
	// samples are dropped and leave Last untouched.
	KeepEmpty bool
}

// Next feeds one sample and reports the line to print, if any.
func (e Emitter) Next(sample string) (Emitter, string, bool) {
	if sample == "" && !e.KeepEmpty {
		return e, "", false
	}
	if sample == e.Last {
		return e, "", false
	}
	e.Last = sample
	return e, sample, true
}

// Sampler produces the current content of a segment.
type Sampler func(ctx context.Context) (string, error)

// Loop samples a segment forever and prints it when it changes.
type Loop struct {
	Sample    Sampler
	Out       io.Writer
	Interval  time.Duration
	KeepEmpty bool
}

// Run returns the first sampling or write error, or the context error. Output is
// flushed before every sleep.
func (l *Loop) Run(ctx context.Context) error {
	w := bufio.NewWriter(l.Out)
	em := Emitter{KeepEmpty: l.KeepEmpty}

	for {
		sample, err := l.Sample(ctx)
		if err != nil {
			w.Flush()
			return err
		}

		var line string
		var ok bool
		if em, line, ok = em.Next(sample); ok {
			fmt.Fprintln(w, line)
		}
		if err := w.Flush(); err != nil {
			return fmt.Errorf("flush output: %w", err)
		}

		if err := Sleep(ctx, l.Interval); err != nil {
			return err
		}
	}
}

// Sleep waits for d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil || d <= 0 {
		return err
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
