package sysinfo

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
)

// SinkState is the mute flag and volume of an audio sink.
type SinkState struct {
	Muted  bool
	Volume int
}

// Sink reports the first sink listed by pactl.
func Sink(ctx context.Context) (SinkState, error) {
	out, err := exec.CommandContext(ctx, "pactl", "list", "sinks").Output()
	if err != nil {
		return SinkState{}, fmt.Errorf("sysinfo: pactl list sinks: %w", err)
	}
	return parseSink(string(out))
}

// parseSink reads the first "Mute:" line and the first percentage after it,
// which is the volume of the first channel.
func parseSink(raw string) (SinkState, error) {
	i := strings.Index(raw, "Mute: ")
	if i < 0 {
		return SinkState{}, ErrNoSink
	}
	rest := raw[i+len("Mute: "):]

	var state SinkState
	switch {
	case strings.HasPrefix(rest, "yes"):
		state.Muted = true
	case strings.HasPrefix(rest, "no"):
	default:
		line, _, _ := strings.Cut(rest, "\n")
		return SinkState{}, fmt.Errorf("sysinfo: unknown mute state %q", line)
	}

	pct := strings.IndexByte(rest, '%')
	if pct < 0 {
		return SinkState{}, fmt.Errorf("sysinfo: sink volume not found")
	}
	field := rest[:pct]
	field = field[strings.LastIndexAny(field, " \t")+1:]
	volume, err := strconv.Atoi(field)
	if err != nil {
		return SinkState{}, fmt.Errorf("sysinfo: parse sink volume: %w", err)
	}
	state.Volume = volume
	return state, nil
}

// WatchSinks follows `pactl subscribe` and signals on every sink event.
// Signals are coalesced. The channel is closed when the subscription ends,
// either because ctx is done or because pactl exited.
func WatchSinks(ctx context.Context) (<-chan struct{}, error) {
	cmd := exec.CommandContext(ctx, "pactl", "subscribe")
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("sysinfo: pactl subscribe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("sysinfo: pactl subscribe: %w", err)
	}

	ch := make(chan struct{}, 1)
	go func() {
		defer close(ch)
		scanSinkEvents(stdout, ch)
		_ = cmd.Wait()
	}()
	return ch, nil
}

func scanSinkEvents(r io.Reader, ch chan<- struct{}) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if !isSinkEvent(scanner.Text()) {
			continue
		}
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// isSinkEvent matches lines such as "Event 'change' on sink #0".
func isSinkEvent(line string) bool {
	return strings.Contains(line, " sink ")
}
