// Package spinning provides a spinning symbol, followed by a status line, to display while a
// program is busy, and a safe handling of interrupts.
package spinning

import (
	"context"
	"fmt"
	"io"
	"k8s.io/klog/v2"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// Spinning display, created with New.
type Spinning struct {
	wg     sync.WaitGroup
	cancel func()
}

var (
	ThemeAscii = []rune(`|/-\`)
	ThemeMoon  = []rune("🌑🌒🌓🌔🌕🌖🌗🌘")
	ThemeClock = []rune("🕐🕑🕒🕓🕔🕕🕖🕗🕘🕙🕚🕛")

	// Theme defaults to ThemeAscii, but it can be set to anything else before calling New.
	Theme = ThemeAscii

	// Period between updates.
	Period = 250 * time.Millisecond
)

// SafeInterrupt will capture SigInt (Ctrl+C) and SigTerm and call the provided onInterrupt.
// If the program haven't exited after gracePeriod, it will call Reset to reset the terminal
// and exit.
func SafeInterrupt(onInterrupt func(), gracePeriod time.Duration) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sigChan
		fmt.Println()
		klog.Errorf("Got interrupted (signal %q), shutting down... (%s)", s, gracePeriod)
		if onInterrupt != nil {
			go onInterrupt()
		}

		// Wait for gracePeriod before exiting.
		time.Sleep(gracePeriod)
		Reset(os.Stdout)
		klog.Fatalf("Graceful shutting down %s period expired, exiting.", gracePeriod)
	}()
}

// Reset terminal: make cursor visible, restore default terminal colors.
func Reset(w io.Writer) {
	fmt.Fprint(w, "\033[?25h\033[39;49;0m\n")
}

// Line returns the status line drawn at each update: the symbol for the given tick, followed by
// the status, and the control sequence that clears the rest of the line.
func Line(tick int, status string) string {
	symbol := Theme[tick%len(Theme)]
	if status == "" {
		return fmt.Sprintf("\r%c\033[0K", symbol)
	}
	return fmt.Sprintf("\r%c %s\033[0K", symbol, status)
}

// New starts a spinning display on w, that runs on a separate goroutine. status, if not nil,
// is called at every update and its result is displayed after the spinning symbol.
//
// It stops when Spinning.Done is called or ctx is cancelled, leaving the last status
// on the line.
func New(ctx context.Context, w io.Writer, status func() string) *Spinning {
	s := &Spinning{}
	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(Period)
		defer ticker.Stop()
		fmt.Fprint(w, "\033[?25l")       // Hide cursor.
		defer fmt.Fprint(w, "\033[?25h") // Restore cursor.

		for tick := 0; ; tick++ {
			var text string
			if status != nil {
				text = status()
			}
			fmt.Fprint(w, Line(tick, text))
			select {
			case <-ctx.Done():
				fmt.Fprintln(w)
				return
			case <-ticker.C:
				// continue
			}
		}
	}()
	return s
}

// Done stops the spinning display and waits for its last update.
func (s *Spinning) Done() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.wg.Wait()
}
