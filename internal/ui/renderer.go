package ui

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Renderer handles terminal output with colors and spinners
type Renderer struct {
	mu          sync.Mutex
	spinning    bool
	spinnerDone chan struct{}
}

// NewRenderer creates a new Renderer instance
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Colors
var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

// Spinner frames
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// StartSpinner starts an animated spinner with a message
func (r *Renderer) StartSpinner(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.spinning {
		return
	}

	r.spinning = true
	r.spinnerDone = make(chan struct{})

	msg := fmt.Sprintf(format, args...)

	go func() {
		frame := 0
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case <-r.spinnerDone:
				return
			case <-ticker.C:
				r.mu.Lock()
				fmt.Fprintf(os.Stderr, "\r%s %s", cyan(spinnerFrames[frame]), msg)
				r.mu.Unlock()
				frame = (frame + 1) % len(spinnerFrames)
			}
		}
	}()
}

// StopSpinner stops the spinner and clears its line
func (r *Renderer) StopSpinner() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.spinning {
		return
	}

	close(r.spinnerDone)
	r.spinning = false

	fmt.Fprint(os.Stderr, "\r\033[K")
}

// Success prints a success message
func (r *Renderer) Success(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "%s %s\n", green("✓"), msg)
}

// Error prints an error message
func (r *Renderer) Error(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "%s %s\n", red("✗"), msg)
}

// Warning prints a warning message
func (r *Renderer) Warning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "%s %s\n", yellow("!"), msg)
}

// Info prints an info message
func (r *Renderer) Info(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "  %s\n", msg)
}

// Dim prints dimmed/secondary text
func (r *Renderer) Dim(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "  %s\n", dim(msg))
}

// Identity is the resolved test-target identity for display
type Identity struct {
	DeviceString string
	Descriptor   string
	UDID         string
	BundleID     string
	App          string
	Orientation  string
}

// RenderIdentity prints the resolved session identity
func (r *Renderer) RenderIdentity(id Identity) {
	fmt.Fprintf(os.Stderr, "\n%s\n", bold("RESOLVED TARGET"))
	fmt.Fprintf(os.Stderr, "  %s %s\n", dim("device string"), id.DeviceString)
	if id.Descriptor != "" {
		fmt.Fprintf(os.Stderr, "  %s %s\n", dim("matched      "), id.Descriptor)
	} else {
		fmt.Fprintf(os.Stderr, "  %s %s\n", dim("matched      "), yellow("no inventory entry"))
	}
	if id.UDID != "" {
		fmt.Fprintf(os.Stderr, "  %s %s\n", dim("udid         "), id.UDID)
	}
	if id.BundleID != "" {
		fmt.Fprintf(os.Stderr, "  %s %s\n", dim("bundle id    "), id.BundleID)
	}
	if id.App != "" {
		fmt.Fprintf(os.Stderr, "  %s %s\n", dim("app          "), id.App)
	}
	fmt.Fprintf(os.Stderr, "  %s %s\n", dim("orientation  "), id.Orientation)
	fmt.Fprintln(os.Stderr)
}

// RenderInventory prints the raw device inventory, highlighting a match
func (r *Renderer) RenderInventory(lines []string, matched string) {
	if len(lines) == 0 {
		r.Info("No devices found")
		return
	}

	fmt.Fprintf(os.Stderr, "\n%s\n", bold("DEVICES"))
	for _, line := range lines {
		if matched != "" && line == matched {
			fmt.Fprintf(os.Stderr, "  %s %s\n", green("▸"), line)
		} else {
			fmt.Fprintf(os.Stderr, "    %s\n", line)
		}
	}
	fmt.Fprintln(os.Stderr)
}
