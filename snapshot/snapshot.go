// Package snapshot renders a dashboard page to PNG with headless Chrome.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/chromedp/chromedp"
)

// ErrNoBrowser is returned when no Chrome or Chromium binary can be found.
var ErrNoBrowser = errors.New("no chrome binary found")

// Options control one capture.
type Options struct {
	URL       string
	ChromeBin string
	Width     int64
	Height    int64
	Quality   int
	Timeout   time.Duration
}

func (o *Options) defaults() {
	if o.Width == 0 {
		o.Width = 1280
	}
	if o.Height == 0 {
		o.Height = 900
	}
	if o.Quality == 0 {
		o.Quality = 90
	}
	if o.Timeout == 0 {
		o.Timeout = 60 * time.Second
	}
}

// Capture loads opts.URL and returns a full-page PNG screenshot.
func Capture(ctx context.Context, opts Options) ([]byte, error) {
	opts.defaults()

	chromeBin := opts.ChromeBin
	if chromeBin == "" {
		chromeBin = FindChromeBinary()
	}
	if chromeBin == "" {
		return nil, ErrNoBrowser
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(chromeBin),
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.WindowSize(int(opts.Width), int(opts.Height)),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()

	// Suppress chromedp log noise
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancelBrowser()

	runCtx, cancelTimeout := context.WithTimeout(browserCtx, opts.Timeout)
	defer cancelTimeout()

	var png []byte
	err := chromedp.Run(runCtx,
		chromedp.Navigate(opts.URL),
		chromedp.WaitVisible("body", chromedp.ByQuery),
		chromedp.FullScreenshot(&png, opts.Quality),
	)
	if err != nil {
		return nil, fmt.Errorf("snapshot: capture %s: %w", opts.URL, err)
	}
	return png, nil
}

// FindChromeBinary looks for a browser in CHROME_BIN, on PATH, then in
// common install locations. It returns "" when none is found.
func FindChromeBinary() string {
	if bin := os.Getenv("CHROME_BIN"); bin != "" {
		return bin
	}

	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
