// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"
)

// DefaultTimeout is the default time limit of a [Loader] request.
const DefaultTimeout = 120 * time.Second

// Decode reads a lattice in its JSON form from the given reader.
func Decode(r io.Reader) (*Lattice, error) {
	l := &Lattice{}
	if err := json.NewDecoder(r).Decode(l); err != nil {
		return nil, fmt.Errorf("lattice: decoding: %w", err)
	}
	return l, nil
}

// Open reads a lattice from the given JSON file.
func Open(filename string) (*Lattice, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	l, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return l, nil
}

// Save writes the lattice to the given file as indented JSON.
func (l *Lattice) Save(filename string) error {
	b, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0o644)
}

// Fetch requests a lattice from the given URL.
func Fetch(ctx context.Context, url string) (*Lattice, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("lattice: fetching %s: %s", url, resp.Status)
	}
	return Decode(resp.Body)
}

// IsURL returns whether the given source is an http(s) URL
// rather than a file name.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Loader loads lattices from files or URLs, keeping at most one load
// in flight: starting a new load cancels the previous one, so the
// latest request always wins.
type Loader struct {

	// Timeout is the time limit of each load; zero means [DefaultTimeout].
	Timeout time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	seq    uint64
}

// Load loads the lattice from the given source, which is a URL or
// a file name. Any load still in flight is canceled first.
func (ld *Loader) Load(ctx context.Context, source string) (*Lattice, error) {
	timeout := ld.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	ld.mu.Lock()
	if ld.cancel != nil {
		ld.cancel()
	}
	ld.cancel = cancel
	ld.seq++
	seq := ld.seq
	ld.mu.Unlock()

	defer func() {
		ld.mu.Lock()
		if ld.seq == seq {
			ld.cancel = nil
		}
		ld.mu.Unlock()
		cancel()
	}()

	slog.Debug("loading lattice", "source", source)
	var l *Lattice
	var err error
	if IsURL(source) {
		l, err = Fetch(ctx, source)
	} else {
		l, err = openContext(ctx, source)
	}
	if err == nil && ctx.Err() != nil {
		// superseded while decoding
		err = ctx.Err()
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

// Cancel cancels the load in flight, if any.
func (ld *Loader) Cancel() {
	ld.mu.Lock()
	defer ld.mu.Unlock()
	if ld.cancel != nil {
		ld.cancel()
		ld.cancel = nil
	}
}

func openContext(ctx context.Context, filename string) (*Lattice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(filename)
}

// LoadStatus is the outcome of a lattice load as reported to the user.
type LoadStatus int32 //enums:enum

const (
	// Loaded means the lattice was loaded successfully.
	Loaded LoadStatus = iota

	// Canceled means the load was canceled or timed out.
	Canceled

	// Failed means the load failed for any other reason.
	Failed
)

func (s LoadStatus) String() string {
	switch s {
	case Loaded:
		return "Loaded"
	case Canceled:
		return "Canceled"
	case Failed:
		return "Failed"
	}
	return fmt.Sprintf("LoadStatus(%d)", int32(s))
}

// Classify returns the [LoadStatus] for the given load error.
func Classify(err error) LoadStatus {
	switch {
	case err == nil:
		return Loaded
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return Canceled
	}
	return Failed
}

// StatusMessage returns the user-facing status line for the given load error.
func StatusMessage(err error) string {
	switch Classify(err) {
	case Loaded:
		return "Lattice loaded."
	case Canceled:
		return "Request cancelled / timed out."
	}
	return "Error loading lattice: " + err.Error()
}
