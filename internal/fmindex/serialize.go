package fmindex

import (
	"bufio"
	"encoding/gob"
	"fmt"
	"os"
)

// Save serializes the handle to path. The written file is self-contained:
// Load needs nothing but the path.
func (h *Handle) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create index file %q: %w", path, err)
	}

	w := bufio.NewWriter(f)
	if err := gob.NewEncoder(w).Encode(h); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode index %q: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write index %q: %w", path, err)
	}
	return f.Close()
}

// Load reads a handle written by Save. A missing or corrupt index is fatal
// for a planning run: no sequence can be planned without its oracle.
func Load(path string) (*Handle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open index %q: %w", path, err)
	}
	defer f.Close()

	h := &Handle{}
	if err := gob.NewDecoder(bufio.NewReader(f)).Decode(h); err != nil {
		return nil, fmt.Errorf("failed to decode index %q: %w", path, err)
	}
	if h.Fwd == nil || h.Rev == nil || len(h.Fwd.BWT) == 0 || len(h.Rev.BWT) == 0 {
		return nil, fmt.Errorf("index %q is incomplete", path)
	}
	return h, nil
}
