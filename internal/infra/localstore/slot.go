// Package localstore backs the zero-backend demo mode: one named slot holding
// a serialized value, read in full and rewritten in full on every mutation.
// A slot is single-process-authoritative; two processes pointing at the same
// file will overwrite each other, exactly like two browser tabs sharing
// nothing. Callers needing multi-user persistence use the Postgres policy.
package localstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/bytedance/sonic"
)

type Slot struct {
	mu   sync.Mutex
	path string
}

func NewSlot(path string) *Slot {
	return &Slot{path: path}
}

// Read loads the whole slot into v. A missing file is not an error: the slot
// simply starts empty and v is left untouched.
func (s *Slot) Read(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read slot %s: %w", s.path, err)
	}
	if len(b) == 0 {
		return nil
	}
	if err := sonic.Unmarshal(b, v); err != nil {
		return fmt.Errorf("decode slot %s: %w", s.path, err)
	}
	return nil
}

// Write replaces the whole slot with v. The write goes through a temp file
// and rename so a crash never leaves a half-written slot behind.
func (s *Slot) Write(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := sonic.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode slot %s: %w", s.path, err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create slot dir: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write slot %s: %w", s.path, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace slot %s: %w", s.path, err)
	}
	return nil
}
