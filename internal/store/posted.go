package store

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// PostedSet is the durable record of every job id ever published,
// one id per line, append-only. Loaded fully at startup.
type PostedSet struct {
	path string
	ids  map[string]bool
}

// LoadPosted reads the posted-ids file. A missing or unreadable file means
// an empty set; the dedup store must never fail the pipeline.
func LoadPosted(path string) *PostedSet {
	s := &PostedSet{path: path, ids: make(map[string]bool)}

	f, err := os.Open(path)
	if err != nil {
		return s
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		id := strings.TrimSpace(sc.Text())
		if id != "" {
			s.ids[id] = true
		}
	}
	return s
}

func (s *PostedSet) Contains(id string) bool { return s.ids[id] }

func (s *PostedSet) Len() int { return len(s.ids) }

// Record appends id durably and adds it to the in-memory set. Call only
// after a confirmed publish: a crash between publish and Record means a
// duplicate post next run, which is the documented at-least-once tradeoff.
func (s *PostedSet) Record(id string) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open posted file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(id + "\n"); err != nil {
		return fmt.Errorf("append posted id: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("sync posted file: %w", err)
	}

	s.ids[id] = true
	return nil
}
