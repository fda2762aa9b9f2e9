//go:build profile

package profiler

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"
)

type scope struct {
	count int
	total time.Duration
	max   time.Duration
}

var (
	mu     sync.Mutex
	scopes = map[string]*scope{}
)

// Enabled reports whether the binary was built with the profile tag.
const Enabled = true

// Start begins a scope and returns an end func to be deferred.
func Start(name string) func() {
	begin := time.Now()
	return func() {
		d := time.Since(begin)
		mu.Lock()
		defer mu.Unlock()
		s := scopes[name]
		if s == nil {
			s = &scope{}
			scopes[name] = s
		}
		s.count++
		s.total += d
		if d > s.max {
			s.max = d
		}
	}
}

// Reset drops everything recorded so far.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	scopes = map[string]*scope{}
}

// Report writes one line per scope, slowest total first.
func Report(w io.Writer) error {
	mu.Lock()
	names := make([]string, 0, len(scopes))
	for n := range scopes {
		names = append(names, n)
	}
	snap := make(map[string]scope, len(scopes))
	for n, s := range scopes {
		snap[n] = *s
	}
	mu.Unlock()

	sort.Slice(names, func(i, j int) bool {
		a, b := snap[names[i]], snap[names[j]]
		if a.total != b.total {
			return a.total > b.total
		}
		return names[i] < names[j]
	})
	for _, n := range names {
		s := snap[n]
		avg := s.total / time.Duration(s.count)
		if _, err := fmt.Fprintf(w, "%-28s n=%-6d avg=%-10v max=%v\n", n, s.count, avg, s.max); err != nil {
			return err
		}
	}
	return nil
}
