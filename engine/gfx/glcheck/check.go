// Package glcheck wraps driver calls with GL error-queue checks.
//
// Every wrapped call first drains stale codes so they are not blamed on
// the call, then polls the queue once the call returns. Failures come back
// as *Error; deciding whether to abort is left to the caller.
package glcheck

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// ErrorQueue is the part of gfx.Driver the checker needs.
type ErrorQueue interface {
	GetError() uint32
}

// maxDrain bounds queue draining when a lost context keeps reporting.
const maxDrain = 64

// Error is a GL error attributed to one call site.
type Error struct {
	Code    uint32
	Symbol  string
	Call    string
	File    string
	Line    int
	Dropped int // further codes raised by the same call
}

func (e *Error) Error() string {
	return fmt.Sprintf("opengl error %s (0x%04x) at %s:%d: %s", e.Symbol, e.Code, filepath.Base(e.File), e.Line, e.Call)
}

// Checker attributes GL errors to the call that raised them.
type Checker struct {
	q   ErrorQueue
	sym Resolver
}

// New returns a checker reading codes from q and naming them with sym.
// A nil sym resolves against the builtin table.
func New(q ErrorQueue, sym Resolver) *Checker {
	if sym == nil {
		sym = Builtin
	}
	return &Checker{q: q, sym: sym}
}

// Drain discards every pending code and reports how many there were.
func (c *Checker) Drain() int {
	n := 0
	for n < maxDrain && c.q.GetError() != 0 {
		n++
	}
	return n
}

// Call runs fn between a drain and a poll of the error queue. expr is the
// call text shown in the report.
func (c *Checker) Call(expr string, fn func()) error {
	return c.call(2, expr, fn)
}

func (c *Checker) call(skip int, expr string, fn func()) error {
	c.Drain()
	fn()
	code := c.q.GetError()
	if code == 0 {
		return nil
	}
	_, file, line, _ := runtime.Caller(skip)
	return &Error{
		Code:    code,
		Symbol:  c.sym.Symbol(code),
		Call:    expr,
		File:    file,
		Line:    line,
		Dropped: c.Drain(),
	}
}

// Value is Call for driver calls that return something.
func Value[T any](c *Checker, expr string, fn func() T) (T, error) {
	var v T
	err := c.call(2, expr, func() { v = fn() })
	return v, err
}

// Seq returns a sequence that stops running calls after the first error.
func (c *Checker) Seq() *Seq { return &Seq{c: c} }

// Seq chains checked calls. Once a call fails the remaining ones are
// skipped and Err returns the first failure.
type Seq struct {
	c   *Checker
	err error
}

// Call runs fn through the checker unless an earlier call failed.
func (s *Seq) Call(expr string, fn func()) {
	if s.err != nil {
		return
	}
	s.err = s.c.call(2, expr, fn)
}

// Err returns the first failure in the sequence.
func (s *Seq) Err() error { return s.err }
