package glcheck

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"regexp"
	"strconv"
	"sync"
)

// Resolver turns a GL error code into a readable name.
type Resolver interface {
	Symbol(code uint32) string
}

// Unknown is the placeholder for codes no table knows about.
func Unknown(code uint32) string { return fmt.Sprintf("Unknown(0x%04x)", code) }

// Table is a fixed code to name mapping.
type Table map[uint32]string

func (t Table) Symbol(code uint32) string {
	if name, ok := t[code]; ok {
		return name
	}
	return Unknown(code)
}

// Builtin names the error codes glGetError can return.
var Builtin = Table{
	0x0500: "GL_INVALID_ENUM",
	0x0501: "GL_INVALID_VALUE",
	0x0502: "GL_INVALID_OPERATION",
	0x0503: "GL_STACK_OVERFLOW",
	0x0504: "GL_STACK_UNDERFLOW",
	0x0505: "GL_OUT_OF_MEMORY",
	0x0506: "GL_INVALID_FRAMEBUFFER_OPERATION",
	0x0507: "GL_CONTEXT_LOST",
}

var defineLine = regexp.MustCompile(`^\s*#\s*define\s+(\w+)\s+0[xX]([0-9A-Fa-f]+)\b`)

// HeaderTable resolves codes by scanning the #define lines of a GL header
// (glad.h, glcorearb.h, ...). The header is read once, on first lookup,
// and the first definition of each value wins.
type HeaderTable struct {
	Path string

	once  sync.Once
	table Table
	err   error
}

// NewHeaderTable returns a resolver backed by the header at path.
func NewHeaderTable(path string) *HeaderTable { return &HeaderTable{Path: path} }

// Err reports why the header could not be used, if it could not.
func (h *HeaderTable) Err() error {
	h.load()
	return h.err
}

// Lookup returns the name defined for code in the header.
func (h *HeaderTable) Lookup(code uint32) (string, bool) {
	h.load()
	name, ok := h.table[code]
	return name, ok
}

// Symbol implements Resolver. A miss yields the Unknown placeholder. When
// the header cannot be read the builtin table answers instead.
func (h *HeaderTable) Symbol(code uint32) string {
	if name, ok := h.Lookup(code); ok {
		return name
	}
	if h.err != nil {
		return Builtin.Symbol(code)
	}
	return Unknown(code)
}

func (h *HeaderTable) load() {
	h.once.Do(func() {
		h.table, h.err = scanHeader(h.Path)
		if h.err != nil {
			log.Printf("glcheck: %v; falling back to builtin error names", h.err)
		}
	})
}

func scanHeader(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gl header: %w", err)
	}
	defer f.Close()

	t := Table{}
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		m := defineLine.FindStringSubmatch(sc.Text())
		if m == nil {
			continue
		}
		v, err := strconv.ParseUint(m[2], 16, 32)
		if err != nil {
			continue
		}
		if _, seen := t[uint32(v)]; !seen {
			t[uint32(v)] = m[1]
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan gl header %q: %w", path, err)
	}
	return t, nil
}
