package assets

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/exp/slices"
)

// Stage tags one section of a shader file.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
	numStages
)

// Directive starts a new section: "#shader vertex" or "#shader fragment".
const Directive = "#shader"

var stageNames = []string{"vertex", "fragment"}

func (s Stage) String() string {
	if s < 0 || s >= numStages {
		return fmt.Sprintf("Stage(%d)", int(s))
	}
	return stageNames[s]
}

var (
	ErrFileNotFound    = errors.New("shader file not found")
	ErrNoActiveSection = errors.New("source line before any #shader directive")
	ErrUnknownStage    = errors.New("unknown shader stage")
	ErrDuplicateStage  = errors.New("duplicate shader stage")
	ErrMissingStage    = errors.New("missing shader stage")
)

// SyntaxError locates a malformed line in a shader file.
type SyntaxError struct {
	Path string
	Line int
	Err  error
}

func (e *SyntaxError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// ShaderSource holds the per-stage sources split out of one shader file.
type ShaderSource struct {
	src [numStages]string
}

// Get returns the source of stage s.
func (ss ShaderSource) Get(s Stage) string {
	if s < 0 || s >= numStages {
		return ""
	}
	return ss.src[s]
}

func (ss ShaderSource) Vertex() string   { return ss.src[StageVertex] }
func (ss ShaderSource) Fragment() string { return ss.src[StageFragment] }

// LoadShader reads a two-section shader file from path.
func LoadShader(path string) (ShaderSource, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return ShaderSource{}, fmt.Errorf("load shader %q: %w: %w", path, ErrFileNotFound, err)
	}
	if err != nil {
		return ShaderSource{}, fmt.Errorf("load shader %q: %w", path, err)
	}
	defer f.Close()

	ss, err := parseShader(f, path)
	if err != nil {
		return ShaderSource{}, fmt.Errorf("load shader %q: %w", path, err)
	}
	return ss, nil
}

// ParseShader splits r into its vertex and fragment sections. Lines other
// than directives are kept verbatim, newline included. Each stage must
// appear exactly once.
func ParseShader(r io.Reader) (ShaderSource, error) {
	return parseShader(r, "")
}

func parseShader(r io.Reader, path string) (ShaderSource, error) {
	var (
		bufs   [numStages]strings.Builder
		seen   [numStages]bool
		active = Stage(-1)
		lineNo int
	)

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lineNo++
			if fields := strings.Fields(line); len(fields) > 0 && fields[0] == Directive {
				stage, perr := parseDirective(fields)
				if perr == nil && seen[stage] {
					perr = fmt.Errorf("%w: %s", ErrDuplicateStage, stage)
				}
				if perr != nil {
					return ShaderSource{}, &SyntaxError{Path: path, Line: lineNo, Err: perr}
				}
				seen[stage] = true
				active = stage
			} else if active < 0 {
				if strings.TrimSpace(line) != "" {
					return ShaderSource{}, &SyntaxError{Path: path, Line: lineNo, Err: ErrNoActiveSection}
				}
			} else {
				bufs[active].WriteString(line)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return ShaderSource{}, fmt.Errorf("read shader: %w", err)
		}
	}

	var ss ShaderSource
	for s := Stage(0); s < numStages; s++ {
		if !seen[s] {
			return ShaderSource{}, fmt.Errorf("%w: %s", ErrMissingStage, s)
		}
		ss.src[s] = bufs[s].String()
	}
	return ss, nil
}

func parseDirective(fields []string) (Stage, error) {
	if len(fields) < 2 {
		return 0, fmt.Errorf("%w: directive names no stage", ErrUnknownStage)
	}
	i := slices.Index(stageNames, strings.ToLower(fields[1]))
	if i < 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownStage, fields[1])
	}
	return Stage(i), nil
}
