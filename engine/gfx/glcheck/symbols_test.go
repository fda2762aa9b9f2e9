package glcheck_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hubastard/hellogl/engine/gfx/glcheck"
)

const header = `#ifndef __glad_h_
#define __glad_h_
#define GL_DEPTH_BUFFER_BIT 0x00000100
#define GL_NO_ERROR 0
#define GL_INVALID_ENUM 0x0500
#define GL_INVALID_VALUE 0x501
#define GL_INVALID_OPERATION 0x0502
  #  define GL_OUT_OF_MEMORY   0x0505
#define GL_TEXTURE_2D 0x0DE1
#define GL_TEXTURE_2D_ALIAS 0x0de1
#define GL_FUNC_ADD 0x8006
#endif
`

func writeHeader(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "glad.h")
	if err := os.WriteFile(path, []byte(header), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestHeaderTableSymbol(t *testing.T) {
	h := glcheck.NewHeaderTable(writeHeader(t))

	tests := []struct {
		code uint32
		want string
	}{
		{0x0500, "GL_INVALID_ENUM"},
		{0x0501, "GL_INVALID_VALUE"},
		{0x0502, "GL_INVALID_OPERATION"},
		{0x0505, "GL_OUT_OF_MEMORY"},
		{0x0DE1, "GL_TEXTURE_2D"},
		{0x0100, "GL_DEPTH_BUFFER_BIT"},
		{0x0503, "Unknown(0x0503)"},
		{0xBEEF, "Unknown(0xbeef)"},
	}
	for _, tt := range tests {
		if got := h.Symbol(tt.code); got != tt.want {
			t.Errorf("Symbol(0x%x) = %q, want %q", tt.code, got, tt.want)
		}
	}
	if err := h.Err(); err != nil {
		t.Errorf("unexpected header error: %v", err)
	}
}

func TestHeaderTableReadsOnce(t *testing.T) {
	path := writeHeader(t)
	h := glcheck.NewHeaderTable(path)
	if got := h.Symbol(0x0502); got != "GL_INVALID_OPERATION" {
		t.Fatalf("got %q", got)
	}
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if got := h.Symbol(0x0500); got != "GL_INVALID_ENUM" {
		t.Fatalf("cached table not used after header removal, got %q", got)
	}
}

func TestHeaderTableMissingFileFallsBack(t *testing.T) {
	h := glcheck.NewHeaderTable(filepath.Join(t.TempDir(), "missing.h"))

	if got := h.Symbol(0x0502); got != "GL_INVALID_OPERATION" {
		t.Errorf("builtin fallback: got %q", got)
	}
	if got := h.Symbol(0x1234); got != "Unknown(0x1234)" {
		t.Errorf("got %q", got)
	}
	if h.Err() == nil {
		t.Error("expected Err to report the missing header")
	}
}

func TestBuiltinTable(t *testing.T) {
	if got := glcheck.Builtin.Symbol(0x0506); got != "GL_INVALID_FRAMEBUFFER_OPERATION" {
		t.Errorf("got %q", got)
	}
	if got := glcheck.Builtin.Symbol(0); got != "Unknown(0x0000)" {
		t.Errorf("got %q", got)
	}
}
