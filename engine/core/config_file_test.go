package core

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hubastard/hellogl/engine/colors"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hellogl.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigFileOverlays(t *testing.T) {
	path := writeFile(t, `
width = 800
vsync = false
clear_color = [0.0, 0.0, 0.0, 1.0]
shader = "other.shader"
on_gl_error = "log"
`)
	cfg := DefaultConfig()
	if err := LoadConfigFile(path, &cfg); err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if cfg.Width != 800 || cfg.VSync {
		t.Fatalf("width/vsync = %d/%v", cfg.Width, cfg.VSync)
	}
	if cfg.ClearColor != colors.Black {
		t.Fatalf("clear color = %v", cfg.ClearColor)
	}
	if cfg.ShaderPath != "other.shader" || cfg.ErrorPolicy != PolicyLog {
		t.Fatalf("shader/policy = %q/%v", cfg.ShaderPath, cfg.ErrorPolicy)
	}
	// untouched keys keep their defaults
	if cfg.Height != 480 || cfg.Title != "Hello World" || cfg.GLHeaderPath != "res/gl/gl_errors.h" {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadConfigFileErrors(t *testing.T) {
	cfg := DefaultConfig()
	if err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.toml"), &cfg); err == nil {
		t.Fatal("expected error for missing file")
	}
	bad := writeFile(t, `on_gl_error = "explode"`)
	err := LoadConfigFile(bad, &cfg)
	if err == nil || !strings.Contains(err.Error(), "invalid error policy") {
		t.Fatalf("err = %v", err)
	}
}

func TestWriteConfigRoundTrip(t *testing.T) {
	want := DefaultConfig()
	want.TexturePath = "res/textures/logo.png"
	want.ErrorPolicy = PolicyLog

	var buf bytes.Buffer
	if err := WriteConfig(&buf, want); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}
	if !strings.Contains(buf.String(), `on_gl_error = "log"`) {
		t.Fatalf("policy not written as text:\n%s", buf.String())
	}

	var got Config
	if err := LoadConfigFile(writeFile(t, buf.String()), &got); err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if got != want {
		t.Fatalf("round trip:\n got %+v\nwant %+v", got, want)
	}
}
