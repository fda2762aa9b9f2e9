package glcheck_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/hubastard/hellogl/engine/gfx"
	"github.com/hubastard/hellogl/engine/gfx/gfxtest"
	"github.com/hubastard/hellogl/engine/gfx/glcheck"
)

func TestCallSucceeds(t *testing.T) {
	d := gfxtest.New()
	c := glcheck.New(d, nil)

	ran := false
	if err := c.Call("glClear(GL_COLOR_BUFFER_BIT)", func() {
		ran = true
		d.Clear(gfx.ColorBufferBit)
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ran {
		t.Fatal("wrapped function was not called")
	}
}

func TestCallDrainsStaleErrors(t *testing.T) {
	d := gfxtest.New()
	d.QueueError(gfx.InvalidEnum)
	d.QueueError(gfx.InvalidValue)
	c := glcheck.New(d, nil)

	if err := c.Call("glClearColor(0, 0, 0, 1)", func() { d.ClearColor(0, 0, 0, 1) }); err != nil {
		t.Fatalf("stale codes were blamed on the call: %v", err)
	}
	if d.Pending() != 0 {
		t.Fatalf("queue not drained, %d codes left", d.Pending())
	}
}

func TestCallReportsError(t *testing.T) {
	d := gfxtest.New()
	c := glcheck.New(d, nil)

	err := c.Call("glUseProgram(42)", func() { d.UseProgram(42) })
	var glErr *glcheck.Error
	if !errors.As(err, &glErr) {
		t.Fatalf("expected *glcheck.Error, got %v", err)
	}
	if glErr.Code != gfx.InvalidOperation {
		t.Errorf("code = 0x%x, want 0x%x", glErr.Code, gfx.InvalidOperation)
	}
	if glErr.Symbol != "GL_INVALID_OPERATION" {
		t.Errorf("symbol = %q", glErr.Symbol)
	}
	if glErr.Call != "glUseProgram(42)" {
		t.Errorf("call = %q", glErr.Call)
	}
	if !strings.HasSuffix(glErr.File, "check_test.go") || glErr.Line == 0 {
		t.Errorf("call site = %s:%d, want this test file", glErr.File, glErr.Line)
	}
	if !strings.Contains(err.Error(), "GL_INVALID_OPERATION") {
		t.Errorf("message %q lacks the symbol", err.Error())
	}
}

func TestCallCountsDroppedCodes(t *testing.T) {
	d := gfxtest.New()
	c := glcheck.New(d, nil)

	err := c.Call("burst", func() {
		d.QueueError(gfx.InvalidValue)
		d.QueueError(gfx.OutOfMemory)
		d.QueueError(gfx.InvalidEnum)
	})
	var glErr *glcheck.Error
	if !errors.As(err, &glErr) {
		t.Fatalf("expected *glcheck.Error, got %v", err)
	}
	if glErr.Code != gfx.InvalidValue || glErr.Dropped != 2 {
		t.Errorf("got code 0x%x dropped %d, want 0x501 dropped 2", glErr.Code, glErr.Dropped)
	}
	if d.Pending() != 0 {
		t.Errorf("%d codes left in queue", d.Pending())
	}
}

func TestValue(t *testing.T) {
	d := gfxtest.New()
	c := glcheck.New(d, nil)

	v, err := glcheck.Value(c, "glGetString(GL_VERSION)", func() string { return d.GetString(gfx.Version) })
	if err != nil || v == "" {
		t.Fatalf("got %q, %v", v, err)
	}

	_, err = glcheck.Value(c, "glGetString(0)", func() string { return d.GetString(0) })
	var glErr *glcheck.Error
	if !errors.As(err, &glErr) || glErr.Code != gfx.InvalidEnum {
		t.Fatalf("expected GL_INVALID_ENUM, got %v", err)
	}
}

func TestSeqStopsAtFirstError(t *testing.T) {
	d := gfxtest.New()
	c := glcheck.New(d, nil)

	s := c.Seq()
	s.Call("glClear", func() { d.Clear(gfx.ColorBufferBit) })
	s.Call("glUseProgram(7)", func() { d.UseProgram(7) })
	third := false
	s.Call("third", func() { third = true })

	var glErr *glcheck.Error
	if !errors.As(s.Err(), &glErr) || glErr.Call != "glUseProgram(7)" {
		t.Fatalf("expected failure at glUseProgram(7), got %v", s.Err())
	}
	if third {
		t.Error("call after the failure still ran")
	}
}
