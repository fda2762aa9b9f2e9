//go:build profile

package profiler

import (
	"bytes"
	"strings"
	"testing"
)

func TestReportOrdersByTotal(t *testing.T) {
	Reset()
	for i := 0; i < 3; i++ {
		end := Start("frame")
		end()
	}
	Start("setup")()

	scopes["frame"].total = 30
	scopes["setup"].total = 50

	var buf bytes.Buffer
	if err := Report(&buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("report:\n%s", buf.String())
	}
	if !strings.HasPrefix(lines[0], "setup") || !strings.Contains(lines[1], "n=3") {
		t.Errorf("report:\n%s", buf.String())
	}
}
