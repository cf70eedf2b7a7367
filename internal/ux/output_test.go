package ux

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jorge-barreto/beadplan/internal/compile"
)

func TestSummary(t *testing.T) {
	got := Summary(&compile.Result{Epic: true, Beads: 2, Links: 1, LabelCommands: 0})
	want := "2 beads, 1 epic, 1 dependency link, 0 label commands"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSummary_NoEpic(t *testing.T) {
	got := Summary(&compile.Result{Beads: 1, LabelCommands: 1})
	if got != "1 bead, no epic, 0 dependency links, 1 label command" {
		t.Fatalf("got %q", got)
	}
}

func TestCompiled_Destination(t *testing.T) {
	var buf bytes.Buffer
	Compiled(&buf, &compile.Result{}, "out.sh")
	if !strings.Contains(buf.String(), "out.sh") || !strings.Contains(buf.String(), "Compiled") {
		t.Fatalf("got %q", buf.String())
	}
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	Error(&buf, errors.New("boom"))
	if !strings.Contains(buf.String(), "error:") || !strings.Contains(buf.String(), "boom") {
		t.Fatalf("got %q", buf.String())
	}
}

func TestApplyFail_NamesTool(t *testing.T) {
	var buf bytes.Buffer
	ApplyFail(&buf, 3, "bd")
	out := buf.String()
	if !strings.Contains(out, "status 3") || !strings.Contains(out, "bd list") {
		t.Fatalf("got %q", out)
	}
}

func TestApplyComplete_Duration(t *testing.T) {
	var buf bytes.Buffer
	ApplyComplete(&buf, 65*time.Second)
	if !strings.Contains(buf.String(), "1m 05s") {
		t.Fatalf("got %q", buf.String())
	}
}
