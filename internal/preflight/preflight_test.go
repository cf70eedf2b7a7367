package preflight

import (
	"strings"
	"testing"

	"github.com/jorge-barreto/beadplan/internal/compile"
)

func TestCheck_BashFound(t *testing.T) {
	if err := Check([]string{"bash"}); err != nil {
		t.Fatalf("expected bash to be found, got: %v", err)
	}
}

func TestCheck_Empty(t *testing.T) {
	if err := Check(nil); err != nil {
		t.Fatal(err)
	}
}

func TestCheck_MissingBinary(t *testing.T) {
	err := Check([]string{"bash", "beadplan-no-such-binary", "beadplan-no-such-binary"})
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
	if !strings.Contains(err.Error(), "beadplan-no-such-binary") {
		t.Fatalf("expected error naming the binary, got: %v", err)
	}
	if strings.Count(err.Error(), "beadplan-no-such-binary") != 1 {
		t.Fatalf("duplicate entries not collapsed: %v", err)
	}
	if strings.Contains(err.Error(), "bash") {
		t.Fatalf("bash reported missing: %v", err)
	}
}

func TestRequired(t *testing.T) {
	opts := compile.DefaultOptions()
	opts.Tool = "bd"
	got := strings.Join(Required(opts), ",")
	if got != "bash,bd,jq" {
		t.Fatalf("got %q", got)
	}
}
