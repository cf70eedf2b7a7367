package preflight

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/jorge-barreto/beadplan/internal/compile"
)

// Required returns the binaries a compiled script invokes.
func Required(opts compile.Options) []string {
	return []string{"bash", opts.Tool, opts.JQ}
}

// Check verifies that every binary is available on PATH.
func Check(bins []string) error {
	seen := make(map[string]bool, len(bins))
	var missing []string
	for _, bin := range bins {
		if seen[bin] {
			continue
		}
		seen[bin] = true
		if _, err := exec.LookPath(bin); err != nil {
			missing = append(missing, bin)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("required binaries not found in PATH: %s", strings.Join(missing, ", "))
	}
	return nil
}
