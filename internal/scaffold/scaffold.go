package scaffold

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jorge-barreto/beadplan/internal/ux"
)

// PlanFile is the name of the example plan written by Init.
const PlanFile = "plan.json"

var planTemplate = `{
  "epic": {
    "title": "User authentication",
    "description": "Sign-up, login and session handling",
    "priority": 1
  },
  "beads": [
    {
      "id": "auth-spike",
      "title": "Spike: Auth architecture",
      "type": "spike",
      "priority": 1,
      "description": "Decide JWT vs sessions",
      "acceptance": "ADR document created",
      "labels": ["backend", "architecture"],
      "depends_on": ["epic"]
    },
    {
      "id": "users-migration",
      "title": "Create users table migration",
      "type": "task",
      "priority": 1,
      "depends_on": ["auth-spike"],
      "labels": ["backend", "database"]
    },
    {
      "title": "Login endpoint",
      "type": "task",
      "priority": 2,
      "description": "POST /login returns a session token",
      "depends_on": ["users-migration"]
    }
  ]
}
`

// Init writes an example plan into targetDir and prints next steps to w.
func Init(targetDir string, w io.Writer) error {
	path := filepath.Join(targetDir, PlanFile)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists in %s", PlanFile, targetDir)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := os.WriteFile(path, []byte(planTemplate), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", PlanFile, err)
	}

	fmt.Fprintf(w, "\n%s%s✓ Wrote example plan%s\n\n", ux.Bold, ux.Green, ux.Reset)
	fmt.Fprintf(w, "  Created:\n")
	fmt.Fprintf(w, "    %s%s%s  epic plus three beads with dependencies and labels\n\n", ux.Cyan, PlanFile, ux.Reset)
	fmt.Fprintf(w, "  Next steps:\n")
	fmt.Fprintf(w, "    1. Edit %s%s%s to describe your work\n", ux.Cyan, PlanFile, ux.Reset)
	fmt.Fprintf(w, "    2. Run %sbeadplan check %s%s to validate it\n", ux.Cyan, PlanFile, ux.Reset)
	fmt.Fprintf(w, "    3. Run %sbeadplan -o create_beads.sh %s%s and review the script\n\n", ux.Cyan, PlanFile, ux.Reset)

	return nil
}
