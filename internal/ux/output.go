package ux

import (
	"fmt"
	"io"
	"time"

	"github.com/jorge-barreto/beadplan/internal/compile"
)

// ANSI color helpers
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

func timestamp() string {
	return time.Now().Format("15:04:05")
}

// Summary describes what a compiled script will do.
func Summary(res *compile.Result) string {
	epic := "no epic"
	if res.Epic {
		epic = "1 epic"
	}
	return fmt.Sprintf("%s, %s, %s, %s",
		plural(res.Beads, "bead"), epic,
		plural(res.Links, "dependency link"), plural(res.LabelCommands, "label command"))
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// Compiled prints a compile success line. dest is empty when the script went
// to stdout.
func Compiled(w io.Writer, res *compile.Result, dest string) {
	to := ""
	if dest != "" {
		to = fmt.Sprintf(" → %s%s%s", Cyan, dest, Reset)
	}
	fmt.Fprintf(w, "%s[%s]%s  %s✓ Compiled %s%s%s\n",
		Dim, timestamp(), Reset, Green, Summary(res), Reset, to)
}

// Valid prints a check success line.
func Valid(w io.Writer, source string, res *compile.Result) {
	fmt.Fprintf(w, "%s[%s]%s  %s✓ %s is valid:%s %s\n",
		Dim, timestamp(), Reset, Green, source, Reset, Summary(res))
}

// Warn prints a non-fatal warning.
func Warn(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s[%s]%s  %s⚠ %s%s\n", Dim, timestamp(), Reset, Yellow, msg, Reset)
}

// Error prints a fatal error.
func Error(w io.Writer, err error) {
	fmt.Fprintf(w, "%serror:%s %v\n", Red, Reset, err)
}

// ApplyStart prints the header before a script is executed.
func ApplyStart(w io.Writer, res *compile.Result, runID string) {
	fmt.Fprintf(w, "\n%s[%s]%s %s══════════════════════════════════════%s\n",
		Dim, timestamp(), Reset, Cyan, Reset)
	fmt.Fprintf(w, "%s[%s]%s  %sApplying plan: %s%s\n",
		Dim, timestamp(), Reset, Bold, Summary(res), Reset)
	if runID != "" {
		fmt.Fprintf(w, "%s[%s]%s  %sRun ID: %s%s\n", Dim, timestamp(), Reset, Dim, runID, Reset)
	}
	fmt.Fprintf(w, "%s[%s]%s %s══════════════════════════════════════%s\n",
		Dim, timestamp(), Reset, Cyan, Reset)
}

// ApplyComplete prints the success footer for an applied plan.
func ApplyComplete(w io.Writer, duration time.Duration) {
	m := int(duration.Minutes())
	s := int(duration.Seconds()) % 60
	fmt.Fprintf(w, "%s[%s]%s  %s✓ Plan applied (%dm %02ds)%s\n",
		Dim, timestamp(), Reset, Green, m, s, Reset)
}

// ApplyFail prints a failure line. Items created before the failing command
// are left in the tracker.
func ApplyFail(w io.Writer, code int, tool string) {
	fmt.Fprintf(w, "%s[%s]%s  %s✗ Script exited with status %d%s\n",
		Dim, timestamp(), Reset, Red, code, Reset)
	fmt.Fprintf(w, "\n%sInspect:%s items created before the failure remain; run '%s list' to review\n",
		Yellow, Reset, tool)
}
