package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	cli "github.com/urfave/cli/v3"

	"github.com/jorge-barreto/beadplan/internal/compile"
	"github.com/jorge-barreto/beadplan/internal/config"
	"github.com/jorge-barreto/beadplan/internal/docs"
	"github.com/jorge-barreto/beadplan/internal/output"
	"github.com/jorge-barreto/beadplan/internal/plan"
	"github.com/jorge-barreto/beadplan/internal/preflight"
	"github.com/jorge-barreto/beadplan/internal/scaffold"
	"github.com/jorge-barreto/beadplan/internal/shell"
	"github.com/jorge-barreto/beadplan/internal/ux"
)

const usageText = `Usage: beadplan [flags] <plan.json>
       beadplan [flags] -     (read the plan from stdin)
Run 'beadplan --help' for flags and subcommands.
`

// errUsage is returned after usage has been printed.
var errUsage = errors.New("usage")

// scriptExitError carries a non-zero exit status from an applied script.
type scriptExitError struct {
	code int
}

func (e *scriptExitError) Error() string {
	return fmt.Sprintf("script exited with status %d", e.code)
}

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(context.Background(), os.Args); err != nil {
		os.Exit(exitStatus(err, os.Stderr))
	}
}

// exitStatus reports err on stderr when needed and maps it to a process status.
func exitStatus(err error, stderr io.Writer) int {
	var exitErr *scriptExitError
	switch {
	case errors.Is(err, errUsage):
		return 2
	case errors.As(err, &exitErr):
		return exitErr.code
	default:
		ux.Error(stderr, err)
		return 1
	}
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:        "beadplan",
		Usage:       "Compile a bead plan into a tracker script",
		ArgsUsage:   "<plan|->",
		Description: "Run 'beadplan docs' for documentation on the plan format and the generated script.",
		Writer:      stdout,
		ErrWriter:   stderr,
		Flags: append(compileFlags(),
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "Write the script to `FILE` instead of stdout"},
			&cli.BoolFlag{Name: "run-id", Usage: "Stamp a generated run id into the script"},
		),
		Commands: []*cli.Command{
			checkCmd(stdin, stderr),
			applyCmd(stdin, stdout, stderr),
			initCmd(stderr),
			docsCmd(stdout),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			res, opts, err := compileSource(cmd, stdin, stderr, cmd.Bool("run-id"))
			if err != nil {
				return err
			}

			out := cmd.String("out")
			if out != "" {
				if err := output.WriteScript(out, res.Script); err != nil {
					return fmt.Errorf("writing script: %w", err)
				}
			} else {
				fmt.Fprint(stdout, res.Script)
			}

			if !cmd.Bool("quiet") {
				ux.Compiled(stderr, res, out)
				if err := preflight.Check(preflight.Required(opts)); err != nil {
					ux.Warn(stderr, err.Error())
				}
			}
			return nil
		},
	}
}

func compileFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Usage: "Read settings from `FILE` instead of the nearest " + config.FileName},
		&cli.StringFlag{Name: "tool", Usage: "Tracker binary to invoke (overrides config)"},
		&cli.BoolFlag{Name: "allow-unresolved", Usage: "Let depends_on ids without a bead through to run time"},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "Suppress status output on stderr"},
	}
}

// compileSource loads config and the plan named by the first argument, then
// compiles it. Nothing is compiled when the argument is missing.
func compileSource(cmd *cli.Command, stdin io.Reader, stderr io.Writer, runID bool) (*compile.Result, compile.Options, error) {
	src := cmd.Args().First()
	if src == "" {
		fmt.Fprint(stderr, usageText)
		return nil, compile.Options{}, errUsage
	}

	opts, err := compileOptions(cmd)
	if err != nil {
		return nil, opts, err
	}
	if runID {
		opts.RunID = uuid.NewString()
	}

	p, err := plan.Load(src, stdin)
	if err != nil {
		return nil, opts, err
	}
	res, err := compile.Compile(p, opts)
	if err != nil {
		return nil, opts, err
	}
	return res, opts, nil
}

func compileOptions(cmd *cli.Command) (compile.Options, error) {
	wd, err := os.Getwd()
	if err != nil {
		return compile.Options{}, err
	}
	cfg, err := config.Resolve(cmd.String("config"), wd)
	if err != nil {
		return compile.Options{}, fmt.Errorf("loading config: %w", err)
	}
	if tool := cmd.String("tool"); tool != "" {
		cfg.Tool = tool
		if err := config.Validate(cfg); err != nil {
			return compile.Options{}, err
		}
	}
	if cmd.Bool("allow-unresolved") {
		cfg.AllowUnresolved = true
	}
	return cfg.CompileOptions(), nil
}

func checkCmd(stdin io.Reader, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Validate a plan without emitting a script",
		ArgsUsage: "<plan|->",
		Flags:     compileFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			res, _, err := compileSource(cmd, stdin, stderr, false)
			if err != nil {
				return err
			}
			if !cmd.Bool("quiet") {
				ux.Valid(stderr, cmd.Args().First(), res)
			}
			return nil
		},
	}
}

func applyCmd(stdin io.Reader, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "apply",
		Usage:     "Compile a plan and run the script with bash",
		ArgsUsage: "<plan|->",
		Flags: append(compileFlags(),
			&cli.StringFlag{Name: "dir", Usage: "Run the script in `DIR` (default: current directory)"},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			res, opts, err := compileSource(cmd, stdin, stderr, true)
			if err != nil {
				return err
			}
			if err := preflight.Check(preflight.Required(opts)); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
			defer stop()

			ux.ApplyStart(stderr, res, opts.RunID)
			start := time.Now()
			code, err := shell.Run(ctx, res.Script, shell.Options{
				Dir:    cmd.String("dir"),
				Stdout: stdout,
				Stderr: stderr,
			})
			if err != nil {
				return fmt.Errorf("running script: %w", err)
			}
			if code != 0 {
				ux.ApplyFail(stderr, code, opts.Tool)
				return &scriptExitError{code: code}
			}
			ux.ApplyComplete(stderr, time.Since(start))
			return nil
		},
	}
}

func initCmd(stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write an example " + scaffold.PlanFile + " in the current directory",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			return scaffold.Init(dir, stderr)
		},
	}
}

func docsCmd(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Show documentation",
		ArgsUsage: "[topic]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				fmt.Fprint(stdout, "\nAvailable topics:\n\n")
				for _, t := range docs.All() {
					fmt.Fprintf(stdout, "  %-12s %s\n", t.Name, t.Summary)
				}
				fmt.Fprintln(stdout, "\nRun 'beadplan docs <topic>' to read a topic.")
				return nil
			}
			t, err := docs.Get(name)
			if err != nil {
				return err
			}
			fmt.Fprint(stdout, t.Content)
			return nil
		},
	}
}
