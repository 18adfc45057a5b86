// Package app wires the command-line surface: flag parsing, logging setup,
// mode selection (launch-and-trace vs. attach-to-tree), and the final
// summary render.
package app

import (
	"fmt"
	"os"
	"syscall"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/rifa-456/gotracer/internal/logging"
	"github.com/rifa-456/gotracer/pkg/attacher"
	"github.com/rifa-456/gotracer/pkg/launcher"
	"github.com/rifa-456/gotracer/pkg/tracer"
)

const (
	FlagAttach    = "attach"
	FlagLogLevel  = "log-level"
	FlagLogFormat = "log-format"
	FlagLogDir    = "log"
	FlagNoColor   = "no-color"
	FlagSummary   = "summary"
)

// Name and Usage mirror a small single-binary CLI's identity strings.
const (
	Name  = "gotracer"
	Usage = "ptrace-based syscall tracer"
)

// Run builds the CLI application and executes it against args (os.Args in
// production, a fixed slice in tests).
func Run(args []string) int {
	cliApp := cli.NewApp()
	cliApp.Name = Name
	cliApp.Usage = Usage
	cliApp.UsageText = fmt.Sprintf("%s [options] [--] <program> [args...]", Name)
	cliApp.Flags = []cli.Flag{
		&cli.IntFlag{
			Name:    FlagAttach,
			Aliases: []string{"a"},
			Usage:   "PID of a running process tree to attach to",
		},
		&cli.StringFlag{
			Name:  FlagLogLevel,
			Usage: "set the logging level ('trace', 'debug', 'info' (default), 'warn', 'error', 'fatal', 'panic')",
			Value: "info",
		},
		&cli.StringFlag{
			Name:  FlagLogFormat,
			Usage: "set the format used by logs ('text' (default), or 'json')",
			Value: "text",
		},
		&cli.StringFlag{
			Name:  FlagLogDir,
			Usage: "directory to store the per-run log file (disabled if empty)",
			Value: "logs",
		},
		&cli.BoolFlag{
			Name:  FlagNoColor,
			Usage: "disable color output",
		},
		&cli.BoolFlag{
			Name:  FlagSummary,
			Usage: "render a syscall count summary table when the trace ends",
			Value: true,
		},
	}

	cliApp.Action = action
	// Hand cli.Exit errors back to Run instead of letting urfave/cli exit
	// the process, so the error is printed here and reported as status 1.
	cliApp.ExitErrHandler = func(*cli.Context, error) {}

	if err := cliApp.Run(args); err != nil {
		printError(err.Error())
		return 1
	}
	return 0
}

// printError prints msg to stderr in the same bracket-then-unset style as
// pkg/app/execontext.go's Output.Error.
func printError(msg string) {
	color.Set(color.FgHiRed)
	defer color.Unset()
	fmt.Fprintln(os.Stderr, msg)
}

// printWarning prints msg to stderr in yellow, for conditions the run
// survives but the operator should notice.
func printWarning(msg string) {
	color.Set(color.FgYellow)
	defer color.Unset()
	fmt.Fprintln(os.Stderr, msg)
}

func action(ctx *cli.Context) error {
	if ctx.NumFlags() == 0 && ctx.Args().Len() == 0 {
		return cli.ShowAppHelp(ctx)
	}

	if ctx.Bool(FlagNoColor) {
		color.NoColor = true
	}

	lg, logPath, err := logging.Setup(logging.Options{
		Level:   ctx.String(FlagLogLevel),
		Format:  logging.Format(ctx.String(FlagLogFormat)),
		LogDir:  ctx.String(FlagLogDir),
		NoColor: ctx.Bool(FlagNoColor),
	})
	if err != nil {
		printWarning(fmt.Sprintf("warning: %v (continuing with console logging only)", err))
	}
	if logPath != "" {
		lg.Infof("app: logging to %s", logPath)
	}

	t := tracer.New(lg)

	attachPID := ctx.Int(FlagAttach)
	switch {
	case attachPID > 0:
		if err := runAttach(t, attachPID, lg); err != nil {
			return err
		}
	case ctx.Args().Len() > 0:
		if err := runLaunch(t, ctx.Args().Slice(), lg); err != nil {
			return err
		}
	default:
		return cli.Exit("no mode selected: pass --attach <pid> or a program to launch", 1)
	}

	if err := t.Run(); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if ctx.Bool(FlagSummary) {
		t.Summary.Render(os.Stdout)
	}
	return nil
}

func runLaunch(t *tracer.Tracer, argv []string, lg *log.Logger) error {
	if len(argv) == 0 {
		return cli.Exit("launch mode requires a program to run", 1)
	}

	cmd, err := launcher.Start(argv[0], argv[1:])
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	pid := cmd.Process.Pid
	t.Admit(pid)
	t.SetLaunchedPID(pid)
	lg.Infof("app: tracing launched program %q (pid=%d)", argv[0], pid)
	return nil
}

func runAttach(t *tracer.Tracer, root int, lg *log.Logger) error {
	ids := attacher.Discover(root)
	lg.Infof("app: discovered %d thread(s)/process(es) rooted at pid %d", len(ids), root)

	attached := attacher.Attach(ids)
	if len(attached) == 0 {
		return cli.Exit(fmt.Sprintf("no process in the tree rooted at %d could be attached", root), 1)
	}

	t.Admit(attached...)
	for _, pid := range attached {
		if err := syscall.PtraceSyscall(pid, 0); err != nil {
			lg.Warnf("app: failed to resume pid %d after attach: %v", pid, err)
		}
	}
	return nil
}
