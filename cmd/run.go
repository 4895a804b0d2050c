package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/saldo"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

type runCmd struct {
	lang     string
	prompt   string
	verbose  bool
	logLevel string
	logFile  string
	envFile  string

	// streams, the process ones when nil.
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "start the interactive ledger (default command)" }
func (*runCmd) Usage() string {
	return `saldo run [-lang en|es] [-prompt auto|on|off] [-v] [-log-level <level>] [-log-file <path>] [-env-file <path>]

  Reads commands from standard input, one per line, until 'end' or the end of input:

    buy N      debit N from the balance
    sell N     credit N to the balance
    balance    print the balance and the number of operations
    reset      print the previous balance and start over from zero
    end        quit

  Any other line prints "*ERROR* Entrada inválida".
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.lang, "lang", "en", "Command words: en (buy, sell, balance, reset, end) or es (compra, venta, saldo, reset, fin). Env: SALDO_LANG")
	f.StringVar(&c.prompt, "prompt", "auto", "Show the '> ' prompt: auto (when stdin is a terminal), on or off. Env: SALDO_PROMPT")
	f.BoolVar(&c.verbose, "v", false, "Log diagnostics to stderr. Env: SALDO_VERBOSE")
	f.StringVar(&c.logLevel, "log-level", "debug", "Log level (debug, info, warn, error). Env: SALDO_LOG_LEVEL")
	f.StringVar(&c.logFile, "log-file", "", "Also write JSON logs to this rotated file. Env: SALDO_LOG_FILE")
	f.StringVar(&c.envFile, "env-file", "", "Load environment variables from this dotenv file first")
}

func (c *runCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, out, errOut := c.streams()

	if f.NArg() > 0 {
		fmt.Fprintf(errOut, "Error: unexpected arguments %q\n", f.Args())
		return subcommands.ExitUsageError
	}

	cfg, err := LoadConfig(c.envFile)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	cfg.override(f)

	keywords, err := saldo.ParseKeywords(cfg.Lang)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	showPrompt, err := cfg.showPrompt(in)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	logger, closeLogger, err := newLogger(cfg, errOut)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeLogger()

	opts := []saldo.Option{saldo.WithKeywords(keywords), saldo.WithLogger(logger)}
	if showPrompt {
		opts = append(opts, saldo.WithPrompt("> "))
	}
	interpreter := saldo.NewInterpreter(out, opts...)
	logger.Info("session started",
		zap.Stringer("session", interpreter.Session().ID()),
		zap.String("lang", cfg.Lang))

	if err := interpreter.Run(ctx, in); err != nil {
		logger.Error("session aborted", zap.Error(err))
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *runCmd) streams() (io.Reader, io.Writer, io.Writer) {
	var (
		in     io.Reader = os.Stdin
		out    io.Writer = os.Stdout
		errOut io.Writer = os.Stderr
	)
	if c.stdin != nil {
		in = c.stdin
	}
	if c.stdout != nil {
		out = c.stdout
	}
	if c.stderr != nil {
		errOut = c.stderr
	}
	return in, out, errOut
}
