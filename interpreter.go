package saldo

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Interpreter runs ledger commands against a Session and prints the results.
type Interpreter struct {
	session  *Session
	keywords Keywords
	out      io.Writer
	prompt   string
	logger   *zap.Logger
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithKeywords sets the vocabulary. English is used by default.
func WithKeywords(k Keywords) Option { return func(i *Interpreter) { i.keywords = k } }

// WithPrompt prints p before reading each line. No prompt by default.
func WithPrompt(p string) Option { return func(i *Interpreter) { i.prompt = p } }

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *zap.Logger) Option { return func(i *Interpreter) { i.logger = l } }

// NewInterpreter returns an interpreter with a fresh session writing to out.
func NewInterpreter(out io.Writer, opts ...Option) *Interpreter {
	i := &Interpreter{
		session:  NewSession(),
		keywords: English,
		out:      out,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(i)
	}
	i.logger = i.logger.With(zap.Stringer("session", i.session.ID()))
	return i
}

// Session returns the session the interpreter works on.
func (i *Interpreter) Session() *Session { return i.session }

// MaxLineLength is the longest line read, in bytes. Longer lines are invalid input.
const MaxLineLength = 64 * 1024

// Run reads lines from in until the end command, the end of input, or ctx is done.
//
// Reaching the end of input is the same as typing the end command and returns nil.
func (i *Interpreter) Run(ctx context.Context, in io.Reader) error {
	reader := bufio.NewReader(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i.prompt != "" {
			fmt.Fprint(i.out, i.prompt)
		}
		line, tooLong, err := readLine(reader)
		if err == io.EOF {
			if i.prompt != "" {
				fmt.Fprintln(i.out)
			}
			i.logger.Debug("end of input")
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		if tooLong {
			i.reject(line, fmt.Errorf("%w: more than %d bytes", ErrLineTooLong, MaxLineLength))
			continue
		}
		if i.Exec(line) {
			return nil
		}
	}
}

// readLine reads up to the next end of line, which is dropped.
// Past MaxLineLength the rest of the line is skipped and tooLong is set.
func readLine(r *bufio.Reader) (line string, tooLong bool, err error) {
	var b []byte
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			return string(b), tooLong, err
		}
		if !tooLong {
			if len(b)+len(chunk) > MaxLineLength {
				tooLong, b = true, b[:0]
			} else {
				b = append(b, chunk...)
			}
		}
		if !isPrefix {
			return string(b), tooLong, nil
		}
	}
}

// Exec runs a single line and reports whether the loop must stop.
func (i *Interpreter) Exec(line string) (done bool) {
	cmd, amount, err := i.parse(line)
	if err != nil {
		i.reject(line, err)
		return false
	}

	switch cmd {
	case Buy:
		i.session.Buy(amount)
	case Sell:
		i.session.Sell(amount)
	case Balance:
		fmt.Fprintln(i.out, i.session.Snapshot().Current())
	case Reset:
		fmt.Fprintln(i.out, i.session.Reset().Previous())
	case End:
		i.logger.Debug("end command")
		return true
	}
	i.logger.Debug("applied", zap.Stringer("command", cmd), zap.Stringer("amount", amount))
	return false
}

// reject reports an invalid line.
func (i *Interpreter) reject(line string, err error) {
	i.logger.Debug("rejected line", zap.String("line", line), zap.Error(err))
	fmt.Fprintln(i.out, MessageInvalidInput)
}

// parse turns a line into a valid command and its amount.
func (i *Interpreter) parse(line string) (Command, Amount, error) {
	word, arg := ParseLine(line)
	cmd, ok := i.keywords.Lookup(word)
	if !ok {
		return 0, Amount{}, fmt.Errorf("%w: %q", ErrUnknownCommand, word)
	}
	if !cmd.TakesAmount() {
		if arg != "" {
			return 0, Amount{}, fmt.Errorf("%w: %s %q", ErrUnexpectedAmount, cmd, arg)
		}
		return cmd, Amount{}, nil
	}
	if arg == "" {
		return 0, Amount{}, fmt.Errorf("%w: %s", ErrMissingAmount, cmd)
	}
	amount, err := ParseAmount(arg)
	if err != nil {
		return 0, Amount{}, err
	}
	return cmd, amount, nil
}
