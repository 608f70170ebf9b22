package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/fattreed/lox/config"
	"github.com/fattreed/lox/format"
	"github.com/fattreed/lox/internal/logger"
	"github.com/fattreed/lox/lexer"
	"github.com/fattreed/lox/parser"
)

var (
	// ErrInvalidSource is returned by Eval when the source had lexical or
	// syntax errors. The errors themselves have already been printed.
	ErrInvalidSource = errors.New("source has errors")

	// ErrReadScript is returned by RunFile when the script cannot be read
	ErrReadScript = errors.New("cannot open script")
)

// Session scans, and optionally parses, source blobs and prints the result
type Session struct {
	cfg *config.Config
	log *logger.Logger
}

// NewSession creates a Session
func NewSession(cfg *config.Config, log *logger.Logger) *Session {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logger.New("repl", nil)
	}
	return &Session{cfg: cfg, log: log}
}

// Eval scans src with a fresh scanner and prints its tokens to out.
// Lexical errors are printed to diag as soon as they are found. When the
// output is configured to include trees, the tokens are parsed as a
// sequence of expressions and each tree or syntax error is printed too.
func (s *Session) Eval(out, diag io.Writer, src []byte) error {
	return s.eval(s.log, out, diag, src)
}

func (s *Session) eval(log *logger.Logger, out, diag io.Writer, src []byte) (err error) {
	printer := format.NewPrinter(out, s.cfg.Output.Format, s.cfg.Output.Color)
	defer func() {
		if cerr := printer.Close(); cerr != nil && (err == nil || errors.Is(err, ErrInvalidSource)) {
			err = cerr
		}
	}()

	diagPrinter := format.NewPrinter(diag, config.FormatText, s.cfg.Output.Color)

	invalid := false
	var diagErr error
	report := func(e error) {
		invalid = true
		if werr := diagPrinter.Error(e); werr != nil && diagErr == nil {
			diagErr = fmt.Errorf("writing diagnostic: %w", werr)
		}
	}

	sc := lexer.New(src)
	sc.Error = func(d lexer.Diagnostic) {
		log.Debug("lexical error", "line", d.Line, "error", d.Message)
		report(d)
	}

	tokens := sc.Scan()
	log.Debug("scanned source", "bytes", len(src), "tokens", len(tokens), "lines", tokens[len(tokens)-1].Line())

	if err := printer.Tokens(tokens); err != nil {
		return fmt.Errorf("writing tokens: %w", err)
	}

	if s.cfg.Output.AST {
		exprs, errs := parser.New(tokens).ParseAll()
		for _, expr := range exprs {
			if err := printer.Tree(expr); err != nil {
				return fmt.Errorf("writing tree: %w", err)
			}
		}
		for _, err := range errs {
			log.Debug("syntax error", "error", err)
			report(err)
		}
	}

	if diagErr != nil {
		return diagErr
	}
	if invalid {
		return ErrInvalidSource
	}
	return nil
}

// RunFile scans the whole file at path once
func (s *Session) RunFile(path string, out, diag io.Writer) error {
	log := s.log.WithField("path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadScript, err)
	}

	log.Info("running script")
	return s.eval(log, out, diag, src)
}

// Run starts the interactive prompt. A full screen prompt is used when in
// is a terminal, otherwise lines are read one by one until end of input.
func (s *Session) Run(in io.Reader, out, diag io.Writer) error {
	if f, ok := in.(*os.File); ok && !s.cfg.REPL.Plain && isatty.IsTerminal(f.Fd()) {
		return s.runInteractive(f, out)
	}
	return s.RunLines(in, out, diag)
}

// RunLines prints the prompt, reads one line and evaluates it, until in is
// exhausted. Each line is scanned independently.
func (s *Session) RunLines(in io.Reader, out, diag io.Writer) error {
	r := bufio.NewReader(in)

	for {
		fmt.Fprint(out, s.cfg.REPL.Prompt)

		line, err := r.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimRight(line, "\r\n")
			if evalErr := s.Eval(out, diag, []byte(line)); evalErr != nil && !errors.Is(evalErr, ErrInvalidSource) {
				return evalErr
			}
		}

		if err == io.EOF {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading prompt: %w", err)
		}
	}
}
