// Package runner wires the lexer, parser and interpreter into a single
// source-to-output pipeline.
package runner

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/agenthands/strscript/pkg/compiler/ast"
	"github.com/agenthands/strscript/pkg/compiler/lexer"
	"github.com/agenthands/strscript/pkg/compiler/parser"
	"github.com/agenthands/strscript/pkg/interpreter"
)

type options struct {
	output   io.Writer
	logger   zerolog.Logger
	gasLimit int
}

// Option configures a Run.
type Option func(*options)

// WithOutput streams printed lines to w while the program runs.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.output = w }
}

// WithLogger sets the logger used for pipeline tracing.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithGasLimit caps the number of executed statements. Zero means unlimited.
func WithGasLimit(n int) Option {
	return func(o *options) { o.gasLimit = n }
}

// Check lexes and parses src without evaluating it.
func Check(src string) (*ast.Program, error) {
	return compile(src, zerolog.Nop())
}

// Run lexes, parses and evaluates src. Lex and parse errors are reported
// before anything is evaluated; on a runtime error the lines printed so far
// are returned with the error.
func Run(src string, opts ...Option) ([]string, error) {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	prog, err := compile(src, o.logger)
	if err != nil {
		return nil, err
	}

	in := interpreter.New()
	in.Output = o.output
	in.Logger = o.logger.With().Str("stage", "eval").Logger()
	in.GasLimit = o.gasLimit

	lines, err := in.Run(prog)
	if err != nil {
		o.logger.Debug().Err(err).Int("printed", len(lines)).Msg("run aborted")
		return lines, err
	}
	o.logger.Debug().Int("printed", len(lines)).Msg("run complete")
	return lines, nil
}

func compile(src string, logger zerolog.Logger) (*ast.Program, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("stage", "lex").Int("tokens", len(tokens)).Msg("tokenized")

	prog, err := parser.Parse(tokens)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("stage", "parse").Int("statements", len(prog.Statements)).Msg("parsed")
	return prog, nil
}
