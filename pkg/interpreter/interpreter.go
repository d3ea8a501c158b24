package interpreter

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/agenthands/strscript/pkg/compiler/ast"
	"github.com/agenthands/strscript/pkg/compiler/lexer"
	"github.com/agenthands/strscript/pkg/core/env"
)

var (
	ErrGasExhausted         = errors.New("interpreter: gas exhausted")
	ErrUnsupportedStatement = errors.New("interpreter: unsupported statement")
)

// RuntimeError ties an evaluation failure to the statement that caused it.
type RuntimeError struct {
	Token lexer.Token
	Err   error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("runtime error at %s: %v", e.Token.Pos(), e.Err)
}

func (e *RuntimeError) Unwrap() error { return e.Err }

// Interpreter executes a parsed program statement by statement.
// Each call to Run starts from an empty Environment, so an Interpreter can
// be reused sequentially without state leaking between runs.
type Interpreter struct {
	// Output, when set, receives every printed line as soon as it is produced.
	Output io.Writer
	Logger zerolog.Logger
	// GasLimit caps the number of executed statements. Zero means unlimited.
	GasLimit int
}

// New returns an Interpreter that only collects output lines.
func New() *Interpreter {
	return &Interpreter{Logger: zerolog.Nop()}
}

// Run executes prog in order and returns the printed lines. On failure it
// returns the lines printed before the failing statement together with the
// error; no later statement is executed.
func (in *Interpreter) Run(prog *ast.Program) ([]string, error) {
	lines := []string{}
	if prog == nil {
		return lines, nil
	}

	vars := env.New()
	for i, stmt := range prog.Statements {
		if in.GasLimit > 0 && i >= in.GasLimit {
			in.Logger.Debug().Int("gas", in.GasLimit).Msg("gas exhausted")
			return lines, ErrGasExhausted
		}

		switch s := stmt.(type) {
		case *ast.Declaration:
			vars.Set(s.Name.Text, s.Literal.Text)
			in.Logger.Debug().
				Str("pos", s.Name.Pos()).
				Str("name", s.Name.Text).
				Int("bindings", vars.Len()).
				Msg("declare")

		case *ast.Print:
			v, err := vars.Get(s.Name.Text)
			if err != nil {
				in.Logger.Debug().
					Str("pos", s.Name.Pos()).
					Strs("bound", vars.Names()).
					Err(err).
					Msg("print failed")
				return lines, &RuntimeError{Token: s.Name, Err: err}
			}
			lines = append(lines, v)
			in.Logger.Debug().Str("pos", s.Pos().Pos()).Str("name", s.Name.Text).Msg("print")

			if in.Output != nil {
				if _, err := io.WriteString(in.Output, v+"\n"); err != nil {
					return lines, fmt.Errorf("interpreter: write output: %w", err)
				}
			}

		default:
			return lines, &RuntimeError{Token: stmt.Pos(), Err: fmt.Errorf("%w %T", ErrUnsupportedStatement, stmt)}
		}
	}

	return lines, nil
}
