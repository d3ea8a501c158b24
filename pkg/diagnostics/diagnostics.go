// Package diagnostics renders interpreter errors for humans: a
// file:line:column header, the offending source line and a caret.
package diagnostics

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/agenthands/strscript/pkg/compiler/lexer"
	"github.com/agenthands/strscript/pkg/compiler/parser"
	"github.com/agenthands/strscript/pkg/interpreter"
)

// Location points at a 1-based line and column of a source file.
type Location struct {
	Path   string
	Line   int
	Column int
}

// Diagnostic is the renderable form of an error.
type Diagnostic struct {
	Kind     string
	Message  string
	Location Location
}

// FromError classifies err. Errors without a source position get a zero Line.
func FromError(path string, err error) Diagnostic {
	d := Diagnostic{Kind: "error", Message: err.Error(), Location: Location{Path: path}}

	var lexErr *lexer.LexError
	var parseErr *parser.ParseError
	var rtErr *interpreter.RuntimeError
	switch {
	case errors.As(err, &lexErr):
		d.Kind = "lex error"
		d.Message = lexErr.Err.Error()
		if errors.Is(lexErr.Err, lexer.ErrIllegalCharacter) {
			d.Message = fmt.Sprintf("%s %q", d.Message, lexErr.Char)
		}
		d.Location.Line, d.Location.Column = int(lexErr.Line), int(lexErr.Column)
	case errors.As(err, &parseErr):
		d.Kind = "parse error"
		d.Message = fmt.Sprintf("expected %s, found %s", parseErr.Expected, parseErr.Found)
		d.Location.Line, d.Location.Column = int(parseErr.Found.Line), int(parseErr.Found.Column)
	case errors.As(err, &rtErr):
		d.Kind = "runtime error"
		d.Message = rtErr.Err.Error()
		d.Location.Line, d.Location.Column = int(rtErr.Token.Line), int(rtErr.Token.Column)
	}
	return d
}

// Printer writes diagnostics, optionally colored.
type Printer struct {
	Out   io.Writer
	bold  *color.Color
	kind  *color.Color
	caret *color.Color
}

// NewPrinter returns a Printer writing to out. colored forces ANSI colors on
// or off regardless of whether out is a terminal.
func NewPrinter(out io.Writer, colored bool) *Printer {
	p := &Printer{
		Out:   out,
		bold:  color.New(color.Bold),
		kind:  color.New(color.FgRed, color.Bold),
		caret: color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{p.bold, p.kind, p.caret} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Print renders d. src is the program text, used to quote the offending line.
func (p *Printer) Print(d Diagnostic, src string) {
	header := d.Location.Path
	if d.Location.Line > 0 {
		header = fmt.Sprintf("%s:%d:%d", header, d.Location.Line, d.Location.Column)
	}
	if header != "" {
		fmt.Fprintf(p.Out, "%s ", p.bold.Sprint(header+":"))
	}
	fmt.Fprintf(p.Out, "%s %s\n", p.kind.Sprint(d.Kind+":"), d.Message)

	line, ok := sourceLine(src, d.Location.Line)
	if !ok {
		return
	}
	fmt.Fprintf(p.Out, "    %s\n", line)
	fmt.Fprintf(p.Out, "    %s%s\n", padding(line, d.Location.Column), p.caret.Sprint("^"))
}

// padding lines the caret up under column col, keeping tabs as tabs.
func padding(line string, col int) string {
	if col < 1 {
		col = 1
	}
	if col-1 > len(line) {
		col = len(line) + 1
	}
	return strings.Map(func(r rune) rune {
		if r == '\t' {
			return r
		}
		return ' '
	}, line[:col-1])
}

// PrintError is shorthand for Print(FromError(path, err), src).
func (p *Printer) PrintError(path, src string, err error) {
	p.Print(FromError(path, err), src)
}

func sourceLine(src string, n int) (string, bool) {
	if n < 1 {
		return "", false
	}
	lines := strings.Split(src, "\n")
	if n > len(lines) {
		return "", false
	}
	return strings.TrimRight(lines[n-1], "\r"), true
}
