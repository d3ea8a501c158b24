package parser

import (
	"fmt"

	"github.com/agenthands/strscript/pkg/compiler/ast"
	"github.com/agenthands/strscript/pkg/compiler/lexer"
)

// PrintWord names the print statement. It is not reserved: the parser
// recognizes it only as the first token of a statement followed by '('.
const PrintWord = "print"

// ParseError reports a token stream that does not match the grammar.
type ParseError struct {
	Expected string
	Found    lexer.Token
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %s: expected %s, found %s", e.Found.Pos(), e.Expected, e.Found)
}

// Pos returns the position of the offending token as line:column.
func (e *ParseError) Pos() string { return e.Found.Pos() }

type Parser struct {
	tokens  []lexer.Token
	pos     int
	curTok  lexer.Token
	peekTok lexer.Token
}

// NewParser creates a parser over a token sequence produced by lexer.Tokenize.
// A missing trailing EOF token is tolerated.
func NewParser(tokens []lexer.Token) *Parser {
	p := &Parser{tokens: tokens}
	// Read two tokens, so curTok and peekTok are both set
	p.nextToken()
	p.nextToken()
	return p
}

// Parse is shorthand for NewParser(tokens).Parse().
func Parse(tokens []lexer.Token) (*ast.Program, error) {
	return NewParser(tokens).Parse()
}

func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	if p.pos < len(p.tokens) {
		p.peekTok = p.tokens[p.pos]
		p.pos++
		return
	}
	// Past the end everything reads as EOF, positioned on the last token.
	eof := lexer.Token{Kind: lexer.KindEOF}
	if n := len(p.tokens); n > 0 {
		last := p.tokens[n-1]
		eof.Offset, eof.Line, eof.Column = last.Offset, last.Line, last.Column
	}
	p.peekTok = eof
}

// Parse consumes the whole token sequence. It stops at the first mismatch.
func (p *Parser) Parse() (*ast.Program, error) {
	program := &ast.Program{}

	for p.curTok.Kind != lexer.KindEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, stmt)
	}

	return program, nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	if p.curTok.Kind != lexer.KindIdentifier {
		return nil, p.errorf("statement")
	}

	switch {
	case p.peekTok.Kind == lexer.KindEquals:
		return p.parseDeclaration()
	case p.peekTok.Kind == lexer.KindLParen && p.curTok.Text == PrintWord:
		return p.parsePrint()
	}

	p.nextToken()
	if p.curTok.Kind == lexer.KindLParen {
		return nil, p.errorf("'='")
	}
	return nil, p.errorf("'=' or '('")
}

// name = string("literal");
func (p *Parser) parseDeclaration() (ast.Statement, error) {
	decl := &ast.Declaration{Name: p.curTok}
	p.nextToken() // skip NAME

	if err := p.expect(lexer.KindEquals); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.KindKeyword); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.KindLParen); err != nil {
		return nil, err
	}
	if p.curTok.Kind != lexer.KindString {
		return nil, p.errorf(lexer.KindString.String())
	}
	decl.Literal = p.curTok
	p.nextToken()
	if err := p.expect(lexer.KindRParen); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.KindSemicolon); err != nil {
		return nil, err
	}

	return decl, nil
}

// print(name);
func (p *Parser) parsePrint() (ast.Statement, error) {
	stmt := &ast.Print{Token: p.curTok}
	p.nextToken() // skip print

	if err := p.expect(lexer.KindLParen); err != nil {
		return nil, err
	}
	if p.curTok.Kind != lexer.KindIdentifier {
		return nil, p.errorf(lexer.KindIdentifier.String())
	}
	stmt.Name = p.curTok
	p.nextToken()
	if err := p.expect(lexer.KindRParen); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.KindSemicolon); err != nil {
		return nil, err
	}

	return stmt, nil
}

// expect consumes the current token if it has the given kind.
func (p *Parser) expect(kind lexer.Kind) error {
	if p.curTok.Kind != kind {
		if kind == lexer.KindKeyword {
			return p.errorf(fmt.Sprintf("%q", lexer.KeywordString))
		}
		return p.errorf(kind.String())
	}
	p.nextToken()
	return nil
}

func (p *Parser) errorf(expected string) error {
	return &ParseError{Expected: expected, Found: p.curTok}
}
