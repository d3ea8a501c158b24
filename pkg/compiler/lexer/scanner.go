package lexer

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminatedString = errors.New("unterminated string literal")
	ErrIllegalCharacter   = errors.New("illegal character")
)

// LexError reports a malformed token stream.
type LexError struct {
	Err    error
	Char   byte
	Offset uint32
	Line   uint32
	Column uint32
}

func (e *LexError) Error() string {
	if errors.Is(e.Err, ErrIllegalCharacter) {
		return fmt.Sprintf("lex error at %d:%d: %v %q", e.Line, e.Column, e.Err, e.Char)
	}
	return fmt.Sprintf("lex error at %d:%d: %v", e.Line, e.Column, e.Err)
}

func (e *LexError) Unwrap() error { return e.Err }

// Scanner performs lexical analysis on strscript source.
// It never modifies the source it scans.
type Scanner struct {
	source    string
	cursor    int
	line      int
	lineStart int
	err       *LexError
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
	}
}

// Reset re-initializes the scanner with new source for reuse.
func (s *Scanner) Reset(source string) {
	s.source = source
	s.cursor = 0
	s.line = 1
	s.lineStart = 0
	s.err = nil
}

// Err returns the error behind the last KindError token, if any.
func (s *Scanner) Err() error {
	if s.err == nil {
		return nil
	}
	return s.err
}

// Next returns the next token from the source. Once a KindError token has
// been returned the scanner keeps returning it.
func (s *Scanner) Next() Token {
	if s.err != nil {
		return Token{Kind: KindError, Offset: s.err.Offset, Line: s.err.Line, Column: s.err.Column}
	}

	s.skipWhitespace()

	if s.cursor >= len(s.source) {
		return s.token(KindEOF, "", s.cursor)
	}

	start := s.cursor
	ch := s.source[s.cursor]

	if ch == '"' {
		return s.scanString()
	}

	if isAlpha(ch) || ch == '_' {
		return s.scanIdentifier()
	}

	kind := KindError
	switch ch {
	case '=':
		kind = KindEquals
	case '(':
		kind = KindLParen
	case ')':
		kind = KindRParen
	case ';':
		kind = KindSemicolon
	}

	if kind == KindError {
		return s.fail(ErrIllegalCharacter, start)
	}

	s.cursor++
	return s.token(kind, "", start)
}

func (s *Scanner) skipWhitespace() {
	for s.cursor < len(s.source) {
		ch := s.source[s.cursor]
		if ch == ' ' || ch == '\t' || ch == '\r' {
			s.cursor++
		} else if ch == '\n' {
			s.cursor++
			s.newline()
		} else {
			break
		}
	}
}

func (s *Scanner) newline() {
	s.line++
	s.lineStart = s.cursor
}

func (s *Scanner) scanString() Token {
	start := s.cursor
	line, col := s.line, s.column(start)
	s.cursor++ // Skip opening '"'

	for s.cursor < len(s.source) && s.source[s.cursor] != '"' {
		s.cursor++
		if s.source[s.cursor-1] == '\n' {
			s.newline()
		}
	}

	if s.cursor >= len(s.source) {
		s.err = &LexError{
			Err:    ErrUnterminatedString,
			Char:   '"',
			Offset: uint32(start),
			Line:   uint32(line),
			Column: uint32(col),
		}
		return Token{Kind: KindError, Offset: uint32(start), Line: uint32(line), Column: uint32(col)}
	}

	s.cursor++ // Skip closing '"'
	return Token{
		Kind:   KindString,
		Text:   s.source[start+1 : s.cursor-1],
		Offset: uint32(start),
		Line:   uint32(line),
		Column: uint32(col),
	}
}

func (s *Scanner) scanIdentifier() Token {
	start := s.cursor
	for s.cursor < len(s.source) && (isAlpha(s.source[s.cursor]) || isDigit(s.source[s.cursor]) || s.source[s.cursor] == '_') {
		s.cursor++
	}

	literal := s.source[start:s.cursor]
	kind := KindIdentifier
	if literal == KeywordString {
		kind = KindKeyword
	}

	return s.token(kind, literal, start)
}

func (s *Scanner) fail(err error, at int) Token {
	s.err = &LexError{
		Err:    err,
		Char:   s.source[at],
		Offset: uint32(at),
		Line:   uint32(s.line),
		Column: uint32(s.column(at)),
	}
	return s.token(KindError, "", at)
}

func (s *Scanner) token(kind Kind, text string, at int) Token {
	return Token{
		Kind:   kind,
		Text:   text,
		Offset: uint32(at),
		Line:   uint32(s.line),
		Column: uint32(s.column(at)),
	}
}

// column is 1-based.
func (s *Scanner) column(at int) int {
	return at - s.lineStart + 1
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
