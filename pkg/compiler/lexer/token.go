package lexer

import "fmt"

// Kind represents the type of token identified by the scanner.
type Kind uint8

const (
	KindEOF Kind = iota
	KindError
	KindIdentifier
	KindKeyword   // string
	KindString    // "..."
	KindEquals    // =
	KindLParen    // (
	KindRParen    // )
	KindSemicolon // ;
)

var kindNames = [...]string{
	KindEOF:        "end of input",
	KindError:      "error",
	KindIdentifier: "identifier",
	KindKeyword:    "keyword",
	KindString:     "string literal",
	KindEquals:     "'='",
	KindLParen:     "'('",
	KindRParen:     "')'",
	KindSemicolon:  "';'",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// KeywordString is the only reserved word of the language.
const KeywordString = "string"

// Token represents a lexical unit pointing back to the source.
// Text holds the identifier/keyword text, or the contents of a string
// literal without its quotes.
type Token struct {
	Kind   Kind
	Text   string
	Offset uint32
	Line   uint32
	Column uint32
}

// Pos describes where the token starts, as line:column.
func (t Token) Pos() string {
	return fmt.Sprintf("%d:%d", t.Line, t.Column)
}

func (t Token) String() string {
	switch t.Kind {
	case KindIdentifier, KindKeyword, KindString:
		return fmt.Sprintf("%s %q", t.Kind, t.Text)
	}
	return t.Kind.String()
}
