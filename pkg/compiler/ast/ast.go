package ast

import "github.com/agenthands/strscript/pkg/compiler/lexer"

// Node represents any node in the Abstract Syntax Tree.
type Node interface {
	Pos() lexer.Token
}

// Statement represents a standalone unit of execution.
type Statement interface {
	Node
	stmtNode()
}

// Program is the root node. Statements keep source order.
type Program struct {
	Statements []Statement
}

// Declaration: NAME = string("LITERAL");
type Declaration struct {
	Name    lexer.Token
	Literal lexer.Token
}

func (d *Declaration) Pos() lexer.Token { return d.Name }
func (d *Declaration) stmtNode()        {}

// Print: print(NAME);
type Print struct {
	Token lexer.Token
	Name  lexer.Token
}

func (p *Print) Pos() lexer.Token { return p.Token }
func (p *Print) stmtNode()        {}
