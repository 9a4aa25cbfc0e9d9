package parser

import "protoc3/internal/ast"

// parseSyntax parses:
//
//	syntax = "proto3" ;
//
// returning a Syntax node whose value is the unquoted proto version string.
func (p *Parser) parseSyntax() *ast.Node {
	p.advance() // 'syntax'

	eq := p.advance()
	if eq.Lexeme != "=" {
		p.errorAt("expected '=' after 'syntax'", eq)
	}

	version := p.parseStringLiteral()
	if version == nil {
		p.errorHere("expected a quoted proto version string")
		p.burnLine()
		return nil
	}

	node := ast.New(ast.Syntax, version.Value())

	p.terminateSingleLineStatement()
	p.scoopComment(node)
	return node
}
