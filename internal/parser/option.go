package parser

import (
	"strings"

	"protoc3/internal/ast"
	"protoc3/internal/lexer"
)

// parseOption parses:
//
//	option optionName '=' constant ;
//
// returning an Option node whose value is the option name and whose single
// child is the constant's literal node.
func (p *Parser) parseOption() *ast.Node {
	p.advance() // 'option'

	name := p.parseOptionName()
	if name == "" {
		p.errorHere("expected an option name")
		p.burnLine()
		return nil
	}

	eq := p.advance()
	if eq.Lexeme != "=" {
		p.errorAt("expected '=' after option name", eq)
	}

	value := p.parseConstant()
	if value == nil {
		p.errorHere("expected an option value")
		p.burnLine()
		return nil
	}

	node := ast.New(ast.Option, name)
	node.AddChild(value)

	p.terminateSingleLineStatement()
	p.scoopComment(node)
	return node
}

// parseOptionName parses:
//
//	optionName = ( ident | '(' fullIdent ')' ) { '.' ident }
//
// returning the joined name, or "" if the current tokens don't form one.
func (p *Parser) parseOptionName() string {
	var b strings.Builder

	if p.peek().Kind == lexer.Control && p.peek().Lexeme == "(" {
		p.advance()
		inner := p.parseFullIdentifier()
		if inner == nil {
			return ""
		}
		closing := p.advance()
		if closing.Lexeme != ")" {
			p.errorAt("expected ')' to close option name", closing)
		}
		b.WriteString("(")
		b.WriteString(inner.Value())
		b.WriteString(")")
	} else {
		first := p.parseIdentifier()
		if first == nil {
			return ""
		}
		b.WriteString(first.Value())
	}

	for p.peek().Kind == lexer.Control && p.peek().Lexeme == "." {
		p.advance()
		ident := p.parseIdentifier()
		if ident == nil {
			break
		}
		b.WriteString(".")
		b.WriteString(ident.Value())
	}

	return b.String()
}

// parseFieldOptions parses a bracketed, comma-separated option list:
//
//	'[' optionName '=' constant { ',' optionName '=' constant } ']'
//
// returning one Option node per entry. Used by both field declarations and
// enum value declarations.
func (p *Parser) parseFieldOptions() []*ast.Node {
	if tok := p.peek(); !(tok.Kind == lexer.Control && tok.Lexeme == "[") {
		return nil
	}
	p.advance() // '['

	var opts []*ast.Node
	for {
		name := p.parseOptionName()
		if name == "" {
			p.errorHere("expected an option name")
			break
		}
		eq := p.advance()
		if eq.Lexeme != "=" {
			p.errorAt("expected '=' in field option", eq)
		}
		value := p.parseConstant()
		if value == nil {
			p.errorHere("expected a field option value")
			break
		}
		opt := ast.New(ast.Option, name)
		opt.AddChild(value)
		opts = append(opts, opt)

		if tok := p.peek(); tok.Kind == lexer.Control && tok.Lexeme == "," {
			p.advance()
			continue
		}
		break
	}

	closing := p.advance()
	if closing.Lexeme != "]" {
		p.errorAt("expected ']' to close field options", closing)
	}
	return opts
}
