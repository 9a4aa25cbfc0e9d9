package parser

import (
	"protoc3/internal/ast"
	"protoc3/internal/lexer"
	"protoc3/internal/predicate"
)

// parseEnum parses:
//
//	enum ident enumBody
//	enumBody = '{' { option | enumConstant | emptyStatement | comment } '}'
//	enumConstant = ident '=' intLit [ '[' fieldOptions ']' ] ';'
//
// returning an Enum node whose value is the enum's name and whose first
// child is an Identifier repeating that name.
func (p *Parser) parseEnum() *ast.Node {
	p.advance() // 'enum'

	name := p.parseIdentifier()
	if name == nil {
		p.errorHere("expected an enum name")
		p.burnLine()
		return nil
	}

	node := ast.New(ast.Enum, name.Value())
	node.AddChild(name)

	open := p.advance()
	if !(open.Kind == lexer.Control && open.Lexeme == "{") {
		p.errorAt("expected '{' to open enum body", open)
		return node
	}

	for {
		tok := p.peek()
		if p.isAtEnd() {
			p.errorAt("unterminated enum body", open)
			break
		}
		if tok.Kind == lexer.Control && tok.Lexeme == "}" {
			p.advance()
			break
		}
		if tok.Kind == lexer.EndLine {
			p.advance()
			continue
		}

		before := p.pos
		switch {
		case tok.Kind == lexer.Comment && predicate.IsInlineComment(tok.Lexeme):
			node.AddChild(p.parseInlineComment())
		case tok.Kind == lexer.Comment && predicate.IsMultilineCommentOpen(tok.Lexeme):
			node.AddChild(p.parseBlockComment())
		case tok.Kind == lexer.Control && predicate.IsEmptyStatement(tok.Lexeme):
			p.advance()
		case tok.Kind == lexer.Id && predicate.IsOption(tok.Lexeme):
			if opt := p.parseOption(); opt != nil {
				node.AddChild(opt)
			}
		case tok.Kind == lexer.Id && predicate.IsIdentifier(tok.Lexeme):
			if ec := p.parseEnumConstant(); ec != nil {
				node.AddChild(ec)
			}
		default:
			p.errorHere("unexpected token in enum body")
			p.advance()
		}

		// Progress guarantee: a production that consumed nothing must not
		// spin the loop forever.
		if p.pos == before {
			p.advance()
		}
	}

	p.scoopComment(node)
	return node
}

// parseEnumConstant parses a single enum value declaration.
func (p *Parser) parseEnumConstant() *ast.Node {
	name := p.parseIdentifier()
	if name == nil {
		p.errorHere("expected an enum constant name")
		p.burnLine()
		return nil
	}

	eq := p.advance()
	if eq.Lexeme != "=" {
		p.errorAt("expected '=' in enum constant", eq)
	}

	value := p.parseIntegerLiteral()
	if value == nil {
		p.errorHere("expected an integer value for enum constant")
		p.burnLine()
		return nil
	}

	node := ast.New(ast.EnumConstant, name.Value())
	node.AddChild(name)
	node.AddChild(value)

	for _, opt := range p.parseFieldOptions() {
		node.AddChild(opt)
	}

	p.terminateSingleLineStatement()
	p.scoopComment(node)
	return node
}
