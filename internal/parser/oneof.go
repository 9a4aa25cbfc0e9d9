package parser

import (
	"protoc3/internal/ast"
	"protoc3/internal/lexer"
	"protoc3/internal/predicate"
)

// parseOneof parses:
//
//	oneof oneofName '{' { option | oneofField | emptyStatement | comment } '}'
//
// returning a OneOfField node whose value is the oneof's name, whose first
// child is an Identifier repeating that name, and whose remaining children
// are the fields, options and comments of its body. Fields go through
// parseField, so a 'repeated' prefix is accepted as in a message body; a map
// field is not recognized and is reported as a malformed field.
func (p *Parser) parseOneof() *ast.Node {
	p.advance() // 'oneof'

	name := p.parseIdentifier()
	if name == nil {
		p.errorHere("expected a oneof name")
		p.burnLine()
		return nil
	}

	node := ast.New(ast.OneOfField, name.Value())
	node.AddChild(name)

	open := p.advance()
	if !(open.Kind == lexer.Control && open.Lexeme == "{") {
		p.errorAt("expected '{' to open oneof body", open)
		return node
	}

	for {
		tok := p.peek()
		if p.isAtEnd() {
			p.errorAt("unterminated oneof body", open)
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
		case tok.Kind == lexer.Id && (predicate.IsFullIdentifier(tok.Lexeme) || predicate.IsBasicType(tok.Lexeme)):
			if f := p.parseField(); f != nil {
				node.AddChild(f)
			}
		default:
			p.errorHere("unexpected token in oneof body")
			p.advance()
		}

		if p.pos == before {
			p.advance()
		}
	}

	p.scoopComment(node)
	return node
}
