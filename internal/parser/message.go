package parser

import (
	"protoc3/internal/ast"
	"protoc3/internal/lexer"
	"protoc3/internal/predicate"
)

// parseMessage parses:
//
//	message messageName messageBody
//	messageBody = '{' { field | enum | message | oneof | mapField |
//	              reserved | option | emptyStatement | comment } '}'
//
// returning a Message node whose value is the message's name and whose
// first child is an Identifier repeating that name. Nested messages and
// enums are ordinary children distinguished by their own Kind, so a message
// body is simply walked, not typed, by callers.
func (p *Parser) parseMessage() *ast.Node {
	p.advance() // 'message'

	name := p.parseIdentifier()
	if name == nil {
		p.errorHere("expected a message name")
		p.burnLine()
		return nil
	}

	node := ast.New(ast.Message, name.Value())
	node.AddChild(name)

	open := p.advance()
	if !(open.Kind == lexer.Control && open.Lexeme == "{") {
		p.errorAt("expected '{' to open message body", open)
		return node
	}

	for {
		tok := p.peek()
		if p.isAtEnd() {
			p.errorAt("unterminated message body", open)
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
		child := p.parseMessageBodyStatement(tok)
		if child != nil {
			node.AddChild(child)
		}

		// Progress guarantee: every branch below either consumes at least
		// one token or falls into the default error branch, which does;
		// this guard exists so a future branch that forgets to advance
		// can't spin the parser forever on a malformed body.
		if p.pos == before {
			p.advance()
		}
	}

	p.scoopComment(node)
	return node
}

func (p *Parser) parseMessageBodyStatement(tok lexer.Token) *ast.Node {
	switch {
	case tok.Kind == lexer.Comment && predicate.IsInlineComment(tok.Lexeme):
		return p.parseInlineComment()
	case tok.Kind == lexer.Comment && predicate.IsMultilineCommentOpen(tok.Lexeme):
		return p.parseBlockComment()
	case tok.Kind == lexer.Control && predicate.IsEmptyStatement(tok.Lexeme):
		p.advance()
		return nil
	case tok.Kind != lexer.Id:
		p.errorHere("unexpected token in message body")
		p.advance()
		return nil
	case predicate.IsOption(tok.Lexeme):
		return p.parseOption()
	case predicate.IsEnum(tok.Lexeme):
		return p.parseEnum()
	case predicate.IsMessage(tok.Lexeme):
		return p.parseMessage()
	case predicate.IsOneof(tok.Lexeme):
		return p.parseOneof()
	case predicate.IsReserved(tok.Lexeme):
		return p.parseReserved()
	case predicate.IsMap(tok.Lexeme):
		return p.parseMapField()
	case predicate.IsFieldStart(tok.Lexeme):
		return p.parseField()
	default:
		p.errorHere("unrecognized message member: " + tok.Lexeme)
		p.advance()
		return nil
	}
}
