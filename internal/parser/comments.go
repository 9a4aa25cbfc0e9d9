package parser

import (
	"strings"

	"protoc3/internal/ast"
	"protoc3/internal/lexer"
	"protoc3/internal/predicate"
)

// parseInlineComment consumes the current '//' opener and every token up to
// (but not including) the next EndLine, joining their lexemes into a
// CommentText child. The terminating EndLine is consumed with the comment.
func (p *Parser) parseInlineComment() *ast.Node {
	opener := p.advance() // '//'
	comment := ast.New(ast.Comment, opener.Lexeme)

	var b strings.Builder
	for !p.isAtEnd() && p.peek().Kind != lexer.EndLine {
		b.WriteString(p.advance().Lexeme)
	}
	p.dumpEndline()

	comment.AddChild(ast.New(ast.CommentText, b.String()))
	return comment
}

// parseBlockComment consumes the current '/*' opener and every token up to
// and including the matching '*/', converting intervening EndLine tokens
// into newlines and dropping every other punctuation-only token. An
// unterminated block comment consumes to the end of the stream and reports
// a diagnostic.
func (p *Parser) parseBlockComment() *ast.Node {
	opener := p.advance() // '/*'
	comment := ast.New(ast.Comment, opener.Lexeme)

	var b strings.Builder
	closed := false
	for !p.isAtEnd() {
		tok := p.peek()
		if tok.Kind == lexer.Comment && predicate.IsMultilineCommentClose(tok.Lexeme) {
			p.advance()
			closed = true
			break
		}
		if tok.Kind == lexer.EndLine {
			p.advance()
			b.WriteString("\n")
			continue
		}
		if tok.Kind == lexer.Control {
			p.advance()
			continue
		}
		b.WriteString(p.advance().Lexeme)
	}

	if !closed {
		p.errorAt("unterminated block comment", opener)
	}

	comment.AddChild(ast.New(ast.CommentText, b.String()))
	return comment
}
