// Package parser implements the proto3 recursive-descent syntax analyzer:
// it consumes the lexer's token stream and builds an AST, recording
// diagnostics instead of aborting when a construct is malformed.
package parser

import (
	"protoc3/internal/ast"
	"protoc3/internal/lexer"
	"protoc3/internal/predicate"
	"protoc3/internal/report"
)

// Parser walks a token stream exactly once, left to right. It never backs
// up past the current position; productions that fail simply stop
// consuming and return nil, leaving the next token for the caller's next
// attempt.
type Parser struct {
	tokens []lexer.Token
	pos    int
	diags  report.Diagnostics
}

// New builds a Parser over src's token stream.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Analyze runs the full top-level grammar over the token stream and returns
// the resulting AST with any diagnostics attached.
//
//	while tokens remain:
//	    stmt = parse_top_level_statement(root)
//	    if stmt is not null: root.add_child(stmt)
//	root.attach_errors(collected_errors)
//	return root
func Analyze(src []byte) *ast.RootNode {
	p := New(lexer.Tokenize(src))
	root := ast.NewRoot()

	for !p.isAtEnd() {
		stmt := p.parseTopLevelStatement()
		if stmt != nil {
			root.AddChild(stmt)
		}
	}

	root.AttachErrors(p.diags.List())
	return root
}

func (p *Parser) isAtEnd() bool {
	return p.pos >= len(p.tokens)
}

// peek returns the current token without consuming it. Past the end of the
// stream it returns a synthetic EndLine token so callers never index out of
// range.
func (p *Parser) peek() lexer.Token {
	if p.isAtEnd() {
		return lexer.Token{Kind: lexer.EndLine, Lexeme: "\n"}
	}
	return p.tokens[p.pos]
}

// peekAt looks ahead n tokens without consuming anything.
func (p *Parser) peekAt(n int) lexer.Token {
	idx := p.pos + n
	if idx < 0 || idx >= len(p.tokens) {
		return lexer.Token{Kind: lexer.EndLine, Lexeme: "\n"}
	}
	return p.tokens[idx]
}

// advance consumes and returns the current token.
func (p *Parser) advance() lexer.Token {
	tok := p.peek()
	if !p.isAtEnd() {
		p.pos++
	}
	return tok
}

// errorAt records a diagnostic pinned to a specific token.
func (p *Parser) errorAt(message string, tok lexer.Token) {
	p.diags.Add(message, &tok)
}

// errorHere records a diagnostic pinned to the current token.
func (p *Parser) errorHere(message string) {
	p.errorAt(message, p.peek())
}

// burnLine discards tokens up to and including the next EndLine, the
// recovery strategy for an unrecognized top-level statement.
func (p *Parser) burnLine() {
	for !p.isAtEnd() && p.peek().Kind != lexer.EndLine {
		p.advance()
	}
	if !p.isAtEnd() {
		p.advance()
	}
}

// dumpEndline consumes a trailing EndLine token if present; it is a no-op
// otherwise.
func (p *Parser) dumpEndline() {
	if p.peek().Kind == lexer.EndLine {
		p.advance()
	}
}

// terminateSingleLineStatement consumes the next token and reports an error
// if it isn't ';'. It never aborts the calling production.
func (p *Parser) terminateSingleLineStatement() {
	tok := p.advance()
	if !predicate.IsEmptyStatement(tok.Lexeme) {
		p.errorAt("expected ';'", tok)
	}
}

// scoopComment appends a trailing inline comment to parent, if the current
// token opens one. It is a no-op otherwise.
func (p *Parser) scoopComment(parent *ast.Node) {
	tok := p.peek()
	if tok.Kind == lexer.Comment && predicate.IsInlineComment(tok.Lexeme) {
		parent.AddChild(p.parseInlineComment())
	}
}

// parseTopLevelStatement dispatches on the current token's lexeme and
// builds one top-level construct. An unrecognized first token is a syntax
// error recovered by burning the rest of the line.
func (p *Parser) parseTopLevelStatement() *ast.Node {
	tok := p.peek()

	if tok.Kind == lexer.EndLine {
		p.advance()
		return nil
	}

	if tok.Kind != lexer.Comment && tok.Kind != lexer.Id {
		p.errorHere("invalid top level statement")
		p.burnLine()
		return nil
	}

	switch {
	case predicate.IsInlineComment(tok.Lexeme):
		return p.parseInlineComment()
	case predicate.IsMultilineCommentOpen(tok.Lexeme):
		return p.parseBlockComment()
	case predicate.IsSyntax(tok.Lexeme):
		return p.parseSyntax()
	case predicate.IsImport(tok.Lexeme):
		return p.parseImport()
	case predicate.IsPackage(tok.Lexeme):
		return p.parsePackage()
	case predicate.IsOption(tok.Lexeme):
		return p.parseOption()
	case predicate.IsEnum(tok.Lexeme):
		return p.parseEnum()
	case predicate.IsService(tok.Lexeme):
		return p.parseService()
	case predicate.IsMessage(tok.Lexeme):
		return p.parseMessage()
	default:
		p.errorHere("unrecognized top level identifier: " + tok.Lexeme)
		p.burnLine()
		return nil
	}
}
