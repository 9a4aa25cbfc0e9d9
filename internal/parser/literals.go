package parser

import (
	"strconv"
	"strings"

	"protoc3/internal/ast"
	"protoc3/internal/lexer"
	"protoc3/internal/predicate"
)

// parseIdentifier consumes a single identifier token and returns an
// Identifier node, or leaves the stream untouched and returns nil.
func (p *Parser) parseIdentifier() *ast.Node {
	tok := p.peek()
	if tok.Kind != lexer.Id || !predicate.IsIdentifier(tok.Lexeme) {
		return nil
	}
	p.advance()
	return ast.New(ast.Identifier, tok.Lexeme)
}

// parseFullIdentifier consumes one or more '.'-joined identifiers and
// returns a single Identifier node holding the joined text, or leaves the
// stream untouched and returns nil.
func (p *Parser) parseFullIdentifier() *ast.Node {
	first := p.peek()
	if first.Kind != lexer.Id || !predicate.IsIdentifier(first.Lexeme) {
		return nil
	}
	p.advance()

	var b strings.Builder
	b.WriteString(first.Lexeme)

	for p.peek().Kind == lexer.Control && p.peek().Lexeme == "." &&
		p.peekAt(1).Kind == lexer.Id && predicate.IsIdentifier(p.peekAt(1).Lexeme) {
		p.advance() // '.'
		next := p.advance()
		b.WriteString(".")
		b.WriteString(next.Lexeme)
	}

	return ast.New(ast.Identifier, b.String())
}

// parseStringLiteral consumes a quoted string token and returns a
// StringLiteral node holding the unquoted text, or leaves the stream
// untouched and returns nil.
func (p *Parser) parseStringLiteral() *ast.Node {
	tok := p.peek()
	if tok.Kind != lexer.String || !predicate.IsStringLiteral(tok.Lexeme) {
		return nil
	}
	p.advance()
	return ast.New(ast.StringLiteral, tok.Lexeme[1:len(tok.Lexeme)-1])
}

// parseIntegerLiteral consumes a decimal, octal, or hex integer token and
// returns an IntegerLiteral node holding its base-10 value, or leaves the
// stream untouched and returns nil.
func (p *Parser) parseIntegerLiteral() *ast.Node {
	tok := p.peek()
	if tok.Kind != lexer.Numeric || !predicate.IsIntegerLiteral(tok.Lexeme) {
		return nil
	}
	p.advance()
	return ast.New(ast.IntegerLiteral, normalizeInteger(tok.Lexeme))
}

// normalizeInteger renders any base (decimal/octal/hex) integer lexeme as a
// base-10 string, so downstream range arithmetic works uniformly.
func normalizeInteger(lexeme string) string {
	value, err := strconv.ParseInt(lexeme, 0, 64)
	if err != nil {
		return lexeme
	}
	return strconv.FormatInt(value, 10)
}

// parseConstant consumes a string, integer, float, or boolean literal and
// returns the corresponding node, or leaves the stream untouched and
// returns nil. Used by option values and field options.
func (p *Parser) parseConstant() *ast.Node {
	if n := p.parseStringLiteral(); n != nil {
		return n
	}

	tok := p.peek()
	if tok.Kind == lexer.Numeric {
		if predicate.IsFloatLiteral(tok.Lexeme) {
			p.advance()
			return ast.New(ast.FloatLiteral, tok.Lexeme)
		}
		return p.parseIntegerLiteral()
	}
	if tok.Kind == lexer.Id && predicate.IsBooleanLiteral(tok.Lexeme) {
		p.advance()
		return ast.New(ast.BooleanLiteral, tok.Lexeme)
	}
	return nil
}
