package parser

import (
	"protoc3/internal/ast"
	"protoc3/internal/lexer"
	"protoc3/internal/predicate"
)

// parseField parses:
//
//	[ 'repeated' ] type fieldName '=' fieldNumber [ '[' fieldOptions ']' ] ;
//
// returning a Field node whose value is the field's name, with a Type child
// (value holds the type name; it carries a nested UserType child when the
// type is a message or enum reference rather than a scalar), an Identifier child repeating the
// field's name, a FieldNumber child, an optional leading Repeated child, and
// zero or more Option children.
func (p *Parser) parseField() *ast.Node {
	var repeated *ast.Node
	if tok := p.peek(); tok.Kind == lexer.Id && predicate.IsRepeated(tok.Lexeme) {
		p.advance()
		repeated = ast.New(ast.Repeated, "repeated")
	}

	fieldType := p.parseFieldType()
	if fieldType == nil {
		p.errorHere("expected a field type")
		p.burnLine()
		return nil
	}

	name := p.parseIdentifier()
	if name == nil {
		p.errorHere("expected a field name")
		p.burnLine()
		return nil
	}

	eq := p.advance()
	if eq.Lexeme != "=" {
		p.errorAt("expected '=' in field declaration", eq)
	}

	number := p.parseIntegerLiteral()
	if number == nil {
		p.errorHere("expected a field number")
		p.burnLine()
		return nil
	}

	node := ast.New(ast.Field, name.Value())
	if repeated != nil {
		node.AddChild(repeated)
	}
	node.AddChild(fieldType)
	node.AddChild(name)
	fieldNumber := ast.New(ast.FieldNumber, number.Value())
	node.AddChild(fieldNumber)

	for _, opt := range p.parseFieldOptions() {
		node.AddChild(opt)
	}

	p.terminateSingleLineStatement()
	p.scoopComment(node)
	return node
}

// parseFieldType parses a basic type or a (possibly dotted) message/enum
// reference, returning a Type node. References get a nested UserType child
// holding the same name, distinguishing them from scalar types without
// needing a separate node kind.
func (p *Parser) parseFieldType() *ast.Node {
	tok := p.peek()
	if tok.Kind == lexer.Id && predicate.IsBasicType(tok.Lexeme) {
		p.advance()
		return ast.New(ast.Type, tok.Lexeme)
	}

	name := p.parseFullIdentifier()
	if name == nil {
		return nil
	}
	typeNode := ast.New(ast.Type, name.Value())
	typeNode.AddChild(ast.New(ast.UserType, name.Value()))
	return typeNode
}
