package parser

import (
	"protoc3/internal/ast"
	"protoc3/internal/lexer"
	"protoc3/internal/predicate"
)

// parseMapField parses:
//
//	'map' '<' keyType ',' type '>' mapName '=' fieldNumber [ '[' fieldOptions ']' ] ;
//
// returning a Field node (the map shape is distinguished by its Map child,
// which holds MapKey and MapValue grandchildren) rather than a dedicated
// top-level kind, keeping map fields interchangeable with ordinary fields
// wherever a message body iterates its Field children. An Identifier child
// repeating the map field's name is attached before the Map child.
func (p *Parser) parseMapField() *ast.Node {
	p.advance() // 'map'

	open := p.advance()
	if !(open.Kind == lexer.Control && open.Lexeme == "<") {
		p.errorAt("expected '<' after 'map'", open)
		return nil
	}

	keyTok := p.peek()
	if !(keyTok.Kind == lexer.Id && predicate.IsMapKeyType(keyTok.Lexeme)) {
		p.errorHere("invalid map key type")
		p.burnLine()
		return nil
	}
	p.advance()
	mapKey := ast.New(ast.MapKey, keyTok.Lexeme)

	comma := p.advance()
	if !(comma.Kind == lexer.Control && comma.Lexeme == ",") {
		p.errorAt("expected ',' in map type", comma)
	}

	valueType := p.parseFieldType()
	if valueType == nil {
		p.errorHere("expected a map value type")
		p.burnLine()
		return nil
	}
	mapValue := ast.New(ast.MapValue, valueType.Value())
	for _, c := range valueType.Children() {
		mapValue.AddChild(c)
	}

	closing := p.advance()
	if !(closing.Kind == lexer.Control && closing.Lexeme == ">") {
		p.errorAt("expected '>' to close map type", closing)
	}

	name := p.parseIdentifier()
	if name == nil {
		p.errorHere("expected a map field name")
		p.burnLine()
		return nil
	}

	eq := p.advance()
	if eq.Lexeme != "=" {
		p.errorAt("expected '=' in map field declaration", eq)
	}

	number := p.parseIntegerLiteral()
	if number == nil {
		p.errorHere("expected a field number")
		p.burnLine()
		return nil
	}

	node := ast.New(ast.Field, name.Value())
	node.AddChild(name)
	mapNode := ast.New(ast.Map, "")
	mapNode.AddChild(mapKey)
	mapNode.AddChild(mapValue)
	node.AddChild(mapNode)
	node.AddChild(ast.New(ast.FieldNumber, number.Value()))

	for _, opt := range p.parseFieldOptions() {
		node.AddChild(opt)
	}

	p.terminateSingleLineStatement()
	p.scoopComment(node)
	return node
}
