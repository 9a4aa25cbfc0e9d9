package parser

import (
	"protoc3/internal/ast"
	"protoc3/internal/lexer"
	"protoc3/internal/predicate"
)

// parseImport parses:
//
//	import [ "weak" | "public" ] strLit ;
//
// returning an Import node whose value is the imported path, with an
// optional ImportModifier child when "weak" or "public" is present. Import
// resolution itself is out of scope here; this only records what was
// written.
func (p *Parser) parseImport() *ast.Node {
	p.advance() // 'import'

	var modifier *ast.Node
	if tok := p.peek(); tok.Kind == lexer.Id && predicate.IsImportModifier(tok.Lexeme) {
		p.advance()
		modifier = ast.New(ast.ImportModifier, tok.Lexeme)
	}

	path := p.parseStringLiteral()
	if path == nil {
		p.errorHere("expected a quoted import path")
		p.burnLine()
		return nil
	}

	node := ast.New(ast.Import, path.Value())
	if modifier != nil {
		node.AddChild(modifier)
	}

	p.terminateSingleLineStatement()
	p.scoopComment(node)
	return node
}
