package parser

import "protoc3/internal/ast"

// parsePackage parses:
//
//	package fullIdent ;
//
// returning a Package node whose value is the joined package path.
func (p *Parser) parsePackage() *ast.Node {
	p.advance() // 'package'

	name := p.parseFullIdentifier()
	if name == nil {
		p.errorHere("expected a package name")
		p.burnLine()
		return nil
	}

	node := ast.New(ast.Package, name.Value())

	p.terminateSingleLineStatement()
	p.scoopComment(node)
	return node
}
