package parser

import (
	"strconv"

	"protoc3/internal/ast"
	"protoc3/internal/collections/stack"
	"protoc3/internal/lexer"
)

// parseReserved parses:
//
//	reserved ( ranges | fieldNames ) ;
//	ranges = range { ',' range }
//	range  = intLit [ 'to' intLit ]
//	fieldNames = strLit { ',' strLit }
//
// The grammar reproduced in spec.md §6 has no "to max" open-ended form, so
// none is accepted here: "max" simply fails to parse as the range's end
// value and is reported like any other malformed range.
//
// Numeric reservations are flattened into one ordered IntegerLiteral child
// per reserved number (so "reserved 2, 15, 9 to 11;" yields 2, 15, 9, 10,
// 11). String-named reservations yield one StringLiteral child per name.
// The two forms are not mixed within a single declaration.
func (p *Parser) parseReserved() *ast.Node {
	p.advance() // 'reserved'

	node := ast.New(ast.Reserved, "")

	if p.peek().Kind == lexer.String {
		p.parseReservedNames(node)
	} else {
		p.parseReservedRanges(node)
	}

	p.terminateSingleLineStatement()
	p.scoopComment(node)
	return node
}

func (p *Parser) parseReservedNames(node *ast.Node) {
	for {
		name := p.parseStringLiteral()
		if name == nil {
			p.errorHere("expected a reserved field name")
			p.burnLine()
			return
		}
		node.AddChild(name)

		if p.peek().Kind == lexer.Control && p.peek().Lexeme == "," {
			p.advance()
			continue
		}
		break
	}
}

func (p *Parser) parseReservedRanges(node *ast.Node) {
	numbers := stack.New[int64]()

	for {
		start := p.parseIntegerLiteral()
		if start == nil {
			p.errorHere("expected a reserved field number")
			p.burnLine()
			return
		}
		lo, err := strconv.ParseInt(start.Value(), 10, 64)
		if err != nil {
			p.errorHere("invalid reserved field number")
			return
		}

		hi := lo
		if p.peek().Kind == lexer.Id && p.peek().Lexeme == "to" {
			p.advance()
			end := p.parseIntegerLiteral()
			if end == nil {
				p.errorHere("expected an end value for reserved range")
				p.burnLine()
				return
			}
			hi, err = strconv.ParseInt(end.Value(), 10, 64)
			if err != nil {
				p.errorHere("invalid reserved range end")
				return
			}
		}

		for n := lo; n <= hi; n++ {
			numbers.Push(n)
		}

		if p.peek().Kind == lexer.Control && p.peek().Lexeme == "," {
			p.advance()
			continue
		}
		break
	}

	for _, n := range numbers.Drain() {
		node.AddChild(ast.New(ast.IntegerLiteral, strconv.FormatInt(n, 10)))
	}
}
