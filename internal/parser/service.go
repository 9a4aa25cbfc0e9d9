package parser

import (
	"protoc3/internal/ast"
	"protoc3/internal/lexer"
	"protoc3/internal/predicate"
)

// parseService parses:
//
//	service serviceName '{' { option | rpc | emptyStatement | comment } '}'
//
// returning a Service node whose value is the service's name and whose
// first child is an Identifier repeating that name.
func (p *Parser) parseService() *ast.Node {
	p.advance() // 'service'

	name := p.parseIdentifier()
	if name == nil {
		p.errorHere("expected a service name")
		p.burnLine()
		return nil
	}

	node := ast.New(ast.Service, name.Value())
	node.AddChild(name)

	open := p.advance()
	if !(open.Kind == lexer.Control && open.Lexeme == "{") {
		p.errorAt("expected '{' to open service body", open)
		return node
	}

	for {
		tok := p.peek()
		if p.isAtEnd() {
			p.errorAt("unterminated service body", open)
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
		case tok.Kind == lexer.Id && predicate.IsRpc(tok.Lexeme):
			if rpc := p.parseRpc(); rpc != nil {
				node.AddChild(rpc)
			}
		default:
			p.errorHere("unexpected token in service body")
			p.advance()
		}

		if p.pos == before {
			p.advance()
		}
	}

	p.scoopComment(node)
	return node
}

// parseRpc parses:
//
//	rpc rpcName '(' [ 'stream' ] messageType ')'
//	    'returns' '(' [ 'stream' ] messageType ')'
//	    ( '{' { option | emptyStatement } '}' | ';' )
//
// returning an Rpc node whose value is the method name, with an Identifier
// child repeating that name, a ServiceInputType child, and a
// ServiceReturnType child; each type child carries a leading Streaming
// child when its side of the call is streamed.
func (p *Parser) parseRpc() *ast.Node {
	p.advance() // 'rpc'

	name := p.parseIdentifier()
	if name == nil {
		p.errorHere("expected an rpc method name")
		p.burnLine()
		return nil
	}
	node := ast.New(ast.Rpc, name.Value())
	node.AddChild(name)

	input, ok := p.parseRpcMessageType(ast.ServiceInputType)
	if !ok {
		p.burnLine()
		return node
	}
	node.AddChild(input)

	returns := p.advance()
	if !predicate.IsReturns(returns.Lexeme) {
		p.errorAt("expected 'returns'", returns)
	}

	output, ok := p.parseRpcMessageType(ast.ServiceReturnType)
	if !ok {
		p.burnLine()
		return node
	}
	node.AddChild(output)

	switch tok := p.peek(); {
	case tok.Kind == lexer.Control && tok.Lexeme == ";":
		p.advance()
	case tok.Kind == lexer.Control && tok.Lexeme == "{":
		p.advance()
		p.parseRpcOptions(node)
	default:
		p.errorAt("expected ';' or '{' after rpc signature", tok)
	}

	p.scoopComment(node)
	return node
}

// parseRpcMessageType parses '(' [ 'stream' ] messageType ')' and wraps it
// in a node of the given kind.
func (p *Parser) parseRpcMessageType(kind ast.Kind) (*ast.Node, bool) {
	open := p.advance()
	if !(open.Kind == lexer.Control && open.Lexeme == "(") {
		p.errorAt("expected '('", open)
		return nil, false
	}

	var streaming *ast.Node
	if tok := p.peek(); tok.Kind == lexer.Id && predicate.IsStream(tok.Lexeme) {
		p.advance()
		streaming = ast.New(ast.Streaming, "stream")
	}

	messageType := p.parseFullIdentifier()
	if messageType == nil {
		p.errorHere("expected a message type")
		return nil, false
	}

	closing := p.advance()
	if !(closing.Kind == lexer.Control && closing.Lexeme == ")") {
		p.errorAt("expected ')'", closing)
		return nil, false
	}

	node := ast.New(kind, messageType.Value())
	if streaming != nil {
		node.AddChild(streaming)
	}
	return node, true
}

// parseRpcOptions consumes a brace-delimited body of options attached to an
// rpc method, appending each as a child of node.
func (p *Parser) parseRpcOptions(node *ast.Node) {
	for {
		tok := p.peek()
		if p.isAtEnd() {
			p.errorHere("unterminated rpc body")
			return
		}
		if tok.Kind == lexer.Control && tok.Lexeme == "}" {
			p.advance()
			return
		}
		if tok.Kind == lexer.EndLine {
			p.advance()
			continue
		}

		before := p.pos
		switch {
		case tok.Kind == lexer.Control && predicate.IsEmptyStatement(tok.Lexeme):
			p.advance()
		case tok.Kind == lexer.Id && predicate.IsOption(tok.Lexeme):
			if opt := p.parseOption(); opt != nil {
				node.AddChild(opt)
			}
		default:
			p.errorHere("unexpected token in rpc body")
			p.advance()
		}

		if p.pos == before {
			p.advance()
		}
	}
}
