// Package parser turns a twig token stream into a forest of expression
// trees by bracket matching.
//
// Recursion mirrors a peekable-iterator descent: '(' and '[' recurse
// into a new nesting level, ')' and ']' simply break the current one.
// An unmatched closing bracket terminates the current nesting silently
// rather than raising a syntax error.
package parser

import (
	"strconv"

	"github.com/arourke/twig/internal/ast"
	"github.com/arourke/twig/internal/token"
	"github.com/arourke/twig/internal/verror"
)

// Parse tokenizes and parses source into the top-level forest of
// expression trees.
func Parse(source string) ([]ast.Node, *verror.Error) {
	tokens, err := token.Tokenize(source)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	return p.parseSequence(), nil
}

type parser struct {
	tokens []token.Token
	pos    int
}

func (p *parser) peek() token.Token {
	if p.pos >= len(p.tokens) {
		return token.Token{Kind: token.EOF}
	}
	return p.tokens[p.pos]
}

func (p *parser) advance() token.Token {
	t := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

// parseSequence consumes tokens until EOF or an unmatched closing
// bracket, returning the nodes built at this nesting level.
func (p *parser) parseSequence() []ast.Node {
	var nodes []ast.Node
	for {
		t := p.peek()
		switch t.Kind {
		case token.EOF:
			return nodes
		case token.RParen, token.RBracket:
			// Unmatched closer: silently stop this level (spec.md §9).
			p.advance()
			return nodes
		case token.LParen:
			p.advance()
			inner := p.parseSequence()
			nodes = append(nodes, ast.ListNode(inner))
		case token.LBracket:
			p.advance()
			inner := p.parseSequence()
			nodes = append(nodes, ast.ArrayNode(inner))
		case token.Number:
			p.advance()
			n, _ := strconv.ParseFloat(t.Value, 32)
			nodes = append(nodes, ast.NumberNode(n))
		case token.String:
			p.advance()
			nodes = append(nodes, ast.StringNode(t.Value))
		case token.Identifier:
			p.advance()
			nodes = append(nodes, ast.SymbolNode(t.Value))
		default:
			p.advance()
		}
	}
}
