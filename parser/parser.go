// Package parser implements the incremental tree builder: a single
// "current node" pointer threaded through the token stream, grafting
// each new token into the growing AST according to operator precedence
// (via a parent-link climb), parenthesis/function scoping, and in-place
// paren splicing. Precedence lives in the token attribute table, not in
// recursive-descent call depth.
package parser

import (
	"axioncore/ast"
	"axioncore/axerr"
	"axioncore/token"
	"axioncore/tokenizer"
	"axioncore/value"
	"axioncore/varset"
)

// Builder holds the incremental parse state for one expression.
type Builder struct {
	expr            string
	dt              value.DataType
	cfg             tokenizer.Config
	root            *ast.Node
	current         *ast.Node
	vars            *varset.Set
	operandExpected bool
	pos             int
}

// NewBuilder creates a Builder for expr under the given data type and
// tokenizer configuration. The returned Builder owns a single UNDEF
// placeholder root node until the first token is read.
func NewBuilder(expr string, dt value.DataType, cfg tokenizer.Config) *Builder {
	root := ast.New(token.UNDEF)
	return &Builder{
		expr:            expr,
		dt:              dt,
		cfg:             cfg,
		root:            root,
		current:         root,
		vars:            varset.New(),
		operandExpected: true,
	}
}

// Build consumes the entire expression, returning the finished AST root
// and the variable-index set, or the first error encountered.
func (b *Builder) Build() (*ast.Node, *varset.Set, *axerr.Error) {
	for {
		tok, tokStart, newPos, done, err := tokenizer.Next(b.expr, b.pos, b.dt, b.cfg, b.operandExpected)
		if err != nil {
			return nil, nil, err
		}
		if done {
			break
		}
		b.pos = newPos
		if err := b.insert(tok, tokStart); err != nil {
			return nil, nil, err
		}
	}
	return b.finish()
}

// insert classifies and grafts a single token into the tree.
func (b *Builder) insert(tok tokenizer.Token, tokStart int) *axerr.Error {
	if err := b.classify(tok, tokStart); err != nil {
		return err
	}

	if tok.Kind == token.PAREN_RIGHT {
		return b.closeParen(tokStart)
	}

	if tok.Kind == token.VAR {
		if err := b.vars.Insert(int(tok.Value.Int64())); err != nil {
			return err
		}
	}

	if b.current.Kind == token.UNDEF {
		b.current.Kind = tok.Kind
		b.current.Value = tok.Value
		b.operandExpected = operandExpectedAfter(tok.Kind)
		return nil
	}

	if tok.Kind.Category() == token.CatBinaryOp {
		b.insertBinary(tok)
	} else {
		b.insertChild(tok)
	}
	b.operandExpected = operandExpectedAfter(tok.Kind)
	return nil
}

// classify checks the token against the current node's state: a full
// node must be followed by an operator or a closing paren, an unfilled
// one by something operand-like. The UNDEF placeholder is
// treated as perpetually value-expecting (filled 0 of a virtual arity
// 1) since it represents "no token read yet", a state the generic
// arity table (declared arity 0) does not model on its own.
func (b *Builder) classify(tok tokenizer.Token, tokStart int) *axerr.Error {
	cur := b.current
	filled := cur.FilledArity()
	declared := cur.Kind.Arity()
	if cur.Kind == token.UNDEF {
		filled, declared = 0, 1
	}

	if tok.Kind == token.PAREN_RIGHT {
		if cur.Kind.IsOperator() && filled < declared {
			return axerr.New(axerr.Token, "missing value", b.expr, tokStart)
		}
		return nil
	}

	valueLike := tok.Kind.IsValueLike()
	if filled == declared {
		if valueLike {
			return axerr.New(axerr.Token, "missing operator", b.expr, tokStart)
		}
		return nil
	}
	if !valueLike {
		return axerr.New(axerr.Token, "missing value", b.expr, tokStart)
	}
	return nil
}

// insertBinary grafts a binary-operator node via the precedence climb:
// walk parent links from current while the parent exists, is not a
// PAREN_LEFT or function, and binds at least as tightly as the new
// token. The new node adopts the walk's stopping point as its left
// child and splices into that point's former position.
func (b *Builder) insertBinary(tok tokenizer.Token) {
	newNode := &ast.Node{Kind: tok.Kind, Value: tok.Value}
	stop := b.current
	for stop.Parent != nil {
		p := stop.Parent
		if isScope(p) || p.Kind.Precedence() < newNode.Kind.Precedence() {
			break
		}
		stop = p
	}
	oldParent := stop.Parent
	newNode.Left = stop
	stop.Parent = newNode
	if oldParent == nil {
		newNode.Parent = nil
		b.root = newNode
	} else {
		newNode.Parent = oldParent
		if oldParent.Left == stop {
			oldParent.Left = newNode
		} else {
			oldParent.Right = newNode
		}
	}
	b.current = newNode
}

// insertChild attaches a value, variable, left-paren, unary-op, or
// function token as the current node's next empty child.
func (b *Builder) insertChild(tok tokenizer.Token) {
	newNode := &ast.Node{Kind: tok.Kind, Value: tok.Value}
	b.current.SetChild(newNode)
	b.current = newNode
}

// closeParen handles a right parenthesis; it does not create a node.
func (b *Builder) closeParen(tokStart int) *axerr.Error {
	match := b.current
	if isScope(match) {
		// A scope node is current either freshly opened (empty, an
		// error) or just closed by the previous right paren; a closed
		// scope is transparent to this one.
		if match.Left == nil {
			return axerr.New(axerr.Token, "empty parenthesis", b.expr, tokStart)
		}
		match = match.Parent
	}
	for match != nil && !isScope(match) {
		match = match.Parent
	}
	if match == nil {
		return axerr.New(axerr.Token, "unbalanced parenthesis", b.expr, tokStart)
	}
	if match.Left == nil {
		return axerr.New(axerr.Token, "empty parenthesis", b.expr, tokStart)
	}
	if match.Kind == token.PAREN_LEFT {
		child := match.Left
		match.Kind = child.Kind
		match.Value = child.Value
		match.Left = child.Left
		match.Right = child.Right
		if match.Left != nil {
			match.Left.Parent = match
		}
		if match.Right != nil {
			match.Right.Parent = match
		}
	}
	// Function nodes are not spliced; they remain as operator nodes
	// with one argument.
	b.current = match
	b.operandExpected = false
	return nil
}

// finish validates the tree once the input is exhausted.
func (b *Builder) finish() (*ast.Node, *varset.Set, *axerr.Error) {
	cur := b.current
	filled := cur.FilledArity()
	declared := cur.Kind.Arity()
	if cur.Kind == token.UNDEF {
		filled, declared = 0, 1
	}
	if filled < declared {
		return nil, nil, axerr.New(axerr.Token, "incomplete expression", b.expr, len(b.expr))
	}
	start := cur
	if isScope(cur) {
		// A full scope node at the end was closed by its right paren
		// (an open one still awaiting its argument failed the arity
		// check above); only scopes strictly above it are unclosed.
		start = cur.Parent
	}
	for n := start; n != nil; n = n.Parent {
		if isScope(n) {
			return nil, nil, axerr.New(axerr.Token, "unclosed parenthesis", b.expr, len(b.expr))
		}
	}
	return cur.Root(), b.vars, nil
}

// isScope reports whether n opens a parenthesis scope: a left paren or
// a function node.
func isScope(n *ast.Node) bool {
	return n.Kind == token.PAREN_LEFT || n.Kind.Category() == token.CatFunc
}

// operandExpectedAfter reports whether, having just inserted a node of
// the given kind (not a splice result — a freshly read token), the
// builder now expects an operand or an operator next.
func operandExpectedAfter(k token.Kind) bool {
	switch k.Category() {
	case token.CatValue:
		return false
	case token.CatBinaryOp, token.CatUnaryOp, token.CatFunc:
		return true
	case token.CatParen:
		return true // PAREN_LEFT: its content hasn't been read yet
	}
	return true
}
