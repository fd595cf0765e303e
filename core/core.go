// Package core is the public entry point to the expression engine: a
// Handle owns at most one built AST plus a sticky error carrier,
// mirroring the create/build/eval/destroy/perror contract the rest of
// this module's CLI and tests drive.
package core

import (
	"fmt"
	"io"
	"strings"

	"axioncore/ast"
	"axioncore/axerr"
	"axioncore/evaluator"
	"axioncore/parser"
	"axioncore/token"
	"axioncore/tokenizer"
	"axioncore/value"
	"axioncore/varset"
)

// Handle owns one expression's parsed state. The zero value is not
// usable; construct with Create.
type Handle struct {
	dt    value.DataType
	root  *ast.Node
	vars  *varset.Set
	cfg   tokenizer.Config
	err   *axerr.Error
	built bool
}

// Create returns a fresh handle with no AST and no error.
func Create() *Handle {
	return &Handle{cfg: tokenizer.DefaultConfig()}
}

// SetConfig overrides the handle's variable-reference alphabet. Call
// before Build.
func (h *Handle) SetConfig(cfg tokenizer.Config) {
	h.cfg = cfg
}

// Build parses expr under dt and stores the resulting AST on the
// handle. It fails with axerr.Exist if the handle already owns an AST,
// or axerr.String if expr is empty or whitespace-only.
func (h *Handle) Build(expr string, dt value.DataType) *axerr.Error {
	if h.err != nil {
		return h.err
	}
	if h.built {
		h.err = axerr.New(axerr.Exist, "handle already built", "", 0)
		return h.err
	}
	if strings.TrimSpace(expr) == "" {
		h.err = axerr.New(axerr.String, "invalid expression string", "", 0)
		return h.err
	}

	b := parser.NewBuilder(expr, dt, h.cfg)
	root, vars, err := b.Build()
	if err != nil {
		h.err = err
		return err
	}

	h.dt = dt
	h.root = root
	h.vars = vars
	h.built = true
	return nil
}

// Eval evaluates the built AST against variables, writing the result
// into resultOut. variables holds values in the handle's declared
// arithmetic type (value.Int under Long, value.Float under Double) and
// must have at least Max()+1 elements if the expression references any
// variable.
func (h *Handle) Eval(variables []value.Number, resultOut *value.Number) *axerr.Error {
	if h.err != nil {
		return h.err
	}
	if !h.built {
		h.err = axerr.New(axerr.NoExp, "no expression built", "", 0)
		return h.err
	}
	if resultOut == nil {
		h.err = axerr.New(axerr.Value, "invalid result pointer", "", 0)
		return h.err
	}
	if h.vars.Max() >= 0 && len(variables) <= h.vars.Max() {
		h.err = axerr.New(axerr.Size, "variable array too short", "", 0)
		return h.err
	}

	result, err := evaluator.Eval(h.root, h.dt, variables)
	if err != nil {
		h.err = err
		return err
	}
	*resultOut = result
	return nil
}

// Destroy releases the handle's AST, variable set, and error carrier.
// The handle must not be used afterward.
func (h *Handle) Destroy() {
	h.root = nil
	h.vars = nil
	h.err = nil
	h.built = false
}

// PError writes the handle's current error, if any, to w via
// axerr.Error.Fprint.
func (h *Handle) PError(w io.Writer, prefix string) {
	h.err.Fprint(w, prefix)
}

// HasError reports whether the handle carries a non-nil error.
func (h *Handle) HasError() bool { return h.err != nil }

// DataType returns the handle's declared arithmetic type. Only
// meaningful once Build has succeeded.
func (h *Handle) DataType() value.DataType { return h.dt }

// Root exposes the built AST for callers that want to walk or print
// it directly (the tree-printing demo, notably). Returns nil before a
// successful Build.
func (h *Handle) Root() *ast.Node { return h.root }

// VarSet exposes the distinct variable indices referenced by the built
// expression.
func (h *Handle) VarSet() *varset.Set { return h.vars }

// PrintTree writes an indented textual rendering of an AST to w, one
// node per line.
func PrintTree(w io.Writer, n *ast.Node, depth int) {
	if n == nil {
		return
	}
	io.WriteString(w, strings.Repeat("  ", depth))
	io.WriteString(w, n.Kind.String())
	if n.Kind == token.NUM {
		if n.Value.Type() == value.Long {
			fmt.Fprintf(w, "(%d)", n.Value.Int64())
		} else {
			fmt.Fprintf(w, "(%g)", n.Value.Float64())
		}
	} else if n.Kind == token.VAR {
		fmt.Fprintf(w, "(%d)", n.Value.Int64())
	}
	io.WriteString(w, "\n")
	PrintTree(w, n.Left, depth+1)
	PrintTree(w, n.Right, depth+1)
}
