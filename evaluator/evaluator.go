// Package evaluator recursively computes the value of a built AST,
// using one of two monomorphic evaluators (integer or double) selected
// once by the tree's declared data type, so no per-node type dispatch
// happens inside the recursion.
package evaluator

import (
	"math"

	"axioncore/ast"
	"axioncore/axerr"
	"axioncore/token"
	"axioncore/value"
)

// Eval walks root under dt and returns the resulting Number or the
// first evaluation error. variables holds the caller-supplied values in
// the tree's declared arithmetic type; a VAR node reads the element at
// its zero-based index, converted to the active evaluator's type.
func Eval(root *ast.Node, dt value.DataType, variables []value.Number) (value.Number, *axerr.Error) {
	if dt == value.Long {
		failed := false
		result := evalLong(root, variables, &failed)
		if failed {
			return value.Number{}, axerr.New(axerr.Eval, "evaluation error", "", 0)
		}
		return value.Int(result), nil
	}
	failed := false
	result := evalDouble(root, variables, &failed)
	if failed {
		return value.Number{}, axerr.New(axerr.Eval, "evaluation error", "", 0)
	}
	return value.Float(result), nil
}

// evalLong is the integer arithmetic path. failed is threaded through
// the recursion: once set, every remaining frame short-circuits to 0
// rather than doing further work.
func evalLong(n *ast.Node, variables []value.Number, failed *bool) int64 {
	if *failed {
		return 0
	}

	switch n.Kind {
	case token.NUM:
		return n.Value.Int64()
	case token.VAR:
		return variables[n.Value.Int64()].AsInt64()
	}

	if n.Kind.Category() == token.CatUnaryOp || n.Kind.Category() == token.CatFunc {
		operand := evalLong(n.Left, variables, failed)
		switch n.Kind {
		case token.NEG:
			return -operand
		case token.NOT:
			if operand == 0 {
				return 1
			}
			return 0
		case token.SQRT:
			return int64(math.Sqrt(float64(operand)))
		case token.LN:
			return int64(math.Log(float64(operand)))
		case token.LOG:
			return int64(math.Log10(float64(operand)))
		default:
			*failed = true
			return 0
		}
	}

	if n.Kind.Category() == token.CatBinaryOp {
		left := evalLong(n.Left, variables, failed)
		right := evalLong(n.Right, variables, failed)
		switch n.Kind {
		case token.PLUS:
			return left + right
		case token.MINUS:
			return left - right
		case token.MUL:
			return left * right
		case token.DIV:
			return left / right
		case token.POW:
			return int64(math.Pow(float64(left), float64(right)))
		case token.AND:
			return boolInt(left != 0 && right != 0)
		case token.OR:
			return boolInt(left != 0 || right != 0)
		case token.EQ:
			return boolInt(left == right)
		case token.NEQ:
			return boolInt(left != right)
		case token.LT:
			return boolInt(left < right)
		case token.LE:
			return boolInt(left <= right)
		case token.GT:
			return boolInt(left > right)
		case token.GE:
			return boolInt(left >= right)
		}
	}

	*failed = true
	return 0
}

// evalDouble is the floating-point arithmetic path, mirroring evalLong
// node for node.
func evalDouble(n *ast.Node, variables []value.Number, failed *bool) float64 {
	if *failed {
		return 0
	}

	switch n.Kind {
	case token.NUM:
		return n.Value.Float64()
	case token.VAR:
		return variables[n.Value.Int64()].AsFloat64()
	}

	if n.Kind.Category() == token.CatUnaryOp || n.Kind.Category() == token.CatFunc {
		operand := evalDouble(n.Left, variables, failed)
		switch n.Kind {
		case token.NEG:
			return -operand
		case token.NOT:
			if operand == 0 {
				return 1
			}
			return 0
		case token.SQRT:
			return math.Sqrt(operand)
		case token.LN:
			return math.Log(operand)
		case token.LOG:
			return math.Log10(operand)
		default:
			*failed = true
			return 0
		}
	}

	if n.Kind.Category() == token.CatBinaryOp {
		left := evalDouble(n.Left, variables, failed)
		right := evalDouble(n.Right, variables, failed)
		switch n.Kind {
		case token.PLUS:
			return left + right
		case token.MINUS:
			return left - right
		case token.MUL:
			return left * right
		case token.DIV:
			return left / right
		case token.POW:
			return math.Pow(left, right)
		case token.AND:
			return float64(boolInt(left != 0 && right != 0))
		case token.OR:
			return float64(boolInt(left != 0 || right != 0))
		case token.EQ:
			return float64(boolInt(left == right))
		case token.NEQ:
			return float64(boolInt(left != right))
		case token.LT:
			return float64(boolInt(left < right))
		case token.LE:
			return float64(boolInt(left <= right))
		case token.GT:
			return float64(boolInt(left > right))
		case token.GE:
			return float64(boolInt(left >= right))
		}
	}

	*failed = true
	return 0
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
