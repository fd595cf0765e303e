// Package tokenizer implements lexical analysis for the expression
// core. Unlike a whole-string scanner it reads one token at a time from
// a cursor into the input, because the builder's context-sensitive
// handling of unary vs. binary '-' needs to interleave with parsing:
// the builder threads an "operand expected next" flag into each call,
// and '-' tokenizes to NEG exactly when that flag is set.
package tokenizer

import (
	"strconv"

	"axioncore/axerr"
	"axioncore/token"
	"axioncore/value"
)

// Config carries the configurable variable-reference characters. The
// zero value is invalid; use DefaultConfig.
type Config struct {
	VarFlag  byte // default '$'
	VarStart byte // default '{'
	VarEnd   byte // default '}'
}

// DefaultConfig returns the default variable-reference alphabet:
// '$' flag, '{' start, '}' end.
func DefaultConfig() Config {
	return Config{VarFlag: '$', VarStart: '{', VarEnd: '}'}
}

// Token is one lexical unit: a kind plus, for NUM and VAR, a value
// payload (the literal or the zero-based variable index).
type Token struct {
	Kind  token.Kind
	Value value.Number
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}
func isLetter(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }

// Next reads one token starting at pos, skipping leading whitespace.
// dt selects number-literal parsing rules; operandExpected tells Next
// whether the builder is waiting for an operand (so that '-' tokenizes
// as NEG) or an operator (so that '-' tokenizes as MINUS).
//
// It returns the token, the offset where the token actually starts
// (past skipped whitespace, for caret diagnostics), the cursor just
// past what it consumed, and done=true if the input is exhausted.
func Next(expr string, pos int, dt value.DataType, cfg Config, operandExpected bool) (tok Token, tokStart, newPos int, done bool, err *axerr.Error) {
	i := pos
	for i < len(expr) && isSpace(expr[i]) {
		i++
	}
	if i >= len(expr) {
		return Token{}, i, i, true, nil
	}

	ch := expr[i]

	switch {
	case isDigit(ch) || (dt == value.Double && (ch == '.' || ch == 'i' || ch == 'I' || ch == 'n' || ch == 'N')):
		t, end, e := tokenizeNumber(expr, i, dt)
		return t, i, end, false, e

	case ch == cfg.VarFlag:
		t, end, e := tokenizeVar(expr, i, cfg)
		return t, i, end, false, e

	case ch == '+':
		return Token{Kind: token.PLUS}, i, i + 1, false, nil
	case ch == '*':
		return Token{Kind: token.MUL}, i, i + 1, false, nil
	case ch == '/':
		return Token{Kind: token.DIV}, i, i + 1, false, nil
	case ch == '^':
		return Token{Kind: token.POW}, i, i + 1, false, nil
	case ch == '(':
		return Token{Kind: token.PAREN_LEFT}, i, i + 1, false, nil
	case ch == ')':
		return Token{Kind: token.PAREN_RIGHT}, i, i + 1, false, nil

	case ch == '-':
		if operandExpected {
			return Token{Kind: token.NEG}, i, i + 1, false, nil
		}
		return Token{Kind: token.MINUS}, i, i + 1, false, nil

	case ch == '&':
		if i+1 < len(expr) && expr[i+1] == '&' {
			return Token{Kind: token.AND}, i, i + 2, false, nil
		}
		return Token{}, i, i, false, axerr.New(axerr.Token, "unrecognised token", expr, i)

	case ch == '|':
		if i+1 < len(expr) && expr[i+1] == '|' {
			return Token{Kind: token.OR}, i, i + 2, false, nil
		}
		return Token{}, i, i, false, axerr.New(axerr.Token, "unrecognised token", expr, i)

	case ch == '=':
		if i+1 < len(expr) && expr[i+1] == '=' {
			return Token{Kind: token.EQ}, i, i + 2, false, nil
		}
		return Token{}, i, i, false, axerr.New(axerr.Token, "unrecognised token", expr, i)

	case ch == '!':
		if i+1 < len(expr) && expr[i+1] == '=' {
			return Token{Kind: token.NEQ}, i, i + 2, false, nil
		}
		return Token{Kind: token.NOT}, i, i + 1, false, nil

	case ch == '>':
		if i+1 < len(expr) && expr[i+1] == '=' {
			return Token{Kind: token.GE}, i, i + 2, false, nil
		}
		return Token{Kind: token.GT}, i, i + 1, false, nil

	case ch == '<':
		if i+1 < len(expr) && expr[i+1] == '=' {
			return Token{Kind: token.LE}, i, i + 2, false, nil
		}
		return Token{Kind: token.LT}, i, i + 1, false, nil

	case matchFunc(expr, i, "sqrt("):
		return Token{Kind: token.SQRT}, i, i + len("sqrt("), false, nil
	case matchFunc(expr, i, "ln("):
		return Token{Kind: token.LN}, i, i + len("ln("), false, nil
	case matchFunc(expr, i, "log("):
		return Token{Kind: token.LOG}, i, i + len("log("), false, nil

	default:
		return Token{}, i, i, false, axerr.New(axerr.Token, "unrecognised token", expr, i)
	}
}

func matchFunc(expr string, i int, name string) bool {
	return i+len(name) <= len(expr) && expr[i:i+len(name)] == name
}

// tokenizeNumber consumes the maximal prefix starting at i that parses
// as a number literal under dt: a base-10 integer under Long, a decimal
// floating-point literal including inf/nan and exponent forms under
// Double.
func tokenizeNumber(expr string, i int, dt value.DataType) (Token, int, *axerr.Error) {
	if dt == value.Long {
		j := i
		for j < len(expr) && isDigit(expr[j]) {
			j++
		}
		if j == i {
			return Token{}, i, axerr.New(axerr.Token, "unrecognised token", expr, i)
		}
		n, convErr := strconv.ParseInt(expr[i:j], 10, 64)
		if convErr != nil {
			return Token{}, i, axerr.New(axerr.Token, "number literal not parseable", expr, i)
		}
		return Token{Kind: token.NUM, Value: value.Int(n)}, j, nil
	}

	// DOUBLE: scan a permissive candidate window, then shrink until the
	// longest prefix that strconv.ParseFloat accepts is found.
	j := i
	for j < len(expr) {
		c := expr[j]
		if isDigit(c) || c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-' || isLetter(c) {
			j++
			continue
		}
		break
	}
	for end := j; end > i; end-- {
		candidate := expr[i:end]
		f, convErr := strconv.ParseFloat(candidate, 64)
		if convErr == nil {
			return Token{Kind: token.NUM, Value: value.Float(f)}, end, nil
		}
	}
	return Token{}, i, axerr.New(axerr.Token, "unrecognised token", expr, i)
}

// tokenizeVar consumes a $N or ${N} variable reference starting at the
// '$' (or configured flag character) at position i.
func tokenizeVar(expr string, i int, cfg Config) (Token, int, *axerr.Error) {
	if i+1 < len(expr) && expr[i+1] >= '1' && expr[i+1] <= '9' {
		idx := int(expr[i+1]-'0') - 1
		return Token{Kind: token.VAR, Value: value.Index(idx)}, i + 2, nil
	}

	if i+1 < len(expr) && expr[i+1] == cfg.VarStart {
		j := i + 2
		start := j
		for j < len(expr) && isDigit(expr[j]) {
			j++
		}
		if j == start || j >= len(expr) || expr[j] != cfg.VarEnd {
			return Token{}, i, axerr.New(axerr.Token, "invalid variable reference", expr, i)
		}
		n, convErr := strconv.ParseUint(expr[start:j], 10, 31)
		if convErr != nil {
			return Token{}, i, axerr.New(axerr.Token, "variable index overflow", expr, i)
		}
		if n == 0 {
			return Token{}, i, axerr.New(axerr.Token, "zero or missing variable index", expr, i)
		}
		return Token{Kind: token.VAR, Value: value.Index(int(n) - 1)}, j + 1, nil
	}

	return Token{}, i, axerr.New(axerr.Token, "unrecognised token", expr, i)
}
