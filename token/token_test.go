package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrecedenceOrdering(t *testing.T) {
	tests := []struct {
		name     string
		weaker   Kind
		stronger Kind
	}{
		{"or below and", OR, AND},
		{"and below comparison", AND, EQ},
		{"comparison below additive", LT, PLUS},
		{"additive below multiplicative", PLUS, MUL},
		{"multiplicative below power", MUL, POW},
		{"power below not", POW, NOT},
		{"not below neg", NOT, NEG},
		{"neg below function", NEG, SQRT},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Less(t, tt.weaker.Precedence(), tt.stronger.Precedence())
		})
	}
}

func TestArity(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		want int
	}{
		{"plus is binary", PLUS, 2},
		{"neg is unary", NEG, 1},
		{"sqrt is unary", SQRT, 1},
		{"num is nullary", NUM, 0},
		{"var is nullary", VAR, 0},
		{"paren left is unary", PAREN_LEFT, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.Arity())
		})
	}
}

func TestIsValueLike(t *testing.T) {
	assert.True(t, NUM.IsValueLike())
	assert.True(t, VAR.IsValueLike())
	assert.True(t, NEG.IsValueLike())
	assert.True(t, SQRT.IsValueLike())
	assert.True(t, PAREN_LEFT.IsValueLike())
	assert.False(t, PLUS.IsValueLike())
	assert.False(t, PAREN_RIGHT.IsValueLike())
}

func TestIsOperator(t *testing.T) {
	assert.True(t, PLUS.IsOperator())
	assert.True(t, NEG.IsOperator())
	assert.False(t, NUM.IsOperator())
	assert.False(t, SQRT.IsOperator())
}
