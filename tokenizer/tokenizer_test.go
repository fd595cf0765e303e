package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"axioncore/token"
	"axioncore/value"
)

func TestNext_Numbers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		dt    value.DataType
		want  Token
	}{
		{"long integer", "42", value.Long, Token{Kind: token.NUM, Value: value.Int(42)}},
		{"double integer", "42", value.Double, Token{Kind: token.NUM, Value: value.Float(42)}},
		{"double decimal", "3.14", value.Double, Token{Kind: token.NUM, Value: value.Float(3.14)}},
		{"double scientific", "1.5e-10", value.Double, Token{Kind: token.NUM, Value: value.Float(1.5e-10)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, _, done, err := Next(tt.input, 0, tt.dt, DefaultConfig(), true)
			assert.Nil(t, err)
			assert.False(t, done)
			assert.Equal(t, tt.want.Kind, got.Kind)
			if tt.dt == value.Long {
				assert.Equal(t, tt.want.Value.Int64(), got.Value.Int64())
			} else {
				assert.InDelta(t, tt.want.Value.Float64(), got.Value.Float64(), 1e-9)
			}
		})
	}
}

func TestNext_Variables(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"shorthand", "$1", 0},
		{"shorthand high digit", "$9", 8},
		{"braced", "${1}", 0},
		{"braced multi digit", "${12}", 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, _, done, err := Next(tt.input, 0, value.Long, DefaultConfig(), true)
			assert.Nil(t, err)
			assert.False(t, done)
			assert.Equal(t, token.VAR, got.Kind)
			assert.Equal(t, int64(tt.want), got.Value.Int64())
		})
	}
}

func TestNext_VariableErrors(t *testing.T) {
	tests := []struct{ name, input string }{
		{"zero index", "${0}"},
		{"unterminated", "${1"},
		{"empty braces", "${}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, _, err := Next(tt.input, 0, value.Long, DefaultConfig(), true)
			assert.NotNil(t, err)
		})
	}
}

func TestNext_MinusContext(t *testing.T) {
	tests := []struct {
		name            string
		operandExpected bool
		want            token.Kind
	}{
		{"operand expected yields NEG", true, token.NEG},
		{"operator expected yields MINUS", false, token.MINUS},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, _, _, err := Next("-5", 0, value.Long, DefaultConfig(), tt.operandExpected)
			assert.Nil(t, err)
			assert.Equal(t, tt.want, got.Kind)
		})
	}
}

func TestNext_TwoCharOperators(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  token.Kind
	}{
		{"and", "&&", token.AND},
		{"or", "||", token.OR},
		{"eq", "==", token.EQ},
		{"neq", "!=", token.NEQ},
		{"not", "!", token.NOT},
		{"ge", ">=", token.GE},
		{"gt", ">", token.GT},
		{"le", "<=", token.LE},
		{"lt", "<", token.LT},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, _, _, err := Next(tt.input, 0, value.Long, DefaultConfig(), true)
			assert.Nil(t, err)
			assert.Equal(t, tt.want, got.Kind)
		})
	}
}

func TestNext_LoneEqualsIsError(t *testing.T) {
	_, _, _, _, err := Next("=5", 0, value.Long, DefaultConfig(), true)
	assert.NotNil(t, err)
}

func TestNext_Functions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  token.Kind
	}{
		{"sqrt", "sqrt(4)", token.SQRT},
		{"ln", "ln(1)", token.LN},
		{"log", "log(100)", token.LOG},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, newPos, _, err := Next(tt.input, 0, value.Long, DefaultConfig(), true)
			assert.Nil(t, err)
			assert.Equal(t, tt.want, got.Kind)
			assert.Greater(t, newPos, 0)
		})
	}
}

func TestNext_WhitespaceSkippedAndDone(t *testing.T) {
	_, tokStart, _, done, err := Next("   ", 0, value.Long, DefaultConfig(), true)
	assert.Nil(t, err)
	assert.True(t, done)
	assert.Equal(t, 3, tokStart)
}

func TestNext_UnrecognisedToken(t *testing.T) {
	_, _, _, _, err := Next("@", 0, value.Long, DefaultConfig(), true)
	assert.NotNil(t, err)
}
