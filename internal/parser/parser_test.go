package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangzhangming/topy/internal/expr"
	"github.com/tangzhangming/topy/internal/parser"
)

// parseOne 解析单条目输入
func parseOne(t *testing.T, input string) parser.Item {
	t.Helper()
	prog, errs := parser.Parse(input)
	require.Empty(t, errs)
	require.Len(t, prog.Items, 1)
	return prog.Items[0]
}

func TestParse_Atoms(t *testing.T) {
	assert.True(t, parseOne(t, "x").Expr.Equal(expr.Sym("x")))
	assert.True(t, parseOne(t, "42").Expr.Equal(expr.Int(42)))
	assert.True(t, parseOne(t, "-3").Expr.Equal(expr.Int(-3)))
	assert.True(t, parseOne(t, "2.5").Expr.Equal(expr.Rat(5, 2)))
	assert.True(t, parseOne(t, `\[Alpha]`).Expr.Equal(expr.Sym(`\[Alpha]`)))
}

func TestParse_Heads(t *testing.T) {
	cases := []struct {
		input string
		want  expr.Expr
	}{
		{"Plus[a, b]", expr.NewAdd(expr.Sym("a"), expr.Sym("b"))},
		{"Times[2, x]", expr.NewMul(expr.Int(2), expr.Sym("x"))},
		{"Power[x, 3]", expr.NewPow(expr.Sym("x"), expr.Int(3))},
		{"Rational[1, 2]", expr.Rat(1, 2)},
		{"Rational[-1, 2]", expr.Rat(-1, 2)},
		{"Sqrt[x]", expr.Sqrt(expr.Sym("x"))},
		{"Minus[x]", expr.NewNeg(expr.Sym("x"))},
		{"Subtract[a, b]", expr.NewAdd(expr.Sym("a"), expr.NewNeg(expr.Sym("b")))},
		{"Divide[a, b]", expr.NewMul(expr.Sym("a"), expr.NewPow(expr.Sym("b"), expr.Int(-1)))},
		{"List[1, x]", &expr.List{Elems: []expr.Expr{expr.Int(1), expr.Sym("x")}}},
		{"Sin[x]", expr.NewCall("Sin", expr.Sym("x"))},
		{"Gamma[x, y]", expr.NewCall("Gamma", expr.Sym("x"), expr.Sym("y"))},
	}
	for _, c := range cases {
		got := parseOne(t, c.input).Expr
		assert.True(t, got.Equal(c.want), "%s 解析为 %s", c.input, got.String())
	}
}

func TestParse_Nested(t *testing.T) {
	got := parseOne(t, "Times[Power[a, Rational[1, 2]], Power[b, Rational[1, 2]]]").Expr
	want := expr.NewMul(expr.Sqrt(expr.Sym("a")), expr.Sqrt(expr.Sym("b")))
	assert.True(t, got.Equal(want))
}

func TestParse_Definition(t *testing.T) {
	item := parseOne(t, "f[x_, y_] := Plus[x, Times[2, y]]")
	require.NotNil(t, item.Def)
	assert.Equal(t, "f", item.Def.Name)
	require.Len(t, item.Def.LHS, 2)
	assert.True(t, item.Def.LHS[0].Equal(
		expr.NewCall("Pattern", expr.Sym("x"), expr.NewCall("Blank"))))
	assert.True(t, item.Def.Body.Equal(
		expr.NewAdd(expr.Sym("x"), expr.NewMul(expr.Int(2), expr.Sym("y")))))
}

func TestParse_TypedPattern(t *testing.T) {
	item := parseOne(t, "f[x_Integer] := x")
	require.NotNil(t, item.Def)
	assert.True(t, item.Def.LHS[0].Equal(
		expr.NewCall("Pattern", expr.Sym("x"), expr.NewCall("Blank", expr.Sym("Integer")))))
}

func TestParse_MultipleItems(t *testing.T) {
	prog, errs := parser.Parse("f[x_] := x; Plus[a, b]\nSin[y]")
	require.Empty(t, errs)
	require.Len(t, prog.Items, 3)
	assert.NotNil(t, prog.Items[0].Def)
	assert.NotNil(t, prog.Items[1].Expr)
	assert.NotNil(t, prog.Items[2].Expr)
}

func TestParse_CommentsIgnored(t *testing.T) {
	got := parseOne(t, "(* half power *) Power[x, Rational[1, 2]]").Expr
	assert.True(t, got.Equal(expr.Sqrt(expr.Sym("x"))))
}

func TestParse_Errors(t *testing.T) {
	cases := []string{
		"Power[x]",          // 元数不对
		"Rational[x, 2]",    // 非整数参数
		"3 := x",            // 左端不是调用
		"[",                 // 意外 token
		"Plus[a,",           // 未闭合
		"Sqrt[x, y]",        // 元数不对
	}
	for _, input := range cases {
		_, errs := parser.Parse(input)
		assert.NotEmpty(t, errs, "输入 %q 应当报错", input)
	}
}

func TestParse_RoundTrip(t *testing.T) {
	// FullForm 输出重新解析后结构相等
	exprs := []expr.Expr{
		expr.NewAdd(expr.Sym("a"), expr.NewMul(expr.Int(3), expr.Sym("b"))),
		expr.NewMul(expr.Int(2), expr.Sqrt(expr.Sym("a"))),
		expr.NewPow(expr.Sym("x"), expr.Rat(-3, 2)),
		expr.NewNeg(expr.NewMul(expr.Sym("a"), expr.Sym("b"))),
		expr.NewCall("Gamma", expr.Sym("x"), expr.Int(2)),
		&expr.List{Elems: []expr.Expr{expr.Int(1), expr.Sqrt(expr.Sym("x"))}},
	}
	for _, e := range exprs {
		got := parseOne(t, e.String()).Expr
		assert.True(t, got.Equal(e), "%s 往返后得到 %s", e.String(), got.String())
	}
}
