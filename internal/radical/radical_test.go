package radical_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangzhangming/topy/internal/diag"
	"github.com/tangzhangming/topy/internal/expr"
	"github.com/tangzhangming/topy/internal/radical"
	"github.com/tangzhangming/topy/internal/sign"
)

func assume(t *testing.T, s string) sign.AssumptionSet {
	t.Helper()
	a, err := sign.Parse(s)
	require.NoError(t, err)
	return a
}

func TestCombine_Syntactic(t *testing.T) {
	// sqrt(a) * sqrt(b) -> sqrt(a*b)，无假设时无条件合并
	e := expr.NewMul(expr.Sqrt(expr.Sym("a")), expr.Sqrt(expr.Sym("b")))
	got, ds := radical.Combine(e, sign.None(), radical.Options{})

	want := expr.Sqrt(expr.NewMul(expr.Sym("a"), expr.Sym("b")))
	assert.True(t, got.Equal(want), "得到 %s", got.String())
	assert.Empty(t, ds)
}

func TestCombine_RigorousPositive(t *testing.T) {
	e := expr.NewMul(expr.Sqrt(expr.Sym("a")), expr.Sqrt(expr.Sym("b")))
	got, ds := radical.Combine(e, assume(t, "a>0, b>0"), radical.Options{})

	want := expr.Sqrt(expr.NewMul(expr.Sym("a"), expr.Sym("b")))
	assert.True(t, got.Equal(want))
	assert.Empty(t, ds)
}

func TestCombine_TwoNegatives(t *testing.T) {
	// sqrt(a)*sqrt(b) 在 a<0, b<0 下等于 -sqrt(a*b)
	e := expr.NewMul(expr.Sqrt(expr.Sym("a")), expr.Sqrt(expr.Sym("b")))
	got, ds := radical.Combine(e, assume(t, "a<0, b<0"), radical.Options{})

	want := expr.NewNeg(expr.Sqrt(expr.NewMul(expr.Sym("a"), expr.Sym("b"))))
	assert.True(t, got.Equal(want), "得到 %s", got.String())
	assert.Empty(t, ds)
}

func TestCombine_FourNegatives(t *testing.T) {
	// 两对负底数，符号因子相消
	factors := []expr.Expr{
		expr.Sqrt(expr.Sym("a")), expr.Sqrt(expr.Sym("b")),
		expr.Sqrt(expr.Sym("c")), expr.Sqrt(expr.Sym("d")),
	}
	e := expr.NewMul(factors...)
	got, ds := radical.Combine(e, assume(t, "a<0, b<0, c<0, d<0"), radical.Options{})

	want := expr.Sqrt(expr.NewMul(
		expr.Sym("a"), expr.Sym("b"), expr.Sym("c"), expr.Sym("d")))
	assert.True(t, got.Equal(want), "得到 %s", got.String())
	assert.Empty(t, ds)
}

func TestCombine_NonStrictAssumptions(t *testing.T) {
	// 非严格假设同样可判定：a>=0, b>=0 直接合并
	e := expr.NewMul(expr.Sqrt(expr.Sym("a")), expr.Sqrt(expr.Sym("b")))
	got, ds := radical.Combine(e, assume(t, "a>=0, b>=0"), radical.Options{})

	want := expr.Sqrt(expr.NewMul(expr.Sym("a"), expr.Sym("b")))
	assert.True(t, got.Equal(want), "得到 %s", got.String())
	assert.Empty(t, ds)

	// a<=0, b<=0 按负底数对处理；底数为零时两侧都为零
	got, ds = radical.Combine(e, assume(t, "a<=0, b<=0"), radical.Options{})
	assert.True(t, got.Equal(expr.NewNeg(want)), "得到 %s", got.String())
	assert.Empty(t, ds)
}

func TestCombine_HalfIntegerPowers(t *testing.T) {
	// a^(3/2) * b^(1/2) -> sqrt(a^3 * b)
	e := expr.NewMul(
		expr.NewPow(expr.Sym("a"), expr.Rat(3, 2)),
		expr.Sqrt(expr.Sym("b")))
	got, ds := radical.Combine(e, assume(t, "a>0, b>0"), radical.Options{})

	want := expr.Sqrt(expr.NewMul(
		expr.NewPow(expr.Sym("a"), expr.Int(3)), expr.Sym("b")))
	assert.True(t, got.Equal(want), "得到 %s", got.String())
	assert.Empty(t, ds)
}

func TestCombine_NegativeHalfPower(t *testing.T) {
	// a^(-1/2) * b^(1/2) -> sqrt(a^-1 * b)
	e := expr.NewMul(
		expr.NewPow(expr.Sym("a"), expr.Rat(-1, 2)),
		expr.Sqrt(expr.Sym("b")))
	got, ds := radical.Combine(e, sign.None(), radical.Options{})

	want := expr.Sqrt(expr.NewMul(
		expr.NewPow(expr.Sym("a"), expr.Int(-1)), expr.Sym("b")))
	assert.True(t, got.Equal(want), "得到 %s", got.String())
	assert.Empty(t, ds)
}

func TestCombine_KeepsOtherFactors(t *testing.T) {
	e := expr.NewMul(
		expr.Int(2), expr.Sym("c"),
		expr.Sqrt(expr.Sym("a")), expr.Sqrt(expr.Sym("b")))
	got, ds := radical.Combine(e, sign.None(), radical.Options{})

	want := expr.NewMul(expr.Int(2), expr.Sym("c"),
		expr.Sqrt(expr.NewMul(expr.Sym("a"), expr.Sym("b"))))
	assert.True(t, got.Equal(want), "得到 %s", got.String())
	assert.Empty(t, ds)
}

func TestCombine_UnknownSignDeclines(t *testing.T) {
	// 只假设了 x，y 符号未知：原样返回并给出诊断
	e := expr.NewMul(expr.Sqrt(expr.Sym("x")), expr.Sqrt(expr.Sym("y")))
	got, ds := radical.Combine(e, assume(t, "x>0"), radical.Options{})

	assert.True(t, got.Equal(e))
	require.Len(t, ds, 1)
	assert.Equal(t, diag.UnknownSigns, ds[0].Kind)
	assert.Equal(t, []string{"y"}, ds[0].Details)
	assert.Equal(t, []string{"y > 0"}, ds[0].Suggest)
}

func TestCombine_SingleRadicalUntouched(t *testing.T) {
	e := expr.NewMul(expr.Sym("c"), expr.Sqrt(expr.Sym("a")))
	got, ds := radical.Combine(e, sign.None(), radical.Options{})
	assert.True(t, got.Equal(e))
	assert.Empty(t, ds)
}

func TestCombine_NoRadicals(t *testing.T) {
	e := expr.NewAdd(expr.Sym("a"), expr.NewMul(expr.Int(2), expr.Sym("b")))
	got, ds := radical.Combine(e, sign.None(), radical.Options{})
	assert.True(t, got.Equal(e))
	assert.Empty(t, ds)
}

func TestCombine_DoesNotDistributeOverAdd(t *testing.T) {
	// 重写只在乘法上下文内，不跨加法
	e := expr.NewAdd(
		expr.Sqrt(expr.Sym("a")),
		expr.Sqrt(expr.Sym("b")))
	got, ds := radical.Combine(e, sign.None(), radical.Options{})
	assert.True(t, got.Equal(e))
	assert.Empty(t, ds)
}

func TestCombine_NestedContexts(t *testing.T) {
	// 加法项和函数参数里的乘法同样被重写
	inner := expr.NewMul(expr.Sqrt(expr.Sym("a")), expr.Sqrt(expr.Sym("b")))
	e := expr.NewAdd(expr.Sym("c"), expr.NewCall("Sin", inner))
	got, ds := radical.Combine(e, sign.None(), radical.Options{})

	want := expr.NewAdd(expr.Sym("c"),
		expr.NewCall("Sin", expr.Sqrt(expr.NewMul(expr.Sym("a"), expr.Sym("b")))))
	assert.True(t, got.Equal(want), "得到 %s", got.String())
	assert.Empty(t, ds)
}

func TestCombine_Idempotent(t *testing.T) {
	e := expr.NewMul(
		expr.NewPow(expr.Sym("a"), expr.Rat(3, 2)),
		expr.Sqrt(expr.Sym("b")),
		expr.Sqrt(expr.Sym("c")))
	once, ds1 := radical.Combine(e, sign.None(), radical.Options{})
	twice, ds2 := radical.Combine(once, sign.None(), radical.Options{})

	assert.True(t, once.Equal(twice))
	assert.Empty(t, ds1)
	assert.Empty(t, ds2)
}

func TestCombine_StrictOddNegative(t *testing.T) {
	e := expr.NewMul(expr.Sqrt(expr.Sym("a")), expr.Sqrt(expr.Sym("b")))
	a := assume(t, "a<0, b>0")

	// 严格模式：奇数个负底数拒绝合并
	got, ds := radical.Combine(e, a, radical.Options{StrictOddNegative: true})
	assert.True(t, got.Equal(e))
	require.Len(t, ds, 1)
	assert.True(t, diag.HasKind(ds, diag.OddNegative))

	// 历史行为：落单的负底数按配对规则静默处理
	got, ds = radical.Combine(e, a, radical.Options{})
	want := expr.Sqrt(expr.NewMul(expr.Sym("a"), expr.Sym("b")))
	assert.True(t, got.Equal(want))
	assert.Empty(t, ds)
}

func TestCombine_NumericEquivalence(t *testing.T) {
	// 正底数上合并前后数值一致
	e := expr.NewMul(
		expr.NewPow(expr.Sym("a"), expr.Rat(3, 2)),
		expr.Sqrt(expr.Sym("b")))
	got, ds := radical.Combine(e, assume(t, "a>0, b>0"), radical.Options{})
	require.Empty(t, ds)

	env := map[string]float64{"a": 2.5, "b": 1.3}
	before, ok := expr.Eval(e, env)
	require.True(t, ok)
	after, ok := expr.Eval(got, env)
	require.True(t, ok)
	assert.InDelta(t, before, after, 1e-9)
}

func TestCombine_TwoNegativesNumeric(t *testing.T) {
	// 负底数对：-sqrt(ab) 与 sqrt(a)sqrt(b) = i*i*sqrt(|a||b|) 一致
	e := expr.NewMul(expr.Sqrt(expr.Sym("a")), expr.Sqrt(expr.Sym("b")))
	got, ds := radical.Combine(e, assume(t, "a<0, b<0"), radical.Options{})
	require.Empty(t, ds)

	env := map[string]float64{"a": -2.0, "b": -3.0}
	after, ok := expr.Eval(got, env)
	require.True(t, ok)
	// sqrt(-2)*sqrt(-3) = -sqrt(6)
	assert.InDelta(t, -2.449489742783178, after, 1e-9)
}
