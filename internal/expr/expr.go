package expr

import (
	"math/big"
	"sort"
	"strings"
)

// Expr 表达式节点接口
type Expr interface {
	// String 输出 FullForm 形式，用于调试和确定性排序
	String() string
	// Equal 结构相等
	Equal(other Expr) bool
	exprNode()
}

// Number 精确有理数字面量
type Number struct {
	Val *big.Rat
}

// Int 创建整数
func Int(n int64) *Number { return &Number{Val: new(big.Rat).SetInt64(n)} }

// Rat 创建有理数
func Rat(p, q int64) *Number {
	if q == 0 {
		panic("expr: 分母为零")
	}
	return &Number{Val: new(big.Rat).SetFrac(big.NewInt(p), big.NewInt(q))}
}

// Float 从浮点数创建
func Float(f float64) *Number { return &Number{Val: new(big.Rat).SetFloat64(f)} }

func (n *Number) exprNode() {}

func (n *Number) String() string {
	if n.Val.IsInt() {
		return n.Val.Num().String()
	}
	return "Rational[" + n.Val.Num().String() + ", " + n.Val.Denom().String() + "]"
}

func (n *Number) Equal(other Expr) bool {
	o, ok := other.(*Number)
	return ok && n.Val.Cmp(o.Val) == 0
}

func (n *Number) IsZero() bool    { return n.Val.Sign() == 0 }
func (n *Number) IsOne() bool     { return n.Val.Cmp(ratOne) == 0 }
func (n *Number) IsNegOne() bool  { return n.Val.Cmp(ratNegOne) == 0 }
func (n *Number) IsInteger() bool { return n.Val.IsInt() }
func (n *Number) Sign() int       { return n.Val.Sign() }

var (
	ratOne    = new(big.Rat).SetInt64(1)
	ratNegOne = new(big.Rat).SetInt64(-1)
)

// HalfExp 判断表达式是否为 n/2 形式的半整数指数，返回奇数分子 n
// big.Rat 会自动约分，所以分母为 2 时分子必为奇数
func HalfExp(e Expr) (int64, bool) {
	n, ok := e.(*Number)
	if !ok {
		return 0, false
	}
	if n.Val.Denom().Cmp(big.NewInt(2)) != 0 {
		return 0, false
	}
	if !n.Val.Num().IsInt64() {
		return 0, false
	}
	return n.Val.Num().Int64(), true
}

// Symbol 符号节点，Name 为宿主语言的原始名称
type Symbol struct {
	Name string
}

// Sym 创建符号
func Sym(name string) *Symbol { return &Symbol{Name: name} }

func (s *Symbol) exprNode()      {}
func (s *Symbol) String() string { return s.Name }
func (s *Symbol) Equal(other Expr) bool {
	o, ok := other.(*Symbol)
	return ok && s.Name == o.Name
}

// Add 加法节点，项按规范顺序排列
type Add struct {
	Terms []Expr
}

func (a *Add) exprNode() {}

func (a *Add) String() string { return headString("Plus", a.Terms) }

func (a *Add) Equal(other Expr) bool {
	o, ok := other.(*Add)
	return ok && equalSlices(a.Terms, o.Terms)
}

// NewAdd 构造加法节点：展平嵌套、折叠常数、排序
func NewAdd(terms ...Expr) Expr {
	flat := make([]Expr, 0, len(terms))
	for _, t := range terms {
		if inner, ok := t.(*Add); ok {
			flat = append(flat, inner.Terms...)
		} else {
			flat = append(flat, t)
		}
	}

	acc := new(big.Rat)
	others := []Expr{}
	for _, t := range flat {
		if n, ok := t.(*Number); ok {
			acc.Add(acc, n.Val)
		} else {
			others = append(others, t)
		}
	}

	others = sortExprs(others)
	if acc.Sign() != 0 {
		others = append(others, &Number{Val: acc})
	}
	if len(others) == 0 {
		return Int(0)
	}
	if len(others) == 1 {
		return others[0]
	}
	return &Add{Terms: others}
}

// Mul 乘法节点，因子按规范顺序排列，数值系数在首位
type Mul struct {
	Factors []Expr
}

func (m *Mul) exprNode() {}

func (m *Mul) String() string { return headString("Times", m.Factors) }

func (m *Mul) Equal(other Expr) bool {
	o, ok := other.(*Mul)
	return ok && equalSlices(m.Factors, o.Factors)
}

// NewMul 构造乘法节点：展平嵌套、折叠系数、排序
func NewMul(factors ...Expr) Expr {
	flat := make([]Expr, 0, len(factors))
	for _, f := range factors {
		if inner, ok := f.(*Mul); ok {
			flat = append(flat, inner.Factors...)
		} else {
			flat = append(flat, f)
		}
	}

	coeff := new(big.Rat).SetInt64(1)
	others := []Expr{}
	for _, f := range flat {
		if n, ok := f.(*Number); ok {
			coeff.Mul(coeff, n.Val)
		} else {
			others = append(others, f)
		}
	}

	if coeff.Sign() == 0 {
		return Int(0)
	}
	others = sortExprs(others)
	if len(others) == 0 {
		return &Number{Val: coeff}
	}
	if coeff.Cmp(ratOne) == 0 {
		if len(others) == 1 {
			return others[0]
		}
		return &Mul{Factors: others}
	}
	return &Mul{Factors: append([]Expr{&Number{Val: coeff}}, others...)}
}

// Pow 幂节点
type Pow struct {
	Base Expr
	Exp  Expr
}

func (p *Pow) exprNode() {}

func (p *Pow) String() string { return headString("Power", []Expr{p.Base, p.Exp}) }

func (p *Pow) Equal(other Expr) bool {
	o, ok := other.(*Pow)
	return ok && p.Base.Equal(o.Base) && p.Exp.Equal(o.Exp)
}

// NewPow 构造幂节点，做最小化简：x^0 = 1、x^1 = x、数值底数的小整数幂折叠
func NewPow(base, exp Expr) Expr {
	if en, ok := exp.(*Number); ok {
		if en.IsZero() {
			return Int(1)
		}
		if en.IsOne() {
			return base
		}
		if bn, ok2 := base.(*Number); ok2 && en.IsInteger() && en.Val.Num().IsInt64() {
			e := en.Val.Num().Int64()
			if e >= -16 && e <= 16 && !(bn.IsZero() && e < 0) {
				return &Number{Val: ratPow(bn.Val, e)}
			}
		}
	}
	return &Pow{Base: base, Exp: exp}
}

// Sqrt 构造平方根，即 Power[x, Rational[1, 2]]
func Sqrt(x Expr) Expr { return NewPow(x, Rat(1, 2)) }

func ratPow(r *big.Rat, e int64) *big.Rat {
	neg := e < 0
	if neg {
		e = -e
	}
	out := new(big.Rat).SetInt64(1)
	for i := int64(0); i < e; i++ {
		out.Mul(out, r)
	}
	if neg {
		out.Inv(out)
	}
	return out
}

// Call 函数应用节点，Name 为宿主语言函数名
type Call struct {
	Name string
	Args []Expr
}

// NewCall 创建函数应用
func NewCall(name string, args ...Expr) *Call { return &Call{Name: name, Args: args} }

func (c *Call) exprNode() {}

func (c *Call) String() string { return headString(c.Name, c.Args) }

func (c *Call) Equal(other Expr) bool {
	o, ok := other.(*Call)
	return ok && c.Name == o.Name && equalSlices(c.Args, o.Args)
}

// Neg 一元取负节点
type Neg struct {
	X Expr
}

// NewNeg 创建取负节点，折叠数值和双重取负
func NewNeg(x Expr) Expr {
	switch v := x.(type) {
	case *Number:
		return &Number{Val: new(big.Rat).Neg(v.Val)}
	case *Neg:
		return v.X
	}
	return &Neg{X: x}
}

func (n *Neg) exprNode() {}

func (n *Neg) String() string { return headString("Minus", []Expr{n.X}) }

func (n *Neg) Equal(other Expr) bool {
	o, ok := other.(*Neg)
	return ok && n.X.Equal(o.X)
}

// List 列表节点
type List struct {
	Elems []Expr
}

func (l *List) exprNode() {}

func (l *List) String() string { return headString("List", l.Elems) }

func (l *List) Equal(other Expr) bool {
	o, ok := other.(*List)
	return ok && equalSlices(l.Elems, o.Elems)
}

// headString 渲染 head[a, b, ...] 形式
func headString(head string, args []Expr) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return head + "[" + strings.Join(parts, ", ") + "]"
}

func equalSlices(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// sortExprs 按 String 键稳定排序，保证输出确定性
func sortExprs(es []Expr) []Expr {
	type keyed struct {
		e   Expr
		key string
	}
	ks := make([]keyed, len(es))
	for i, e := range es {
		ks[i] = keyed{e: e, key: e.String()}
	}
	sort.SliceStable(ks, func(i, j int) bool { return ks[i].key < ks[j].key })
	out := make([]Expr, len(ks))
	for i := range ks {
		out[i] = ks[i].e
	}
	return out
}
