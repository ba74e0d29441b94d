package sign

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tangzhangming/topy/internal/expr"
)

// Sign 符号正负状态
type Sign int

const (
	Unknown Sign = iota
	Positive
	Negative
	Zero
	NonNegative // >= 0
	NonPositive // <= 0
)

func (s Sign) String() string {
	switch s {
	case Positive:
		return "Positive"
	case Negative:
		return "Negative"
	case Zero:
		return "Zero"
	case NonNegative:
		return "NonNegative"
	case NonPositive:
		return "NonPositive"
	}
	return "Unknown"
}

// Relation 符号与零的关系
type Relation int

const (
	GT Relation = iota // > 0
	LT                 // < 0
	EQ                 // == 0
	GE                 // >= 0
	LE                 // <= 0
)

// AssumptionSet 符号正负假设的合取，不可变。
// 零值不是合法状态，必须通过 None 或 New/Parse 构造。
type AssumptionSet struct {
	facts map[string]Relation
	none  bool
}

// None 返回"无假设"哨兵，此时重写器工作在句法模式
func None() AssumptionSet {
	return AssumptionSet{none: true}
}

// New 从事实表构造假设集
func New(facts map[string]Relation) AssumptionSet {
	m := make(map[string]Relation, len(facts))
	for k, v := range facts {
		m[k] = v
	}
	return AssumptionSet{facts: m}
}

// Parse 解析形如 "a>0, b<0, c=0" 的假设串，空串即 None
func Parse(s string) (AssumptionSet, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return None(), nil
	}
	facts := make(map[string]Relation)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		var rel Relation
		var idx int
		switch {
		case strings.Contains(part, ">="):
			rel, idx = GE, strings.Index(part, ">=")
		case strings.Contains(part, "<="):
			rel, idx = LE, strings.Index(part, "<=")
		case strings.Contains(part, ">"):
			rel, idx = GT, strings.Index(part, ">")
		case strings.Contains(part, "<"):
			rel, idx = LT, strings.Index(part, "<")
		case strings.Contains(part, "="):
			rel, idx = EQ, strings.Index(part, "=")
		default:
			return None(), fmt.Errorf("无法解析假设 %q", part)
		}
		name := strings.TrimSpace(part[:idx])
		rhs := strings.TrimSpace(strings.TrimLeft(part[idx:], "><="))
		if name == "" || rhs != "0" {
			return None(), fmt.Errorf("无法解析假设 %q（只支持与 0 比较）", part)
		}
		facts[name] = rel
	}
	return AssumptionSet{facts: facts}, nil
}

// IsNone 是否为"无假设"哨兵
func (a AssumptionSet) IsNone() bool { return a.none }

// Symbol 查询单个符号的假设
func (a AssumptionSet) Symbol(name string) Sign {
	if a.none || a.facts == nil {
		return Unknown
	}
	rel, ok := a.facts[name]
	if !ok {
		return Unknown
	}
	switch rel {
	case GT:
		return Positive
	case LT:
		return Negative
	case GE:
		return NonNegative
	case LE:
		return NonPositive
	}
	return Zero
}

// String 假设集的规范文本，顺序确定
func (a AssumptionSet) String() string {
	if a.none {
		return "<none>"
	}
	parts := make([]string, 0, len(a.facts))
	for name, rel := range a.facts {
		op := ">"
		switch rel {
		case LT:
			op = "<"
		case EQ:
			op = "=="
		case GE:
			op = ">="
		case LE:
			op = "<="
		}
		parts = append(parts, name+" "+op+" 0")
	}
	sort.Strings(parts)
	return strings.Join(parts, " && ")
}

// Of 在给定假设下求子表达式的符号。确定性的结构递归，从不出错；
// 推不出来就返回 Unknown。
func Of(e expr.Expr, a AssumptionSet) Sign {
	switch v := e.(type) {
	case *expr.Number:
		switch {
		case v.Sign() > 0:
			return Positive
		case v.Sign() < 0:
			return Negative
		}
		return Zero
	case *expr.Symbol:
		// 常量符号不依赖假设
		switch v.Name {
		case "Pi", "E", "Degree", "Infinity":
			return Positive
		}
		return a.Symbol(v.Name)
	case *expr.Neg:
		return negate(Of(v.X, a))
	case *expr.Mul:
		return ofMul(v, a)
	case *expr.Add:
		return ofAdd(v, a)
	case *expr.Pow:
		return ofPow(v, a)
	case *expr.Call:
		return ofCall(v, a)
	}
	return Unknown
}

func negate(s Sign) Sign {
	switch s {
	case Positive:
		return Negative
	case Negative:
		return Positive
	case NonNegative:
		return NonPositive
	case NonPositive:
		return NonNegative
	}
	return s
}

func ofMul(m *expr.Mul, a AssumptionSet) Sign {
	neg := 0
	zero := false
	maybeZero := false
	for _, f := range m.Factors {
		switch Of(f, a) {
		case Unknown:
			return Unknown
		case Negative:
			neg++
		case NonPositive:
			neg++
			maybeZero = true
		case NonNegative:
			maybeZero = true
		case Zero:
			zero = true
		}
	}
	if zero {
		return Zero
	}
	odd := neg%2 == 1
	// 任一因子可能为零时结论退化为非严格
	if maybeZero {
		if odd {
			return NonPositive
		}
		return NonNegative
	}
	if odd {
		return Negative
	}
	return Positive
}

func ofAdd(add *expr.Add, a AssumptionSet) Sign {
	up, down := true, true
	strictUp, strictDown := false, false
	zero := 0
	for _, t := range add.Terms {
		switch Of(t, a) {
		case Positive:
			strictUp = true
			down = false
		case NonNegative:
			down = false
		case Negative:
			strictDown = true
			up = false
		case NonPositive:
			up = false
		case Zero:
			zero++
		default:
			return Unknown
		}
	}
	switch {
	case zero == len(add.Terms):
		return Zero
	case up && strictUp:
		return Positive
	case up:
		return NonNegative
	case down && strictDown:
		return Negative
	case down:
		return NonPositive
	}
	return Unknown
}

func ofPow(p *expr.Pow, a AssumptionSet) Sign {
	base := Of(p.Base, a)
	en, isNum := p.Exp.(*expr.Number)

	switch base {
	case Positive:
		return Positive
	case Zero:
		if isNum && en.Sign() > 0 {
			return Zero
		}
		return Unknown
	case Negative:
		if isNum && en.IsInteger() {
			if en.Val.Num().Bit(0) == 0 {
				return Positive
			}
			return Negative
		}
		return Unknown
	case NonNegative:
		// 底数可能为零，负指数未定义
		if isNum && en.Sign() > 0 {
			return NonNegative
		}
		return Unknown
	case NonPositive:
		if isNum && en.IsInteger() && en.Sign() > 0 {
			if en.Val.Num().Bit(0) == 0 {
				return NonNegative
			}
			return NonPositive
		}
		return Unknown
	}
	return Unknown
}

func ofCall(c *expr.Call, a AssumptionSet) Sign {
	if len(c.Args) != 1 {
		return Unknown
	}
	arg := Of(c.Args[0], a)
	switch c.Name {
	case "Exp", "Cosh":
		return Positive
	case "Abs":
		switch arg {
		case Positive, Negative:
			return Positive
		case NonNegative, NonPositive:
			return NonNegative
		case Zero:
			return Zero
		}
	case "Sqrt":
		switch arg {
		case Positive:
			return Positive
		case NonNegative:
			return NonNegative
		case Zero:
			return Zero
		}
	case "Sinh", "Tanh", "Sign":
		// 奇函数，保号
		return arg
	}
	return Unknown
}
