package emitter

import (
	"strings"

	"github.com/tangzhangming/topy/internal/defs"
	"github.com/tangzhangming/topy/internal/diag"
	"github.com/tangzhangming/topy/internal/expr"
	"github.com/tangzhangming/topy/internal/ident"
)

// 运算符优先级，数值越大绑定越紧
const (
	precLowest = iota
	precAdd    // + -
	precMul    // * /
	precUnary  // -x
	precPow    // ** （右结合）
	precAtom   // 字面量、调用、括号
)

// Emitter Python 代码生成器。按结构递归生成，不做文本替换；
// 括号只在优先级或结合性需要时插入。
type Emitter struct {
	profile *Profile
	seen    map[string]string // 规范化名 -> 原始名，用于冲突检测
	diags   []diag.Diagnostic
}

// New 创建代码生成器，同一翻译单元共用一个实例以检测名字冲突
func New(p *Profile) *Emitter {
	return &Emitter{
		profile: p,
		seen:    make(map[string]string),
	}
}

// Emit 生成单个表达式的 Python 源码
func (em *Emitter) Emit(e expr.Expr) (string, []diag.Diagnostic) {
	em.diags = nil
	s, _ := em.render(e)
	return s, em.diags
}

// EmitSignature 生成完整函数定义：def name(params): return body
func (em *Emitter) EmitSignature(sig *defs.Signature) (string, []diag.Diagnostic) {
	em.diags = nil
	body, _ := em.render(sig.Body)
	var sb strings.Builder
	sb.WriteString("def ")
	sb.WriteString(sig.Name)
	sb.WriteString("(")
	sb.WriteString(strings.Join(sig.Params, ", "))
	sb.WriteString("): return ")
	sb.WriteString(body)
	return sb.String(), em.diags
}

// emit 渲染子表达式，自身优先级低于上下文要求时加括号
func (em *Emitter) emit(e expr.Expr, minPrec int) string {
	s, prec := em.render(e)
	if prec < minPrec {
		return "(" + s + ")"
	}
	return s
}

// render 渲染节点，返回文本及其固有优先级
func (em *Emitter) render(e expr.Expr) (string, int) {
	switch v := e.(type) {
	case *expr.Number:
		return em.renderNumber(v)
	case *expr.Symbol:
		return em.renderSymbol(v), precAtom
	case *expr.Add:
		return em.renderAdd(v), precAdd
	case *expr.Mul:
		return em.renderMul(v)
	case *expr.Pow:
		return em.renderPow(v)
	case *expr.Neg:
		return "-" + em.emit(v.X, precUnary), precUnary
	case *expr.Call:
		return em.renderCall(v), precAtom
	case *expr.List:
		return em.renderList(v), precAtom
	}
	return "", precAtom
}

func (em *Emitter) renderNumber(n *expr.Number) (string, int) {
	if n.IsInteger() {
		s := n.Val.Num().String()
		if n.Sign() < 0 {
			return s, precUnary
		}
		return s, precAtom
	}
	// 分数的顶层运算符是除号，负号在分子内部
	return n.Val.Num().String() + " / " + n.Val.Denom().String(), precMul
}

func (em *Emitter) renderSymbol(s *expr.Symbol) string {
	if c, ok := em.profile.Constants[s.Name]; ok {
		return c
	}
	name := ident.NormalizeWith(s.Name, em.profile.Style)
	if prev, ok := em.seen[name]; ok && prev != s.Name {
		em.diags = append(em.diags, diag.Diagnostic{
			Kind:    diag.NameCollision,
			Subject: name,
			Details: []string{prev, s.Name},
		})
	} else {
		em.seen[name] = s.Name
	}
	return name
}

func (em *Emitter) renderAdd(a *expr.Add) string {
	var sb strings.Builder
	for i, t := range a.Terms {
		if i == 0 {
			sb.WriteString(em.emit(t, precAdd))
			continue
		}
		if abs, neg := splitNegative(t); neg {
			sb.WriteString(" - ")
			sb.WriteString(em.emit(abs, precMul))
			continue
		}
		sb.WriteString(" + ")
		sb.WriteString(em.emit(t, precAdd))
	}
	return sb.String()
}

func (em *Emitter) renderMul(m *expr.Mul) (string, int) {
	factors := m.Factors
	prefix := ""
	prec := precMul
	// 系数 -1 退化为一元负号
	if n, ok := factors[0].(*expr.Number); ok && n.IsNegOne() && len(factors) > 1 {
		factors = factors[1:]
		prefix = "-"
		prec = precUnary
	}
	parts := make([]string, len(factors))
	for i, f := range factors {
		parts[i] = em.emit(f, precMul)
	}
	s := prefix + strings.Join(parts, " * ")
	if len(factors) == 1 && prefix == "" {
		return s, precAtom
	}
	return s, prec
}

func (em *Emitter) renderPow(p *expr.Pow) (string, int) {
	// Power[x, 1/2] 按配置渲染为根式调用或分数指数
	if n, ok := expr.HalfExp(p.Exp); ok && n == 1 && em.profile.SqrtStyle == "call" {
		return em.profile.SqrtCall() + "(" + em.emit(p.Base, precLowest) + ")", precAtom
	}
	// 左操作数高于 **，右操作数允许一元（** 右结合）
	base := em.emit(p.Base, precPow+1)
	exp := em.emit(p.Exp, precUnary)
	return base + " ** " + exp, precPow
}

func (em *Emitter) renderCall(c *expr.Call) string {
	target, mapped := em.profile.Functions[c.Name]
	if !mapped {
		target = ident.NormalizeWith(c.Name, em.profile.Style)
		em.diags = append(em.diags, diag.Diagnostic{
			Kind:    diag.UnmappedFunction,
			Subject: c.Name,
		})
	}

	// Log[b, x] 以 b 为底：math.log 带底数参数，numpy 用商
	if c.Name == "Log" && len(c.Args) == 2 && mapped {
		if em.profile.Module == "numpy" {
			return "np.log(" + em.emit(c.Args[1], precLowest) + ") / np.log(" +
				em.emit(c.Args[0], precLowest) + ")"
		}
		return "math.log(" + em.emit(c.Args[1], precLowest) + ", " +
			em.emit(c.Args[0], precLowest) + ")"
	}
	// ArcTan[x, y] 对应 atan2(y, x)
	if c.Name == "ArcTan" && len(c.Args) == 2 && mapped {
		if em.profile.Module == "numpy" {
			target = "np.arctan2"
		} else {
			target = "math.atan2"
		}
		return target + "(" + em.emit(c.Args[1], precLowest) + ", " +
			em.emit(c.Args[0], precLowest) + ")"
	}

	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = em.emit(a, precLowest)
	}
	return target + "(" + strings.Join(parts, ", ") + ")"
}

// renderList 列表渲染为显式数组构造
func (em *Emitter) renderList(l *expr.List) string {
	parts := make([]string, len(l.Elems))
	for i, el := range l.Elems {
		parts[i] = em.emit(el, precLowest)
	}
	inner := "[" + strings.Join(parts, ", ") + "]"
	if em.profile.Module == "numpy" {
		return "np.array(" + inner + ")"
	}
	return inner
}

// splitNegative 剥离表达式的负号：Neg 节点、负数字面量、负系数乘法
func splitNegative(e expr.Expr) (expr.Expr, bool) {
	switch v := e.(type) {
	case *expr.Neg:
		return v.X, true
	case *expr.Number:
		if v.Sign() < 0 {
			return expr.NewNeg(v), true
		}
	case *expr.Mul:
		if n, ok := v.Factors[0].(*expr.Number); ok && n.Sign() < 0 {
			rest := make([]expr.Expr, len(v.Factors))
			copy(rest, v.Factors)
			rest[0] = expr.NewNeg(n)
			return expr.NewMul(rest...), true
		}
	}
	return e, false
}
