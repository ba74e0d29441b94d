package radical

import (
	"github.com/tangzhangming/topy/internal/diag"
	"github.com/tangzhangming/topy/internal/expr"
	"github.com/tangzhangming/topy/internal/sign"
)

// Options 重写器选项
type Options struct {
	// StrictOddNegative 为真时，负底数个数为奇数就放弃合并并给出诊断；
	// 为假时沿用配对规则 (-1)^(neg/2)，落单的负底数被静默丢弃（历史行为）
	StrictOddNegative bool
}

// Combine 把乘法节点中 ≥2 个半整数幂因子合并为单个根式。
//
// 假设集为哨兵时工作在句法模式：无条件合并，等价于"一切符号按非负实数
// 处理"的非严格变换。给定假设时逐底数询问符号预言机，任一底数符号未知
// 则该节点保持原样并返回诊断。
//
// 重写只在乘法上下文内进行，不跨 Plus 分配；迭代到不动点为止。
func Combine(e expr.Expr, a sign.AssumptionSet, opts Options) (expr.Expr, []diag.Diagnostic) {
	cur := e
	var diags []diag.Diagnostic
	// 每次成功重写都严格减少所在乘法节点的根式幂因子数，
	// 节点数有限，必然到达不动点
	for {
		next, ds := rewrite(cur, a, opts)
		if next.Equal(cur) {
			// 不动点这一轮恰好访问每个被拒节点一次，取其诊断
			diags = ds
			break
		}
		cur = next
	}
	return cur, diags
}

// rewrite 单轮自底向上重写
func rewrite(e expr.Expr, a sign.AssumptionSet, opts Options) (expr.Expr, []diag.Diagnostic) {
	var diags []diag.Diagnostic

	var walk func(expr.Expr) expr.Expr
	walk = func(e expr.Expr) expr.Expr {
		switch v := e.(type) {
		case *expr.Add:
			terms := make([]expr.Expr, len(v.Terms))
			for i, t := range v.Terms {
				terms[i] = walk(t)
			}
			return expr.NewAdd(terms...)
		case *expr.Mul:
			factors := make([]expr.Expr, len(v.Factors))
			for i, f := range v.Factors {
				factors[i] = walk(f)
			}
			m := expr.NewMul(factors...)
			if mm, ok := m.(*expr.Mul); ok {
				out, ds := combineMul(mm, a, opts)
				diags = append(diags, ds...)
				return out
			}
			return m
		case *expr.Pow:
			return expr.NewPow(walk(v.Base), walk(v.Exp))
		case *expr.Neg:
			return expr.NewNeg(walk(v.X))
		case *expr.Call:
			args := make([]expr.Expr, len(v.Args))
			for i, arg := range v.Args {
				args[i] = walk(arg)
			}
			return expr.NewCall(v.Name, args...)
		case *expr.List:
			elems := make([]expr.Expr, len(v.Elems))
			for i, el := range v.Elems {
				elems[i] = walk(el)
			}
			return &expr.List{Elems: elems}
		}
		return e
	}

	return walk(e), diags
}

// combineMul 对单个乘法节点做一次合并尝试
func combineMul(m *expr.Mul, a sign.AssumptionSet, opts Options) (expr.Expr, []diag.Diagnostic) {
	var bases []expr.Expr
	var ns []int64
	var rest []expr.Expr

	for _, f := range m.Factors {
		if pw, ok := f.(*expr.Pow); ok {
			if n, half := expr.HalfExp(pw.Exp); half {
				bases = append(bases, pw.Base)
				ns = append(ns, n)
				continue
			}
		}
		rest = append(rest, f)
	}

	if len(bases) < 2 {
		return m, nil
	}

	negatives := 0
	if !a.IsNone() {
		// 严格模式：所有底数的符号都必须可判定
		var unknown []string
		var suggest []string
		for _, b := range bases {
			switch sign.Of(b, a) {
			case sign.Unknown:
				unknown = append(unknown, b.String())
				suggest = append(suggest, b.String()+" > 0")
			case sign.Negative, sign.NonPositive:
				// 底数为零时整个乘积为零，符号因子无关紧要
				negatives++
			}
		}
		if len(unknown) > 0 {
			return m, []diag.Diagnostic{{
				Kind:    diag.UnknownSigns,
				Details: unknown,
				Suggest: suggest,
			}}
		}
		if negatives%2 == 1 && opts.StrictOddNegative {
			return m, []diag.Diagnostic{{
				Kind:    diag.OddNegative,
				Details: detailStrings(bases),
			}}
		}
	}

	// 被开方数 = Π base_i^(n_i)，负 n_i 贡献倒数因子
	radicand := make([]expr.Expr, len(bases))
	for i, b := range bases {
		radicand[i] = expr.NewPow(b, expr.Int(ns[i]))
	}

	combined := expr.NewMul(append(rest, expr.Sqrt(expr.NewMul(radicand...)))...)
	if (negatives/2)%2 == 1 {
		combined = expr.NewNeg(combined)
	}
	return combined, nil
}

func detailStrings(es []expr.Expr) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.String()
	}
	return out
}
