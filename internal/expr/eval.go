package expr

import (
	"math"
)

// Eval 在给定符号取值下做数值求值，用于等价性抽查。
// 出现未绑定符号、未知函数或非有限结果时返回 false。
func Eval(e Expr, env map[string]float64) (float64, bool) {
	v, ok := eval(e, env)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func eval(e Expr, env map[string]float64) (float64, bool) {
	switch v := e.(type) {
	case *Number:
		f, _ := v.Val.Float64()
		return f, true
	case *Symbol:
		// 常量符号直接解析，其余查环境
		switch v.Name {
		case "Pi":
			return math.Pi, true
		case "E":
			return math.E, true
		case "Degree":
			return math.Pi / 180, true
		}
		f, ok := env[v.Name]
		return f, ok
	case *Neg:
		f, ok := eval(v.X, env)
		return -f, ok
	case *Add:
		acc := 0.0
		for _, t := range v.Terms {
			f, ok := eval(t, env)
			if !ok {
				return 0, false
			}
			acc += f
		}
		return acc, true
	case *Mul:
		acc := 1.0
		for _, f := range v.Factors {
			fv, ok := eval(f, env)
			if !ok {
				return 0, false
			}
			acc *= fv
		}
		return acc, true
	case *Pow:
		b, ok1 := eval(v.Base, env)
		x, ok2 := eval(v.Exp, env)
		if !ok1 || !ok2 {
			return 0, false
		}
		return math.Pow(b, x), true
	case *Call:
		return evalCall(v, env)
	}
	return 0, false
}

func evalCall(c *Call, env map[string]float64) (float64, bool) {
	args := make([]float64, len(c.Args))
	for i, a := range c.Args {
		f, ok := eval(a, env)
		if !ok {
			return 0, false
		}
		args[i] = f
	}

	if len(args) == 1 {
		x := args[0]
		switch c.Name {
		case "Sin":
			return math.Sin(x), true
		case "Cos":
			return math.Cos(x), true
		case "Tan":
			return math.Tan(x), true
		case "ArcSin":
			return math.Asin(x), true
		case "ArcCos":
			return math.Acos(x), true
		case "ArcTan":
			return math.Atan(x), true
		case "Sinh":
			return math.Sinh(x), true
		case "Cosh":
			return math.Cosh(x), true
		case "Tanh":
			return math.Tanh(x), true
		case "Exp":
			return math.Exp(x), true
		case "Log":
			return math.Log(x), true
		case "Sqrt":
			return math.Sqrt(x), true
		case "Abs":
			return math.Abs(x), true
		case "Floor":
			return math.Floor(x), true
		case "Ceiling":
			return math.Ceil(x), true
		case "Round":
			return math.Round(x), true
		case "Sign":
			switch {
			case x > 0:
				return 1, true
			case x < 0:
				return -1, true
			}
			return 0, true
		}
	}
	if len(args) == 2 {
		switch c.Name {
		case "Log":
			// Log[b, x] 以 b 为底
			return math.Log(args[1]) / math.Log(args[0]), true
		case "Min":
			return math.Min(args[0], args[1]), true
		case "Max":
			return math.Max(args[0], args[1]), true
		}
	}
	return 0, false
}
