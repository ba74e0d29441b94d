package emitter

import (
	"github.com/tangzhangming/topy/internal/ident"
)

// Profile 代码生成配置：函数映射表、常量映射表、根式与标识符风格。
// 不可变，显式注入，不使用进程级全局状态。
type Profile struct {
	Module    string            // "math" 或 "numpy"
	SqrtStyle string            // "call" 或 "pow"
	Style     ident.Style       // 标识符输出风格
	Functions map[string]string // 宿主函数名 -> 目标可调用名
	Constants map[string]string // 常量符号 -> 目标表达式
}

// NewProfile 按目标数值库构建配置
func NewProfile(module, sqrtStyle, identStyle string) *Profile {
	p := &Profile{
		Module:    module,
		SqrtStyle: sqrtStyle,
		Style:     ident.ParseStyle(identStyle),
	}
	if module == "numpy" {
		p.Functions = numpyFunctions
		p.Constants = numpyConstants
	} else {
		p.Module = "math"
		p.Functions = mathFunctions
		p.Constants = mathConstants
	}
	if p.SqrtStyle != "pow" {
		p.SqrtStyle = "call"
	}
	return p
}

// SqrtCall 目标库的平方根函数名
func (p *Profile) SqrtCall() string {
	return p.Functions["Sqrt"]
}

// mathFunctions math 标准库映射。
// Sign 在 math 模式下没有对应函数，按未映射处理
var mathFunctions = map[string]string{
	"Sin":     "math.sin",
	"Cos":     "math.cos",
	"Tan":     "math.tan",
	"ArcSin":  "math.asin",
	"ArcCos":  "math.acos",
	"ArcTan":  "math.atan",
	"Sinh":    "math.sinh",
	"Cosh":    "math.cosh",
	"Tanh":    "math.tanh",
	"Exp":     "math.exp",
	"Log":     "math.log",
	"Sqrt":    "math.sqrt",
	"Abs":     "abs",
	"Floor":   "math.floor",
	"Ceiling": "math.ceil",
	"Round":   "round",
	"Min":     "min",
	"Max":     "max",
}

var mathConstants = map[string]string{
	"Pi":       "math.pi",
	"E":        "math.e",
	"I":        "1j",
	"Infinity": "math.inf",
	"Degree":   "(math.pi / 180)",
}

// numpyFunctions numpy 映射
var numpyFunctions = map[string]string{
	"Sin":     "np.sin",
	"Cos":     "np.cos",
	"Tan":     "np.tan",
	"ArcSin":  "np.arcsin",
	"ArcCos":  "np.arccos",
	"ArcTan":  "np.arctan",
	"Sinh":    "np.sinh",
	"Cosh":    "np.cosh",
	"Tanh":    "np.tanh",
	"Exp":     "np.exp",
	"Log":     "np.log",
	"Sqrt":    "np.sqrt",
	"Abs":     "np.abs",
	"Sign":    "np.sign",
	"Floor":   "np.floor",
	"Ceiling": "np.ceil",
	"Round":   "np.round",
	"Min":     "np.minimum",
	"Max":     "np.maximum",
}

var numpyConstants = map[string]string{
	"Pi":       "np.pi",
	"E":        "np.e",
	"I":        "1j",
	"Infinity": "np.inf",
	"Degree":   "(np.pi / 180)",
}
