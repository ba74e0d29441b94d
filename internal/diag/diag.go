package diag

import (
	"fmt"
	"strings"
)

// Kind 诊断类别
type Kind int

const (
	// NoDefinitionFound 请求的函数没有已存储的定义
	NoDefinitionFound Kind = iota
	// UnknownSigns 根式合并因符号正负未知而放弃
	UnknownSigns
	// OddNegative 严格模式下负底数个数为奇数，放弃合并
	OddNegative
	// UnmappedFunction 函数名没有目标语言映射，按原名输出
	UnmappedFunction
	// AmbiguousSignature 规范化后出现重复参数名
	AmbiguousSignature
	// NameCollision 两个不同原始符号规范化为同一标识符
	NameCollision
	// WriteFailure 输出文件写入失败
	WriteFailure
)

// String 类别的稳定文本名，用于日志和测试
func (k Kind) String() string {
	switch k {
	case NoDefinitionFound:
		return "NoDefinitionFound"
	case UnknownSigns:
		return "UnknownSigns"
	case OddNegative:
		return "OddNegative"
	case UnmappedFunction:
		return "UnmappedFunction"
	case AmbiguousSignature:
		return "AmbiguousSignature"
	case NameCollision:
		return "NameCollision"
	case WriteFailure:
		return "WriteFailure"
	}
	return "Unknown"
}

// Diagnostic 结构化诊断，由核心返回、调用方决定如何呈现
type Diagnostic struct {
	Kind    Kind
	Subject string   // 函数名、符号名或文件路径
	Details []string // 涉及的子表达式等附加信息
	Suggest []string // 建议补充的假设
	Err     error    // 底层 I/O 错误（仅 WriteFailure）
}

func (d Diagnostic) String() string {
	var sb strings.Builder
	sb.WriteString(d.Kind.String())
	if d.Subject != "" {
		sb.WriteString(": ")
		sb.WriteString(d.Subject)
	}
	if len(d.Details) > 0 {
		sb.WriteString(" [")
		sb.WriteString(strings.Join(d.Details, ", "))
		sb.WriteString("]")
	}
	if len(d.Suggest) > 0 {
		sb.WriteString(fmt.Sprintf(" (suggest: %s)", strings.Join(d.Suggest, " && ")))
	}
	if d.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(d.Err.Error())
	}
	return sb.String()
}

// HasKind 判断诊断列表中是否含有某类别
func HasKind(ds []Diagnostic, k Kind) bool {
	for _, d := range ds {
		if d.Kind == k {
			return true
		}
	}
	return false
}
