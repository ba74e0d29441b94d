package ident

import (
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/unicode/runenames"
)

// Style 标识符输出风格
type Style int

const (
	// Preserve 保留原始大小写
	Preserve Style = iota
	// Snake 转为 snake_case
	Snake
)

// ParseStyle 解析配置中的风格名
func ParseStyle(s string) Style {
	if s == "snake" {
		return Snake
	}
	return Preserve
}

// Normalize 将宿主符号名规范化为合法的 Python 标识符
func Normalize(raw string) string {
	return NormalizeWith(raw, Preserve)
}

// NormalizeWith 规范化并应用输出风格。
// 规则：\[Name] 字形记号替换为小写的 Name（开放词表，非固定希腊字母表）；
// 其余 Unicode 字母按官方字符名解析；非法字符剔除；数字开头加下划线前缀。
func NormalizeWith(raw string, style Style) string {
	var sb strings.Builder
	rs := []rune(raw)
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		if r == '\\' && i+1 < len(rs) && rs[i+1] == '[' {
			if end := indexRune(rs, i+2, ']'); end >= 0 {
				sb.WriteString(strings.ToLower(string(rs[i+2 : end])))
				i = end
				continue
			}
		}
		switch {
		case r == '_' || (r < 128 && (unicode.IsLetter(r) || unicode.IsDigit(r))):
			sb.WriteRune(r)
		case unicode.IsLetter(r):
			sb.WriteString(runeName(r))
		}
		// 其余字符（$、运算符等）对 Python 标识符非法，剔除
	}

	out := sb.String()
	if style == Snake {
		out = strcase.ToSnake(out)
	}
	if out == "" {
		return "_"
	}
	if out[0] >= '0' && out[0] <= '9' {
		out = "_" + out
	}
	return out
}

// runeName 把非 ASCII 字母转成其 Unicode 名称的字母部分，
// 如 α -> "GREEK SMALL LETTER ALPHA" -> "alpha"
func runeName(r rune) string {
	name := runenames.Name(r)
	if name == "" {
		return ""
	}
	if idx := strings.LastIndex(name, " LETTER "); idx >= 0 {
		name = name[idx+len(" LETTER "):]
	}
	name = strings.ToLower(name)
	name = strings.Map(func(c rune) rune {
		if c == ' ' || c == '-' {
			return '_'
		}
		return c
	}, name)
	return name
}

func indexRune(rs []rune, from int, want rune) int {
	for i := from; i < len(rs); i++ {
		if rs[i] == want {
			return i
		}
	}
	return -1
}
