package defs

import (
	"github.com/tangzhangming/topy/internal/diag"
	"github.com/tangzhangming/topy/internal/expr"
	"github.com/tangzhangming/topy/internal/ident"
)

// Definition 一条函数定义：name[patterns...] := body。
// 核心只读，不做改写。
type Definition struct {
	Name string
	LHS  []expr.Expr // 左端参数模式
	Body expr.Expr
}

// Store 按名称存放宿主定义，保留添加顺序
type Store struct {
	defs  map[string][]*Definition
	order []string
}

// NewStore 创建空定义表
func NewStore() *Store {
	return &Store{defs: make(map[string][]*Definition)}
}

// Add 追加一条定义
func (s *Store) Add(d *Definition) {
	if _, ok := s.defs[d.Name]; !ok {
		s.order = append(s.order, d.Name)
	}
	s.defs[d.Name] = append(s.defs[d.Name], d)
}

// Get 返回某名称的全部定义
func (s *Store) Get(name string) []*Definition {
	return s.defs[name]
}

// Names 按首次添加顺序返回全部名称
func (s *Store) Names() []string {
	return s.order
}

// Signature 提取出的规范签名
type Signature struct {
	Name   string
	Params []string
	Body   expr.Expr
}

// Extract 提取某名称的签名。有多条定义时取第一条（文档化行为，非错误）。
// 没有定义返回 NoDefinitionFound；规范化后参数重名附带 AmbiguousSignature。
func (s *Store) Extract(name string, style ident.Style) (*Signature, []diag.Diagnostic) {
	ds := s.defs[name]
	if len(ds) == 0 {
		return nil, []diag.Diagnostic{{Kind: diag.NoDefinitionFound, Subject: name}}
	}
	return ExtractDef(ds[0], style)
}

// ExtractDef 从单条定义提取签名
func ExtractDef(d *Definition, style ident.Style) (*Signature, []diag.Diagnostic) {
	var raw []string
	for _, pat := range d.LHS {
		collectPatterns(pat, &raw)
	}

	var diags []diag.Diagnostic
	seen := make(map[string]string, len(raw))
	params := make([]string, 0, len(raw))
	for _, r := range raw {
		p := ident.NormalizeWith(r, style)
		if prev, dup := seen[p]; dup {
			diags = append(diags, diag.Diagnostic{
				Kind:    diag.AmbiguousSignature,
				Subject: d.Name,
				Details: []string{prev, r},
			})
		}
		seen[p] = r
		params = append(params, p)
	}

	sig := &Signature{
		Name:   ident.NormalizeWith(d.Name, style),
		Params: params,
		Body:   d.Body,
	}
	return sig, diags
}

// collectPatterns 左起收集模式变量（Pattern[sym, ...] 节点）
func collectPatterns(e expr.Expr, out *[]string) {
	switch v := e.(type) {
	case *expr.Call:
		if v.Name == "Pattern" && len(v.Args) >= 1 {
			if s, ok := v.Args[0].(*expr.Symbol); ok {
				*out = append(*out, s.Name)
				return
			}
		}
		for _, a := range v.Args {
			collectPatterns(a, out)
		}
	case *expr.Add:
		for _, t := range v.Terms {
			collectPatterns(t, out)
		}
	case *expr.Mul:
		for _, f := range v.Factors {
			collectPatterns(f, out)
		}
	case *expr.Pow:
		collectPatterns(v.Base, out)
		collectPatterns(v.Exp, out)
	case *expr.Neg:
		collectPatterns(v.X, out)
	case *expr.List:
		for _, el := range v.Elems {
			collectPatterns(el, out)
		}
	}
}
