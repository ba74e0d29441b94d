package parser

import (
	"math/big"

	"github.com/tangzhangming/topy/internal/defs"
	"github.com/tangzhangming/topy/internal/expr"
	"github.com/tangzhangming/topy/internal/i18n"
	"github.com/tangzhangming/topy/internal/lexer"
)

// Program 一个输入单元：若干定义和独立表达式，保持出现顺序
type Program struct {
	Items []Item
}

// Item 单个条目，Def 与 Expr 二选一
type Item struct {
	Def  *defs.Definition
	Expr expr.Expr
}

// Parser FullForm 语法分析器
type Parser struct {
	l         *lexer.Lexer
	curToken  lexer.Token
	peekToken lexer.Token
	errors    []string
}

// New 创建语法分析器
func New(input string) *Parser {
	p := &Parser{l: lexer.New(input)}
	// 预读两个 token
	p.nextToken()
	p.nextToken()
	return p
}

// Parse 解析整个输入
func Parse(input string) (*Program, []string) {
	p := New(input)
	prog := &Program{}

	for p.curToken.Type != lexer.TOKEN_EOF {
		if p.curToken.Type == lexer.TOKEN_SEMICOLON {
			p.nextToken()
			continue
		}
		item := p.parseItem()
		if item != nil {
			prog.Items = append(prog.Items, *item)
		}
		if len(p.errors) > 0 {
			break
		}
	}

	return prog, p.errors
}

// nextToken 前进一个 token，注释直接跳过
func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	for {
		p.peekToken = p.l.NextToken()
		if p.peekToken.Type != lexer.TOKEN_COMMENT {
			break
		}
	}
}

// expectPeek 断言下一个 token 类型并前进
func (p *Parser) expectPeek(t lexer.TokenType) bool {
	if p.peekToken.Type == t {
		p.nextToken()
		return true
	}
	p.errors = append(p.errors, i18n.T(i18n.ErrExpectedToken,
		p.peekToken.Line, p.peekToken.Column, t.String(), p.peekToken.Type.String()))
	return false
}

func (p *Parser) errorf(key string, args ...any) {
	p.errors = append(p.errors, i18n.T(key, args...))
}

// parseItem 解析一个条目：表达式，或 lhs := body 定义
func (p *Parser) parseItem() *Item {
	e := p.parseExpression()
	if e == nil {
		return nil
	}

	if p.curToken.Type == lexer.TOKEN_SETDELAYED {
		call, ok := e.(*expr.Call)
		if !ok {
			p.errorf(i18n.ErrBadDefinitionLHS, p.curToken.Line, p.curToken.Column)
			return nil
		}
		p.nextToken()
		body := p.parseExpression()
		if body == nil {
			return nil
		}
		return &Item{Def: &defs.Definition{Name: call.Name, LHS: call.Args, Body: body}}
	}

	return &Item{Expr: e}
}

// parseExpression 解析一个完整表达式，结束时 curToken 指向下一个条目的首 token
func (p *Parser) parseExpression() expr.Expr {
	switch p.curToken.Type {
	case lexer.TOKEN_MINUS:
		p.nextToken()
		inner := p.parseExpression()
		if inner == nil {
			return nil
		}
		return expr.NewNeg(inner)

	case lexer.TOKEN_INT, lexer.TOKEN_FLOAT:
		lit := p.curToken.Literal
		r, ok := new(big.Rat).SetString(lit)
		if !ok {
			p.errorf(i18n.ErrBadNumber, p.curToken.Line, p.curToken.Column, lit)
			return nil
		}
		p.nextToken()
		return &expr.Number{Val: r}

	case lexer.TOKEN_UNDERSCORE:
		// 匿名空白模式
		p.nextToken()
		return expr.NewCall("Blank")

	case lexer.TOKEN_IDENT:
		return p.parseIdent()
	}

	p.errorf(i18n.ErrUnexpectedToken, p.curToken.Line, p.curToken.Column, p.curToken.Type.String())
	return nil
}

// parseIdent 解析标识符打头的结构：符号、head[args] 或 x_ 模式
func (p *Parser) parseIdent() expr.Expr {
	name := p.curToken.Literal

	// x_ 或 x_Head 模式糖
	if p.peekToken.Type == lexer.TOKEN_UNDERSCORE {
		p.nextToken() // 到 _
		blank := expr.NewCall("Blank")
		if p.peekToken.Type == lexer.TOKEN_IDENT {
			p.nextToken()
			blank = expr.NewCall("Blank", expr.Sym(p.curToken.Literal))
		}
		p.nextToken()
		return expr.NewCall("Pattern", expr.Sym(name), blank)
	}

	// head[args...]
	if p.peekToken.Type == lexer.TOKEN_LBRACKET {
		p.nextToken() // 到 [
		args := p.parseArgs()
		if len(p.errors) > 0 {
			return nil
		}
		return p.mapHead(name, args)
	}

	p.nextToken()
	return expr.Sym(name)
}

// parseArgs 解析 [a, b, ...]，返回时 curToken 已越过 ]
func (p *Parser) parseArgs() []expr.Expr {
	var args []expr.Expr

	if p.peekToken.Type == lexer.TOKEN_RBRACKET {
		p.nextToken()
		p.nextToken()
		return args
	}

	p.nextToken()
	for {
		a := p.parseExpression()
		if a == nil {
			return nil
		}
		args = append(args, a)
		if p.curToken.Type == lexer.TOKEN_COMMA {
			p.nextToken()
			continue
		}
		break
	}

	if p.curToken.Type != lexer.TOKEN_RBRACKET {
		p.errorf(i18n.ErrExpectedToken, p.curToken.Line, p.curToken.Column,
			lexer.TOKEN_RBRACKET.String(), p.curToken.Type.String())
		return nil
	}
	p.nextToken()
	return args
}

// mapHead 将内建 head 映射到 AST 节点，其余按函数应用处理
func (p *Parser) mapHead(name string, args []expr.Expr) expr.Expr {
	switch name {
	case "Plus":
		return expr.NewAdd(args...)
	case "Times":
		return expr.NewMul(args...)
	case "Power":
		if len(args) != 2 {
			p.errorf(i18n.ErrWrongArity, name, 2, len(args))
			return nil
		}
		return expr.NewPow(args[0], args[1])
	case "Rational":
		if len(args) == 2 {
			pn, ok1 := args[0].(*expr.Number)
			qn, ok2 := args[1].(*expr.Number)
			if ok1 && ok2 && pn.IsInteger() && qn.IsInteger() && !qn.IsZero() {
				return &expr.Number{Val: new(big.Rat).SetFrac(pn.Val.Num(), qn.Val.Num())}
			}
		}
		p.errorf(i18n.ErrBadRational, name)
		return nil
	case "Sqrt":
		if len(args) != 1 {
			p.errorf(i18n.ErrWrongArity, name, 1, len(args))
			return nil
		}
		return expr.Sqrt(args[0])
	case "Minus":
		if len(args) != 1 {
			p.errorf(i18n.ErrWrongArity, name, 1, len(args))
			return nil
		}
		return expr.NewNeg(args[0])
	case "Subtract":
		if len(args) != 2 {
			p.errorf(i18n.ErrWrongArity, name, 2, len(args))
			return nil
		}
		return expr.NewAdd(args[0], expr.NewNeg(args[1]))
	case "Divide":
		if len(args) != 2 {
			p.errorf(i18n.ErrWrongArity, name, 2, len(args))
			return nil
		}
		return expr.NewMul(args[0], expr.NewPow(args[1], expr.Int(-1)))
	case "List":
		return &expr.List{Elems: args}
	}
	return &expr.Call{Name: name, Args: args}
}
