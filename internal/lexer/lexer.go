package lexer

import (
	"unicode"
)

// Lexer FullForm 记号流的词法分析器
type Lexer struct {
	input   []rune
	pos     int  // 当前位置
	readPos int  // 下一个读取位置
	ch      rune // 当前字符
	line    int  // 当前行号
	column  int  // 当前列号
}

// New 创建一个新的词法分析器
func New(input string) *Lexer {
	l := &Lexer{
		input:  []rune(input),
		line:   1,
		column: 0,
	}
	l.readChar()
	return l
}

// readChar 读取下一个字符
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
	l.column++
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
}

// peekChar 查看下一个字符但不移动位置
func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// NextToken 获取下一个 token
func (l *Lexer) NextToken() Token {
	var tok Token

	l.skipWhitespace()

	tok.Line = l.line
	tok.Column = l.column

	switch l.ch {
	case ':':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TOKEN_SETDELAYED, Literal: ":=", Line: tok.Line, Column: tok.Column}
		} else {
			tok = l.newToken(TOKEN_ILLEGAL, l.ch)
		}
	case '-':
		tok = l.newToken(TOKEN_MINUS, l.ch)
	case '_':
		tok = l.newToken(TOKEN_UNDERSCORE, l.ch)
	case ',':
		tok = l.newToken(TOKEN_COMMA, l.ch)
	case ';':
		tok = l.newToken(TOKEN_SEMICOLON, l.ch)
	case '[':
		tok = l.newToken(TOKEN_LBRACKET, l.ch)
	case ']':
		tok = l.newToken(TOKEN_RBRACKET, l.ch)
	case '(':
		if l.peekChar() == '*' {
			tok.Type = TOKEN_COMMENT
			tok.Literal = l.readComment()
			return tok
		}
		tok = l.newToken(TOKEN_ILLEGAL, l.ch)
	case 0:
		tok.Literal = ""
		tok.Type = TOKEN_EOF
	default:
		if l.isIdentStart(l.ch) {
			tok.Literal = l.readIdentifier()
			tok.Type = TOKEN_IDENT
			return tok
		} else if l.isDigit(l.ch) {
			tok.Literal, tok.Type = l.readNumber()
			return tok
		}
		tok = l.newToken(TOKEN_ILLEGAL, l.ch)
	}

	l.readChar()
	return tok
}

// newToken 创建新的 token
func (l *Lexer) newToken(tokenType TokenType, ch rune) Token {
	return Token{Type: tokenType, Literal: string(ch), Line: l.line, Column: l.column}
}

// skipWhitespace 跳过空白字符
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readIdentifier 读取标识符，\[Name] 字形记号整体并入字面量
func (l *Lexer) readIdentifier() string {
	pos := l.pos
	for {
		if l.ch == '\\' && l.peekChar() == '[' {
			l.readChar() // 跳过 \
			l.readChar() // 跳过 [
			for l.ch != ']' && l.ch != 0 {
				l.readChar()
			}
			if l.ch == ']' {
				l.readChar()
			}
			continue
		}
		if l.isIdentPart(l.ch) {
			l.readChar()
			continue
		}
		break
	}
	return string(l.input[pos:l.pos])
}

// readNumber 读取数字（整数或浮点数）
func (l *Lexer) readNumber() (string, TokenType) {
	pos := l.pos
	tokenType := TOKEN_INT

	for l.isDigit(l.ch) {
		l.readChar()
	}

	// 浮点数
	if l.ch == '.' && l.isDigit(l.peekChar()) {
		tokenType = TOKEN_FLOAT
		l.readChar()
		for l.isDigit(l.ch) {
			l.readChar()
		}
	}

	// 科学计数法
	if l.ch == 'e' || l.ch == 'E' {
		next := l.peekChar()
		if l.isDigit(next) || next == '+' || next == '-' {
			tokenType = TOKEN_FLOAT
			l.readChar()
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
			for l.isDigit(l.ch) {
				l.readChar()
			}
		}
	}

	return string(l.input[pos:l.pos]), tokenType
}

// readComment 读取 (* ... *) 注释，支持嵌套
func (l *Lexer) readComment() string {
	pos := l.pos
	depth := 0
	for {
		if l.ch == '(' && l.peekChar() == '*' {
			depth++
			l.readChar()
			l.readChar()
			continue
		}
		if l.ch == '*' && l.peekChar() == ')' {
			depth--
			l.readChar()
			l.readChar()
			if depth == 0 {
				break
			}
			continue
		}
		if l.ch == 0 {
			break
		}
		l.readChar()
	}
	return string(l.input[pos:l.pos])
}

// isIdentStart 判断是否为标识符首字符
func (l *Lexer) isIdentStart(ch rune) bool {
	if ch == '$' {
		return true
	}
	if ch == '\\' {
		return l.peekChar() == '['
	}
	return unicode.IsLetter(ch)
}

// isIdentPart 判断是否为标识符后续字符
func (l *Lexer) isIdentPart(ch rune) bool {
	return unicode.IsLetter(ch) || l.isDigit(ch) || ch == '$'
}

// isDigit 判断是否为数字
func (l *Lexer) isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

// Tokenize 将输入字符串转换为 token 列表，注释被丢弃
func Tokenize(input string) []Token {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == TOKEN_COMMENT {
			continue
		}
		tokens = append(tokens, tok)
		if tok.Type == TOKEN_EOF {
			break
		}
	}
	return tokens
}
