package lexer

// TokenType 表示 token 的类型
type TokenType int

const (
	// 特殊 token
	TOKEN_ILLEGAL TokenType = iota
	TOKEN_EOF
	TOKEN_COMMENT

	// 标识符和字面量
	TOKEN_IDENT // 标识符，可含 \[Name] 字形记号
	TOKEN_INT   // 整数
	TOKEN_FLOAT // 浮点数

	// 运算符
	TOKEN_MINUS      // - （仅一元）
	TOKEN_SETDELAYED // :=
	TOKEN_UNDERSCORE // _ （模式空白）

	// 分隔符
	TOKEN_COMMA     // ,
	TOKEN_SEMICOLON // ;
	TOKEN_LBRACKET  // [
	TOKEN_RBRACKET  // ]
)

// tokenNames token 类型名称表
var tokenNames = map[TokenType]string{
	TOKEN_ILLEGAL:    "ILLEGAL",
	TOKEN_EOF:        "EOF",
	TOKEN_COMMENT:    "COMMENT",
	TOKEN_IDENT:      "IDENT",
	TOKEN_INT:        "INT",
	TOKEN_FLOAT:      "FLOAT",
	TOKEN_MINUS:      "-",
	TOKEN_SETDELAYED: ":=",
	TOKEN_UNDERSCORE: "_",
	TOKEN_COMMA:      ",",
	TOKEN_SEMICOLON:  ";",
	TOKEN_LBRACKET:   "[",
	TOKEN_RBRACKET:   "]",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token 词法单元
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}
