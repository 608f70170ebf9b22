package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid TokenType = iota

	TokenLeftParen  // Open parenthesis: "("
	TokenRightParen // Close parenthesis: ")"
	TokenLeftBrace  // Open curly bracket: "{"
	TokenRightBrace // Close curly bracket: "}"
	TokenComma      // Comma: ","
	TokenDot        // Dot: "."
	TokenMinus      // Minus: "-"
	TokenPlus       // Plus: "+"
	TokenSemicolon  // Semicolon: ";"
	TokenStar       // Star: "*"
	TokenSlash      // Slash: "/"
	TokenColon      // Colon: ":"
	TokenQuestion   // Question mark: "?"

	TokenBang         // "!"
	TokenBangEqual    // "!="
	TokenEqual        // "="
	TokenEqualEqual   // "=="
	TokenLess         // "<"
	TokenLessEqual    // "<="
	TokenGreater      // ">"
	TokenGreaterEqual // ">="

	TokenString // String literal: "..."
	TokenNumber // Number literal: 123, 1.5

	TokenIdentifier // Letters, digits and underscore, not starting with a digit

	TokenAnd
	TokenClass
	TokenElse
	TokenFalse
	TokenFun
	TokenFor
	TokenIf
	TokenNil
	TokenOr
	TokenPrint
	TokenReturn
	TokenSuper
	TokenThis
	TokenTrue
	TokenVar
	TokenWhile

	TokenEOF // End of file
)

var tokenNames = map[TokenType]string{
	TokenInvalid: "INVALID",

	TokenLeftParen:  "LPAREN",
	TokenRightParen: "RPAREN",
	TokenLeftBrace:  "LBRACE",
	TokenRightBrace: "RBRACE",
	TokenComma:      "COMMA",
	TokenDot:        "DOT",
	TokenMinus:      "MINUS",
	TokenPlus:       "PLUS",
	TokenSemicolon:  "SEMICOLON",
	TokenStar:       "STAR",
	TokenSlash:      "SLASH",
	TokenColon:      "COLON",
	TokenQuestion:   "QUESTION",

	TokenBang:         "BANG",
	TokenBangEqual:    "BANG_EQ",
	TokenEqual:        "EQ",
	TokenEqualEqual:   "EQ_EQ",
	TokenLess:         "LT",
	TokenLessEqual:    "LT_EQ",
	TokenGreater:      "GT",
	TokenGreaterEqual: "GT_EQ",

	TokenString: "STRING",
	TokenNumber: "NUMBER",

	TokenIdentifier: "IDENTIFIER",

	TokenAnd:    "AND",
	TokenClass:  "CLASS",
	TokenElse:   "ELSE",
	TokenFalse:  "FALSE",
	TokenFun:    "FUN",
	TokenFor:    "FOR",
	TokenIf:     "IF",
	TokenNil:    "NIL",
	TokenOr:     "OR",
	TokenPrint:  "PRINT",
	TokenReturn: "RETURN",
	TokenSuper:  "SUPER",
	TokenThis:   "THIS",
	TokenTrue:   "TRUE",
	TokenVar:    "VAR",
	TokenWhile:  "WHILE",

	TokenEOF: "EOF",
}

// keywords maps reserved words to their token type. Lookups are
// case-sensitive.
var keywords = map[string]TokenType{
	"and":    TokenAnd,
	"class":  TokenClass,
	"else":   TokenElse,
	"false":  TokenFalse,
	"for":    TokenFor,
	"fun":    TokenFun,
	"if":     TokenIf,
	"nil":    TokenNil,
	"or":     TokenOr,
	"print":  TokenPrint,
	"return": TokenReturn,
	"super":  TokenSuper,
	"this":   TokenThis,
	"true":   TokenTrue,
	"var":    TokenVar,
	"while":  TokenWhile,
}

var singleCharTokens = map[byte]TokenType{
	'(': TokenLeftParen,
	')': TokenRightParen,
	'{': TokenLeftBrace,
	'}': TokenRightBrace,
	',': TokenComma,
	'.': TokenDot,
	'-': TokenMinus,
	'+': TokenPlus,
	';': TokenSemicolon,
	'*': TokenStar,
	':': TokenColon,
	'?': TokenQuestion,
}

// operatorTokens holds the (one char, two char) variants of operators that
// may be followed by "=".
var operatorTokens = map[byte][2]TokenType{
	'!': {TokenBang, TokenBangEqual},
	'=': {TokenEqual, TokenEqualEqual},
	'<': {TokenLess, TokenLessEqual},
	'>': {TokenGreater, TokenGreaterEqual},
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

// Keyword returns the token type of the given reserved word, and false if
// word is not reserved.
func Keyword(word string) (TokenType, bool) {
	tt, ok := keywords[word]
	return tt, ok
}

// IsKeyword returns true if the token type is a reserved word.
func (tt TokenType) IsKeyword() bool {
	return tt >= TokenAnd && tt <= TokenWhile
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}

func isAlphaNumeric(b byte) bool {
	return isAlpha(b) || isDigit(b)
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\r' || b == '\t'
}
