package lexer

import (
	"regexp"

	"protoc3/internal/source"
)

type regexHandler func(lex *lexerState, regex *regexp.Regexp)

type regexPattern struct {
	regex   *regexp.Regexp
	handler regexHandler
}

// lexerState is the mutable scanning cursor threaded through every handler.
// It is not exported: callers only ever see the resulting Token slice.
type lexerState struct {
	sourceCode []byte
	position   source.Position
	tokens     []Token
	patterns   []regexPattern
}

func (lex *lexerState) advance(match string) {
	lex.position.Advance(match)
}

func (lex *lexerState) push(kind Kind, lexeme string, at source.Position) {
	lex.tokens = append(lex.tokens, NewToken(kind, lexeme, at))
}

func (lex *lexerState) remainder() string {
	return string(lex.sourceCode[lex.position.Index:])
}

func (lex *lexerState) atEOF() bool {
	return lex.position.Index >= len(lex.sourceCode)
}

func newLexerState(src []byte) *lexerState {
	lex := &lexerState{
		sourceCode: src,
		position:   source.Position{Line: 1, Column: 1, Index: 0},
	}
	lex.patterns = []regexPattern{
		{regexp.MustCompile(`\r\n|\r|\n`), endlineHandler},
		{regexp.MustCompile(`[ \t]+`), skipHandler},
		{regexp.MustCompile("`(\\\\.|[^`\\\\\x00\n])*`|\"(\\\\.|[^\"\\\\\x00\n])*\""), stringHandler},
		{regexp.MustCompile(`//`), defaultHandler(Comment)},
		{regexp.MustCompile(`/\*`), defaultHandler(Comment)},
		{regexp.MustCompile(`\*/`), defaultHandler(Comment)},
		{regexp.MustCompile(`0[xX][0-9A-Fa-f]+`), defaultRegexHandler(Numeric)},
		{regexp.MustCompile(`0[0-7]+`), defaultRegexHandler(Numeric)},
		{regexp.MustCompile(`[0-9]+\.[0-9]+([eE][+-]?[0-9]+)?|[0-9]+[eE][+-]?[0-9]+`), defaultRegexHandler(Numeric)},
		{regexp.MustCompile(`[1-9][0-9]*|0`), defaultRegexHandler(Numeric)},
		{regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9_]*`), defaultRegexHandler(Id)},
		{regexp.MustCompile(`[{}()<>\[\];,=.]`), defaultHandler(Control)},
	}
	return lex
}

// defaultHandler pushes the text the pattern matched as a token of the given
// kind (used for fixed punctuation and the one- or two-character comment
// delimiters, whose lexeme is exactly the literal text the regex spells).
func defaultHandler(kind Kind) regexHandler {
	return func(lex *lexerState, regex *regexp.Regexp) {
		match := regex.FindString(lex.remainder())
		start := lex.position
		lex.advance(match)
		lex.push(kind, match, start)
	}
}

// defaultRegexHandler pushes whatever text the regex matched as a token of
// the given kind (used for variable-length lexemes: identifiers, numbers).
func defaultRegexHandler(kind Kind) regexHandler {
	return defaultHandler(kind)
}

func endlineHandler(lex *lexerState, regex *regexp.Regexp) {
	match := regex.FindString(lex.remainder())
	start := lex.position
	lex.advance(match)
	lex.push(EndLine, "\n", start)
}

func skipHandler(lex *lexerState, regex *regexp.Regexp) {
	match := regex.FindString(lex.remainder())
	lex.advance(match)
}

// stringHandler recognizes "..." and `...` literals. The lexeme preserves
// the verbatim quoted text, including escapes; the parser strips delimiters
// when it builds a StringLiteral node.
func stringHandler(lex *lexerState, regex *regexp.Regexp) {
	match := regex.FindString(lex.remainder())
	start := lex.position
	lex.advance(match)
	lex.push(String, match, start)
}

// Tokenize scans src in a single pass and returns its complete token stream.
// It never fails: a byte sequence it cannot classify becomes an Id token
// carrying the single raw byte, leaving error reporting to the parser.
func Tokenize(src []byte) []Token {
	lex := newLexerState(src)

	for !lex.atEOF() {
		matched := false

		for _, pattern := range lex.patterns {
			loc := pattern.regex.FindStringIndex(lex.remainder())
			if loc != nil && loc[0] == 0 {
				pattern.handler(lex, pattern.regex)
				matched = true
				break
			}
		}

		if !matched {
			start := lex.position
			raw := string(lex.sourceCode[lex.position.Index : lex.position.Index+1])
			lex.advance(raw)
			lex.push(Id, raw, start)
		}
	}

	lex.push(EndLine, "\n", lex.position)

	return lex.tokens
}
