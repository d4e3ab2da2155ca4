// Package lexer turns raw source bytes into a token-stream pcomb.Cursor, so
// that a grammar built from pcomb combinators can match over tokens instead
// of bytes.
package lexer

import (
	"fmt"
	"unicode/utf8"

	"github.com/coregx/coregex"

	"github.com/gopeg/pcomb/source"
)

const (
	// ErrorTokenType is the type for fake tokens capturing broken lexemes.
	// Lexer never returns a token of this type; a LexError is returned
	// instead.
	ErrorTokenType = LowestTokenType - 1

	// ErrorTokenName is the type name for ErrorTokenType.
	ErrorTokenName = "-error-"
)

// LexError reports a lexical failure: either no pattern matched at the
// current position, or a capturing group tagged ErrorTokenType matched.
type LexError struct {
	Message    string
	SourceName string
	Line, Col  int
}

func (e *LexError) Error() string {
	if e.SourceName == "" {
		return e.Message
	}
	return fmt.Sprintf("%s in %s at line %d col %d", e.Message, e.SourceName, e.Line, e.Col)
}

func wrongCharError(s *source.Source, content []byte, line, col int) *LexError {
	r, _ := utf8.DecodeRune(content)
	return &LexError{Message: fmt.Sprintf("wrong char %q (u+%x)", r, r), SourceName: s.Name(), Line: line, Col: col}
}

func wrongTokenError(t *Token) *LexError {
	return &LexError{Message: fmt.Sprintf("bad token %q", t.Text()), SourceName: t.SourceName(), Line: t.Line(), Col: t.Col()}
}

// TokenType describes the token type produced by one capturing group of the
// lexer's regular expression.
type TokenType struct {
	Type     int
	TypeName string
}

// TokenTypeSet represents a set of expected token types, each coded as 1<<type.
type TokenTypeSet = uint64

const AllTokenTypes = TokenTypeSet(1<<64 - 1)

// Lexer performs lexical analysis of a source.Queue using a compiled
// coregex.Regex. It is immutable and stateless; the same Lexer may be reused
// across Queues. Each capturing group of the regex maps to a token type; a
// match with no captured group is an insignificant lexeme (whitespace,
// comments) and lexing resumes past it.
type Lexer struct {
	types []TokenType
	re    *coregex.Regex
}

// New creates a Lexer. The n-th element of types describes the token type
// for the (n+1)-th capturing group of re. A group with no description, or
// with a type outside [0,64), is treated as ErrorTokenType.
func New(re *coregex.Regex, types []TokenType) *Lexer {
	ts := make([]TokenType, len(types))
	for i, t := range types {
		ts[i].TypeName = t.TypeName
		if t.Type >= 0 && t.Type < 64 {
			ts[i].Type = t.Type
		} else {
			ts[i].Type = ErrorTokenType
		}
	}
	return &Lexer{types: ts, re: re}
}

func (l *Lexer) matchToken(src *source.Source, content []byte, pos int, tts TokenTypeSet) (*Token, int, error) {
	content = content[pos:]
	match := l.re.FindSubmatchIndex(content)
	if len(match) == 0 || match[0] != 0 || match[1] <= match[0] {
		line, col := src.LineCol(pos)
		return nil, 0, wrongCharError(src, content, line, col)
	}

	subMatched := false
	for i := 2; i < len(match); i += 2 {
		if match[i] >= 0 && match[i+1] >= 0 {
			subMatched = true
			sp := source.NewPos(src, pos+match[i])
			tokenType := ErrorTokenType
			typeName := ErrorTokenName
			if len(l.types) >= (i >> 1) {
				tokenType = l.types[(i>>1)-1].Type
				typeName = l.types[(i>>1)-1].TypeName
				if tokenType >= 0 && tts&(1<<tokenType) == 0 {
					continue
				}
			}
			token := NewToken(tokenType, typeName, string(content[match[i]:match[i+1]]), sp)
			if tokenType == ErrorTokenType {
				return nil, 0, wrongTokenError(token)
			}
			return token, match[1], nil
		}
	}

	advance := 0
	if !subMatched {
		advance = match[1]
	}
	return nil, advance, nil
}

func (l *Lexer) fetch(q *source.Queue, tts TokenTypeSet) (*Token, bool, error) {
	content, pos := q.ContentPos()
	src := q.Source()
	if len(content)-pos <= 0 {
		if src == nil {
			return EoiToken(), false, nil
		}
		return EofToken(src), false, nil
	}

	tok, advance, err := l.matchToken(src, content, pos, tts)
	q.Skip(advance)
	return tok, advance > 0, err
}

// Next fetches the token starting at q's current position and advances it.
func (l *Lexer) Next(q *source.Queue) (*Token, error) {
	for {
		t, _, err := l.fetch(q, AllTokenTypes)
		if t != nil || err != nil {
			return t, err
		}
	}
}

// NextOf fetches the next token of one of the given types, skipping
// insignificant lexemes along the way.
func (l *Lexer) NextOf(q *source.Queue, tts TokenTypeSet) (*Token, error) {
	for {
		t, advanced, err := l.fetch(q, tts)
		if t != nil || err != nil || !advanced {
			return t, err
		}
	}
}

// Tokenize runs the lexer to exhaustion over q, building a TokenCursor
// pcomb combinators can match over. Insignificant lexemes are dropped;
// EoF/EoI are not included as tokens (IsEnd reports their position instead).
func (l *Lexer) Tokenize(q *source.Queue) (*TokenCursor, error) {
	var tokens []*Token
	for {
		t, err := l.Next(q)
		if err != nil {
			return nil, err
		}
		if t.Type() == EofTokenType || t.Type() == EoiTokenType {
			break
		}
		tokens = append(tokens, t)
	}
	return NewTokenCursor(tokens), nil
}
