// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package minijs

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bufbuild/esast/internal/ext/unicodex"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokIdent   // Identifiers and keywords.
	tokPrivate // #name
	tokNumber
	tokBigInt
	tokString
	tokTemplate // One chunk of a template, delimited by ` or } and ` or ${.
	tokRegExp
	tokPunct
)

type token struct {
	kind       tokenKind
	start, end int
	text       string
	nl         bool // Whether a line terminator precedes this token.
	tail       bool // For templates, whether this chunk ends the template.
}

// punctuators is sorted so that longer operators come first.
var punctuators = []string{
	">>>=",
	"...", "===", "!==", "**=", "<<=", ">>=", ">>>", "&&=", "||=", "??=",
	"=>", "==", "!=", "<=", ">=", "&&", "||", "??", "?.", "++", "--",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<", ">>", "**",
	"{", "}", "(", ")", "[", "]", ";", ",", "<", ">", "+", "-", "*", "/",
	"%", "&", "|", "^", "!", "~", "?", ":", "=", ".", "@",
}

// Keywords after which a / starts a regular expression.
var regexKeywords = map[string]bool{
	"return": true, "typeof": true, "instanceof": true, "in": true, "of": true,
	"new": true, "delete": true, "void": true, "throw": true, "case": true,
	"do": true, "else": true, "yield": true, "await": true,
}

type lexer struct {
	src      string
	pos      int
	toks     []token
	braces   []bool // For each open brace, whether it opened a substitution.
	hashbang *string // The text after #!, if present.
}

// lex splits src into tokens. The final token is always tokEOF.
func lex(src string) (l *lexer, err error) {
	l = &lexer{src: src}
	defer catch(&err)

	if strings.HasPrefix(src, "#!") {
		end := strings.IndexAny(src, "\r\n")
		if end < 0 {
			end = len(src)
		}
		hashbang := src[2:end]
		l.hashbang = &hashbang
		l.pos = end
	}

	for {
		nl := l.skipSpace()
		if l.pos >= len(l.src) {
			l.toks = append(l.toks, token{kind: tokEOF, start: l.pos, end: l.pos, nl: true})
			return l, nil
		}
		tok := l.next()
		tok.nl = nl
		tok.text = l.src[tok.start:tok.end]
		l.toks = append(l.toks, tok)
	}
}

func (l *lexer) fail(offset int, format string, args ...any) {
	fail(offset, format, args...)
}

func fail(offset int, format string, args ...any) {
	panic(&Error{Offset: offset, Msg: fmt.Sprintf(format, args...)})
}

// catch recovers a panic raised by fail into *err.
func catch(err *error) {
	r := recover()
	if r == nil {
		return
	}
	e, ok := r.(*Error)
	if !ok {
		panic(r)
	}
	*err = e
}

// skipSpace skips whitespace and comments, and returns whether it skipped a
// line terminator.
func (l *lexer) skipSpace() (nl bool) {
	for l.pos < len(l.src) {
		r, n := utf8.DecodeRuneInString(l.src[l.pos:])
		switch {
		case isLineTerminator(r):
			nl = true
			l.pos += n
		case r == ' ', r == '\t', r == '\v', r == '\f', r == '\u00a0', r == '\ufeff':
			l.pos += n
		case r > utf8.RuneSelf && unicode.Is(unicode.Zs, r):
			l.pos += n
		case strings.HasPrefix(l.src[l.pos:], "//"):
			end := strings.IndexFunc(l.src[l.pos:], isLineTerminator)
			if end < 0 {
				l.pos = len(l.src)
			} else {
				l.pos += end
			}
		case strings.HasPrefix(l.src[l.pos:], "/*"):
			end := strings.Index(l.src[l.pos+2:], "*/")
			if end < 0 {
				l.fail(l.pos, "unterminated block comment")
			}
			if strings.IndexFunc(l.src[l.pos:l.pos+2+end], isLineTerminator) >= 0 {
				nl = true
			}
			l.pos += end + 4
		default:
			return nl
		}
	}
	return nl
}

func (l *lexer) next() token {
	start := l.pos
	c := l.src[start]
	tok := token{start: start}

	switch {
	case c == '#':
		l.pos++
		if !l.ident() {
			l.fail(start, "expected a name after #")
		}
		tok.kind = tokPrivate

	case l.ident():
		tok.kind = tokIdent

	case isDigit(c) || (c == '.' && start+1 < len(l.src) && isDigit(l.src[start+1])):
		tok.kind = l.number()

	case c == '"' || c == '\'':
		l.string(c)
		tok.kind = tokString

	case c == '`':
		tok.kind = tokTemplate
		tok.tail = l.template()

	case c == '}' && len(l.braces) > 0 && l.braces[len(l.braces)-1]:
		l.braces = l.braces[:len(l.braces)-1]
		tok.kind = tokTemplate
		tok.tail = l.template()

	case c == '/' && l.regexAllowed():
		l.regexp()
		tok.kind = tokRegExp

	default:
		tok.kind = tokPunct
		for _, p := range punctuators {
			if !strings.HasPrefix(l.src[start:], p) {
				continue
			}
			// a?.5:b is a conditional, not an optional chain.
			if p == "?." && start+2 < len(l.src) && isDigit(l.src[start+2]) {
				continue
			}
			l.pos += len(p)
			switch p {
			case "{":
				l.braces = append(l.braces, false)
			case "}":
				if len(l.braces) > 0 {
					l.braces = l.braces[:len(l.braces)-1]
				}
			}
			tok.end = l.pos
			return tok
		}
		r, _ := utf8.DecodeRuneInString(l.src[start:])
		l.fail(start, "unexpected character %q", r)
	}

	tok.end = l.pos
	return tok
}

// ident consumes an identifier name, if there is one.
func (l *lexer) ident() bool {
	start := l.pos
	for l.pos < len(l.src) {
		r, n := utf8.DecodeRuneInString(l.src[l.pos:])
		if r == '\\' {
			l.fail(l.pos, "escapes in identifiers are not supported")
		}
		if l.pos == start && !unicodex.IsIDStart(r) || l.pos > start && !unicodex.IsIDContinue(r) {
			break
		}
		l.pos += n
	}
	return l.pos > start
}

// number consumes a numeric literal. Its value is computed by the parser.
func (l *lexer) number() tokenKind {
	start := l.pos
	if l.src[l.pos] == '0' && l.pos+1 < len(l.src) {
		if base, ok := unicodex.RadixPrefix(l.src[l.pos+1]); ok {
			l.pos += 2
			if l.digits(base) == 0 {
				l.fail(start, "missing digits after %s", l.src[start:l.pos])
			}
			return l.bigIntSuffix(start)
		}
	}

	l.digits(10)
	integer := true
	if l.pos < len(l.src) && l.src[l.pos] == '.' {
		integer = false
		l.pos++
		l.digits(10)
	}
	if l.pos < len(l.src) && (l.src[l.pos] == 'e' || l.src[l.pos] == 'E') {
		integer = false
		l.pos++
		if l.pos < len(l.src) && (l.src[l.pos] == '+' || l.src[l.pos] == '-') {
			l.pos++
		}
		if l.digits(10) == 0 {
			l.fail(start, "missing exponent")
		}
	}
	if integer {
		return l.bigIntSuffix(start)
	}
	l.checkAfterNumber(start)
	return tokNumber
}

func (l *lexer) bigIntSuffix(start int) tokenKind {
	kind := tokNumber
	if l.pos < len(l.src) && l.src[l.pos] == 'n' {
		l.pos++
		kind = tokBigInt
	}
	l.checkAfterNumber(start)
	return kind
}

// checkAfterNumber rejects 3in and similar.
func (l *lexer) checkAfterNumber(start int) {
	if l.pos >= len(l.src) {
		return
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.pos:])
	if unicodex.IsIDStart(r) || isDigit(l.src[l.pos]) {
		l.fail(start, "identifier starts immediately after numeric literal")
	}
}

// digits consumes digits in the given base, with _ separators, and returns
// how many digits it saw.
func (l *lexer) digits(base byte) int {
	var n int
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == '_' && n > 0 {
			l.pos++
			continue
		}
		if _, ok := unicodex.Digit(rune(c), base); !ok {
			break
		}
		l.pos++
		n++
	}
	return n
}

func (l *lexer) string(quote byte) {
	start := l.pos
	l.pos++
	for l.pos < len(l.src) {
		switch c := l.src[l.pos]; c {
		case quote:
			l.pos++
			return
		case '\\':
			l.pos += 2
			// \ followed by CRLF is a single line continuation.
			if l.pos < len(l.src) && l.src[l.pos-1] == '\r' && l.src[l.pos] == '\n' {
				l.pos++
			}
		case '\n', '\r':
			l.fail(start, "unterminated string literal")
		default:
			l.pos++
		}
	}
	l.fail(start, "unterminated string literal")
}

// template consumes a template chunk starting at its opening ` or }, and
// returns whether it ended the template.
func (l *lexer) template() (tail bool) {
	start := l.pos
	l.pos++
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case '`':
			l.pos++
			return true
		case '\\':
			l.pos += 2
		case '$':
			if l.pos+1 < len(l.src) && l.src[l.pos+1] == '{' {
				l.pos += 2
				l.braces = append(l.braces, true)
				return false
			}
			l.pos++
		default:
			l.pos++
		}
	}
	l.fail(start, "unterminated template literal")
	return false
}

func (l *lexer) regexp() {
	start := l.pos
	l.pos++
	var class bool
	for {
		if l.pos >= len(l.src) || l.src[l.pos] == '\n' || l.src[l.pos] == '\r' {
			l.fail(start, "unterminated regular expression")
		}
		c := l.src[l.pos]
		l.pos++
		switch {
		case c == '\\':
			l.pos++
		case c == '[':
			class = true
		case c == ']':
			class = false
		case c == '/' && !class:
			l.ident() // Flags.
			return
		}
	}
}

// regexAllowed guesses whether a / at this point starts a regular expression
// rather than a division, based on the previous token.
func (l *lexer) regexAllowed() bool {
	if len(l.toks) == 0 {
		return true
	}
	prev := l.toks[len(l.toks)-1]
	switch prev.kind {
	case tokIdent:
		return regexKeywords[prev.text]
	case tokTemplate:
		return !prev.tail
	case tokPunct:
		return prev.text != ")" && prev.text != "]" && prev.text != "}"
	default:
		return false
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
}
