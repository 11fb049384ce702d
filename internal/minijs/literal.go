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
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/bufbuild/esast/internal/ext/unicodex"
)

// cook decodes the escapes in the body of a string or template literal into
// UTF-16 code units. It returns the offset of the first malformed escape, or
// -1.
func cook(body string) (units []uint16, bad int) {
	units = make([]uint16, 0, len(body))
	for i := 0; i < len(body); {
		c := body[i]
		if c == '\r' {
			// Template literals normalize line endings.
			units = append(units, '\n')
			i++
			if i < len(body) && body[i] == '\n' {
				i++
			}
			continue
		}
		if c != '\\' {
			r, n := utf8.DecodeRuneInString(body[i:])
			units = utf16.AppendRune(units, r)
			i += n
			continue
		}

		esc := i
		i++
		if i >= len(body) {
			return nil, esc
		}
		r, n := utf8.DecodeRuneInString(body[i:])
		i += n
		switch r {
		case 'n':
			units = append(units, '\n')
		case 't':
			units = append(units, '\t')
		case 'r':
			units = append(units, '\r')
		case 'b':
			units = append(units, '\b')
		case 'f':
			units = append(units, '\f')
		case 'v':
			units = append(units, '\v')
		case '0':
			if i < len(body) && isDigit(body[i]) {
				return nil, esc
			}
			units = append(units, 0)
		case 'x':
			v, ok := hex(body, i, 2)
			if !ok {
				return nil, esc
			}
			units = append(units, uint16(v))
			i += 2
		case 'u':
			v, width, ok := unicodeEscape(body[i:])
			if !ok {
				return nil, esc
			}
			if v > 0xffff {
				units = utf16.AppendRune(units, rune(v))
			} else {
				// Lone surrogates are kept as they are.
				units = append(units, uint16(v))
			}
			i += width
		case '\r':
			if i < len(body) && body[i] == '\n' {
				i++
			}
		case '\n', '\u2028', '\u2029':
		default:
			if r >= '1' && r <= '7' {
				return nil, esc
			}
			units = utf16.AppendRune(units, r)
		}
	}
	return units, -1
}

// unicodeEscape decodes the part of a \u escape after the u: either four hex
// digits or a braced code point.
func unicodeEscape(s string) (v uint32, width int, ok bool) {
	if !strings.HasPrefix(s, "{") {
		v, ok = hex(s, 0, 4)
		return v, 4, ok
	}
	end := strings.IndexByte(s, '}')
	if end < 2 {
		return 0, 0, false
	}
	v, ok = hex(s, 1, end-1)
	if !ok || v > utf8.MaxRune {
		return 0, 0, false
	}
	return v, end + 1, true
}

func hex(s string, at, n int) (uint32, bool) {
	if at+n > len(s) || n > 8 {
		return 0, false
	}
	var v uint32
	for _, c := range []byte(s[at : at+n]) {
		d, ok := unicodex.Digit(rune(c), 16)
		if !ok {
			return 0, false
		}
		v = v<<4 | uint32(d)
	}
	return v, true
}

// numberValue computes the value of a numeric literal.
func numberValue(raw string) (float64, bool) {
	raw = strings.ReplaceAll(raw, "_", "")
	if len(raw) > 2 && raw[0] == '0' {
		if base, ok := unicodex.RadixPrefix(raw[1]); ok {
			var v float64
			for _, c := range []byte(raw[2:]) {
				d, _ := unicodex.Digit(rune(c), base)
				v = v*float64(base) + float64(d)
			}
			return v, true
		}
	}
	if len(raw) > 1 && raw[0] == '0' && isDigit(raw[1]) {
		// Legacy octal, unless a digit rules it out.
		if !strings.ContainsAny(raw, "89") {
			v, err := strconv.ParseUint(raw[1:], 8, 64)
			return float64(v), err == nil
		}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil && !math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// bigIntValue computes the value of a bigint literal, including its n suffix.
func bigIntValue(raw string) (*big.Int, bool) {
	raw = strings.ReplaceAll(strings.TrimSuffix(raw, "n"), "_", "")
	base := 10
	if len(raw) > 2 && raw[0] == '0' {
		if b, ok := unicodex.RadixPrefix(raw[1]); ok {
			base = int(b)
			raw = raw[2:]
		}
	}
	return new(big.Int).SetString(raw, base)
}
