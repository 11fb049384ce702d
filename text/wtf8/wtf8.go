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

// Package wtf8 implements WTF-8, the superset of UTF-8 that can also encode
// unpaired UTF-16 surrogates.
//
// ECMAScript strings are sequences of UTF-16 code units and may contain lone
// surrogates, which UTF-8 cannot represent. WTF-8 encodes each lone surrogate
// as the three-byte sequence UTF-8 would use for its code point, and encodes
// everything else exactly as UTF-8. Every valid UTF-8 string is thus valid
// WTF-8 with the same bytes.
//
// See https://simonsapin.github.io/wtf-8/.
package wtf8

import (
	"unicode/utf16"
	"unicode/utf8"
)

const (
	surrogateMin = 0xd800
	surrogateMax = 0xdfff
	leadMax      = 0xdbff

	// The width of an encoded surrogate.
	surrogateLen = 3
)

// IsSurrogate returns whether r is a UTF-16 surrogate code point.
func IsSurrogate(r rune) bool {
	return r >= surrogateMin && r <= surrogateMax
}

// AppendRune appends the WTF-8 encoding of r to dst.
//
// Unlike [utf8.AppendRune], surrogate code points are encoded as themselves
// rather than replaced with U+FFFD.
func AppendRune(dst []byte, r rune) []byte {
	if !IsSurrogate(r) {
		return utf8.AppendRune(dst, r)
	}
	return append(dst,
		0xe0|byte(r>>12),
		0x80|byte(r>>6)&0x3f,
		0x80|byte(r)&0x3f,
	)
}

// AppendUTF16 appends the WTF-8 encoding of a sequence of UTF-16 code units to
// dst. Well-formed surrogate pairs are combined; lone surrogates are encoded
// individually.
func AppendUTF16(dst []byte, units []uint16) []byte {
	for i := 0; i < len(units); i++ {
		r := rune(units[i])
		if r >= surrogateMin && r <= leadMax && i+1 < len(units) {
			if pair := utf16.DecodeRune(r, rune(units[i+1])); pair != utf8.RuneError {
				dst = utf8.AppendRune(dst, pair)
				i++
				continue
			}
		}
		dst = AppendRune(dst, r)
	}
	return dst
}

// DecodeRune unpacks the first WTF-8 encoded code point in b and returns it
// along with its width in bytes.
//
// Encoded surrogates are returned as-is. Invalid encodings behave as in
// [utf8.DecodeRune].
func DecodeRune(b []byte) (rune, int) {
	if r, ok := decodeSurrogate(b); ok {
		return r, surrogateLen
	}
	return utf8.DecodeRune(b)
}

// Valid returns whether b is valid WTF-8. This is valid UTF-8 extended with
// encoded surrogates, excluding a lead surrogate immediately followed by a
// trail surrogate (such a pair must be encoded as a single code point).
func Valid(b []byte) bool {
	prevLead := false
	for len(b) > 0 {
		r, n := DecodeRune(b)
		if r == utf8.RuneError && n <= 1 {
			return false
		}
		isLead := r >= surrogateMin && r <= leadMax
		if prevLead && r > leadMax && r <= surrogateMax {
			return false
		}
		prevLead = isLead
		b = b[n:]
	}
	return true
}

// IsWellFormed returns whether b contains no encoded surrogates, that is,
// whether it is also valid UTF-8.
func IsWellFormed(b []byte) bool {
	return utf8.Valid(b)
}

// ToUTF8 converts WTF-8 to UTF-8, replacing each lone surrogate with U+FFFD.
func ToUTF8(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}

	out := make([]byte, 0, len(b))
	for len(b) > 0 {
		r, n := DecodeRune(b)
		if IsSurrogate(r) {
			r = utf8.RuneError
		}
		out = utf8.AppendRune(out, r)
		b = b[n:]
	}
	return string(out)
}

// ToUTF16 converts WTF-8 to UTF-16 code units. Encoded surrogates become the
// corresponding lone code unit.
func ToUTF16(b []byte) []uint16 {
	out := make([]uint16, 0, len(b))
	for len(b) > 0 {
		r, n := DecodeRune(b)
		if IsSurrogate(r) {
			out = append(out, uint16(r))
		} else {
			out = utf16.AppendRune(out, r)
		}
		b = b[n:]
	}
	return out
}

// decodeSurrogate decodes an encoded surrogate at the start of b.
func decodeSurrogate(b []byte) (rune, bool) {
	// Surrogates are U+D800..U+DFFF, which encode as ED A0..BF 80..BF.
	if len(b) < surrogateLen || b[0] != 0xed || b[1] < 0xa0 || b[1] > 0xbf || b[2]&0xc0 != 0x80 {
		return 0, false
	}
	return rune(b[0]&0x0f)<<12 | rune(b[1]&0x3f)<<6 | rune(b[2]&0x3f), true
}
