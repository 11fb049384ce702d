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
package unicodex

import "unicode"

// IsIDStart returns whether r may start an ECMAScript identifier.
//
// This is XID_Start plus '$' and '_'.
func IsIDStart(r rune) bool {
	// ASCII fast path.
	if r == '_' || r == '$' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') {
		return true
	}
	if r < 0x80 {
		return false
	}

	return unicode.In(r,
		unicode.Letter,
		unicode.Nl, // Number, letter.
		unicode.Other_ID_Start,
	) && !unicode.In(r,
		unicode.Pattern_Syntax,
		unicode.Pattern_White_Space,
	)
}

// IsIDContinue returns whether r may appear after the first rune of an
// ECMAScript identifier.
//
// This is XID_Continue plus '$', ZWNJ and ZWJ.
func IsIDContinue(r rune) bool {
	// ASCII fast path.
	if r == '_' || r == '$' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') {
		return true
	}
	if r < 0x80 {
		return false
	}
	if r == '\u200c' || r == '\u200d' { // ZWNJ, ZWJ.
		return true
	}

	return unicode.In(r,
		unicode.Letter,
		unicode.Mn, // Mark, nonspacing.
		unicode.Mc, // Mark, spacing combining.
		unicode.Nl, // Number, letter.
		unicode.Nd, // Number, digit.
		unicode.Pc, // Punctuation, connector.
		unicode.Other_ID_Start,
		unicode.Other_ID_Continue,
	) && !unicode.In(r,
		unicode.Pattern_Syntax,
		unicode.Pattern_White_Space,
	)
}

// IsIdent returns whether s is a non-empty identifier with no escapes.
func IsIdent(s string) bool {
	for i, r := range s {
		if i == 0 && !IsIDStart(r) || i > 0 && !IsIDContinue(r) {
			return false
		}
	}
	return s != ""
}
