// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package gerbex

import (
	"regexp"
	"strconv"
	"strings"
)

// NumberPattern matches a signed integer or decimal number.
const NumberPattern = `[+-]?[0-9]*\.?[0-9]+`

// NamePattern matches a Gerber name field (aperture template/macro names).
const NamePattern = `[._$a-zA-Z][._$a-zA-Z0-9]{0,126}`

// FieldPattern matches any run of characters that isn't a command
// delimiter.
const FieldPattern = `[^%*,]*`

var (
	numberRegex      = regexp.MustCompile(`^` + NumberPattern + `$`)
	commandCodeRegex = regexp.MustCompile(`^([A-Z]{2}|[GM][0-9]{2})`)
	operationDRegex  = regexp.MustCompile(`D([0-9]+)$`)
)

// CommandCode returns the canonical command key derived from a word's
// prefix or suffix: a two-letter or G/M-prefixed three-character code, or
// the D-code family (D01/D02/D03 keep their literal form, all other
// aperture-select D-codes canonicalize to "Dnn").
func CommandCode(word string) (string, error) {
	if m := commandCodeRegex.FindString(word); m != "" {
		return m, nil
	}
	if m := operationDRegex.FindStringSubmatch(word); m != nil {
		ident, err := strconv.Atoi(m[1])
		if err != nil {
			return "", newParseErrorf("malformed D-code: %s", word)
		}
		if ident < 10 {
			return m[0], nil
		}
		return "Dnn", nil
	}
	return "", newParseErrorf("unrecognized word: %s", word)
}

// SplitParams splits field on delim and parses each piece as a number.
// Empty input yields an empty, non-nil slice. Any non-numeric piece is a
// ParseError.
func SplitParams(field string, delim byte) ([]float64, error) {
	if field == "" {
		return []float64{}, nil
	}
	pieces := strings.Split(field, string(delim))
	params := make([]float64, 0, len(pieces))
	for _, piece := range pieces {
		if !numberRegex.MatchString(piece) {
			return nil, newParseErrorf("invalid non-numeric parameter: %s", piece)
		}
		v, err := strconv.ParseFloat(piece, 64)
		if err != nil {
			return nil, newParseErrorf("invalid non-numeric parameter: %s", piece)
		}
		params = append(params, v)
	}
	return params, nil
}
