// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package gerbex

import (
	"regexp"
	"strconv"
)

// Variables maps a macro's numeric variable id ($1, $2, ...) to its value,
// scoped to a single macro invocation.
type Variables map[int]float64

var exprTokenRegex = regexp.MustCompile(`([0-9]*\.?[0-9]+)|(\$[0-9]+)|([()+x/-])|(\S+)`)

// Expression is an aperture-macro arithmetic expression, stored as its
// literal textual body for late evaluation against a per-call Variables
// table.
type Expression struct {
	Body string
}

// NewExpression wraps a literal expression body.
func NewExpression(body string) Expression {
	return Expression{Body: body}
}

type exprOperator byte

func (op exprOperator) precedence() (int, error) {
	switch byte(op) {
	case '+', '-':
		return 0, nil
	case 'x', '/':
		return 1, nil
	default:
		return 0, newParseErrorf("unrecognized operator %q", byte(op))
	}
}

func (op exprOperator) apply(output []float64) ([]float64, error) {
	if len(output) == 0 {
		return nil, newParseError("missing operand")
	}
	right := output[len(output)-1]
	output = output[:len(output)-1]
	left := 0.0
	if len(output) > 0 {
		left = output[len(output)-1]
		output = output[:len(output)-1]
	}
	var result float64
	switch byte(op) {
	case '+':
		result = left + right
	case '-':
		result = left - right
	case 'x':
		result = left * right
	case '/':
		result = left / right
	default:
		return nil, newParseErrorf("unrecognized operator %q", byte(op))
	}
	return append(output, result), nil
}

// Evaluate runs the shunting-yard algorithm over the expression's tokens
// and returns its numeric value, resolving any `$n` references against
// vars.
func (e Expression) Evaluate(vars Variables) (float64, error) {
	var output []float64
	var operators []exprOperator
	var openBrackets []int

	applyTop := func() error {
		if len(operators) == 0 {
			return newParseError("missing operator")
		}
		op := operators[len(operators)-1]
		operators = operators[:len(operators)-1]
		var err error
		output, err = op.apply(output)
		return err
	}

	for _, tok := range exprTokenRegex.FindAllString(e.Body, -1) {
		switch {
		case isExprNumber(tok):
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return 0, newParseErrorf("invalid number %q", tok)
			}
			output = append(output, v)
		case len(tok) > 0 && tok[0] == '$':
			v, err := lookupVariable(tok, vars)
			if err != nil {
				return 0, err
			}
			output = append(output, v)
		case tok == "(":
			openBrackets = append(openBrackets, len(operators))
		case tok == ")":
			if len(openBrackets) == 0 {
				return 0, newParseError("close bracket without open")
			}
			mark := openBrackets[len(openBrackets)-1]
			for len(operators) > mark {
				if err := applyTop(); err != nil {
					return 0, err
				}
			}
			openBrackets = openBrackets[:len(openBrackets)-1]
		case isExprOperatorToken(tok):
			newOp := exprOperator(tok[0])
			newPrec, err := newOp.precedence()
			if err != nil {
				return 0, err
			}
			for len(operators) > 0 {
				if len(openBrackets) > 0 && len(operators) == openBrackets[len(openBrackets)-1] {
					break
				}
				topPrec, err := operators[len(operators)-1].precedence()
				if err != nil {
					return 0, err
				}
				if newPrec > topPrec {
					break
				}
				if err := applyTop(); err != nil {
					return 0, err
				}
			}
			operators = append(operators, newOp)
		default:
			return 0, newParseErrorf("unrecognized token %q", tok)
		}
	}

	for len(operators) > 0 {
		if err := applyTop(); err != nil {
			return 0, err
		}
	}
	if len(openBrackets) > 0 {
		return 0, newParseError("open bracket without close")
	}
	if len(output) != 1 {
		return 0, newParseError("failed to process expression")
	}
	return output[0], nil
}

func isExprNumber(tok string) bool {
	if tok == "" {
		return false
	}
	for _, c := range tok {
		if c != '.' && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

func isExprOperatorToken(tok string) bool {
	return len(tok) == 1 && (tok == "+" || tok == "-" || tok == "x" || tok == "/" || tok == "(" || tok == ")")
}

var variableIDRegex = regexp.MustCompile(`\$([0-9]+)`)

func lookupVariable(id string, vars Variables) (float64, error) {
	m := variableIDRegex.FindStringSubmatch(id)
	if m == nil {
		return 0, newParseErrorf("invalid variable id %s", id)
	}
	varID, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, newParseErrorf("invalid variable id %s", id)
	}
	v, ok := vars[varID]
	if !ok {
		return 0, newParseErrorf("variable $%d was not provided in macro call", varID)
	}
	return v, nil
}
