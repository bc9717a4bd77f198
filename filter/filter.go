// Package filter evaluates expr expressions against compound property
// records, powering the --filter flag of the CLI.
package filter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/molbridge/molbridge/pubchem"
)

// Filter is a compiled expr filter over property records.
type Filter struct {
	program *vm.Program
	source  string
}

// helpers are the static functions available in every expression.
var helpers = map[string]any{
	// The API serves several numeric properties (MolecularWeight,
	// ExactMass, ...) as strings; num converts either shape.
	"num": func(v any) float64 {
		switch x := v.(type) {
		case float64:
			return x
		case int:
			return float64(x)
		case string:
			f, _ := strconv.ParseFloat(x, 64)
			return f
		}
		return 0
	},
	"contains": func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	},
	"startsWith": func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	},
	"endsWith": func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	},
	"lower": strings.ToLower,
	"upper": strings.ToUpper,
}

// Compile compiles a filter expression. Property tag names act as
// variables, e.g.:
//
//	num(MolecularWeight) < 200 && HBondDonorCount <= 1
//	contains(IUPACName, "benzoic")
func Compile(expression string) (*Filter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	program, err := expr.Compile(expression,
		expr.Env(helpers),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter expression: %w", err)
	}

	return &Filter{program: program, source: expression}, nil
}

// String returns the original expression.
func (f *Filter) String() string { return f.source }

// Match evaluates the filter against one property record.
func (f *Filter) Match(row pubchem.PropertyRecord) (bool, error) {
	env := make(map[string]any, len(row)+len(helpers))
	for k, v := range helpers {
		env[k] = v
	}
	for k, v := range row {
		env[k] = v
	}

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate filter: %w", err)
	}
	matched, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("filter expression must evaluate to a boolean, got %T", result)
	}
	return matched, nil
}

// Apply returns the rows matching the filter, preserving order.
func (f *Filter) Apply(rows []pubchem.PropertyRecord) ([]pubchem.PropertyRecord, error) {
	var out []pubchem.PropertyRecord
	for _, row := range rows {
		ok, err := f.Match(row)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, row)
		}
	}
	return out, nil
}
