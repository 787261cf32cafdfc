package event

import (
	"fmt"
	"math"

	"github.com/Knetic/govaluate"

	"razordqm/razor"
)

// Vars is the variable environment a Selector evaluates against.
type Vars map[string]interface{}

// JetVars exposes the kinematics of a jet to cut expressions.
func JetVars(j Jet) Vars {
	return Vars{
		"pt":     j.Pt(),
		"eta":    j.Eta(),
		"phi":    j.Phi(),
		"energy": j.E,
	}
}

// METVars exposes the kinematics of a missing-energy vector to cut
// expressions.
func METVars(met razor.Vec3) Vars {
	return Vars{
		"pt":  met.Pt(),
		"phi": met.Phi(),
	}
}

var selectorFuncs = map[string]govaluate.ExpressionFunction{
	"abs": func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("abs expects 1 argument, got %d", len(args))
		}
		x, ok := args[0].(float64)
		if !ok {
			return nil, fmt.Errorf("abs expects a number, got %T", args[0])
		}
		return math.Abs(x), nil
	},
	"sqrt": func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("sqrt expects 1 argument, got %d", len(args))
		}
		x, ok := args[0].(float64)
		if !ok {
			return nil, fmt.Errorf("sqrt expects a number, got %T", args[0])
		}
		return math.Sqrt(x), nil
	},
}

// Selector is a string-configured object cut ("pt > 80",
// "pt > 100 && abs(eta) < 2.4"), compiled once at construction and
// evaluated per object. It holds no mutable state.
type Selector struct {
	src  string
	expr *govaluate.EvaluableExpression
}

// NewSelector compiles the cut expression. An empty cut accepts every
// object.
func NewSelector(cut string) (*Selector, error) {
	if cut == "" {
		return &Selector{src: cut}, nil
	}
	expr, err := govaluate.NewEvaluableExpressionWithFunctions(cut, selectorFuncs)
	if err != nil {
		return nil, fmt.Errorf("compiling selection %q: %w", cut, err)
	}
	return &Selector{src: cut, expr: expr}, nil
}

// Accept evaluates the cut against vars. A non-boolean result is an
// error, not a pass.
func (s *Selector) Accept(vars Vars) (bool, error) {
	if s.expr == nil {
		return true, nil
	}
	res, err := s.expr.Evaluate(map[string]interface{}(vars))
	if err != nil {
		return false, fmt.Errorf("evaluating selection %q: %w", s.src, err)
	}
	pass, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("selection %q is not a predicate (got %T)", s.src, res)
	}
	return pass, nil
}

// String returns the source cut expression.
func (s *Selector) String() string { return s.src }
