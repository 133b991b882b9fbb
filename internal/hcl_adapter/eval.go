package hcl_adapter

import (
	"fmt"
	"math/big"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// functions are the functions available in scene expressions.
var functions = map[string]function.Function{
	"abs":    stdlib.AbsoluteFunc,
	"ceil":   stdlib.CeilFunc,
	"floor":  stdlib.FloorFunc,
	"max":    stdlib.MaxFunc,
	"min":    stdlib.MinFunc,
	"format": stdlib.FormatFunc,
}

// newEvalContext returns the root evaluation context of a scene.
func newEvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{},
		Functions: functions,
	}
}

// withCountIndex returns a child context exposing count.index.
func withCountIndex(parent *hcl.EvalContext, index int) *hcl.EvalContext {
	child := parent.NewChild()
	child.Variables = map[string]cty.Value{
		"count": cty.ObjectVal(map[string]cty.Value{
			"index": cty.NumberIntVal(int64(index)),
		}),
	}
	return child
}

// evalCount evaluates a `count` expression to a non-negative whole number.
func evalCount(expr hcl.Expression, evalCtx *hcl.EvalContext) (int, error) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return 0, diags
	}
	if val.IsNull() || !val.IsKnown() || val.Type() != cty.Number {
		return 0, fmt.Errorf("%s: count must be a known number, got %s", expr.Range(), val.GoString())
	}
	bf := val.AsBigFloat()
	if !bf.IsInt() || bf.Sign() < 0 || bf.Cmp(big.NewFloat(maxCount)) > 0 {
		return 0, fmt.Errorf("%s: count must be a whole number in [0, %d], got %s", expr.Range(), maxCount, bf.Text('g', -1))
	}
	n, _ := bf.Int64()
	return int(n), nil
}

// maxCount bounds `count` so a typo cannot allocate millions of nodes.
const maxCount = 10000
