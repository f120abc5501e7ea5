package reflectiontest

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/classreflect/internal/reflection"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/gocty"
)

// evalContext exposes the value constructors usable inside 'defaults'.
var evalContext = &hcl.EvalContext{
	Functions: map[string]function.Function{
		"enum":    enumFunc,
		"vector3": objectFunc(reflection.Vector3, "X", "Y", "Z"),
		"color3":  objectFunc(reflection.Color3, "R", "G", "B"),
	},
}

// enumFunc builds an enum item from its ordinal.
var enumFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "ordinal", Type: cty.Number},
	},
	Type: function.StaticReturnType(reflection.EnumItemType),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		var ordinal uint32
		if err := gocty.FromCtyValue(args[0], &ordinal); err != nil {
			return cty.NilVal, fmt.Errorf("enum ordinal must be an unsigned 32-bit integer: %w", err)
		}
		return reflection.EnumItem(ordinal), nil
	},
})

// objectFunc builds a constructor taking one number per attribute, in order.
func objectFunc(ty cty.Type, attrs ...string) function.Function {
	params := make([]function.Parameter, len(attrs))
	for i, attr := range attrs {
		params[i] = function.Parameter{Name: attr, Type: cty.Number}
	}

	return function.New(&function.Spec{
		Params: params,
		Type:   function.StaticReturnType(ty),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			vals := make(map[string]cty.Value, len(attrs))
			for i, attr := range attrs {
				vals[attr] = args[i]
			}
			return cty.ObjectVal(vals), nil
		},
	})
}

// typeFromExpr converts a type keyword such as `Vector3` into its cty.Type.
func typeFromExpr(expr hcl.Expression) (cty.Type, hcl.Diagnostics) {
	var diags hcl.Diagnostics

	// We expect a simple identifier like `Vector3`, not a complex expression.
	traversal, hclDiags := hcl.AbsTraversalForExpr(expr)
	if hclDiags.HasErrors() || len(traversal) != 1 {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid type specification",
			Detail:   "The 'type' attribute must be a simple type keyword like 'String', 'Number' or 'Vector3', not a complex expression.",
			Subject:  expr.Range().Ptr(),
		})
		return cty.NilType, diags
	}

	typeName := traversal.RootName()
	ty, ok := reflection.TypeByName(typeName)
	if !ok {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unsupported type",
			Detail:   fmt.Sprintf("The keyword '%s' is not a known value type.", typeName),
			Subject:  expr.Range().Ptr(),
		})
		return cty.NilType, diags
	}
	return ty, diags
}
