package hcl

import (
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// envObject exposes vars as the env variable, so env.NAME reads a variable
// and referencing an unset one is a decode error.
func envObject(vars map[string]string) cty.Value {
	if len(vars) == 0 {
		return cty.EmptyObjectVal
	}
	attrs := make(map[string]cty.Value, len(vars))
	for k, v := range vars {
		attrs[k] = cty.StringVal(v)
	}
	return cty.ObjectVal(attrs)
}

func functions(vars map[string]string) map[string]function.Function {
	return map[string]function.Function{
		"env": envFunc(vars),
	}
}

// envFunc implements env(name[, default]). An unset variable without a
// default evaluates to null, which leaves the setting at its default.
func envFunc(vars map[string]string) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "name", Type: cty.String},
		},
		VarParam: &function.Parameter{
			Name:      "default",
			Type:      cty.String,
			AllowNull: true,
		},
		Type: func(args []cty.Value) (cty.Type, error) {
			if len(args) > 2 {
				return cty.NilType, function.NewArgErrorf(2, "env takes at most one default, got %d", len(args)-1)
			}
			return cty.String, nil
		},
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			if v, ok := vars[args[0].AsString()]; ok {
				return cty.StringVal(v), nil
			}
			if len(args) > 1 {
				return args[1], nil
			}
			return cty.NullVal(cty.String), nil
		},
	})
}
