package builder

import (
	"fmt"
	"reflect"
	"slices"
	"sort"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// ParamTag is the struct tag naming a builder parameter, e.g. `param:"width"`.
const ParamTag = "param"

// Param describes one settable builder parameter.
type Param struct {
	Name  string
	Type  cty.Type
	field reflect.Value
}

// Value returns the parameter's current value as cty.
func (p Param) Value() (cty.Value, error) {
	return gocty.ToCtyValue(p.field.Interface(), p.Type)
}

// Params enumerates the tagged parameters of a pointer-to-struct builder,
// sorted by name. Parameters of embedded structs, and of struct fields
// tagged `param:",squash"`, are included under their own names.
func Params(b any) ([]Param, error) {
	v := reflect.ValueOf(b)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("builder %T must be a non-nil pointer to a struct", b)
	}

	var params []Param
	if err := collectParams(v.Elem(), &params); err != nil {
		return nil, err
	}
	sort.Slice(params, func(i, j int) bool { return params[i].Name < params[j].Name })
	for i := 1; i < len(params); i++ {
		if params[i].Name == params[i-1].Name {
			return nil, fmt.Errorf("builder %T declares parameter %q twice", b, params[i].Name)
		}
	}
	return params, nil
}

func collectParams(structVal reflect.Value, out *[]Param) error {
	structType := structVal.Type()
	for i := 0; i < structType.NumField(); i++ {
		fieldDef := structType.Field(i)
		fieldVal := structVal.Field(i)

		tag := strings.Split(fieldDef.Tag.Get(ParamTag), ",")
		squash := fieldDef.Type.Kind() == reflect.Struct &&
			(fieldDef.Anonymous || (fieldDef.IsExported() && slices.Contains(tag[1:], "squash")))
		if squash {
			if err := collectParams(fieldVal, out); err != nil {
				return err
			}
			continue
		}
		if !fieldDef.IsExported() {
			continue
		}

		name := tag[0]
		if name == "" || name == "-" {
			continue
		}

		ty, err := gocty.ImpliedType(fieldVal.Interface())
		if err != nil {
			return fmt.Errorf("parameter %q: cannot imply cty type from %s: %w", name, fieldDef.Type, err)
		}
		*out = append(*out, Param{Name: name, Type: ty, field: fieldVal})
	}
	return nil
}

// Lookup returns the named parameter of b.
func Lookup(b any, name string) (Param, error) {
	params, err := Params(b)
	if err != nil {
		return Param{}, err
	}
	for _, p := range params {
		if p.Name == name {
			return p, nil
		}
	}
	return Param{}, fmt.Errorf("unsupported parameter %q", name)
}

// SetParam converts val to the parameter's type and assigns it.
func SetParam(b any, name string, val cty.Value) error {
	p, err := Lookup(b, name)
	if err != nil {
		return err
	}
	return p.Set(val)
}

// Set converts val to the parameter's type and assigns it.
func (p Param) Set(val cty.Value) error {
	if val.IsNull() {
		return fmt.Errorf("parameter %q cannot be null", p.Name)
	}
	if !val.IsWhollyKnown() {
		return fmt.Errorf("parameter %q has an unknown value", p.Name)
	}
	converted, err := convert.Convert(val, p.Type)
	if err != nil {
		return fmt.Errorf("parameter %q: %w", p.Name, err)
	}
	if err := gocty.FromCtyValue(converted, p.field.Addr().Interface()); err != nil {
		return fmt.Errorf("parameter %q: %w", p.Name, err)
	}
	return nil
}
