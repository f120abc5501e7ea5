// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the value type tags known to the database and the enum
// item capsule used for enum-typed default values.
package reflection

import (
	"reflect"

	"github.com/zclconf/go-cty/cty"
)

// Well-known value type tags.
var (
	Bool   = cty.Bool
	Number = cty.Number
	String = cty.String

	Vector2 = cty.Object(map[string]cty.Type{
		"X": cty.Number,
		"Y": cty.Number,
	})
	Vector3 = cty.Object(map[string]cty.Type{
		"X": cty.Number,
		"Y": cty.Number,
		"Z": cty.Number,
	})
	Color3 = cty.Object(map[string]cty.Type{
		"R": cty.Number,
		"G": cty.Number,
		"B": cty.Number,
	})
	UDim = cty.Object(map[string]cty.Type{
		"Scale":  cty.Number,
		"Offset": cty.Number,
	})
	UDim2 = cty.Object(map[string]cty.Type{
		"X": UDim,
		"Y": UDim,
	})
)

var typeNames = []struct {
	name string
	typ  cty.Type
}{
	{"Bool", Bool},
	{"Number", Number},
	{"String", String},
	{"Vector2", Vector2},
	{"Vector3", Vector3},
	{"Color3", Color3},
	{"UDim", UDim},
	{"UDim2", UDim2},
}

// TypeName returns the well-known name of t, or its cty friendly name when t
// is not one of the well-known value types.
func TypeName(t cty.Type) string {
	if t == cty.NilType {
		return "nil"
	}
	for _, tn := range typeNames {
		if t.Equals(tn.typ) {
			return tn.name
		}
	}
	return t.FriendlyName()
}

// TypeByName is the inverse of TypeName for the well-known value types.
func TypeByName(name string) (cty.Type, bool) {
	for _, tn := range typeNames {
		if tn.name == name {
			return tn.typ, true
		}
	}
	return cty.NilType, false
}

// enumItem is the native payload of an enum default value.
type enumItem struct {
	ordinal uint32
}

// EnumItemType is the capsule type of enum default values. A default value is
// an enum value iff its type equals EnumItemType.
var EnumItemType = cty.Capsule("EnumItem", reflect.TypeOf(enumItem{}))

// EnumItem returns an enum value with the given ordinal.
func EnumItem(ordinal uint32) cty.Value {
	return cty.CapsuleVal(EnumItemType, &enumItem{ordinal: ordinal})
}

// EnumOrdinal returns the ordinal carried by v. It reports false when v is not
// a known, non-null enum value.
func EnumOrdinal(v cty.Value) (uint32, bool) {
	if v == cty.NilVal || !v.Type().Equals(EnumItemType) {
		return 0, false
	}
	if !v.IsKnown() || v.IsNull() {
		return 0, false
	}
	item, ok := v.EncapsulatedValue().(*enumItem)
	if !ok || item == nil {
		return 0, false
	}
	return item.ordinal, true
}

// Vector3Val builds a Vector3 value.
func Vector3Val(x, y, z float64) cty.Value {
	return cty.ObjectVal(map[string]cty.Value{
		"X": cty.NumberFloatVal(x),
		"Y": cty.NumberFloatVal(y),
		"Z": cty.NumberFloatVal(z),
	})
}

// Color3Val builds a Color3 value.
func Color3Val(r, g, b float64) cty.Value {
	return cty.ObjectVal(map[string]cty.Value{
		"R": cty.NumberFloatVal(r),
		"G": cty.NumberFloatVal(g),
		"B": cty.NumberFloatVal(b),
	})
}
