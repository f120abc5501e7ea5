// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines PropertyDescriptor and its DataType, a tagged variant
// describing what kind of value a property holds.
package reflection

import "github.com/zclconf/go-cty/cty"

// DataTypeKind selects the active variant of a DataType.
type DataTypeKind int

const (
	// KindOther covers data types without resolvable type metadata. It is the
	// zero value.
	KindOther DataTypeKind = iota
	// KindValue is a concrete value type identified by a cty.Type.
	KindValue
	// KindEnum is an enum identified by its enum name.
	KindEnum
)

func (k DataTypeKind) String() string {
	switch k {
	case KindValue:
		return "Value"
	case KindEnum:
		return "Enum"
	default:
		return "Other"
	}
}

// DataType is the declared type of a property. Only the field matching Kind is
// meaningful; use the accessors rather than the fields directly.
type DataType struct {
	kind      DataTypeKind
	valueType cty.Type
	enumName  string
}

// ValueOf returns a Value data type for t.
func ValueOf(t cty.Type) DataType {
	return DataType{kind: KindValue, valueType: t}
}

// EnumOf returns an Enum data type for the enum called name.
func EnumOf(name string) DataType {
	return DataType{kind: KindEnum, enumName: name}
}

// Other returns a data type that carries no type metadata.
func Other() DataType {
	return DataType{kind: KindOther}
}

// Kind returns the active variant.
func (d DataType) Kind() DataTypeKind {
	return d.kind
}

// ValueType returns the value type tag when d is a Value data type.
func (d DataType) ValueType() (cty.Type, bool) {
	if d.kind != KindValue {
		return cty.NilType, false
	}
	return d.valueType, true
}

// EnumName returns the enum name when d is an Enum data type.
func (d DataType) EnumName() (string, bool) {
	if d.kind != KindEnum {
		return "", false
	}
	return d.enumName, true
}

func (d DataType) String() string {
	switch d.kind {
	case KindValue:
		return "Value(" + TypeName(d.valueType) + ")"
	case KindEnum:
		return "Enum(" + d.enumName + ")"
	default:
		return "Other"
	}
}

// PropertyDescriptor is the declaration of a property on a class.
type PropertyDescriptor struct {
	Name     string
	DataType DataType
}
