package resolver

import (
	"github.com/specialistvlad/classreflect/internal/reflection"
	"github.com/zclconf/go-cty/cty"
)

// PropertyInfo is the resolved metadata of a property.
//
// At most one of EnumName and ValueType is set. Both are nil when the
// property exists but its data type carries no usable metadata.
type PropertyInfo struct {
	// EnumName is the enum of an enum-typed property.
	EnumName *string
	// EnumDefault is the ordinal of the default enum item. It is set only for
	// enum-typed properties whose default value is itself an enum item.
	EnumDefault *uint32

	// ValueType is the value type tag of a value-typed property.
	ValueType *cty.Type
	// ValueDefault is the declared default of a value-typed property. cty
	// values are immutable, so this is a cheap copy of the database entry.
	ValueDefault *cty.Value
}

// IsEnum reports whether the property is enum-typed.
func (p PropertyInfo) IsEnum() bool {
	return p.EnumName != nil
}

// IsValue reports whether the property is value-typed.
func (p PropertyInfo) IsValue() bool {
	return p.ValueType != nil
}

// FindPropertyInfo looks up propertyName on className and then on each of its
// ancestors, and resolves the first declaration found. Declarations further up
// the chain are ignored even when they exist.
//
// ok is false when neither the class nor any ancestor declares the property,
// including when the class is missing from the database or a superclass link
// dangles.
func (r *Resolver) FindPropertyInfo(className, propertyName string) (info PropertyInfo, ok bool) {
	for _, class := range r.Ancestors(className) {
		if class == nil {
			return PropertyInfo{}, false
		}

		prop, declared := class.Property(propertyName)
		if !declared {
			continue
		}
		return newPropertyInfo(class, propertyName, prop.DataType), true
	}

	return PropertyInfo{}, false
}

// newPropertyInfo maps a declaration found on class into a PropertyInfo. The
// default is read from the declaring class only.
func newPropertyInfo(class *reflection.ClassDescriptor, propertyName string, dataType reflection.DataType) PropertyInfo {
	def, hasDefault := class.DefaultProperty(propertyName)

	switch dataType.Kind() {
	case reflection.KindEnum:
		enumName, _ := dataType.EnumName()
		info := PropertyInfo{EnumName: &enumName}
		if hasDefault {
			// A default of any other kind is not usable for an enum property.
			if ordinal, isEnum := reflection.EnumOrdinal(def); isEnum {
				info.EnumDefault = &ordinal
			}
		}
		return info

	case reflection.KindValue:
		valueType, _ := dataType.ValueType()
		info := PropertyInfo{ValueType: &valueType}
		if hasDefault {
			info.ValueDefault = &def
		}
		return info

	default:
		return PropertyInfo{}
	}
}
