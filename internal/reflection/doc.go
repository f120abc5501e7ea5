// Package reflection defines the read-only class database consulted by the
// resolver: class descriptors, their superclass links, declared properties,
// default property values and class tags.
//
// # Shape
//
// A Database maps class names to ClassDescriptors. Inheritance is not modelled
// with Go types; each descriptor names its parent in Superclass and consumers
// walk those links by name. A name that is referenced but missing from the
// Database is a normal condition (the data may be incomplete) and is never a
// programming error.
//
// # Values
//
// Property value types are cty.Type values. Primitive kinds map to the cty
// primitives and composite kinds such as Vector3 or Color3 map to cty object
// types, see the well-known type variables in values.go. Default values are
// cty.Value; enum defaults are capsule values of EnumItemType so a default can
// always be classified as "enum" or "not enum" regardless of its payload.
//
// # Lifecycle
//
// A Database is populated once by the embedding application and must not be
// mutated afterwards. Under that contract it can be shared between any number
// of goroutines without synchronization.
package reflection
