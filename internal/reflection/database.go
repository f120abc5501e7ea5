// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Database and ClassDescriptor types, the name-keyed
// table of classes that every reflection query is answered from.
package reflection

import (
	"slices"

	"github.com/zclconf/go-cty/cty"
)

// ClassTag is a class-level annotation attached to a class descriptor.
type ClassTag string

const (
	// Service marks engine-level singleton classes. It is independent of the
	// superclass hierarchy.
	Service          ClassTag = "Service"
	NotCreatable     ClassTag = "NotCreatable"
	NotReplicated    ClassTag = "NotReplicated"
	PlayerReplicated ClassTag = "PlayerReplicated"
	Settings         ClassTag = "Settings"
	UserSettings     ClassTag = "UserSettings"
	NotBrowsable     ClassTag = "NotBrowsable"
	Deprecated       ClassTag = "Deprecated"
)

var knownTags = []ClassTag{
	Service,
	NotCreatable,
	NotReplicated,
	PlayerReplicated,
	Settings,
	UserSettings,
	NotBrowsable,
	Deprecated,
}

// IsKnown reports whether t is one of the tags defined in this package.
func (t ClassTag) IsKnown() bool {
	return slices.Contains(knownTags, t)
}

// ClassDescriptor describes a single class of the database.
type ClassDescriptor struct {
	// Name is the class name. It mirrors the key the descriptor is stored
	// under in Database.Classes.
	Name string

	// Superclass is the name of the parent class. An empty string marks a
	// root class.
	Superclass string

	// Properties holds the properties this class declares itself. Inherited
	// properties are not repeated here.
	Properties map[string]*PropertyDescriptor

	// DefaultProperties holds default values keyed by property name. A key
	// may refer to a property declared on an ancestor.
	DefaultProperties map[string]cty.Value

	Tags []ClassTag
}

// HasSuperclass reports whether the class names a parent class.
func (c *ClassDescriptor) HasSuperclass() bool {
	return c.Superclass != ""
}

// HasTag reports whether the class itself carries tag. Tags of ancestors are
// not considered.
func (c *ClassDescriptor) HasTag(tag ClassTag) bool {
	return slices.Contains(c.Tags, tag)
}

// Property returns the property the class declares itself under name.
func (c *ClassDescriptor) Property(name string) (*PropertyDescriptor, bool) {
	prop, ok := c.Properties[name]
	if !ok || prop == nil {
		return nil, false
	}
	return prop, true
}

// DefaultProperty returns the default value recorded for name on this class.
func (c *ClassDescriptor) DefaultProperty(name string) (cty.Value, bool) {
	val, ok := c.DefaultProperties[name]
	return val, ok
}

// Database is the preloaded reflection database: a mapping from class name to
// class descriptor.
type Database struct {
	Classes map[string]*ClassDescriptor
}

// NewDatabase builds a Database keyed by each descriptor's Name. A later
// descriptor with the same name replaces an earlier one.
func NewDatabase(classes ...*ClassDescriptor) *Database {
	db := &Database{Classes: make(map[string]*ClassDescriptor, len(classes))}
	for _, class := range classes {
		if class == nil {
			continue
		}
		db.Classes[class.Name] = class
	}
	return db
}

// Class looks up a class by its exact name.
func (db *Database) Class(name string) (*ClassDescriptor, bool) {
	class, ok := db.Classes[name]
	if !ok || class == nil {
		return nil, false
	}
	return class, true
}

// HasClass reports whether name is a key of the database.
func (db *Database) HasClass(name string) bool {
	_, ok := db.Class(name)
	return ok
}

// Len returns the number of classes in the database.
func (db *Database) Len() int {
	return len(db.Classes)
}
