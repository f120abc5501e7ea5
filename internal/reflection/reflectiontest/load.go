// Package reflectiontest builds reflection databases for tests from a small
// HCL description.
//
// A description is a list of class blocks:
//
//	class "Part" {
//	  superclass = "BasePart"
//	  tags       = ["NotCreatable"]
//
//	  property "Shape" { enum = "PartType" }
//	  property "Size"  { type = Vector3 }
//
//	  defaults = {
//	    Shape = enum(1)
//	    Size  = vector3(4, 1.2, 2)
//	  }
//	}
//
// A property with neither type nor enum has the Other data type. Type keywords
// are the well-known value type names of package reflection.
package reflectiontest

import (
	"fmt"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/classreflect/internal/reflection"
	"github.com/zclconf/go-cty/cty"
)

// fileSchema is the top-level structure of a description.
type fileSchema struct {
	Classes []*classBlock `hcl:"class,block"`
}

// classBlock represents a single 'class' block for decoding purposes.
type classBlock struct {
	Name       string           `hcl:"name,label"`
	Superclass string           `hcl:"superclass,optional"`
	Tags       []string         `hcl:"tags,optional"`
	Defaults   hcl.Expression   `hcl:"defaults,optional"`
	Properties []*propertyBlock `hcl:"property,block"`
}

// propertyBlock represents a 'property' block. Its body is decoded manually so
// that 'type' can be read as a keyword rather than evaluated.
type propertyBlock struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// propertyBodySchema is the HCL schema for the body of a 'property' block.
var propertyBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "type"},
		{Name: "enum"},
	},
}

// Load decodes src into a reflection database. filename is only used in
// diagnostics.
func Load(src []byte, filename string) (*reflection.Database, hcl.Diagnostics) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diags
	}

	var root fileSchema
	decodeDiags := gohcl.DecodeBody(file.Body, nil, &root)
	diags = append(diags, decodeDiags...)
	if decodeDiags.HasErrors() {
		return nil, diags
	}

	db := &reflection.Database{Classes: make(map[string]*reflection.ClassDescriptor, len(root.Classes))}
	for _, block := range root.Classes {
		if _, exists := db.Classes[block.Name]; exists {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate class definition",
				Detail:   fmt.Sprintf("A class named '%s' has already been defined.", block.Name),
			})
			continue
		}

		class, classDiags := decodeClass(block)
		diags = append(diags, classDiags...)
		if classDiags.HasErrors() {
			continue
		}
		db.Classes[class.Name] = class
	}

	if diags.HasErrors() {
		return nil, diags
	}
	return db, diags
}

// MustLoad decodes src and fails the test on any error diagnostic.
func MustLoad(tb testing.TB, src string) *reflection.Database {
	tb.Helper()

	db, diags := Load([]byte(src), tb.Name()+".hcl")
	if diags.HasErrors() {
		tb.Fatalf("failed to load reflection fixture: %s", diags.Error())
	}
	return db
}

func decodeClass(block *classBlock) (*reflection.ClassDescriptor, hcl.Diagnostics) {
	var diags hcl.Diagnostics

	class := &reflection.ClassDescriptor{
		Name:              block.Name,
		Superclass:        block.Superclass,
		Properties:        make(map[string]*reflection.PropertyDescriptor, len(block.Properties)),
		DefaultProperties: make(map[string]cty.Value),
	}

	for _, tag := range block.Tags {
		classTag := reflection.ClassTag(tag)
		if !classTag.IsKnown() {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unknown class tag",
				Detail:   fmt.Sprintf("Class '%s' uses tag '%s', which is not a known class tag.", block.Name, tag),
			})
			continue
		}
		class.Tags = append(class.Tags, classTag)
	}

	for _, propBlock := range block.Properties {
		if _, exists := class.Properties[propBlock.Name]; exists {
			missingItemRange := propBlock.Body.MissingItemRange()
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate property definition",
				Detail:   fmt.Sprintf("A property named '%s' has already been defined on class '%s'.", propBlock.Name, block.Name),
				Subject:  &missingItemRange,
			})
			continue
		}

		dataType, propDiags := decodeDataType(propBlock.Body)
		diags = append(diags, propDiags...)
		if propDiags.HasErrors() {
			continue
		}
		class.Properties[propBlock.Name] = &reflection.PropertyDescriptor{
			Name:     propBlock.Name,
			DataType: dataType,
		}
	}

	defaults, defaultDiags := decodeDefaults(block.Defaults)
	diags = append(diags, defaultDiags...)
	for name, val := range defaults {
		class.DefaultProperties[name] = val
	}

	return class, diags
}

// decodeDataType reads the 'type' or 'enum' attribute of a property body.
func decodeDataType(body hcl.Body) (reflection.DataType, hcl.Diagnostics) {
	content, diags := body.Content(propertyBodySchema)
	if diags.HasErrors() {
		return reflection.Other(), diags
	}

	typeAttr, hasType := content.Attributes["type"]
	enumAttr, hasEnum := content.Attributes["enum"]

	switch {
	case hasType && hasEnum:
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Conflicting property data type",
			Detail:   "A property may declare either 'type' or 'enum', not both.",
			Subject:  enumAttr.Range.Ptr(),
		})
		return reflection.Other(), diags

	case hasType:
		ctyType, typeDiags := typeFromExpr(typeAttr.Expr)
		diags = append(diags, typeDiags...)
		return reflection.ValueOf(ctyType), diags

	case hasEnum:
		var enumName string
		evalDiags := gohcl.DecodeExpression(enumAttr.Expr, nil, &enumName)
		diags = append(diags, evalDiags...)
		return reflection.EnumOf(enumName), diags

	default:
		return reflection.Other(), diags
	}
}

// decodeDefaults evaluates the 'defaults' object of a class.
func decodeDefaults(expr hcl.Expression) (map[string]cty.Value, hcl.Diagnostics) {
	val, diags := expr.Value(evalContext)
	if diags.HasErrors() || val.IsNull() {
		return nil, diags
	}

	if !val.Type().IsObjectType() && !val.Type().IsMapType() {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid defaults",
			Detail:   fmt.Sprintf("The 'defaults' attribute must be an object, got %s.", val.Type().FriendlyName()),
			Subject:  expr.Range().Ptr(),
		})
		return nil, diags
	}

	defaults := make(map[string]cty.Value)
	for it := val.ElementIterator(); it.Next(); {
		key, elem := it.Element()
		defaults[key.AsString()] = elem
	}
	return defaults, diags
}
