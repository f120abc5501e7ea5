package reflectiontest

import (
	"testing"

	"github.com/specialistvlad/classreflect/internal/reflection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestStandardFixtureLoads(t *testing.T) {
	db := Standard(t)

	part, ok := db.Class("Part")
	require.True(t, ok)
	assert.Equal(t, "FormFactorPart", part.Superclass)

	shape, ok := part.Property("Shape")
	require.True(t, ok)
	enumName, ok := shape.DataType.EnumName()
	require.True(t, ok)
	assert.Equal(t, "PartType", enumName)

	ordinal, ok := reflection.EnumOrdinal(part.DefaultProperties["Shape"])
	require.True(t, ok)
	assert.Equal(t, uint32(1), ordinal)

	basePart, ok := db.Class("BasePart")
	require.True(t, ok)
	size, ok := basePart.Property("Size")
	require.True(t, ok)
	sizeType, ok := size.DataType.ValueType()
	require.True(t, ok)
	assert.True(t, sizeType.Equals(reflection.Vector3))
	assert.True(t, basePart.DefaultProperties["Size"].RawEquals(reflection.Vector3Val(4, 1.5, 2)))

	groupID, ok := basePart.Property("CollisionGroupId")
	require.True(t, ok)
	assert.Equal(t, reflection.KindOther, groupID.DataType.Kind())

	ws, ok := db.Class("Workspace")
	require.True(t, ok)
	assert.True(t, ws.HasTag(reflection.Service))

	root, ok := db.Class("Instance")
	require.True(t, ok)
	assert.False(t, root.HasSuperclass())
	assert.True(t, root.DefaultProperties["Archivable"].RawEquals(cty.True))
}

func TestLoadRejectsInvalidDescriptions(t *testing.T) {
	testCases := []struct {
		name        string
		src         string
		wantSummary string
	}{
		{
			name:        "syntax error",
			src:         `class "Part" {`,
			wantSummary: "Unclosed configuration block",
		},
		{
			name: "duplicate class",
			src: `
class "Part" {}
class "Part" {}
`,
			wantSummary: "Duplicate class definition",
		},
		{
			name: "duplicate property",
			src: `
class "Part" {
  property "Size" { type = Vector3 }
  property "Size" { type = Vector3 }
}
`,
			wantSummary: "Duplicate property definition",
		},
		{
			name: "unknown tag",
			src: `
class "Part" {
  tags = ["service"]
}
`,
			wantSummary: "Unknown class tag",
		},
		{
			name: "unknown type keyword",
			src: `
class "Part" {
  property "Size" { type = vector3 }
}
`,
			wantSummary: "Unsupported type",
		},
		{
			name: "complex type expression",
			src: `
class "Part" {
  property "Size" { type = "Vector3" }
}
`,
			wantSummary: "Invalid type specification",
		},
		{
			name: "type and enum together",
			src: `
class "Part" {
  property "Shape" {
    type = Number
    enum = "PartType"
  }
}
`,
			wantSummary: "Conflicting property data type",
		},
		{
			name: "defaults is not an object",
			src: `
class "Part" {
  defaults = 3
}
`,
			wantSummary: "Invalid defaults",
		},
		{
			name: "negative enum ordinal",
			src: `
class "Part" {
  defaults = {
    Shape = enum(-1)
  }
}
`,
			wantSummary: "Error in function call",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, diags := Load([]byte(tc.src), "fixture.hcl")
			require.True(t, diags.HasErrors(), "expected diagnostics, got none")
			assert.Nil(t, db)

			var summaries []string
			for _, d := range diags {
				summaries = append(summaries, d.Summary)
			}
			assert.Contains(t, summaries, tc.wantSummary)
		})
	}
}

func TestLoadEmptyDescription(t *testing.T) {
	db, diags := Load([]byte(""), "empty.hcl")
	require.False(t, diags.HasErrors())
	require.NotNil(t, db)
	assert.Equal(t, 0, db.Len())
}
