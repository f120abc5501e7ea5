package reflectiontest

import (
	"testing"

	"github.com/specialistvlad/classreflect/internal/reflection"
)

// StandardHCL describes a small slice of a real reflection database:
//
//	Part -> FormFactorPart -> BasePart -> PVInstance -> Instance
//	Terrain -> BasePart
//	Workspace -> WorldRoot -> Model -> PVInstance
//	Camera -> Instance
//	PhysicsService, ReplicatedFirst -> Instance (Service)
//	CSGDictionaryService -> FlyweightService (Service) -> Instance
//	DanglingPart -> MissingBase (not defined)
const StandardHCL = `
class "Instance" {
  tags = ["NotCreatable", "NotBrowsable"]

  property "Name"       { type = String }
  property "Archivable" { type = Bool }
  property "Parent"     {}

  defaults = {
    Archivable = true
  }
}

class "PVInstance" {
  superclass = "Instance"
  tags       = ["NotCreatable"]
}

class "BasePart" {
  superclass = "PVInstance"
  tags       = ["NotCreatable", "NotBrowsable"]

  property "Size"         { type = Vector3 }
  property "Color"        { type = Color3 }
  property "Transparency" { type = Number }
  property "Material"     { enum = "Material" }
  property "TopSurface"   { enum = "SurfaceType" }
  property "CollisionGroupId" {}

  defaults = {
    Size         = vector3(4, 1.5, 2)
    Color        = color3(0.5, 0.25, 0.75)
    Transparency = 0
    Material     = enum(256)
    TopSurface   = "Smooth"
  }
}

class "FormFactorPart" {
  superclass = "BasePart"
  tags       = ["NotCreatable"]
}

class "Part" {
  superclass = "FormFactorPart"

  property "Shape"        { enum = "PartType" }
  property "Transparency" { type = Number }

  defaults = {
    Shape        = enum(1)
    Transparency = 0.5
    Size         = vector3(1, 1, 1)
  }
}

class "Terrain" {
  superclass = "BasePart"
  tags       = ["NotCreatable"]

  property "WaterColor" { type = Color3 }
}

class "Model" {
  superclass = "PVInstance"

  property "LevelOfDetail" { enum = "ModelLevelOfDetail" }
  property "PrimaryPart"   {}
}

class "WorldRoot" {
  superclass = "Model"
  tags       = ["NotCreatable"]
}

class "Workspace" {
  superclass = "WorldRoot"
  tags       = ["NotCreatable", "Service"]

  property "Gravity" { type = Number }

  defaults = {
    Gravity = 196.2
  }
}

class "Camera" {
  superclass = "Instance"

  property "FieldOfView" { type = Number }
}

class "PhysicsService" {
  superclass = "Instance"
  tags       = ["NotCreatable", "Service"]
}

class "ReplicatedFirst" {
  superclass = "Instance"
  tags       = ["NotCreatable", "Service", "NotReplicated"]
}

class "FlyweightService" {
  superclass = "Instance"
  tags       = ["NotCreatable", "Service"]
}

class "CSGDictionaryService" {
  superclass = "FlyweightService"
  tags       = ["NotCreatable"]
}

class "DanglingPart" {
  superclass = "MissingBase"

  property "Anchored" { type = Bool }
}
`

// Standard returns the database described by StandardHCL.
func Standard(tb testing.TB) *reflection.Database {
	tb.Helper()
	return MustLoad(tb, StandardHCL)
}
