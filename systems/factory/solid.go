package factory

import (
	"github.com/automoto/dobok/archetypes"
	"github.com/automoto/dobok/components"
	"github.com/automoto/dobok/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSolid(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	solid := archetypes.Solid.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = solid // Link for O(1) lookup

	components.Object.SetValue(solid, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return solid
}
