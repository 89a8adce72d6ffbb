package systems

import (
	"math"

	"github.com/automoto/dobok/components"
	"github.com/automoto/dobok/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// contactEpsilon absorbs float error left by contact resolution, so touching
// surfaces do not count as overlapping.
const contactEpsilon = 1e-6

// getSpace returns the collision space, or nil if the world has none
func getSpace(w donburi.World) *resolv.Space {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	return components.Space.Get(spaceEntry).Space
}

// queryBox returns the objects carrying tag that overlap the box. resolv's
// Check is cell based, so candidates are narrowed with an exact AABB test.
func queryBox(space *resolv.Space, x, y, w, h float64, tag string) []*resolv.Object {
	if space == nil || w <= 0 || h <= 0 {
		return nil
	}

	probe := resolv.NewObject(x, y, w, h, tags.ResolvProbe)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tag)
	if check == nil {
		return nil
	}

	var hits []*resolv.Object
	for _, o := range check.ObjectsByTags(tag) {
		if overlapsBox(o, x, y, w, h) {
			hits = append(hits, o)
		}
	}
	return hits
}

// QueryCircle returns the objects carrying tag that touch the circle.
func QueryCircle(space *resolv.Space, cx, cy, r float64, tag string) []*resolv.Object {
	var hits []*resolv.Object
	for _, o := range queryBox(space, cx-r, cy-r, 2*r, 2*r, tag) {
		// Closest point on the rectangle to the circle center
		px := clampFloat(cx, o.X, o.X+o.W)
		py := clampFloat(cy, o.Y, o.Y+o.H)
		if math.Hypot(px-cx, py-cy) <= r {
			hits = append(hits, o)
		}
	}
	return hits
}

func overlapsBox(o *resolv.Object, x, y, w, h float64) bool {
	return o.X < x+w-contactEpsilon && x < o.X+o.W-contactEpsilon &&
		o.Y < y+h-contactEpsilon && y < o.Y+o.H-contactEpsilon
}

// sweepSolids checks a move of (dx, dy) against solids and returns the
// collision together with the solids the moved body would really overlap.
func sweepSolids(obj *resolv.Object, dx, dy float64) (*resolv.Collision, []*resolv.Object) {
	check := obj.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return nil, nil
	}

	var hits []*resolv.Object
	for _, s := range check.ObjectsByTags(tags.ResolvSolid) {
		if overlapsBox(s, obj.X+dx, obj.Y+dy, obj.W, obj.H) {
			hits = append(hits, s)
		}
	}
	return check, hits
}

// resolveHorizontalCollision moves obj by dx, stopping at the first solid.
// Returns true if a wall was hit.
func resolveHorizontalCollision(obj *resolv.Object, dx float64) bool {
	if dx == 0 {
		return false
	}

	check, solids := sweepSolids(obj, dx, 0)
	if len(solids) == 0 {
		obj.X += dx
		return false
	}

	nearest := solids[0]
	for _, s := range solids[1:] {
		if (dx > 0 && s.X < nearest.X) || (dx < 0 && s.X+s.W > nearest.X+nearest.W) {
			nearest = s
		}
	}
	obj.X += check.ContactWithObject(nearest).X()
	return true
}

// resolveVerticalCollision moves obj by dy (screen space, down positive).
// Returns landed when the body came to rest on a solid and bumped when it hit
// a ceiling.
func resolveVerticalCollision(obj *resolv.Object, dy float64) (landed, bumped bool) {
	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check, solids := sweepSolids(obj, 0, checkDistance)
	if len(solids) == 0 {
		obj.Y += dy
		return false, false
	}

	nearest := solids[0]
	for _, s := range solids[1:] {
		if (dy >= 0 && s.Y < nearest.Y) || (dy < 0 && s.Y+s.H > nearest.Y+nearest.H) {
			nearest = s
		}
	}
	obj.Y += check.ContactWithObject(nearest).Y()
	return dy >= 0, dy < 0
}

// checkDeadZone returns true if the object is inside a dead zone
func checkDeadZone(obj *resolv.Object) bool {
	return len(touching(obj, tags.ResolvDeadZone)) > 0
}

// touching returns the objects carrying tag that overlap obj
func touching(obj *resolv.Object, tag string) []*resolv.Object {
	return queryBox(obj.Space, obj.X, obj.Y, obj.W, obj.H, tag)
}
