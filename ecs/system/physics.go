package system

import (
	"cmp"
	"slices"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/maskbound/ecs"
	"github.com/milk9111/maskbound/ecs/component"
)

const (
	collisionTypeActor cp.CollisionType = iota + 1
	collisionTypeProjectile
	collisionTypeWall
)

// Contact is a projectile touching something. Other is the body or wall
// entity; Wall is set for terrain. The normal points from the projectile
// toward Other.
type Contact struct {
	Projectile ecs.Entity
	Other      ecs.Entity
	Wall       bool
	NormalX    float64
	NormalY    float64
}

// ContactSource is what DamageSystem reads contacts from.
type ContactSource interface {
	Contacts() []Contact
}

// PhysicsSystem mirrors bodies into a Chipmunk space as kinematic circles
// and static segments, steps it, and records projectile contacts. It does
// not resolve penetration; positions stay owned by the ECS transforms.
type PhysicsSystem struct {
	space         *cp.Space
	handlersReady bool

	entities map[ecs.Entity]*bodyInfo
	shapes   map[*cp.Shape]ecs.Entity
	contacts []Contact
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	kind   component.BodyKind
	static bool
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{
		space:    cp.NewSpace(),
		entities: make(map[ecs.Entity]*bodyInfo),
		shapes:   make(map[*cp.Shape]ecs.Entity),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// Contacts returns the contacts found by the last Update, ordered by
// projectile, then bodies before walls.
func (ps *PhysicsSystem) Contacts() []Contact {
	if ps == nil {
		return nil
	}
	return ps.contacts
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.ensureHandlers()
	ps.cleanupEntities(w)
	ps.syncEntities(w)

	ps.contacts = ps.contacts[:0]
	ps.space.Step(w.DeltaTime())

	slices.SortStableFunc(ps.contacts, func(a, b Contact) int {
		if c := cmp.Compare(a.Projectile, b.Projectile); c != 0 {
			return c
		}
		if a.Wall != b.Wall {
			if a.Wall {
				return 1
			}
			return -1
		}
		return cmp.Compare(a.Other, b.Other)
	})
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady {
		return
	}

	bodyHandler := ps.space.NewCollisionHandler(collisionTypeProjectile, collisionTypeActor)
	bodyHandler.UserData = ps
	bodyHandler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		if sys, ok := userData.(*PhysicsSystem); ok && sys != nil {
			sys.record(arb, false)
		}
		return true
	}

	wallHandler := ps.space.NewCollisionHandler(collisionTypeProjectile, collisionTypeWall)
	wallHandler.UserData = ps
	wallHandler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		if sys, ok := userData.(*PhysicsSystem); ok && sys != nil {
			sys.record(arb, true)
		}
		return true
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) record(arb *cp.Arbiter, wall bool) {
	shapeA, shapeB := arb.Shapes()
	proj, okA := ps.shapes[shapeA]
	other, okB := ps.shapes[shapeB]
	if !okA || !okB {
		return
	}
	n := arb.Normal()
	if info := ps.entities[proj]; info == nil || info.kind != component.BodyProjectile {
		proj, other = other, proj
		n = n.Neg()
	}
	ps.contacts = append(ps.contacts, Contact{
		Projectile: proj,
		Other:      other,
		Wall:       wall,
		NormalX:    n.X,
		NormalY:    n.Y,
	})
}

// cleanupEntities drops shapes of destroyed entities and of a mask that is
// currently riding a host.
func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) && enabled(w, e) {
			continue
		}
		ps.removeEntity(w, e, info)
	}
}

func (ps *PhysicsSystem) removeEntity(w *ecs.World, e ecs.Entity, info *bodyInfo) {
	if info.shape != nil {
		ps.space.RemoveShape(info.shape)
		delete(ps.shapes, info.shape)
	}
	if info.body != nil && !info.static {
		ps.space.RemoveBody(info.body)
	}
	delete(ps.entities, e)

	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
		body.Body = nil
		body.Shape = nil
	}
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	for _, e := range w.Query(component.PhysicsBodyComponent.Kind()) {
		if !enabled(w, e) {
			continue
		}
		body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		info, ok := ps.entities[e]
		if !ok {
			info = ps.createBody(w, e, body)
			if info == nil {
				continue
			}
			ps.entities[e] = info
			ps.shapes[info.shape] = e
			body.Body = info.body
			body.Shape = info.shape
		}
		if info.static {
			continue
		}
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			info.body.SetPosition(cp.Vector{X: t.X, Y: t.Y})
		}
	}
}

func (ps *PhysicsSystem) createBody(w *ecs.World, e ecs.Entity, pb *component.PhysicsBody) *bodyInfo {
	filter := shapeFilter(w, e)

	if pb.Kind == component.BodyWall {
		wall, ok := ecs.Get(w, e, component.WallComponent.Kind())
		if !ok {
			return nil
		}
		shape := cp.NewSegment(ps.space.StaticBody,
			cp.Vector{X: wall.X1, Y: wall.Y1},
			cp.Vector{X: wall.X2, Y: wall.Y2},
			max(pb.Radius, 0))
		shape.SetCollisionType(collisionTypeWall)
		shape.SetFilter(filter)
		shape.UserData = e
		ps.space.AddShape(shape)
		return &bodyInfo{body: ps.space.StaticBody, shape: shape, kind: pb.Kind, static: true}
	}

	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || pb.Radius <= 0 {
		return nil
	}
	body := cp.NewKinematicBody()
	body.SetPosition(cp.Vector{X: t.X, Y: t.Y})
	ps.space.AddBody(body)

	shape := cp.NewCircle(body, pb.Radius, cp.Vector{})
	shape.SetSensor(true)
	if pb.Kind == component.BodyProjectile {
		shape.SetCollisionType(collisionTypeProjectile)
	} else {
		shape.SetCollisionType(collisionTypeActor)
	}
	shape.SetFilter(filter)
	shape.UserData = e
	ps.space.AddShape(shape)

	return &bodyInfo{body: body, shape: shape, kind: pb.Kind}
}

func shapeFilter(w *ecs.World, e ecs.Entity) cp.ShapeFilter {
	category := component.CategoryActor
	mask := ^uint32(0)
	if layer, ok := ecs.Get(w, e, component.CollisionLayerComponent.Kind()); ok {
		if layer.Category != 0 {
			category = layer.Category
		}
		if layer.Mask != 0 {
			mask = layer.Mask
		}
	}
	return cp.NewShapeFilter(cp.NO_GROUP, uint(category), uint(mask))
}

// enabled is false for a mask that is not in the world on its own.
func enabled(w *ecs.World, e ecs.Entity) bool {
	if mask, ok := ecs.Get(w, e, component.MaskComponent.Kind()); ok {
		return mask.Active
	}
	if p, ok := ecs.Get(w, e, component.ProjectileComponent.Kind()); ok {
		return !p.Spent
	}
	return true
}
