package component

import "github.com/jakecoffman/cp"

// BodyKind selects how the physics system builds shapes for an entity.
type BodyKind uint8

const (
	BodyActor BodyKind = iota
	BodyProjectile
	BodyWall
)

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Body and Shape are owned by the physics system.
type PhysicsBody struct {
	Kind   BodyKind
	Radius float64

	Body  *cp.Body
	Shape *cp.Shape
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
