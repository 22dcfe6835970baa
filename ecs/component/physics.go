package component

import "github.com/jakecoffman/cp"

// BodyKind selects how a physics body takes part in the simulation.
type BodyKind int

const (
	// BodySensor bodies report overlaps but never push anything.
	BodySensor BodyKind = iota
	// BodyFixed bodies are static solid geometry.
	BodyFixed
	// BodyDynamic bodies are simulated and collide with solid geometry.
	BodyDynamic
)

func (k BodyKind) String() string {
	switch k {
	case BodyFixed:
		return "Fixed"
	case BodyDynamic:
		return "Dynamic"
	default:
		return "Sensor"
	}
}

type ColliderShape int

const (
	ColliderRect ColliderShape = iota
	ColliderCircle
)

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Transform is the collider center.
type PhysicsBody struct {
	Kind   BodyKind
	Shape  ColliderShape
	Radius float64
	Width  float64
	Height float64

	// Moving sensors are kinematic bodies driven from the transform. Static
	// sensors never move.
	Moving bool

	Body    *cp.Body
	CPShape *cp.Shape
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
