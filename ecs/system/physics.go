package system

import (
	"math"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/contour/common"
	"github.com/milk9111/contour/ecs"
	"github.com/milk9111/contour/ecs/component"
	"github.com/milk9111/contour/logger"
	"github.com/sirupsen/logrus"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeEnemy
	collisionTypeGate
	collisionTypeSolid
	collisionTypeSensor
)

// PhysicsSystem mirrors PhysicsBody components into a Chipmunk space, steps
// it and reports contacts as events. The player is the only simulated body;
// enemies are kinematic sensors driven from their transforms.
type PhysicsSystem struct {
	space         *cp.Space
	handlersReady bool

	entities map[ecs.Entity]*bodyInfo
	shapes   map[*cp.Shape]ecs.Entity

	// overlaps holds every pair currently touching. started collects the
	// pairs that began touching during this step.
	overlaps map[contactPair]struct{}
	started  []contactPair
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool
	radius float64
}

type contactPair struct {
	a ecs.Entity
	b ecs.Entity
}

func newContactPair(a, b ecs.Entity) contactPair {
	a, b = orderedPair(a, b)
	return contactPair{a: a, b: b}
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{
		space:    newSpace(),
		entities: make(map[ecs.Entity]*bodyInfo),
		shapes:   make(map[*cp.Shape]ecs.Entity),
		overlaps: make(map[contactPair]struct{}),
	}
}

func newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	if ps.space == nil {
		ps.space = newSpace()
		ps.handlersReady = false
	}

	ps.ensureHandlers()
	ps.syncEntities(w)
	ps.driveBodies(w)

	ps.started = ps.started[:0]
	ps.space.Step(common.DeltaSeconds)

	ps.syncTransforms(w)
	ps.emitContacts(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	pairs := [][2]cp.CollisionType{
		{collisionTypeEnemy, collisionTypeEnemy},
		{collisionTypePlayer, collisionTypeEnemy},
		{collisionTypePlayer, collisionTypeGate},
	}
	for _, p := range pairs {
		handler := ps.space.NewCollisionHandler(p[0], p[1])
		handler.UserData = ps
		handler.BeginFunc = beginContact
		handler.SeparateFunc = separateContact
	}

	ps.handlersReady = true
}

func beginContact(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
	sys, ok := userData.(*PhysicsSystem)
	if !ok || sys == nil {
		return true
	}
	pair, ok := sys.arbiterPair(arb)
	if !ok {
		return true
	}
	if _, exists := sys.overlaps[pair]; !exists {
		sys.overlaps[pair] = struct{}{}
		sys.started = append(sys.started, pair)
	}
	return true
}

func separateContact(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
	sys, ok := userData.(*PhysicsSystem)
	if !ok || sys == nil {
		return
	}
	if pair, ok := sys.arbiterPair(arb); ok {
		delete(sys.overlaps, pair)
	}
}

func (ps *PhysicsSystem) arbiterPair(arb *cp.Arbiter) (contactPair, bool) {
	shapeA, shapeB := arb.Shapes()
	a, okA := ps.shapes[shapeA]
	b, okB := ps.shapes[shapeB]
	if !okA || !okB || a == b {
		return contactPair{}, false
	}
	return newContactPair(a, b), true
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if info := ps.entities[e]; info != nil {
			if bodyComp.Shape == component.ColliderCircle && bodyComp.Radius != info.radius {
				if circle, ok := info.shape.Class.(*cp.Circle); ok {
					circle.SetRadius(bodyComp.Radius)
					info.radius = bodyComp.Radius
				}
			}
			return
		}

		info := ps.createBodyInfo(w, e, *transform, *bodyComp)
		if info == nil {
			return
		}
		ps.entities[e] = info
		ps.shapes[info.shape] = e
		bodyComp.Body = info.body
		bodyComp.CPShape = info.shape
	})
}

func (ps *PhysicsSystem) collisionType(w *ecs.World, e ecs.Entity, kind component.BodyKind) cp.CollisionType {
	switch {
	case ecs.Has(w, e, component.PlayerTagComponent.Kind()):
		return collisionTypePlayer
	case ecs.Has(w, e, component.EnemyTagComponent.Kind()):
		return collisionTypeEnemy
	case ecs.Has(w, e, component.GateComponent.Kind()):
		return collisionTypeGate
	case kind == component.BodySensor:
		return collisionTypeSensor
	default:
		return collisionTypeSolid
	}
}

func (ps *PhysicsSystem) createBodyInfo(w *ecs.World, e ecs.Entity, transform component.Transform, bodyComp component.PhysicsBody) *bodyInfo {
	if ps.space == nil {
		return nil
	}

	width, height, radius := bodyComp.Width, bodyComp.Height, bodyComp.Radius
	circle := bodyComp.Shape == component.ColliderCircle
	if circle && radius <= 0 {
		radius = 4
	}
	if !circle && (width <= 0 || height <= 0) {
		width, height = 8, 8
	}

	info := &bodyInfo{radius: radius}
	center := cp.Vector{X: transform.X, Y: transform.Y}

	var shape *cp.Shape
	switch {
	case bodyComp.Kind == component.BodyDynamic:
		var moment float64
		if circle {
			moment = cp.MomentForCircle(1, 0, radius, cp.Vector{})
		} else {
			moment = cp.MomentForBox(1, width, height)
		}
		body := cp.NewBody(1, moment)
		// Top-down bodies never rotate.
		body.SetMoment(math.Inf(1))
		body.SetPosition(center)
		ps.space.AddBody(body)
		info.body = body
	case bodyComp.Moving:
		body := cp.NewKinematicBody()
		body.SetPosition(center)
		ps.space.AddBody(body)
		info.body = body
	default:
		info.body = ps.space.StaticBody
		info.static = true
	}

	if info.static {
		if circle {
			shape = cp.NewCircle(info.body, radius, center)
		} else {
			bb := cp.BB{L: center.X - width/2, B: center.Y - height/2, R: center.X + width/2, T: center.Y + height/2}
			shape = cp.NewBox2(info.body, bb, 0)
		}
	} else {
		if circle {
			shape = cp.NewCircle(info.body, radius, cp.Vector{})
		} else {
			shape = cp.NewBox(info.body, width, height, 0)
		}
	}

	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetSensor(bodyComp.Kind == component.BodySensor)
	shape.SetCollisionType(ps.collisionType(w, e, bodyComp.Kind))
	ps.space.AddShape(shape)
	info.shape = shape

	logger.Log.WithFields(logrus.Fields{
		"entity": e.String(),
		"kind":   bodyComp.Kind.String(),
		"moving": bodyComp.Moving,
	}).Trace("physics body created")
	return info
}

// driveBodies feeds this tick's movement into the space: velocities for
// simulated bodies and positions for kinematic ones.
func (ps *PhysicsSystem) driveBodies(w *ecs.World) {
	for e, info := range ps.entities {
		if info.static || info.body == nil {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		if info.body.GetType() == cp.BODY_KINEMATIC {
			info.body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
			continue
		}

		vx, vy := 0.0, 0.0
		dir, okDir := ecs.Get(w, e, component.MoveDirectionComponent.Kind())
		speed, okSpeed := ecs.Get(w, e, component.SpeedComponent.Kind())
		if okDir && okSpeed {
			vx, vy = dir.X*speed.Value, dir.Y*speed.Value
		}
		info.body.SetVelocity(vx, vy)
	}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.entities {
		if info.static || info.body == nil || info.body.GetType() != cp.BODY_DYNAMIC {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		pos := info.body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
	}
}

// emitContacts reports pairs that started touching this step and every pair
// still touching. Both lists are ordered by handle so merges resolve the same
// way every run.
func (ps *PhysicsSystem) emitContacts(w *ecs.World) {
	started := append([]contactPair(nil), ps.started...)
	sortPairs(started)
	for _, p := range started {
		if !ecs.IsAlive(w, p.a) || !ecs.IsAlive(w, p.b) {
			continue
		}
		ecs.Emit(w, component.EventCollisionStarted{A: uint64(p.a), B: uint64(p.b)})
	}

	ongoing := make([]contactPair, 0, len(ps.overlaps))
	for p := range ps.overlaps {
		ongoing = append(ongoing, p)
	}
	sortPairs(ongoing)
	for _, p := range ongoing {
		if !ecs.IsAlive(w, p.a) || !ecs.IsAlive(w, p.b) {
			continue
		}
		ecs.Emit(w, component.EventIntersection{A: uint64(p.a), B: uint64(p.b)})
	}
}

func sortPairs(pairs []contactPair) {
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].a != pairs[j].a {
			return pairs[i].a < pairs[j].a
		}
		return pairs[i].b < pairs[j].b
	})
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if ecs.IsAlive(w, e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}

		if info.shape != nil && ps.space != nil {
			ps.space.RemoveShape(info.shape)
			delete(ps.shapes, info.shape)
		}
		if info.body != nil && !info.static && ps.space != nil {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}

	for p := range ps.overlaps {
		if ps.entities[p.a] == nil || ps.entities[p.b] == nil {
			delete(ps.overlaps, p)
		}
	}
}
