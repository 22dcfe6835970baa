package system

import (
	"math"
	"math/rand"
	"testing"

	"github.com/milk9111/contour/ecs"
	"github.com/milk9111/contour/ecs/component"
)

func TestMergeEnemies(t *testing.T) {
	tests := []struct {
		name        string
		countA      int
		countB      int
		activeA     bool
		activeB     bool
		wantMerged  bool
		wantSurvive int // 0 for a, 1 for b
	}{
		{"tie_first_wins", 0, 0, true, true, true, 0},
		{"higher_second_wins", 1, 3, true, true, true, 1},
		{"higher_first_wins", 2, 1, true, true, true, 0},
		{"first_at_bound", 4, 3, true, true, false, 0},
		{"both_at_bound", 4, 4, true, true, false, 0},
		{"inactive_first", 0, 0, false, true, false, 0},
		{"inactive_second", 1, 0, true, false, false, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tw := newTestWorld(t)
			a := tw.addEnemy(t, 0, 0, tc.countA, tc.activeA)
			b := tw.addEnemy(t, 1, 0, tc.countB, tc.activeB)
			speedB, _ := ecs.Get(tw.w, b, component.SpeedComponent.Kind())
			speedB.Value = 9

			destroyed, merged := MergeEnemies(tw.w, a, b)
			if merged != tc.wantMerged {
				t.Fatalf("merged = %v, want %v", merged, tc.wantMerged)
			}
			if !merged {
				if !ecs.IsAlive(tw.w, a) || !ecs.IsAlive(tw.w, b) {
					t.Fatal("no-op merge destroyed an enemy")
				}
				return
			}

			survivor, loser := a, b
			startCount := tc.countA
			if tc.wantSurvive == 1 {
				survivor, loser = b, a
				startCount = tc.countB
			}
			if destroyed != loser || ecs.IsAlive(tw.w, loser) || !ecs.IsAlive(tw.w, survivor) {
				t.Fatalf("expected exactly %v destroyed", loser)
			}
			m, _ := ecs.Get(tw.w, survivor, component.MergeComponent.Kind())
			if m.Count != startCount+1 {
				t.Fatalf("count = %d, want %d", m.Count, startCount+1)
			}
			tr, _ := ecs.Get(tw.w, survivor, component.TransformComponent.Kind())
			body, _ := ecs.Get(tw.w, survivor, component.PhysicsBodyComponent.Kind())
			speed, _ := ecs.Get(tw.w, survivor, component.SpeedComponent.Kind())
			if math.Abs(tr.ScaleX-1.1) > 1e-9 || math.Abs(body.Radius-2.75) > 1e-9 || speed.Value != 9 {
				t.Fatalf("absorber scale=%v radius=%v speed=%v", tr.ScaleX, body.Radius, speed.Value)
			}
		})
	}
}

func TestMergeAtBound(t *testing.T) {
	tw := newTestWorld(t)
	a := tw.addEnemy(t, 0, 0, 4, true)
	b := tw.addEnemy(t, 1, 0, 4, true)
	if _, merged := MergeEnemies(tw.w, a, b); merged {
		t.Fatal("two enemies at the bound must not merge")
	}

	c := tw.addEnemy(t, 2, 0, 3, true)
	d := tw.addEnemy(t, 3, 0, 3, true)
	destroyed, merged := MergeEnemies(tw.w, c, d)
	if !merged || destroyed != d {
		t.Fatalf("expected c to absorb d on a tie below the bound")
	}
	m, _ := ecs.Get(tw.w, c, component.MergeComponent.Kind())
	if m.Count != 4 {
		t.Fatalf("count = %d, want 4", m.Count)
	}
}

func TestMergeDeadPairIsNoop(t *testing.T) {
	tw := newTestWorld(t)
	a := tw.addEnemy(t, 0, 0, 0, true)
	b := tw.addEnemy(t, 1, 0, 0, true)
	ecs.DestroyEntity(tw.w, b)

	events := []any{component.EventIntersection{A: uint64(a), B: uint64(b)}}
	ecs.NewScheduler(&emitter{events: events}, NewMergeSystem()).Update(tw.w)

	m, _ := ecs.Get(tw.w, a, component.MergeComponent.Kind())
	if m.Count != 0 || !ecs.IsAlive(tw.w, a) {
		t.Fatal("merge with a dead entity changed the survivor")
	}
}

// Random merge sequences never push a count past the bound and every
// successful merge removes exactly one enemy.
func TestMergeBoundedUnderRandomPairs(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tw := newTestWorld(t)
	var enemies []ecs.Entity
	for i := 0; i < 40; i++ {
		enemies = append(enemies, tw.addEnemy(t, float64(i), 0, 0, true))
	}

	for i := 0; i < 500; i++ {
		a := enemies[rng.Intn(len(enemies))]
		b := enemies[rng.Intn(len(enemies))]
		before := len(ecs.Query(tw.w, component.EnemyTagComponent.Kind()))

		_, merged := MergeEnemies(tw.w, a, b)

		after := len(ecs.Query(tw.w, component.EnemyTagComponent.Kind()))
		if merged && after != before-1 {
			t.Fatalf("merge %d removed %d enemies", i, before-after)
		}
		if !merged && after != before {
			t.Fatalf("no-op %d removed %d enemies", i, before-after)
		}
		ecs.ForEach(tw.w, component.MergeComponent.Kind(), func(_ ecs.Entity, m *component.Merge) {
			if m.Count < 0 || m.Count >= component.MaxMergeCount {
				t.Fatalf("merge count %d out of bounds", m.Count)
			}
		})
	}
}
