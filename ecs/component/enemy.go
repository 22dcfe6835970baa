package component

// MaxMergeCount bounds Merge.Count. An enemy whose count would reach the
// bound by absorbing cannot absorb.
const MaxMergeCount = 5

// MergeGrowth scales the absorber's sprite and collider per merge.
const MergeGrowth = 1.1

type Merge struct {
	Count int
}

// CanAbsorb reports whether this enemy may absorb another one.
func (m Merge) CanAbsorb() bool {
	return m.Count+1 < MaxMergeCount
}

var MergeComponent = NewComponent[Merge]()

// Dangerous gates harmful contact. Freshly spawned enemies stay inactive
// until Timer runs out.
type Dangerous struct {
	Active bool
	Timer  float64
}

var DangerousComponent = NewComponent[Dangerous]()

// EnemySpawner drives periodic spawning around the player.
type EnemySpawner struct {
	Timer         float64
	BasePeriod    float64
	MinPeriod     float64
	MinDistance   float64
	MaxDistance   float64
	SpeedMin      float64
	SpeedMax      float64
	DangerSeconds float64
}

// Period returns the spawn interval for score, clamped to
// [MinPeriod, BasePeriod].
func (s EnemySpawner) Period(score float64) float64 {
	p := s.BasePeriod * (1 - score/100)
	if p < s.MinPeriod {
		p = s.MinPeriod
	}
	if p > s.BasePeriod {
		p = s.BasePeriod
	}
	return p
}

var EnemySpawnerComponent = NewComponent[EnemySpawner]()

// MergeOutcome names which side of an intersecting pair absorbs the other.
type MergeOutcome int

const (
	MergeNone MergeOutcome = iota
	MergeFirstAbsorbs
	MergeSecondAbsorbs
)

// ResolveMerge picks the absorber for an intersecting pair. The higher count
// wins and the first entity wins ties. A side at the bound cannot absorb, in
// which case the other side is tried.
func ResolveMerge(a, b Merge) MergeOutcome {
	if a.Count >= b.Count && a.CanAbsorb() {
		return MergeFirstAbsorbs
	}
	if b.Count >= a.Count && b.CanAbsorb() {
		return MergeSecondAbsorbs
	}
	return MergeNone
}
