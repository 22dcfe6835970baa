package component

import "testing"

func TestResolveMerge(t *testing.T) {
	tests := []struct {
		name string
		a, b int
		want MergeOutcome
	}{
		{"tie_first_wins", 0, 0, MergeFirstAbsorbs},
		{"higher_first", 3, 1, MergeFirstAbsorbs},
		{"higher_second", 1, 3, MergeSecondAbsorbs},
		{"first_at_bound_lower_second", 4, 2, MergeNone},
		{"tie_at_bound", 4, 4, MergeNone},
		{"tie_below_bound", 3, 3, MergeFirstAbsorbs},
		{"second_at_bound", 1, 4, MergeNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveMerge(Merge{Count: tc.a}, Merge{Count: tc.b}); got != tc.want {
				t.Fatalf("ResolveMerge(%d, %d) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestMergeCountNeverExceedsBound(t *testing.T) {
	absorber := Merge{}
	for i := 0; i < 10; i++ {
		if ResolveMerge(absorber, Merge{}) != MergeFirstAbsorbs {
			break
		}
		absorber.Count++
	}
	if absorber.Count != MaxMergeCount-1 {
		t.Fatalf("expected count to stop at %d, got %d", MaxMergeCount-1, absorber.Count)
	}
}

func TestSpawnerPeriod(t *testing.T) {
	s := EnemySpawner{BasePeriod: 2, MinPeriod: 0.25}
	tests := []struct {
		name  string
		score float64
		want  float64
	}{
		{"zero_score", 0, 2},
		{"half", 50, 1},
		{"clamped_low", 99, 0.25},
		{"beyond_range", 250, 0.25},
		{"negative_score", -10, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.Period(tc.score); got != tc.want {
				t.Fatalf("Period(%v) = %v, want %v", tc.score, got, tc.want)
			}
		})
	}
}
