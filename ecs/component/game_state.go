package component

type GameStateKind int

const (
	GameInGame GameStateKind = iota
	GameLoading
	GameOver
)

func (k GameStateKind) String() string {
	switch k {
	case GameInGame:
		return "in_game"
	case GameLoading:
		return "loading"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

type GameState struct {
	State GameStateKind
	Debug bool
}

var GameStateComponent = NewComponent[GameState]()

// Score grows with survival time, twice as fast with the lantern off.
type Score struct {
	Value float64
}

var ScoreComponent = NewComponent[Score]()

// ScreenText is the centered message line. Lines advance with the advance
// key; a positive Timer clears the text when it runs out.
type ScreenText struct {
	Lines []string
	Index int
	Timer float64
}

// Current returns the visible line, or "" when there is none.
func (t ScreenText) Current() string {
	if t.Index < 0 || t.Index >= len(t.Lines) {
		return ""
	}
	return t.Lines[t.Index]
}

var ScreenTextComponent = NewComponent[ScreenText]()
