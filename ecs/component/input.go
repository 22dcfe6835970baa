package component

// Input stores per-frame input state. The input system writes it to the
// single entity carrying it.
type Input struct {
	MoveX float64
	MoveY float64

	LanternPressed     bool
	GlobalLightPressed bool
	TransitionPressed  bool
	AdvanceTextPressed bool
	InteractPressed    bool
	CopyCursorPressed  bool
	OptionsPressed     bool

	CursorScreenX float64
	CursorScreenY float64
}

var InputComponent = NewComponent[Input]()

// Interactable is a level object that shows Text when clicked while hovered.
type Interactable struct {
	Text    string
	Radius  float64
	Hovered bool
}

var InteractableComponent = NewComponent[Interactable]()
