package component

type GateKind int

const (
	GateEntry GateKind = iota
	GateExit
)

func (k GateKind) String() string {
	if k == GateExit {
		return "Exit"
	}
	return "Entry"
}

// Gate is a level trigger volume. For an Exit gate Level is the destination;
// for an Entry gate Level is the origin the player arrives from.
type Gate struct {
	Kind  GateKind
	Level int
}

var GateComponent = NewComponent[Gate]()
