package component

// Input stores the directional flags active for the current frame.
type Input struct {
	Up   bool
	Down bool
}

var InputComponent = NewComponent[Input]()
