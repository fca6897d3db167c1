package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityMovement  = 10
	PriorityCollision = 20 // After movement, corrects the moved position
	PriorityFood      = 30
	PriorityLight     = 40
	PriorityCamera    = 50
	PriorityStream    = 60 // After camera, uses this frame's view
	PriorityFeedback  = 90 // After game logic, drains the event queue
)
