package event

// EventType identifies a game event
type EventType int

const (
	// EventFoodEaten fires when the player consumes a collectible
	// Trigger: FoodSystem | Consumer: FeedbackSystem | Payload: *FoodEatenPayload
	EventFoodEaten EventType = iota + 1

	// EventTilesStreamed reports the tiles materialized and released in one frame
	// Trigger: StreamSystem | Consumer: FeedbackSystem | Payload: *TilesStreamedPayload
	EventTilesStreamed

	// EventWallHit fires when the collision resolver moved the player
	// Trigger: CollisionSystem | Consumer: FeedbackSystem | Payload: *WallHitPayload
	EventWallHit

	// EventQuitRequest asks the loop to stop
	// Trigger: input | Consumer: main loop | Payload: nil
	EventQuitRequest
)

var typeNames = map[EventType]string{
	EventFoodEaten:     "FoodEaten",
	EventTilesStreamed: "TilesStreamed",
	EventWallHit:       "WallHit",
	EventQuitRequest:   "QuitRequest",
}

func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent is a queued event, Frame is the frame it was emitted in
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
