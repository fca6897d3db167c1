package system

import (
	"math/bits"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/web-bg/engine"
	"github.com/lixenwraith/web-bg/event"
	"github.com/lixenwraith/web-bg/parameter"
)

// FeedbackSystem turns gameplay events into sound, metrics and log lines
type FeedbackSystem struct {
	world       *engine.World
	log         logrus.FieldLogger
	lastDropped uint64
}

func NewFeedbackSystem(world *engine.World) *FeedbackSystem {
	return &FeedbackSystem{
		world: world,
		log:   world.Resources.Logger("feedback"),
	}
}

func (s *FeedbackSystem) Name() string {
	return "feedback"
}

func (s *FeedbackSystem) Priority() int {
	return parameter.PriorityFeedback
}

// Update reports queue overflow since the previous frame
func (s *FeedbackSystem) Update() {
	res := s.world.Resources
	if res.Events == nil {
		return
	}
	dropped := res.Events.Dropped()
	if dropped > s.lastDropped {
		res.Metrics.ObserveDropped(dropped - s.lastDropped)
		s.log.WithField("dropped", dropped-s.lastDropped).Warn("event queue overflow")
		s.lastDropped = dropped
	}
}

func (s *FeedbackSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventFoodEaten,
		event.EventTilesStreamed,
		event.EventWallHit,
	}
}

func (s *FeedbackSystem) HandleEvent(world *engine.World, ev event.GameEvent) {
	res := world.Resources

	switch ev.Type {
	case event.EventFoodEaten:
		p, ok := ev.Payload.(*event.FoodEatenPayload)
		if !ok {
			return
		}
		res.Metrics.ObserveFood()
		if res.Audio != nil {
			res.Audio.PlayPickup()
		}
		s.log.WithFields(logrus.Fields{
			"x":     p.Tile.X,
			"y":     p.Tile.Y,
			"score": p.Score,
			"frame": ev.Frame,
		}).Info("food eaten")

	case event.EventTilesStreamed:
		p, ok := ev.Payload.(*event.TilesStreamedPayload)
		if !ok {
			return
		}
		res.Metrics.ObserveStream(p.Spawned, p.Despawned, p.Materialized)
		s.log.WithFields(logrus.Fields{
			"spawned":      p.Spawned,
			"despawned":    p.Despawned,
			"materialized": p.Materialized,
		}).Debug("tiles streamed")

	case event.EventWallHit:
		p, ok := ev.Payload.(*event.WallHitPayload)
		if !ok {
			return
		}
		res.Metrics.ObserveCorrection(bits.OnesCount8(p.Walls), bits.OnesCount8(p.Corners))
		s.log.WithFields(logrus.Fields{
			"walls":   p.Walls,
			"corners": p.Corners,
		}).Trace("collision correction")
	}
}
