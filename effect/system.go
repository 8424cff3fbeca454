package effect

import (
	"github.com/lixenwraith/vi-volley/component"
	"github.com/lixenwraith/vi-volley/event"
	"github.com/lixenwraith/vi-volley/parameter"
)

// System feeds kill and spawn events into the cosmetic effects
type System struct {
	Impacts *ImpactSprites
	Burns   *BurnMarks
	Muzzle  *MuzzleFlash
}

func NewSystem() *System {
	return &System{
		Impacts: NewImpactSprites(ImpactSheet),
		Burns:   NewBurnMarks(parameter.BurnMarkLifetime),
		Muzzle:  NewMuzzleFlash(MuzzleSheet),
	}
}

func (s *System) Name() string { return "effect" }

func (s *System) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventEnemyKilled,
		event.EventVolleySpawned,
	}
}

func (s *System) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventEnemyKilled:
		if p, ok := ev.Payload.(*event.BatchPayload[component.Impact]); ok {
			for _, imp := range p.Entries {
				s.Impacts.Add(imp.Position)
				s.Burns.Add(imp.Position)
			}
		}
	case event.EventVolleySpawned:
		s.Muzzle.Add()
	}
}

func (s *System) Update(dt float64) {
	s.Impacts.Update(dt)
	s.Burns.Update(dt)
	s.Muzzle.Update(dt)
}
