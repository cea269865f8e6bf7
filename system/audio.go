package system

import (
	"github.com/seltf/shape-game/engine"
	"github.com/seltf/shape-game/event"
	"github.com/seltf/shape-game/parameter"
)

// AudioSystem forwards sound requests to the audio backend.
// A nil backend (audio unavailable or disabled) drops them silently
type AudioSystem struct {
	world *engine.World
}

func NewAudioSystem(world *engine.World) *AudioSystem {
	return &AudioSystem{world: world}
}

func (s *AudioSystem) Name() string { return "audio" }

func (s *AudioSystem) Priority() int { return parameter.PriorityAudio }

func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventSoundRequest}
}

func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type != event.EventSoundRequest {
		return
	}
	p, ok := ev.Payload.(*event.SoundRequestPayload)
	if !ok {
		return
	}
	if player := s.world.Resource.Audio.Player; player != nil {
		player.Play(p.Sound)
	}
}

func (s *AudioSystem) Update() {}
