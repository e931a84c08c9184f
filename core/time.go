// Package core provides the framework's shared simulation components:
// the frame clock, spatial transforms, and logical entity names.
package core

import (
	"github.com/ajwinter/amethyst/ecs"
)

// Time is the frame clock singleton. DeltaSeconds is the elapsed time
// since the previous tick and FrameNumber increases by one per tick,
// starting at 1 on the first tick.
type Time struct {
	DeltaSeconds float64
	FrameNumber  uint64
}

// TimeSystem advances the Time singleton from the scheduler's frame
// delta. Register it before any system that reads Time.
type TimeSystem struct {
	Time ecs.Singleton[Time]
}

func (s *TimeSystem) Execute(frame *ecs.UpdateFrame) {
	t := s.Time.Get()
	t.DeltaSeconds = frame.DeltaTime
	t.FrameNumber++
}
