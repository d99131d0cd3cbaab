package core

import "time"

// FirstChain is the chain multiplier of the wave started by a locked piece.
const FirstChain = 2

// Phase is the cascade scheduler state.
type Phase int

const (
	// PhaseIdle has no wave pending.
	PhaseIdle Phase = iota
	// PhaseScheduled has marks placed and none of them collected yet.
	PhaseScheduled
	// PhaseMaturing has started removing cards and waits for the final check.
	PhaseMaturing
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseScheduled:
		return "Scheduled"
	case PhaseMaturing:
		return "Maturing"
	default:
		return "Unknown"
	}
}

// Wave is one staged removal episode.
type Wave struct {
	Chain        int
	Positions    []Pos
	StartedAt    time.Time
	FinalCheckAt time.Time
}

// Outcome describes what Advance did at a final check.
type Outcome struct {
	// Resolved is true when a final check ran this call.
	Resolved bool
	// Motions lists the gravity moves made while settling the board.
	Motions []Motion
	// Next is the wave started by the rescan, if any.
	Next *Wave
	// Bonus is the cascade bonus earned by starting Next.
	Bonus int
}

// Scheduler stages combinations for staggered removal and chains cascades.
// It only touches the board through its removal-mark and gravity methods.
type Scheduler struct {
	delay time.Duration
	bonus int
	phase Phase
	wave  Wave
}

// NewScheduler creates an idle scheduler. delay is the stagger between two
// consecutive cards of a wave; bonus is awarded per cascade wave.
func NewScheduler(delay time.Duration, bonus int) *Scheduler {
	return &Scheduler{delay: delay, bonus: bonus}
}

// Phase returns the current state.
func (s *Scheduler) Phase() Phase {
	return s.phase
}

// Wave returns the pending wave.
func (s *Scheduler) Wave() (Wave, bool) {
	if s.phase == PhaseIdle {
		return Wave{}, false
	}
	return s.wave, true
}

// Chain returns the chain multiplier of the pending wave, or 0 when idle.
func (s *Scheduler) Chain() int {
	if s.phase == PhaseIdle {
		return 0
	}
	return s.wave.Chain
}

// Schedule marks positions for removal starting at now, one every delay, and
// sets the wave's final check after the last card. A pending wave is
// replaced; marks it already placed still mature.
func (s *Scheduler) Schedule(b *Board, positions []Pos, now time.Time, chain int) (Wave, bool) {
	if len(positions) == 0 {
		return Wave{}, false
	}

	for i, p := range positions {
		b.MarkForRemoval([]Pos{p}, now.Add(time.Duration(i)*s.delay))
	}

	s.wave = Wave{
		Chain:        chain,
		Positions:    append([]Pos(nil), positions...),
		StartedAt:    now,
		FinalCheckAt: now.Add(time.Duration(len(positions)) * s.delay),
	}
	s.phase = PhaseScheduled
	return s.wave, true
}

// Collect removes every matured card from the board.
func (s *Scheduler) Collect(b *Board, now time.Time) []Removal {
	removed := b.CollectMatured(now)
	if len(removed) > 0 && s.phase == PhaseScheduled {
		s.phase = PhaseMaturing
	}
	return removed
}

// Advance runs the final check once it is due: the board is settled and
// searched again. A new combination starts the next wave with a higher chain
// and earns the cascade bonus; otherwise the scheduler goes idle.
func (s *Scheduler) Advance(b *Board, difficulty Difficulty, now time.Time) Outcome {
	if s.phase == PhaseIdle || now.Before(s.wave.FinalCheckAt) {
		return Outcome{}
	}

	out := Outcome{Resolved: true, Motions: b.Settle()}
	chain := s.wave.Chain
	s.phase = PhaseIdle

	found := FindCombinations(b, difficulty)
	if next, ok := s.Schedule(b, found, now, chain+1); ok {
		out.Next = &next
		out.Bonus = s.bonus
	}
	return out
}

// Reset drops the pending wave. Marks on the board are left alone.
func (s *Scheduler) Reset() {
	s.phase = PhaseIdle
	s.wave = Wave{}
}
