package domain

import "time"

// Session holds the banked running time of the stopwatch. Anchor is only
// meaningful while State is RunStateRunning.
type Session struct {
	State       RunState
	Anchor      time.Time
	Accumulated time.Duration
}

func NewSession() Session {
	return Session{State: RunStateIdle}
}

// Elapsed is Accumulated plus the open running interval, if any.
func (s Session) Elapsed(now time.Time) time.Duration {
	if s.State != RunStateRunning {
		return s.Accumulated
	}

	open := now.Sub(s.Anchor)
	if open < 0 {
		open = 0
	}

	return s.Accumulated + open
}

func (s Session) ElapsedMs(now time.Time) int64 {
	return s.Elapsed(now).Milliseconds()
}

func (s *Session) Start(now time.Time) error {
	next, err := NextState(s.State, CommandStart)
	if err != nil {
		return err
	}

	s.State = next
	s.Anchor = now
	return nil
}

func (s *Session) Pause(now time.Time) error {
	next, err := NextState(s.State, CommandPause)
	if err != nil {
		return err
	}

	s.Accumulated = s.Elapsed(now)
	s.State = next
	s.Anchor = time.Time{}
	return nil
}

func (s *Session) Reset() {
	s.State = RunStateIdle
	s.Anchor = time.Time{}
	s.Accumulated = 0
}
