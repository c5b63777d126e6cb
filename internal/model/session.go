package model

import (
	"sync"
	"time"
)

// State состояние игровой сессии
type State string

const (
	StateIdle     State = "idle"
	StateSpinning State = "spinning"
	StateSettling State = "settling"
	StateDone     State = "done"
)

// Session состояние одного игрока. Все поля читаются и меняются под мьютексом.
type Session struct {
	sync.Mutex

	ID           string
	Balance      int
	Bet          int
	State        State
	Reels        Reels
	ReelSpinning [ReelCount]bool
	Message      string
	MessageKind  MessageKind
	CreatedAt    time.Time
}

// Spinning флаг "спин в процессе"
func (s *Session) Spinning() bool {
	return s.State != StateIdle
}
