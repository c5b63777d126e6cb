package repository

import (
	"context"
	"errors"
	"fruit_slots/internal/model"
	statsModel "fruit_slots/internal/repository/stats_repo/model"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExists   = errors.New("session already exists")
)

type SessionRepository interface {
	Create(ctx context.Context, session *model.Session) error
	Get(ctx context.Context, id string) (*model.Session, error)
	Delete(ctx context.Context, id string) error
	Count() int
}

type StatsRepository interface {
	UpdateState(bet, payout int, outcome model.OutcomeKind)
	Stats() statsModel.Stats
}
