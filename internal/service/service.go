package service

import (
	"context"
	"errors"
	"fruit_slots/internal/model"
	statsModel "fruit_slots/internal/repository/stats_repo/model"
	"time"
)

var (
	ErrSpinInProgress      = errors.New("spin already in progress")
	ErrInsufficientBalance = errors.New("not enough balance")
	ErrInvalidDirection    = errors.New("invalid bet direction")
)

type SlotService interface {
	Create(ctx context.Context) (*model.View, error)
	State(ctx context.Context, id string) (*model.View, error)
	// Snapshot вызывает deliver с текущим представлением под блокировкой сессии,
	// так что снимок упорядочен относительно вызовов Display.Render
	Snapshot(ctx context.Context, id string, deliver func(model.View)) error
	AdjustBet(ctx context.Context, id string, dir model.BetDirection) (*model.View, error)
	Spin(ctx context.Context, id string) (*model.SpinResult, error)
	Close(ctx context.Context, id string) error
	Stats() statsModel.Stats
}

// Display получает актуальное представление сессии после каждого изменения состояния.
// Render вызывается под блокировкой сессии и не должен блокироваться.
type Display interface {
	Render(ctx context.Context, view model.View)
}

// Observer получает события спинов для метрик
type Observer interface {
	SpinSettled(settlement model.Settlement, took time.Duration)
	SpinRefused(reason string)
}
