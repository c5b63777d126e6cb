package stats_repo

import (
	"fruit_slots/internal/model"
	statsModel "fruit_slots/internal/repository/stats_repo/model"
	"sync"
)

// defaultWindowSize Размер окна последних спинов для расчета RTP
const defaultWindowSize = 500

// StatsRepo Реализация репозитория для хранения статистики игры
type StatsRepo struct {
	mtx    sync.RWMutex
	state  statsModel.Stats
	window []statsModel.SpinResult
}

// NewStatsRepository Конструктор репозитория с пустой статистикой
func NewStatsRepository(windowSize int) *StatsRepo {
	if windowSize <= 0 {
		windowSize = defaultWindowSize
	}
	return &StatsRepo{
		state:  statsModel.Stats{WindowSize: windowSize},
		window: make([]statsModel.SpinResult, 0, windowSize),
	}
}

// Stats Возвращает копию текущей статистики
func (r *StatsRepo) Stats() statsModel.Stats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return r.state
}

// UpdateState Обновление статистики после спина
func (r *StatsRepo) UpdateState(bet, payout int, outcome model.OutcomeKind) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalSpins++
	r.state.TotalBet += bet
	r.state.TotalPayout += payout
	if r.state.TotalBet > 0 {
		r.state.CurrentRTP = float64(r.state.TotalPayout) / float64(r.state.TotalBet) * 100
	}

	switch outcome {
	case model.OutcomeTriple:
		r.state.Triples++
	case model.OutcomePair:
		r.state.Pairs++
	default:
		r.state.Misses++
	}

	// Добавляем спин в окно и поддерживаем его размер
	r.window = append(r.window, statsModel.SpinResult{Bet: bet, Payout: payout})
	if len(r.window) > r.state.WindowSize {
		r.window = r.window[1:]
	}

	var windowBet, windowPayout int
	for _, spin := range r.window {
		windowBet += spin.Bet
		windowPayout += spin.Payout
	}

	if windowBet > 0 {
		r.state.WindowRTP = float64(windowPayout) / float64(windowBet) * 100
	} else {
		r.state.WindowRTP = 0
	}
}
