package slot

import (
	"context"
	"fruit_slots/internal/model"
	"fruit_slots/internal/service"

	"go.uber.org/zap"
)

// AdjustBet меняет ставку на один шаг. На границе диапазона ставка не меняется.
func (s *serv) AdjustBet(ctx context.Context, id string, dir model.BetDirection) (*model.View, error) {
	if dir != model.BetUp && dir != model.BetDown {
		return nil, service.ErrInvalidDirection
	}

	sess, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	defer sess.Unlock()

	// Во время спина ставка заморожена
	if sess.Spinning() {
		return nil, service.ErrSpinInProgress
	}

	before := sess.Bet
	switch dir {
	case model.BetUp:
		if s.canIncrease(sess.Bet, sess.Balance) {
			sess.Bet += s.game.BetStep()
		}
	case model.BetDown:
		if s.canDecrease(sess.Bet) {
			sess.Bet -= s.game.BetStep()
		}
	}

	if before != sess.Bet {
		s.log.Debug("bet adjusted", zap.String("session_id", id), zap.Int("from", before), zap.Int("to", sess.Bet))
	}

	view := s.render(ctx, sess)
	return &view, nil
}

// betCeiling максимальная допустимая ставка при данном балансе: min(max_bet, balance) с округлением вниз до шага
func (s *serv) betCeiling(balance int) int {
	ceiling := min(s.game.MaxBet(), balance)
	return ceiling - ceiling%s.game.BetStep()
}

func (s *serv) canIncrease(bet, balance int) bool {
	return bet+s.game.BetStep() <= s.betCeiling(balance)
}

func (s *serv) canDecrease(bet int) bool {
	return bet-s.game.BetStep() >= s.game.MinBet()
}

// clampBet опускает ставку до потолка после проигрыша, но не ниже минимальной
func (s *serv) clampBet(bet, balance int) int {
	return max(min(bet, s.betCeiling(balance)), s.game.MinBet())
}
