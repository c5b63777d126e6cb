package slot

import (
	"context"
	"fruit_slots/internal/model"
	"fruit_slots/internal/service"
	"time"

	"go.uber.org/zap"
)

const (
	refusedInProgress = "in_progress"
	refusedBalance    = "balance"
)

// Spin выполняет спин: списание ставки, выбор символов, анимация барабанов и расчет выигрыша.
// Возвращается только после того, как все барабаны остановились.
func (s *serv) Spin(ctx context.Context, id string) (*model.SpinResult, error) {
	sess, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	bet, err := s.beginSpin(ctx, sess)
	if err != nil {
		return nil, err
	}
	started := time.Now()

	// Исход известен заранее, барабаны только доигрывают анимацию до него
	final := s.gen.DrawReels()

	// Ставка уже списана: отключение клиента не должно обрывать спин
	spinCtx := context.WithoutCancel(ctx)
	if err := s.animate(spinCtx, sess, final); err != nil {
		s.log.Warn("reel animation interrupted", zap.String("session_id", id), zap.Error(err))
	}

	sess.Lock()
	defer sess.Unlock()

	sess.State = model.StateSettling
	settlement := s.settle(sess, final, bet)

	sess.State = model.StateDone
	s.render(spinCtx, sess)

	sess.State = model.StateIdle
	view := s.render(spinCtx, sess)

	took := time.Since(started)
	s.statsRepo.UpdateState(settlement.Bet, settlement.Winnings, settlement.Outcome)
	s.observer.SpinSettled(settlement, took)

	s.log.Info("spin settled",
		zap.String("session_id", id),
		zap.Strings("reels", reelStrings(final)),
		zap.Int("bet", bet),
		zap.Int("winnings", settlement.Winnings),
		zap.Int("balance", settlement.Balance),
		zap.Duration("took", took),
	)

	return &model.SpinResult{Settlement: settlement, View: view}, nil
}

// beginSpin проверяет, что спин разрешен, и списывает ставку
func (s *serv) beginSpin(ctx context.Context, sess *model.Session) (int, error) {
	sess.Lock()
	defer sess.Unlock()

	if sess.Spinning() {
		s.observer.SpinRefused(refusedInProgress)
		return 0, service.ErrSpinInProgress
	}
	if sess.Balance < sess.Bet {
		s.observer.SpinRefused(refusedBalance)
		return 0, service.ErrInsufficientBalance
	}

	bet := sess.Bet
	sess.Balance -= bet
	sess.State = model.StateSpinning
	sess.Message, sess.MessageKind = msgSpinning, model.MessageInfo
	s.render(ctx, sess)

	return bet, nil
}

// settle начисляет выигрыш и проверяет конец игры. Вызывать под блокировкой сессии
func (s *serv) settle(sess *model.Session, final model.Reels, bet int) model.Settlement {
	outcome, mult := Classify(final)
	winnings := mult * bet

	sess.Reels = final
	sess.ReelSpinning = [model.ReelCount]bool{}
	sess.Balance += winnings
	sess.Message, sess.MessageKind = resultMessage(winnings)

	// Проверка конца игры
	gameOver := false
	if sess.Balance < sess.Bet {
		if sess.Balance < s.game.MinBet() {
			gameOver = true
			sess.Message, sess.MessageKind = msgGameOver, model.MessageLose
		} else {
			sess.Bet = s.clampBet(sess.Bet, sess.Balance)
		}
	}

	return model.Settlement{
		Reels:      final,
		Bet:        bet,
		Outcome:    outcome,
		Multiplier: mult,
		Winnings:   winnings,
		Net:        winnings - bet,
		Balance:    sess.Balance,
		GameOver:   gameOver,
	}
}

func reelStrings(reels model.Reels) []string {
	out := make([]string, len(reels))
	for i, r := range reels {
		out[i] = r.String()
	}
	return out
}
