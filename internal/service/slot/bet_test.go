package slot

import (
	"context"
	"errors"
	"fruit_slots/internal/model"
	"fruit_slots/internal/service"
	"testing"

	"pgregory.net/rapid"
)

func TestAdjustBetBounds(t *testing.T) {
	ctx := context.Background()
	f := newFixture(defaultGame, fastAnim, 1)
	view, _ := f.svc.Create(ctx)
	id := view.SessionID

	// Вниз от минимума ставка не уходит
	v, err := f.svc.AdjustBet(ctx, id, model.BetDown)
	if err != nil {
		t.Fatal(err)
	}
	if v.Bet != 10 {
		t.Errorf("bet = %d, want 10", v.Bet)
	}

	for i := 0; i < 20; i++ {
		v, err = f.svc.AdjustBet(ctx, id, model.BetUp)
		if err != nil {
			t.Fatal(err)
		}
	}
	if v.Bet != 100 || v.BetUpEnabled || !v.BetDownEnabled {
		t.Errorf("unexpected view at max bet: %+v", v)
	}

	v, _ = f.svc.AdjustBet(ctx, id, model.BetDown)
	if v.Bet != 90 {
		t.Errorf("bet = %d, want 90", v.Bet)
	}
}

func TestAdjustBetCappedByBalance(t *testing.T) {
	ctx := context.Background()
	f := newFixture(testGame{balance: 35, min: 10, max: 100, step: 10}, fastAnim, 1)
	view, _ := f.svc.Create(ctx)

	var v *model.View
	for i := 0; i < 5; i++ {
		v, _ = f.svc.AdjustBet(ctx, view.SessionID, model.BetUp)
	}
	if v.Bet != 30 {
		t.Errorf("bet = %d, want 30 (balance 35)", v.Bet)
	}
}

func TestAdjustBetInvalidDirection(t *testing.T) {
	f := newFixture(defaultGame, fastAnim, 1)
	view, _ := f.svc.Create(context.Background())

	if _, err := f.svc.AdjustBet(context.Background(), view.SessionID, "sideways"); !errors.Is(err, service.ErrInvalidDirection) {
		t.Errorf("err = %v, want ErrInvalidDirection", err)
	}
}

func TestAdjustBetProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		balance := rapid.IntRange(10, 300).Draw(t, "balance")
		f := newFixture(testGame{balance: balance, min: 10, max: 100, step: 10}, fastAnim, 1)
		view, err := f.svc.Create(context.Background())
		if err != nil {
			t.Fatal(err)
		}

		dirs := rapid.SliceOf(rapid.SampledFrom([]model.BetDirection{model.BetUp, model.BetDown})).Draw(t, "dirs")
		ceiling := min(100, balance)
		for _, dir := range dirs {
			v, err := f.svc.AdjustBet(context.Background(), view.SessionID, dir)
			if err != nil {
				t.Fatal(err)
			}
			if v.Bet < 10 || v.Bet > ceiling || v.Bet%10 != 0 {
				t.Fatalf("bet %d escaped [10, %d] after %s", v.Bet, ceiling, dir)
			}
		}
	})
}

func TestSettle(t *testing.T) {
	miss := model.Reels{model.Apple, model.Orange, model.Banana}
	triple := model.Reels{model.Apple, model.Apple, model.Apple}

	tests := []struct {
		name         string
		balance      int // баланс после списания ставки
		bet          int
		reels        model.Reels
		wantBalance  int
		wantBet      int
		wantGameOver bool
		wantKind     model.MessageKind
	}{
		{"win", 990, 10, triple, 1090, 10, false, model.MessageWin},
		{"loss keeps bet", 900, 100, miss, 900, 100, false, model.MessageLose},
		{"loss clamps bet", 40, 50, miss, 40, 40, false, model.MessageLose},
		{"loss clamps bet to step", 35, 50, miss, 35, 30, false, model.MessageLose},
		{"loss game over", 0, 10, miss, 0, 10, true, model.MessageLose},
		{"loss below minimum", 5, 20, miss, 5, 20, true, model.MessageLose},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(defaultGame, fastAnim, 1)
			sess := &model.Session{Balance: tt.balance, Bet: tt.bet, State: model.StateSettling}

			st := f.serv.settle(sess, tt.reels, tt.bet)

			if sess.Balance != tt.wantBalance || st.Balance != tt.wantBalance {
				t.Errorf("balance = %d, want %d", sess.Balance, tt.wantBalance)
			}
			if sess.Bet != tt.wantBet {
				t.Errorf("bet = %d, want %d", sess.Bet, tt.wantBet)
			}
			if st.GameOver != tt.wantGameOver {
				t.Errorf("game over = %v, want %v", st.GameOver, tt.wantGameOver)
			}
			if sess.MessageKind != tt.wantKind {
				t.Errorf("message kind = %s, want %s", sess.MessageKind, tt.wantKind)
			}
			if tt.wantGameOver && sess.Message != msgGameOver {
				t.Errorf("message = %q, want game over", sess.Message)
			}
		})
	}
}
