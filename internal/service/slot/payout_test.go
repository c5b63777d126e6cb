package slot

import (
	"fruit_slots/internal/model"
	"testing"

	"pgregory.net/rapid"
)

func TestPayout(t *testing.T) {
	tests := []struct {
		name  string
		reels model.Reels
		bet   int
		want  int
	}{
		{"all distinct", model.Reels{model.Apple, model.Orange, model.Banana}, 10, 0},
		{"pair first two", model.Reels{model.Apple, model.Apple, model.Orange}, 10, 20},
		{"pair last two", model.Reels{model.Orange, model.Grape, model.Grape}, 10, 20},
		{"pair outer", model.Reels{model.Peach, model.Banana, model.Peach}, 30, 60},
		{"triple apple", model.Reels{model.Apple, model.Apple, model.Apple}, 10, 100},
		{"triple orange", model.Reels{model.Orange, model.Orange, model.Orange}, 10, 80},
		{"triple banana", model.Reels{model.Banana, model.Banana, model.Banana}, 10, 60},
		{"triple grape", model.Reels{model.Grape, model.Grape, model.Grape}, 10, 50},
		{"triple strawberry", model.Reels{model.Strawberry, model.Strawberry, model.Strawberry}, 10, 40},
		{"triple peach", model.Reels{model.Peach, model.Peach, model.Peach}, 10, 30},
		{"triple apple max bet", model.Reels{model.Apple, model.Apple, model.Apple}, 100, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Payout(tt.reels, tt.bet); got != tt.want {
				t.Errorf("Payout(%v, %d) = %d, want %d", tt.reels, tt.bet, got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		reels    model.Reels
		wantKind model.OutcomeKind
		wantMult int
	}{
		{model.Reels{model.Apple, model.Orange, model.Banana}, model.OutcomeMiss, 0},
		{model.Reels{model.Grape, model.Strawberry, model.Grape}, model.OutcomePair, 2},
		{model.Reels{model.Banana, model.Banana, model.Banana}, model.OutcomeTriple, 6},
	}

	for _, tt := range tests {
		kind, mult := Classify(tt.reels)
		if kind != tt.wantKind || mult != tt.wantMult {
			t.Errorf("Classify(%v) = (%s, %d), want (%s, %d)", tt.reels, kind, mult, tt.wantKind, tt.wantMult)
		}
	}
}

func symbolGen() *rapid.Generator[model.Symbol] {
	return rapid.SampledFrom(model.Symbols[:])
}

func TestPayoutProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		reels := model.Reels{symbolGen().Draw(t, "r1"), symbolGen().Draw(t, "r2"), symbolGen().Draw(t, "r3")}
		bet := rapid.IntRange(1, 10).Draw(t, "steps") * 10

		got := Payout(reels, bet)

		switch {
		case reels[0] == reels[1] && reels[1] == reels[2]:
			if got != tripleMultipliers[reels[0]]*bet {
				t.Fatalf("triple %v: got %d", reels, got)
			}
		case reels[0] == reels[1] || reels[1] == reels[2] || reels[0] == reels[2]:
			if got != 2*bet {
				t.Fatalf("pair %v: got %d, want %d", reels, got, 2*bet)
			}
		default:
			if got != 0 {
				t.Fatalf("miss %v: got %d, want 0", reels, got)
			}
		}
	})
}
