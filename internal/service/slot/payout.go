package slot

import "fruit_slots/internal/model"

// pairMultiplier Множитель за любые два одинаковых символа
const pairMultiplier = 2

// tripleMultipliers Множители за три одинаковых символа
var tripleMultipliers = map[model.Symbol]int{
	model.Apple:      10,
	model.Orange:     8,
	model.Banana:     6,
	model.Grape:      5,
	model.Strawberry: 4,
	model.Peach:      3,
}

// Classify определяет комбинацию на барабанах и множитель ставки
func Classify(reels model.Reels) (model.OutcomeKind, int) {
	r1, r2, r3 := reels[0], reels[1], reels[2]

	// Три одинаковых
	if r1 == r2 && r2 == r3 {
		return model.OutcomeTriple, tripleMultipliers[r1]
	}

	// Любая пара
	if r1 == r2 || r2 == r3 || r1 == r3 {
		return model.OutcomePair, pairMultiplier
	}

	return model.OutcomeMiss, 0
}

// Payout выигрыш за комбинацию при ставке bet
func Payout(reels model.Reels, bet int) int {
	_, mult := Classify(reels)
	return mult * bet
}
