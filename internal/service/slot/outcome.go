package slot

import (
	"fruit_slots/internal/model"
	"math/rand/v2"
	"sync"
)

// Generator генератор исходов барабанов. Безопасен для конкурентного использования.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand // nil - общий генератор процесса
}

// NewGenerator генератор на общем источнике случайности процесса
func NewGenerator() *Generator {
	return &Generator{}
}

// NewSeededGenerator генератор на заданном источнике (для тестов и воспроизводимости)
func NewSeededGenerator(src rand.Source) *Generator {
	return &Generator{rnd: rand.New(src)}
}

// Draw равновероятно выбирает один из символов алфавита
func (g *Generator) Draw() model.Symbol {
	return model.Symbols[g.IntN(len(model.Symbols))]
}

// DrawReels тянет по символу на каждый барабан независимо
func (g *Generator) DrawReels() model.Reels {
	var reels model.Reels
	for i := range reels {
		reels[i] = g.Draw()
	}
	return reels
}

// IntN число в [0, n)
func (g *Generator) IntN(n int) int {
	if g.rnd == nil {
		return rand.IntN(n)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rnd.IntN(n)
}
