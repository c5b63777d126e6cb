package model

// Symbol символ на барабане
type Symbol string

const (
	Apple      Symbol = "🍎"
	Orange     Symbol = "🍊"
	Banana     Symbol = "🍌"
	Grape      Symbol = "🍇"
	Strawberry Symbol = "🍓"
	Peach      Symbol = "🍑"
)

// Symbols фиксированный алфавит барабанов (порядок важен для отображения)
var Symbols = [...]Symbol{Apple, Orange, Banana, Grape, Strawberry, Peach}

// Valid проверяет, что символ входит в алфавит
func (s Symbol) Valid() bool {
	for _, sym := range Symbols {
		if sym == s {
			return true
		}
	}
	return false
}

func (s Symbol) String() string {
	return string(s)
}

// ReelCount количество барабанов
const ReelCount = 3

// Reels результат спина: по одному символу на барабан
type Reels [ReelCount]Symbol
