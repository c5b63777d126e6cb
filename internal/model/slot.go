package model

// OutcomeKind тип комбинации на барабанах
type OutcomeKind string

const (
	OutcomeTriple OutcomeKind = "triple"
	OutcomePair   OutcomeKind = "pair"
	OutcomeMiss   OutcomeKind = "miss"
)

// MessageKind классификация сообщения для отображения
type MessageKind string

const (
	MessageInfo MessageKind = "info"
	MessageWin  MessageKind = "win"
	MessageLose MessageKind = "lose"
)

// BetDirection направление изменения ставки
type BetDirection string

const (
	BetUp   BetDirection = "up"
	BetDown BetDirection = "down"
)

type Settlement struct {
	Reels      Reels
	Bet        int
	Outcome    OutcomeKind
	Multiplier int
	Winnings   int
	Net        int // Winnings - Bet
	Balance    int // Баланс после начисления
	GameOver   bool
}

// View то, что получает дисплей после каждого изменения состояния
type View struct {
	SessionID      string
	State          State
	Balance        int
	Bet            int
	Reels          Reels
	ReelSpinning   [ReelCount]bool
	SpinEnabled    bool
	BetDownEnabled bool
	BetUpEnabled   bool
	Message        string
	MessageKind    MessageKind
}

type SpinResult struct {
	Settlement Settlement
	View       View
}
