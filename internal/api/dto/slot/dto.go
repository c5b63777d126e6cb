package slot

type SessionResponse struct {
	AccessToken string       `json:"access_token"` // Токен для последующих запросов
	State       ViewResponse `json:"state"`        // Начальное состояние
}

type BetRequest struct {
	Direction string `json:"direction" validate:"required,oneof=up down"` // Направление изменения ставки
}

type ViewResponse struct {
	SessionID      string    `json:"session_id"`
	State          string    `json:"state"`            // idle, spinning, settling, done
	Balance        int       `json:"balance"`          // Баланс
	Bet            int       `json:"bet"`              // Текущая ставка
	Reels          [3]string `json:"reels"`            // Символы на барабанах
	ReelSpinning   [3]bool   `json:"reel_spinning"`    // Какие барабаны еще крутятся
	SpinEnabled    bool      `json:"spin_enabled"`     // Можно ли крутить
	BetDownEnabled bool      `json:"bet_down_enabled"` // Можно ли уменьшить ставку
	BetUpEnabled   bool      `json:"bet_up_enabled"`   // Можно ли увеличить ставку
	Message        string    `json:"message"`          // Сообщение игроку
	MessageKind    string    `json:"message_kind"`     // info, win, lose
}

type SpinResponse struct {
	Reels      [3]string    `json:"reels"`      // Итоговые символы
	Bet        int          `json:"bet"`        // Списанная ставка
	Outcome    string       `json:"outcome"`    // triple, pair, miss
	Multiplier int          `json:"multiplier"` // Множитель ставки
	Winnings   int          `json:"winnings"`   // Выигрыш
	Net        int          `json:"net"`        // Выигрыш минус ставка
	Balance    int          `json:"balance"`    // Баланс после
	GameOver   bool         `json:"game_over"`  // Денег не хватает даже на минимальную ставку
	State      ViewResponse `json:"state"`
}

type StatsResponse struct {
	TotalSpins  int     `json:"total_spins"`
	TotalBet    int     `json:"total_bet"`
	TotalPayout int     `json:"total_payout"`
	RTP         float64 `json:"rtp"`
	WindowRTP   float64 `json:"window_rtp"`
	Triples     int     `json:"triples"`
	Pairs       int     `json:"pairs"`
	Misses      int     `json:"misses"`
}
