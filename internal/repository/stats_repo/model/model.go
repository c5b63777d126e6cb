package model

// Stats накопленная статистика игры по всем сессиям
type Stats struct {
	TotalSpins  int // Сколько всего спинов сделано
	TotalBet    int // Сумма всех ставок
	TotalPayout int // Сумма всех выплат

	CurrentRTP float64 // Текущий RTP = (TotalPayout/TotalBet)*100
	WindowRTP  float64 // RTP в окне последних спинов
	WindowSize int     // Размер окна для анализа RTP

	Triples int // Сколько раз выпали три одинаковых
	Pairs   int // Сколько раз выпала пара
	Misses  int // Сколько раз все разные
}

// SpinResult результат спина для окна
type SpinResult struct {
	Bet    int
	Payout int
}
