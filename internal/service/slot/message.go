package slot

import (
	"fmt"
	"fruit_slots/internal/model"
)

const (
	msgWelcome  = "Press spin to play!"
	msgSpinning = "Spinning..."
	msgLose     = "So close. Try again! 💪"
	msgGameOver = "Game over! Not enough coins. 😢"
)

func winMessage(winnings int) string {
	return fmt.Sprintf("Congratulations! You won %d coins! 🎉", winnings)
}

// resultMessage сообщение по итогам спина
func resultMessage(winnings int) (string, model.MessageKind) {
	if winnings > 0 {
		return winMessage(winnings), model.MessageWin
	}
	return msgLose, model.MessageLose
}
