package converter

import (
	"fruit_slots/internal/api/dto/slot"
	"fruit_slots/internal/model"
	statsModel "fruit_slots/internal/repository/stats_repo/model"
)

func ToBetDirection(req slot.BetRequest) model.BetDirection {
	return model.BetDirection(req.Direction)
}

func ToViewResponse(v model.View) slot.ViewResponse {
	return slot.ViewResponse{
		SessionID:      v.SessionID,
		State:          string(v.State),
		Balance:        v.Balance,
		Bet:            v.Bet,
		Reels:          toReels(v.Reels),
		ReelSpinning:   v.ReelSpinning,
		SpinEnabled:    v.SpinEnabled,
		BetDownEnabled: v.BetDownEnabled,
		BetUpEnabled:   v.BetUpEnabled,
		Message:        v.Message,
		MessageKind:    string(v.MessageKind),
	}
}

func ToSpinResponse(res model.SpinResult) slot.SpinResponse {
	s := res.Settlement
	return slot.SpinResponse{
		Reels:      toReels(s.Reels),
		Bet:        s.Bet,
		Outcome:    string(s.Outcome),
		Multiplier: s.Multiplier,
		Winnings:   s.Winnings,
		Net:        s.Net,
		Balance:    s.Balance,
		GameOver:   s.GameOver,
		State:      ToViewResponse(res.View),
	}
}

func ToStatsResponse(s statsModel.Stats) slot.StatsResponse {
	return slot.StatsResponse{
		TotalSpins:  s.TotalSpins,
		TotalBet:    s.TotalBet,
		TotalPayout: s.TotalPayout,
		RTP:         s.CurrentRTP,
		WindowRTP:   s.WindowRTP,
		Triples:     s.Triples,
		Pairs:       s.Pairs,
		Misses:      s.Misses,
	}
}

func toReels(reels model.Reels) [3]string {
	var out [3]string
	for i, r := range reels {
		out[i] = r.String()
	}
	return out
}
