package metrics

import (
	"fruit_slots/internal/model"
	statsModel "fruit_slots/internal/repository/stats_repo/model"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Имена метрик: slots_<name>
const (
	namespace    = "slots"
	labelOutcome = "outcome"
	labelReason  = "reason"
)

type Metrics struct {
	spins    *prometheus.CounterVec
	refused  *prometheus.CounterVec
	bet      prometheus.Counter
	payout   prometheus.Counter
	duration prometheus.Histogram
}

// New регистрирует метрики в reg. sessions и stats читаются при каждом scrape
func New(reg prometheus.Registerer, sessions func() int, stats func() statsModel.Stats) *Metrics {
	f := promauto.With(reg)

	m := &Metrics{
		spins: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "spins_total", Help: "Settled spins by outcome",
		}, []string{labelOutcome}),
		refused: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "spins_refused_total", Help: "Refused spin requests by reason",
		}, []string{labelReason}),
		bet: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "bet_coins_total", Help: "Coins wagered",
		}),
		payout: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "payout_coins_total", Help: "Coins paid out",
		}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Name: "spin_duration_seconds", Help: "Time from debit to settlement",
			Buckets: []float64{0.01, 0.1, 0.5, 1, 2, 3, 4, 5, 8},
		}),
	}

	f.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace, Name: "active_sessions", Help: "Live game sessions",
	}, func() float64 { return float64(sessions()) })
	f.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace, Name: "rtp_pct", Help: "Return to player over all spins, %",
	}, func() float64 { return stats().CurrentRTP })
	f.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace, Name: "window_rtp_pct", Help: "Return to player over the recent spin window, %",
	}, func() float64 { return stats().WindowRTP })

	return m
}

func (m *Metrics) SpinSettled(s model.Settlement, took time.Duration) {
	m.spins.WithLabelValues(string(s.Outcome)).Inc()
	m.bet.Add(float64(s.Bet))
	m.payout.Add(float64(s.Winnings))
	m.duration.Observe(took.Seconds())
}

func (m *Metrics) SpinRefused(reason string) {
	m.refused.WithLabelValues(reason).Inc()
}
