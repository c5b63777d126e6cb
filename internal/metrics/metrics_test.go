package metrics

import (
	"fruit_slots/internal/model"
	statsModel "fruit_slots/internal/repository/stats_repo/model"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg,
		func() int { return 3 },
		func() statsModel.Stats { return statsModel.Stats{CurrentRTP: 97.5, WindowRTP: 80} },
	)

	m.SpinSettled(model.Settlement{Outcome: model.OutcomePair, Bet: 10, Winnings: 20}, time.Second)
	m.SpinSettled(model.Settlement{Outcome: model.OutcomeMiss, Bet: 30}, time.Second)
	m.SpinRefused("balance")

	if got := testutil.ToFloat64(m.spins.WithLabelValues("pair")); got != 1 {
		t.Errorf("pair spins = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.bet); got != 40 {
		t.Errorf("bet = %v, want 40", got)
	}
	if got := testutil.ToFloat64(m.payout); got != 20 {
		t.Errorf("payout = %v, want 20", got)
	}
	if got := testutil.ToFloat64(m.refused.WithLabelValues("balance")); got != 1 {
		t.Errorf("refused = %v, want 1", got)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}
	gauges := map[string]float64{}
	for _, mf := range families {
		if mf.GetType().String() == "GAUGE" {
			gauges[mf.GetName()] = mf.GetMetric()[0].GetGauge().GetValue()
		}
	}
	if gauges["slots_active_sessions"] != 3 || gauges["slots_rtp_pct"] != 97.5 || gauges["slots_window_rtp_pct"] != 80 {
		t.Errorf("unexpected gauges: %v", gauges)
	}
}
