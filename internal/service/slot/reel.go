package slot

import (
	"context"
	"fruit_slots/internal/model"
	"time"

	"golang.org/x/sync/errgroup"
)

// animate запускает анимацию всех барабанов и ждет, пока остановится каждый
func (s *serv) animate(ctx context.Context, sess *model.Session, final model.Reels) error {
	g, gctx := errgroup.WithContext(ctx)
	for i := range final {
		g.Go(func() error {
			return s.spinReel(gctx, sess, i, final[i])
		})
	}
	return g.Wait()
}

// spinReel крутит один барабан: случайные символы каждые frame_interval,
// затем пауза reel*reel_stagger и остановка на итоговом символе.
func (s *serv) spinReel(ctx context.Context, sess *model.Session, reel int, final model.Symbol) error {
	// Барабан всегда останавливается на итоговом символе, даже если анимацию прервали
	defer s.setReel(ctx, sess, reel, final, false)

	frames := s.anim.MinFrames()
	if jitter := s.anim.FrameJitter(); jitter > 0 {
		frames += s.gen.IntN(jitter)
	}

	var tick <-chan time.Time
	if interval := s.anim.FrameInterval(); interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for f := 0; f < frames; f++ {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		}
		s.setReel(ctx, sess, reel, s.gen.Draw(), true)
	}

	return sleep(ctx, time.Duration(reel)*s.anim.ReelStagger())
}

// setReel обновляет символ барабана и перерисовывает дисплей
func (s *serv) setReel(ctx context.Context, sess *model.Session, reel int, sym model.Symbol, spinning bool) {
	sess.Lock()
	defer sess.Unlock()

	sess.Reels[reel] = sym
	sess.ReelSpinning[reel] = spinning
	s.render(ctx, sess)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
