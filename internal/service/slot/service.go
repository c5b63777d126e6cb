package slot

import (
	"context"
	"fmt"
	"fruit_slots/internal/config"
	"fruit_slots/internal/model"
	"fruit_slots/internal/repository"
	statsModel "fruit_slots/internal/repository/stats_repo/model"
	"fruit_slots/internal/service"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type serv struct {
	repo      repository.SessionRepository
	statsRepo repository.StatsRepository
	gen       *Generator
	display   service.Display
	observer  service.Observer
	game      config.GameConfig
	anim      config.AnimationConfig
	log       *zap.Logger
}

type Deps struct {
	Repo      repository.SessionRepository
	StatsRepo repository.StatsRepository
	Generator *Generator
	Display   service.Display
	Observer  service.Observer
	Game      config.GameConfig
	Animation config.AnimationConfig
	Log       *zap.Logger
}

// NewSlotService Создать новый слот 3 барабана
func NewSlotService(deps Deps) service.SlotService {
	s := &serv{
		repo:      deps.Repo,
		statsRepo: deps.StatsRepo,
		gen:       deps.Generator,
		display:   deps.Display,
		observer:  deps.Observer,
		game:      deps.Game,
		anim:      deps.Animation,
		log:       deps.Log,
	}
	if s.gen == nil {
		s.gen = NewGenerator()
	}
	if s.display == nil {
		s.display = nopDisplay{}
	}
	if s.observer == nil {
		s.observer = nopObserver{}
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	return s
}

// Create открывает новую сессию со стартовым балансом и минимальной ставкой
func (s *serv) Create(ctx context.Context) (*model.View, error) {
	sess := &model.Session{
		ID:          uuid.NewString(),
		Balance:     s.game.StartBalance(),
		Bet:         s.game.MinBet(),
		State:       model.StateIdle,
		Reels:       model.Reels{model.Symbols[0], model.Symbols[1], model.Symbols[2]},
		Message:     msgWelcome,
		MessageKind: model.MessageInfo,
		CreatedAt:   time.Now(),
	}
	if sess.Balance < s.game.MinBet() {
		sess.Message, sess.MessageKind = msgGameOver, model.MessageLose
	}

	if err := s.repo.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.Info("session created", zap.String("session_id", sess.ID), zap.Int("balance", sess.Balance))

	sess.Lock()
	defer sess.Unlock()
	view := s.render(ctx, sess)
	return &view, nil
}

// State текущее представление сессии
func (s *serv) State(ctx context.Context, id string) (*model.View, error) {
	sess, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	defer sess.Unlock()
	view := s.viewOf(sess)
	return &view, nil
}

func (s *serv) Snapshot(ctx context.Context, id string, deliver func(model.View)) error {
	sess, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	sess.Lock()
	defer sess.Unlock()
	deliver(s.viewOf(sess))
	return nil
}

// Close закрывает сессию
func (s *serv) Close(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("session closed", zap.String("session_id", id))
	return nil
}

// Stats статистика по всем спинам процесса
func (s *serv) Stats() statsModel.Stats {
	return s.statsRepo.Stats()
}

// render собирает представление и отдает его дисплею. Вызывать под блокировкой сессии
func (s *serv) render(ctx context.Context, sess *model.Session) model.View {
	view := s.viewOf(sess)
	s.display.Render(ctx, view)
	return view
}

func (s *serv) viewOf(sess *model.Session) model.View {
	spinning := sess.Spinning()
	return model.View{
		SessionID:      sess.ID,
		State:          sess.State,
		Balance:        sess.Balance,
		Bet:            sess.Bet,
		Reels:          sess.Reels,
		ReelSpinning:   sess.ReelSpinning,
		SpinEnabled:    !spinning && sess.Balance >= sess.Bet,
		BetDownEnabled: !spinning && s.canDecrease(sess.Bet),
		BetUpEnabled:   !spinning && s.canIncrease(sess.Bet, sess.Balance),
		Message:        sess.Message,
		MessageKind:    sess.MessageKind,
	}
}

type nopDisplay struct{}

func (nopDisplay) Render(context.Context, model.View) {}

type nopObserver struct{}

func (nopObserver) SpinSettled(model.Settlement, time.Duration) {}
func (nopObserver) SpinRefused(string)                          {}
