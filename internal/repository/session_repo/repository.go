package session_repo

import (
	"context"
	"fruit_slots/internal/model"
	"fruit_slots/internal/repository"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

type repo struct {
	// mu делает продление и удаление атомарными относительно друг друга
	mu    sync.Mutex
	cache *cache.Cache
}

// NewSessionRepository хранилище сессий в памяти процесса.
// Сессия живет ttl с момента последнего обращения, после чего вычищается.
func NewSessionRepository(ttl, cleanupInterval time.Duration) repository.SessionRepository {
	return &repo{
		cache: cache.New(ttl, cleanupInterval),
	}
}

// Create - сохраняет новую сессию. Ошибка, если сессия с таким ID уже есть
func (r *repo) Create(_ context.Context, session *model.Session) error {
	if err := r.cache.Add(session.ID, session, cache.DefaultExpiration); err != nil {
		return repository.ErrSessionExists
	}
	return nil
}

// Get - возвращает сессию по ID и продлевает ей жизнь
func (r *repo) Get(_ context.Context, id string) (*model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.cache.Get(id)
	if !ok {
		return nil, repository.ErrSessionNotFound
	}

	session := v.(*model.Session)
	// Replace не воскрешает сессию, которую успели удалить или вычистить
	_ = r.cache.Replace(id, session, cache.DefaultExpiration)

	return session, nil
}

// Delete - удаляет сессию. Удаление несуществующей сессии - ошибка
func (r *repo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cache.Get(id); !ok {
		return repository.ErrSessionNotFound
	}
	r.cache.Delete(id)
	return nil
}

// Count - количество живых сессий. Items пропускает истекшие, но еще не вычищенные записи
func (r *repo) Count() int {
	return len(r.cache.Items())
}
