package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"user-form/config"
	"user-form/internal/application/ports"
	"user-form/internal/domain/user"
)

type (
	FormSessions struct {
		directory user.Directory
		logger    *zap.Logger
		mCounter  *prometheus.CounterVec
		ttl       time.Duration
		max       int
		now       func() time.Time

		mu    sync.Mutex
		forms map[uuid.UUID]*formSession
	}
	formSession struct {
		form     *UserForm
		lastSeen time.Time
	}
)

// NewFormSessions keeps one UserForm per browser session in memory. Forms idle
// for longer than cfg.TTL are dropped; at cfg.Max the oldest form is evicted.
func NewFormSessions(
	cfg config.Session,
	directory user.Directory,
	logger *zap.Logger,
	mCounter *prometheus.CounterVec,
) *FormSessions {
	return &FormSessions{
		directory: directory,
		logger:    logger,
		mCounter:  mCounter,
		ttl:       cfg.TTL,
		max:       cfg.Max,
		now:       time.Now,
		forms:     make(map[uuid.UUID]*formSession),
	}
}

func (fs *FormSessions) Open() (uuid.UUID, ports.UserForm) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	now := fs.now()
	fs.sweep(now)
	if fs.max > 0 && len(fs.forms) >= fs.max {
		fs.evictOldest()
	}

	id := uuid.New()
	uf := NewUserForm(fs.directory, fs.logger, fs.mCounter)
	fs.forms[id] = &formSession{form: uf, lastSeen: now}

	return id, uf
}

func (fs *FormSessions) Lookup(id uuid.UUID) (ports.UserForm, bool) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	now := fs.now()
	fs.sweep(now)

	s, ok := fs.forms[id]
	if !ok {
		return nil, false
	}
	s.lastSeen = now

	return s.form, true
}

func (fs *FormSessions) Len() int {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	return len(fs.forms)
}

func (fs *FormSessions) sweep(now time.Time) {
	if fs.ttl <= 0 {
		return
	}
	for id, s := range fs.forms {
		if now.Sub(s.lastSeen) > fs.ttl {
			delete(fs.forms, id)
		}
	}
}

func (fs *FormSessions) evictOldest() {
	var (
		oldestID uuid.UUID
		oldest   time.Time
		found    bool
	)
	for id, s := range fs.forms {
		if !found || s.lastSeen.Before(oldest) {
			oldestID, oldest, found = id, s.lastSeen, true
		}
	}
	if found {
		delete(fs.forms, oldestID)
		fs.logger.Warn("form sessions full, evicted oldest", zap.Int("max", fs.max))
	}
}
