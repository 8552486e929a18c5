package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"critiquelab/internal/domain"
	"critiquelab/internal/kv"
)

// MaxCritiques limita el historial de criticas guardadas por usuario.
const MaxCritiques = 50

const critiqueKeyPrefix = "critiques:"

// CritiqueStore mantiene el historial de criticas por usuario, mas nueva
// primero, con el mismo contrato read-modify-write que ScoreStore.
type CritiqueStore struct {
	mu     sync.Mutex
	kv     kv.Store
	logger *zap.Logger
	cache  map[string][]domain.SavedCritique
}

// NewCritiqueStore crea un CritiqueStore sobre el almacen durable dado.
func NewCritiqueStore(store kv.Store, logger *zap.Logger) *CritiqueStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CritiqueStore{
		kv:     store,
		logger: logger,
		cache:  make(map[string][]domain.SavedCritique),
	}
}

// Add guarda una critica nueva con id y timestamp frescos y devuelve su id.
func (s *CritiqueStore) Add(ctx context.Context, userID, inputText string, critique domain.CritiqueResult) domain.SavedCritique {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := domain.SavedCritique{
		ID:        uuid.NewString(),
		InputText: inputText,
		Critique:  critique,
		Persona:   critique.Persona,
		CreatedAt: time.Now().UTC(),
	}

	seq := append([]domain.SavedCritique{saved}, s.loadLocked(ctx, userID)...)
	if len(seq) > MaxCritiques {
		seq = seq[:MaxCritiques]
	}
	s.cache[userID] = seq
	s.persistLocked(ctx, userID, seq)

	return saved
}

// Get busca una critica por id.
func (s *CritiqueStore) Get(ctx context.Context, userID, id string) (domain.SavedCritique, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.loadLocked(ctx, userID) {
		if c.ID == id {
			return c, true
		}
	}
	return domain.SavedCritique{}, false
}

// List devuelve una copia del historial, mas nueva primero.
func (s *CritiqueStore) List(ctx context.Context, userID string) []domain.SavedCritique {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.loadLocked(ctx, userID)
	out := make([]domain.SavedCritique, len(seq))
	copy(out, seq)
	return out
}

// Delete elimina la critica con ese id; no-op si no existe.
func (s *CritiqueStore) Delete(ctx context.Context, userID, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.loadLocked(ctx, userID)
	for i, c := range seq {
		if c.ID == id {
			seq = append(seq[:i:i], seq[i+1:]...)
			s.cache[userID] = seq
			s.persistLocked(ctx, userID, seq)
			return
		}
	}
}

// Clear vacia el historial completo del usuario.
func (s *CritiqueStore) Clear(ctx context.Context, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[userID] = nil
	s.persistLocked(ctx, userID, nil)
}

func (s *CritiqueStore) loadLocked(ctx context.Context, userID string) []domain.SavedCritique {
	if seq, ok := s.cache[userID]; ok {
		return seq
	}

	var seq []domain.SavedCritique
	raw, ok, err := s.kv.Get(ctx, critiqueKeyPrefix+userID)
	if err != nil {
		s.logger.Warn("critique store read failed", zap.Error(err), zap.String("user_id", userID))
	} else if ok {
		if err := json.Unmarshal([]byte(raw), &seq); err != nil {
			s.logger.Warn("critique store decode failed", zap.Error(err), zap.String("user_id", userID))
			seq = nil
		}
	}
	s.cache[userID] = seq
	return seq
}

func (s *CritiqueStore) persistLocked(ctx context.Context, userID string, seq []domain.SavedCritique) {
	data, err := json.Marshal(seq)
	if err != nil {
		s.logger.Warn("critique store encode failed", zap.Error(err), zap.String("user_id", userID))
		return
	}
	if err := s.kv.Set(ctx, critiqueKeyPrefix+userID, string(data)); err != nil {
		s.logger.Warn("critique store write failed", zap.Error(err), zap.String("user_id", userID))
	}
}
