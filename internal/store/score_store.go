// Package store implementa las secuencias persistidas de scores y criticas
// sobre el almacen clave-valor. Cada mutacion reescribe la secuencia completa
// del usuario; el ultimo escritor gana.
package store

import (
	"context"
	"encoding/json"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"critiquelab/internal/domain"
	"critiquelab/internal/kv"
)

// MaxScores limita la secuencia retenida; los mas viejos se descartan.
const MaxScores = 100

const scoreKeyPrefix = "scores:"

// ScoreStore mantiene la secuencia de ScoreRecord por usuario, mas nueva
// primero. El estado en memoria sigue avanzando aunque falle la persistencia;
// el fallo se loguea y se traga.
type ScoreStore struct {
	mu     sync.Mutex
	kv     kv.Store
	logger *zap.Logger
	cache  map[string][]domain.ScoreRecord
}

// NewScoreStore crea un ScoreStore sobre el almacen durable dado.
func NewScoreStore(store kv.Store, logger *zap.Logger) *ScoreStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScoreStore{
		kv:     store,
		logger: logger,
		cache:  make(map[string][]domain.ScoreRecord),
	}
}

// AddScore asigna id y timestamp frescos, antepone el record, trunca a
// MaxScores y persiste la secuencia completa. Siempre devuelve el record
// completado.
func (s *ScoreStore) AddScore(ctx context.Context, userID string, partial domain.ScoreRecord) domain.ScoreRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := partial
	record.ID = uuid.NewString()
	record.CreatedAt = time.Now().UTC()

	seq := append([]domain.ScoreRecord{record}, s.loadLocked(ctx, userID)...)
	if len(seq) > MaxScores {
		seq = seq[:MaxScores]
	}
	s.cache[userID] = seq
	s.persistLocked(ctx, userID, seq)

	return record
}

// DeleteScore elimina el primer record con ese id; no-op si no existe.
func (s *ScoreStore) DeleteScore(ctx context.Context, userID, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.loadLocked(ctx, userID)
	for i, rec := range seq {
		if rec.ID == id {
			seq = append(seq[:i:i], seq[i+1:]...)
			s.cache[userID] = seq
			s.persistLocked(ctx, userID, seq)
			return
		}
	}
}

// List devuelve una copia de la secuencia, mas nueva primero.
func (s *ScoreStore) List(ctx context.Context, userID string) []domain.ScoreRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.loadLocked(ctx, userID)
	out := make([]domain.ScoreRecord, len(seq))
	copy(out, seq)
	return out
}

// AverageScore devuelve la media redondeada de TotalScore, 0 si esta vacio.
func (s *ScoreStore) AverageScore(ctx context.Context, userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.loadLocked(ctx, userID)
	if len(seq) == 0 {
		return 0
	}
	sum := 0
	for _, rec := range seq {
		sum += rec.TotalScore
	}
	return roundMean(sum, len(seq))
}

// HighestScore devuelve el maximo TotalScore, 0 si esta vacio.
func (s *ScoreStore) HighestScore(ctx context.Context, userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	max := 0
	for _, rec := range s.loadLocked(ctx, userID) {
		if rec.TotalScore > max {
			max = rec.TotalScore
		}
	}
	return max
}

// CategoryAverages devuelve las medias redondeadas por categoria, todas en 0
// si esta vacio.
func (s *ScoreStore) CategoryAverages(ctx context.Context, userID string) domain.CategoryAverages {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.loadLocked(ctx, userID)
	if len(seq) == 0 {
		return domain.CategoryAverages{}
	}

	var clarity, logic, evidence, defense int
	for _, rec := range seq {
		clarity += rec.ClarityScore
		logic += rec.LogicScore
		evidence += rec.EvidenceScore
		defense += rec.DefenseScore
	}
	n := len(seq)
	return domain.CategoryAverages{
		Clarity:  roundMean(clarity, n),
		Logic:    roundMean(logic, n),
		Evidence: roundMean(evidence, n),
		Defense:  roundMean(defense, n),
	}
}

func (s *ScoreStore) loadLocked(ctx context.Context, userID string) []domain.ScoreRecord {
	if seq, ok := s.cache[userID]; ok {
		return seq
	}

	var seq []domain.ScoreRecord
	raw, ok, err := s.kv.Get(ctx, scoreKeyPrefix+userID)
	if err != nil {
		s.logger.Warn("score store read failed", zap.Error(err), zap.String("user_id", userID))
	} else if ok {
		if err := json.Unmarshal([]byte(raw), &seq); err != nil {
			s.logger.Warn("score store decode failed", zap.Error(err), zap.String("user_id", userID))
			seq = nil
		}
	}
	s.cache[userID] = seq
	return seq
}

func (s *ScoreStore) persistLocked(ctx context.Context, userID string, seq []domain.ScoreRecord) {
	data, err := json.Marshal(seq)
	if err != nil {
		s.logger.Warn("score store encode failed", zap.Error(err), zap.String("user_id", userID))
		return
	}
	if err := s.kv.Set(ctx, scoreKeyPrefix+userID, string(data)); err != nil {
		s.logger.Warn("score store write failed", zap.Error(err), zap.String("user_id", userID))
	}
}

// roundMean redondea half-up la media entera de sum/n (dominio no negativo).
func roundMean(sum, n int) int {
	return int(math.Round(float64(sum) / float64(n)))
}
