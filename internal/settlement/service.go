// Package settlement simulates an external payment rail for wallet transactions.
package settlement

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"boardinghouse/internal/models"
)

// Service defines the interface for drawing a settlement outcome.
type Service interface {
	// Settle blocks for the settlement delay and returns the terminal status
	// for the transaction.
	Settle(ctx context.Context, transactionID string) (models.TransactionStatus, error)
}

// Simulator draws settlement outcomes at random, standing in for a real
// payment provider callback.
type Simulator struct {
	// SuccessRate is the probability (0.0 to 1.0) that a transaction settles
	// successfully.
	SuccessRate float64
	// MinDelay and MaxDelay bound the simulated settlement latency.
	MinDelay time.Duration
	MaxDelay time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulator creates a Simulator with the given tuning.
func NewSimulator(successRate float64, minDelay, maxDelay time.Duration) *Simulator {
	return &Simulator{
		SuccessRate: successRate,
		MinDelay:    minDelay,
		MaxDelay:    maxDelay,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Settle waits a uniform random delay between MinDelay and MaxDelay, then
// returns Success with probability SuccessRate, otherwise Failed.
func (s *Simulator) Settle(ctx context.Context, transactionID string) (models.TransactionStatus, error) {
	s.mu.Lock()
	delay := s.MinDelay
	if s.MaxDelay > s.MinDelay {
		delay += time.Duration(s.rng.Int63n(int64(s.MaxDelay - s.MinDelay)))
	}
	success := s.rng.Float64() < s.SuccessRate
	s.mu.Unlock()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(delay):
	}

	if success {
		return models.StatusSuccess, nil
	}
	return models.StatusFailed, nil
}

// Ensure Simulator implements Service
var _ Service = (*Simulator)(nil)
