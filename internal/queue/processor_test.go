package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"boardinghouse/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// stubSettler returns a fixed outcome without delay.
type stubSettler struct {
	status models.TransactionStatus
	err    error
}

func (s *stubSettler) Settle(_ context.Context, _ string) (models.TransactionStatus, error) {
	return s.status, s.err
}

// mockApplier records applied settlements for assertions.
type mockApplier struct {
	mu       sync.Mutex
	applied  map[string]models.TransactionStatus
	applyErr error
}

func newMockApplier() *mockApplier {
	return &mockApplier{applied: make(map[string]models.TransactionStatus)}
}

func (m *mockApplier) ApplySettlement(_ context.Context, job SettlementJob, status models.TransactionStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.applyErr != nil {
		return m.applyErr
	}
	m.applied[job.TransactionID] = status
	return nil
}

func (m *mockApplier) getStatus(txID string) (models.TransactionStatus, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	status, ok := m.applied[txID]
	return status, ok
}

func (m *mockApplier) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.applied)
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before timeout")
}

func TestProcessor_ProcessesJobs(t *testing.T) {
	t.Run("applies successful settlement", func(t *testing.T) {
		q := NewMemoryQueue(10)
		applier := newMockApplier()
		p := NewProcessor(q, &stubSettler{status: models.StatusSuccess}, applier, 1)

		p.Start(context.Background())
		defer p.Stop()

		job := SettlementJob{
			UserID:        primitive.NewObjectID(),
			TransactionID: "TX-SUCCESS1",
			Type:          models.TransactionTopUp,
			Amount:        500,
		}
		require.NoError(t, q.Enqueue(job))

		waitFor(t, time.Second, func() bool {
			_, ok := applier.getStatus("TX-SUCCESS1")
			return ok
		})

		status, _ := applier.getStatus("TX-SUCCESS1")
		assert.Equal(t, models.StatusSuccess, status)
	})

	t.Run("applies failed settlement", func(t *testing.T) {
		q := NewMemoryQueue(10)
		applier := newMockApplier()
		p := NewProcessor(q, &stubSettler{status: models.StatusFailed}, applier, 1)

		p.Start(context.Background())
		defer p.Stop()

		require.NoError(t, q.Enqueue(SettlementJob{
			UserID:        primitive.NewObjectID(),
			TransactionID: "TX-FAILED01",
			Type:          models.TransactionPayment,
			Amount:        200,
		}))

		waitFor(t, time.Second, func() bool {
			_, ok := applier.getStatus("TX-FAILED01")
			return ok
		})

		status, _ := applier.getStatus("TX-FAILED01")
		assert.Equal(t, models.StatusFailed, status)
	})

	t.Run("processes jobs across multiple workers", func(t *testing.T) {
		q := NewMemoryQueue(20)
		applier := newMockApplier()
		p := NewProcessor(q, &stubSettler{status: models.StatusSuccess}, applier, 3)

		p.Start(context.Background())
		defer p.Stop()

		for i := 0; i < 10; i++ {
			require.NoError(t, q.Enqueue(SettlementJob{
				UserID:        primitive.NewObjectID(),
				TransactionID: "TX-BATCH00" + string(rune('0'+i)),
				Type:          models.TransactionTopUp,
				Amount:        100,
			}))
		}

		waitFor(t, 2*time.Second, func() bool {
			return applier.count() == 10
		})
	})

	t.Run("skips apply when settlement draw is interrupted", func(t *testing.T) {
		q := NewMemoryQueue(10)
		applier := newMockApplier()
		p := NewProcessor(q, &stubSettler{err: errors.New("interrupted")}, applier, 1)

		p.Start(context.Background())

		require.NoError(t, q.Enqueue(SettlementJob{
			UserID:        primitive.NewObjectID(),
			TransactionID: "TX-INTERRUPT",
			Type:          models.TransactionTopUp,
			Amount:        100,
		}))

		// Give the worker time to pick up the job, then stop
		time.Sleep(50 * time.Millisecond)
		p.Stop()

		assert.Equal(t, 0, applier.count())
	})
}

func TestProcessor_Stop(t *testing.T) {
	t.Run("stop is idempotent", func(t *testing.T) {
		q := NewMemoryQueue(10)
		p := NewProcessor(q, &stubSettler{status: models.StatusSuccess}, newMockApplier(), 2)

		p.Start(context.Background())

		assert.NotPanics(t, func() {
			p.Stop()
			p.Stop()
		})
	})

	t.Run("drains queued jobs before stopping", func(t *testing.T) {
		q := NewMemoryQueue(10)
		applier := newMockApplier()
		p := NewProcessor(q, &stubSettler{status: models.StatusSuccess}, applier, 1)

		for i := 0; i < 5; i++ {
			require.NoError(t, q.Enqueue(SettlementJob{
				UserID:        primitive.NewObjectID(),
				TransactionID: "TX-DRAIN00" + string(rune('0'+i)),
				Type:          models.TransactionTopUp,
				Amount:        100,
			}))
		}

		p.Start(context.Background())
		p.Stop()

		assert.Equal(t, 5, applier.count())
	})
}
