package queue

import (
	"context"
	"errors"
	"sync"
	"time"

	"boardinghouse/internal/models"
	"boardinghouse/internal/settlement"

	"github.com/sirupsen/logrus"
)

const (
	// ApplyTimeout bounds the database write when applying a settlement
	// outcome during shutdown.
	ApplyTimeout = 5 * time.Second
)

// SettlementApplier applies a drawn settlement outcome to the wallet ledger.
type SettlementApplier interface {
	ApplySettlement(ctx context.Context, job SettlementJob, status models.TransactionStatus) error
}

// Processor processes settlement jobs from the queue.
type Processor struct {
	queue        *MemoryQueue
	settler      settlement.Service
	applier      SettlementApplier
	workerCount  int
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

// NewProcessor creates a new settlement job processor.
func NewProcessor(queue *MemoryQueue, settler settlement.Service, applier SettlementApplier, workerCount int) *Processor {
	return &Processor{
		queue:       queue,
		settler:     settler,
		applier:     applier,
		workerCount: workerCount,
		shutdownCh:  make(chan struct{}),
	}
}

// Start begins processing jobs with the configured number of workers.
func (p *Processor) Start(ctx context.Context) {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
	logrus.WithField("workers", p.workerCount).Info("Settlement processor started")
}

// Stop gracefully stops the processor, waiting for workers to finish.
func (p *Processor) Stop() {
	p.shutdownOnce.Do(func() {
		close(p.shutdownCh)
		p.queue.Close()
	})
	p.wg.Wait()
	logrus.Info("Settlement processor stopped")
}

func (p *Processor) worker(ctx context.Context, id int) {
	defer p.wg.Done()
	logrus.WithField("worker", id).Debug("Settlement worker started")

	for {
		job, err := p.queue.Dequeue(ctx)
		if err != nil {
			if errors.Is(err, ErrQueueClosed) || errors.Is(err, context.Canceled) {
				logrus.WithField("worker", id).Debug("Settlement worker shutting down")
				return
			}
			continue
		}
		p.processJob(ctx, job)
	}
}

// processJob draws an outcome and applies it. Transactions whose apply step
// fails stay in Processing and are re-enqueued by startup reconciliation, so
// there is no retry loop here.
func (p *Processor) processJob(ctx context.Context, job SettlementJob) {
	log := logrus.WithFields(logrus.Fields{
		"transactionId": job.TransactionID,
		"userId":        job.UserID.Hex(),
		"type":          job.Type,
	})
	log.Info("Settling wallet transaction")

	status, err := p.settler.Settle(ctx, job.TransactionID)
	if err != nil {
		// Context cancelled mid-settlement. The transaction stays Processing
		// and reconciliation picks it up on the next start.
		log.WithError(err).Warn("Settlement draw interrupted")
		return
	}

	applyCtx, cancel := context.WithTimeout(context.Background(), ApplyTimeout)
	defer cancel()

	if err := p.applier.ApplySettlement(applyCtx, job, status); err != nil {
		log.WithError(err).Error("Failed to apply settlement outcome")
		return
	}

	log.WithField("status", status).Info("Wallet transaction settled")
}
