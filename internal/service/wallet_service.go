package service

import (
	"context"
	"strings"
	"time"

	"boardinghouse/internal/cache"
	apperrors "boardinghouse/internal/errors"
	"boardinghouse/internal/models"
	"boardinghouse/internal/queue"
	"boardinghouse/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const walletCacheTTL = 1 * time.Minute

// WalletService handles business logic for the wallet ledger. New transactions
// enter the ledger as Processing and are settled asynchronously by the
// settlement workers; ApplySettlement is the idempotent sink those workers
// call back into.
type WalletService struct {
	walletRepo repository.WalletRepository
	userRepo   repository.UserRepository
	queue      queue.Queue
	cache      cache.Cache
}

// NewWalletService creates a new WalletService.
func NewWalletService(walletRepo repository.WalletRepository, userRepo repository.UserRepository, q queue.Queue, cache cache.Cache) *WalletService {
	return &WalletService{
		walletRepo: walletRepo,
		userRepo:   userRepo,
		queue:      q,
		cache:      cache,
	}
}

// Ensure WalletService can act as the settlement sink for queue workers
var _ queue.SettlementApplier = (*WalletService)(nil)

// newTransactionID generates a ledger entry ID like TX-4F9A2C1B.
func newTransactionID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "TX-" + strings.ToUpper(raw[:8])
}

// GetWallet returns the balance and ledger for a user (with caching).
func (s *WalletService) GetWallet(ctx context.Context, userID primitive.ObjectID) (*models.WalletResponse, error) {
	cacheKey := cache.WalletCacheKey(userID.Hex())
	var cached models.WalletResponse
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err == nil && found {
		return &cached, nil
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	wallet := &models.WalletResponse{
		Balance:      user.WalletBalance,
		Transactions: user.WalletTransactions,
	}
	if wallet.Transactions == nil {
		wallet.Transactions = []models.Transaction{}
	}

	_ = s.cache.Set(ctx, cacheKey, wallet, walletCacheTTL)

	return wallet, nil
}

// CreateTransaction appends a Processing ledger entry and enqueues it for
// settlement. The balance is not touched until settlement succeeds.
func (s *WalletService) CreateTransaction(ctx context.Context, userID primitive.ObjectID, req *models.CreateTransactionRequest) (*models.Transaction, error) {
	tx := &models.Transaction{
		ID:        newTransactionID(),
		Type:      req.Type,
		Amount:    req.Amount,
		Reference: req.Reference,
		Status:    models.StatusProcessing,
		CreatedAt: time.Now(),
	}

	if err := s.walletRepo.AppendTransaction(ctx, userID, tx); err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, cache.WalletCacheKey(userID.Hex()))

	job := queue.SettlementJob{
		UserID:        userID,
		TransactionID: tx.ID,
		Type:          tx.Type,
		Amount:        tx.Amount,
	}

	if err := s.queue.Enqueue(job); err != nil {
		// No worker will ever pick this entry up, so fail it in place rather
		// than leaving a Processing entry that never resolves.
		_, settleErr := s.walletRepo.Settle(ctx, userID, tx.ID, models.StatusFailed, 0, false)
		if settleErr != nil {
			logrus.WithError(settleErr).WithField("transactionId", tx.ID).Error("Failed to fail unqueued transaction")
		}
		_ = s.cache.Delete(ctx, cache.WalletCacheKey(userID.Hex()))
		return nil, apperrors.ErrSettlementQueueFull
	}

	return tx, nil
}

// SettleTransaction manually settles a Processing transaction. The balance
// delta is derived from the stored entry; the request only chooses the
// terminal status.
func (s *WalletService) SettleTransaction(ctx context.Context, userID primitive.ObjectID, req *models.SettleTransactionRequest) (*models.Transaction, error) {
	tx, err := s.walletRepo.FindTransaction(ctx, userID, req.TransactionID)
	if err != nil {
		return nil, err
	}
	if tx.Status != models.StatusProcessing {
		return nil, apperrors.ErrTransactionSettled
	}

	delta, requireFunds := settlementDelta(tx.Type, tx.Amount, req.Status)

	ok, err := s.walletRepo.Settle(ctx, userID, req.TransactionID, req.Status, delta, requireFunds)
	if err != nil {
		return nil, err
	}
	if !ok {
		if requireFunds {
			return nil, apperrors.ErrInsufficientBalance
		}
		// Lost a race with the settlement worker
		return nil, apperrors.ErrTransactionSettled
	}

	_ = s.cache.Delete(ctx, cache.WalletCacheKey(userID.Hex()))

	return s.walletRepo.FindTransaction(ctx, userID, req.TransactionID)
}

// ApplySettlement records a settlement outcome drawn by a queue worker. Safe
// to call more than once per transaction; only the first terminal transition
// wins. A Payment that would overdraw the wallet settles as Failed instead.
func (s *WalletService) ApplySettlement(ctx context.Context, job queue.SettlementJob, status models.TransactionStatus) error {
	delta, requireFunds := settlementDelta(job.Type, job.Amount, status)

	ok, err := s.walletRepo.Settle(ctx, job.UserID, job.TransactionID, status, delta, requireFunds)
	if err != nil {
		return err
	}

	if !ok && requireFunds {
		// Insufficient balance: the entry is still Processing, fail it.
		ok, err = s.walletRepo.Settle(ctx, job.UserID, job.TransactionID, models.StatusFailed, 0, false)
		if err != nil {
			return err
		}
		if ok {
			logrus.WithFields(logrus.Fields{
				"transactionId": job.TransactionID,
				"userId":        job.UserID.Hex(),
			}).Warn("Payment settlement failed: insufficient balance")
		}
	}

	if !ok {
		// Already settled, e.g. manually or by a duplicate job
		logrus.WithField("transactionId", job.TransactionID).Debug("Settlement already applied, skipping")
	}

	_ = s.cache.Delete(ctx, cache.WalletCacheKey(job.UserID.Hex()))

	return nil
}

// Reconcile re-enqueues all Processing transactions. Called on startup so
// settlements interrupted by a shutdown eventually resolve.
func (s *WalletService) Reconcile(ctx context.Context) error {
	pending, err := s.walletRepo.FindAllProcessing(ctx)
	if err != nil {
		return err
	}

	requeued := 0
	for _, p := range pending {
		job := queue.SettlementJob{
			UserID:        p.UserID,
			TransactionID: p.Transaction.ID,
			Type:          p.Transaction.Type,
			Amount:        p.Transaction.Amount,
		}
		if err := s.queue.Enqueue(job); err != nil {
			logrus.WithError(err).WithField("transactionId", p.Transaction.ID).Warn("Could not re-enqueue pending settlement")
			break
		}
		requeued++
	}

	if requeued > 0 {
		logrus.WithField("count", requeued).Info("Re-enqueued pending wallet settlements")
	}

	return nil
}

// settlementDelta returns the balance adjustment for a settlement outcome and
// whether the update must be guarded by a funds check.
func settlementDelta(txType models.TransactionType, amount float64, status models.TransactionStatus) (float64, bool) {
	if status != models.StatusSuccess {
		return 0, false
	}
	if txType == models.TransactionPayment {
		return -amount, true
	}
	return amount, false
}
