package services

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/ruralpay/txengine/internal/models"
)

// Rejection reasons returned by ledger operations. A rejected call never
// mutates state; the dispatcher decides what to do with the error.
var (
	ErrDuplicateTransaction = errors.New("transaction id already used")
	ErrNonPositiveAmount    = errors.New("amount must be positive")
	ErrAccountLocked        = errors.New("account is locked")
	ErrInsufficientFunds    = errors.New("insufficient available funds")
	ErrUnknownTransaction   = errors.New("unknown transaction id")
	ErrClientMismatch       = errors.New("transaction belongs to a different client")
	ErrNotDisputable        = errors.New("transaction kind is not disputable under current policy")
	ErrNotDisputed          = errors.New("transaction is not under dispute")
)

// LedgerService owns all account state and the history of disputable
// transactions for one run. It is not safe for concurrent use; the
// dispatcher feeds it one record at a time.
type LedgerService struct {
	accounts map[uint16]*models.Account
	order    []uint16 // client ids in first-seen order, for deterministic snapshots
	history  map[uint32]*models.TransactionRecord

	// depositsOnly restricts disputes to deposit records when set.
	depositsOnly bool
}

// NewLedgerService creates an empty ledger. depositsOnly selects the
// dispute policy: when true, withdrawals cannot be disputed.
func NewLedgerService(depositsOnly bool) *LedgerService {
	return &LedgerService{
		accounts:     make(map[uint16]*models.Account),
		history:      make(map[uint32]*models.TransactionRecord),
		depositsOnly: depositsOnly,
	}
}

// account loads or lazily creates the account for a client.
func (ls *LedgerService) account(client uint16) *models.Account {
	if acct, ok := ls.accounts[client]; ok {
		return acct
	}
	acct := models.NewAccount(client)
	ls.accounts[client] = acct
	ls.order = append(ls.order, client)
	return acct
}

// Deposit credits amount to the client's available balance and stores a
// disputable record under tx.
func (ls *LedgerService) Deposit(client uint16, tx uint32, amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrNonPositiveAmount
	}
	if _, seen := ls.history[tx]; seen {
		return ErrDuplicateTransaction
	}
	acct := ls.account(client)
	if acct.Locked {
		return ErrAccountLocked
	}

	acct.Available = acct.Available.Add(amount)
	ls.history[tx] = &models.TransactionRecord{
		Tx:     tx,
		Client: client,
		Amount: amount,
		Kind:   models.KindDeposit,
		State:  models.StateNormal,
	}
	return nil
}

// Withdraw debits amount from the client's available balance and stores
// a disputable record under tx. Rejected when available < amount.
func (ls *LedgerService) Withdraw(client uint16, tx uint32, amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return ErrNonPositiveAmount
	}
	if _, seen := ls.history[tx]; seen {
		return ErrDuplicateTransaction
	}
	acct := ls.account(client)
	if acct.Locked {
		return ErrAccountLocked
	}
	if acct.Available.LessThan(amount) {
		return ErrInsufficientFunds
	}

	acct.Available = acct.Available.Sub(amount)
	ls.history[tx] = &models.TransactionRecord{
		Tx:     tx,
		Client: client,
		Amount: amount,
		Kind:   models.KindWithdrawal,
		State:  models.StateNormal,
	}
	return nil
}

// Dispute moves the referenced transaction's amount from available to
// held and marks the record disputed. Lock state is not consulted: a
// dispute against a locked account is still honored.
func (ls *LedgerService) Dispute(client uint16, tx uint32) error {
	rec, err := ls.lookup(client, tx)
	if err != nil {
		return err
	}
	if rec.State != models.StateNormal {
		return ErrNotDisputed
	}
	if ls.depositsOnly && rec.Kind != models.KindDeposit {
		return ErrNotDisputable
	}

	acct := ls.account(client)
	acct.Available = acct.Available.Sub(rec.Amount)
	acct.Held = acct.Held.Add(rec.Amount)
	rec.State = models.StateDisputed
	return nil
}

// Resolve reverses an open dispute, releasing the held amount back to
// available and returning the record to its normal state.
func (ls *LedgerService) Resolve(client uint16, tx uint32) error {
	rec, err := ls.lookup(client, tx)
	if err != nil {
		return err
	}
	if rec.State != models.StateDisputed {
		return ErrNotDisputed
	}

	acct := ls.account(client)
	acct.Held = acct.Held.Sub(rec.Amount)
	acct.Available = acct.Available.Add(rec.Amount)
	rec.State = models.StateNormal
	return nil
}

// Chargeback permanently removes the held amount of an open dispute and
// locks the account. The record can never transition again.
func (ls *LedgerService) Chargeback(client uint16, tx uint32) error {
	rec, err := ls.lookup(client, tx)
	if err != nil {
		return err
	}
	if rec.State != models.StateDisputed {
		return ErrNotDisputed
	}

	acct := ls.account(client)
	acct.Held = acct.Held.Sub(rec.Amount)
	rec.State = models.StateChargedBack
	acct.Locked = true
	return nil
}

// Snapshot exports every account in first-seen client order.
func (ls *LedgerService) Snapshot() []models.AccountSnapshot {
	snapshots := make([]models.AccountSnapshot, 0, len(ls.order))
	for _, client := range ls.order {
		snapshots = append(snapshots, ls.accounts[client].Snapshot())
	}
	return snapshots
}

func (ls *LedgerService) lookup(client uint16, tx uint32) (*models.TransactionRecord, error) {
	rec, ok := ls.history[tx]
	if !ok {
		return nil, ErrUnknownTransaction
	}
	if rec.Client != client {
		return nil, ErrClientMismatch
	}
	return rec, nil
}
