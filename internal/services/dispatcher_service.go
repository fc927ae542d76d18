package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ruralpay/txengine/internal/audit"
	"github.com/ruralpay/txengine/internal/models"
)

// Stats summarizes one dispatcher run. The counts are observability
// only; account state is the real output.
type Stats struct {
	Applied  int
	Skipped  int
	Rejected int
}

// DispatcherService is the structural gatekeeper between raw input rows
// and the ledger's semantic contract. A malformed row is skipped, a
// ledger rejection is logged, and in both cases the run continues.
type DispatcherService struct {
	ledger    *LedgerService
	validator *ValidationHelper
	auditor   *audit.AuditLogger
}

func NewDispatcherService(ledger *LedgerService, auditor *audit.AuditLogger) *DispatcherService {
	return &DispatcherService{
		ledger:    ledger,
		validator: NewValidationHelper(),
		auditor:   auditor,
	}
}

// Process applies records strictly in input order. It never fails: every
// outcome is either an applied transaction, a structural skip, or a
// ledger rejection, all tallied in the returned stats.
func (ds *DispatcherService) Process(records []models.RawRecord) Stats {
	var stats Stats
	for _, raw := range records {
		tr, err := ds.parse(raw)
		if err != nil {
			ds.auditor.LogSkipped(raw.Type, err)
			stats.Skipped++
			continue
		}
		if err := ds.apply(tr); err != nil {
			ds.auditor.LogRejected(string(tr.Kind), tr.Client, tr.Tx, err)
			stats.Rejected++
			continue
		}
		ds.auditor.LogApplied(string(tr.Kind), tr.Client, tr.Tx)
		stats.Applied++
	}
	return stats
}

// parse normalizes and validates one raw row, producing a typed
// transaction. Any failure here means the row never reaches the ledger.
func (ds *DispatcherService) parse(raw models.RawRecord) (models.Transaction, error) {
	raw.Type = strings.ToLower(strings.TrimSpace(raw.Type))
	raw.Client = strings.TrimSpace(raw.Client)
	raw.Tx = strings.TrimSpace(raw.Tx)
	raw.Amount = strings.TrimSpace(raw.Amount)

	if err := ds.validator.ValidateStruct(raw); err != nil {
		return models.Transaction{}, fmt.Errorf("malformed record: %w", err)
	}

	client, err := strconv.ParseUint(raw.Client, 10, 16)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("invalid client id %q: %w", raw.Client, err)
	}
	tx, err := strconv.ParseUint(raw.Tx, 10, 32)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("invalid tx id %q: %w", raw.Tx, err)
	}

	tr := models.Transaction{
		Kind:   models.TransactionKind(raw.Type),
		Client: uint16(client),
		Tx:     uint32(tx),
	}

	// Dispute-lifecycle rows reference a stored amount; anything they
	// carry themselves is ignored.
	if tr.Kind.RequiresAmount() {
		amount, err := decimal.NewFromString(raw.Amount)
		if err != nil {
			return models.Transaction{}, fmt.Errorf("invalid amount %q: %w", raw.Amount, err)
		}
		if amount.Sign() < 0 {
			return models.Transaction{}, fmt.Errorf("negative amount %q", raw.Amount)
		}
		tr.Amount = amount
	}

	return tr, nil
}

func (ds *DispatcherService) apply(tr models.Transaction) error {
	switch tr.Kind {
	case models.KindDeposit:
		return ds.ledger.Deposit(tr.Client, tr.Tx, tr.Amount)
	case models.KindWithdrawal:
		return ds.ledger.Withdraw(tr.Client, tr.Tx, tr.Amount)
	case models.KindDispute:
		return ds.ledger.Dispute(tr.Client, tr.Tx)
	case models.KindResolve:
		return ds.ledger.Resolve(tr.Client, tr.Tx)
	case models.KindChargeback:
		return ds.ledger.Chargeback(tr.Client, tr.Tx)
	default:
		return fmt.Errorf("unroutable transaction kind %q", tr.Kind)
	}
}
