package models

import (
	"github.com/shopspring/decimal"
)

// TransactionKind is the type token carried by an input record.
type TransactionKind string

const (
	KindDeposit    TransactionKind = "deposit"
	KindWithdrawal TransactionKind = "withdrawal"
	KindDispute    TransactionKind = "dispute"
	KindResolve    TransactionKind = "resolve"
	KindChargeback TransactionKind = "chargeback"
)

// DisputeState tracks where a stored transaction sits in the dispute
// lifecycle. ChargedBack is terminal.
type DisputeState string

const (
	StateNormal      DisputeState = "NORMAL"
	StateDisputed    DisputeState = "DISPUTED"
	StateChargedBack DisputeState = "CHARGED_BACK"
)

// TransactionRecord is a stored deposit or withdrawal that a later
// dispute, resolve or chargeback may reference by tx id.
type TransactionRecord struct {
	Tx     uint32          `json:"tx"`
	Client uint16          `json:"client"`
	Amount decimal.Decimal `json:"amount"` // magnitude; sign implied by Kind
	Kind   TransactionKind `json:"kind"`
	State  DisputeState    `json:"state"`
}

// RawRecord is one input row before numeric parsing. Client and Tx stay
// strings here so a malformed row is rejected as a unit instead of
// half-parsed. Amount presence is kind-dependent and enforced by a
// struct-level validation.
type RawRecord struct {
	Type   string `json:"type" validate:"required,oneof=deposit withdrawal dispute resolve chargeback"`
	Client string `json:"client" validate:"required,number"`
	Tx     string `json:"tx" validate:"required,number"`
	Amount string `json:"amount"`
}

// Transaction is a fully parsed input record ready for the ledger.
type Transaction struct {
	Kind   TransactionKind
	Client uint16
	Tx     uint32
	Amount decimal.Decimal // zero-valued for dispute/resolve/chargeback
}

// RequiresAmount reports whether records of this kind must carry an
// amount field. Dispute-lifecycle records reference a prior amount and
// carry none of their own.
func (k TransactionKind) RequiresAmount() bool {
	return k == KindDeposit || k == KindWithdrawal
}
