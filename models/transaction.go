package models

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"time"
)

// Transaction types. Any type with the "earned" prefix credits the balance,
// everything else debits it.
const (
	TxEarnedPrefix  = "earned"
	TxEarnedReport  = "earned_report"
	TxEarnedCollect = "earned_collect"
	TxRedeemed      = "redeemed"
)

// Transaction is an append-only ledger entry. Rows are never updated or
// deleted; balances are always derived by folding the ledger.
type Transaction struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Email       string    `gorm:"size:191;not null;index" json:"email"`
	Type        string    `gorm:"size:50;not null" json:"type"`
	Amount      float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description string    `gorm:"size:255" json:"description"`
	Reference   string    `gorm:"size:64;not null;uniqueIndex" json:"reference"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// IsCredit reports whether the entry adds to the balance.
func (t Transaction) IsCredit() bool {
	return strings.HasPrefix(t.Type, TxEarnedPrefix)
}

// Balance folds a transaction list into a net point total. The fold is a
// plain sum, so record order does not matter. The result may be negative;
// callers that show it to a user should go through DisplayBalance.
func Balance(txs []Transaction) float64 {
	var total float64
	for _, tx := range txs {
		if tx.IsCredit() {
			total += tx.Amount
		} else {
			total -= tx.Amount
		}
	}
	return total
}

// SeedReference is the ledger reference for an email's one-time seed credit.
// It is deterministic per email, so the unique index on Reference turns a
// concurrent double-seed into a no-op insert.
func SeedReference(email string) string {
	sum := sha256.Sum256([]byte(email))
	return fmt.Sprintf("ECO-SEED-%x", sum[:8])
}

// DisplayBalance clamps a derived balance at zero for presentation.
func DisplayBalance(txs []Transaction) float64 {
	if b := Balance(txs); b > 0 {
		return b
	}
	return 0
}
