package models

import (
	"errors"
	"testing"
)

func TestRedeemChargeRejectsUnknownReward(t *testing.T) {
	ledger := []Transaction{tx("a@example.com", TxEarnedReport, 100)}
	reward, found := FindReward(999)
	if found {
		t.Fatal("catalog should not contain reward 999")
	}
	if _, err := RedeemCharge(ledger, reward, found); !errors.Is(err, ErrRedeemRejected) {
		t.Fatalf("unknown reward must be rejected, got %v", err)
	}
}

func TestRedeemChargeRejectsOverBalance(t *testing.T) {
	ledger := []Transaction{tx("a@example.com", TxEarnedReport, 10)}
	reward, found := FindReward(1)
	if !found || reward.Cost <= Balance(ledger) {
		t.Fatalf("test expects reward cost %v above balance", reward.Cost)
	}
	if _, err := RedeemCharge(ledger, reward, found); !errors.Is(err, ErrRedeemRejected) {
		t.Fatalf("over-balance redeem must be rejected, got %v", err)
	}
}

func TestRedeemChargeAffordable(t *testing.T) {
	ledger := []Transaction{tx("a@example.com", TxEarnedReport, 50)}
	reward, found := FindReward(1)
	charge, err := RedeemCharge(ledger, reward, found)
	if err != nil {
		t.Fatalf("affordable redeem rejected: %v", err)
	}
	if charge != reward.Cost {
		t.Fatalf("expected charge %v, got %v", reward.Cost, charge)
	}
}

func TestRedeemAllChargeAtZeroBalance(t *testing.T) {
	if _, err := RedeemAllCharge(nil); !errors.Is(err, ErrNothingToRedeem) {
		t.Fatalf("empty ledger must be rejected, got %v", err)
	}
	// a transiently negative ledger displays as 0 and is also rejected
	ledger := []Transaction{
		tx("a@example.com", TxEarnedReport, 10),
		tx("a@example.com", TxRedeemed, 25),
	}
	if _, err := RedeemAllCharge(ledger); !errors.Is(err, ErrNothingToRedeem) {
		t.Fatalf("zero display balance must be rejected, got %v", err)
	}
}

func TestRedeemAllChargeReturnsFullBalance(t *testing.T) {
	ledger := []Transaction{
		tx("a@example.com", TxEarnedReport, 10),
		tx("a@example.com", TxEarnedCollect, 20),
	}
	charge, err := RedeemAllCharge(ledger)
	if err != nil {
		t.Fatalf("positive balance rejected: %v", err)
	}
	if charge != 30 {
		t.Fatalf("expected full balance of 30, got %v", charge)
	}
}
