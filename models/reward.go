package models

import "errors"

// RedeemAllID is the catalog sentinel meaning "convert the entire balance".
const RedeemAllID = 0

var (
	ErrRedeemRejected  = errors.New("insufficient balance or invalid reward")
	ErrNothingToRedeem = errors.New("no points to redeem")
)

// Reward is a redeemable catalog item. The catalog is static and not
// persisted.
type Reward struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	Cost           float64 `json:"cost"`
	Description    string  `json:"description"`
	CollectionInfo string  `json:"collection_info"`
}

// RewardCatalog returns the redeemable items, including the redeem-all
// sentinel entry.
func RewardCatalog() []Reward {
	return []Reward{
		{ID: 1, Name: "Eco Bottle", Cost: 30, Description: "Reusable eco bottle", CollectionInfo: "Collect from booth A"},
		{ID: 2, Name: "Organic Bag", Cost: 50, Description: "Stylish cloth bag", CollectionInfo: "Collect from booth B"},
		{ID: RedeemAllID, Name: "Redeem All", Cost: 0, Description: "", CollectionInfo: "Get all points converted"},
	}
}

// RedeemCharge returns the amount a redeem of the given catalog item debits
// from the ledger. Unknown items and items costing more than the current net
// balance are rejected; a rejected redeem must append nothing.
func RedeemCharge(txs []Transaction, reward Reward, found bool) (float64, error) {
	if !found || reward.Cost > Balance(txs) {
		return 0, ErrRedeemRejected
	}
	return reward.Cost, nil
}

// RedeemAllCharge returns the full display balance to debit, rejecting when
// there are no points to convert.
func RedeemAllCharge(txs []Transaction) (float64, error) {
	balance := DisplayBalance(txs)
	if balance == 0 {
		return 0, ErrNothingToRedeem
	}
	return balance, nil
}

// FindReward looks an item up by id. The second return is false when the id
// is not in the catalog.
func FindReward(id uint) (Reward, bool) {
	for _, r := range RewardCatalog() {
		if r.ID == id {
			return r, true
		}
	}
	return Reward{}, false
}
