package utils

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

var mu sync.Mutex
var seededRand *rand.Rand

func init() {
	seededRand = rand.New(rand.NewSource(time.Now().UnixNano()))
}

// NewTxRef builds a time-derived reference id for a ledger entry. The
// nanosecond component keeps references monotonic within a process; the
// random tail avoids collisions across restarts.
func NewTxRef(userID uint) string {
	mu.Lock()
	defer mu.Unlock()

	nowNano := time.Now().UnixNano()
	nanoPart := nowNano % 1000000

	randPart := seededRand.Intn(900) + 100

	return fmt.Sprintf("ECO-%06d%03d%d", nanoPart, randPart, userID)
}
