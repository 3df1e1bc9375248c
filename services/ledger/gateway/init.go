package gateway

import (
	"github.com/spendwise/spendwise/internal/pkg/nsq"
)

// LedgerGW publishes ledger change events to NSQ. A nil producer turns the
// gateway into a no-op, which is how local setups without an NSQ daemon run.
type LedgerGW struct {
	producer *nsq.Producer
}

// NewLedgerGW creates a new ledger gateway
func NewLedgerGW(producer *nsq.Producer) *LedgerGW {
	return &LedgerGW{
		producer: producer,
	}
}
