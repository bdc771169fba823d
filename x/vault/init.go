package vault

import (
	"github.com/iov-one/vesting"
	"github.com/iov-one/vesting/coin"
	"github.com/iov-one/vesting/errors"
	"github.com/iov-one/vesting/x/cash"
)

// Initializer loads vault data from a genesis options blob.
type Initializer struct {
	Minter cash.Controller
	Clock  vesting.Clock
}

// FromGenesis parses initial lock declarations from the "vault" options key
// and returns a funded, locked ledger per entry. The declared amount is
// minted to the source account before locking it.
func (i *Initializer) FromGenesis(opts vesting.Options, ledgerOpts ...Option) ([]*Ledger, error) {
	var locks []struct {
		Ticker   string           `json:"ticker"`
		Source   vesting.Address  `json:"source"`
		Receiver vesting.Address  `json:"receiver"`
		Amount   coin.Coin        `json:"amount"`
		Expiry   vesting.UnixTime `json:"expiry"`
	}

	if err := opts.ReadOptions("vault", &locks); err != nil {
		return nil, err
	}

	ledgers := make([]*Ledger, 0, len(locks))
	for j, lk := range locks {
		ledger, err := NewLedger(lk.Ticker, i.Minter, i.Clock, ledgerOpts...)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid vault at position: %d", j)
		}
		if !lk.Amount.IsZero() {
			if err := i.Minter.CoinMint(lk.Source, lk.Amount); err != nil {
				return nil, errors.Wrapf(err, "cannot fund vault at position: %d", j)
			}
		}
		if err := ledger.Lock(lk.Source, lk.Receiver, lk.Amount, lk.Expiry); err != nil {
			return nil, errors.Wrapf(err, "cannot lock vault at position: %d", j)
		}
		ledgers = append(ledgers, ledger)
	}
	return ledgers, nil
}
