package cash

import (
	"sync"

	"github.com/iov-one/vesting"
	"github.com/iov-one/vesting/coin"
	"github.com/iov-one/vesting/errors"
)

// CoinMover is the capability to move assets between two accounts. It
// covers both directions the ledger needs: pulling funds from a party into
// custody and pushing them from custody to a receiver.
type CoinMover interface {
	// MoveCoins transfers the given amount from src to dest. It fails
	// when src does not hold sufficient funds or the amount is not
	// positive.
	MoveCoins(src vesting.Address, dest vesting.Address, amount coin.Coin) error
}

// CoinMinter is the capability to create new funds on an account. Used for
// genesis funding and tests.
type CoinMinter interface {
	// CoinMint issues the given amount on the destination account.
	CoinMint(dest vesting.Address, amount coin.Coin) error
}

// Controller is the full asset account surface: moving, minting and
// balance lookup.
type Controller interface {
	CoinMover
	CoinMinter

	// Balance returns the coins held by the given account. An account
	// that was never funded has a nil balance and no error.
	Balance(addr vesting.Address) (coin.Coins, error)
}

// Bank is an in-process Controller implementation keeping all wallets in
// memory. All operations are safe for concurrent use.
type Bank struct {
	mu      sync.Mutex
	wallets map[string]coin.Coins
}

var _ Controller = (*Bank)(nil)

// NewBank returns an empty in-memory bank.
func NewBank() *Bank {
	return &Bank{
		wallets: make(map[string]coin.Coins),
	}
}

// MoveCoins transfers amount from src to dest. The source wallet must exist
// and hold at least the amount moved.
func (b *Bank) MoveCoins(src vesting.Address, dest vesting.Address, amount coin.Coin) error {
	if !amount.IsPositive() {
		return errors.Wrapf(errors.ErrAmount, "non-positive amount: %s", amount)
	}
	if err := amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	sender, ok := b.wallets[string(src)]
	if !ok {
		return errors.Wrapf(errors.ErrEmpty, "account %s", src)
	}
	if !sender.Contains(amount) {
		return errors.Wrapf(errors.ErrInsufficientAmount, "funds %s", amount)
	}

	// Work on copies. Coins operations modify the slice in place, so a
	// failing destination update must not leave a mutated source behind.
	sender, err := sender.Clone().Subtract(amount)
	if err != nil {
		return err
	}
	recipient, err := b.wallets[string(dest)].Clone().Add(amount)
	if err != nil {
		return err
	}

	b.setWallet(src, sender)
	b.setWallet(dest, recipient)
	return nil
}

// CoinMint issues the given amount of coins on the destination account.
//
// Note the amount may also be negative:
// "the lord giveth and the lord taketh away"
func (b *Bank) CoinMint(dest vesting.Address, amount coin.Coin) error {
	if err := amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	recipient, err := b.wallets[string(dest)].Add(amount)
	if err != nil {
		return err
	}
	b.setWallet(dest, recipient)
	return nil
}

// Balance returns a copy of the coins held by the given account.
func (b *Bank) Balance(addr vesting.Address) (coin.Coins, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.wallets[string(addr)].Clone(), nil
}

// setWallet must be called with the lock held. Emptied wallets are removed
// so that a drained account behaves like one that never existed.
func (b *Bank) setWallet(addr vesting.Address, coins coin.Coins) {
	if coins.IsEmpty() {
		delete(b.wallets, string(addr))
	} else {
		b.wallets[string(addr)] = coins
	}
}
