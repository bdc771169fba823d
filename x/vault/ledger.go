package vault

import (
	"sync"

	"github.com/google/uuid"
	"github.com/iov-one/vesting"
	"github.com/iov-one/vesting/coin"
	"github.com/iov-one/vesting/errors"
	"github.com/iov-one/vesting/x/cash"
	"go.uber.org/zap"
)

// Ledger holds at most one active lock of its bound asset at a time. All
// operations are serialized by an internal mutex, so no interleaving of two
// calls is observable.
type Ledger struct {
	mu      sync.Mutex
	ticker  string
	address vesting.Address
	bank    cash.CoinMover
	clock   vesting.Clock
	emitter Emitter
	logger  *zap.Logger
	lockID  uuid.UUID
	rec     LockRecord
}

// Option configures a Ledger during construction.
type Option func(*Ledger)

// WithLogger attaches a logger to the ledger. Without this option nothing
// is logged.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Ledger) {
		l.logger = logger
	}
}

// WithEmitter attaches an event emitter to the ledger. Without this option
// events are discarded.
func WithEmitter(emitter Emitter) Option {
	return func(l *Ledger) {
		l.emitter = emitter
	}
}

// NewLedger creates a ledger permanently bound to the given asset ticker.
// No lock is active. The bank moves funds on the ledger's behalf and the
// clock is the only source of time.
func NewLedger(ticker string, bank cash.CoinMover, clock vesting.Clock, opts ...Option) (*Ledger, error) {
	if !coin.IsCC(ticker) {
		return nil, errors.Wrapf(errors.ErrCurrency, "invalid currency: %s", ticker)
	}
	if bank == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "bank")
	}
	if clock == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "clock")
	}

	key := uuid.New()
	l := &Ledger{
		ticker:  ticker,
		address: Condition(key[:]).Address(),
		bank:    bank,
		clock:   clock,
		emitter: NopEmitter{},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Lock places the given amount under custody for the receiver until the
// expiry time. The amount is pulled from the source account. Fails with
// ErrAlreadyLocked while a lock is active, with ErrExpiryNotInFuture when
// the expiry is not strictly after the current time and with
// ErrTransferFailed when the pull is rejected. A failed call leaves no
// observable effect.
func (l *Ledger) Lock(source, receiver vesting.Address, amount coin.Coin, expiry vesting.UnixTime) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.rec.Locked {
		return errors.Wrapf(ErrAlreadyLocked, "until %d", l.rec.Expiry)
	}
	now := l.clock.Now()
	if expiry <= now {
		return errors.Wrapf(ErrExpiryNotInFuture, "expiry %d, now %d", expiry, now)
	}
	if amount.Ticker != l.ticker && !(amount.Ticker == "" && amount.IsZero()) {
		return errors.Wrapf(errors.ErrCurrency, "ledger holds %s, not %s", l.ticker, amount.Ticker)
	}

	rec := LockRecord{
		Receiver: receiver.Clone(),
		Amount:   amount,
		Expiry:   expiry,
		Locked:   true,
		Claimed:  false,
	}
	if err := rec.Validate(); err != nil {
		return err
	}

	// Pull the funds before touching any state so that a rejected
	// transfer leaves no partial effect. A zero amount moves nothing.
	if !amount.IsZero() {
		if err := l.bank.MoveCoins(source, l.address, amount); err != nil {
			return errors.Wrapf(ErrTransferFailed, "pull funds: %s", err)
		}
	}

	id := uuid.New()
	l.lockID = id
	l.rec = rec

	l.emitter.Emit(LockedEvent{
		LockID:   id,
		Source:   source.Clone(),
		Receiver: rec.Receiver,
		Amount:   amount,
		Expiry:   expiry,
	})
	l.logger.Debug("asset locked",
		zap.String("lock_id", id.String()),
		zap.String("ticker", l.ticker),
		zap.String("amount", amount.String()),
		zap.Int64("expiry", int64(expiry)),
	)
	return nil
}

// Claim releases the active lock's funds from custody to the receiver. Any
// party may call it. Fails with ErrAlreadyClaimed after a successful claim,
// with ErrNotLocked when no lock is active, with ErrNotYetExpired before
// the expiry time and with ErrTransferFailed when the push is rejected. A
// failed call leaves no observable effect, and funds are never moved more
// than once per lock cycle.
func (l *Ledger) Claim() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.rec.Claimed {
		return errors.Wrap(ErrAlreadyClaimed, l.rec.Receiver.String())
	}
	if !l.rec.Locked {
		return errors.Wrap(ErrNotLocked, "nothing to claim")
	}
	if now := l.clock.Now(); now < l.rec.Expiry {
		return errors.Wrapf(ErrNotYetExpired, "expiry %d, now %d", l.rec.Expiry, now)
	}

	// Push the funds before touching any state, mirroring Lock.
	if !l.rec.Amount.IsZero() {
		if err := l.bank.MoveCoins(l.address, l.rec.Receiver, l.rec.Amount); err != nil {
			return errors.Wrapf(ErrTransferFailed, "push funds: %s", err)
		}
	}

	l.rec.Locked = false
	l.rec.Claimed = true

	l.emitter.Emit(ClaimedEvent{
		LockID:   l.lockID,
		Receiver: l.rec.Receiver,
		Amount:   l.rec.Amount,
	})
	l.logger.Debug("asset claimed",
		zap.String("lock_id", l.lockID.String()),
		zap.String("ticker", l.ticker),
		zap.String("amount", l.rec.Amount.String()),
	)
	return nil
}

// Ticker returns the asset this ledger is bound to.
func (l *Ledger) Ticker() string {
	return l.ticker
}

// Address returns the ledger's custody account address.
func (l *Ledger) Address() vesting.Address {
	return l.address.Clone()
}

// Receiver returns the party entitled to claim the most recent lock, or nil
// when no lock was ever created.
func (l *Ledger) Receiver() vesting.Address {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rec.Receiver.Clone()
}

// Amount returns the quantity under the most recent lock.
func (l *Ledger) Amount() coin.Coin {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rec.Amount
}

// Expiry returns the most recent lock's expiry time.
func (l *Ledger) Expiry() vesting.UnixTime {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rec.Expiry
}

// IsLocked returns true exactly when a lock is active and unclaimed.
func (l *Ledger) IsLocked() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rec.Locked
}

// IsClaimed returns true exactly when the most recent lock was released to
// its receiver.
func (l *Ledger) IsClaimed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rec.Claimed
}

// LockID returns the id of the current lock cycle, or the zero uuid when no
// lock was ever created.
func (l *Ledger) LockID() uuid.UUID {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lockID
}

// Record returns a copy of the current lock record.
func (l *Ledger) Record() *LockRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rec.Copy()
}

// Now returns the current time as reported by the ledger's clock.
func (l *Ledger) Now() vesting.UnixTime {
	return l.clock.Now()
}
