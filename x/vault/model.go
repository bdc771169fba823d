package vault

import (
	"github.com/iov-one/vesting"
	"github.com/iov-one/vesting/coin"
	"github.com/iov-one/vesting/errors"
)

// LockRecord is the state of a single lock cycle. All fields are zero when
// no lock was ever created. After a claim the Receiver, Amount and Expiry
// fields keep their last values as historical residue until the next lock
// overwrites them.
type LockRecord struct {
	Receiver vesting.Address
	Amount   coin.Coin
	Expiry   vesting.UnixTime
	Locked   bool
	Claimed  bool
}

// Validate ensures the record invariants hold.
func (r *LockRecord) Validate() error {
	if r.Locked && r.Claimed {
		return errors.Wrap(errors.ErrState, "locked and claimed")
	}
	if r.Locked {
		if len(r.Receiver) == 0 {
			return errors.Wrap(errors.ErrEmpty, "receiver")
		}
		if r.Expiry == 0 {
			// Zero expiry is a valid value that dates to 1970-01-01.
			// We know that this value is in the past and makes no
			// sense. Most likely value was not provided and a zero
			// value remained.
			return errors.Wrap(errors.ErrInput, "expiry is required")
		}
		if err := r.Expiry.Validate(); err != nil {
			return errors.Wrap(err, "invalid expiry value")
		}
		if !r.Amount.IsNonNegative() {
			return errors.Wrap(errors.ErrAmount, "negative amount")
		}
	}
	return nil
}

// Copy makes an independent copy of the record.
func (r *LockRecord) Copy() *LockRecord {
	return &LockRecord{
		Receiver: r.Receiver.Clone(),
		Amount:   r.Amount,
		Expiry:   r.Expiry,
		Locked:   r.Locked,
		Claimed:  r.Claimed,
	}
}

// Condition calculates the custody condition of a ledger given its key.
func Condition(key []byte) vesting.Condition {
	return vesting.NewCondition("vault", "seq", key)
}
