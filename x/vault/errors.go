package vault

import (
	"github.com/iov-one/vesting/errors"
)

// vault takes error codes 1000-1009
var (
	// ErrAlreadyLocked is returned when creating a lock while another
	// one is still active.
	ErrAlreadyLocked = errors.Register(1000, "already locked")

	// ErrNotLocked is returned when claiming while no lock is active.
	ErrNotLocked = errors.Register(1001, "not locked")

	// ErrAlreadyClaimed is returned when claiming a lock that was
	// already released to its receiver.
	ErrAlreadyClaimed = errors.Register(1002, "already claimed")

	// ErrNotYetExpired is returned when claiming before the lock
	// expiry time has passed.
	ErrNotYetExpired = errors.Register(1003, "not yet expired")

	// ErrExpiryNotInFuture is returned when creating a lock with an
	// expiry that is not strictly in the future.
	ErrExpiryNotInFuture = errors.Register(1004, "expiration not in the future")

	// ErrTransferFailed is returned when the asset transfer collaborator
	// reports a failure for a pull or push.
	ErrTransferFailed = errors.Register(1005, "transfer failed")
)
