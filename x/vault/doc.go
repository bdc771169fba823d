/*
Package vault implements the vesting ledger: a single lock of a fungible
asset held in custody for a receiver until an expiry time, after which
anyone may trigger the claim.

A Ledger is bound to one asset ticker at construction and holds at most one
active lock at a time. Lock pulls the funds from the initiating party into
the ledger's custody account and Claim pushes them to the receiver once the
lock expired. Both operations either fully succeed (state updated, event
emitted, funds moved) or fully fail with one of the registered error kinds
and no observable effect.

Asset accounting is delegated to a cash.CoinMover and time to a
vesting.Clock, so both can be controlled by the environment.
*/
package vault
