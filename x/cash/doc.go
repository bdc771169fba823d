/*
Package cash provides the asset transfer collaborator used by the vesting
ledger: wallets addressed by vesting.Address holding sets of coins, with
controller interfaces to move and mint funds.

The ledger only depends on the CoinMover interface. The in-memory Bank is
the default implementation; a persistent one can be plugged in without
touching the ledger.
*/
package cash
