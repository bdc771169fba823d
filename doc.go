/*
Package vesting defines the common types shared by the vesting ledger and
its collaborators: addresses and conditions to identify parties, a
seconds-precision time type with a pluggable clock, and genesis options
parsing.

The actual ledger lives in x/vault. Asset accounting is provided by the
x/cash collaborator. Both build on the types defined here.
*/
package vesting
