package cash

import (
	"testing"

	"github.com/iov-one/vesting"
	"github.com/iov-one/vesting/coin"
	"github.com/iov-one/vesting/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alice = vesting.NewAddress([]byte("alice"))
	bob   = vesting.NewAddress([]byte("bob"))
)

func TestBankMoveCoins(t *testing.T) {
	bank := NewBank()
	require.NoError(t, bank.CoinMint(alice, coin.NewCoin(100, 0, "IOV")))

	require.NoError(t, bank.MoveCoins(alice, bob, coin.NewCoin(40, 0, "IOV")))

	got, err := bank.Balance(alice)
	require.NoError(t, err)
	assert.True(t, coin.NewCoin(60, 0, "IOV").Equals(got.CoinFor("IOV")))

	got, err = bank.Balance(bob)
	require.NoError(t, err)
	assert.True(t, coin.NewCoin(40, 0, "IOV").Equals(got.CoinFor("IOV")))
}

func TestBankMoveCoinsGuards(t *testing.T) {
	cases := map[string]struct {
		setup   func(*Bank) error
		src     vesting.Address
		amount  coin.Coin
		wantErr *errors.Error
	}{
		"zero amount": {
			src:     alice,
			amount:  coin.NewCoin(0, 0, "IOV"),
			wantErr: errors.ErrAmount,
		},
		"negative amount": {
			src:     alice,
			amount:  coin.NewCoin(-1, 0, "IOV"),
			wantErr: errors.ErrAmount,
		},
		"invalid currency": {
			src:     alice,
			amount:  coin.NewCoin(1, 0, "bad ticker"),
			wantErr: errors.ErrCurrency,
		},
		"unknown source account": {
			src:     alice,
			amount:  coin.NewCoin(1, 0, "IOV"),
			wantErr: errors.ErrEmpty,
		},
		"insufficient funds": {
			setup: func(b *Bank) error {
				return b.CoinMint(alice, coin.NewCoin(1, 0, "IOV"))
			},
			src:     alice,
			amount:  coin.NewCoin(2, 0, "IOV"),
			wantErr: errors.ErrInsufficientAmount,
		},
		"wrong currency held": {
			setup: func(b *Bank) error {
				return b.CoinMint(alice, coin.NewCoin(10, 0, "BTC"))
			},
			src:     alice,
			amount:  coin.NewCoin(1, 0, "IOV"),
			wantErr: errors.ErrInsufficientAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			bank := NewBank()
			if tc.setup != nil {
				require.NoError(t, tc.setup(bank))
			}

			err := bank.MoveCoins(tc.src, bob, tc.amount)
			assert.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)

			// A failed move must not create the destination wallet.
			got, berr := bank.Balance(bob)
			require.NoError(t, berr)
			assert.True(t, got.IsEmpty())
		})
	}
}

func TestBankFailedMoveLeavesSourceIntact(t *testing.T) {
	bank := NewBank()
	require.NoError(t, bank.CoinMint(alice, coin.NewCoin(5, 0, "IOV")))
	require.NoError(t, bank.CoinMint(bob, coin.NewCoin(coin.MaxInt, 0, "IOV")))

	// The destination cannot absorb the amount. Neither wallet may change.
	err := bank.MoveCoins(alice, bob, coin.NewCoin(2, 0, "IOV"))
	assert.True(t, errors.ErrOverflow.Is(err), "unexpected error: %+v", err)

	got, berr := bank.Balance(alice)
	require.NoError(t, berr)
	assert.True(t, coin.NewCoin(5, 0, "IOV").Equals(got.CoinFor("IOV")))

	got, berr = bank.Balance(bob)
	require.NoError(t, berr)
	assert.True(t, coin.NewCoin(coin.MaxInt, 0, "IOV").Equals(got.CoinFor("IOV")))
}

func TestBankDrainedWalletDisappears(t *testing.T) {
	bank := NewBank()
	require.NoError(t, bank.CoinMint(alice, coin.NewCoin(5, 0, "IOV")))
	require.NoError(t, bank.MoveCoins(alice, bob, coin.NewCoin(5, 0, "IOV")))

	// Once drained the account behaves like one that never existed.
	err := bank.MoveCoins(alice, bob, coin.NewCoin(1, 0, "IOV"))
	assert.True(t, errors.ErrEmpty.Is(err))
}

func TestBankMintNegative(t *testing.T) {
	bank := NewBank()
	require.NoError(t, bank.CoinMint(alice, coin.NewCoin(5, 0, "IOV")))
	require.NoError(t, bank.CoinMint(alice, coin.NewCoin(-2, 0, "IOV")))

	got, err := bank.Balance(alice)
	require.NoError(t, err)
	assert.True(t, coin.NewCoin(3, 0, "IOV").Equals(got.CoinFor("IOV")))
}

func TestBankBalanceIsACopy(t *testing.T) {
	bank := NewBank()
	require.NoError(t, bank.CoinMint(alice, coin.NewCoin(5, 0, "IOV")))

	got, err := bank.Balance(alice)
	require.NoError(t, err)
	got[0].Whole = 999

	fresh, err := bank.Balance(alice)
	require.NoError(t, err)
	assert.True(t, coin.NewCoin(5, 0, "IOV").Equals(fresh.CoinFor("IOV")))
}
