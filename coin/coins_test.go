package coin

import (
	"testing"

	"github.com/iov-one/vesting/errors"
	"github.com/stretchr/testify/assert"
)

func TestCoinsAdd(t *testing.T) {
	var cs Coins

	cs, err := cs.Add(NewCoin(2, 0, "IOV"))
	assert.NoError(t, err)
	cs, err = cs.Add(NewCoin(1, 0, "BTC"))
	assert.NoError(t, err)
	cs, err = cs.Add(NewCoin(3, 0, "IOV"))
	assert.NoError(t, err)

	// Kept sorted and merged per ticker.
	assert.NoError(t, cs.Validate())
	assert.Equal(t, 2, cs.Count())
	assert.True(t, NewCoin(1, 0, "BTC").Equals(*cs[0]))
	assert.True(t, NewCoin(5, 0, "IOV").Equals(*cs[1]))

	// Adding a zero coin is a noop.
	cs, err = cs.Add(NewCoin(0, 0, "ETH"))
	assert.NoError(t, err)
	assert.Equal(t, 2, cs.Count())

	// Getting back to zero removes the currency.
	cs, err = cs.Add(NewCoin(-1, 0, "BTC"))
	assert.NoError(t, err)
	assert.Equal(t, 1, cs.Count())
	assert.True(t, NewCoin(5, 0, "IOV").Equals(*cs[0]))
}

func TestCoinsContains(t *testing.T) {
	cs := Coins{NewCoinp(5, 0, "IOV")}

	assert.True(t, cs.Contains(NewCoin(5, 0, "IOV")))
	assert.True(t, cs.Contains(NewCoin(4, MaxFrac, "IOV")))
	assert.False(t, cs.Contains(NewCoin(5, 1, "IOV")))
	assert.False(t, cs.Contains(NewCoin(1, 0, "BTC")))
}

func TestCoinsCoinFor(t *testing.T) {
	cs := Coins{NewCoinp(5, 0, "IOV")}

	assert.True(t, NewCoin(5, 0, "IOV").Equals(cs.CoinFor("IOV")))
	// Unknown currency resolves to a zero amount of it.
	assert.True(t, NewCoin(0, 0, "BTC").Equals(cs.CoinFor("BTC")))
}

func TestCoinsCombine(t *testing.T) {
	a := Coins{NewCoinp(1, 0, "BTC"), NewCoinp(2, 0, "IOV")}
	b := Coins{NewCoinp(3, 0, "IOV")}

	res, err := a.Combine(b)
	assert.NoError(t, err)
	assert.Equal(t, 2, res.Count())
	assert.True(t, NewCoin(5, 0, "IOV").Equals(res.CoinFor("IOV")))

	// Combine clones, the input is left untouched.
	assert.True(t, NewCoin(2, 0, "IOV").Equals(a.CoinFor("IOV")))
}

func TestCoinsPredicates(t *testing.T) {
	assert.True(t, Coins{}.IsEmpty())
	assert.False(t, Coins{}.IsPositive())
	assert.True(t, Coins{}.IsNonNegative())

	pos := Coins{NewCoinp(1, 0, "IOV")}
	assert.True(t, pos.IsPositive())

	neg := Coins{NewCoinp(-1, 0, "IOV")}
	assert.False(t, neg.IsPositive())
	assert.False(t, neg.IsNonNegative())
}

func TestCoinsValidate(t *testing.T) {
	cases := map[string]struct {
		coins   Coins
		wantErr *errors.Error
	}{
		"empty": {
			coins: nil,
		},
		"single valid": {
			coins: Coins{NewCoinp(1, 0, "IOV")},
		},
		"unsorted": {
			coins:   Coins{NewCoinp(1, 0, "IOV"), NewCoinp(1, 0, "BTC")},
			wantErr: errors.ErrState,
		},
		"zero coin": {
			coins:   Coins{NewCoinp(0, 0, "IOV")},
			wantErr: errors.ErrState,
		},
		"invalid ticker": {
			coins:   Coins{NewCoinp(1, 0, "wat")},
			wantErr: errors.ErrCurrency,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.coins.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, tc.wantErr.Is(err))
		})
	}
}

func TestCoinsEquals(t *testing.T) {
	a := Coins{NewCoinp(1, 0, "IOV")}
	assert.True(t, a.Equals(Coins{NewCoinp(1, 0, "IOV")}))
	assert.False(t, a.Equals(Coins{NewCoinp(2, 0, "IOV")}))
	assert.False(t, a.Equals(nil))
}
