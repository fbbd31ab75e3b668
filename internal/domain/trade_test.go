package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const companyID = "company-1"

func TestNewTrade(t *testing.T) {
	t.Run("purchase trades are marked to be financed", func(t *testing.T) {
		trade := NewTrade(SourceVakt, "V-1", companyID, TradeAttributes{
			Buyer:  companyID,
			Seller: "other-co",
		})
		assert.Equal(t, StatusToBeFinanced, trade.Status)
	})

	t.Run("sale trades are marked to be discounted", func(t *testing.T) {
		trade := NewTrade(SourceVakt, "V-1", companyID, TradeAttributes{
			Buyer:  "other-co",
			Seller: companyID,
		})
		assert.Equal(t, StatusToBeDiscounted, trade.Status)
	})

	t.Run("credit requirement defaults to documentary letter of credit", func(t *testing.T) {
		trade := NewTrade(SourceVakt, "V-1", companyID, TradeAttributes{})
		assert.Equal(t, CreditDocumentaryLetterOfCredit, trade.CreditRequirement)
	})

	t.Run("explicit credit requirement is preserved", func(t *testing.T) {
		trade := NewTrade(SourceVakt, "V-1", companyID, TradeAttributes{
			CreditRequirement: CreditOpenCredit,
		})
		assert.Equal(t, CreditOpenCredit, trade.CreditRequirement)
	})

	t.Run("schema version defaults to 1", func(t *testing.T) {
		trade := NewTrade(SourceKomgo, "K-1", companyID, TradeAttributes{})
		assert.Equal(t, 1, trade.Version)

		trade = NewTrade(SourceKomgo, "K-1", companyID, TradeAttributes{Version: 2})
		assert.Equal(t, 2, trade.Version)
	})
}

func TestParseDate(t *testing.T) {
	t.Run("empty string stays nil", func(t *testing.T) {
		date, err := ParseDate("")
		require.NoError(t, err)
		assert.Nil(t, date)
	})

	t.Run("wire format parses to UTC midnight", func(t *testing.T) {
		date, err := ParseDate("2017-12-31")
		require.NoError(t, err)
		require.NotNil(t, date)
		assert.Equal(t, time.Date(2017, time.December, 31, 0, 0, 0, 0, time.UTC), *date)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := ParseDate("31/12/2017")
		assert.Error(t, err)
	})
}
