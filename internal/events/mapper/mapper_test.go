package mapper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradecargo/internal/domain"
	"tradecargo/internal/events"
)

func TestTradeAttributes(t *testing.T) {
	msg := events.TradeMessageData{
		Version:      1,
		VaktID:       "V-1",
		Buyer:        "vakt-buyer",
		Seller:       "vakt-seller",
		BuyerEtrmID:  "E-100",
		DealDate:     "2019-03-01",
		DeliveryPeriod: &events.WirePeriod{
			StartDate: "2019-04-01",
			EndDate:   "2019-04-30",
		},
		PaymentTerms: &events.WirePaymentTerms{
			EventBase: "BL", When: "AFTER", Time: 30, TimeUnit: "DAYS", DayType: "CALENDAR",
		},
		Price:    60.5,
		Currency: "USD",
		Quantity: 600000,
	}

	attrs, err := TradeAttributes(msg)
	require.NoError(t, err)

	assert.Equal(t, "BFOET", attrs.Commodity)
	assert.Equal(t, "vakt-buyer", attrs.Buyer)
	require.NotNil(t, attrs.DealDate)
	assert.Equal(t, time.Date(2019, time.March, 1, 0, 0, 0, 0, time.UTC), *attrs.DealDate)
	require.NotNil(t, attrs.DeliveryPeriod)
	assert.Equal(t, "2019-04-30", domain.FormatDate(attrs.DeliveryPeriod.EndDate))
	require.NotNil(t, attrs.PaymentTerms)
	assert.Equal(t, 30, attrs.PaymentTerms.Time)

	t.Run("bad date is rejected with the field name", func(t *testing.T) {
		bad := msg
		bad.DealDate = "01/03/2019"
		_, err := TradeAttributes(bad)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "dealDate")
	})

	t.Run("absent payment terms stay nil", func(t *testing.T) {
		noTerms := msg
		noTerms.PaymentTerms = nil
		attrs, err := TradeAttributes(noTerms)
		require.NoError(t, err)
		assert.Nil(t, attrs.PaymentTerms)
	})
}

func TestCargoAttributes(t *testing.T) {
	msg := events.CargoMessageData{
		Version: 2,
		VaktID:  "V-1",
		CargoID: "F0401",
		Parcels: []events.WireParcel{{
			ID:           "P-1",
			LaycanPeriod: &events.WirePeriod{StartDate: "2019-04-01", EndDate: "2019-04-03"},
			VesselIMO:    9302152,
			VesselName:   "Andromeda",
			LoadingPort:  "Sullom Voe",
			DeemedBLDate: "2019-04-02",
			Quantity:     600000,
		}},
	}

	attrs, err := CargoAttributes(msg)
	require.NoError(t, err)

	assert.Equal(t, "F0401", attrs.CargoID)
	assert.Equal(t, 2, attrs.Version)
	require.Len(t, attrs.Parcels, 1)
	parcel := attrs.Parcels[0]
	assert.Equal(t, int64(9302152), parcel.VesselIMO)
	require.NotNil(t, parcel.LaycanPeriod)
	assert.Equal(t, "2019-04-01", domain.FormatDate(parcel.LaycanPeriod.StartDate))
	require.NotNil(t, parcel.DeemedBLDate)

	t.Run("bad parcel date is rejected with its index", func(t *testing.T) {
		bad := msg
		bad.Parcels = []events.WireParcel{{ID: "P-1", DeemedBLDate: "bogus"}}
		_, err := CargoAttributes(bad)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parcels[0].deemedBLDate")
	})
}
