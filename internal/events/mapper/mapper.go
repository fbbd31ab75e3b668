// Package mapper converts inbound VAKT wire payloads into canonical domain
// attributes. Resolution of company identifiers happens later, in the
// processors; mapping is pure.
package mapper

import (
	"fmt"

	"tradecargo/internal/domain"
	"tradecargo/internal/events"
)

// VAKT trades are always BFOET crude; the wire does not carry a commodity.
const vaktCommodity = "BFOET"

// TradeAttributes builds canonical trade attributes from a VAKT trade
// payload. Buyer and seller still hold VAKT static IDs at this point.
func TradeAttributes(msg events.TradeMessageData) (domain.TradeAttributes, error) {
	dealDate, err := domain.ParseDate(msg.DealDate)
	if err != nil {
		return domain.TradeAttributes{}, fmt.Errorf("dealDate: %w", err)
	}
	deliveryPeriod, err := mapPeriod(msg.DeliveryPeriod, "deliveryPeriod")
	if err != nil {
		return domain.TradeAttributes{}, err
	}

	attrs := domain.TradeAttributes{
		Buyer:        msg.Buyer,
		Seller:       msg.Seller,
		BuyerEtrmID:  msg.BuyerEtrmID,
		SellerEtrmID: msg.SellerEtrmID,

		Commodity:         vaktCommodity,
		CreditRequirement: domain.CreditRequirement(msg.CreditRequirement),

		DealDate:       dealDate,
		DeliveryPeriod: deliveryPeriod,

		Price:        msg.Price,
		Currency:     msg.Currency,
		PriceUnit:    msg.PriceUnit,
		Quantity:     msg.Quantity,
		MinTolerance: msg.MinTolerance,
		MaxTolerance: msg.MaxTolerance,

		DeliveryTerms:             msg.DeliveryTerms,
		DeliveryLocation:          msg.DeliveryLocation,
		InvoiceQuantity:           msg.InvoiceQuantity,
		GeneralTermsAndConditions: msg.GeneralTermsAndConditions,
		Laytime:                   msg.Laytime,
		DemurrageTerms:            msg.DemurrageTerms,
		Law:                       msg.Law,

		Version: msg.Version,
	}
	if msg.PaymentTerms != nil {
		attrs.PaymentTerms = &domain.PaymentTerms{
			EventBase: msg.PaymentTerms.EventBase,
			When:      msg.PaymentTerms.When,
			Time:      msg.PaymentTerms.Time,
			TimeUnit:  msg.PaymentTerms.TimeUnit,
			DayType:   msg.PaymentTerms.DayType,
		}
	}
	return attrs, nil
}

// CargoAttributes builds canonical cargo attributes from a VAKT cargo
// payload. Grade inference from the cargoId is left to the constructor.
func CargoAttributes(msg events.CargoMessageData) (domain.CargoAttributes, error) {
	parcels := make([]domain.Parcel, 0, len(msg.Parcels))
	for i, wp := range msg.Parcels {
		laycan, err := mapPeriod(wp.LaycanPeriod, fmt.Sprintf("parcels[%d].laycanPeriod", i))
		if err != nil {
			return domain.CargoAttributes{}, err
		}
		deemedBL, err := domain.ParseDate(wp.DeemedBLDate)
		if err != nil {
			return domain.CargoAttributes{}, fmt.Errorf("parcels[%d].deemedBLDate: %w", i, err)
		}
		parcels = append(parcels, domain.Parcel{
			ID:              wp.ID,
			LaycanPeriod:    laycan,
			ModeOfTransport: wp.ModeOfTransport,
			VesselIMO:       wp.VesselIMO,
			VesselName:      wp.VesselName,
			LoadingPort:     wp.LoadingPort,
			DischargeArea:   wp.DischargeArea,
			Inspector:       wp.Inspector,
			DeemedBLDate:    deemedBL,
			Quantity:        wp.Quantity,
		})
	}
	return domain.CargoAttributes{
		CargoID: msg.CargoID,
		Grade:   domain.Grade(msg.Grade),
		Parcels: parcels,
		Version: msg.Version,
	}, nil
}

func mapPeriod(p *events.WirePeriod, field string) (*domain.Period, error) {
	if p == nil {
		return nil, nil
	}
	start, err := domain.ParseDate(p.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%s.startDate: %w", field, err)
	}
	end, err := domain.ParseDate(p.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%s.endDate: %w", field, err)
	}
	return &domain.Period{StartDate: start, EndDate: end}, nil
}
