package domain

import (
	"reflect"
	"time"
)

// Change detection strips everything the store owns before comparing, so a
// no-op REST update with identical business content produces no internal
// event. The inbound message path does not diff; there the source already
// decided the value changed.

func TradeChanged(existing, incoming Trade) bool {
	return !reflect.DeepEqual(normalizeTrade(existing), normalizeTrade(incoming))
}

func CargoChanged(existing, incoming Cargo) bool {
	return !reflect.DeepEqual(normalizeCargo(existing), normalizeCargo(incoming))
}

func normalizeTrade(t Trade) Trade {
	t.ID = ""
	t.CreatedAt = time.Time{}
	t.UpdatedAt = time.Time{}
	t.DeletedAt = nil
	if len(t.RequiredDocuments) == 0 {
		t.RequiredDocuments = nil
	}
	return t
}

func normalizeCargo(c Cargo) Cargo {
	c.ID = ""
	c.CreatedAt = time.Time{}
	c.UpdatedAt = time.Time{}
	c.DeletedAt = nil
	if len(c.Parcels) == 0 {
		c.Parcels = nil
	}
	return c
}
