package persistence

import (
	"github.com/google/uuid"

	"github.com/wijnkelder/cellar/domain/wine"
)

// WineMapper maps between the domain Wine and the storage WineModel. It is
// the single point of truth for the column translation: both directions are
// total and side-effect free. Unset optionals become NULL columns and NULL
// columns come back as unset, so round-trips are identity modulo that
// normalization.
type WineMapper struct{}

// ToDomain converts a WineModel to a domain Wine. Unknown type strings are
// coerced onto the enum; a malformed stored ID yields a nil UUID rather than
// an error, as the row is still owned and listable.
func (m WineMapper) ToDomain(e WineModel) wine.Wine {
	id, err := uuid.Parse(e.ID)
	if err != nil {
		id = uuid.Nil
	}

	return wine.ReconstructWine(
		id,
		e.Name,
		e.Year,
		strValue(e.Grapes),
		e.Quantity,
		strValue(e.Country),
		strValue(e.Region),
		wine.ParseType(e.Type),
		strValue(e.BestBefore),
		strValue(e.TasteProfile),
		strValue(e.PairingAdvice),
		strValue(e.Notes),
		intValue(e.Rating),
		e.CreatedAt,
	)
}

// ToModel converts a domain Wine to a WineModel owned by ownerID.
func (m WineMapper) ToModel(w wine.Wine, ownerID uuid.UUID) WineModel {
	return WineModel{
		ID:            w.ID().String(),
		UserID:        ownerID.String(),
		Name:          w.Name(),
		Year:          w.Year(),
		Grapes:        strPtr(w.Grapes()),
		Quantity:      w.Quantity(),
		Country:       strPtr(w.Country()),
		Region:        strPtr(w.Region()),
		Type:          string(w.Style()),
		BestBefore:    strPtr(w.DrinkWindow()),
		TasteProfile:  strPtr(w.TasteProfile()),
		PairingAdvice: strPtr(w.PairingAdvice()),
		Notes:         strPtr(w.Notes()),
		Rating:        intPtr(w.Rating()),
		CreatedAt:     w.CreatedAt(),
	}
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func strValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func intPtr(n int) *int {
	if n == 0 {
		return nil
	}
	return &n
}

func intValue(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
