// Package wine provides domain types for the wine cellar: the Wine entity,
// AI-derived advice values, and the shared error taxonomy.
package wine

import (
	"time"

	"github.com/google/uuid"
)

// Type represents the wine style. It is a closed enum: values observed from
// any external source (storage rows, model output) must pass through
// ParseType before touching an entity.
type Type string

// Type constants.
const (
	TypeRed       Type = "red"
	TypeWhite     Type = "white"
	TypeRose      Type = "rosé"
	TypeSparkling Type = "sparkling"
)

// DefaultType is the fallback used when an external source supplies a value
// outside the enum.
const DefaultType = TypeRed

// ParseType maps an arbitrary string onto the closed enum. Unknown values
// coerce to DefaultType rather than propagating.
func ParseType(s string) Type {
	switch Type(s) {
	case TypeRed, TypeWhite, TypeRose, TypeSparkling:
		return Type(s)
	default:
		return DefaultType
	}
}

// IsValid reports whether t is one of the four enum values.
func (t Type) IsValid() bool {
	switch t {
	case TypeRed, TypeWhite, TypeRose, TypeSparkling:
		return true
	}
	return false
}

// MinRating and MaxRating bound the user rating scale.
const (
	MinRating = 1
	MaxRating = 5
)

// Wine is the canonical cellar record. It is an immutable value object;
// WithX methods return modified copies. Optional text fields use the empty
// string for "unset", rating uses zero.
type Wine struct {
	id uuid.UUID

	// User-entered core.
	name     string
	year     int
	grapes   string
	quantity int

	// AI-derived core, unset until enrichment runs.
	country       string
	region        string
	typ           Type
	drinkWindow   string
	tasteProfile  string
	pairingAdvice string

	// User feedback.
	notes  string
	rating int

	createdAt time.Time
}

// NewWine creates a draft wine from user input. Identity and creation time
// are assigned by the store on save. Negative quantities clamp to zero.
func NewWine(name string, year int, grapes string, quantity int) Wine {
	if quantity < 0 {
		quantity = 0
	}
	return Wine{
		name:     name,
		year:     year,
		grapes:   grapes,
		quantity: quantity,
		typ:      DefaultType,
	}
}

// ReconstructWine recreates a wine from persistence (for mapper use).
func ReconstructWine(
	id uuid.UUID,
	name string,
	year int,
	grapes string,
	quantity int,
	country string,
	region string,
	typ Type,
	drinkWindow string,
	tasteProfile string,
	pairingAdvice string,
	notes string,
	rating int,
	createdAt time.Time,
) Wine {
	if quantity < 0 {
		quantity = 0
	}
	if !typ.IsValid() {
		typ = DefaultType
	}
	return Wine{
		id:            id,
		name:          name,
		year:          year,
		grapes:        grapes,
		quantity:      quantity,
		country:       country,
		region:        region,
		typ:           typ,
		drinkWindow:   drinkWindow,
		tasteProfile:  tasteProfile,
		pairingAdvice: pairingAdvice,
		notes:         notes,
		rating:        rating,
		createdAt:     createdAt,
	}
}

// ID returns the wine's identity, or uuid.Nil for unsaved drafts.
func (w Wine) ID() uuid.UUID { return w.id }

// Name returns the wine name.
func (w Wine) Name() string { return w.name }

// Year returns the vintage year.
func (w Wine) Year() int { return w.year }

// Grapes returns the grape varieties, empty when unknown.
func (w Wine) Grapes() string { return w.grapes }

// Quantity returns the number of bottles in stock. Never negative.
func (w Wine) Quantity() int { return w.quantity }

// Country returns the country of origin, empty until enriched.
func (w Wine) Country() string { return w.country }

// Region returns the region or appellation, empty until enriched.
func (w Wine) Region() string { return w.region }

// Style returns the wine type.
func (w Wine) Style() Type { return w.typ }

// DrinkWindow returns the recommended drinking period, empty until enriched.
func (w Wine) DrinkWindow() string { return w.drinkWindow }

// TasteProfile returns the taste description, empty until enriched.
func (w Wine) TasteProfile() string { return w.tasteProfile }

// PairingAdvice returns the food pairing advice, empty until enriched.
func (w Wine) PairingAdvice() string { return w.pairingAdvice }

// Notes returns the user's notes.
func (w Wine) Notes() string { return w.notes }

// Rating returns the user rating (1..5), or zero when unrated.
func (w Wine) Rating() int { return w.rating }

// CreatedAt returns the store-assigned creation time.
func (w Wine) CreatedAt() time.Time { return w.createdAt }

// InStock reports whether at least one bottle remains. Only in-stock wines
// are eligible pairing candidates.
func (w Wine) InStock() bool { return w.quantity > 0 }

// WithName returns a copy with the given name.
func (w Wine) WithName(name string) Wine {
	w.name = name
	return w
}

// WithYear returns a copy with the given vintage year.
func (w Wine) WithYear(year int) Wine {
	w.year = year
	return w
}

// WithGrapes returns a copy with the given grape varieties.
func (w Wine) WithGrapes(grapes string) Wine {
	w.grapes = grapes
	return w
}

// WithQuantity returns a copy with the given stock count, clamped at zero.
func (w Wine) WithQuantity(quantity int) Wine {
	if quantity < 0 {
		quantity = 0
	}
	w.quantity = quantity
	return w
}

// DrinkBottle returns a copy with one bottle removed, clamped at zero.
func (w Wine) DrinkBottle() Wine {
	return w.WithQuantity(w.quantity - 1)
}

// WithNotes returns a copy with the given notes.
func (w Wine) WithNotes(notes string) Wine {
	w.notes = notes
	return w
}

// WithRating returns a copy with the given rating. Values outside 1..5
// clear the rating instead of storing an out-of-range value.
func (w Wine) WithRating(rating int) Wine {
	if rating < MinRating || rating > MaxRating {
		rating = 0
	}
	w.rating = rating
	return w
}

// WithEnrichment returns a copy with the AI-derived fields replaced by info.
// The wine's grapes are only overwritten when the user left them empty.
func (w Wine) WithEnrichment(info Info) Wine {
	if w.grapes == "" {
		w.grapes = info.Grapes()
	}
	w.country = info.Country()
	w.region = info.Region()
	w.typ = info.Style()
	w.drinkWindow = info.DrinkWindow()
	w.tasteProfile = info.TasteProfile()
	w.pairingAdvice = info.PairingAdvice()
	return w
}
