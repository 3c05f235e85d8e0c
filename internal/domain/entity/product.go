package entity

import "github.com/shopspring/decimal"

// Product is a catalog item. The catalog is read-only from this system's
// perspective; rows are seeded out of band.
type Product struct {
	ID            int64           // Numeric product identifier, as referenced by cart cookies.
	Name          string          // Display name of the comic.
	Description   string          // Longer description shown on the details page.
	Cost          decimal.Decimal // Unit price.
	ImageFilename string          // Reference to the cover image served statically.
}
