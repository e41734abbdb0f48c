package models

// Project status values.
const (
	ProjectStatusReady            = "ready"
	ProjectStatusUnderDevelopment = "under-development"
	ProjectStatusUpcoming         = "upcoming"
)

// Project represents a plotted development listing shown on the public site.
// Projects are seeded at startup and read-only through the API.
type Project struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Name           string     `gorm:"type:varchar(100);not null" json:"name"`
	Location       string     `gorm:"type:varchar(200);not null" json:"location"`
	Price          string     `gorm:"type:varchar(50);not null" json:"price"` // display string, e.g. "₹52L+"
	Status         string     `gorm:"type:varchar(30);not null" json:"status"`
	PlotsAvailable int        `gorm:"not null" json:"plotsAvailable"`
	PlotSize       string     `gorm:"type:varchar(50);not null" json:"plotSize"`
	Description    string     `gorm:"type:text;not null" json:"description"`
	ImageURL       string     `gorm:"type:text;not null" json:"imageUrl"`
	Amenities      StringList `gorm:"type:jsonb" json:"amenities"`
	Features       StringList `gorm:"type:jsonb" json:"features"`
}
