package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/kirana-store/kirana/internal/units"
)

// Product catalog categories.
const (
	CategoryStaples       = "staples"
	CategoryPulses        = "pulses"
	CategorySpices        = "spices"
	CategoryOil           = "oil"
	CategorySnacks        = "snacks"
	CategoryBeverages     = "beverages"
	CategoryHousehold     = "household"
	CategoryPersonalCare  = "personal-care"
	CategoryMiscellaneous = "miscellaneous"
)

// Product is one catalog entry. PriceAmount applies to exactly one sale
// pack as defined by (PackQuantity, Unit), e.g. 85.00 per {1, kg}. An
// empty Unit means the product sells per plain piece with a pack of 1.
type Product struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Name         string         `gorm:"not null;index" json:"name"`
	PriceAmount  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`
	Category     string         `gorm:"type:varchar(32);not null;index" json:"category"`
	InStock      bool           `gorm:"default:true;index" json:"in_stock"`
	Image        string         `json:"image,omitempty"`
	Description  string         `json:"description,omitempty"`
	Rating       float64        `gorm:"default:0" json:"rating,omitempty"`
	PackQuantity float64        `gorm:"default:0" json:"quantity,omitempty"`
	Unit         units.Unit     `gorm:"type:varchar(16)" json:"unit,omitempty"`
	SortOrder    int            `gorm:"default:0;index" json:"sort_order"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Product) TableName() string {
	return "products"
}

// Pack returns the sale pack the listed price refers to.
func (p *Product) Pack() units.Pack {
	return units.Pack{Quantity: p.PackQuantity, Unit: p.Unit}
}
