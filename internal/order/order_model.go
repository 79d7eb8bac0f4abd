package order

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order is the domain and GORM model for the orders table. Seq is the
// storage-level insertion counter used to keep listing order; it never
// appears in responses.
type Order struct {
	Seq         uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	ID          uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"id"`
	CustomerID  string    `gorm:"type:varchar(255);not null" json:"customerId"`
	Items       []Item    `gorm:"foreignKey:OrderSeq;references:Seq" json:"items"`
	TotalAmount float64   `gorm:"type:decimal(10,2);not null" json:"totalAmount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Item is one product line within an order.
type Item struct {
	Seq       uint    `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderSeq  uint    `gorm:"index" json:"-"`
	ProductID string  `gorm:"type:varchar(255);not null" json:"productId"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Price     float64 `gorm:"type:decimal(10,2);not null" json:"price"`
}

// BeforeCreate assigns the order ID and creation time before the row is
// written. An already-set ID is kept.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}
	return nil
}
