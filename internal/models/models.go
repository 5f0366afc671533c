package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// User is the account entity. The password hash is stored but never
// serialized; children are wired through foreign keys on the child
// side, with cascade on delete.
type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"          json:"id"`
	Email          string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	HashedPassword string    `gorm:"not null"                      json:"-"`
	IsActive       bool      `gorm:"not null;default:true"         json:"is_active"`
	IsSuperuser    bool      `gorm:"not null;default:false"        json:"is_superuser"`
	FullName       *string   `gorm:"size:255"                      json:"full_name,omitempty"`

	Items  []Item  `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	Orders []Order `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"  json:"-"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

type Item struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null"    json:"title"`
	Description *string   `gorm:"size:255"             json:"description,omitempty"`
	OwnerID     uuid.UUID `gorm:"type:uuid;index;not null" json:"owner_id"`
}

func (Item) TableName() string { return "items" }

func (i *Item) BeforeCreate(*gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// Beverage is a standalone catalog entity, no owner.
type Beverage struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string          `gorm:"size:255;not null"    json:"name"`
	Description *string         `gorm:"size:255"             json:"description,omitempty"`
	Price       decimal.Decimal `gorm:"type:decimal(5,3);not null;default:0" json:"price"`
	Inventory   int             `gorm:"not null;check:inventory >= 0"        json:"inventory"`
}

func (Beverage) TableName() string { return "beverages" }

func (b *Beverage) BeforeCreate(*gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

type Order struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"     json:"id"`
	UserID     uuid.UUID       `gorm:"type:uuid;index;not null" json:"user_id"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"total_price"`
	Status     string          `gorm:"size:50;not null;default:pending"      json:"status"`

	Details []OrderDetail `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Order) TableName() string { return "orders" }

func (o *Order) BeforeCreate(*gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

type OrderDetail struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"     json:"id"`
	OrderID  uuid.UUID       `gorm:"type:uuid;index;not null" json:"order_id"`
	ItemID   uuid.UUID       `gorm:"type:uuid;not null"       json:"item_id"`
	Quantity int             `gorm:"not null;default:1;check:quantity >= 1" json:"quantity"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"  json:"price"`
}

func (OrderDetail) TableName() string { return "order_details" }

func (d *OrderDetail) BeforeCreate(*gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
