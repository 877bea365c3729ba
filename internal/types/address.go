package types

import "time"

// Address hangs off a contact; it is only ever reachable through a contact
// that the caller owns (the two-level ownership chain).
type Address struct {
	ID         int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ContactID  int64     `gorm:"not null;index;column:contact_id" json:"contact_id"`
	Street     *string   `gorm:"size:255;column:street" json:"street"`
	City       *string   `gorm:"size:100;column:city" json:"city"`
	Province   *string   `gorm:"size:100;column:province" json:"province"`
	Country    *string   `gorm:"size:100;column:country" json:"country"`
	PostalCode *string   `gorm:"size:10;column:postal_code" json:"postal_code"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

func (Address) TableName() string {
	return "addresses"
}
