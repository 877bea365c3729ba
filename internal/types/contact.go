package types

import "time"

// Contact belongs to exactly one user. Every query against this table must be
// scoped by the owning username, never by id alone.
type Contact struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Username  string    `gorm:"size:100;not null;index;column:username" json:"username"`
	FirstName string    `gorm:"size:100;not null;column:first_name" json:"first_name"`
	LastName  *string   `gorm:"size:100;column:last_name" json:"last_name"`
	Email     *string   `gorm:"size:100;column:email" json:"email"`
	Phone     *string   `gorm:"size:20;column:phone" json:"phone"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Contact) TableName() string {
	return "contacts"
}
