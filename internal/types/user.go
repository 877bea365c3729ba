package types

import "time"

// User is keyed by username. Token holds the single live session credential:
// non-nil means logged in, nil means logged out. A fresh login overwrites any
// existing token, which invalidates the previous session.
type User struct {
	Username  string    `gorm:"primaryKey;size:100;column:username" json:"username"`
	Password  string    `gorm:"size:100;not null;column:password" json:"-"`
	Name      string    `gorm:"size:100;not null;column:name" json:"name"`
	Token     *string   `gorm:"size:100;index;column:token" json:"-"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
