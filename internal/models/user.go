package models

// User represents a registered account holder.
// Users are created at registration and never deleted; transactions and
// sessions reference them by ID.
type User struct {
	Base
	Email        string        `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Username     string        `gorm:"uniqueIndex;size:50;not null" json:"username"`
	PasswordHash string        `gorm:"not null" json:"-"`
	Transactions []Transaction `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
}
