package models

import "strings"

// User is a resident or staff account allowed to sign in to the dashboard
type User struct {
	ID           int64     `gorm:"column:Id;primaryKey;autoIncrement" json:"id"`
	FirstName    string    `gorm:"column:FirstName;not null" json:"firstName"`
	LastName     string    `gorm:"column:LastName;not null" json:"lastName"`
	Email        string    `gorm:"column:Email;not null;unique" json:"email"`
	PasswordHash string    `gorm:"column:PasswordHash;not null" json:"-"`
	PasswordSalt string    `gorm:"column:PasswordSalt;not null" json:"-"`
	CreatedAt    Timestamp `gorm:"column:CreatedAt;not null" json:"createdAt"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "Users"
}

// DisplayName is the name shown on the dashboard and stamped on feedback
func (u User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
