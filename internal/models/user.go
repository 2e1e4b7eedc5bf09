package models

import "strings"

// UnknownOwner is the fallback display name used when the identity store is
// unreachable or has no row for the account.
const UnknownOwner = "Unknown"

// User represents a row in the identity store. Only the display-name columns
// are read by this system; the identity store is never written to.
type User struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	AccountID string `gorm:"column:accountid;type:varchar(64);index" json:"accountid"`
	FirstName string `gorm:"column:firstname;type:varchar(100)" json:"firstname"`
	LastName  string `gorm:"column:lastname;type:varchar(100)" json:"lastname"`
}

// TableName returns the table name for User
func (u *User) TableName() string {
	return "users"
}

// DisplayName composes the owner's display name from first and last name,
// falling back to UnknownOwner when both are blank.
func (u *User) DisplayName() string {
	if u == nil {
		return UnknownOwner
	}

	name := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	if name == "" {
		return UnknownOwner
	}
	return name
}
