package model

import "time"

const (
	AdminYes = "yes"
	AdminNo  = "no"
)

/*

Account is a registered forum user.

Id: primary key
CreatedAt: time when the account is registered
Name: display name shown next to topics and comments
Email: login identifier, unique across the table
PasswordHash: bcrypt hash of the password, never the clear text
IsAdmin: "yes" / "no" moderation flag

Accounts are never deleted through the exposed surface. Topics and
comments reference them with ON DELETE SET NULL so rows survive their
author.
*/
type Account struct {
	Id           string `gorm:"primaryKey"`
	CreatedAt    time.Time
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	IsAdmin      string `gorm:"default:no"`
}

// Admin reports whether the account carries the moderation flag.
func (a *Account) Admin() bool {
	return a != nil && a.IsAdmin == AdminYes
}
