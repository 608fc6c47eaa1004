package model

import "time"

/*

Topic is the root of a discussion thread.

Id: primary key
CreatedAt: time when entity is created
AccountID:
Account: owner of the topic, "belongs-to" relation. Nulled when the
         account goes away, the topic itself stays.

Name: display name, kept separately from the account for retro
      compatibility with anonymous-era rows
Title: topic title in plain text
Body: opening statement in plain text

Deleting a topic cascades to every comment referencing it, at any
reply depth.
*/
type Topic struct {
	Id        string `gorm:"primaryKey"`
	CreatedAt time.Time
	AccountID *string  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Account   *Account `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Name      string
	Title     string
	Body      string
}

// OwnerID returns the owning account id, or "" when the topic is
// orphaned.
func (t *Topic) OwnerID() string {
	if t.AccountID == nil {
		return ""
	}
	return *t.AccountID
}
