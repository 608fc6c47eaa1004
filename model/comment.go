package model

import "time"

/*

Comment is a node in a per-topic reply tree.

Id: primary key
CreatedAt: time when entity is created
TopicID:
Topic: discussion this comment belongs to, "belongs-to" relation.
       ON DELETE CASCADE so removing a topic removes its whole thread.
AccountID:
Account: author, nulled if the account goes away
ParentID:
Parent: self reference. nil means a first-level comment under the
        topic; set means a reply, at unlimited depth. ON DELETE
        CASCADE so removing a comment removes its entire subtree.

Name: display name of the author
Body: comment text
Country, City: optional free-text location fields

Children is populated in memory by CommentForest, never persisted.
*/
type Comment struct {
	Id        string `gorm:"primaryKey"`
	CreatedAt time.Time
	TopicID   string   `gorm:"index;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Topic     *Topic   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AccountID *string  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Account   *Account `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	ParentID  *string  `gorm:"index"`
	Parent    *Comment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Name      string
	Body      string
	Country   *string
	City      *string

	Children []*Comment `gorm:"-"`
}

// OwnerID returns the authoring account id, or "" when the comment is
// orphaned.
func (c *Comment) OwnerID() string {
	if c.AccountID == nil {
		return ""
	}
	return *c.AccountID
}
