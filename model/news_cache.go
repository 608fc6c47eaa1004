package model

import "time"

// NewsCache is the singleton-keyed row holding the most recent news
// digest. Payload is the serialized JSON document; FetchedAt is the
// instant of the last successful fetch, stored as UTC.
type NewsCache struct {
	Id        string `gorm:"primaryKey"`
	Key       string `gorm:"uniqueIndex"`
	Payload   string
	FetchedAt time.Time
}
