package news

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/joel3500/Forum-de-Discussion-ENT/model"
	. "github.com/joel3500/Forum-de-Discussion-ENT/utils/log"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LocalTZ is the calendar the once-per-day policy runs on.
const LocalTZ = "America/Toronto"

// Manager applies the cache-or-refresh policy over the singleton
// NewsCache row. A read within the same local calendar day as the
// stored fetch serves the cached payload untouched; an older row, a
// missing row or an unparseable payload triggers one fetch and an
// in-place overwrite.
//
// Two racing readers on a stale row may both fetch; the upsert keeps
// the row consistent either way and last writer wins.
type Manager struct {
	db      *gorm.DB
	fetcher Fetcher
	loc     *time.Location
	now     func() time.Time
}

func NewManager(db *gorm.DB, fetcher Fetcher) (*Manager, error) {
	loc, err := time.LoadLocation(LocalTZ)
	if err != nil {
		return nil, errors.Wrap(err, "fail to load local time zone")
	}
	return &Manager{db: db, fetcher: fetcher, loc: loc, now: time.Now}, nil
}

// GetDaily returns today's digest, fetching and caching it first if
// needed. It never fails from the caller's point of view: fetch-layer
// problems surface as a degraded digest, storage problems as a served
// but uncached digest.
func (m *Manager) GetDaily(ctx context.Context) Digest {
	var row model.NewsCache
	err := m.db.Where("key = ?", CacheKey).First(&row).Error
	if err == nil && m.sameLocalDay(row.FetchedAt) {
		var cached Digest
		if jsonErr := json.Unmarshal([]byte(row.Payload), &cached); jsonErr == nil && len(cached.Items) > 0 {
			return cached
		}
		// Fresh by date but unreadable payload: treat as absent.
		Log.Warn("news cache payload unreadable, forcing refetch")
	}

	digest := m.fetcher.FetchDigest(ctx)
	if err := m.store(digest); err != nil {
		Log.Error("fail to store news cache row: ", err)
	}
	return digest
}

// Clear drops the cache row so the next read regenerates. No outbound
// call happens here.
func (m *Manager) Clear() error {
	res := m.db.Where("key = ?", CacheKey).Delete(&model.NewsCache{})
	return errors.Wrap(res.Error, "fail to clear news cache")
}

func (m *Manager) store(digest Digest) error {
	raw, err := json.Marshal(digest)
	if err != nil {
		return errors.Wrap(err, "fail to serialize digest")
	}
	row := model.NewsCache{
		Id:        uuid.New().String(),
		Key:       CacheKey,
		Payload:   string(raw),
		FetchedAt: m.now().UTC(),
	}
	// Single-statement upsert keyed on the unique key column: racing
	// writers can overwrite each other but never split or duplicate
	// the row.
	return m.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "fetched_at"}),
	}).Create(&row).Error
}

// sameLocalDay reinterprets the stored UTC instant in the local time
// zone and compares calendar dates with "now".
func (m *Manager) sameLocalDay(fetchedAt time.Time) bool {
	fy, fm, fd := fetchedAt.UTC().In(m.loc).Date()
	ny, nm, nd := m.now().In(m.loc).Date()
	return fy == ny && fm == nm && fd == nd
}
