package gorm

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/vantagehq/vantage/pkg/audit"
	"github.com/vantagehq/vantage/pkg/model"
	"github.com/vantagehq/vantage/pkg/server/store"
)

// Ensure AuditStore implements store.AuditStore and audit.Persister
var _ store.AuditStore = (*AuditStore)(nil)
var _ audit.Persister = (*AuditStore)(nil)

// AuditStore implements the hash-chained audit log using GORM
type AuditStore struct {
	db *gorm.DB
}

// NewAuditStore creates a new AuditStore
func NewAuditStore(db *gorm.DB) *AuditStore {
	return &AuditStore{db: db}
}

// Append persists a record as the next link in its organization's chain.
// A per-org advisory lock is held for the whole transaction before the
// last hash is read: a row lock alone cannot serialize the genesis append
// (no row to lock) and under READ COMMITTED a waiter re-reads the row it
// blocked on, not the row the winner inserted, which would fork the chain.
func (s *AuditStore) Append(rec audit.Record) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"SELECT pg_advisory_xact_lock(hashtextextended(?, 0))", rec.OrgID,
		).Error; err != nil {
			return err
		}

		prevHash := audit.GenesisHash

		var last model.AuditLog
		err := tx.Where("org_id = ?", rec.OrgID).
			Order("id desc").First(&last).Error
		if err == nil {
			prevHash = last.Hash
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		details := rec.Details
		if details == nil {
			details = map[string]any{}
		}
		detailsJSON, err := json.Marshal(details)
		if err != nil {
			return err
		}

		var actorID *string
		if rec.ActorID != "" {
			actorID = &rec.ActorID
		}

		// timestamptz keeps microseconds; hash what will be read back.
		now := time.Now().UTC().Truncate(time.Microsecond)
		return tx.Create(&model.AuditLog{
			OrgID:        rec.OrgID,
			ActorID:      actorID,
			Action:       rec.Action,
			ResourceType: rec.ResourceType,
			ResourceID:   rec.ResourceID,
			Details:      string(detailsJSON),
			ClientIP:     rec.ClientIP,
			CreatedAt:    now,
			PreviousHash: prevHash,
			Hash:         audit.EntryHash(prevHash, rec, now),
		}).Error
	})
}

// ListLogs returns an organization's audit entries, newest first.
func (s *AuditStore) ListLogs(orgID string, filter store.AuditFilter) ([]model.AuditLog, error) {
	query := s.db.Where("org_id = ?", orgID)
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	if filter.ResourceType != "" {
		query = query.Where("resource_type = ?", filter.ResourceType)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var logs []model.AuditLog
	if err := query.Order("id desc").Offset(filter.Offset).Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// VerifyChain walks the organization's chain oldest-first and recomputes
// every hash.
func (s *AuditStore) VerifyChain(orgID string) (audit.VerifyResult, error) {
	var rows []model.AuditLog
	if err := s.db.Where("org_id = ?", orgID).Order("id").Find(&rows).Error; err != nil {
		return audit.VerifyResult{}, err
	}
	return audit.VerifyChain(rows), nil
}

// CountSince returns the number of entries recorded in the last days.
func (s *AuditStore) CountSince(orgID string, days int) (int64, error) {
	var count int64
	err := s.db.Model(&model.AuditLog{}).
		Where("org_id = ? AND created_at > ?", orgID, time.Now().UTC().AddDate(0, 0, -days)).
		Count(&count).Error
	return count, err
}
