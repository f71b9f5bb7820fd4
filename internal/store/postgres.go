package store

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookedSlot is one row per claimed slot. The composite primary key is
// what makes TryClaim atomic: the insert either lands or conflicts.
type BookedSlot struct {
	ServiceID string `gorm:"primaryKey;size:64"`
	SlotID    string `gorm:"primaryKey;size:64"`
}

// GormStore keeps the booked set in Postgres.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) IsBooked(ctx context.Context, serviceID, slotID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&BookedSlot{}).
		Where("service_id = ? AND slot_id = ?", serviceID, slotID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *GormStore) MarkBooked(ctx context.Context, serviceID, slotID string) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&BookedSlot{ServiceID: serviceID, SlotID: slotID}).Error
}

func (s *GormStore) TryClaim(ctx context.Context, serviceID, slotID string) (bool, error) {
	tx := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&BookedSlot{ServiceID: serviceID, SlotID: slotID})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}
