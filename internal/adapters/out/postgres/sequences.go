package postgres

import (
	"context"

	"gorm.io/gorm"
)

// SequenceDTO represents one named counter row. Counters start at 1 on
// first use.
type SequenceDTO struct {
	Code  string `gorm:"type:varchar(64);primaryKey"`
	Value int64
}

// TableName overrides GORM's default naming convention to use "sequences".
func (SequenceDTO) TableName() string {
	return "sequences"
}

// GormSequenceGenerator implements ports.SequenceGenerator on a sequences
// table. The increment happens in a single upsert statement, so concurrent
// transactions serialize on the row lock and never hand out the same value.
type GormSequenceGenerator struct {
	db *gorm.DB
}

// NewGormSequenceGenerator creates a sequence generator on the given
// connection. Pass the transaction handle to draw numbers transactionally.
func NewGormSequenceGenerator(db *gorm.DB) *GormSequenceGenerator {
	return &GormSequenceGenerator{db: db}
}

// Next returns the next value of the named sequence.
func (g *GormSequenceGenerator) Next(ctx context.Context, code string) (int64, error) {
	var value int64
	err := g.db.WithContext(ctx).Raw(`
		INSERT INTO sequences (code, value) VALUES (?, 1)
		ON CONFLICT (code) DO UPDATE SET value = sequences.value + 1
		RETURNING value
	`, code).Scan(&value).Error
	if err != nil {
		return 0, err
	}

	return value, nil
}
