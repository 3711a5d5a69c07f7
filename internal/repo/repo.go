// Package repo persists orders behind gorm.
package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/OtabekMamajonov/choyxona-bot/internal/models"
)

// ErrStorage wraps every database failure. A wrapped Append means the order
// was not recorded.
var ErrStorage = errors.New("storage")

type OrderRepo struct {
	db  *gorm.DB
	now func() time.Time
}

func New(db *gorm.DB) *OrderRepo {
	return &OrderRepo{db: db, now: time.Now}
}

// Append stores the order and its items in one transaction and returns the
// assigned id. Ids come from the database auto-increment and strictly
// increase; the row set becomes visible all at once or not at all. A zero
// CreatedAt is stamped with the current UTC unix time.
func (r *OrderRepo) Append(ctx context.Context, order *models.Order) (uint, error) {
	if order.CreatedAt == 0 {
		order.CreatedAt = r.now().UTC().Unix()
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
	if err != nil {
		return 0, fmt.Errorf("%w: append order: %v", ErrStorage, err)
	}
	return order.ID, nil
}

// QueryRange returns orders with created_at in [start, end), oldest first.
// Items are loaded with each order.
func (r *OrderRepo) QueryRange(ctx context.Context, start, end time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at < ?", start.Unix(), end.Unix()).
		Order("created_at ASC, id ASC").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.id ASC")
		}).
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("%w: query range: %v", ErrStorage, err)
	}
	return orders, nil
}
