package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Apurer/devcars-api/internal/domains/orders/domain"
	"github.com/Apurer/devcars-api/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

const uniqueViolation = "23505"

// Repository persists orders and their extra items in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type orderRecord struct {
	ID         int64             `gorm:"primaryKey;column:id"`
	CarID      int64             `gorm:"column:car_id;index"`
	CustomerID int64             `gorm:"column:customer_id;index"`
	TotalCost  decimal.Decimal   `gorm:"column:total_cost;type:numeric(18,2)"`
	ExtraItems []extraItemRecord `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time         `gorm:"column:created_at;index"`
}

func (orderRecord) TableName() string { return "orders" }

type extraItemRecord struct {
	ID          int64           `gorm:"primaryKey;column:id"`
	OrderID     int64           `gorm:"column:order_id;index;not null"`
	Description string          `gorm:"column:description"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(18,2)"`
}

func (extraItemRecord) TableName() string { return "extra_order_items" }

// Save inserts the order and its items in one transaction.
func (r *Repository) Save(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errors.New("order is nil")
	}
	record := toRecord(order)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ports.ErrDuplicate
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.withItems(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) Exists(ctx context.Context, id int64) (bool, error) {
	if err := r.ensureDB(); err != nil {
		return false, err
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&orderRecord{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) List(ctx context.Context) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderRecord
	if err := r.withItems(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	return toDomainList(records), nil
}

func (r *Repository) ListByCustomer(ctx context.Context, customerID int64) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderRecord
	if err := r.withItems(ctx).Where("customer_id = ?", customerID).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	return toDomainList(records), nil
}

func (r *Repository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("ExtraItems", func(db *gorm.DB) *gorm.DB {
		return db.Order("id")
	})
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}

func toRecord(order *domain.Order) orderRecord {
	items := make([]extraItemRecord, 0, len(order.ExtraItems))
	for _, item := range order.ExtraItems {
		items = append(items, extraItemRecord{
			ID:          item.ID,
			OrderID:     order.ID,
			Description: item.Description,
			Price:       item.Price,
		})
	}
	return orderRecord{
		ID:         order.ID,
		CarID:      order.CarID,
		CustomerID: order.CustomerID,
		TotalCost:  order.TotalCost,
		ExtraItems: items,
	}
}

func (r orderRecord) toDomain() *domain.Order {
	items := make([]domain.ExtraOrderItem, 0, len(r.ExtraItems))
	for _, item := range r.ExtraItems {
		items = append(items, domain.ExtraOrderItem{ID: item.ID, Description: item.Description, Price: item.Price})
	}
	return &domain.Order{
		ID:         r.ID,
		CarID:      r.CarID,
		CustomerID: r.CustomerID,
		TotalCost:  r.TotalCost,
		ExtraItems: items,
	}
}

func toDomainList(records []orderRecord) []*domain.Order {
	orders := make([]*domain.Order, 0, len(records))
	for i := range records {
		orders = append(orders, records[i].toDomain())
	}
	return orders
}

// Models lists the GORM records owned by this adapter for schema migration.
func Models() []any {
	return []any{&orderRecord{}, &extraItemRecord{}}
}
