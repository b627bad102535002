package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Apurer/devcars-api/internal/domains/cars/domain"
	"github.com/Apurer/devcars-api/internal/domains/cars/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists cars in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// carRecord maps the car aggregate to a relational table.
type carRecord struct {
	ID             int64           `gorm:"primaryKey;column:id"`
	VinCode        string          `gorm:"column:vin_code"`
	Brand          string          `gorm:"column:brand"`
	Model          string          `gorm:"column:model;size:50"`
	Year           int             `gorm:"column:year"`
	Price          decimal.Decimal `gorm:"column:price;type:numeric(18,2)"`
	Color          string          `gorm:"column:color"`
	ProductionDate time.Time       `gorm:"column:production_date"`
	Status         string          `gorm:"column:status;type:varchar(16);index"`
	Version        int64           `gorm:"column:version;not null;default:1"`
	CreatedAt      time.Time       `gorm:"column:created_at"`
	UpdatedAt      time.Time       `gorm:"column:updated_at"`
}

func (carRecord) TableName() string { return "cars" }

// Save inserts a new car or performs a version-checked update.
func (r *Repository) Save(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if car == nil {
		return nil, errors.New("car is nil")
	}
	record := toRecord(car)
	if record.ID == 0 {
		record.Version = 1
		if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
			return nil, err
		}
		return record.toDomain(), nil
	}
	result := r.db.WithContext(ctx).
		Model(&carRecord{}).
		Where("id = ? AND version = ?", record.ID, car.Version).
		Updates(map[string]any{
			"vin_code":        record.VinCode,
			"brand":           record.Brand,
			"model":           record.Model,
			"year":            record.Year,
			"price":           record.Price,
			"color":           record.Color,
			"production_date": record.ProductionDate,
			"status":          record.Status,
			"version":         car.Version + 1,
			"updated_at":      gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		if _, err := r.GetByID(ctx, record.ID); err != nil {
			return nil, err
		}
		return nil, ports.ErrVersionConflict
	}
	return r.GetByID(ctx, record.ID)
}

// GetByID fetches a car by identifier.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record carRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// FindByStatus returns cars in the given status ordered by identifier.
func (r *Repository) FindByStatus(ctx context.Context, status domain.Status) ([]*domain.Car, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []carRecord
	if err := r.db.WithContext(ctx).Where("status = ?", string(status)).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	return toDomainList(records), nil
}

// List returns all cars ordered by identifier.
func (r *Repository) List(ctx context.Context) ([]*domain.Car, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []carRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	return toDomainList(records), nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres car repository not configured")
	}
	return nil
}

func toRecord(car *domain.Car) carRecord {
	return carRecord{
		ID:             car.ID,
		VinCode:        car.VinCode,
		Brand:          car.Brand,
		Model:          car.Model,
		Year:           car.Year,
		Price:          car.Price,
		Color:          car.Color,
		ProductionDate: car.ProductionDate,
		Status:         string(car.Status),
		Version:        car.Version,
	}
}

func (r carRecord) toDomain() *domain.Car {
	return &domain.Car{
		ID:             r.ID,
		VinCode:        r.VinCode,
		Brand:          r.Brand,
		Model:          r.Model,
		Year:           r.Year,
		Price:          r.Price,
		Color:          r.Color,
		ProductionDate: r.ProductionDate,
		Status:         domain.Status(r.Status),
		Version:        r.Version,
	}
}

func toDomainList(records []carRecord) []*domain.Car {
	cars := make([]*domain.Car, 0, len(records))
	for i := range records {
		cars = append(cars, records[i].toDomain())
	}
	return cars
}

// Models lists the GORM records owned by this adapter for schema migration.
func Models() []any {
	return []any{&carRecord{}}
}
