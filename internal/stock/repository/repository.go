package repository

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shoplite/pos-backend/internal/stock/domain"
)

type GormStockRepository struct {
	db *gorm.DB
}

func NewGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{db: db}
}

func (r *GormStockRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.StockItem{})
}

func (r *GormStockRepository) Create(ctx context.Context, item *domain.StockItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *GormStockRepository) FindByID(ctx context.Context, id uint) (*domain.StockItem, error) {
	var item domain.StockItem
	err := r.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormStockRepository) FindByName(ctx context.Context, name string) (*domain.StockItem, error) {
	var item domain.StockItem
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormStockRepository) FindByNameAndPrice(ctx context.Context, name string, price decimal.Decimal) (*domain.StockItem, error) {
	var item domain.StockItem
	err := r.db.WithContext(ctx).Where("name = ? AND price = ?", name, price).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormStockRepository) FindAll(ctx context.Context, limit, offset int) ([]domain.StockItem, error) {
	var items []domain.StockItem
	err := r.db.WithContext(ctx).Limit(limit).Offset(offset).Find(&items).Error
	return items, err
}

func (r *GormStockRepository) AddQuantity(ctx context.Context, id uint, delta int) error {
	return r.db.WithContext(ctx).Model(&domain.StockItem{}).
		Where("id = ?", id).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", delta)).Error
}

func (r *GormStockRepository) DecrementQuantity(ctx context.Context, name string, quantity int) error {
	return r.db.WithContext(ctx).Model(&domain.StockItem{}).
		Where("name = ?", name).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", quantity)).Error
}

func (r *GormStockRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.StockItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
