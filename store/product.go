package store

import (
	"gorm.io/gorm"

	"freshplate/models"
)

type ProductStore struct {
	db *gorm.DB
}

func NewProductStore(db *gorm.DB) *ProductStore {
	return &ProductStore{db: db}
}

// List returns every product, most recently created first.
func (s *ProductStore) List() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Preload("Category").Order("created_at desc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListByCategory returns the products referencing the given category id.
// An id that matches nothing yields an empty slice, not an error.
func (s *ProductStore) ListByCategory(categoryID uint) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Preload("Category").Where("category_id = ?", categoryID).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductStore) Create(product *models.Product) error {
	return s.db.Omit("Category").Create(product).Error
}

func (s *ProductStore) Get(id uint) (models.Product, error) {
	var product models.Product
	err := s.db.Preload("Category").First(&product, id).Error
	return product, err
}

func (s *ProductStore) Update(product *models.Product) error {
	return s.db.Omit("Category").Save(product).Error
}

func (s *ProductStore) Delete(id uint) error {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		return err
	}
	return s.db.Delete(&product).Error
}
