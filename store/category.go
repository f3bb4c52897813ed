package store

import (
	"gorm.io/gorm"

	"freshplate/models"
)

type CategoryStore struct {
	db *gorm.DB
}

func NewCategoryStore(db *gorm.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

func (s *CategoryStore) List() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryStore) Create(category *models.Category) error {
	return s.db.Omit("Products").Create(category).Error
}

func (s *CategoryStore) Get(id uint) (models.Category, error) {
	var category models.Category
	err := s.db.First(&category, id).Error
	return category, err
}

func (s *CategoryStore) Update(category *models.Category) error {
	return s.db.Omit("Products").Save(category).Error
}

// Delete removes the category and every product that references it.
func (s *CategoryStore) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, id).Error; err != nil {
			return err
		}
		if err := tx.Where("category_id = ?", id).Delete(&models.Product{}).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
}
