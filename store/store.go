package store

import "freshplate/models"

// Categories is the data access surface for Category records.
type Categories interface {
	List() ([]models.Category, error)
	Create(category *models.Category) error
	Get(id uint) (models.Category, error)
	Update(category *models.Category) error
	Delete(id uint) error
}

// Products is the data access surface for Product records. List and Get
// resolve the referenced Category so callers can serialize its name.
type Products interface {
	List() ([]models.Product, error)
	ListByCategory(categoryID uint) ([]models.Product, error)
	Create(product *models.Product) error
	Get(id uint) (models.Product, error)
	Update(product *models.Product) error
	Delete(id uint) error
}

// Users is the data access surface for User records.
type Users interface {
	Create(user *models.User) error
	GetByUsername(username string) (models.User, error)
}
