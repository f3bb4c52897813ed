package store

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"freshplate/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{
		Logger:         gormlogger.Discard,
		TranslateError: true,
	})
	require.NoError(t, err)

	// A single connection keeps the in-memory database alive for the test.
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(&models.User{}, &models.Category{}, &models.Product{}))
	return gdb
}

func TestCategoryCreateAndGet(t *testing.T) {
	categories := NewCategoryStore(newTestDB(t))

	category := models.Category{Name: "Desserts"}
	require.NoError(t, categories.Create(&category))
	require.NotZero(t, category.ID)

	got, err := categories.Get(category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Desserts", got.Name)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestCategoryGetUnknown(t *testing.T) {
	categories := NewCategoryStore(newTestDB(t))

	_, err := categories.Get(42)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestCategoryUpdate(t *testing.T) {
	categories := NewCategoryStore(newTestDB(t))

	category := models.Category{Name: "Bread"}
	require.NoError(t, categories.Create(&category))

	category.Name = "Bakery"
	require.NoError(t, categories.Update(&category))

	got, err := categories.Get(category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bakery", got.Name)
}

func TestCategoryDeleteCascadesToProducts(t *testing.T) {
	gdb := newTestDB(t)
	categories := NewCategoryStore(gdb)
	products := NewProductStore(gdb)

	doomed := models.Category{Name: "Soups"}
	require.NoError(t, categories.Create(&doomed))
	survivor := models.Category{Name: "Salads"}
	require.NoError(t, categories.Create(&survivor))

	for _, name := range []string{"Minestrone", "Gazpacho"} {
		p := models.Product{Name: name, Price: 5.5, Description: "soup", CategoryID: doomed.ID}
		require.NoError(t, products.Create(&p))
	}
	kept := models.Product{Name: "Caesar", Price: 7, Description: "salad", CategoryID: survivor.ID}
	require.NoError(t, products.Create(&kept))

	require.NoError(t, categories.Delete(doomed.ID))

	_, err := categories.Get(doomed.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	remaining, err := products.List()
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "Caesar", remaining[0].Name)
}

func TestCategoryDeleteUnknown(t *testing.T) {
	categories := NewCategoryStore(newTestDB(t))

	err := categories.Delete(99)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestProductListOrderedByCreationDesc(t *testing.T) {
	gdb := newTestDB(t)
	categories := NewCategoryStore(gdb)
	products := NewProductStore(gdb)

	category := models.Category{Name: "Drinks"}
	require.NoError(t, categories.Create(&category))

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	oldest := models.Product{Name: "Tea", Price: 2, Description: "hot", CategoryID: category.ID, CreatedAt: base}
	newest := models.Product{Name: "Juice", Price: 4, Description: "cold", CategoryID: category.ID, CreatedAt: base.Add(2 * time.Hour)}
	middle := models.Product{Name: "Coffee", Price: 3, Description: "hot", CategoryID: category.ID, CreatedAt: base.Add(time.Hour)}

	for _, p := range []*models.Product{&oldest, &newest, &middle} {
		require.NoError(t, products.Create(p))
	}

	got, err := products.List()
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Juice", got[0].Name)
	assert.Equal(t, "Coffee", got[1].Name)
	assert.Equal(t, "Tea", got[2].Name)
}

func TestProductGetResolvesCategory(t *testing.T) {
	gdb := newTestDB(t)
	categories := NewCategoryStore(gdb)
	products := NewProductStore(gdb)

	category := models.Category{Name: "Snacks"}
	require.NoError(t, categories.Create(&category))

	product := models.Product{Name: "Crisps", Price: 1.5, Description: "salty", CategoryID: category.ID}
	require.NoError(t, products.Create(&product))

	got, err := products.Get(product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Snacks", got.Category.Name)
}

func TestProductListByCategory(t *testing.T) {
	gdb := newTestDB(t)
	categories := NewCategoryStore(gdb)
	products := NewProductStore(gdb)

	first := models.Category{Name: "Fruit"}
	require.NoError(t, categories.Create(&first))
	second := models.Category{Name: "Vegetables"}
	require.NoError(t, categories.Create(&second))

	apple := models.Product{Name: "Apple", Price: 1, Description: "red", CategoryID: first.ID}
	require.NoError(t, products.Create(&apple))
	carrot := models.Product{Name: "Carrot", Price: 0.5, Description: "orange", CategoryID: second.ID}
	require.NoError(t, products.Create(&carrot))

	got, err := products.ListByCategory(first.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Apple", got[0].Name)

	// An id matching nothing is not an error
	empty, err := products.ListByCategory(12345)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestProductDeleteUnknown(t *testing.T) {
	products := NewProductStore(newTestDB(t))

	err := products.Delete(404)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestUserDuplicateUsername(t *testing.T) {
	users := NewUserStore(newTestDB(t))

	first := models.User{Email: "a@example.com", Username: "chef", Password: "hash"}
	require.NoError(t, users.Create(&first))

	dup := models.User{Email: "b@example.com", Username: "chef", Password: "hash"}
	err := users.Create(&dup)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

func TestUserGetByUsername(t *testing.T) {
	users := NewUserStore(newTestDB(t))

	user := models.User{Email: "chef@example.com", Username: "chef", Password: "hash"}
	require.NoError(t, users.Create(&user))

	got, err := users.GetByUsername("chef")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = users.GetByUsername("nobody")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
