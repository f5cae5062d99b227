package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/westeastdesigns/ecom-2024/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	// A named shared-cache memory database keeps gorm's pooled connections
	// pointed at the same data within one test.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Customer{},
		&models.Product{},
		&models.Order{},
	))
	return New(db)
}

func mustCategory(t *testing.T, s *Store, name string) *models.Category {
	t.Helper()
	category := models.Category{Name: name}
	require.NoError(t, s.CreateCategory(&category))
	return &category
}

func mustProduct(t *testing.T, s *Store, name string, categoryID uint) *models.Product {
	t.Helper()
	product := models.Product{
		Name:       name,
		Price:      decimal.RequireFromString("19.99"),
		CategoryID: categoryID,
	}
	require.NoError(t, s.CreateProduct(&product))
	return &product
}

func mustCustomer(t *testing.T, s *Store) *models.Customer {
	t.Helper()
	customer := models.Customer{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Phone:     "5550100",
		Email:     "ada@example.com",
		Password:  "plaintext",
	}
	require.NoError(t, s.CreateCustomer(&customer))
	return &customer
}

func TestListProductsReturnsAllInStorageOrder(t *testing.T) {
	s := newTestStore(t)
	cat := mustCategory(t, s, "Books")
	first := mustProduct(t, s, "First", cat.ID)
	second := mustProduct(t, s, "Second", cat.ID)

	products, err := s.ListProducts()
	require.NoError(t, err)
	require.Len(t, products, 2)
	require.Equal(t, first.ID, products[0].ID)
	require.Equal(t, second.ID, products[1].ID)
	require.Equal(t, "Books", products[0].Category.Name)
}

func TestProductByID(t *testing.T) {
	s := newTestStore(t)
	cat := mustCategory(t, s, "Books")
	created := mustProduct(t, s, "Reference", cat.ID)

	product, found, err := s.ProductByID(created.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, created.ID, product.ID)
	require.Equal(t, "Reference", product.Name)
}

func TestProductByIDMissingReportsNotFound(t *testing.T) {
	s := newTestStore(t)

	product, found, err := s.ProductByID(9999)
	require.NoError(t, err)
	require.False(t, found)
	require.Nil(t, product)
}

func TestCategoryByNameExactMatch(t *testing.T) {
	s := newTestStore(t)
	mustCategory(t, s, "Office Supplies")

	category, found, err := s.CategoryByName("Office Supplies")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "Office Supplies", category.Name)

	_, found, err = s.CategoryByName("Office")
	require.NoError(t, err)
	require.False(t, found)
}

func TestProductsByCategoryReturnsExactlyThatCategory(t *testing.T) {
	s := newTestStore(t)
	books := mustCategory(t, s, "Books")
	tools := mustCategory(t, s, "Tools")
	inBooks := mustProduct(t, s, "Novel", books.ID)
	mustProduct(t, s, "Hammer", tools.ID)

	products, err := s.ProductsByCategory(books.ID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, inBooks.ID, products[0].ID)
}

func TestOrderDefaults(t *testing.T) {
	s := newTestStore(t)
	cat := mustCategory(t, s, "Books")
	product := mustProduct(t, s, "Novel", cat.ID)
	customer := mustCustomer(t, s)

	order := models.Order{ProductID: product.ID, CustomerID: customer.ID}
	require.NoError(t, s.CreateOrder(&order))

	require.Equal(t, 1, order.Quantity)
	require.False(t, order.Status)

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	require.Equal(t, today, order.Date)
}

func TestDeleteProductCascadesToOrders(t *testing.T) {
	s := newTestStore(t)
	cat := mustCategory(t, s, "Books")
	product := mustProduct(t, s, "Novel", cat.ID)
	customer := mustCustomer(t, s)

	order := models.Order{ProductID: product.ID, CustomerID: customer.ID}
	require.NoError(t, s.CreateOrder(&order))

	require.NoError(t, s.DeleteProduct(product.ID))

	_, found, err := s.ProductByID(product.ID)
	require.NoError(t, err)
	require.False(t, found)

	var orderCount int64
	require.NoError(t, s.DB().Model(&models.Order{}).Count(&orderCount).Error)
	require.Zero(t, orderCount)
}

func TestDeleteCategoryCascadesToProductsAndOrders(t *testing.T) {
	s := newTestStore(t)
	books := mustCategory(t, s, "Books")
	tools := mustCategory(t, s, "Tools")
	novel := mustProduct(t, s, "Novel", books.ID)
	atlas := mustProduct(t, s, "Atlas", books.ID)
	hammer := mustProduct(t, s, "Hammer", tools.ID)
	customer := mustCustomer(t, s)

	require.NoError(t, s.CreateOrder(&models.Order{ProductID: novel.ID, CustomerID: customer.ID}))
	require.NoError(t, s.CreateOrder(&models.Order{ProductID: atlas.ID, CustomerID: customer.ID}))
	keep := models.Order{ProductID: hammer.ID, CustomerID: customer.ID}
	require.NoError(t, s.CreateOrder(&keep))

	require.NoError(t, s.DeleteCategory(books.ID))

	_, found, err := s.CategoryByName("Books")
	require.NoError(t, err)
	require.False(t, found)

	var productCount int64
	require.NoError(t, s.DB().Model(&models.Product{}).Count(&productCount).Error)
	require.EqualValues(t, 1, productCount)

	var orders []models.Order
	require.NoError(t, s.DB().Find(&orders).Error)
	require.Len(t, orders, 1)
	require.Equal(t, keep.ID, orders[0].ID)
}

func TestDeleteCustomerCascadesToOrders(t *testing.T) {
	s := newTestStore(t)
	cat := mustCategory(t, s, "Books")
	product := mustProduct(t, s, "Novel", cat.ID)
	customer := mustCustomer(t, s)

	require.NoError(t, s.CreateOrder(&models.Order{ProductID: product.ID, CustomerID: customer.ID}))
	require.NoError(t, s.DeleteCustomer(customer.ID))

	_, found, err := s.CustomerByID(customer.ID)
	require.NoError(t, err)
	require.False(t, found)

	var orderCount int64
	require.NoError(t, s.DB().Model(&models.Order{}).Count(&orderCount).Error)
	require.Zero(t, orderCount)

	// The product itself survives its customer's orders.
	_, found, err = s.ProductByID(product.ID)
	require.NoError(t, err)
	require.True(t, found)
}

func TestOrdersByCustomer(t *testing.T) {
	s := newTestStore(t)
	cat := mustCategory(t, s, "Books")
	product := mustProduct(t, s, "Novel", cat.ID)
	buyer := mustCustomer(t, s)
	other := models.Customer{FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com"}
	require.NoError(t, s.CreateCustomer(&other))

	require.NoError(t, s.CreateOrder(&models.Order{ProductID: product.ID, CustomerID: buyer.ID, Quantity: 2}))
	require.NoError(t, s.CreateOrder(&models.Order{ProductID: product.ID, CustomerID: other.ID}))

	orders, err := s.OrdersByCustomer(buyer.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, 2, orders[0].Quantity)
	require.Equal(t, "Novel", orders[0].Product.Name)
}
