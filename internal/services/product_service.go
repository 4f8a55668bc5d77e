package services

import (
	"database/sql"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/shopcore/shopcore-be/internal/apperror"
	"github.com/shopcore/shopcore-be/internal/models"
)

// ProductUpdate carries the updatable product fields. Nil means "leave
// unchanged"; a non-nil Image replaces the stored file.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Image       *string
	Status      *string
}

// ProductServiceProvider defines the interface for product services.
type ProductServiceProvider interface {
	GetActiveProducts() ([]models.Product, error)
	CreateProduct(product models.Product) (models.Product, error)
	UpdateProduct(id string, update ProductUpdate) (models.Product, error)
	DeleteProduct(id string) error
}

// ProductService provides business logic for the product catalog.
type ProductService struct {
	db       *sql.DB
	imageDir string
}

// NewProductService creates a new ProductService.
func NewProductService(db *sql.DB, imageDir string) *ProductService {
	return &ProductService{db: db, imageDir: imageDir}
}

func scanProduct(scanner interface{ Scan(...interface{}) error }) (models.Product, error) {
	var p models.Product
	var desc, image sql.NullString
	err := scanner.Scan(&p.ID, &p.Name, &desc, &p.Price, &image, &p.Status, &p.CreatedAt)
	if err != nil {
		return p, err
	}
	p.Description = desc.String
	p.Image = image.String
	return p, nil
}

// GetActiveProducts retrieves all products with an active status.
func (s *ProductService) GetActiveProducts() ([]models.Product, error) {
	rows, err := s.db.Query("SELECT id, name, description, price, image, status, created_at FROM products WHERE status = 'active'")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (s *ProductService) getProduct(id string) (models.Product, error) {
	row := s.db.QueryRow("SELECT id, name, description, price, image, status, created_at FROM products WHERE id = ?", id)
	p, err := scanProduct(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Product{}, apperror.NotFound(http.StatusNotFound, "not found product with this id")
		}
		return models.Product{}, err
	}
	return p, nil
}

// CreateProduct adds a new product to the catalog.
func (s *ProductService) CreateProduct(product models.Product) (models.Product, error) {
	product.ID = uuid.New().String()
	if product.Status == "" {
		product.Status = models.StatusActive
	}

	_, err := s.db.Exec(
		"INSERT INTO products(id, name, description, price, image, status) VALUES(?, ?, ?, ?, ?, ?)",
		product.ID, product.Name, product.Description, product.Price, product.Image, product.Status,
	)
	if err != nil {
		return models.Product{}, err
	}
	return s.getProduct(product.ID)
}

// UpdateProduct applies field updates to a product. When a new image
// replaces an existing one the old file is removed from disk.
func (s *ProductService) UpdateProduct(id string, update ProductUpdate) (models.Product, error) {
	old, err := s.getProduct(id)
	if err != nil {
		return models.Product{}, err
	}

	if update.Image != nil && old.Image != "" {
		if err := os.Remove(filepath.Join(s.imageDir, old.Image)); err != nil {
			log.Warn().Err(err).Str("image", old.Image).Msg("Failed to remove replaced product image")
		}
	}

	query := "UPDATE products SET "
	var args []interface{}
	appendSet := func(col string, val interface{}) {
		if len(args) > 0 {
			query += ", "
		}
		query += col + " = ?"
		args = append(args, val)
	}
	if update.Name != nil {
		appendSet("name", *update.Name)
	}
	if update.Description != nil {
		appendSet("description", *update.Description)
	}
	if update.Price != nil {
		appendSet("price", *update.Price)
	}
	if update.Image != nil {
		appendSet("image", *update.Image)
	}
	if update.Status != nil {
		appendSet("status", *update.Status)
	}
	if len(args) == 0 {
		return old, nil
	}
	query += " WHERE id = ?"
	args = append(args, id)

	if _, err := s.db.Exec(query, args...); err != nil {
		return models.Product{}, err
	}
	return s.getProduct(id)
}

// DeleteProduct removes a product. The stored image file is left on
// disk, matching the existing behavior.
func (s *ProductService) DeleteProduct(id string) error {
	if _, err := s.getProduct(id); err != nil {
		return err
	}
	_, err := s.db.Exec("DELETE FROM products WHERE id = ?", id)
	return err
}
