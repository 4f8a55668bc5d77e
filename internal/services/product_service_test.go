package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shopcore/shopcore-be/internal/apperror"
	"github.com/shopcore/shopcore-be/internal/models"
)

func newTestProductService(t *testing.T) *ProductService {
	t.Helper()
	return NewProductService(newTestDB(t), t.TempDir())
}

func TestProduct_CreateAndList(t *testing.T) {
	svc := newTestProductService(t)

	created, err := svc.CreateProduct(models.Product{Name: "Mug", Description: "Ceramic", Price: 9.99})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, models.StatusActive, created.Status)

	_, err = svc.CreateProduct(models.Product{Name: "Discontinued", Price: 1, Status: models.StatusInactive})
	require.NoError(t, err)

	products, err := svc.GetActiveProducts()
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, "Mug", products[0].Name)
}

func TestProduct_Update(t *testing.T) {
	svc := newTestProductService(t)

	created, err := svc.CreateProduct(models.Product{Name: "Mug", Price: 9.99})
	require.NoError(t, err)

	name := "Big Mug"
	price := 12.5
	updated, err := svc.UpdateProduct(created.ID, ProductUpdate{Name: &name, Price: &price})
	require.NoError(t, err)
	require.Equal(t, "Big Mug", updated.Name)
	require.Equal(t, 12.5, updated.Price)
}

func TestProduct_UpdateReplacesImageFile(t *testing.T) {
	svc := newTestProductService(t)

	oldFile := filepath.Join(svc.imageDir, "product-1.jpeg")
	require.NoError(t, os.WriteFile(oldFile, []byte("jpeg-bytes"), 0644))

	created, err := svc.CreateProduct(models.Product{Name: "Mug", Price: 9.99, Image: "product-1.jpeg"})
	require.NoError(t, err)

	newImage := "product-2.jpeg"
	updated, err := svc.UpdateProduct(created.ID, ProductUpdate{Image: &newImage})
	require.NoError(t, err)
	require.Equal(t, "product-2.jpeg", updated.Image)

	_, err = os.Stat(oldFile)
	require.True(t, os.IsNotExist(err), "replaced image file should be removed")
}

func TestProduct_UpdateNotFound(t *testing.T) {
	svc := newTestProductService(t)

	name := "Mug"
	_, err := svc.UpdateProduct("no-such-id", ProductUpdate{Name: &name})
	require.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestProduct_Delete(t *testing.T) {
	svc := newTestProductService(t)

	created, err := svc.CreateProduct(models.Product{Name: "Mug", Price: 9.99})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(created.ID))

	products, err := svc.GetActiveProducts()
	require.NoError(t, err)
	require.Empty(t, products)

	err = svc.DeleteProduct(created.ID)
	require.True(t, apperror.IsKind(err, apperror.KindNotFound))
}
