package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/shopcore/shopcore-be/internal/apperror"
	"github.com/shopcore/shopcore-be/internal/imaging"
	"github.com/shopcore/shopcore-be/internal/models"
	"github.com/shopcore/shopcore-be/internal/services"
)

// maxUploadSize caps in-memory parsing of product image uploads.
const maxUploadSize = 10 << 20

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service  services.ProductServiceProvider
	imageDir string
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service services.ProductServiceProvider, imageDir string) *ProductHandler {
	return &ProductHandler{service: service, imageDir: imageDir}
}

// GetAll lists all active products.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.GetActiveProducts()
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve products")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   map[string]interface{}{"products": products},
	})
}

// Create adds a new product. Accepts a multipart form with an optional
// image part, or a plain JSON body.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var product models.Product

	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			respondError(w, apperror.Validation("invalid multipart form"))
			return
		}

		imageName, err := h.saveUpload(r)
		if err != nil {
			respondError(w, err)
			return
		}

		price, err := parsePrice(r.FormValue("price"))
		if err != nil {
			respondError(w, err)
			return
		}

		product = models.Product{
			Name:        r.FormValue("name"),
			Description: r.FormValue("description"),
			Price:       price,
			Image:       imageName,
			Status:      r.FormValue("status"),
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
			respondError(w, apperror.Validation("invalid request body"))
			return
		}
		product.Image = "" // images only arrive via multipart upload
	}

	created, err := h.service.CreateProduct(product)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create product")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"status": "success",
		"data":   map[string]interface{}{"product": created},
	})
}

// Update modifies an existing product, replacing its image when a new
// one is uploaded.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var update services.ProductUpdate

	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			respondError(w, apperror.Validation("invalid multipart form"))
			return
		}

		imageName, err := h.saveUpload(r)
		if err != nil {
			respondError(w, err)
			return
		}
		if imageName != "" {
			update.Image = &imageName
		}

		update.Name = formValue(r, "name")
		update.Description = formValue(r, "description")
		update.Status = formValue(r, "status")
		if raw := formValue(r, "price"); raw != nil {
			price, err := parsePrice(*raw)
			if err != nil {
				respondError(w, err)
				return
			}
			update.Price = &price
		}
	} else {
		var payload UpdateProductPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			respondError(w, apperror.Validation("invalid request body"))
			return
		}
		update.Name = payload.Name
		update.Description = payload.Description
		update.Price = payload.Price
		update.Status = payload.Status
	}

	product, err := h.service.UpdateProduct(id, update)
	if err != nil {
		log.Warn().Err(err).Str("product_id", id).Msg("Failed to update product")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   map[string]interface{}{"product": product},
	})
}

// Delete removes a product from the catalog.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.DeleteProduct(id); err != nil {
		log.Warn().Err(err).Str("product_id", id).Msg("Failed to delete product")
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "product is deleted",
	})
}

// saveUpload stores the "image" part of a multipart request, if any.
// Returns the stored filename, or "" when no file was attached.
func (h *ProductHandler) saveUpload(r *http.Request) (string, error) {
	file, header, err := r.FormFile("image")
	if err == http.ErrMissingFile {
		return "", nil
	}
	if err != nil {
		return "", apperror.Validation("invalid image upload")
	}
	defer file.Close()

	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image") {
		return "", apperror.Validation("file is not image, please upload image only")
	}

	name, err := imaging.SaveAsJPEG(h.imageDir, file)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to store uploaded image")
		return "", apperror.Validation("file is not image, please upload image only")
	}
	return name, nil
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

func formValue(r *http.Request, key string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	if vals, ok := r.MultipartForm.Value[key]; ok && len(vals) > 0 {
		return &vals[0]
	}
	return nil
}

func parsePrice(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, apperror.Validation("price must be a number")
	}
	return price, nil
}
