package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/ardhimaulana/go-foodorder/app/models"
	"github.com/ardhimaulana/go-foodorder/app/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type ProductInput struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" validate:"required"`
	ImageURL    string   `json:"image_url"`
	CategoryID  *uint    `json:"category_id" validate:"required"`
}

type ProductResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	CategoryID  uint    `json:"category_id"`
}

// ProductListResponse is the catalog row: a product plus its category's
// name from the left join.
type ProductListResponse struct {
	ProductResponse
	CategoryName *string `json:"category_name"`
}

type ProductHandler struct {
	repo     repositories.ProductRepositoryImpl
	render   *render.Render
	validate *validator.Validate
}

func NewProductHandler(repo repositories.ProductRepositoryImpl, render *render.Render, validate *validator.Validate) *ProductHandler {
	return &ProductHandler{repo: repo, render: render, validate: validate}
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.InexactFloat64(),
		ImageURL:    p.ImageURL,
		CategoryID:  p.CategoryID,
	}
}

func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	rows, err := h.repo.GetAll(r.Context())
	if err != nil {
		log.Printf("ProductHandler.GetAll: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	response := make([]ProductListResponse, len(rows))
	for i, row := range rows {
		response[i] = ProductListResponse{
			ProductResponse: ProductResponse{
				ID:          row.ID,
				Name:        row.Name,
				Description: row.Description,
				Price:       row.Price.InexactFloat64(),
				ImageURL:    row.ImageURL,
				CategoryID:  row.CategoryID,
			},
			CategoryName: row.CategoryName,
		}
	}
	h.render.JSON(w, http.StatusOK, response)
}

func (h *ProductHandler) GetByCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid category id"})
		return
	}

	products, err := h.repo.GetByCategory(r.Context(), id)
	if err != nil {
		log.Printf("ProductHandler.GetByCategory: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = toProductResponse(p)
	}
	h.render.JSON(w, http.StatusOK, response)
}

func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid product id"})
		return
	}

	product, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("ProductHandler.GetByID: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if product == nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Product not found"})
		return
	}
	h.render.JSON(w, http.StatusOK, toProductResponse(*product))
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": missingFieldsMessage(err)})
		return
	}

	product := models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       decimal.NewFromFloat(*input.Price),
		ImageURL:    input.ImageURL,
		CategoryID:  *input.CategoryID,
	}
	if err := h.repo.Create(r.Context(), &product); err != nil {
		log.Printf("ProductHandler.Create: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	h.render.JSON(w, http.StatusCreated, map[string]interface{}{
		"id":      product.ID,
		"message": "Product created successfully",
	})
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid product id"})
		return
	}

	var input ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": missingFieldsMessage(err)})
		return
	}

	product := models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       decimal.NewFromFloat(*input.Price),
		ImageURL:    input.ImageURL,
		CategoryID:  *input.CategoryID,
	}
	if _, err := h.repo.Update(r.Context(), id, &product); err != nil {
		log.Printf("ProductHandler.Update: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]string{"message": "Product updated successfully"})
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid product id"})
		return
	}

	if _, err := h.repo.Delete(r.Context(), id); err != nil {
		log.Printf("ProductHandler.Delete: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}
