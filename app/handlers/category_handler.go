package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/ardhimaulana/go-foodorder/app/models"
	"github.com/ardhimaulana/go-foodorder/app/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

type CategoryInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type CategoryHandler struct {
	repo     repositories.CategoryRepositoryImpl
	render   *render.Render
	validate *validator.Validate
}

func NewCategoryHandler(repo repositories.CategoryRepositoryImpl, render *render.Render, validate *validator.Validate) *CategoryHandler {
	return &CategoryHandler{repo: repo, render: render, validate: validate}
}

func (h *CategoryHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.GetAll(r.Context())
	if err != nil {
		log.Printf("CategoryHandler.GetAll: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	h.render.JSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid category id"})
		return
	}

	category, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("CategoryHandler.GetByID: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if category == nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Category not found"})
		return
	}
	h.render.JSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": missingFieldsMessage(err)})
		return
	}

	category := models.Category{
		Name:        input.Name,
		Description: input.Description,
	}
	if err := h.repo.Create(r.Context(), &category); err != nil {
		log.Printf("CategoryHandler.Create: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	h.render.JSON(w, http.StatusCreated, map[string]interface{}{
		"id":      category.ID,
		"message": "Category created successfully",
	})
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid category id"})
		return
	}

	var input CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": missingFieldsMessage(err)})
		return
	}

	// Updating an absent id affects zero rows; like the reference API that
	// still reads as success.
	if _, err := h.repo.Update(r.Context(), id, input.Name, input.Description); err != nil {
		log.Printf("CategoryHandler.Update: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]string{"message": "Category updated successfully"})
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid category id"})
		return
	}

	if _, err := h.repo.Delete(r.Context(), id); err != nil {
		log.Printf("CategoryHandler.Delete: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]string{"message": "Category deleted successfully"})
}
