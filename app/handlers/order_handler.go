package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/ardhimaulana/go-foodorder/app/models"
	"github.com/ardhimaulana/go-foodorder/app/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type OrderItemInput struct {
	ProductID uint    `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type OrderInput struct {
	Items      []OrderItemInput `json:"items" validate:"required"`
	TotalPrice *float64         `json:"total_price" validate:"required"`
}

type OrderStatusInput struct {
	Status string `json:"status" validate:"required"`
}

type OrderItemResponse struct {
	ID          uint    `json:"id"`
	ProductID   uint    `json:"product_id"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type OrderResponse struct {
	ID          uint                `json:"id"`
	OrderNumber int                 `json:"order_number"`
	Status      string              `json:"status"`
	TotalPrice  float64             `json:"total_price"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	Items       []OrderItemResponse `json:"items"`
}

type OrderHandler struct {
	repo     repositories.OrderRepository
	render   *render.Render
	validate *validator.Validate
}

func NewOrderHandler(repo repositories.OrderRepository, render *render.Render, validate *validator.Validate) *OrderHandler {
	return &OrderHandler{repo: repo, render: render, validate: validate}
}

func toOrderItemResponses(rows []repositories.OrderItemWithProduct) []OrderItemResponse {
	items := make([]OrderItemResponse, len(rows))
	for i, row := range rows {
		items[i] = OrderItemResponse{
			ID:          row.ID,
			ProductID:   row.ProductID,
			Quantity:    row.Quantity,
			UnitPrice:   row.UnitPrice.InexactFloat64(),
			Name:        row.ProductName,
			Description: row.ProductDescription,
		}
	}
	return items
}

func toOrderResponse(order models.Order, items []OrderItemResponse) OrderResponse {
	return OrderResponse{
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
		TotalPrice:  order.TotalPrice.InexactFloat64(),
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
		Items:       items,
	}
}

// GetAll lists orders newest-first and attaches each order's items with
// one extra query per order. Fine at this scale.
func (h *OrderHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	orders, err := h.repo.GetAll(r.Context())
	if err != nil {
		log.Printf("OrderHandler.GetAll: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	response := make([]OrderResponse, len(orders))
	for i, order := range orders {
		rows, err := h.repo.GetItems(r.Context(), order.ID)
		if err != nil {
			log.Printf("OrderHandler.GetAll: items for order %d: %v", order.ID, err)
			h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		response[i] = toOrderResponse(order, toOrderItemResponses(rows))
	}
	h.render.JSON(w, http.StatusOK, response)
}

func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid order id"})
		return
	}

	order, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("OrderHandler.GetByID: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if order == nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Order not found"})
		return
	}

	rows, err := h.repo.GetItems(r.Context(), order.ID)
	if err != nil {
		log.Printf("OrderHandler.GetByID: items for order %d: %v", order.ID, err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	h.render.JSON(w, http.StatusOK, toOrderResponse(*order, toOrderItemResponses(rows)))
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input OrderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": missingFieldsMessage(err)})
		return
	}

	items := make([]models.OrderItem, len(input.Items))
	for i, item := range input.Items {
		quantity := item.Quantity
		if quantity == 0 {
			quantity = 1
		}
		items[i] = models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  quantity,
			UnitPrice: decimal.NewFromFloat(item.UnitPrice),
		}
	}

	orderID, err := h.repo.Create(r.Context(), decimal.NewFromFloat(*input.TotalPrice), items)
	if err != nil {
		log.Printf("OrderHandler.Create: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	h.render.JSON(w, http.StatusCreated, map[string]interface{}{
		"id":      orderID,
		"message": "Order created successfully",
	})
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid order id"})
		return
	}

	var input OrderStatusInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": missingFieldsMessage(err)})
		return
	}

	if _, err := h.repo.UpdateStatus(r.Context(), id, input.Status); err != nil {
		log.Printf("OrderHandler.UpdateStatus: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]string{"message": "Order status updated successfully"})
}

func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid order id"})
		return
	}

	if _, err := h.repo.Delete(r.Context(), id); err != nil {
		log.Printf("OrderHandler.Delete: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]string{"message": "Order deleted successfully"})
}
