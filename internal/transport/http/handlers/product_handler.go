package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/vedran77/barter/internal/service"
	"github.com/vedran77/barter/internal/transport/http/middleware"
)

type ProductHandler struct {
	productService *service.ProductService
	validate       *validator.Validate
}

func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		validate:       newValidate(),
	}
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserID(r.Context())

	var input service.CreateProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		writeValidationErrors(w, err)
		return
	}

	product, err := h.productService.Create(r.Context(), callerID, input)
	if err != nil {
		h.writeProductError(w, "create product", err)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid product ID")
		return
	}

	product, err := h.productService.GetByID(r.Context(), id)
	if err != nil {
		h.writeProductError(w, "get product", err)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// ListByOwner answers with 404 when the owner has no products; an empty list
// is not a success on this route.
func (h *ProductHandler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, err := uuid.Parse(chi.URLParam(r, "owner_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid owner ID")
		return
	}

	products, err := h.productService.ListByOwner(r.Context(), ownerID)
	if err != nil {
		slog.Error("list products failed", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	if len(products) == 0 {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "No products found for this user")
		return
	}

	writeJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserID(r.Context())

	var input service.UpdateProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}
	if err := h.validate.Struct(input); err != nil {
		writeValidationErrors(w, err)
		return
	}

	product, err := h.productService.Update(r.Context(), callerID, input)
	if err != nil {
		h.writeProductError(w, "update product", err)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserID(r.Context())
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid product ID")
		return
	}

	if err := h.productService.Delete(r.Context(), callerID, id); err != nil {
		h.writeProductError(w, "delete product", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}

func (h *ProductHandler) writeProductError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Product not found")
	case errors.Is(err, service.ErrNotProductOwner):
		writeError(w, http.StatusForbidden, "FORBIDDEN", "You can only change your own products")
	default:
		slog.Error(op+" failed", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
	}
}
