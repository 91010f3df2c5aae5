// Package httpapi exposes the product catalog over REST.
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/fc-labs/store-management-service/internal/app/product/domain"
	"github.com/fc-labs/store-management-service/internal/app/product/queries/get_product"
	"github.com/fc-labs/store-management-service/internal/app/product/queries/list_products"
	"github.com/fc-labs/store-management-service/internal/app/product/usecases/change_price"
	"github.com/fc-labs/store-management-service/internal/app/product/usecases/create_product"
	"github.com/fc-labs/store-management-service/internal/app/product/usecases/delete_product"
	"github.com/fc-labs/store-management-service/internal/app/product/usecases/update_product"
)

// Handler wires the REST endpoints to the use case layer.
type Handler struct {
	createProduct *create_product.Interactor
	updateProduct *update_product.Interactor
	changePrice   *change_price.Interactor
	deleteProduct *delete_product.Interactor
	getProduct    *get_product.Query
	listProducts  *list_products.Query
	logger        *logrus.Logger
}

// NewHandler creates the REST handler.
func NewHandler(
	createProduct *create_product.Interactor,
	updateProduct *update_product.Interactor,
	changePrice *change_price.Interactor,
	deleteProduct *delete_product.Interactor,
	getProduct *get_product.Query,
	listProducts *list_products.Query,
	logger *logrus.Logger,
) *Handler {
	return &Handler{
		createProduct: createProduct,
		updateProduct: updateProduct,
		changePrice:   changePrice,
		deleteProduct: deleteProduct,
		getProduct:    getProduct,
		listProducts:  listProducts,
		logger:        logger,
	}
}

// ListProducts handles GET /products.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("received request to list products")

	dtos, err := h.listProducts.Execute(r.Context())
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}

	responses := make([]*productResponse, 0, len(dtos))
	for _, dto := range dtos {
		responses = append(responses, dtoToResponse(dto))
	}

	writeJSON(w, http.StatusOK, responses)
}

// GetProduct handles GET /products/{id}.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	h.logger.WithField("product_id", productID).Info("received request to get product")

	dto, err := h.getProduct.Execute(r.Context(), &get_product.Request{ProductID: productID})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dtoToResponse(dto))
}

// CreateProduct handles POST /products.
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("received request to create product")

	req, ok := h.decodeProduct(w, r)
	if !ok {
		return
	}

	price, err := parsePrice(req.Price)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	productType, err := domain.ParseProductType(req.ProductType)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.createProduct.Execute(r.Context(), &create_product.Request{
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		ProductType: productType,
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, domainToResponse(product))
}

// UpdateProduct handles PUT /products/{id}.
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	h.logger.WithField("product_id", productID).Info("received request to update product")

	req, ok := h.decodeProduct(w, r)
	if !ok {
		return
	}

	price, err := parsePrice(req.Price)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	productType, err := domain.ParseProductType(req.ProductType)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.updateProduct.Execute(r.Context(), &update_product.Request{
		ProductID:   productID,
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		ProductType: productType,
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, domainToResponse(product))
}

// DeleteProduct handles DELETE /products/{id}.
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	h.logger.WithField("product_id", productID).Info("received request to delete product")

	if err := h.deleteProduct.Execute(r.Context(), &delete_product.Request{ProductID: productID}); err != nil {
		writeDomainError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// ChangePrice handles POST /products/priceChange.
func (h *Handler) ChangePrice(w http.ResponseWriter, r *http.Request) {
	var req priceChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.logger.WithField("product_id", req.ID).Info("received request to change product price")

	price, err := parsePrice(req.Price)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.changePrice.Execute(r.Context(), &change_price.Request{
		ProductID: req.ID,
		Price:     price,
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, domainToResponse(product))
}

// Healthz handles GET /healthz.
func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeProduct(w http.ResponseWriter, r *http.Request) (*productRequest, bool) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	return &req, true
}
