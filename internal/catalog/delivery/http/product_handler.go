package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
	"github.com/yealoro/shop-cart-sub000/internal/catalog/usecase/command"
	"github.com/yealoro/shop-cart-sub000/internal/catalog/usecase/query"
	"github.com/yealoro/shop-cart-sub000/kafka"
	"github.com/yealoro/shop-cart-sub000/pkg/logger"
)

// ProductHandler handles HTTP requests for products, pricing and SEO
type ProductHandler struct {
	createHandler     *command.CreateProductHandler
	updateHandler     *command.UpdateProductHandler
	deleteHandler     *command.DeleteProductHandler
	upsertSEOHandler  *command.UpsertSEOHandler
	getHandler        *query.GetProductHandler
	listHandler       *query.ListProductsHandler
	byCategoryHandler *query.FindByCategoryHandler
	bySlugHandler     *query.FindBySlugHandler
	priceHandler      *query.GetPriceHandler
	getSEOHandler     *query.GetSEOHandler

	repo      domain.ProductRepository
	metrics   *Metrics
	auth      *AdminAuth
	publisher *kafka.Publisher
}

// NewProductHandler wires the product command/query handlers. cache and
// publisher may be nil when redis/kafka are not configured.
func NewProductHandler(
	products domain.ProductRepository,
	categories domain.CategoryRepository,
	promotions domain.PromotionRepository,
	seo domain.SEORepository,
	stock domain.StockRepository,
	cache *redis.Client,
	publisher *kafka.Publisher,
	metrics *Metrics,
	auth *AdminAuth,
) *ProductHandler {
	return &ProductHandler{
		createHandler:     command.NewCreateProductHandler(products, categories),
		updateHandler:     command.NewUpdateProductHandler(products, categories),
		deleteHandler:     command.NewDeleteProductHandler(products, stock),
		upsertSEOHandler:  command.NewUpsertSEOHandler(seo, products),
		getHandler:        query.NewGetProductHandler(products),
		listHandler:       query.NewListProductsHandler(products),
		byCategoryHandler: query.NewFindByCategoryHandler(products, categories),
		bySlugHandler:     query.NewFindBySlugHandler(products),
		priceHandler:      query.NewGetPriceHandler(products, promotions, cache),
		getSEOHandler:     query.NewGetSEOHandler(seo),
		repo:              products,
		metrics:           metrics,
		auth:              auth,
		publisher:         publisher,
	}
}

// RegisterRoutes mounts the product routes. Literal segments (slug, category)
// register before the {id} routes so they win the match.
func (h *ProductHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/products", h.metrics.Instrument("/api/products", h.List)).Methods("GET")
	router.HandleFunc("/api/products/slug/{slug}", h.metrics.Instrument("/api/products/slug/{slug}", h.GetBySlug)).Methods("GET")
	router.HandleFunc("/api/products/category/{category}", h.metrics.Instrument("/api/products/category/{category}", h.ListByCategory)).Methods("GET")
	router.HandleFunc("/api/products/{id}", h.metrics.Instrument("/api/products/{id}", h.Get)).Methods("GET")
	router.HandleFunc("/api/products/{id}/price", h.metrics.Instrument("/api/products/{id}/price", h.GetPrice)).Methods("GET")
	router.HandleFunc("/api/products/{id}/seo", h.metrics.Instrument("/api/products/{id}/seo", h.GetSEO)).Methods("GET")

	router.HandleFunc("/api/products", h.metrics.Instrument("/api/products", h.auth.Middleware(h.Create))).Methods("POST")
	router.HandleFunc("/api/products/{id}", h.metrics.Instrument("/api/products/{id}", h.auth.Middleware(h.Update))).Methods("PUT")
	router.HandleFunc("/api/products/{id}", h.metrics.Instrument("/api/products/{id}", h.auth.Middleware(h.Delete))).Methods("DELETE")
	router.HandleFunc("/api/products/{id}/seo", h.metrics.Instrument("/api/products/{id}/seo", h.auth.Middleware(h.UpsertSEO))).Methods("PUT")
}

func pathID(r *http.Request, name string) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 32)
	return uint(id), err == nil
}

type seoRequest struct {
	URLSlug         string `json:"url_slug"`
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
	Keywords        string `json:"keywords"`
}

// Create handles POST /api/products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         string           `json:"name"`
		Description  string           `json:"description"`
		SKU          string           `json:"sku"`
		Price        float64          `json:"price"`
		Discount     float64          `json:"discount"`
		Stock        *int             `json:"stock"`
		Brand        string           `json:"brand"`
		Manufacturer string           `json:"manufacturer"`
		Supplier     string           `json:"supplier"`
		CategoryID   uint             `json:"category_id"`
		Variants     []domain.Variant `json:"variants"`
		Images       []domain.Image   `json:"images"`
		SEO          *seoRequest      `json:"seo"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	cmd := command.CreateProductCommand{
		Name:         req.Name,
		Description:  req.Description,
		SKU:          req.SKU,
		Price:        req.Price,
		Discount:     req.Discount,
		Stock:        req.Stock,
		Brand:        req.Brand,
		Manufacturer: req.Manufacturer,
		Supplier:     req.Supplier,
		CategoryID:   req.CategoryID,
		Variants:     req.Variants,
		Images:       req.Images,
	}
	if req.SEO != nil {
		cmd.SEO = &domain.SEO{
			URLSlug:         req.SEO.URLSlug,
			MetaTitle:       req.SEO.MetaTitle,
			MetaDescription: req.SEO.MetaDescription,
			Keywords:        req.SEO.Keywords,
		}
	}

	product, err := h.createHandler.Handle(cmd)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	h.updateProductsMetric()
	h.publishProductEvent(r, kafka.EventTypeProductCreated, product.ID, product.SKU)

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Product created successfully",
		Data:    product,
	})
}

// List handles GET /api/products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	products, err := h.listHandler.Handle(query.ListProductsQuery{Limit: limit, Offset: offset})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	count, _ := h.repo.Count()

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"products": products,
			"total":    count,
		},
	})
}

// Get handles GET /api/products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return
	}

	product, err := h.getHandler.Handle(query.GetProductQuery{ID: id})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: product})
}

// GetBySlug handles GET /api/products/slug/{slug}
func (h *ProductHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	product, err := h.bySlugHandler.Handle(query.FindBySlugQuery{Slug: mux.Vars(r)["slug"]})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: product})
}

// ListByCategory handles GET /api/products/category/{category}
func (h *ProductHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	products, err := h.byCategoryHandler.Handle(query.FindByCategoryQuery{
		Category: mux.Vars(r)["category"],
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: products})
}

// GetPrice handles GET /api/products/{id}/price?quantity=N
func (h *ProductHandler) GetPrice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return
	}

	quantity, _ := strconv.Atoi(r.URL.Query().Get("quantity"))

	quote, err := h.priceHandler.Handle(r.Context(), query.GetPriceQuery{ProductID: id, Quantity: quantity})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: quote})
}

// Update handles PUT /api/products/{id}
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return
	}

	var req struct {
		Name         *string  `json:"name"`
		Description  *string  `json:"description"`
		SKU          *string  `json:"sku"`
		Price        *float64 `json:"price"`
		Discount     *float64 `json:"discount"`
		Stock        *int     `json:"stock"`
		Brand        *string  `json:"brand"`
		Manufacturer *string  `json:"manufacturer"`
		Supplier     *string  `json:"supplier"`
		CategoryID   *uint    `json:"category_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	product, err := h.updateHandler.Handle(command.UpdateProductCommand{
		ID:           id,
		Name:         req.Name,
		Description:  req.Description,
		SKU:          req.SKU,
		Price:        req.Price,
		Discount:     req.Discount,
		Stock:        req.Stock,
		Brand:        req.Brand,
		Manufacturer: req.Manufacturer,
		Supplier:     req.Supplier,
		CategoryID:   req.CategoryID,
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	h.publishProductEvent(r, kafka.EventTypeProductUpdated, product.ID, product.SKU)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product updated successfully",
		Data:    product,
	})
}

// Delete handles DELETE /api/products/{id}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteProductCommand{ID: id}); err != nil {
		respondDomainError(w, r, err)
		return
	}

	h.updateProductsMetric()
	h.publishProductEvent(r, kafka.EventTypeProductDeleted, id, "")

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Product deleted successfully"})
}

// UpsertSEO handles PUT /api/products/{id}/seo
func (h *ProductHandler) UpsertSEO(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return
	}

	var req seoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	seo, err := h.upsertSEOHandler.Handle(command.UpsertSEOCommand{
		ProductID:       id,
		URLSlug:         req.URLSlug,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		Keywords:        req.Keywords,
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: seo})
}

// GetSEO handles GET /api/products/{id}/seo
func (h *ProductHandler) GetSEO(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return
	}

	seo, err := h.getSEOHandler.Handle(query.GetSEOQuery{ProductID: id})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: seo})
}

func (h *ProductHandler) updateProductsMetric() {
	count, err := h.repo.Count()
	if err == nil {
		h.metrics.SetTotalProducts(count)
	}
}

func (h *ProductHandler) publishProductEvent(r *http.Request, eventType string, id uint, sku string) {
	if h.publisher == nil {
		return
	}
	if err := h.publisher.PublishProductChanged(r.Context(), eventType, id, sku); err != nil {
		logger.Warn(r.Context()).Err(err).Str("event_type", eventType).Msg("Failed to publish product event")
	}
}
