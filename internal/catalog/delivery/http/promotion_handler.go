package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
	"github.com/yealoro/shop-cart-sub000/internal/catalog/usecase/command"
	"github.com/yealoro/shop-cart-sub000/internal/catalog/usecase/query"
	"github.com/yealoro/shop-cart-sub000/kafka"
	"github.com/yealoro/shop-cart-sub000/pkg/logger"
)

// PromotionHandler handles HTTP requests for promotions
type PromotionHandler struct {
	createHandler    *command.CreatePromotionHandler
	updateHandler    *command.UpdatePromotionHandler
	deleteHandler    *command.DeletePromotionHandler
	activeHandler    *query.ListActivePromotionsHandler
	byProductHandler *query.ListProductPromotionsHandler

	repo      domain.PromotionRepository
	metrics   *Metrics
	auth      *AdminAuth
	publisher *kafka.Publisher
}

// NewPromotionHandler wires the promotion command/query handlers
func NewPromotionHandler(
	promotions domain.PromotionRepository,
	products domain.ProductRepository,
	publisher *kafka.Publisher,
	metrics *Metrics,
	auth *AdminAuth,
) *PromotionHandler {
	return &PromotionHandler{
		createHandler:    command.NewCreatePromotionHandler(promotions, products),
		updateHandler:    command.NewUpdatePromotionHandler(promotions),
		deleteHandler:    command.NewDeletePromotionHandler(promotions),
		activeHandler:    query.NewListActivePromotionsHandler(promotions),
		byProductHandler: query.NewListProductPromotionsHandler(promotions),
		repo:             promotions,
		metrics:          metrics,
		auth:             auth,
		publisher:        publisher,
	}
}

// RegisterRoutes mounts the promotion routes
func (h *PromotionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/promotions/active", h.metrics.Instrument("/api/promotions/active", h.ListActive)).Methods("GET")
	router.HandleFunc("/api/promotions/product/{productId}", h.metrics.Instrument("/api/promotions/product/{productId}", h.ListByProduct)).Methods("GET")
	router.HandleFunc("/api/promotions/{id}", h.metrics.Instrument("/api/promotions/{id}", h.Get)).Methods("GET")

	router.HandleFunc("/api/promotions", h.metrics.Instrument("/api/promotions", h.auth.Middleware(h.Create))).Methods("POST")
	router.HandleFunc("/api/promotions/{id}", h.metrics.Instrument("/api/promotions/{id}", h.auth.Middleware(h.Update))).Methods("PUT")
	router.HandleFunc("/api/promotions/{id}", h.metrics.Instrument("/api/promotions/{id}", h.auth.Middleware(h.Delete))).Methods("DELETE")
}

type promotionRequest struct {
	ProductID     uint    `json:"product_id"`
	Name          string  `json:"name"`
	DiscountType  string  `json:"discount_type"`
	DiscountValue float64 `json:"discount_value"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	IsActive      *bool   `json:"is_active"`
}

func parsePromotionDate(value string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, value)
	return t, err == nil
}

// Create handles POST /api/promotions
func (h *PromotionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req promotionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	start, okStart := parsePromotionDate(req.StartDate)
	end, okEnd := parsePromotionDate(req.EndDate)
	if !okStart || !okEnd {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Dates must be RFC3339"})
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	promotion, err := h.createHandler.Handle(command.CreatePromotionCommand{
		ProductID:     req.ProductID,
		Name:          req.Name,
		DiscountType:  domain.DiscountType(req.DiscountType),
		DiscountValue: req.DiscountValue,
		StartDate:     start,
		EndDate:       end,
		IsActive:      isActive,
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	h.publishPromotionEvent(r, promotion.ID, promotion.ProductID)

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Promotion created successfully",
		Data:    promotion,
	})
}

// Get handles GET /api/promotions/{id}
func (h *PromotionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid promotion ID"})
		return
	}

	promotion, err := h.repo.FindByID(id)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: promotion})
}

// ListActive handles GET /api/promotions/active
func (h *PromotionHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	promotions, err := h.activeHandler.Handle(query.ListActivePromotionsQuery{})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: promotions})
}

// ListByProduct handles GET /api/promotions/product/{productId}. Applies the
// same active-and-in-window filter as /api/promotions/active.
func (h *PromotionHandler) ListByProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(r, "productId")
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid product ID"})
		return
	}

	promotions, err := h.byProductHandler.Handle(query.ListProductPromotionsQuery{ProductID: productID})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: promotions})
}

// Update handles PUT /api/promotions/{id}
func (h *PromotionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid promotion ID"})
		return
	}

	var req struct {
		Name          *string  `json:"name"`
		DiscountType  *string  `json:"discount_type"`
		DiscountValue *float64 `json:"discount_value"`
		StartDate     *string  `json:"start_date"`
		EndDate       *string  `json:"end_date"`
		IsActive      *bool    `json:"is_active"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	cmd := command.UpdatePromotionCommand{ID: id, Name: req.Name, DiscountValue: req.DiscountValue, IsActive: req.IsActive}
	if req.DiscountType != nil {
		t := domain.DiscountType(*req.DiscountType)
		cmd.DiscountType = &t
	}
	if req.StartDate != nil {
		start, ok := parsePromotionDate(*req.StartDate)
		if !ok {
			respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Dates must be RFC3339"})
			return
		}
		cmd.StartDate = &start
	}
	if req.EndDate != nil {
		end, ok := parsePromotionDate(*req.EndDate)
		if !ok {
			respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Dates must be RFC3339"})
			return
		}
		cmd.EndDate = &end
	}

	promotion, err := h.updateHandler.Handle(cmd)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	h.publishPromotionEvent(r, promotion.ID, promotion.ProductID)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Promotion updated successfully",
		Data:    promotion,
	})
}

// Delete handles DELETE /api/promotions/{id}
func (h *PromotionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid promotion ID"})
		return
	}

	promotion, err := h.repo.FindByID(id)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	if err := h.deleteHandler.Handle(command.DeletePromotionCommand{ID: id}); err != nil {
		respondDomainError(w, r, err)
		return
	}

	h.publishPromotionEvent(r, promotion.ID, promotion.ProductID)

	respondJSON(w, http.StatusOK, Response{Success: true, Message: "Promotion deleted successfully"})
}

func (h *PromotionHandler) publishPromotionEvent(r *http.Request, promotionID, productID uint) {
	if h.publisher == nil {
		return
	}
	if err := h.publisher.PublishPromotionChanged(r.Context(), promotionID, productID); err != nil {
		logger.Warn(r.Context()).Err(err).Uint("promotion_id", promotionID).Msg("Failed to publish promotion event")
	}
}
