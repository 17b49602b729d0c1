package catalog

import (
	"github.com/gorilla/mux"

	httpDelivery "github.com/yealoro/shop-cart-sub000/internal/catalog/delivery/http"
)

// Handlers bundles every HTTP handler of the catalog service
type Handlers struct {
	Product   *httpDelivery.ProductHandler
	Category  *httpDelivery.CategoryHandler
	Variant   *httpDelivery.VariantHandler
	Image     *httpDelivery.ImageHandler
	Review    *httpDelivery.ReviewHandler
	Promotion *httpDelivery.PromotionHandler
	Stock     *httpDelivery.StockHandler

	auth *httpDelivery.AdminAuth
}

// NewHandlers creates the handler bundle
func NewHandlers(
	product *httpDelivery.ProductHandler,
	category *httpDelivery.CategoryHandler,
	variant *httpDelivery.VariantHandler,
	image *httpDelivery.ImageHandler,
	review *httpDelivery.ReviewHandler,
	promotion *httpDelivery.PromotionHandler,
	stock *httpDelivery.StockHandler,
	auth *httpDelivery.AdminAuth,
) *Handlers {
	return &Handlers{
		Product:   product,
		Category:  category,
		Variant:   variant,
		Image:     image,
		Review:    review,
		Promotion: promotion,
		Stock:     stock,
		auth:      auth,
	}
}

// RegisterRoutes mounts every catalog route on the router. Sub-resource
// routes go first so their literal segments win over {id} patterns.
func (h *Handlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/admin/login", h.auth.Login).Methods("POST")

	h.Variant.RegisterRoutes(router)
	h.Image.RegisterRoutes(router)
	h.Review.RegisterRoutes(router)
	h.Stock.RegisterRoutes(router)
	h.Promotion.RegisterRoutes(router)
	h.Category.RegisterRoutes(router)
	h.Product.RegisterRoutes(router)
}
