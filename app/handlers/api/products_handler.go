package api

import (
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/arashsoltani/zarshop/app/apperrors"
	"github.com/arashsoltani/zarshop/app/helpers"
	"github.com/arashsoltani/zarshop/app/models"
	"github.com/arashsoltani/zarshop/app/repositories"
	"github.com/arashsoltani/zarshop/app/services"
	"github.com/unrolled/render"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ProductsHandler serves product filtering, search and new-arrival JSON
// endpoints.
type ProductsHandler struct {
	productRepo  repositories.ProductRepositoryImpl
	filterSvc    *services.FilterService
	attributeSvc *services.AttributeService
	render       *render.Render
}

func NewProductsHandler(
	productRepo repositories.ProductRepositoryImpl,
	filterSvc *services.FilterService,
	attributeSvc *services.AttributeService,
	render *render.Render,
) *ProductsHandler {
	return &ProductsHandler{
		productRepo:  productRepo,
		filterSvc:    filterSvc,
		attributeSvc: attributeSvc,
		render:       render,
	}
}

type productJSON struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Slug           string            `json:"slug"`
	Sku            string            `json:"sku,omitempty"`
	Price          string            `json:"price"`
	FormattedPrice string            `json:"formatted_price"`
	PriceUSD       *string           `json:"price_usd,omitempty"`
	Stock          int               `json:"stock"`
	CategoryID     string            `json:"category_id"`
	IsNewArrival   bool              `json:"is_new_arrival"`
	Attributes     map[string]string `json:"attributes"`
}

type paginationJSON struct {
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	TotalItems  int64 `json:"total_items"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// FilterProducts handles
// GET /api/products/filter/?category={id}&{key}={value}&...
// Every query parameter other than "category" is treated as an attribute
// filter; keys not bound to the category are rejected with 400. Repeating a
// key (?color=blue&color=red) matches products holding any of its values.
func (h *ProductsHandler) FilterProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	categoryID := r.URL.Query().Get("category")
	if categoryID == "" {
		h.writeError(w, r, apperrors.BadRequest("category query parameter is required"))
		return
	}

	filters := make(map[string][]string)
	for key, values := range r.URL.Query() {
		if key == "category" || len(values) == 0 {
			continue
		}
		filters[key] = values
	}

	products, err := h.filterSvc.FilterProducts(ctx, categoryID, filters)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	payload, err := h.productList(r, products)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"products":        payload,
		"filters_applied": filters,
	})
}

// ListProducts handles GET /api/products/?page=&per_page=.
func (h *ProductsHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page := parsePositiveInt(r.URL.Query().Get("page"), 1)
	perPage := parsePositiveInt(r.URL.Query().Get("per_page"), defaultPageSize)
	if perPage > maxPageSize {
		perPage = maxPageSize
	}
	offset := (page - 1) * perPage

	products, total, err := h.productRepo.GetPaginated(ctx, perPage, offset)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	payload, err := h.productList(r, products)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(perPage)))
	if totalPages == 0 {
		totalPages = 1
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"products": payload,
		"pagination": paginationJSON{
			CurrentPage: page,
			TotalPages:  totalPages,
			TotalItems:  total,
			HasNext:     page < totalPages,
			HasPrevious: page > 1,
		},
	})
}

// SearchProducts handles GET /api/products/search/?q=&page=&per_page=.
func (h *ProductsHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	keyword := r.URL.Query().Get("q")
	page := parsePositiveInt(r.URL.Query().Get("page"), 1)
	perPage := parsePositiveInt(r.URL.Query().Get("per_page"), defaultPageSize)
	if perPage > maxPageSize {
		perPage = maxPageSize
	}
	offset := (page - 1) * perPage

	products, total, err := h.productRepo.SearchPaginated(ctx, keyword, perPage, offset)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	payload, err := h.productList(r, products)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	totalPages := int(math.Ceil(float64(total) / float64(perPage)))
	if totalPages == 0 {
		totalPages = 1
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"products": payload,
		"pagination": paginationJSON{
			CurrentPage: page,
			TotalPages:  totalPages,
			TotalItems:  total,
			HasNext:     page < totalPages,
			HasPrevious: page > 1,
		},
	})
}

// NewArrivals handles GET /api/products/new-arrivals/?limit=N.
func (h *ProductsHandler) NewArrivals(w http.ResponseWriter, r *http.Request) {
	limit := parsePositiveInt(r.URL.Query().Get("limit"), defaultPageSize)

	products, err := h.productRepo.GetNewArrivals(r.Context(), limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	payload, err := h.productList(r, products)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"products": payload,
	})
}

func (h *ProductsHandler) productList(r *http.Request, products []models.Product) ([]productJSON, error) {
	payload := make([]productJSON, 0, len(products))
	for _, p := range products {
		attributes, err := h.attributeSvc.GetAttributesDict(r.Context(), p.ID)
		if err != nil {
			return nil, err
		}
		entry := productJSON{
			ID:             p.ID,
			Name:           p.Name,
			Slug:           p.Slug,
			Sku:            p.Sku,
			Price:          p.Price.String(),
			FormattedPrice: helpers.FormatToman(p.Price),
			Stock:          p.Stock,
			CategoryID:     p.CategoryID,
			IsNewArrival:   p.IsNewArrival,
			Attributes:     attributes,
		}
		if p.PriceUSD != nil {
			usd := helpers.FormatUSD(*p.PriceUSD)
			entry.PriceUSD = &usd
		}
		payload = append(payload, entry)
	}
	return payload, nil
}

func (h *ProductsHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperrors.StatusCode(err)
	if status == http.StatusInternalServerError {
		log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
	}
	_ = h.render.JSON(w, status, map[string]string{"error": apperrors.ClientMessage(err)})
}

func parsePositiveInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
