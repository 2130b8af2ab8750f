package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Magupe09/auth-prueba/internal/domain"
)

// ProductLister is the minimal interface needed to serve the catalog.
type ProductLister interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

// HandleProducts returns an HTTP handler for the product catalog.
func HandleProducts(svc ProductLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		products, err := svc.ListProducts(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}

		resp := make([]productResponse, 0, len(products))
		for _, p := range products {
			prices := make([]priceResponse, 0, len(p.Prices))
			for _, opt := range p.Prices {
				prices = append(prices, priceResponse{
					Variant:   opt.Variant,
					UnitPrice: opt.UnitPrice.StringFixed(2),
				})
			}
			resp = append(resp, productResponse{
				ProductID:   p.ID,
				Name:        p.Name,
				Image:       p.Image,
				Ingredients: p.Ingredients,
				Prices:      prices,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

type productResponse struct {
	ProductID   int64           `json:"product_id"`
	Name        string          `json:"name"`
	Image       string          `json:"image,omitempty"`
	Ingredients []string        `json:"ingredients"`
	Prices      []priceResponse `json:"prices"`
}

type priceResponse struct {
	Variant   string `json:"variant"`
	UnitPrice string `json:"unit_price"`
}
