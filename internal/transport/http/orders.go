package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Magupe09/auth-prueba/internal/app"
	"github.com/Magupe09/auth-prueba/internal/domain"
)

// OrderPlacer is the minimal interface needed to place an order.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, in app.PlaceOrderInput) (int64, error)
}

// OrderGetter is the minimal interface needed to read a single order.
type OrderGetter interface {
	GetOrder(ctx context.Context, orderID int64) (domain.Order, error)
}

// HandlePlaceOrder returns an HTTP handler for order placement. The
// owner is always the authenticated caller; nothing in the body can
// override it.
func HandlePlaceOrder(svc OrderPlacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		claims, ok := claimsFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, codeMissingToken, "missing authentication token")
			return
		}

		var req placeOrderRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		lines := make([]domain.OrderLineRequest, 0, len(req.Items))
		for _, item := range req.Items {
			lines = append(lines, domain.OrderLineRequest{
				ProductID: item.PizzaID,
				Quantity:  item.Quantity,
				Variant:   item.Size,
			})
		}

		orderID, err := svc.PlaceOrder(r.Context(), app.PlaceOrderInput{
			UserID: claims.UserID,
			Lines:  lines,
		})
		if err != nil {
			writePlaceOrderError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(placeOrderResponse{
			Message: "order created",
			OrderID: orderID,
		})
	}
}

func writePlaceOrderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrEmptyOrder):
		writeError(w, http.StatusBadRequest, codeEmptyOrder, err.Error())
	case errors.Is(err, domain.ErrInvalidProduct):
		writeError(w, http.StatusBadRequest, codeInvalidProduct, err.Error())
	case errors.Is(err, domain.ErrInvalidQuantity):
		writeError(w, http.StatusBadRequest, codeInvalidQuantity, err.Error())
	case errors.Is(err, domain.ErrInvalidVariant):
		writeError(w, http.StatusBadRequest, codeInvalidVariant, err.Error())
	case errors.Is(err, domain.ErrProductVariantNotFound):
		writeError(w, http.StatusNotFound, codeProductVariantNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}

// HandleGetOrder returns an HTTP handler for reading one order by id.
func HandleGetOrder(svc OrderGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		orderID, ok := parseOrderPath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusBadRequest, codeInvalidID, domain.ErrInvalidID.Error())
			return
		}

		order, err := svc.GetOrder(r.Context(), orderID)
		if err != nil {
			switch err {
			case domain.ErrInvalidID:
				writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
			case domain.ErrOrderNotFound:
				writeError(w, http.StatusNotFound, codeOrderNotFound, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(toOrderResponse(order))
	}
}

func parseOrderPath(path string) (int64, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 2 || parts[0] != "orders" {
		return 0, false
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

type placeOrderRequest struct {
	Items []placeOrderItem `json:"items"`
}

type placeOrderItem struct {
	PizzaID  int64  `json:"pizzaId"`
	Quantity int    `json:"quantity"`
	Size     string `json:"size"`
}

type placeOrderResponse struct {
	Message string `json:"message"`
	OrderID int64  `json:"orderId"`
}

type orderResponse struct {
	OrderID   int64               `json:"order_id"`
	UserID    int64               `json:"user_id"`
	CreatedAt time.Time           `json:"created_at"`
	Items     []orderItemResponse `json:"items"`
}

type orderItemResponse struct {
	ProductID       int64  `json:"product_id"`
	ProductName     string `json:"product_name"`
	Variant         string `json:"variant"`
	Quantity        int    `json:"quantity"`
	PriceAtPurchase string `json:"price_at_purchase"`
}

func toOrderResponse(order domain.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(order.Lines))
	for _, line := range order.Lines {
		items = append(items, orderItemResponse{
			ProductID:       line.ProductID,
			ProductName:     line.ProductName,
			Variant:         line.Variant,
			Quantity:        line.Quantity,
			PriceAtPurchase: line.PriceAtPurchase.StringFixed(2),
		})
	}
	return orderResponse{
		OrderID:   order.ID,
		UserID:    order.UserID,
		CreatedAt: order.CreatedAt,
		Items:     items,
	}
}
