package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Magupe09/auth-prueba/internal/domain"
)

// OrderLister is the minimal interface needed to read a user's history.
type OrderLister interface {
	ListUserOrders(ctx context.Context, userID int64) ([]domain.Order, error)
}

// HandleUserOrders returns an HTTP handler for a user's order history.
// Callers can only read their own history.
func HandleUserOrders(svc OrderLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		rawID, ok := parseUserOrdersPath(r.URL.Path)
		if !ok {
			writeError(w, http.StatusNotFound, codeNotFound, "not found")
			return
		}
		userID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil || userID <= 0 {
			writeError(w, http.StatusBadRequest, codeInvalidID, "user id must be a positive number")
			return
		}

		claims, authed := claimsFromContext(r.Context())
		if !authed {
			writeError(w, http.StatusUnauthorized, codeMissingToken, "missing authentication token")
			return
		}
		if claims.UserID != userID {
			writeError(w, http.StatusForbidden, codeForbidden, "cannot view another user's orders")
			return
		}

		orders, err := svc.ListUserOrders(r.Context(), userID)
		if err != nil {
			switch err {
			case domain.ErrUserNotFound:
				writeError(w, http.StatusNotFound, codeUserNotFound, err.Error())
			case domain.ErrInvalidID:
				writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		resp := make([]historyOrderResponse, 0, len(orders))
		for _, order := range orders {
			items := make([]historyItemResponse, 0, len(order.Lines))
			for _, line := range order.Lines {
				items = append(items, historyItemResponse{
					ProductName:     line.ProductName,
					Quantity:        line.Quantity,
					PriceAtPurchase: line.PriceAtPurchase.StringFixed(2),
				})
			}
			resp = append(resp, historyOrderResponse{
				OrderID:   order.ID,
				OrderDate: order.CreatedAt,
				Items:     items,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func parseUserOrdersPath(path string) (string, bool) {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) != 3 || parts[0] != "users" || parts[2] != "orders" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

type historyOrderResponse struct {
	OrderID   int64                 `json:"order_id"`
	OrderDate time.Time             `json:"order_date"`
	Items     []historyItemResponse `json:"items"`
}

type historyItemResponse struct {
	ProductName     string `json:"product_name"`
	Quantity        int    `json:"quantity"`
	PriceAtPurchase string `json:"price_at_purchase"`
}
