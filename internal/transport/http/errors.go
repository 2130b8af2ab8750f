package http

import (
	"encoding/json"
	"net/http"
)

const (
	codeMethodNotAllowed       = "method_not_allowed"
	codeNotFound               = "not_found"
	codeInvalidRequestBody     = "invalid_request_body"
	codeInvalidID              = "invalid_id"
	codeEmptyOrder             = "empty_order"
	codeInvalidProduct         = "invalid_product"
	codeInvalidQuantity        = "invalid_quantity"
	codeInvalidVariant         = "invalid_variant"
	codeProductVariantNotFound = "product_variant_not_found"
	codeOrderNotFound          = "order_not_found"
	codeUserNotFound           = "user_not_found"
	codeNameRequired           = "name_required"
	codeInvalidEmail           = "invalid_email"
	codePasswordTooShort       = "password_too_short"
	codeEmailTaken             = "email_taken"
	codeInvalidCredentials     = "invalid_credentials"
	codeMissingToken           = "missing_token"
	codeInvalidToken           = "invalid_token"
	codeForbidden              = "forbidden"
	codeInternalError          = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}
