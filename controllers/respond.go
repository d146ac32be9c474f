package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"brandm-backend/middleware"
	"brandm-backend/services"
	"brandm-backend/utils"
)

const requestTimeout = 5 * time.Second

var validate = validator.New()

// decodeBody parses and validates the request body into dst. On failure it
// writes the 400 response and reports false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid input")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return false
	}
	return true
}

// userIDFromRequest returns the authenticated user's id. On failure it writes
// the 401 response and reports false.
func userIDFromRequest(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return primitive.NilObjectID, false
	}
	return id, true
}

// pathID parses the named path variable as an ObjectID. On failure it writes
// the 400 response and reports false.
func pathID(w http.ResponseWriter, raw string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid ID")
		return primitive.NilObjectID, false
	}
	return id, true
}

// writeServiceError maps a service error kind to its HTTP status.
func writeServiceError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch services.KindOf(err) {
	case services.KindInvalid:
		status = http.StatusBadRequest
	case services.KindNotFound:
		status = http.StatusNotFound
	case services.KindConflict:
		status = http.StatusConflict
	case services.KindUnauthorized:
		status = http.StatusUnauthorized
	case services.KindForbidden:
		status = http.StatusForbidden
	case services.KindUpstream:
		status = http.StatusBadGateway
	}
	utils.WriteError(w, status, services.MessageOf(err))
}
