// Package handler implements the REST endpoint handlers.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/uptrace/bunrouter"
)

var errInvalidID = errors.New("invalid ID parameter")

// paramID parses a numeric route parameter.
func paramID(req bunrouter.Request, name string) (uint64, error) {
	id, err := strconv.ParseUint(req.Param(name), 10, 64)
	if err != nil {
		return 0, errInvalidID
	}

	return id, nil
}

// decodeBody parses a JSON request body into v.
func decodeBody(req bunrouter.Request, v any) error {
	return sonic.ConfigDefault.NewDecoder(req.Body).Decode(v)
}

// badRequest writes a 400 response.
func badRequest(w http.ResponseWriter, msg string) {
	http.Error(w, msg, http.StatusBadRequest)
}

// forbidden writes a 403 response for a failed reputation gate.
func forbidden(w http.ResponseWriter, msg string) {
	http.Error(w, msg, http.StatusForbidden)
}
