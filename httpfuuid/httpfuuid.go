// Package httpfuuid extracts FUUIDs from httprouter path parameters.
package httpfuuid

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/Lzww0608/fuuid"
)

// ErrMissing indicates that the route has no parameter with the given name.
var ErrMissing = errors.New("httpfuuid: missing path parameter")

// ParamError reports a path parameter that is absent or not a valid FUUID.
type ParamError struct {
	Name string
	Err  error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("path parameter %q: %v", e.Name, e.Err)
}

func (e *ParamError) Unwrap() error {
	return e.Err
}

// Param parses the path parameter called name.
func Param(ps httprouter.Params, name string) (fuuid.FUUID, error) {
	for _, p := range ps {
		if p.Key != name {
			continue
		}
		id, err := fuuid.FromString(p.Value)
		if err != nil {
			return fuuid.Nil, &ParamError{Name: name, Err: err}
		}
		return id, nil
	}
	return fuuid.Nil, &ParamError{Name: name, Err: ErrMissing}
}

// FromContext parses the path parameter called name from a request context
// populated by httprouter.
func FromContext(ctx context.Context, name string) (fuuid.FUUID, error) {
	return Param(httprouter.ParamsFromContext(ctx), name)
}

// HandlerFunc is an httprouter handle that receives the parsed FUUID.
type HandlerFunc func(w http.ResponseWriter, r *http.Request, ps httprouter.Params, id fuuid.FUUID)

// Handle adapts h to an httprouter.Handle. Requests whose parameter name is
// not a valid FUUID get a 400 response with a JSON body and never reach h.
func Handle(name string, h HandlerFunc) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		id, err := Param(ps, name)
		if err != nil {
			writeJSON(w, errorResponse{
				Message: "invalid path parameter",
				Error:   map[string]string{name: err.Error()},
			}, http.StatusBadRequest)
			return
		}
		h(w, r, ps, id)
	}
}

type errorResponse struct {
	Message string            `json:"message"`
	Error   map[string]string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, data any, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}
