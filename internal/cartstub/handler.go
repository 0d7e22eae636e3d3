package cartstub

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type updateLineRequestDTO struct {
	Quantity int  `json:"quantity"`
	Choose   bool `json:"choose"`
}

type applyDiscountRequestDTO struct {
	DiscountCode string `json:"discountCode"`
	OrderTotal   int64  `json:"orderTotal"`
}

type errorResponseDTO struct {
	Message string `json:"message"`
}

// Handler serves the cart and discount REST contract from a Store.
func Handler(store *Store) http.Handler {
	r := chi.NewRouter()

	r.Route("/cart/api", func(r chi.Router) {
		r.Get("/current", func(w http.ResponseWriter, _ *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"cartId": store.CurrentCart()})
		})
		r.Get("/{cartID}/items", func(w http.ResponseWriter, r *http.Request) {
			lines, err := store.Lines(chi.URLParam(r, "cartID"))
			if err != nil {
				respondError(w, err)
				return
			}
			respondJSON(w, http.StatusOK, lines)
		})
		r.Get("/{cartID}/total", func(w http.ResponseWriter, r *http.Request) {
			total, err := store.Subtotal(chi.URLParam(r, "cartID"))
			if err != nil {
				respondError(w, err)
				return
			}
			respondJSON(w, http.StatusOK, total)
		})
	})

	r.Route("/CartProduct/{cartID}", func(r chi.Router) {
		r.Put("/{lineID}", func(w http.ResponseWriter, r *http.Request) {
			var req updateLineRequestDTO
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				respondJSON(w, http.StatusBadRequest, errorResponseDTO{Message: "invalid JSON body"})
				return
			}
			res, err := store.UpdateLine(chi.URLParam(r, "cartID"), chi.URLParam(r, "lineID"), req.Quantity, req.Choose)
			if err != nil {
				respondError(w, err)
				return
			}
			respondJSON(w, http.StatusOK, res)
		})
		r.Delete("/selected", func(w http.ResponseWriter, r *http.Request) {
			if err := store.DeleteSelected(chi.URLParam(r, "cartID")); err != nil {
				respondError(w, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})
		r.Delete("/unavailable/{lineID}", func(w http.ResponseWriter, r *http.Request) {
			if err := store.DeleteUnavailable(chi.URLParam(r, "cartID"), chi.URLParam(r, "lineID")); err != nil {
				respondError(w, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})
		r.Delete("/{lineID}", func(w http.ResponseWriter, r *http.Request) {
			if err := store.DeleteLine(chi.URLParam(r, "cartID"), chi.URLParam(r, "lineID")); err != nil {
				respondError(w, err)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})
	})

	r.Post("/discounts/apply", func(w http.ResponseWriter, r *http.Request) {
		var req applyDiscountRequestDTO
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondJSON(w, http.StatusBadRequest, errorResponseDTO{Message: "invalid JSON body"})
			return
		}
		amount, err := store.ApplyDiscount(req.DiscountCode, req.OrderTotal)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{
			"result": map[string]any{"discountAmount": amount},
		})
	})

	return r
}

func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrCartNotFound), errors.Is(err, ErrLineNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrInvalidQuantity), errors.Is(err, ErrUnknownCode), errors.Is(err, ErrBelowMinimum):
		status = http.StatusBadRequest
	case errors.Is(err, ErrLineStillSold):
		status = http.StatusConflict
	}
	respondJSON(w, status, errorResponseDTO{Message: err.Error()})
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
