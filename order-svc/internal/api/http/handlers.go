package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"overcooked-orders/logging"
	"overcooked-orders/order-svc/internal/domain"
	"overcooked-orders/order-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

type Handler struct {
	Orders   service.OrderServiceInterface
	Ratings  service.RatingServiceInterface
	Rounding domain.RoundingMode
}

func NewHandler(orders service.OrderServiceInterface, ratings service.RatingServiceInterface, rounding domain.RoundingMode) *Handler {
	return &Handler{Orders: orders, Ratings: ratings, Rounding: rounding}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/orders", h.checkout).Methods("POST")
	r.HandleFunc("/api/orders/{id:[0-9]+}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id:[0-9]+}/cancel", h.cancelOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id:[0-9]+}/status", h.transitionOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id:[0-9]+}/reorder", h.reorder).Methods("POST")
	r.HandleFunc("/api/orders/{id:[0-9]+}/qrcode", h.getTrackingQRCode).Methods("GET")
	r.HandleFunc("/api/orders/{id:[0-9]+}/rating", h.rateOrder).Methods("POST")

	r.HandleFunc("/api/users/{userId:[0-9]+}/orders", h.listUserOrders).Methods("GET")
	r.HandleFunc("/api/users/{userId:[0-9]+}/orders/active", h.activeOrder).Methods("GET")
}

type cartResponse struct {
	Lines          []domain.CartLine `json:"lines"`
	TotalItemCount int               `json:"total_item_count"`
	Subtotal       decimal.Decimal   `json:"subtotal"`
	Unavailable    []int             `json:"unavailable_food_item_ids,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := describeError(err)
	if status >= http.StatusInternalServerError {
		logging.FromContext(r.Context()).Error("request failed", "err", err)
	}
	http.Error(w, message, status)
}

func pathInt(r *http.Request, name string) int {
	n, _ := strconv.Atoi(mux.Vars(r)[name])
	return n
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var req service.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.RestaurantID <= 0 || req.UserID <= 0 {
		http.Error(w, "Missing user_id or restaurant_id", http.StatusBadRequest)
		return
	}

	order, err := h.Orders.Checkout(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Get(r.Context(), pathInt(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Cancel(r.Context(), pathInt(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) transitionOrder(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}
	target, err := domain.ParseStatus(payload.Status)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Orders.Transition(r.Context(), pathInt(r, "id"), target)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) reorder(w http.ResponseWriter, r *http.Request) {
	cart, missing, err := h.Orders.Reorder(r.Context(), pathInt(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cartResponse{
		Lines:          cart.Lines(),
		TotalItemCount: cart.TotalItemCount(),
		Subtotal:       h.Rounding.Cents(cart.Subtotal()),
		Unavailable:    missing,
	})
}

func (h *Handler) getTrackingQRCode(w http.ResponseWriter, r *http.Request) {
	qrCode, err := h.Orders.TrackingQRCode(r.Context(), pathInt(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

func (h *Handler) rateOrder(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Rating decimal.Decimal `json:"rating"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	if err := h.Ratings.Submit(r.Context(), pathInt(r, "id"), payload.Rating); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

func (h *Handler) listUserOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListForUser(r.Context(), pathInt(r, "userId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) activeOrder(w http.ResponseWriter, r *http.Request) {
	order, ok, err := h.Orders.CurrentActiveOrder(r.Context(), pathInt(r, "userId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !ok {
		writeJSON(w, http.StatusOK, map[string]interface{}{"active": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"active": true, "order": order})
}
