package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"colcacchio-dashboard/internal/domain"
	"colcacchio-dashboard/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Dashboard service.DashboardInterface
	QR        service.QRGenerator
}

func NewHandler(dashboard service.DashboardInterface, qr service.QRGenerator) *Handler {
	return &Handler{Dashboard: dashboard, QR: qr}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}).Methods("GET")
	r.HandleFunc("/api/overview", h.getOverview).Methods("GET")
	r.HandleFunc("/api/stores", h.getStores).Methods("GET")
	r.HandleFunc("/api/stores/{slug}", h.getStore).Methods("GET")
	r.HandleFunc("/api/stores/{slug}/qr", h.getStoreQR).Methods("GET")
	r.HandleFunc("/api/specials", h.getSpecials).Methods("GET")
	r.HandleFunc("/api/compare", h.getCompare).Methods("GET")
}

func (h *Handler) getOverview(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Dashboard.Overview()
	if err != nil {
		http.Error(w, "Failed to load dashboard data", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

func (h *Handler) getStores(w http.ResponseWriter, r *http.Request) {
	stores, err := h.Dashboard.Stores()
	if err != nil {
		http.Error(w, "Failed to load dashboard data", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if stores == nil {
		json.NewEncoder(w).Encode([]*domain.Store{})
		return
	}
	json.NewEncoder(w).Encode(stores)
}

func (h *Handler) getStore(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	store, err := h.Dashboard.StoreBySlug(slug)
	if err != nil {
		http.Error(w, "Failed to load dashboard data", http.StatusInternalServerError)
		return
	}
	if store == nil {
		http.Error(w, "Store not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(store)
}

func (h *Handler) getStoreQR(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	store, err := h.Dashboard.StoreBySlug(slug)
	if err != nil {
		http.Error(w, "Failed to load dashboard data", http.StatusInternalServerError)
		return
	}
	if store == nil {
		http.Error(w, "Store not found", http.StatusNotFound)
		return
	}
	png, err := h.QR.Generate(store.UberEatsURL)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (h *Handler) getSpecials(w http.ResponseWriter, r *http.Request) {
	report, err := h.Dashboard.Specials()
	if err != nil {
		http.Error(w, "Failed to load dashboard data", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if report == nil {
		json.NewEncoder(w).Encode([]domain.StoreSpecials{})
		return
	}
	json.NewEncoder(w).Encode(report)
}

func (h *Handler) getCompare(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("stores")
	var slugs []string
	if raw != "" {
		slugs = strings.Split(raw, ",")
	}
	selected, err := h.Dashboard.Compare(slugs)
	if err != nil {
		http.Error(w, "Failed to load dashboard data", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if selected == nil {
		json.NewEncoder(w).Encode([]*domain.Store{})
		return
	}
	json.NewEncoder(w).Encode(selected)
}
