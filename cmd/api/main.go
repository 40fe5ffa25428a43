package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/guetofya/storefront/internal/auth"
	"github.com/guetofya/storefront/internal/config"
	"github.com/guetofya/storefront/internal/database"
	"github.com/guetofya/storefront/internal/models"
	"github.com/guetofya/storefront/internal/storage"
	"github.com/guetofya/storefront/internal/store"
	"github.com/guetofya/storefront/internal/whatsapp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Load config: %v", err)
	}

	ctx := context.Background()

	adapter, closeAdapter, err := openAdapter(ctx, cfg)
	if err != nil {
		log.Fatalf("Open storage: %v", err)
	}
	defer closeAdapter()

	st, err := store.Open(ctx, adapter)
	if err != nil {
		log.Fatalf("Open store: %v", err)
	}

	log.Printf("Storage backend %q ready", cfg.Storage.Backend)

	admin := auth.New(&cfg.Admin)

	mux := http.NewServeMux()

	mux.HandleFunc("/products", handleProducts(st, admin))
	mux.HandleFunc("/products/", handleProductByID(st, admin))
	mux.HandleFunc("/cart", handleCart(st))
	mux.HandleFunc("/cart/", handleCartLine(st))
	mux.HandleFunc("/checkout", handleCheckout(st, cfg.WhatsApp.Number))
	mux.HandleFunc("/admin/login", handleAdminLogin(admin))
	mux.HandleFunc("/admin/orders", requireAdmin(admin, handleAdminOrders(st)))
	mux.HandleFunc("/admin/orders/", requireAdmin(admin, handleOrderStatus(st)))
	mux.HandleFunc("/admin/stats", requireAdmin(admin, handleAdminStats(st)))
	mux.HandleFunc("/admin/customers", requireAdmin(admin, handleAdminCustomers(st)))

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Printf("Server starting on port %s", cfg.Server.Port)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func openAdapter(ctx context.Context, cfg *config.Config) (storage.Adapter, func(), error) {
	switch cfg.Storage.Backend {
	case "postgres":
		db, err := database.NewConnection(&cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		adapter := storage.NewPostgres(db)
		if err := adapter.Init(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return adapter, func() { db.Close() }, nil

	case "redis":
		adapter, err := storage.NewRedis(&cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return adapter, func() { adapter.Close() }, nil

	default:
		return storage.NewMemory(), func() {}, nil
	}
}

func requireAdmin(admin *auth.Service, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || admin.Verify(token) != nil {
			respondError(w, http.StatusUnauthorized, "Invalid or missing session token")
			return
		}
		next(w, r)
	}
}

func handleProducts(st *store.Store, admin *auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			respondJSON(w, http.StatusOK, st.Products())

		case http.MethodPost:
			requireAdmin(admin, func(w http.ResponseWriter, r *http.Request) {
				var product models.Product
				if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
					respondError(w, http.StatusBadRequest, "Invalid request body")
					return
				}

				created, err := st.AddProduct(r.Context(), product)
				if err != nil {
					respondError(w, statusForError(err), err.Error())
					return
				}

				respondJSON(w, http.StatusCreated, created)
			})(w, r)

		default:
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	}
}

func handleProductByID(st *store.Store, admin *auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Path[len("/products/"):]

		switch r.Method {
		case http.MethodGet:
			product, err := st.Product(id)
			if err != nil {
				respondError(w, statusForError(err), err.Error())
				return
			}
			respondJSON(w, http.StatusOK, product)

		case http.MethodPut:
			requireAdmin(admin, func(w http.ResponseWriter, r *http.Request) {
				var product models.Product
				if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
					respondError(w, http.StatusBadRequest, "Invalid request body")
					return
				}
				product.ID = id

				if err := st.UpdateProduct(r.Context(), product); err != nil {
					respondError(w, statusForError(err), err.Error())
					return
				}
				respondJSON(w, http.StatusOK, product)
			})(w, r)

		case http.MethodDelete:
			requireAdmin(admin, func(w http.ResponseWriter, r *http.Request) {
				if err := st.DeleteProduct(r.Context(), id); err != nil {
					respondError(w, statusForError(err), err.Error())
					return
				}
				w.WriteHeader(http.StatusNoContent)
			})(w, r)

		default:
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	}
}

type cartView struct {
	Items         []models.CartLine `json:"items"`
	Totals        models.CartTotals `json:"totals"`
	CheckoutReady bool              `json:"checkout_ready"`
}

func handleCart(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			respondJSON(w, http.StatusOK, cartView{
				Items:         st.Cart(),
				Totals:        st.CartTotals(),
				CheckoutReady: st.CheckoutReady(),
			})

		case http.MethodPost:
			var req struct {
				ProductID string `json:"product_id"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				respondError(w, http.StatusBadRequest, "Invalid request body")
				return
			}

			line, err := st.AddToCart(req.ProductID)
			if err != nil {
				respondError(w, statusForError(err), err.Error())
				return
			}
			respondJSON(w, http.StatusCreated, line)

		case http.MethodDelete:
			st.ClearCart()
			w.WriteHeader(http.StatusNoContent)

		default:
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	}
}

func handleCartLine(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rest := r.URL.Path[len("/cart/"):]

		if lineID, ok := strings.CutSuffix(rest, "/size"); ok {
			if r.Method != http.MethodPut {
				respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
				return
			}

			var req struct {
				Size string `json:"size"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				respondError(w, http.StatusBadRequest, "Invalid request body")
				return
			}

			if err := st.SetLineSize(lineID, req.Size); err != nil {
				respondError(w, statusForError(err), err.Error())
				return
			}
			w.WriteHeader(http.StatusNoContent)
			return
		}

		if r.Method != http.MethodDelete {
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		st.RemoveFromCart(rest)
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleCheckout(st *store.Store, whatsappNumber string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}

		var req struct {
			Name  string `json:"name"`
			Phone string `json:"phone"`
			Email string `json:"email"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Name == "" || req.Email == "" {
			respondError(w, http.StatusBadRequest, "Name and email are required")
			return
		}

		order, err := st.CreateOrder(r.Context(), store.CustomerInput{
			Name:  req.Name,
			Phone: req.Phone,
			Email: req.Email,
		})
		if err != nil {
			respondError(w, statusForError(err), err.Error())
			return
		}

		respondJSON(w, http.StatusCreated, struct {
			Order        models.Order `json:"order"`
			WhatsAppLink string       `json:"whatsapp_link"`
		}{
			Order:        order,
			WhatsAppLink: whatsapp.Link(whatsappNumber, order),
		})
	}
}

func handleAdminLogin(admin *auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}

		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		token, err := admin.Login(req.Username, req.Password)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "Credenciais inválidas.")
			return
		}

		respondJSON(w, http.StatusOK, map[string]string{"token": token})
	}
}

func handleAdminOrders(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		respondJSON(w, http.StatusOK, st.Orders())
	}
}

func handleOrderStatus(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rest := r.URL.Path[len("/admin/orders/"):]
		orderID, ok := strings.CutSuffix(rest, "/status")
		if !ok {
			respondError(w, http.StatusNotFound, "Not found")
			return
		}
		if r.Method != http.MethodPut {
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}

		var req struct {
			Status models.OrderStatus `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := st.UpdateOrderStatus(r.Context(), orderID, req.Status); err != nil {
			respondError(w, statusForError(err), err.Error())
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleAdminStats(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		respondJSON(w, http.StatusOK, st.Stats())
	}
}

func handleAdminCustomers(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		respondJSON(w, http.StatusOK, st.Customers())
	}
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, store.ErrProductNotFound),
		errors.Is(err, store.ErrOrderNotFound),
		errors.Is(err, store.ErrCartLineNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrInvalidProduct),
		errors.Is(err, store.ErrInvalidStatus),
		errors.Is(err, store.ErrSizeNotAvailable),
		errors.Is(err, store.ErrCartNotReady):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrOrderFinalized):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
