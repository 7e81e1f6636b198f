package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"restaurant-pos/pos-svc/internal/domain"
	"restaurant-pos/pos-svc/internal/service"

	"github.com/gorilla/mux"
)

type HealthChecker interface {
	Health(ctx context.Context) error
}

type Handler struct {
	Auth         *service.AuthService
	Catalog      *service.Catalog
	Carts        *service.CartService
	Orders       *service.OrderBuilder
	Bills        *service.BillGenerator
	Reservations *service.ReservationManager
	Feedback     *service.FeedbackLedger
	Activity     *service.Activity
	Backend      HealthChecker
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	pos := r.PathPrefix("/pos").Subrouter()
	pos.Use(h.SessionMiddleware)

	pos.HandleFunc("/auth/signin", h.signIn).Methods("POST")
	pos.HandleFunc("/auth/signup", h.signUp).Methods("POST")
	pos.HandleFunc("/auth/signout", signedIn(h.signOut)).Methods("POST")

	pos.HandleFunc("/menu", h.listMenu).Methods("GET")
	pos.HandleFunc("/menu/categories", h.listCategories).Methods("GET")
	pos.HandleFunc("/menu", signedIn(h.createMenuItem)).Methods("POST")
	pos.HandleFunc("/menu/{id}", signedIn(h.updateMenuItem)).Methods("PUT")
	pos.HandleFunc("/menu/{id}", signedIn(h.deleteMenuItem)).Methods("DELETE")

	pos.HandleFunc("/cart", signedIn(h.getCart)).Methods("GET")
	pos.HandleFunc("/cart", signedIn(h.clearCart)).Methods("DELETE")
	pos.HandleFunc("/cart/items", signedIn(h.addCartItem)).Methods("POST")
	pos.HandleFunc("/cart/items/{itemId}", signedIn(h.changeCartItem)).Methods("PATCH")
	pos.HandleFunc("/cart/items/{itemId}", signedIn(h.removeCartItem)).Methods("DELETE")
	pos.HandleFunc("/checkout", signedIn(h.checkout)).Methods("POST")

	pos.HandleFunc("/orders", signedIn(h.listOrders)).Methods("GET")
	pos.HandleFunc("/orders/{id}", signedIn(h.cancelOrder)).Methods("DELETE")

	pos.HandleFunc("/bills", signedIn(h.listBills)).Methods("GET")
	pos.HandleFunc("/bills/unbilled", signedIn(h.unbilledOrders)).Methods("GET")
	pos.HandleFunc("/bills", signedIn(h.createBill)).Methods("POST")
	pos.HandleFunc("/bills/{id}/receipt", signedIn(h.billReceipt)).Methods("GET")
	pos.HandleFunc("/bills/{id}/qrcode", signedIn(h.billQRCode)).Methods("GET")

	pos.HandleFunc("/tables", h.listTables).Methods("GET")
	pos.HandleFunc("/reservations", signedIn(h.listReservations)).Methods("GET")
	pos.HandleFunc("/reservations", h.reserve).Methods("POST")
	pos.HandleFunc("/reservations/{id}", signedIn(h.cancelReservation)).Methods("DELETE")

	pos.HandleFunc("/reviews", h.listReviews).Methods("GET")
	pos.HandleFunc("/reviews", h.submitReview).Methods("POST")
	pos.HandleFunc("/reviews/stats", h.reviewStats).Methods("GET")
	pos.HandleFunc("/reviews/{id}", signedIn(h.deleteReview)).Methods("DELETE")

	pos.HandleFunc("/employees", signedIn(h.listEmployees)).Methods("GET")
	pos.HandleFunc("/journal", signedIn(h.listJournal)).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	backend := "up"
	if h.Backend != nil {
		if err := h.Backend.Health(r.Context()); err != nil {
			backend = "down"
		}
	}
	writeJSON(w, http.StatusOK, envelope{
		"status":    "healthy",
		"service":   "pos-svc",
		"backend":   backend,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

type credentialsRequest struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	session, err := h.Auth.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"session": session})
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	session, err := h.Auth.SignUp(r.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, envelope{"session": session})
}

func (h *Handler) signOut(w http.ResponseWriter, r *http.Request, session *domain.Session) {
	if err := h.Auth.SignOut(r.Context(), session.ID); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"message": "Signed out"})
}

func (h *Handler) listMenu(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("refresh") == "true" {
		if _, err := h.Catalog.Refresh(r.Context()); err != nil {
			writeError(w, r, err)
			return
		}
	}
	items, err := h.Catalog.Filter(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"menu": items})
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Catalog.Categories(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"categories": categories})
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request, session *domain.Session) {
	var item domain.CatalogItem
	if err := decodeBody(r, &item); err != nil {
		writeError(w, r, err)
		return
	}
	created, err := h.Catalog.Create(r.Context(), session, item)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, envelope{"item": created})
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request, session *domain.Session) {
	id, err := intVar(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var item domain.CatalogItem
	if err := decodeBody(r, &item); err != nil {
		writeError(w, r, err)
		return
	}
	item.ID = id
	updated, err := h.Catalog.Update(r.Context(), session, item)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"item": updated})
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request, session *domain.Session) {
	id, err := intVar(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.Catalog.Delete(r.Context(), session, id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"message": "Menu item deleted"})
}

type cartView struct {
	Lines   []domain.CartLine `json:"lines"`
	Totals  domain.Totals     `json:"totals"`
	Display map[string]string `json:"display"`
}

func newCartView(cart *service.Cart) cartView {
	totals := cart.Totals()
	return cartView{
		Lines:  cart.Lines(),
		Totals: totals,
		Display: map[string]string{
			"subtotal": domain.FormatMoney(totals.Subtotal),
			"tax":      domain.FormatMoney(totals.Tax),
			"total":    domain.FormatMoney(totals.Total),
		},
	}
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request, session *domain.Session) {
	cart, err := h.Carts.Get(r.Context(), session.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"cart": newCartView(cart)})
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request, session *domain.Session) {
	if err := h.Carts.Clear(r.Context(), session.ID); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"cart": newCartView(service.NewCart(nil))})
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request, session *domain.Session) {
	var req struct {
		ItemID int `json:"itemId"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	cart, err := h.Carts.Add(r.Context(), session.ID, req.ItemID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"cart": newCartView(cart)})
}

func (h *Handler) changeCartItem(w http.ResponseWriter, r *http.Request, session *domain.Session) {
	itemID, err := intVar(r, "itemId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req struct {
		Delta int `json:"delta"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	cart, err := h.Carts.ChangeQuantity(r.Context(), session.ID, itemID, req.Delta)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"cart": newCartView(cart)})
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request, session *domain.Session) {
	itemID, err := intVar(r, "itemId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	cart, err := h.Carts.Remove(r.Context(), session.ID, itemID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"cart": newCartView(cart)})
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request, session *domain.Session) {
	var req struct {
		CustomerName string `json:"customerName"`
		Phone        string `json:"phone"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	order, err := h.Orders.Checkout(r.Context(), session, req.CustomerName, req.Phone)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, envelope{"order": order})
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request, _ *domain.Session) {
	orders, err := h.Orders.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"orders": orders})
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request, session *domain.Session) {
	if err := h.Orders.Cancel(r.Context(), session, domain.ID(mux.Vars(r)["id"])); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"message": "Order deleted"})
}

func (h *Handler) listBills(w http.ResponseWriter, r *http.Request, _ *domain.Session) {
	bills, summary, err := h.Bills.Bills(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"bills": bills, "summary": summary})
}

func (h *Handler) unbilledOrders(w http.ResponseWriter, r *http.Request, _ *domain.Session) {
	orders, err := h.Bills.Unbilled(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"orders": orders})
}

func (h *Handler) createBill(w http.ResponseWriter, r *http.Request, session *domain.Session) {
	var req domain.BillRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	bill, err := h.Bills.CreateBill(r.Context(), session, req.OrderID, req.PaymentMethod)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, envelope{"bill": bill})
}

func (h *Handler) billReceipt(w http.ResponseWriter, r *http.Request, _ *domain.Session) {
	receipt, err := h.Bills.Receipt(r.Context(), domain.ID(mux.Vars(r)["id"]))
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(receipt))
}

// billQRCode serves the feedback code printed on receipts.
func (h *Handler) billQRCode(w http.ResponseWriter, r *http.Request, _ *domain.Session) {
	png, err := h.Bills.ReceiptQR(r.Context(), domain.ID(mux.Vars(r)["id"]))
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) listTables(w http.ResponseWriter, r *http.Request) {
	tables, err := h.Reservations.Tables(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"tables": tables})
}

func (h *Handler) listReservations(w http.ResponseWriter, r *http.Request, _ *domain.Session) {
	reservations, err := h.Reservations.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"reservations": reservations})
}

// reserve is open to guests booking for themselves.
func (h *Handler) reserve(w http.ResponseWriter, r *http.Request) {
	var req domain.ReservationRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	result, err := h.Reservations.Reserve(r.Context(), sessionFrom(r.Context()), req.TableID, req.ReservationDetails)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, envelope{
		"reservation": result.Reservation,
		"table":       result.Table,
		"tables":      result.Tables,
	})
}

func (h *Handler) cancelReservation(w http.ResponseWriter, r *http.Request, session *domain.Session) {
	tables, err := h.Reservations.Cancel(r.Context(), session, domain.ID(mux.Vars(r)["id"]))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"message": "Reservation cancelled", "tables": tables})
}

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	list := h.Feedback.Load(r.Context())
	writeJSON(w, http.StatusOK, envelope{"reviews": list.Reviews, "stale": list.Stale})
}

func (h *Handler) submitReview(w http.ResponseWriter, r *http.Request) {
	var req domain.ReviewRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	review, err := h.Feedback.Submit(r.Context(), sessionFrom(r.Context()), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, envelope{"review": review})
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request, _ *domain.Session) {
	id, err := intVar(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.Feedback.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"message": "Review deleted"})
}

func (h *Handler) reviewStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, envelope{"stats": h.Feedback.Summary(r.Context())})
}

func (h *Handler) listEmployees(w http.ResponseWriter, r *http.Request, session *domain.Session) {
	employees, err := h.Auth.Employees(r.Context(), session)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"employees": employees})
}

// listJournal defaults to entries since local midnight.
func (h *Handler) listJournal(w http.ResponseWriter, r *http.Request, _ *domain.Session) {
	now := time.Now()
	since := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if raw := r.URL.Query().Get("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(w, r, domain.Validationf("since must be an RFC3339 timestamp"))
			return
		}
		since = parsed
	}
	entries, err := h.Activity.Journal(r.Context(), since)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"entries": entries})
}

func intVar(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil || id <= 0 {
		return 0, domain.Validationf("invalid %s", name)
	}
	return id, nil
}
