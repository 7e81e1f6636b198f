package service

import (
	"context"
	"log"
	"strconv"
	"strings"

	"restaurant-pos/pos-svc/internal/domain"
)

const fallbackReservationFee = 2.00

// Validate checks a reservation against the selected table. Rules run in a
// fixed order and the first failure is reported.
func Validate(table domain.Table, customerName, reservationDate string, partySize int, paymentAmount float64) error {
	switch {
	case strings.TrimSpace(customerName) == "":
		return domain.Validationf("Please enter your name")
	case strings.TrimSpace(reservationDate) == "":
		return domain.Validationf("Please select a reservation date")
	case partySize < 1:
		return domain.Validationf("Party size must be at least 1")
	case partySize > table.Capacity:
		return domain.Validationf("Party size (%d) exceeds table capacity (%d). Please select a larger table.", partySize, table.Capacity)
	case paymentAmount <= 0:
		return domain.Validationf("Payment amount must be greater than 0")
	}
	return nil
}

// DefaultFee is the reservation fee for a table. Callers cannot override it.
func DefaultFee(table domain.Table) float64 {
	if table.Price <= 0 {
		return fallbackReservationFee
	}
	return table.Price
}

// ReservationResult is a confirmed reservation with the tables as fetched
// after it. Table is nil when that fetch failed.
type ReservationResult struct {
	Reservation *domain.Reservation `json:"reservation"`
	Table       *domain.Table       `json:"table,omitempty"`
	Tables      []domain.Table      `json:"tables"`
}

// ReservationManager books and cancels tables. Table state is always read back
// from the backend and never flipped locally.
type ReservationManager struct {
	api      ReservationAPI
	guard    SubmitGuard
	activity *Activity
}

func NewReservationManager(api ReservationAPI, guard SubmitGuard, activity *Activity) *ReservationManager {
	return &ReservationManager{api: api, guard: guard, activity: activity}
}

func (m *ReservationManager) Tables(ctx context.Context) ([]domain.Table, error) {
	return m.api.ListTables(ctx)
}

func (m *ReservationManager) List(ctx context.Context) ([]domain.Reservation, error) {
	return m.api.ListReservations(ctx)
}

func (m *ReservationManager) Reserve(ctx context.Context, session *domain.Session, tableID int, details domain.ReservationDetails) (*ReservationResult, error) {
	var reservation *domain.Reservation
	err := guarded(ctx, m.guard, guardKey("reservation", session, strconv.Itoa(tableID)), func() error {
		tables, err := m.api.ListTables(ctx)
		if err != nil {
			return err
		}
		table := findTable(tables, tableID)
		if table == nil {
			return domain.NotFoundf("table %d not found", tableID)
		}

		details.CustomerName = strings.TrimSpace(details.CustomerName)
		details.Phone = strings.TrimSpace(details.Phone)
		details.SpecialRequests = strings.TrimSpace(details.SpecialRequests)
		details.PaymentAmount = DefaultFee(*table)
		if details.PaymentMethod == "" {
			details.PaymentMethod = domain.PaymentCash
		}
		if !details.PaymentMethod.Valid() {
			return domain.Validationf("unknown payment method %q", details.PaymentMethod)
		}
		if err := Validate(*table, details.CustomerName, details.ReservationDate, details.PartySize, details.PaymentAmount); err != nil {
			return err
		}
		if table.Status != domain.TableAvailable {
			return domain.Conflictf("Table %d is no longer available", table.ID)
		}

		created, err := m.api.CreateReservation(ctx, domain.ReservationRequest{
			TableID:            table.ID,
			ReservationDetails: details,
			EmployeeID:         employeeOf(session),
		})
		if err != nil {
			return err
		}
		reservation = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	m.activity.Confirmed(ctx, domain.EventReservationMade, reservation.ReservationID.String(), employeeOf(session), reservation.PaymentAmount)

	result := &ReservationResult{Reservation: reservation, Tables: m.refreshTables(ctx)}
	result.Table = findTable(result.Tables, tableID)
	return result, nil
}

// Cancel removes a reservation and returns the tables fetched afterwards. Only
// staff may cancel; the check runs before the backend is called.
func (m *ReservationManager) Cancel(ctx context.Context, session *domain.Session, reservationID domain.ID) ([]domain.Table, error) {
	if err := requireStaff(session, "cancel reservations"); err != nil {
		return nil, err
	}
	if reservationID.Empty() {
		return nil, domain.Validationf("reservation id is required")
	}
	if err := m.api.DeleteReservation(ctx, reservationID); err != nil {
		return nil, err
	}

	m.activity.Confirmed(ctx, domain.EventReservationCancelled, reservationID.String(), employeeOf(session), 0)
	return m.refreshTables(ctx), nil
}

// refreshTables runs after a confirmed mutation. A failure here must not turn
// the confirmed mutation into an error, so it is logged and nil is returned.
func (m *ReservationManager) refreshTables(ctx context.Context) []domain.Table {
	tables, err := m.api.ListTables(ctx)
	if err != nil {
		log.Printf("[pos-svc] refresh tables: %v", err)
		return nil
	}
	return tables
}

func findTable(tables []domain.Table, id int) *domain.Table {
	for i := range tables {
		if tables[i].ID == id {
			table := tables[i]
			return &table
		}
	}
	return nil
}
