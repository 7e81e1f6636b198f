package domain

import "time"

type CatalogItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

type CartLine struct {
	ItemID    int     `json:"itemId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

type Order struct {
	OrderID      ID          `json:"orderId"`
	CustomerName string      `json:"customerName"`
	Phone        string      `json:"phone,omitempty"`
	EmployeeID   ID          `json:"empId,omitempty"`
	Items        []OrderItem `json:"items"`
	TotalAmount  float64     `json:"totalAmount"`
	Date         string      `json:"date"`
	Status       OrderStatus `json:"status"`
}

type OrderItem struct {
	ItemID   int     `json:"itemId"`
	Name     string  `json:"name,omitempty"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price,omitempty"`
}

// OrderRequest is the outbound order payload. Prices and totals are left to the
// backend.
type OrderRequest struct {
	CustomerName string             `json:"customerName"`
	Phone        string             `json:"phone"`
	EmployeeID   ID                 `json:"empId"`
	Items        []OrderRequestItem `json:"items"`
}

type OrderRequestItem struct {
	ItemID   int `json:"itemId"`
	Quantity int `json:"quantity"`
}

type PaymentMethod string

const (
	PaymentCash          PaymentMethod = "cash"
	PaymentCreditCard    PaymentMethod = "credit card"
	PaymentDebitCard     PaymentMethod = "debit card"
	PaymentMobilePayment PaymentMethod = "mobile payment"
)

var PaymentMethods = []PaymentMethod{PaymentCash, PaymentCreditCard, PaymentDebitCard, PaymentMobilePayment}

func (m PaymentMethod) Valid() bool {
	for _, known := range PaymentMethods {
		if m == known {
			return true
		}
	}
	return false
}

type Bill struct {
	BillID        ID            `json:"billId"`
	OrderID       ID            `json:"orderId"`
	Amount        float64       `json:"amount"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Date          string        `json:"date"`
}

type BillRequest struct {
	OrderID       ID            `json:"orderId"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}

type RevenueSummary struct {
	TotalRevenue float64 `json:"totalRevenue"`
	BillCount    int     `json:"billCount"`
	AverageBill  float64 `json:"averageBill"`
}

type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableReserved  TableStatus = "reserved"
)

type Table struct {
	ID            int         `json:"id"`
	Category      string      `json:"category"`
	Capacity      int         `json:"capacity"`
	Price         float64     `json:"price"`
	Status        TableStatus `json:"status"`
	CustomerName  string      `json:"customerName,omitempty"`
	ReservationID ID          `json:"reservationId,omitempty"`
}

// ReservationDetails is what staff or a guest fills in for a selected table.
type ReservationDetails struct {
	CustomerName    string        `json:"customerName"`
	Phone           string        `json:"phone"`
	ReservationDate string        `json:"reservationDate"`
	PartySize       int           `json:"partySize"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	PaymentAmount   float64       `json:"paymentAmount"`
	SpecialRequests string        `json:"specialRequests"`
}

type ReservationRequest struct {
	TableID int `json:"tableId"`
	ReservationDetails
	EmployeeID ID `json:"empId,omitempty"`
}

type Reservation struct {
	ReservationID   ID            `json:"reservationId"`
	TableID         int           `json:"tableId"`
	CustomerName    string        `json:"customerName"`
	Phone           string        `json:"phone,omitempty"`
	ReservationDate string        `json:"reservationDate"`
	PartySize       int           `json:"partySize"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	PaymentAmount   float64       `json:"paymentAmount"`
	SpecialRequests string        `json:"specialRequests,omitempty"`
	EmployeeID      ID            `json:"empId,omitempty"`
}

type Review struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

type ReviewRequest struct {
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type RatingBucket struct {
	Rating     int     `json:"rating"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// ReviewStats mirrors the backend /api/stats payload.
type ReviewStats struct {
	TotalReviews       int            `json:"total_reviews"`
	AverageRating      float64        `json:"average_rating"`
	RecentReviews7Days int            `json:"recent_reviews_7days"`
	RatingDistribution map[string]int `json:"rating_distribution"`
}

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCashier  Role = "cashier"
	RoleCustomer Role = "customer"
)

func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleCashier
}

type Employee struct {
	ID    ID     `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role,omitempty"`
}

type Session struct {
	ID        string    `json:"sessionId"`
	Employee  Employee  `json:"employee"`
	CreatedAt time.Time `json:"createdAt"`
}

type Event struct {
	Type       string    `json:"type"`
	Reference  string    `json:"reference"`
	EmployeeID string    `json:"employee_id,omitempty"`
	Amount     float64   `json:"amount,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

const (
	EventOrderSubmitted       = "order_submitted"
	EventOrderCancelled       = "order_cancelled"
	EventBillCreated          = "bill_created"
	EventReservationMade      = "reservation_made"
	EventReservationCancelled = "reservation_cancelled"
	EventReviewSubmitted      = "review_submitted"
	EventMenuChanged          = "menu_changed"
)

type JournalEntry struct {
	ID         int64     `json:"id"`
	Kind       string    `json:"kind"`
	Reference  string    `json:"reference"`
	EmployeeID string    `json:"employee_id"`
	Amount     float64   `json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
}
