package client

import (
	"errors"
	"fmt"

	"restaurant-pos/pos-svc/internal/domain"
)

type menuResponse struct {
	Menu []domain.CatalogItem `json:"menu"`
}

func (r menuResponse) validate() error {
	for i, item := range r.Menu {
		if err := validateCatalogItem(item); err != nil {
			return fmt.Errorf("menu[%d]: %w", i, err)
		}
	}
	return nil
}

type menuItemResponse struct {
	Item *domain.CatalogItem `json:"item"`
}

func (r menuItemResponse) validate() error {
	if r.Item == nil {
		return errors.New("missing item")
	}
	return validateCatalogItem(*r.Item)
}

func validateCatalogItem(item domain.CatalogItem) error {
	switch {
	case item.ID <= 0:
		return fmt.Errorf("invalid item id %d", item.ID)
	case item.Name == "":
		return fmt.Errorf("item %d has no name", item.ID)
	case item.Price < 0:
		return fmt.Errorf("item %d has negative price", item.ID)
	}
	return nil
}

type categoriesResponse struct {
	Categories []string `json:"categories"`
}

type orderResponse struct {
	Order *domain.Order `json:"order"`
}

func (r orderResponse) validate() error {
	if r.Order == nil {
		return errors.New("missing order")
	}
	return validateOrder(*r.Order)
}

type ordersResponse struct {
	Orders []domain.Order `json:"orders"`
}

func (r ordersResponse) validate() error {
	for i, order := range r.Orders {
		if err := validateOrder(order); err != nil {
			return fmt.Errorf("orders[%d]: %w", i, err)
		}
	}
	return nil
}

func validateOrder(order domain.Order) error {
	switch {
	case order.OrderID.Empty():
		return errors.New("order has no orderId")
	case order.TotalAmount < 0:
		return fmt.Errorf("order %s has negative totalAmount", order.OrderID)
	case !order.Status.Valid():
		return fmt.Errorf("order %s has unknown status %q", order.OrderID, order.Status)
	}
	return nil
}

type billResponse struct {
	Bill *domain.Bill `json:"bill"`
}

func (r billResponse) validate() error {
	if r.Bill == nil {
		return errors.New("missing bill")
	}
	return validateBill(*r.Bill)
}

type billsResponse struct {
	Bills []domain.Bill `json:"bills"`
}

func (r billsResponse) validate() error {
	for i, bill := range r.Bills {
		if err := validateBill(bill); err != nil {
			return fmt.Errorf("bills[%d]: %w", i, err)
		}
	}
	return nil
}

func validateBill(bill domain.Bill) error {
	switch {
	case bill.BillID.Empty():
		return errors.New("bill has no billId")
	case bill.OrderID.Empty():
		return fmt.Errorf("bill %s has no orderId", bill.BillID)
	case bill.Amount < 0:
		return fmt.Errorf("bill %s has negative amount", bill.BillID)
	case !bill.PaymentMethod.Valid():
		return fmt.Errorf("bill %s has unknown payment method %q", bill.BillID, bill.PaymentMethod)
	}
	return nil
}

type tablesResponse struct {
	Tables []domain.Table `json:"tables"`
}

func (r tablesResponse) validate() error {
	for i, table := range r.Tables {
		switch {
		case table.ID <= 0:
			return fmt.Errorf("tables[%d]: invalid id %d", i, table.ID)
		case table.Capacity <= 0:
			return fmt.Errorf("tables[%d]: table %d has capacity %d", i, table.ID, table.Capacity)
		case table.Price < 0:
			return fmt.Errorf("tables[%d]: table %d has negative price", i, table.ID)
		case table.Status != domain.TableAvailable && table.Status != domain.TableReserved:
			return fmt.Errorf("tables[%d]: table %d has unknown status %q", i, table.ID, table.Status)
		}
	}
	return nil
}

type reservationResponse struct {
	Reservation *domain.Reservation `json:"reservation"`
}

func (r reservationResponse) validate() error {
	if r.Reservation == nil {
		return errors.New("missing reservation")
	}
	return validateReservation(*r.Reservation)
}

type reservationsResponse struct {
	Reservations []domain.Reservation `json:"reservations"`
}

func (r reservationsResponse) validate() error {
	for i, res := range r.Reservations {
		if err := validateReservation(res); err != nil {
			return fmt.Errorf("reservations[%d]: %w", i, err)
		}
	}
	return nil
}

func validateReservation(res domain.Reservation) error {
	if res.ReservationID.Empty() {
		return errors.New("reservation has no reservationId")
	}
	if res.TableID <= 0 {
		return fmt.Errorf("reservation %s has invalid tableId %d", res.ReservationID, res.TableID)
	}
	return nil
}

type reviewResponse struct {
	Review *domain.Review `json:"review"`
}

func (r reviewResponse) validate() error {
	if r.Review == nil {
		return errors.New("missing review")
	}
	return validateReview(*r.Review)
}

type reviewsResponse struct {
	Reviews []domain.Review `json:"reviews"`
}

func (r reviewsResponse) validate() error {
	for i, review := range r.Reviews {
		if err := validateReview(review); err != nil {
			return fmt.Errorf("reviews[%d]: %w", i, err)
		}
	}
	return nil
}

func validateReview(review domain.Review) error {
	if review.ID <= 0 {
		return fmt.Errorf("invalid review id %d", review.ID)
	}
	if review.Rating < 1 || review.Rating > 5 {
		return fmt.Errorf("review %d has rating %d", review.ID, review.Rating)
	}
	return nil
}

type statsResponse struct {
	Stats *domain.ReviewStats `json:"stats"`
}

func (r statsResponse) validate() error {
	if r.Stats == nil {
		return errors.New("missing stats")
	}
	return nil
}

type employeeResponse struct {
	Employee *domain.Employee `json:"employee"`
}

func (r employeeResponse) validate() error {
	if r.Employee == nil {
		return errors.New("missing employee")
	}
	return validateEmployee(*r.Employee)
}

type employeesResponse struct {
	Employees []domain.Employee `json:"employees"`
}

func (r employeesResponse) validate() error {
	for i, emp := range r.Employees {
		if err := validateEmployee(emp); err != nil {
			return fmt.Errorf("employees[%d]: %w", i, err)
		}
	}
	return nil
}

func validateEmployee(emp domain.Employee) error {
	if emp.ID.Empty() {
		return errors.New("employee has no id")
	}
	if emp.Email == "" {
		return fmt.Errorf("employee %s has no email", emp.ID)
	}
	return nil
}
