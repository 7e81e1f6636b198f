package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"restaurant-pos/pos-svc/internal/domain"
)

func (c *Client) ListMenu(ctx context.Context) ([]domain.CatalogItem, error) {
	var resp menuResponse
	if err := c.do(ctx, http.MethodGet, "/api/menu", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Menu, nil
}

func (c *Client) GetMenuItem(ctx context.Context, id int) (*domain.CatalogItem, error) {
	var resp menuItemResponse
	if err := c.do(ctx, http.MethodGet, "/api/menu/"+strconv.Itoa(id), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Item, nil
}

func (c *Client) CreateMenuItem(ctx context.Context, item domain.CatalogItem) (*domain.CatalogItem, error) {
	var resp menuItemResponse
	if err := c.do(ctx, http.MethodPost, "/api/menu", item, &resp); err != nil {
		return nil, err
	}
	return resp.Item, nil
}

func (c *Client) UpdateMenuItem(ctx context.Context, item domain.CatalogItem) (*domain.CatalogItem, error) {
	var resp menuItemResponse
	if err := c.do(ctx, http.MethodPut, "/api/menu/"+strconv.Itoa(item.ID), item, &resp); err != nil {
		return nil, err
	}
	return resp.Item, nil
}

func (c *Client) DeleteMenuItem(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/api/menu/"+strconv.Itoa(id), nil, nil)
}

func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	var resp categoriesResponse
	if err := c.do(ctx, http.MethodGet, "/api/menu/categories", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

func (c *Client) CreateOrder(ctx context.Context, req domain.OrderRequest) (*domain.Order, error) {
	var resp orderResponse
	if err := c.do(ctx, http.MethodPost, "/api/orders", req, &resp); err != nil {
		return nil, err
	}
	return resp.Order, nil
}

func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var resp ordersResponse
	if err := c.do(ctx, http.MethodGet, "/api/orders", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

func (c *Client) GetOrder(ctx context.Context, orderID domain.ID) (*domain.Order, error) {
	var resp orderResponse
	if err := c.do(ctx, http.MethodGet, "/api/orders/"+url.PathEscape(orderID.String()), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Order, nil
}

func (c *Client) DeleteOrder(ctx context.Context, orderID domain.ID) error {
	return c.do(ctx, http.MethodDelete, "/api/orders/"+url.PathEscape(orderID.String()), nil, nil)
}

func (c *Client) CreateBill(ctx context.Context, req domain.BillRequest) (*domain.Bill, error) {
	var resp billResponse
	if err := c.do(ctx, http.MethodPost, "/api/bills", req, &resp); err != nil {
		return nil, err
	}
	return resp.Bill, nil
}

func (c *Client) ListBills(ctx context.Context) ([]domain.Bill, error) {
	var resp billsResponse
	if err := c.do(ctx, http.MethodGet, "/api/bills", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Bills, nil
}

func (c *Client) GetBill(ctx context.Context, billID domain.ID) (*domain.Bill, error) {
	var resp billResponse
	if err := c.do(ctx, http.MethodGet, "/api/bills/"+url.PathEscape(billID.String()), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Bill, nil
}

func (c *Client) ListTables(ctx context.Context) ([]domain.Table, error) {
	var resp tablesResponse
	if err := c.do(ctx, http.MethodGet, "/api/tables", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Tables, nil
}

func (c *Client) CreateReservation(ctx context.Context, req domain.ReservationRequest) (*domain.Reservation, error) {
	var resp reservationResponse
	if err := c.do(ctx, http.MethodPost, "/api/reservations", req, &resp); err != nil {
		return nil, err
	}
	return resp.Reservation, nil
}

func (c *Client) ListReservations(ctx context.Context) ([]domain.Reservation, error) {
	var resp reservationsResponse
	if err := c.do(ctx, http.MethodGet, "/api/reservations", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Reservations, nil
}

func (c *Client) DeleteReservation(ctx context.Context, reservationID domain.ID) error {
	return c.do(ctx, http.MethodDelete, "/api/reservations/"+url.PathEscape(reservationID.String()), nil, nil)
}

func (c *Client) ListReviews(ctx context.Context) ([]domain.Review, error) {
	var resp reviewsResponse
	if err := c.do(ctx, http.MethodGet, "/api/reviews", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Reviews, nil
}

func (c *Client) CreateReview(ctx context.Context, req domain.ReviewRequest) (*domain.Review, error) {
	var resp reviewResponse
	if err := c.do(ctx, http.MethodPost, "/api/reviews", req, &resp); err != nil {
		return nil, err
	}
	return resp.Review, nil
}

func (c *Client) DeleteReview(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/api/reviews/"+strconv.Itoa(id), nil, nil)
}

func (c *Client) Stats(ctx context.Context) (*domain.ReviewStats, error) {
	var resp statsResponse
	if err := c.do(ctx, http.MethodGet, "/api/stats", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Stats, nil
}

func (c *Client) SignIn(ctx context.Context, creds domain.Credentials) (*domain.Employee, error) {
	var resp employeeResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/signin", creds, &resp); err != nil {
		return nil, err
	}
	return resp.Employee, nil
}

func (c *Client) SignUp(ctx context.Context, creds domain.Credentials) (*domain.Employee, error) {
	var resp employeeResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/signup", creds, &resp); err != nil {
		return nil, err
	}
	return resp.Employee, nil
}

func (c *Client) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	var resp employeesResponse
	if err := c.do(ctx, http.MethodGet, "/api/employees", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Employees, nil
}

func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/health", nil, nil)
}
