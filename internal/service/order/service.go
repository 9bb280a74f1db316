package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"inkpaper-express/internal/domain"
	"inkpaper-express/internal/pricing"
)

type Service struct {
	orders   orderRepo
	carts    cartRepo
	products productRepo
	logger   *log.Logger
}

type orderRepo interface {
	List(ctx context.Context) ([]domain.Order, error)
	Get(ctx context.Context, id int) (*domain.Order, error)
	Create(ctx context.Context, in domain.Order) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id int, status string) (*domain.Order, error)
}

type cartRepo interface {
	ListBySession(ctx context.Context, sessionID string) ([]domain.CartItem, error)
	ClearSession(ctx context.Context, sessionID string) error
}

type productRepo interface {
	Get(ctx context.Context, id int) (*domain.Product, error)
}

func New(orders orderRepo, carts cartRepo, products productRepo, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{orders: orders, carts: carts, products: products, logger: logger}
}

type CheckoutInput struct {
	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail"`
	CustomerPhone   string `json:"customerPhone"`
	ShippingAddress string `json:"shippingAddress"`
	SessionID       string `json:"sessionId"`
}

func (s *Service) List(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Order, error) {
	return s.orders.Get(ctx, id)
}

// Checkout turns a session's cart into an order and empties the cart in
// one service call, so there is no client-visible boundary between the
// two mutations. Cart rows whose product has been deleted are dropped
// from the snapshot. Totals are recomputed here; nothing client-supplied
// is trusted.
func (s *Service) Checkout(ctx context.Context, in CheckoutInput) (*domain.Order, error) {
	ve := &domain.ValidationError{}
	if strings.TrimSpace(in.CustomerName) == "" {
		ve.Add("customerName", "required")
	}
	if !strings.Contains(in.CustomerEmail, "@") {
		ve.Add("customerEmail", "must be an email address")
	}
	if strings.TrimSpace(in.CustomerPhone) == "" {
		ve.Add("customerPhone", "required")
	}
	if strings.TrimSpace(in.ShippingAddress) == "" {
		ve.Add("shippingAddress", "required")
	}
	if strings.TrimSpace(in.SessionID) == "" {
		ve.Add("sessionId", "required")
	}
	if err := ve.Err(); err != nil {
		return nil, err
	}

	items, err := s.carts.ListBySession(ctx, in.SessionID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	var (
		lines    []pricing.Line
		snapshot []domain.OrderItem
	)
	for _, item := range items {
		p, err := s.products.Get(ctx, item.ProductID)
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Printf("order service: checkout session=%s skipping deleted product id=%d", in.SessionID, item.ProductID)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("resolve product %d: %w", item.ProductID, err)
		}
		unit, err := pricing.ParsePrice(p.Price)
		if err != nil {
			return nil, fmt.Errorf("product %d: %w", p.ID, err)
		}
		lines = append(lines, pricing.Line{UnitPrice: unit, Quantity: item.Quantity})
		snapshot = append(snapshot, domain.OrderItem{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  item.Quantity,
		})
	}
	if len(snapshot) == 0 {
		ve := &domain.ValidationError{}
		return nil, ve.Add("sessionId", "cart is empty")
	}

	totals := pricing.Calculate(lines)
	encoded, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("encode items snapshot: %w", err)
	}

	created, err := s.orders.Create(ctx, domain.Order{
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerPhone:   in.CustomerPhone,
		ShippingAddress: in.ShippingAddress,
		Total:           pricing.FormatAmount(totals.Total),
		Status:          domain.StatusProcessing,
		Items:           string(encoded),
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	if err := s.carts.ClearSession(ctx, in.SessionID); err != nil {
		// The order stands; an orphaned cart beats losing the sale.
		s.logger.Printf("order service: checkout order=%d clear session=%s failed: %v", created.ID, in.SessionID, err)
	}

	s.logger.Printf("order service: checkout order=%d session=%s total=%s items=%d", created.ID, in.SessionID, created.Total, len(snapshot))
	return created, nil
}

// transitions is the legal status graph: Processing -> In Transit ->
// Delivered, with Cancelled reachable from any non-terminal status.
var transitions = map[string][]string{
	domain.StatusProcessing: {domain.StatusInTransit, domain.StatusCancelled},
	domain.StatusInTransit:  {domain.StatusDelivered, domain.StatusCancelled},
	domain.StatusDelivered:  {},
	domain.StatusCancelled:  {},
}

// UpdateStatus advances an order along the status graph. Setting the
// current status again is a no-op success.
func (s *Service) UpdateStatus(ctx context.Context, id int, status string) (*domain.Order, error) {
	if !domain.ValidOrderStatus(status) {
		ve := &domain.ValidationError{}
		return nil, ve.Add("status", "unknown status")
	}

	current, err := s.orders.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == status {
		return current, nil
	}
	if !transitionAllowed(current.Status, status) {
		ve := &domain.ValidationError{}
		return nil, ve.Add("status", fmt.Sprintf("cannot transition from %s to %s", current.Status, status))
	}

	updated, err := s.orders.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	s.logger.Printf("order service: order=%d status %s -> %s", id, current.Status, status)
	return updated, nil
}

func transitionAllowed(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Track finds an order by id, exact customer email, or case-insensitive
// customer-name substring, and decorates it with the display timeline,
// a synthetic tracking number and the estimated delivery date.
func (s *Service) Track(ctx context.Context, identifier string) (*TrackedOrder, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(identifier)
	for _, o := range orders {
		if strconv.Itoa(o.ID) == identifier ||
			o.CustomerEmail == identifier ||
			strings.Contains(strings.ToLower(o.CustomerName), needle) {
			tracked := &TrackedOrder{
				Order:             o,
				Timeline:          Timeline(o),
				TrackingNumber:    fmt.Sprintf("USPS%012d", o.ID),
				EstimatedDelivery: o.CreatedAt.Add(deliveredOffset).Format("January 2, 2006"),
			}
			return tracked, nil
		}
	}
	return nil, domain.ErrNotFound
}
