package http

import (
	"errors"
	"net/http"

	"coffeeshop/internal/core/application/shop"
	"coffeeshop/internal/core/domain/model/menu"
	"coffeeshop/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server exposes the shop over HTTP. It translates between JSON payloads and
// the shop's domain surface.
type Server struct {
	shop *shop.Shop
}

// NewServer creates a new HTTP server backed by the given shop.
func NewServer(s *shop.Shop) *Server {
	return &Server{shop: s}
}

// RegisterRoutes attaches the API endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/orders", s.CreateOrder)
	e.GET("/api/v1/orders/board", s.GetBoard)
}

// NewOrder is the request body for order creation.
type NewOrder struct {
	Customer string `json:"customer"`
	Item     string `json:"item"`
}

// Order is the JSON representation of an order snapshot.
type Order struct {
	ID       string `json:"id"`
	Customer string `json:"customer"`
	Item     string `json:"item"`
	Status   string `json:"status"`
	Worker   string `json:"worker,omitempty"`
}

// Board is the partitioned view of the order set.
type Board struct {
	Ordered    []Order `json:"ordered"`
	InProgress []Order `json:"inProgress"`
	Completed  []Order `json:"completed"`
	Canceled   []Order `json:"canceled"`
}

// Error is the JSON error envelope.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	kind, err := menu.KindFromString(newOrder.Item)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Unknown menu item: " + newOrder.Item,
		})
	}

	o, err := s.shop.Order(newOrder.Customer, kind)
	if err != nil {
		if errors.Is(err, shop.ErrShopClosed) {
			return ctx.JSON(http.StatusServiceUnavailable, Error{
				Code:    http.StatusServiceUnavailable,
				Message: "Shop is closed",
			})
		}
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	return ctx.JSON(http.StatusCreated, toOrder(o))
}

// GetBoard handles GET /api/v1/orders/board - retrieves the board partitions.
func (s *Server) GetBoard(ctx echo.Context) error {
	board := s.shop.Board()

	return ctx.JSON(http.StatusOK, Board{
		Ordered:    toOrders(board.Ordered),
		InProgress: toOrders(board.InProgress),
		Completed:  toOrders(board.Completed),
		Canceled:   toOrders(board.Canceled),
	})
}

func toOrder(o order.Order) Order {
	dto := Order{
		ID:       o.ID().String(),
		Customer: o.Customer(),
		Item:     o.Item().Kind().String(),
		Status:   o.Status().String(),
	}
	if o.Worker() != nil {
		dto.Worker = o.Worker().String()
	}
	return dto
}

func toOrders(orders []order.Order) []Order {
	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}
	return response
}
