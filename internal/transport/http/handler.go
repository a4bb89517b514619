package http

import (
	"errors"
	"net/http"
	"strconv"

	"restaurant-service/internal/models"
	"restaurant-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderHandler struct {
	svc service.OrderService
	log *zap.Logger
}

func NewOrderHandler(svc service.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{svc: svc, log: log}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewValidationError(err.Error()))
		return
	}

	in, err := toCreateInput(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, NewValidationError(err.Error()))
		return
	}

	order, err := h.svc.CreateOrder(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) GetMy(c *gin.Context) {
	f := listFilterFromQuery(c)
	orders, total, err := h.svc.ListMyOrders(c.Request.Context(), f)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ListOrdersResponse{Orders: orders, Total: total})
}

func (h *OrderHandler) List(c *gin.Context) {
	f := listFilterFromQuery(c)
	orders, total, err := h.svc.ListOrders(c.Request.Context(), f)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ListOrdersResponse{Orders: orders, Total: total})
}

func (h *OrderHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, NewValidationError("invalid order id"))
		return
	}

	order, err := h.svc.GetOrder(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, NewValidationError("invalid order id"))
		return
	}

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, NewValidationError(err.Error()))
		return
	}

	order, err := h.svc.TransitionOrder(c.Request.Context(), id, models.OrderStatus(req.Status))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, NewValidationError("invalid order id"))
		return
	}

	if err := h.svc.DeleteOrder(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// respondError переводит сентинелы сервиса в HTTP-коды. Клиентские чтения
// чужих заказов приходят сюда уже как ErrOrderNotFound, поэтому утечки
// существования на этом уровне нет.
func (h *OrderHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, NewUnauthorizedError("unauthorized"))
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, NewForbiddenError("forbidden"))
	case errors.Is(err, service.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, NewNotFoundError("order not found"))
	case errors.Is(err, service.ErrItemNotFound):
		c.JSON(http.StatusBadRequest, NewValidationError(err.Error()))
	case errors.Is(err, service.ErrEmptyItems),
		errors.Is(err, service.ErrQuantityInvalid),
		errors.Is(err, service.ErrUnknownItemKind),
		errors.Is(err, service.ErrRestaurantRequired):
		c.JSON(http.StatusBadRequest, NewValidationError(err.Error()))
	case errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrStatusConflict):
		c.JSON(http.StatusConflict, NewConflictError(err.Error()))
	case errors.Is(err, service.ErrDeleteUnsupported):
		c.JSON(http.StatusNotImplemented, NewNotImplementedError(err.Error()))
	default:
		h.log.Error("Необработанная ошибка сервиса заказов", zap.Error(err))
		c.JSON(http.StatusInternalServerError, NewInternalError(""))
	}
}

func toCreateInput(req CreateOrderRequest) (service.CreateOrderInput, error) {
	restaurantID, err := uuid.Parse(req.RestaurantID)
	if err != nil {
		return service.CreateOrderInput{}, err
	}

	items := make([]service.CreateOrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		itemID, err := uuid.Parse(it.ItemID)
		if err != nil {
			return service.CreateOrderInput{}, err
		}
		items = append(items, service.CreateOrderItem{
			ItemID:   itemID,
			Quantity: it.Quantity,
			Kind:     models.ItemKind(it.Kind),
		})
	}

	return service.CreateOrderInput{
		City:          req.City,
		Address:       req.Address,
		PhoneNumber:   req.PhoneNumber,
		RestaurantID:  restaurantID,
		Items:         items,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: req.PaymentStatus,
	}, nil
}

func listFilterFromQuery(c *gin.Context) service.ListFilter {
	var f service.ListFilter
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.Offset = n
		}
	}
	if v := c.Query("status"); v != "" {
		st := models.OrderStatus(v)
		if st.Valid() {
			f.Status = &st
		}
	}
	return f
}
