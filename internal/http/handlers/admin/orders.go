package admin

import (
	"strconv"

	"github.com/kirana-store/kirana/internal/http/handlers/shared"
	"github.com/kirana-store/kirana/internal/http/response"
	"github.com/kirana-store/kirana/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListOrders returns a filtered page of orders.
func (h *Handler) ListOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = shared.NormalizePagination(page, pageSize)

	orders, total, err := h.OrderService.ListAdmin(repository.OrderListFilter{
		Page:         page,
		PageSize:     pageSize,
		Status:       c.Query("status"),
		DeliveryType: c.Query("delivery_type"),
		OrderNo:      c.Query("order_no"),
		Phone:        c.Query("phone"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "order list failed", err)
		return
	}

	response.SuccessWithPage(c, orders, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// GetOrder returns one order with its item snapshots.
func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	order, err := h.OrderRepo.GetByID(id)
	if err != nil {
		respondError(c, response.CodeInternal, "order fetch failed", err)
		return
	}
	if order == nil {
		respondError(c, response.CodeNotFound, "order not found", nil)
		return
	}
	response.Success(c, order)
}

// MarkOrderPaid settles an order out of band, typically cash on handover.
func (h *Handler) MarkOrderPaid(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	order, err := h.OrderService.AdminMarkPaid(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, order)
}

// CancelOrder cancels a pending order.
func (h *Handler) CancelOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	order, err := h.OrderService.AdminCancel(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, order)
}
