// Package invoicehdl - Handler hóa đơn.
package invoicehdl

import (
	"fmt"

	authmodels "shop_commerce/internal/api/auth/models"
	basehdl "shop_commerce/internal/api/base/handler"
	invoicedto "shop_commerce/internal/api/invoice/dto"
	models "shop_commerce/internal/api/invoice/models"
	invoicesvc "shop_commerce/internal/api/invoice/service"
	"shop_commerce/internal/common"
	"shop_commerce/internal/logger"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InvoiceHandler xử lý các request liên quan đến hóa đơn
type InvoiceHandler struct {
	*basehdl.BaseHandler[models.Invoice, invoicedto.InvoiceCreateInput, invoicedto.InvoiceUpdateInput]
	InvoiceService *invoicesvc.InvoiceService
}

// NewInvoiceHandler tạo mới InvoiceHandler
func NewInvoiceHandler() (*InvoiceHandler, error) {
	invoiceService, err := invoicesvc.NewInvoiceService()
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice service: %v", err)
	}
	base := basehdl.NewBaseHandler[models.Invoice, invoicedto.InvoiceCreateInput, invoicedto.InvoiceUpdateInput](invoiceService)
	return &InvoiceHandler{
		BaseHandler:    base,
		InvoiceService: invoiceService,
	}, nil
}

// actorNameFromContext lấy tên hiển thị của người thao tác từ context xác thực.
func actorNameFromContext(c fiber.Ctx) string {
	if user, ok := c.Locals("user").(authmodels.User); ok {
		if user.Name != "" {
			return user.Name
		}
		return user.Email
	}
	return "unknown"
}

// loadInvoiceWithAccess load hóa đơn và kiểm tra quyền truy cập cửa hàng sở hữu.
func (h *InvoiceHandler) loadInvoiceWithAccess(c fiber.Ctx) (*models.Invoice, error) {
	id := h.GetIDFromContext(c)
	invoiceID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, err)
	}
	invoice, err := h.InvoiceService.FindOneById(c.Context(), invoiceID)
	if err != nil {
		return nil, err
	}
	if err := h.ValidateUserHasAccessToShop(c, invoice.OwnerShopID); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// HandleUpdateItems xử lý PUT /invoices/:id/items: thay toàn bộ dòng hàng
// và ghi các ChangeRecord vào lịch sử.
func (h *InvoiceHandler) HandleUpdateItems(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		invoice, err := h.loadInvoiceWithAccess(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		var input invoicedto.InvoiceUpdateItemsInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		newItems, err := invoicesvc.ParseLineItems(input.Items)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		actorName := actorNameFromContext(c)
		updated, records, err := h.InvoiceService.UpdateItems(c.Context(), invoice.ID, newItems, actorName)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogCRUD("update_items", "invoice", invoice.ID.Hex(), c, map[string]interface{}{
			"changeCount": len(records),
		})
		h.HandleResponse(c, fiber.Map{
			"invoice": updated,
			"changes": records,
		}, nil)
		return nil
	})
}

// HandleGetHistory xử lý GET /invoices/:id/history
func (h *InvoiceHandler) HandleGetHistory(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		invoice, err := h.loadInvoiceWithAccess(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		page, limit := h.ParsePagination(c)
		history, err := h.InvoiceService.GetHistory(c.Context(), invoice.ID, page, limit)
		h.HandleResponse(c, history, err)
		return nil
	})
}
