// Package reminderhdl - Handler mẫu tin nhắn nhắc hẹn.
package reminderhdl

import (
	"fmt"

	basehdl "shop_commerce/internal/api/base/handler"
	invoicesvc "shop_commerce/internal/api/invoice/service"
	reminderdto "shop_commerce/internal/api/reminder/dto"
	models "shop_commerce/internal/api/reminder/models"
	remindersvc "shop_commerce/internal/api/reminder/service"
	"shop_commerce/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReminderTemplateHandler xử lý các request liên quan đến mẫu nhắc hẹn
type ReminderTemplateHandler struct {
	*basehdl.BaseHandler[models.ReminderTemplate, reminderdto.ReminderTemplateCreateInput, reminderdto.ReminderTemplateUpdateInput]
	TemplateService *remindersvc.ReminderTemplateService
}

// NewReminderTemplateHandler tạo mới ReminderTemplateHandler
func NewReminderTemplateHandler() (*ReminderTemplateHandler, error) {
	templateService, err := remindersvc.NewReminderTemplateService()
	if err != nil {
		return nil, fmt.Errorf("failed to create reminder template service: %v", err)
	}
	base := basehdl.NewBaseHandler[models.ReminderTemplate, reminderdto.ReminderTemplateCreateInput, reminderdto.ReminderTemplateUpdateInput](templateService)
	return &ReminderTemplateHandler{
		BaseHandler:     base,
		TemplateService: templateService,
	}, nil
}

// HandleRender xử lý POST /reminder-templates/:id/render: render mẫu với dữ
// liệu thực và trả về nội dung cùng deep-link gửi qua kênh của mẫu.
func (h *ReminderTemplateHandler) HandleRender(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := h.GetIDFromContext(c)
		templateID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, err))
			return nil
		}
		template, err := h.TemplateService.FindOneById(c.Context(), templateID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateUserHasAccessToShop(c, template.OwnerShopID); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if !template.IsActive {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeBusinessState, "Mẫu nhắc hẹn đang tắt.", common.StatusBadRequest, nil))
			return nil
		}
		var input reminderdto.ReminderRenderInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		content, link := h.TemplateService.Render(&template, input.Variables, input.Phone)
		h.HandleResponse(c, fiber.Map{
			"channel":  template.Channel,
			"content":  content,
			"sendLink": link,
		}, nil)
		return nil
	})
}

// HandleRenderInvoice xử lý POST /reminder-templates/:id/render-invoice:
// render mẫu từ dữ liệu một hóa đơn. Các biến dựng sẵn: customerName, code,
// total, status; Variables trong body ghi đè khi trùng tên.
func (h *ReminderTemplateHandler) HandleRenderInvoice(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := h.GetIDFromContext(c)
		templateID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, err))
			return nil
		}
		template, err := h.TemplateService.FindOneById(c.Context(), templateID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateUserHasAccessToShop(c, template.OwnerShopID); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if !template.IsActive {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeBusinessState, "Mẫu nhắc hẹn đang tắt.", common.StatusBadRequest, nil))
			return nil
		}
		var input reminderdto.ReminderRenderInvoiceInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		invoiceID, err := primitive.ObjectIDFromHex(input.InvoiceID)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "invoiceId không hợp lệ", common.StatusBadRequest, err))
			return nil
		}
		invoiceService, err := invoicesvc.NewInvoiceService()
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeInternalServer, "Không thể khởi tạo InvoiceService", common.StatusInternalServerError, err))
			return nil
		}
		invoice, err := invoiceService.FindOneById(c.Context(), invoiceID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateUserHasAccessToShop(c, invoice.OwnerShopID); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		variables := map[string]string{
			"customerName": invoice.CustomerName,
			"code":         invoice.Code,
			"total":        fmt.Sprintf("%.0f", invoice.Total),
			"status":       invoice.Status,
		}
		for k, v := range input.Variables {
			variables[k] = v
		}
		content, link := h.TemplateService.Render(&template, variables, invoice.CustomerPhone)
		h.HandleResponse(c, fiber.Map{
			"channel":  template.Channel,
			"content":  content,
			"sendLink": link,
		}, nil)
		return nil
	})
}

// HandleExtractVariables xử lý GET /reminder-templates/:id/variables
func (h *ReminderTemplateHandler) HandleExtractVariables(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := h.GetIDFromContext(c)
		templateID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, err))
			return nil
		}
		template, err := h.TemplateService.FindOneById(c.Context(), templateID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateUserHasAccessToShop(c, template.OwnerShopID); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, remindersvc.ExtractVariables(template.Content), nil)
		return nil
	})
}
