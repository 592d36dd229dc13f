// Package dto - DTO cho domain reminder.
package dto

// ReminderTemplateCreateInput đầu vào tạo mẫu nhắc hẹn.
type ReminderTemplateCreateInput struct {
	OwnerShopID string   `json:"ownerShopId,omitempty" transform:"str_objectid,optional"`
	Name        string   `json:"name" validate:"required,no_xss" maxLength:"200"`
	Channel     string   `json:"channel" validate:"required,oneof=whatsapp telegram"`
	Description string   `json:"description,omitempty" validate:"omitempty,no_xss" maxLength:"1000"`
	Content     string   `json:"content" validate:"required" maxLength:"4000"`
	Variables   []string `json:"variables,omitempty"`
	IsActive    bool     `json:"isActive"`
}

// ReminderTemplateUpdateInput đầu vào cập nhật mẫu nhắc hẹn.
type ReminderTemplateUpdateInput struct {
	Name        string   `json:"name,omitempty" validate:"omitempty,no_xss" maxLength:"200"`
	Channel     string   `json:"channel,omitempty" validate:"omitempty,oneof=whatsapp telegram"`
	Description string   `json:"description,omitempty" validate:"omitempty,no_xss" maxLength:"1000"`
	Content     string   `json:"content,omitempty" maxLength:"4000"`
	Variables   []string `json:"variables,omitempty"`
	IsActive    *bool    `json:"isActive,omitempty"`
}

// ReminderRenderInput đầu vào render một mẫu với dữ liệu thực.
type ReminderRenderInput struct {
	Variables map[string]string `json:"variables"`
	Phone     string            `json:"phone,omitempty" maxLength:"20"`
}

// ReminderRenderInvoiceInput đầu vào render một mẫu từ dữ liệu hóa đơn.
// Variables bổ sung ghi đè các biến dựng sẵn từ hóa đơn.
type ReminderRenderInvoiceInput struct {
	InvoiceID string            `json:"invoiceId" validate:"required"`
	Variables map[string]string `json:"variables,omitempty"`
}
