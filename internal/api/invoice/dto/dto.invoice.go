// Package dto - DTO cho domain invoice.
package dto

// LineItemInput một dòng hàng trong body request.
type LineItemInput struct {
	ProductID   string  `json:"productId" validate:"required"`
	ProductName string  `json:"productName" validate:"required,no_xss" maxLength:"300"`
	Quantity    int64   `json:"quantity" validate:"gte=0"`
	UnitPrice   float64 `json:"unitPrice" validate:"gte=0"`
}

// InvoiceCreateInput đầu vào tạo hóa đơn.
type InvoiceCreateInput struct {
	OwnerShopID   string          `json:"ownerShopId,omitempty" transform:"str_objectid,optional"`
	Code          string          `json:"code" validate:"required,no_xss" maxLength:"50"`
	CustomerName  string          `json:"customerName,omitempty" validate:"omitempty,no_xss" maxLength:"200"`
	CustomerPhone string          `json:"customerPhone,omitempty" maxLength:"20"`
	Items         []LineItemInput `json:"items" validate:"required,dive"`
	Status        string          `json:"status,omitempty" validate:"omitempty,oneof=draft confirmed paid cancelled"`
	Note          string          `json:"note,omitempty" validate:"omitempty,no_xss" maxLength:"1000"`
}

// InvoiceUpdateInput đầu vào cập nhật thông tin chung của hóa đơn
// (không gồm dòng hàng, dòng hàng đi qua endpoint update-items riêng).
type InvoiceUpdateInput struct {
	CustomerName  string `json:"customerName,omitempty" validate:"omitempty,no_xss" maxLength:"200"`
	CustomerPhone string `json:"customerPhone,omitempty" maxLength:"20"`
	Status        string `json:"status,omitempty" validate:"omitempty,oneof=draft confirmed paid cancelled"`
	Note          string `json:"note,omitempty" validate:"omitempty,no_xss" maxLength:"1000"`
}

// InvoiceUpdateItemsInput đầu vào thay thế toàn bộ dòng hàng của hóa đơn.
type InvoiceUpdateItemsInput struct {
	Items []LineItemInput `json:"items" validate:"required,dive"`
}
