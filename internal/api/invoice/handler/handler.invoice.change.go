// Package invoicehdl - Handler lịch sử thay đổi hóa đơn (read-only).
package invoicehdl

import (
	"fmt"

	basehdl "shop_commerce/internal/api/base/handler"
	models "shop_commerce/internal/api/invoice/models"
	invoicesvc "shop_commerce/internal/api/invoice/service"
)

// InvoiceChangeHandler chỉ phục vụ đọc, collection là append-only.
type InvoiceChangeHandler struct {
	*basehdl.BaseHandler[models.InvoiceChange, models.InvoiceChange, models.InvoiceChange]
	ChangeService *invoicesvc.InvoiceChangeService
}

// NewInvoiceChangeHandler tạo mới InvoiceChangeHandler
func NewInvoiceChangeHandler() (*InvoiceChangeHandler, error) {
	changeService, err := invoicesvc.NewInvoiceChangeService()
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice change service: %v", err)
	}
	base := basehdl.NewBaseHandler[models.InvoiceChange, models.InvoiceChange, models.InvoiceChange](changeService)
	// Lịch sử chỉ tra theo hóa đơn hoặc người thao tác, không mở filter sâu
	base.SetFilterOptions(basehdl.FilterOptions{
		DeniedFields: []string{"changes"},
		MaxFields:    5,
	})
	return &InvoiceChangeHandler{
		BaseHandler:   base,
		ChangeService: changeService,
	}, nil
}
