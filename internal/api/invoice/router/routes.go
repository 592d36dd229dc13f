// Package router đăng ký các route thuộc domain invoice: invoices, invoice changes.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authmodels "shop_commerce/internal/api/auth/models"
	invoicehdl "shop_commerce/internal/api/invoice/handler"
	"shop_commerce/internal/api/middleware"
	apirouter "shop_commerce/internal/api/router"
)

// Register đăng ký tất cả route invoice lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	invoiceHandler, err := invoicehdl.NewInvoiceHandler()
	if err != nil {
		return fmt.Errorf("tạo InvoiceHandler: %w", err)
	}
	changeHandler, err := invoicehdl.NewInvoiceChangeHandler()
	if err != nil {
		return fmt.Errorf("tạo InvoiceChangeHandler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/invoice", invoiceHandler, apirouter.ReadWriteConfig, apirouter.StaffReadManagerWrite)
	// Lịch sử thay đổi là append-only: chỉ mở các route đọc
	r.RegisterCRUDRoutes(v1, "/invoice-change", changeHandler, apirouter.ReadOnlyConfig, apirouter.CRUDLevels{
		Read:   authmodels.LevelStaff,
		Write:  authmodels.LevelSuperAdmin,
		Delete: authmodels.LevelSuperAdmin,
	})

	staffMiddleware := middleware.AuthMiddleware(authmodels.LevelStaff)
	managerMiddleware := middleware.AuthMiddleware(authmodels.LevelManager)
	// PUT /invoice/:id/items — thay toàn bộ dòng hàng, sinh ChangeRecord vào lịch sử
	apirouter.RegisterRouteWithMiddleware(v1, "/invoice", "PUT", "/:id/items", []fiber.Handler{managerMiddleware}, invoiceHandler.HandleUpdateItems)
	// GET /invoice/:id/history — lịch sử thay đổi của hóa đơn, mới nhất trước
	apirouter.RegisterRouteWithMiddleware(v1, "/invoice", "GET", "/:id/history", []fiber.Handler{staffMiddleware}, invoiceHandler.HandleGetHistory)

	return nil
}
