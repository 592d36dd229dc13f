// Package router đăng ký các route thuộc domain reminder: reminder templates.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authmodels "shop_commerce/internal/api/auth/models"
	"shop_commerce/internal/api/middleware"
	reminderhdl "shop_commerce/internal/api/reminder/handler"
	apirouter "shop_commerce/internal/api/router"
)

// Register đăng ký tất cả route reminder lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	templateHandler, err := reminderhdl.NewReminderTemplateHandler()
	if err != nil {
		return fmt.Errorf("tạo ReminderTemplateHandler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/reminder-template", templateHandler, apirouter.ReadWriteConfig, apirouter.StaffReadManagerWrite)

	staffMiddleware := middleware.AuthMiddleware(authmodels.LevelStaff)
	// POST /reminder-template/:id/render — render mẫu với dữ liệu thực + deep-link gửi
	apirouter.RegisterRouteWithMiddleware(v1, "/reminder-template", "POST", "/:id/render", []fiber.Handler{staffMiddleware}, templateHandler.HandleRender)
	// POST /reminder-template/:id/render-invoice — render mẫu từ dữ liệu hóa đơn
	apirouter.RegisterRouteWithMiddleware(v1, "/reminder-template", "POST", "/:id/render-invoice", []fiber.Handler{staffMiddleware}, templateHandler.HandleRenderInvoice)
	// GET /reminder-template/:id/variables — liệt kê placeholder trong content
	apirouter.RegisterRouteWithMiddleware(v1, "/reminder-template", "GET", "/:id/variables", []fiber.Handler{staffMiddleware}, templateHandler.HandleExtractVariables)

	return nil
}
