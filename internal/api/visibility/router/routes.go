// Package router đăng ký các route thuộc domain visibility: sections, hide-sets.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authmodels "shop_commerce/internal/api/auth/models"
	"shop_commerce/internal/api/middleware"
	apirouter "shop_commerce/internal/api/router"
	visibilityhdl "shop_commerce/internal/api/visibility/handler"
)

// Register đăng ký tất cả route visibility lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	sectionHandler, err := visibilityhdl.NewSectionHandler()
	if err != nil {
		return fmt.Errorf("tạo SectionHandler: %w", err)
	}

	// Danh mục section do SUPER_ADMIN quản lý; mọi người đều đọc được
	r.RegisterCRUDRoutes(v1, "/section", sectionHandler, apirouter.ReadWriteConfig, apirouter.CRUDLevels{
		Read:   authmodels.LevelStaff,
		Write:  authmodels.LevelSuperAdmin,
		Delete: authmodels.LevelSuperAdmin,
	})

	staffMiddleware := middleware.AuthMiddleware(authmodels.LevelStaff)
	adminMiddleware := middleware.AuthMiddleware(authmodels.LevelAdmin)
	superAdminMiddleware := middleware.AuthMiddleware(authmodels.LevelSuperAdmin)

	// GET /section/visible — danh mục section còn hiển thị với vai trò của phiên
	apirouter.RegisterRouteWithMiddleware(v1, "/section", "GET", "/visible", []fiber.Handler{staffMiddleware}, sectionHandler.HandleGetVisible)
	// GET /section/check — một path có hiển thị với vai trò của phiên không
	apirouter.RegisterRouteWithMiddleware(v1, "/section", "GET", "/check", []fiber.Handler{staffMiddleware}, sectionHandler.HandleCheckVisible)
	// GET /section/state — trạng thái ẩn/hiện thô của cửa hàng
	apirouter.RegisterRouteWithMiddleware(v1, "/section", "GET", "/state", []fiber.Handler{adminMiddleware}, sectionHandler.HandleGetState)
	// PUT /section/platform-hidden — thay thế hide-set mức nền tảng (chỉ SUPER_ADMIN)
	apirouter.RegisterRouteWithMiddleware(v1, "/section", "PUT", "/platform-hidden", []fiber.Handler{superAdminMiddleware}, sectionHandler.HandleSetPlatformHidden)
	// PUT /section/shop-hidden — thay thế hide-set mức cửa hàng (ADMIN trở lên)
	apirouter.RegisterRouteWithMiddleware(v1, "/section", "PUT", "/shop-hidden", []fiber.Handler{adminMiddleware}, sectionHandler.HandleSetShopHidden)

	return nil
}
