// Package router đăng ký các route thuộc domain shop: shops, shop config items.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authmodels "shop_commerce/internal/api/auth/models"
	"shop_commerce/internal/api/middleware"
	apirouter "shop_commerce/internal/api/router"
	shophdl "shop_commerce/internal/api/shop/handler"
)

// Register đăng ký tất cả route shop lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	shopHandler, err := shophdl.NewShopHandler()
	if err != nil {
		return fmt.Errorf("tạo ShopHandler: %w", err)
	}
	configItemHandler, err := shophdl.NewShopConfigItemHandler()
	if err != nil {
		return fmt.Errorf("tạo ShopConfigItemHandler: %w", err)
	}

	// Cửa hàng do SUPER_ADMIN quản lý; nhân viên chỉ đọc
	r.RegisterCRUDRoutes(v1, "/shop", shopHandler, apirouter.ReadWriteConfig, apirouter.CRUDLevels{
		Read:   authmodels.LevelStaff,
		Write:  authmodels.LevelSuperAdmin,
		Delete: authmodels.LevelSuperAdmin,
	})

	r.RegisterCRUDRoutes(v1, "/shop-config", configItemHandler, apirouter.ConfigItemConfig, apirouter.CRUDLevels{
		Read:   authmodels.LevelStaff,
		Write:  authmodels.LevelAdmin,
		Delete: authmodels.LevelAdmin,
	})

	adminMiddleware := middleware.AuthMiddleware(authmodels.LevelAdmin)
	staffMiddleware := middleware.AuthMiddleware(authmodels.LevelStaff)
	// PUT /shop-config/item — upsert một key (kiểm tra locked key + constraints)
	apirouter.RegisterRouteWithMiddleware(v1, "/shop-config", "PUT", "/item", []fiber.Handler{adminMiddleware}, configItemHandler.HandleUpsert)
	// GET /shop-config/resolved — config đã merge defaults nền tảng với override của cửa hàng
	apirouter.RegisterRouteWithMiddleware(v1, "/shop-config", "GET", "/resolved", []fiber.Handler{staffMiddleware}, configItemHandler.GetResolved)

	return nil
}
