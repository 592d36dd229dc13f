// Package router đăng ký các route thuộc domain catalog: products, categories.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authmodels "shop_commerce/internal/api/auth/models"
	cataloghdl "shop_commerce/internal/api/catalog/handler"
	"shop_commerce/internal/api/middleware"
	apirouter "shop_commerce/internal/api/router"
)

// Register đăng ký tất cả route catalog lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	productHandler, err := cataloghdl.NewProductHandler()
	if err != nil {
		return fmt.Errorf("tạo ProductHandler: %w", err)
	}
	categoryHandler, err := cataloghdl.NewCategoryHandler()
	if err != nil {
		return fmt.Errorf("tạo CategoryHandler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/product", productHandler, apirouter.ReadWriteConfig, apirouter.StaffReadManagerWrite)
	r.RegisterCRUDRoutes(v1, "/category", categoryHandler, apirouter.ReadWriteConfig, apirouter.StaffReadManagerWrite)

	managerMiddleware := middleware.AuthMiddleware(authmodels.LevelManager)
	// POST /product/:id/adjust-stock — điều chỉnh tồn kho (delta âm là xuất kho)
	apirouter.RegisterRouteWithMiddleware(v1, "/product", "POST", "/:id/adjust-stock", []fiber.Handler{managerMiddleware}, productHandler.HandleAdjustStock)

	return nil
}
