// Package shophdl - Handler quản lý cửa hàng.
package shophdl

import (
	"fmt"

	basehdl "shop_commerce/internal/api/base/handler"
	shopdto "shop_commerce/internal/api/shop/dto"
	models "shop_commerce/internal/api/shop/models"
	shopsvc "shop_commerce/internal/api/shop/service"
)

// ShopHandler xử lý các request liên quan đến cửa hàng
type ShopHandler struct {
	*basehdl.BaseHandler[models.Shop, shopdto.ShopCreateInput, shopdto.ShopUpdateInput]
	ShopService *shopsvc.ShopService
}

// NewShopHandler tạo mới ShopHandler
func NewShopHandler() (*ShopHandler, error) {
	shopService, err := shopsvc.NewShopService()
	if err != nil {
		return nil, fmt.Errorf("failed to create shop service: %v", err)
	}
	base := basehdl.NewBaseHandler[models.Shop, shopdto.ShopCreateInput, shopdto.ShopUpdateInput](shopService)
	return &ShopHandler{
		BaseHandler: base,
		ShopService: shopService,
	}, nil
}
