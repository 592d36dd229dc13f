// Package shophdl - Handler shop config item.
package shophdl

import (
	"fmt"

	basehdl "shop_commerce/internal/api/base/handler"
	shopdto "shop_commerce/internal/api/shop/dto"
	models "shop_commerce/internal/api/shop/models"
	shopsvc "shop_commerce/internal/api/shop/service"
	"shop_commerce/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ShopConfigItemHandler xử lý CRUD config item và resolved config
type ShopConfigItemHandler struct {
	*basehdl.BaseHandler[models.ShopConfigItem, shopdto.ShopConfigItemUpsertInput, shopdto.ShopConfigItemUpsertInput]
	ItemService *shopsvc.ShopConfigItemService
}

// NewShopConfigItemHandler tạo handler cho shop config item
func NewShopConfigItemHandler() (*ShopConfigItemHandler, error) {
	svc, err := shopsvc.NewShopConfigItemService()
	if err != nil {
		return nil, fmt.Errorf("failed to create shop config item service: %w", err)
	}
	base := basehdl.NewBaseHandler[models.ShopConfigItem, shopdto.ShopConfigItemUpsertInput, shopdto.ShopConfigItemUpsertInput](svc)
	return &ShopConfigItemHandler{
		BaseHandler: base,
		ItemService: svc,
	}, nil
}

// HandleUpsert xử lý PUT /shop-config: tạo hoặc cập nhật một config item
func (h *ShopConfigItemHandler) HandleUpsert(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input shopdto.ShopConfigItemUpsertInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		item := &models.ShopConfigItem{
			Key:           input.Key,
			Value:         input.Value,
			Name:          input.Name,
			Description:   input.Description,
			DataType:      input.DataType,
			Constraints:   input.Constraints,
			AllowOverride: input.AllowOverride,
		}
		if input.OwnerShopID != "" {
			shopID, err := primitive.ObjectIDFromHex(input.OwnerShopID)
			if err != nil {
				h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "ownerShopId không hợp lệ", common.StatusBadRequest, err))
				return nil
			}
			if err := h.ValidateUserHasAccessToShop(c, shopID); err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
			item.OwnerShopID = shopID
		} else if c.Locals("user_role") != "SUPER_ADMIN" {
			// Config mặc định toàn nền tảng chỉ SUPER_ADMIN được đặt
			h.HandleResponse(c, nil, common.ErrPermissionDenied)
			return nil
		}
		result, err := h.ItemService.UpsertItem(c.Context(), item)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// GetResolved xử lý GET /shop-config/resolved
func (h *ShopConfigItemHandler) GetResolved(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		shopIDStr := c.Query("ownerShopId")
		if shopIDStr == "" {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Thiếu ownerShopId", common.StatusBadRequest, nil))
			return nil
		}
		shopID, err := primitive.ObjectIDFromHex(shopIDStr)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "ownerShopId không hợp lệ", common.StatusBadRequest, err))
			return nil
		}
		if err := h.ValidateUserHasAccessToShop(c, shopID); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		resolved, err := h.ItemService.GetResolvedConfig(c.Context(), shopID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, fiber.Map{"config": resolved}, nil)
		return nil
	})
}
