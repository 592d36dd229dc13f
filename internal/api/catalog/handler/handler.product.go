// Package cataloghdl - Handler sản phẩm.
package cataloghdl

import (
	"fmt"

	basehdl "shop_commerce/internal/api/base/handler"
	catalogdto "shop_commerce/internal/api/catalog/dto"
	models "shop_commerce/internal/api/catalog/models"
	catalogsvc "shop_commerce/internal/api/catalog/service"
	"shop_commerce/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductHandler xử lý các request liên quan đến sản phẩm
type ProductHandler struct {
	*basehdl.BaseHandler[models.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput]
	ProductService *catalogsvc.ProductService
}

// NewProductHandler tạo mới ProductHandler
func NewProductHandler() (*ProductHandler, error) {
	productService, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %v", err)
	}
	base := basehdl.NewBaseHandler[models.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput](productService)
	return &ProductHandler{
		BaseHandler:    base,
		ProductService: productService,
	}, nil
}

// AdjustStockInput body cho điều chỉnh tồn kho.
type AdjustStockInput struct {
	Delta int64 `json:"delta" validate:"required"`
}

// HandleAdjustStock xử lý POST /products/:id/adjust-stock
func (h *ProductHandler) HandleAdjustStock(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := h.GetIDFromContext(c)
		productID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, err))
			return nil
		}
		var input AdjustStockInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		product, err := h.ProductService.FindOneById(c.Context(), productID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateUserHasAccessToShop(c, product.OwnerShopID); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		result, err := h.ProductService.AdjustStock(c.Context(), productID, input.Delta)
		h.HandleResponse(c, result, err)
		return nil
	})
}
