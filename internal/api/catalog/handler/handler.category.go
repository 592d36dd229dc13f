// Package cataloghdl - Handler danh mục sản phẩm.
package cataloghdl

import (
	"fmt"

	basehdl "shop_commerce/internal/api/base/handler"
	catalogdto "shop_commerce/internal/api/catalog/dto"
	models "shop_commerce/internal/api/catalog/models"
	catalogsvc "shop_commerce/internal/api/catalog/service"
)

// CategoryHandler xử lý các request liên quan đến danh mục
type CategoryHandler struct {
	*basehdl.BaseHandler[models.Category, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput]
	CategoryService *catalogsvc.CategoryService
}

// NewCategoryHandler tạo mới CategoryHandler
func NewCategoryHandler() (*CategoryHandler, error) {
	categoryService, err := catalogsvc.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %v", err)
	}
	base := basehdl.NewBaseHandler[models.Category, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput](categoryService)
	return &CategoryHandler{
		BaseHandler:     base,
		CategoryService: categoryService,
	}, nil
}
