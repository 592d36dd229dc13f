// Package catalogsvc - service danh mục sản phẩm.
package catalogsvc

import (
	"context"
	"fmt"

	basesvc "shop_commerce/internal/api/base/service"
	models "shop_commerce/internal/api/catalog/models"
	"shop_commerce/internal/common"
	"shop_commerce/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategoryService xử lý nghiệp vụ danh mục.
type CategoryService struct {
	*basesvc.BaseServiceMongoImpl[models.Category]
}

// NewCategoryService tạo mới CategoryService.
func NewCategoryService() (*CategoryService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Categories)
	if !exist {
		return nil, fmt.Errorf("failed to get categories collection: %v", common.ErrNotFound)
	}
	return &CategoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Category](collection),
	}, nil
}

// DeleteOne override: chặn xóa danh mục còn sản phẩm.
func (s *CategoryService) DeleteOne(ctx context.Context, filter interface{}) error {
	category, err := s.BaseServiceMongoImpl.FindOne(ctx, filter, nil)
	if err != nil {
		return err
	}
	if err := basesvc.ValidateBeforeDeleteCategory(ctx, category.ID); err != nil {
		return err
	}
	return s.BaseServiceMongoImpl.DeleteOne(ctx, filter)
}

// DeleteById override
func (s *CategoryService) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	return s.DeleteOne(ctx, bson.M{"_id": id})
}

// DeleteMany override
func (s *CategoryService) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	categories, err := s.BaseServiceMongoImpl.Find(ctx, filter, nil)
	if err != nil {
		return 0, err
	}
	for i := range categories {
		if err := basesvc.ValidateBeforeDeleteCategory(ctx, categories[i].ID); err != nil {
			return 0, err
		}
	}
	return s.BaseServiceMongoImpl.DeleteMany(ctx, filter)
}
