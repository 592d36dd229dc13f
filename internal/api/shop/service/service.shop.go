// Package shopsvc - service quản lý cửa hàng.
package shopsvc

import (
	"context"
	"fmt"

	basesvc "shop_commerce/internal/api/base/service"
	models "shop_commerce/internal/api/shop/models"
	"shop_commerce/internal/common"
	"shop_commerce/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ShopService xử lý nghiệp vụ cửa hàng.
type ShopService struct {
	*basesvc.BaseServiceMongoImpl[models.Shop]
}

// NewShopService tạo mới ShopService.
func NewShopService() (*ShopService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Shops)
	if !exist {
		return nil, fmt.Errorf("failed to get shops collection: %v", common.ErrNotFound)
	}
	return &ShopService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Shop](collection),
	}, nil
}

// validateBeforeDelete kiểm tra các ràng buộc trước khi xóa cửa hàng.
func (s *ShopService) validateBeforeDelete(ctx context.Context, shop *models.Shop) error {
	if shop.IsSystem {
		return common.NewError(common.ErrCodeBusinessOperation, "Không thể xóa cửa hàng hệ thống.", common.StatusForbidden, nil)
	}
	return basesvc.ValidateBeforeDeleteShop(ctx, shop.ID)
}

// DeleteOne override: chặn xóa cửa hàng còn dữ liệu trực thuộc.
func (s *ShopService) DeleteOne(ctx context.Context, filter interface{}) error {
	shop, err := s.BaseServiceMongoImpl.FindOne(ctx, filter, nil)
	if err != nil {
		return err
	}
	if err := s.validateBeforeDelete(ctx, &shop); err != nil {
		return err
	}
	return s.BaseServiceMongoImpl.DeleteOne(ctx, filter)
}

// DeleteById override
func (s *ShopService) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	return s.DeleteOne(ctx, bson.M{"_id": id})
}

// DeleteMany override: validate từng cửa hàng khớp filter trước khi xóa.
func (s *ShopService) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	shops, err := s.BaseServiceMongoImpl.Find(ctx, filter, nil)
	if err != nil {
		return 0, err
	}
	for i := range shops {
		if err := s.validateBeforeDelete(ctx, &shops[i]); err != nil {
			return 0, err
		}
	}
	return s.BaseServiceMongoImpl.DeleteMany(ctx, filter)
}

// FindByCode tìm cửa hàng theo mã.
func (s *ShopService) FindByCode(ctx context.Context, code string) (*models.Shop, error) {
	shop, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"code": code}, nil)
	if err != nil {
		return nil, err
	}
	return &shop, nil
}
