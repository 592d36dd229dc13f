// Package shopsvc - service shop config item.
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

// ShopConfigItemService xử lý config theo từng key (1 document per key).
// Config mặc định toàn nền tảng lưu với ownerShopId zero; cửa hàng override
// bằng document riêng trừ khi default khóa AllowOverride.
type ShopConfigItemService struct {
	*basesvc.BaseServiceMongoImpl[models.ShopConfigItem]
}

// NewShopConfigItemService tạo mới ShopConfigItemService.
func NewShopConfigItemService() (*ShopConfigItemService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ShopConfigItems)
	if !exist {
		return nil, fmt.Errorf("failed to get shop_config_items collection: %v", common.ErrNotFound)
	}
	return &ShopConfigItemService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ShopConfigItem](collection),
	}, nil
}

// GetByShopAndKey lấy một config item theo cửa hàng và key.
// shopID zero trả về config mặc định toàn nền tảng của key đó.
func (s *ShopConfigItemService) GetByShopAndKey(ctx context.Context, shopID primitive.ObjectID, key string) (*models.ShopConfigItem, error) {
	filter := bson.M{"key": key}
	if shopID.IsZero() {
		filter["ownerShopId"] = bson.M{"$exists": false}
	} else {
		filter["ownerShopId"] = shopID
	}
	item, err := s.BaseServiceMongoImpl.FindOne(ctx, filter, nil)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByShop lấy tất cả config item của một cửa hàng (không gồm defaults).
func (s *ShopConfigItemService) FindByShop(ctx context.Context, shopID primitive.ObjectID) ([]models.ShopConfigItem, error) {
	return s.BaseServiceMongoImpl.Find(ctx, bson.M{"ownerShopId": shopID}, nil)
}

// FindPlatformDefaults lấy tất cả config mặc định toàn nền tảng.
func (s *ShopConfigItemService) FindPlatformDefaults(ctx context.Context) ([]models.ShopConfigItem, error) {
	return s.BaseServiceMongoImpl.Find(ctx, bson.M{"ownerShopId": bson.M{"$exists": false}}, nil)
}

// validateLockedKey chặn cửa hàng override một key đã bị khóa ở mức nền tảng.
func (s *ShopConfigItemService) validateLockedKey(ctx context.Context, shopID primitive.ObjectID, key string) error {
	if shopID.IsZero() {
		return nil
	}
	defaultItem, err := s.GetByShopAndKey(ctx, primitive.NilObjectID, key)
	if err != nil || defaultItem == nil {
		return nil
	}
	if !defaultItem.AllowOverride {
		return common.NewError(common.ErrCodeBusinessOperation, fmt.Sprintf("Key '%s' đã bị khóa bởi cấu hình nền tảng, không thể thay đổi.", key), common.StatusForbidden, nil)
	}
	return nil
}

// ConfigValueForValidation struct dùng cho global.Validate.
type ConfigValueForValidation struct {
	Value       interface{} `validate:"config_value"`
	DataType    string
	Constraints string
}

func (s *ShopConfigItemService) validateConstraints(item *models.ShopConfigItem) error {
	if item.Constraints == "" {
		return nil
	}
	v := ConfigValueForValidation{Value: item.Value, DataType: item.DataType, Constraints: item.Constraints}
	if err := global.Validate.Struct(v); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, "Giá trị config không thỏa ràng buộc: "+err.Error(), common.StatusBadRequest, err)
	}
	return nil
}

// UpsertItem tạo hoặc cập nhật một config item (validate locked key + constraints).
func (s *ShopConfigItemService) UpsertItem(ctx context.Context, item *models.ShopConfigItem) (*models.ShopConfigItem, error) {
	if err := s.validateLockedKey(ctx, item.OwnerShopID, item.Key); err != nil {
		return nil, err
	}
	if err := s.validateConstraints(item); err != nil {
		return nil, err
	}
	item.IsSystem = false
	filter := bson.M{"key": item.Key}
	if item.OwnerShopID.IsZero() {
		filter["ownerShopId"] = bson.M{"$exists": false}
	} else {
		filter["ownerShopId"] = item.OwnerShopID
	}
	doc, err := s.BaseServiceMongoImpl.Upsert(ctx, filter, *item)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetResolvedConfig merge config mặc định nền tảng với override của cửa hàng.
// Key bị khóa ở mức nền tảng luôn giữ giá trị mặc định.
func (s *ShopConfigItemService) GetResolvedConfig(ctx context.Context, shopID primitive.ObjectID) (map[string]interface{}, error) {
	defaults, err := s.FindPlatformDefaults(ctx)
	if err != nil && err != common.ErrNotFound {
		return nil, err
	}
	resolved := make(map[string]interface{})
	lockedKeys := make(map[string]bool)
	for _, it := range defaults {
		resolved[it.Key] = it.Value
		if !it.AllowOverride {
			lockedKeys[it.Key] = true
		}
	}
	overrides, err := s.FindByShop(ctx, shopID)
	if err != nil && err != common.ErrNotFound {
		return nil, err
	}
	for _, it := range overrides {
		if !lockedKeys[it.Key] {
			resolved[it.Key] = it.Value
		}
	}
	return resolved, nil
}

// ValidateBeforeDeleteItem kiểm tra không xóa config item hệ thống.
func (s *ShopConfigItemService) ValidateBeforeDeleteItem(item *models.ShopConfigItem) error {
	if item.IsSystem {
		return common.NewError(common.ErrCodeBusinessOperation, "Không thể xóa config item của hệ thống.", common.StatusForbidden, nil)
	}
	return nil
}

// DeleteOne override
func (s *ShopConfigItemService) DeleteOne(ctx context.Context, filter interface{}) error {
	item, err := s.BaseServiceMongoImpl.FindOne(ctx, filter, nil)
	if err != nil {
		return err
	}
	if err := s.ValidateBeforeDeleteItem(&item); err != nil {
		return err
	}
	return s.BaseServiceMongoImpl.DeleteOne(ctx, filter)
}
