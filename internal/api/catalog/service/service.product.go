// Package catalogsvc - service sản phẩm.
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

// ProductService xử lý nghiệp vụ sản phẩm.
type ProductService struct {
	*basesvc.BaseServiceMongoImpl[models.Product]
	categoryService *CategoryService
}

// NewProductService tạo mới ProductService.
func NewProductService() (*ProductService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}
	categoryService, err := NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %w", err)
	}
	return &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Product](collection),
		categoryService:      categoryService,
	}, nil
}

// validateCategory kiểm tra categoryId có tồn tại và thuộc đúng cửa hàng không.
func (s *ProductService) validateCategory(ctx context.Context, product *models.Product) error {
	if product.CategoryID == nil || product.CategoryID.IsZero() {
		return nil
	}
	category, err := s.categoryService.FindOneById(ctx, *product.CategoryID)
	if err != nil {
		return common.NewError(common.ErrCodeValidationInput, "Danh mục không tồn tại", common.StatusBadRequest, err)
	}
	if category.OwnerShopID != product.OwnerShopID {
		return common.NewError(common.ErrCodeValidationInput, "Danh mục không thuộc cửa hàng này", common.StatusBadRequest, nil)
	}
	return nil
}

// InsertOne override: validate danh mục + SKU trùng trong cửa hàng.
func (s *ProductService) InsertOne(ctx context.Context, product models.Product) (models.Product, error) {
	var zero models.Product
	if err := s.validateCategory(ctx, &product); err != nil {
		return zero, err
	}
	exists, err := s.DocumentExists(ctx, bson.M{"ownerShopId": product.OwnerShopID, "sku": product.SKU})
	if err != nil {
		return zero, err
	}
	if exists {
		return zero, common.NewError(common.ErrCodeBusinessState, fmt.Sprintf("SKU '%s' đã tồn tại trong cửa hàng.", product.SKU), common.StatusConflict, nil)
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, product)
}

// FindBySKU tìm sản phẩm theo SKU trong một cửa hàng.
func (s *ProductService) FindBySKU(ctx context.Context, shopID primitive.ObjectID, sku string) (*models.Product, error) {
	product, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"ownerShopId": shopID, "sku": sku}, nil)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// AdjustStock cộng trừ tồn kho của sản phẩm (delta âm là xuất kho).
func (s *ProductService) AdjustStock(ctx context.Context, productID primitive.ObjectID, delta int64) (models.Product, error) {
	product, err := s.FindOneById(ctx, productID)
	if err != nil {
		return product, err
	}
	newQty := product.StockQty + delta
	if newQty < 0 {
		return product, common.NewError(common.ErrCodeBusinessState, fmt.Sprintf("Tồn kho sản phẩm '%s' không đủ.", product.Name), common.StatusBadRequest, nil)
	}
	return s.UpdateById(ctx, productID, &basesvc.UpdateData{
		Set: map[string]interface{}{"stockQty": newQty},
	})
}

// DeleteOne override: chặn xóa sản phẩm đã xuất hiện trên hóa đơn.
func (s *ProductService) DeleteOne(ctx context.Context, filter interface{}) error {
	product, err := s.BaseServiceMongoImpl.FindOne(ctx, filter, nil)
	if err != nil {
		return err
	}
	if err := basesvc.ValidateBeforeDeleteProduct(ctx, product.ID); err != nil {
		return err
	}
	return s.BaseServiceMongoImpl.DeleteOne(ctx, filter)
}

// DeleteById override
func (s *ProductService) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	return s.DeleteOne(ctx, bson.M{"_id": id})
}

// DeleteMany override
func (s *ProductService) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	products, err := s.BaseServiceMongoImpl.Find(ctx, filter, nil)
	if err != nil {
		return 0, err
	}
	for i := range products {
		if err := basesvc.ValidateBeforeDeleteProduct(ctx, products[i].ID); err != nil {
			return 0, err
		}
	}
	return s.BaseServiceMongoImpl.DeleteMany(ctx, filter)
}
