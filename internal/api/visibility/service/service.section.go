// Package visibilitysvc - service danh mục section.
package visibilitysvc

import (
	"context"
	"fmt"
	"time"

	basesvc "shop_commerce/internal/api/base/service"
	models "shop_commerce/internal/api/visibility/models"
	"shop_commerce/internal/common"
	"shop_commerce/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SectionService quản lý danh mục section của ứng dụng.
type SectionService struct {
	*basesvc.BaseServiceMongoImpl[models.SectionDescriptor]
}

// NewSectionService tạo mới SectionService.
func NewSectionService() (*SectionService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Sections)
	if !exist {
		return nil, fmt.Errorf("failed to get sections collection: %v", common.ErrNotFound)
	}
	return &SectionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.SectionDescriptor](collection),
	}, nil
}

// defaultSections danh mục section mặc định của ứng dụng, seed lúc khởi động.
var defaultSections = []models.SectionDescriptor{
	{Path: "/dashboard", Label: "Tổng quan", SortOrder: 1},
	{Path: "/invoices", Label: "Hóa đơn", SortOrder: 2},
	{Path: "/products", Label: "Sản phẩm", RelatedPaths: []string{"/products/labels"}, SortOrder: 3},
	{Path: "/categories", Label: "Danh mục", SortOrder: 4},
	{Path: "/customers", Label: "Khách hàng", SortOrder: 5},
	{Path: "/reminders", Label: "Nhắc hẹn", SortOrder: 6},
	{Path: "/settings", Label: "Cài đặt", SortOrder: 7},
}

// SeedDefaults seed danh mục section mặc định (idempotent, upsert theo path).
func (s *SectionService) SeedDefaults(ctx context.Context) error {
	ctx = basesvc.WithSystemDataInsertAllowed(ctx)
	now := time.Now().UnixMilli()
	for _, section := range defaultSections {
		updateData := &basesvc.UpdateData{
			Set: map[string]interface{}{
				"label":     section.Label,
				"sortOrder": section.SortOrder,
				"isSystem":  true,
				"updatedAt": now,
			},
			SetOnInsert: map[string]interface{}{
				"path":      section.Path,
				"createdAt": now,
			},
		}
		if len(section.RelatedPaths) > 0 {
			updateData.Set["relatedPaths"] = section.RelatedPaths
		}
		if _, err := s.Upsert(ctx, bson.M{"path": section.Path}, updateData); err != nil {
			return err
		}
	}
	return nil
}

// GetCatalog trả về toàn bộ danh mục section theo thứ tự hiển thị.
func (s *SectionService) GetCatalog(ctx context.Context) ([]models.SectionDescriptor, error) {
	opts := options.Find().SetSort(bson.D{{Key: "sortOrder", Value: 1}})
	catalog, err := s.Find(ctx, bson.M{}, opts)
	if err != nil {
		if err == common.ErrNotFound {
			return []models.SectionDescriptor{}, nil
		}
		return nil, err
	}
	return catalog, nil
}
