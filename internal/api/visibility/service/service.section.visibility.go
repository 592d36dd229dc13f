// Package visibilitysvc - service trạng thái ẩn/hiện section theo cửa hàng.
package visibilitysvc

import (
	"context"
	"fmt"

	authmodels "shop_commerce/internal/api/auth/models"
	basesvc "shop_commerce/internal/api/base/service"
	models "shop_commerce/internal/api/visibility/models"
	"shop_commerce/internal/common"
	"shop_commerce/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SectionVisibilityService quản lý trạng thái ẩn/hiện section của từng cửa hàng.
type SectionVisibilityService struct {
	*basesvc.BaseServiceMongoImpl[models.SectionVisibility]
}

// NewSectionVisibilityService tạo mới SectionVisibilityService.
func NewSectionVisibilityService() (*SectionVisibilityService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.SectionStates)
	if !exist {
		return nil, fmt.Errorf("failed to get section_states collection: %v", common.ErrNotFound)
	}
	return &SectionVisibilityService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.SectionVisibility](collection),
	}, nil
}

// GetState lấy trạng thái ẩn/hiện của một cửa hàng.
// Cửa hàng chưa có document trả về trạng thái rỗng (mọi section hiển thị).
func (s *SectionVisibilityService) GetState(ctx context.Context, shopID primitive.ObjectID) (*models.SectionVisibility, error) {
	state, err := s.FindOne(ctx, bson.M{"ownerShopId": shopID}, nil)
	if err != nil {
		if err == common.ErrNotFound {
			return &models.SectionVisibility{
				OwnerShopID:    shopID,
				PlatformHidden: []string{},
				ShopHidden:     []string{},
			}, nil
		}
		return nil, err
	}
	return &state, nil
}

// replaceHideSet thay thế nguyên khối một hide-set của cửa hàng.
func (s *SectionVisibilityService) replaceHideSet(ctx context.Context, shopID primitive.ObjectID, field string, paths []string) (*models.SectionVisibility, error) {
	if paths == nil {
		paths = []string{}
	}
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			field: paths,
		},
		SetOnInsert: map[string]interface{}{
			"ownerShopId": shopID,
		},
	}
	state, err := s.Upsert(ctx, bson.M{"ownerShopId": shopID}, updateData)
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// SetPlatformHidden thay thế hide-set mức nền tảng của một cửa hàng.
// Chỉ SUPER_ADMIN được phép; vai trò khác nhận PermissionDenied.
func (s *SectionVisibilityService) SetPlatformHidden(ctx context.Context, actorRole string, shopID primitive.ObjectID, paths []string) (*models.SectionVisibility, error) {
	if actorRole != authmodels.RoleSuperAdmin {
		return nil, common.ErrPermissionDenied
	}
	return s.replaceHideSet(ctx, shopID, "platformHidden", paths)
}

// SetShopHidden thay thế hide-set mức cửa hàng.
// ADMIN của cửa hàng hoặc SUPER_ADMIN được phép; vai trò khác nhận PermissionDenied.
func (s *SectionVisibilityService) SetShopHidden(ctx context.Context, actorRole string, shopID primitive.ObjectID, paths []string) (*models.SectionVisibility, error) {
	if actorRole != authmodels.RoleSuperAdmin && actorRole != authmodels.RoleAdmin {
		return nil, common.ErrPermissionDenied
	}
	return s.replaceHideSet(ctx, shopID, "shopHidden", paths)
}
