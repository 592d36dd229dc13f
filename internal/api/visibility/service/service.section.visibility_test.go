// Package visibilitysvc - test kiểm soát quyền thay đổi hide-set.
package visibilitysvc

import (
	"context"
	"testing"

	authmodels "shop_commerce/internal/api/auth/models"
	"shop_commerce/internal/common"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Guard quyền chạy trước mọi truy cập collection nên service zero-value là đủ để test.

func TestSetPlatformHidden_RejectsNonSuperAdmin(t *testing.T) {
	svc := &SectionVisibilityService{}
	shopID := primitive.NewObjectID()

	for _, role := range []string{authmodels.RoleAdmin, authmodels.RoleManager, authmodels.RoleStaff} {
		_, err := svc.SetPlatformHidden(context.Background(), role, shopID, []string{"/invoices"})
		if err != common.ErrPermissionDenied {
			t.Errorf("%s không được phép đổi hide-set nền tảng, kỳ vọng ErrPermissionDenied, nhận %v", role, err)
		}
	}
}

func TestSetShopHidden_RejectsManagerAndStaff(t *testing.T) {
	svc := &SectionVisibilityService{}
	shopID := primitive.NewObjectID()

	for _, role := range []string{authmodels.RoleManager, authmodels.RoleStaff} {
		_, err := svc.SetShopHidden(context.Background(), role, shopID, nil)
		if err != common.ErrPermissionDenied {
			t.Errorf("%s không được phép đổi hide-set cửa hàng, kỳ vọng ErrPermissionDenied, nhận %v", role, err)
		}
	}
}

func TestSetShopHidden_RejectsUnknownRole(t *testing.T) {
	svc := &SectionVisibilityService{}
	_, err := svc.SetShopHidden(context.Background(), "", primitive.NewObjectID(), []string{"/settings"})
	if err != common.ErrPermissionDenied {
		t.Errorf("vai trò rỗng phải bị từ chối, kỳ vọng ErrPermissionDenied, nhận %v", err)
	}
}
