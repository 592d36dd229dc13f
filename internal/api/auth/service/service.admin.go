// Package authsvc - service quản trị (Admin): block user, set role, v.v.
package authsvc

import (
	"context"
	"fmt"

	authdto "shop_commerce/internal/api/auth/dto"
	models "shop_commerce/internal/api/auth/models"
	basesvc "shop_commerce/internal/api/base/service"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminService là cấu trúc chứa các phương thức liên quan đến admin
type AdminService struct {
	userService     *UserService
	roleService     *RoleService
	userRoleService *UserRoleService
}

// NewAdminService tạo mới AdminService
func NewAdminService() (*AdminService, error) {
	userService, err := NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	roleService, err := NewRoleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create role service: %w", err)
	}

	userRoleService, err := NewUserRoleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user_role service: %w", err)
	}

	return &AdminService{
		userService:     userService,
		roleService:     roleService,
		userRoleService: userRoleService,
	}, nil
}

// SetRole gán Role cho User dựa trên Email và RoleID (kèm scopeShopId nếu có)
func (s *AdminService) SetRole(ctx context.Context, email string, roleID primitive.ObjectID, scopeShopID *primitive.ObjectID) (*models.UserRole, error) {
	_, err := s.roleService.FindOneById(ctx, roleID)
	if err != nil {
		return nil, err
	}

	user, err := s.userService.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil {
		return nil, err
	}

	input := &authdto.UserRoleCreateInput{
		UserID: user.ID.Hex(),
		RoleID: roleID.Hex(),
	}
	if scopeShopID != nil {
		input.ScopeShopID = scopeShopID.Hex()
	}
	return s.userRoleService.Create(ctx, input)
}

// BlockUser chặn hoặc bỏ chặn User dựa trên Email và trạng thái Block.
// Block xong thu hồi toàn bộ token để chặn ngay các phiên đang hoạt động.
func (s *AdminService) BlockUser(ctx context.Context, email string, block bool, note string) (*models.User, error) {
	filter := bson.M{"email": email}
	user, err := s.userService.FindOne(ctx, filter, nil)
	if err != nil {
		return nil, err
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"isBlock":   block,
			"blockNote": note,
		},
	}
	if block {
		updateData.Set["token"] = ""
		updateData.Set["tokens"] = []models.Token{}
	}
	updatedUser, err := s.userService.UpdateById(ctx, user.ID, updateData)
	if err != nil {
		return nil, err
	}
	return &updatedUser, nil
}

// UnBlockUser mở khóa người dùng
func (s *AdminService) UnBlockUser(ctx context.Context, email string) (*models.User, error) {
	return s.BlockUser(ctx, email, false, "")
}
