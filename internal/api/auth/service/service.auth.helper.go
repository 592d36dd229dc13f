// Package authsvc - helper phạm vi truy cập (allowed shops, super admin check, context).
package authsvc

import (
	"context"
	"errors"
	"fmt"

	models "shop_commerce/internal/api/auth/models"
	"shop_commerce/internal/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetUserAllowedShopIDs lấy danh sách shop IDs mà user được phép truy cập
// (gom từ scopeShopId của tất cả các grant vai trò của user).
func GetUserAllowedShopIDs(ctx context.Context, userID primitive.ObjectID) ([]primitive.ObjectID, error) {
	userRoleService, err := NewUserRoleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user role service: %v", err)
	}

	userRoles, err := userRoleService.BaseServiceMongoImpl.Find(ctx, bson.M{"userId": userID}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return []primitive.ObjectID{}, nil
		}
		return nil, err
	}

	allowedMap := make(map[primitive.ObjectID]bool)
	for _, userRole := range userRoles {
		if userRole.ScopeShopID != nil && !userRole.ScopeShopID.IsZero() {
			allowedMap[*userRole.ScopeShopID] = true
		}
	}

	result := make([]primitive.ObjectID, 0, len(allowedMap))
	for shopID := range allowedMap {
		result = append(result, shopID)
	}
	return result, nil
}

// GetRoleForUser trả về Role của một grant cụ thể, validate user có grant đó.
func GetRoleForUser(ctx context.Context, userID, roleID primitive.ObjectID) (*models.Role, *models.UserRole, error) {
	userRoleService, err := NewUserRoleService()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create user role service: %v", err)
	}
	roleService, err := NewRoleService()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create role service: %v", err)
	}

	userRole, err := userRoleService.BaseServiceMongoImpl.FindOne(ctx, bson.M{"userId": userID, "roleId": roleID}, nil)
	if err != nil {
		return nil, nil, err
	}
	role, err := roleService.BaseServiceMongoImpl.FindOneById(ctx, roleID)
	if err != nil {
		return nil, nil, err
	}
	return &role, &userRole, nil
}

// IsUserSuperAdmin kiểm tra xem user có vai trò SUPER_ADMIN không
func IsUserSuperAdmin(ctx context.Context, userID primitive.ObjectID) (bool, error) {
	userRoleService, err := NewUserRoleService()
	if err != nil {
		return false, fmt.Errorf("failed to create user role service: %v", err)
	}
	roleService, err := NewRoleService()
	if err != nil {
		return false, fmt.Errorf("failed to create role service: %v", err)
	}

	superAdminRole, err := roleService.BaseServiceMongoImpl.FindOne(ctx, bson.M{"name": models.RoleSuperAdmin}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	_, err = userRoleService.BaseServiceMongoImpl.FindOne(ctx, bson.M{"userId": userID, "roleId": superAdminRole.ID}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

type contextKey string

const userIDContextKey contextKey = "user_id"

// SetUserIDToContext lưu userID vào context
func SetUserIDToContext(ctx context.Context, userID primitive.ObjectID) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}

// GetUserIDFromContext lấy userID từ context
func GetUserIDFromContext(ctx context.Context) (primitive.ObjectID, bool) {
	userID, ok := ctx.Value(userIDContextKey).(primitive.ObjectID)
	return userID, ok
}

// IsUserSuperAdminFromContext kiểm tra user trong context có phải SUPER_ADMIN không
func IsUserSuperAdminFromContext(ctx context.Context) (bool, error) {
	userID, ok := GetUserIDFromContext(ctx)
	if !ok {
		return false, nil
	}
	return IsUserSuperAdmin(ctx, userID)
}
