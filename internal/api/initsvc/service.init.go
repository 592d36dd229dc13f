// Package initsvc chứa InitService dùng để khởi tạo dữ liệu ban đầu (roles hệ thống, super admin).
// Tách ra package riêng để tránh import cycle giữa auth/service và các domain khác.
package initsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	authmodels "shop_commerce/internal/api/auth/models"
	authsvc "shop_commerce/internal/api/auth/service"
	basesvc "shop_commerce/internal/api/base/service"
	"shop_commerce/internal/common"
	"shop_commerce/internal/global"
	"shop_commerce/internal/utility"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InitService là cấu trúc chứa các phương thức khởi tạo dữ liệu ban đầu cho hệ thống
// Bao gồm khởi tạo vai trò hệ thống và tài khoản super admin
type InitService struct {
	userService     *authsvc.UserService     // Service xử lý người dùng
	roleService     *authsvc.RoleService     // Service xử lý vai trò
	userRoleService *authsvc.UserRoleService // Service xử lý quan hệ người dùng-vai trò
}

// NewInitService tạo mới một đối tượng InitService
func NewInitService() (*InitService, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}

	roleService, err := authsvc.NewRoleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create role service: %v", err)
	}

	userRoleService, err := authsvc.NewUserRoleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user role service: %v", err)
	}

	// Đăng ký hàm kiểm tra super admin cho base service (guard dữ liệu hệ thống)
	basesvc.SetIsAdminFromContextFunc(authsvc.IsUserSuperAdminFromContext)

	return &InitService{
		userService:     userService,
		roleService:     roleService,
		userRoleService: userRoleService,
	}, nil
}

// systemRoles danh sách vai trò hệ thống được seed lúc khởi động
var systemRoles = []authmodels.Role{
	{Name: authmodels.RoleSuperAdmin, Describe: "Quản trị nền tảng", Level: authmodels.LevelSuperAdmin, IsSystem: true},
	{Name: authmodels.RoleAdmin, Describe: "Chủ cửa hàng", Level: authmodels.LevelAdmin, IsSystem: true},
	{Name: authmodels.RoleManager, Describe: "Quản lý cửa hàng", Level: authmodels.LevelManager, IsSystem: true},
	{Name: authmodels.RoleStaff, Describe: "Nhân viên cửa hàng", Level: authmodels.LevelStaff, IsSystem: true},
}

// InitRoles khởi tạo các vai trò hệ thống (idempotent, upsert theo name)
func (s *InitService) InitRoles() error {
	ctx := basesvc.WithSystemDataInsertAllowed(context.Background())
	now := time.Now().UnixMilli()

	for _, role := range systemRoles {
		filter := bson.M{"name": role.Name}
		updateData := &basesvc.UpdateData{
			Set: map[string]interface{}{
				"describe":  role.Describe,
				"level":     role.Level,
				"isSystem":  true,
				"updatedAt": now,
			},
			SetOnInsert: map[string]interface{}{
				"name":      role.Name,
				"createdAt": now,
			},
		}
		if _, err := s.roleService.BaseServiceMongoImpl.Upsert(ctx, filter, updateData); err != nil {
			logrus.WithFields(logrus.Fields{"role": role.Name, "error": err.Error()}).Error("InitRoles: Lỗi khi upsert vai trò hệ thống")
			return err
		}
	}

	logrus.WithField("count", len(systemRoles)).Info("InitRoles: Đã khởi tạo vai trò hệ thống")
	return nil
}

// HasAnySuperAdmin kiểm tra hệ thống đã có SUPER_ADMIN nào chưa
func (s *InitService) HasAnySuperAdmin() (bool, error) {
	ctx := context.Background()
	role, err := s.roleService.BaseServiceMongoImpl.FindOne(ctx, bson.M{"name": authmodels.RoleSuperAdmin}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	exists, err := s.userRoleService.BaseServiceMongoImpl.DocumentExists(ctx, bson.M{"roleId": role.ID})
	if err != nil {
		return false, err
	}
	return exists, nil
}

// SetSuperAdmin gán vai trò SUPER_ADMIN cho một user (idempotent)
func (s *InitService) SetSuperAdmin(userID primitive.ObjectID) (*authmodels.UserRole, error) {
	ctx := basesvc.WithSystemDataInsertAllowed(context.Background())

	role, err := s.roleService.BaseServiceMongoImpl.FindOne(ctx, bson.M{"name": authmodels.RoleSuperAdmin}, nil)
	if err != nil {
		return nil, fmt.Errorf("vai trò SUPER_ADMIN chưa được khởi tạo: %w", err)
	}

	if _, err := s.userService.BaseServiceMongoImpl.FindOneById(ctx, userID); err != nil {
		return nil, err
	}

	existing, err := s.userRoleService.BaseServiceMongoImpl.FindOne(ctx, bson.M{"userId": userID, "roleId": role.ID}, nil)
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	userRole := authmodels.UserRole{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		RoleID:    role.ID,
		CreatedAt: time.Now().Unix(),
		UpdatedAt: time.Now().Unix(),
	}
	created, err := s.userRoleService.BaseServiceMongoImpl.InsertOne(ctx, userRole)
	if err != nil {
		return nil, err
	}
	logrus.WithField("user_id", userID.Hex()).Info("SetSuperAdmin: Đã gán vai trò SUPER_ADMIN")
	return &created, nil
}

// InitSuperAdminUser khởi tạo tài khoản super admin từ cấu hình (SUPER_ADMIN_EMAIL / SUPER_ADMIN_PASSWORD).
// Bỏ qua nếu cấu hình trống hoặc tài khoản đã tồn tại.
func (s *InitService) InitSuperAdminUser() error {
	cfg := global.ServerConfig
	if cfg == nil || cfg.SuperAdminEmail == "" || cfg.SuperAdminPassword == "" {
		return nil
	}

	ctx := basesvc.WithSystemDataInsertAllowed(context.Background())

	user, err := s.userService.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": cfg.SuperAdminEmail}, nil)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			return err
		}
		hash, hashErr := utility.HashPassword(cfg.SuperAdminPassword)
		if hashErr != nil {
			return hashErr
		}
		newUser := authmodels.User{
			Name:     "Super Admin",
			Email:    cfg.SuperAdminEmail,
			Password: hash,
			Tokens:   []authmodels.Token{},
			IsSystem: true,
		}
		user, err = s.userService.BaseServiceMongoImpl.InsertOne(ctx, newUser)
		if err != nil {
			return err
		}
		logrus.WithField("email", cfg.SuperAdminEmail).Info("InitSuperAdminUser: Đã tạo tài khoản super admin")
	}

	_, err = s.SetSuperAdmin(user.ID)
	return err
}

// InitAll chạy toàn bộ các bước khởi tạo dữ liệu theo thứ tự
func (s *InitService) InitAll() error {
	if err := s.InitRoles(); err != nil {
		return err
	}
	if err := s.InitSuperAdminUser(); err != nil {
		return err
	}
	return nil
}

// GetInitStatus trả về trạng thái khởi tạo hệ thống
func (s *InitService) GetInitStatus() (map[string]interface{}, error) {
	ctx := context.Background()

	roleCount, err := s.roleService.BaseServiceMongoImpl.CountDocuments(ctx, bson.M{"isSystem": true})
	if err != nil {
		return nil, err
	}
	hasSuperAdmin, err := s.HasAnySuperAdmin()
	if err != nil {
		return nil, err
	}
	userCount, err := s.userService.BaseServiceMongoImpl.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"systemRoles":   roleCount,
		"hasSuperAdmin": hasSuperAdmin,
		"userCount":     userCount,
	}, nil
}
