// Package models - Role thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tên các vai trò hệ thống. Vai trò hệ thống được seed lúc khởi động và không thể xóa.
const (
	RoleSuperAdmin = "SUPER_ADMIN" // Quản trị nền tảng, không gắn với cửa hàng nào
	RoleAdmin      = "ADMIN"       // Chủ cửa hàng
	RoleManager    = "MANAGER"     // Quản lý cửa hàng
	RoleStaff      = "STAFF"       // Nhân viên cửa hàng
)

// Level của các vai trò hệ thống. Level cao hơn bao quyền level thấp hơn.
const (
	LevelSuperAdmin = 100
	LevelAdmin      = 80
	LevelManager    = 50
	LevelStaff      = 10
)

// SystemRoleLevel trả về level của vai trò hệ thống theo tên (0 nếu không phải vai trò hệ thống).
func SystemRoleLevel(name string) int {
	switch name {
	case RoleSuperAdmin:
		return LevelSuperAdmin
	case RoleAdmin:
		return LevelAdmin
	case RoleManager:
		return LevelManager
	case RoleStaff:
		return LevelStaff
	default:
		return 0
	}
}

// Role vai trò trong hệ thống.
type Role struct {
	_Relationships struct{}           `relationship:"collection:auth_user_roles,field:roleId,message:Không thể xóa role vì có %d user đang sử dụng role này. Vui lòng gỡ role khỏi các user trước."`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name" index:"unique"`
	Describe       string             `json:"describe" bson:"describe"`
	Level          int                `json:"level" bson:"level"`
	IsSystem       bool               `json:"-" bson:"isSystem" index:"single:1"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
