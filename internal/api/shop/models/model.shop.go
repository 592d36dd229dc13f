// Package models - Shop thuộc domain shop.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Shop đại diện một cửa hàng trên nền tảng.
// Mọi dữ liệu nghiệp vụ (sản phẩm, hóa đơn, cấu hình) đều scoped theo OwnerShopID trỏ về đây.
type Shop struct {
	_Relationships struct{}           `relationship:"collection:auth_user_roles,field:scopeShopId,message:Không thể xóa cửa hàng vì có %d phân quyền trực thuộc. Vui lòng thu hồi các phân quyền trước."`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name" index:"single:1"`
	Code           string             `json:"code" bson:"code" index:"unique"`
	Address        string             `json:"address,omitempty" bson:"address,omitempty"`
	Phone          string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	IsActive       bool               `json:"isActive" bson:"isActive" index:"single:1"`
	IsSystem       bool               `json:"-" bson:"isSystem" index:"single:1"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
