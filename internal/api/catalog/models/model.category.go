// Package models - Category thuộc domain catalog.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category nhóm sản phẩm trong một cửa hàng.
type Category struct {
	_Relationships struct{}           `relationship:"collection:catalog_products,field:categoryId,message:Không thể xóa danh mục vì có %d sản phẩm trực thuộc. Vui lòng xóa hoặc di chuyển các sản phẩm trước."`
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OwnerShopID    primitive.ObjectID `json:"ownerShopId" bson:"ownerShopId" index:"single:1,compound:shop_name_unique"`
	Name           string             `json:"name" bson:"name" index:"compound:shop_name_unique"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	SortOrder      int                `json:"sortOrder" bson:"sortOrder"`
	IsActive       bool               `json:"isActive" bson:"isActive" index:"single:1"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
