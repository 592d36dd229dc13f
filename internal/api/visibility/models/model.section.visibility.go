// Package models - SectionVisibility thuộc domain visibility.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SectionVisibility trạng thái ẩn/hiện section của một cửa hàng.
// PlatformHidden do SUPER_ADMIN áp xuống cửa hàng; ShopHidden do ADMIN
// của cửa hàng tự đặt. Cả hai đều được thay thế nguyên khối khi cập nhật.
type SectionVisibility struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OwnerShopID    primitive.ObjectID `json:"ownerShopId" bson:"ownerShopId" index:"unique"`
	PlatformHidden []string           `json:"platformHidden" bson:"platformHidden"`
	ShopHidden     []string           `json:"shopHidden" bson:"shopHidden"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
