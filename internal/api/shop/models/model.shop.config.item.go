// Package models - ShopConfigItem thuộc domain shop.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ShopConfigItem lưu một key config của một cửa hàng (1 document per key).
// OwnerShopID để zero với config mặc định toàn nền tảng; cửa hàng override bằng
// document riêng trừ khi default đặt AllowOverride = false.
type ShopConfigItem struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OwnerShopID   primitive.ObjectID `json:"ownerShopId,omitempty" bson:"ownerShopId,omitempty" index:"single:1,compound:owner_key_unique"`
	Key           string             `json:"key" bson:"key" index:"single:1,compound:owner_key_unique"`
	Value         interface{}        `json:"value" bson:"value"`
	Name          string             `json:"name" bson:"name"`
	Description   string             `json:"description" bson:"description"`
	DataType      string             `json:"dataType" bson:"dataType"`
	Constraints   string             `json:"constraints,omitempty" bson:"constraints,omitempty"`
	AllowOverride bool               `json:"allowOverride" bson:"allowOverride"`
	IsSystem      bool               `json:"-" bson:"isSystem" index:"single:1"`
	CreatedAt     int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`
}
