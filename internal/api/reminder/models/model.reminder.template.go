// Package models - ReminderTemplate thuộc domain reminder.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Kênh gửi nhắc hẹn
const (
	ChannelWhatsapp = "whatsapp"
	ChannelTelegram = "telegram"
)

// ReminderTemplate mẫu tin nhắn nhắc hẹn của một cửa hàng.
// Content chứa placeholder dạng {{tên_biến}}; Variables liệt kê các biến
// template mong đợi để client hiển thị form nhập.
type ReminderTemplate struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OwnerShopID primitive.ObjectID `json:"ownerShopId" bson:"ownerShopId" index:"single:1,compound:shop_name_unique"`
	Name        string             `json:"name" bson:"name" index:"compound:shop_name_unique"`
	Channel     string             `json:"channel" bson:"channel" index:"single:1"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Content     string             `json:"content" bson:"content"`
	Variables   []string           `json:"variables" bson:"variables"`
	IsActive    bool               `json:"isActive" bson:"isActive" index:"single:1"`
	IsSystem    bool               `json:"-" bson:"isSystem" index:"single:1"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
