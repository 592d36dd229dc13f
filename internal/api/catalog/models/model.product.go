// Package models - Product thuộc domain catalog.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product một sản phẩm của cửa hàng. Giá ở đây là giá niêm yết hiện tại;
// hóa đơn giữ snapshot giá riêng tại thời điểm bán.
type Product struct {
	ID          primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	OwnerShopID primitive.ObjectID  `json:"ownerShopId" bson:"ownerShopId" index:"single:1,compound:shop_sku_unique"`
	CategoryID  *primitive.ObjectID `json:"categoryId,omitempty" bson:"categoryId,omitempty" index:"single:1"`
	SKU         string              `json:"sku" bson:"sku" index:"compound:shop_sku_unique"`
	Name        string              `json:"name" bson:"name" index:"single:1"`
	Description string              `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64             `json:"price" bson:"price"`
	Unit        string              `json:"unit,omitempty" bson:"unit,omitempty"`
	StockQty    int64               `json:"stockQty" bson:"stockQty"`
	ImageURL    string              `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	IsActive    bool                `json:"isActive" bson:"isActive" index:"single:1"`
	CreatedAt   int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64               `json:"updatedAt" bson:"updatedAt"`
}
