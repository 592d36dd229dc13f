// Package models - Invoice thuộc domain invoice.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái hóa đơn
const (
	InvoiceStatusDraft     = "draft"
	InvoiceStatusConfirmed = "confirmed"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusCancelled = "cancelled"
)

// LineItem một dòng hàng trên hóa đơn. ProductName và UnitPrice là snapshot
// tại thời điểm bán, không đổi khi sản phẩm trong catalog đổi giá.
type LineItem struct {
	ProductID   primitive.ObjectID `json:"productId" bson:"productId"`
	ProductName string             `json:"productName" bson:"productName"`
	Quantity    int64              `json:"quantity" bson:"quantity"`
	UnitPrice   float64            `json:"unitPrice" bson:"unitPrice"`
}

// Amount thành tiền của dòng hàng.
func (li LineItem) Amount() float64 {
	return float64(li.Quantity) * li.UnitPrice
}

// Invoice hóa đơn bán hàng của một cửa hàng.
type Invoice struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OwnerShopID   primitive.ObjectID `json:"ownerShopId" bson:"ownerShopId" index:"single:1,compound:shop_code_unique"`
	Code          string             `json:"code" bson:"code" index:"compound:shop_code_unique"`
	CustomerName  string             `json:"customerName,omitempty" bson:"customerName,omitempty"`
	CustomerPhone string             `json:"customerPhone,omitempty" bson:"customerPhone,omitempty" index:"single:1"`
	Items         []LineItem         `json:"items" bson:"items"`
	Total         float64            `json:"total" bson:"total"`
	Status        string             `json:"status" bson:"status" index:"single:1"`
	Note          string             `json:"note,omitempty" bson:"note,omitempty"`
	CreatedAt     int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`
}

// ComputeTotal tổng thành tiền của các dòng hàng.
func ComputeTotal(items []LineItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Amount()
	}
	return total
}
