// Package models - InvoiceChange thuộc domain invoice.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các hành động thay đổi dòng hàng trên hóa đơn
const (
	ChangeActionAdded        = "ADDED"
	ChangeActionRemoved      = "REMOVED"
	ChangeActionQtyIncreased = "QTY_INCREASED"
	ChangeActionQtyDecreased = "QTY_DECREASED"
	ChangeActionPriceChanged = "PRICE_CHANGED"
)

// ChangeRecord mô tả một thay đổi của một sản phẩm trên hóa đơn.
// Mỗi sản phẩm sinh tối đa một record trong một lần sửa.
// AmountChange là chênh lệch thành tiền do thay đổi này gây ra:
// tổng AmountChange của một lần sửa bằng chênh lệch tổng hóa đơn.
type ChangeRecord struct {
	Action        string             `json:"action" bson:"action"`
	ProductID     primitive.ObjectID `json:"productId" bson:"productId"`
	ProductName   string             `json:"productName" bson:"productName"`
	OldQuantity   int64              `json:"oldQuantity" bson:"oldQuantity"`
	NewQuantity   int64              `json:"newQuantity" bson:"newQuantity"`
	UnitPrice     float64            `json:"unitPrice" bson:"unitPrice"`
	AmountChange  float64            `json:"amountChange" bson:"amountChange"`
	ChangedByName string             `json:"changedByName" bson:"changedByName"`
	Notes         string             `json:"notes,omitempty" bson:"notes,omitempty"`
}

// InvoiceChange một lần sửa hóa đơn, lưu append-only làm lịch sử audit.
type InvoiceChange struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OwnerShopID primitive.ObjectID `json:"ownerShopId" bson:"ownerShopId" index:"single:1"`
	InvoiceID   primitive.ObjectID `json:"invoiceId" bson:"invoiceId" index:"single:1"`
	ActorName   string             `json:"actorName" bson:"actorName"`
	Changes     []ChangeRecord     `json:"changes" bson:"changes"`
	TotalBefore float64            `json:"totalBefore" bson:"totalBefore"`
	TotalAfter  float64            `json:"totalAfter" bson:"totalAfter"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
