// Package dto - DTO cho shop config item.
package dto

// ShopConfigItemUpsertInput body cho upsert một config item.
// OwnerShopID bỏ trống khi SUPER_ADMIN tạo config mặc định toàn nền tảng.
type ShopConfigItemUpsertInput struct {
	OwnerShopID   string      `json:"ownerShopId,omitempty" transform:"str_objectid,optional"`
	Key           string      `json:"key" validate:"required"`
	Value         interface{} `json:"value"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	DataType      string      `json:"dataType"`
	Constraints   string      `json:"constraints,omitempty"`
	AllowOverride bool        `json:"allowOverride"`
}
