// Package dto - DTO cho domain catalog (product).
package dto

// ProductCreateInput đầu vào tạo sản phẩm.
type ProductCreateInput struct {
	OwnerShopID string  `json:"ownerShopId,omitempty" transform:"str_objectid,optional"`
	CategoryID  string  `json:"categoryId,omitempty" transform:"str_objectid_ptr,optional"`
	SKU         string  `json:"sku" validate:"required,no_xss" maxLength:"100"`
	Name        string  `json:"name" validate:"required,no_xss" maxLength:"300"`
	Description string  `json:"description,omitempty" validate:"omitempty,no_xss" maxLength:"2000"`
	Price       float64 `json:"price" validate:"gte=0"`
	Unit        string  `json:"unit,omitempty" maxLength:"50"`
	StockQty    int64   `json:"stockQty" validate:"gte=0"`
	ImageURL    string  `json:"imageUrl,omitempty" validate:"omitempty,url"`
	IsActive    bool    `json:"isActive"`
}

// ProductUpdateInput đầu vào cập nhật sản phẩm.
type ProductUpdateInput struct {
	CategoryID  string   `json:"categoryId,omitempty" transform:"str_objectid_ptr,optional"`
	Name        string   `json:"name,omitempty" validate:"omitempty,no_xss" maxLength:"300"`
	Description string   `json:"description,omitempty" validate:"omitempty,no_xss" maxLength:"2000"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Unit        string   `json:"unit,omitempty" maxLength:"50"`
	StockQty    *int64   `json:"stockQty,omitempty" validate:"omitempty,gte=0"`
	ImageURL    string   `json:"imageUrl,omitempty" validate:"omitempty,url"`
	IsActive    *bool    `json:"isActive,omitempty"`
}
