// Package dto - DTO cho domain shop.
package dto

// ShopCreateInput đầu vào tạo cửa hàng mới.
type ShopCreateInput struct {
	Name        string `json:"name" validate:"required,no_xss" maxLength:"200"`
	Code        string `json:"code" validate:"required,no_xss" maxLength:"50"`
	Address     string `json:"address,omitempty" validate:"omitempty,no_xss" maxLength:"500"`
	Phone       string `json:"phone,omitempty" maxLength:"20"`
	Description string `json:"description,omitempty" validate:"omitempty,no_xss" maxLength:"1000"`
	IsActive    bool   `json:"isActive"`
}

// ShopUpdateInput đầu vào cập nhật cửa hàng.
type ShopUpdateInput struct {
	Name        string `json:"name,omitempty" validate:"omitempty,no_xss" maxLength:"200"`
	Address     string `json:"address,omitempty" validate:"omitempty,no_xss" maxLength:"500"`
	Phone       string `json:"phone,omitempty" maxLength:"20"`
	Description string `json:"description,omitempty" validate:"omitempty,no_xss" maxLength:"1000"`
	IsActive    *bool  `json:"isActive,omitempty"`
}
