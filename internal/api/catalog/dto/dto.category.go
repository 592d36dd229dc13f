// Package dto - DTO cho domain catalog (category).
package dto

// CategoryCreateInput đầu vào tạo danh mục.
type CategoryCreateInput struct {
	OwnerShopID string `json:"ownerShopId,omitempty" transform:"str_objectid,optional"`
	Name        string `json:"name" validate:"required,no_xss" maxLength:"200"`
	Description string `json:"description,omitempty" validate:"omitempty,no_xss" maxLength:"1000"`
	SortOrder   int    `json:"sortOrder"`
	IsActive    bool   `json:"isActive"`
}

// CategoryUpdateInput đầu vào cập nhật danh mục.
type CategoryUpdateInput struct {
	Name        string `json:"name,omitempty" validate:"omitempty,no_xss" maxLength:"200"`
	Description string `json:"description,omitempty" validate:"omitempty,no_xss" maxLength:"1000"`
	SortOrder   *int   `json:"sortOrder,omitempty"`
	IsActive    *bool  `json:"isActive,omitempty"`
}
