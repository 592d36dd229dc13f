// Package dto - DTO cho domain visibility.
package dto

// SectionCreateInput đầu vào tạo một section trong danh mục.
type SectionCreateInput struct {
	Path         string   `json:"path" validate:"required,section_path"`
	Label        string   `json:"label" validate:"required,no_xss" maxLength:"200"`
	RelatedPaths []string `json:"relatedPaths,omitempty" validate:"omitempty,dive,section_path"`
	SortOrder    int      `json:"sortOrder"`
}

// SectionUpdateInput đầu vào cập nhật một section.
type SectionUpdateInput struct {
	Label        string   `json:"label,omitempty" validate:"omitempty,no_xss" maxLength:"200"`
	RelatedPaths []string `json:"relatedPaths,omitempty" validate:"omitempty,dive,section_path"`
	SortOrder    *int     `json:"sortOrder,omitempty"`
}

// HideSetReplaceInput đầu vào thay thế nguyên khối một hide-set của cửa hàng.
type HideSetReplaceInput struct {
	OwnerShopID string   `json:"ownerShopId" validate:"required"`
	Paths       []string `json:"paths" validate:"omitempty,dive,section_path"`
}
