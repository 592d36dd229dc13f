package authdto

// UserRoleCreateInput đầu vào gán vai trò cho người dùng.
// ScopeShopID bỏ trống với vai trò phạm vi toàn nền tảng (SUPER_ADMIN).
type UserRoleCreateInput struct {
	UserID      string `json:"userId" validate:"required" transform:"str_objectid"`
	RoleID      string `json:"roleId" validate:"required" transform:"str_objectid"`
	ScopeShopID string `json:"scopeShopId,omitempty" transform:"str_objectid_ptr,optional"`
}

// UserRoleUpdateInput đầu vào thay thế toàn bộ danh sách vai trò của một người dùng.
type UserRoleUpdateInput struct {
	UserID  string   `json:"userId" validate:"required"`
	RoleIDs []string `json:"roleIds" validate:"required"`
}
