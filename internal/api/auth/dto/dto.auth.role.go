package authdto

// RoleCreateInput dùng cho tạo vai trò.
type RoleCreateInput struct {
	Name     string `json:"name" validate:"required"`
	Describe string `json:"describe,omitempty"`
	Level    int    `json:"level" validate:"gte=0,lte=100"`
}

// RoleUpdateInput dùng cho cập nhật vai trò.
type RoleUpdateInput struct {
	Name     string `json:"name"`
	Describe string `json:"describe"`
	Level    int    `json:"level" validate:"gte=0,lte=100"`
}
