// Package authhdl - handler admin (block user, set role, set super admin).
package authhdl

import (
	"fmt"

	authdto "shop_commerce/internal/api/auth/dto"
	authmodels "shop_commerce/internal/api/auth/models"
	authsvc "shop_commerce/internal/api/auth/service"
	basehdl "shop_commerce/internal/api/base/handler"
	"shop_commerce/internal/api/initsvc"
	"shop_commerce/internal/common"
	"shop_commerce/internal/logger"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminHandler xử lý các route liên quan đến quản trị viên
type AdminHandler struct {
	*basehdl.BaseHandler[authmodels.User, authdto.UserCreateInput, authdto.UserChangeInfoInput]
	UserCRUD     *authsvc.UserService
	RoleCRUD     *authsvc.RoleService
	AdminService *authsvc.AdminService
}

// NewAdminHandler tạo một instance mới của AdminHandler
func NewAdminHandler() (*AdminHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	roleService, err := authsvc.NewRoleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create role service: %v", err)
	}
	adminService, err := authsvc.NewAdminService()
	if err != nil {
		return nil, fmt.Errorf("failed to create admin service: %v", err)
	}
	h := &AdminHandler{
		BaseHandler:  basehdl.NewBaseHandler[authmodels.User, authdto.UserCreateInput, authdto.UserChangeInfoInput](userService),
		UserCRUD:     userService,
		RoleCRUD:     roleService,
		AdminService: adminService,
	}
	return h, nil
}

// SetRoleInput đầu vào thiết lập vai trò người dùng
type SetRoleInput struct {
	Email       string `json:"email" validate:"required,email"`
	RoleID      string `json:"roleId" validate:"required"`
	ScopeShopID string `json:"scopeShopId"`
}

// HandleSetRole xử lý thiết lập vai trò cho người dùng
func (h *AdminHandler) HandleSetRole(c fiber.Ctx) error {
	var input SetRoleInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, err.Error(), common.StatusBadRequest, nil))
		return nil
	}
	roleID, err := primitive.ObjectIDFromHex(input.RoleID)
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "roleId không đúng định dạng", common.StatusBadRequest, err))
		return nil
	}
	var scopeShopID *primitive.ObjectID
	if input.ScopeShopID != "" {
		shopID, err := primitive.ObjectIDFromHex(input.ScopeShopID)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "scopeShopId không đúng định dạng", common.StatusBadRequest, err))
			return nil
		}
		scopeShopID = &shopID
	}
	result, err := h.AdminService.SetRole(c.Context(), input.Email, roleID, scopeShopID)
	if err == nil {
		logger.LogRole("set", c, map[string]interface{}{
			"email":       input.Email,
			"roleId":      input.RoleID,
			"scopeShopId": input.ScopeShopID,
		})
	}
	h.HandleResponse(c, result, err)
	return nil
}

// HandleBlockUser xử lý khóa người dùng
func (h *AdminHandler) HandleBlockUser(c fiber.Ctx) error {
	var input authdto.BlockUserInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, err.Error(), common.StatusBadRequest, nil))
		return nil
	}
	result, err := h.AdminService.BlockUser(c.Context(), input.Email, true, input.Note)
	if result != nil {
		scrubUser(result)
	}
	h.HandleResponse(c, result, err)
	return nil
}

// HandleUnBlockUser xử lý mở khóa người dùng
func (h *AdminHandler) HandleUnBlockUser(c fiber.Ctx) error {
	var input authdto.UnBlockUserInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, err.Error(), common.StatusBadRequest, nil))
		return nil
	}
	result, err := h.AdminService.UnBlockUser(c.Context(), input.Email)
	if result != nil {
		scrubUser(result)
	}
	h.HandleResponse(c, result, err)
	return nil
}

// HandleAddSuperAdmin gán vai trò SUPER_ADMIN cho một user (khi hệ thống đã có super admin)
func (h *AdminHandler) HandleAddSuperAdmin(c fiber.Ctx) error {
	id := h.GetIDFromContext(c)
	if id == "" {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
		return nil
	}
	userID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, err))
		return nil
	}
	initService, err := initsvc.NewInitService()
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeInternalServer, "Không thể khởi tạo InitService", common.StatusInternalServerError, err))
		return nil
	}
	result, err := initService.SetSuperAdmin(userID)
	h.HandleResponse(c, result, err)
	return nil
}
