// Package authhdl - handler init (seed roles hệ thống, set super admin lần đầu).
package authhdl

import (
	"fmt"

	basehdl "shop_commerce/internal/api/base/handler"
	"shop_commerce/internal/api/initsvc"
	"shop_commerce/internal/common"
	"shop_commerce/internal/utility"

	"github.com/gofiber/fiber/v3"
)

// InitHandler xử lý các route khởi tạo hệ thống
type InitHandler struct {
	*basehdl.BaseHandler[interface{}, interface{}, interface{}]
	initService *initsvc.InitService
}

// NewInitHandler tạo một instance mới của InitHandler
func NewInitHandler() (*InitHandler, error) {
	h := &InitHandler{}
	h.BaseHandler = &basehdl.BaseHandler[interface{}, interface{}, interface{}]{}

	initService, err := initsvc.NewInitService()
	if err != nil {
		return nil, fmt.Errorf("failed to create init service: %v", err)
	}
	h.initService = initService
	return h, nil
}

// HandleSetSuperAdmin thiết lập super admin đầu tiên (chỉ khi hệ thống chưa có super admin)
func (h *InitHandler) HandleSetSuperAdmin(c fiber.Ctx) error {
	hasSuperAdmin, err := h.initService.HasAnySuperAdmin()
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeInternalServer, "Không thể kiểm tra trạng thái super admin", common.StatusInternalServerError, err))
		return nil
	}
	if hasSuperAdmin {
		h.HandleResponse(c, nil, common.NewError(
			common.ErrCodeBusinessState,
			"Hệ thống đã có super admin. Vui lòng sử dụng endpoint /admin/user/set-super-admin/:id với quyền SUPER_ADMIN.",
			common.StatusForbidden, nil))
		return nil
	}
	id := h.GetIDFromContext(c)
	if id == "" {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
		return nil
	}
	result, err := h.initService.SetSuperAdmin(utility.String2ObjectID(id))
	h.HandleResponse(c, result, err)
	return nil
}

// HandleInitRoles khởi tạo các vai trò hệ thống
func (h *InitHandler) HandleInitRoles(c fiber.Ctx) error {
	if err := h.initService.InitRoles(); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, map[string]string{"message": "Roles đã được khởi tạo thành công"}, nil)
	return nil
}

// HandleInitAll khởi tạo tất cả (Roles, Super Admin từ cấu hình)
func (h *InitHandler) HandleInitAll(c fiber.Ctx) error {
	results := make(map[string]interface{})
	if err := h.initService.InitRoles(); err != nil {
		results["roles"] = map[string]string{"status": "failed", "error": err.Error()}
	} else {
		results["roles"] = map[string]string{"status": "success"}
	}
	if err := h.initService.InitSuperAdminUser(); err != nil {
		results["superAdmin"] = map[string]string{"status": "failed", "error": err.Error()}
	} else {
		results["superAdmin"] = map[string]string{"status": "success"}
	}
	h.HandleResponse(c, results, nil)
	return nil
}

// HandleInitStatus kiểm tra trạng thái khởi tạo hệ thống
func (h *InitHandler) HandleInitStatus(c fiber.Ctx) error {
	status, err := h.initService.GetInitStatus()
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, status, nil)
	return nil
}
