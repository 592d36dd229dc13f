// Package visibilityhdl - Handler danh mục section và trạng thái ẩn/hiện.
package visibilityhdl

import (
	"fmt"

	basehdl "shop_commerce/internal/api/base/handler"
	"shop_commerce/internal/common"
	visibilitydto "shop_commerce/internal/api/visibility/dto"
	models "shop_commerce/internal/api/visibility/models"
	visibilitysvc "shop_commerce/internal/api/visibility/service"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SectionHandler xử lý CRUD danh mục section và các endpoint ẩn/hiện
type SectionHandler struct {
	*basehdl.BaseHandler[models.SectionDescriptor, visibilitydto.SectionCreateInput, visibilitydto.SectionUpdateInput]
	SectionService    *visibilitysvc.SectionService
	VisibilityService *visibilitysvc.SectionVisibilityService
}

// NewSectionHandler tạo mới SectionHandler
func NewSectionHandler() (*SectionHandler, error) {
	sectionService, err := visibilitysvc.NewSectionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create section service: %v", err)
	}
	visibilityService, err := visibilitysvc.NewSectionVisibilityService()
	if err != nil {
		return nil, fmt.Errorf("failed to create section visibility service: %v", err)
	}
	base := basehdl.NewBaseHandler[models.SectionDescriptor, visibilitydto.SectionCreateInput, visibilitydto.SectionUpdateInput](sectionService)
	return &SectionHandler{
		BaseHandler:       base,
		SectionService:    sectionService,
		VisibilityService: visibilityService,
	}, nil
}

// actorRole lấy tên vai trò đang hoạt động từ context xác thực.
func actorRole(c fiber.Ctx) string {
	if role, ok := c.Locals("user_role").(string); ok {
		return role
	}
	return ""
}

// resolveShopID lấy shop đích từ query hoặc từ active shop của phiên.
func (h *SectionHandler) resolveShopID(c fiber.Ctx) (primitive.ObjectID, error) {
	if shopIDStr := c.Query("ownerShopId"); shopIDStr != "" {
		shopID, err := primitive.ObjectIDFromHex(shopIDStr)
		if err != nil {
			return primitive.NilObjectID, common.NewError(common.ErrCodeValidationInput, "ownerShopId không hợp lệ", common.StatusBadRequest, err)
		}
		if err := h.ValidateUserHasAccessToShop(c, shopID); err != nil {
			return primitive.NilObjectID, err
		}
		return shopID, nil
	}
	if shopID := h.GetActiveShopID(c); shopID != nil {
		return *shopID, nil
	}
	return primitive.NilObjectID, common.NewError(common.ErrCodeValidationInput, "Thiếu ownerShopId", common.StatusBadRequest, nil)
}

// HandleGetVisible xử lý GET /sections/visible: danh mục section còn hiển thị
// với vai trò của phiên trên cửa hàng đích.
func (h *SectionHandler) HandleGetVisible(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		shopID, err := h.resolveShopID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		catalog, err := h.SectionService.GetCatalog(c.Context())
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		state, err := h.VisibilityService.GetState(c.Context(), shopID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		visible := visibilitysvc.VisibleSections(actorRole(c), state, catalog)
		h.HandleResponse(c, visible, nil)
		return nil
	})
}

// HandleCheckVisible xử lý GET /sections/check?path=...: một path có hiển thị
// với vai trò của phiên trên cửa hàng đích không.
func (h *SectionHandler) HandleCheckVisible(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		path := c.Query("path")
		if path == "" {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Thiếu tham số path", common.StatusBadRequest, nil))
			return nil
		}
		shopID, err := h.resolveShopID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		catalog, err := h.SectionService.GetCatalog(c.Context())
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		state, err := h.VisibilityService.GetState(c.Context(), shopID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		visible := visibilitysvc.IsVisible(path, actorRole(c), state, catalog)
		h.HandleResponse(c, fiber.Map{"path": path, "visible": visible}, nil)
		return nil
	})
}

// HandleGetState xử lý GET /sections/state: trạng thái ẩn/hiện thô của cửa hàng.
func (h *SectionHandler) HandleGetState(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		shopID, err := h.resolveShopID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		state, err := h.VisibilityService.GetState(c.Context(), shopID)
		h.HandleResponse(c, state, err)
		return nil
	})
}

// handleReplaceHideSet dùng chung cho hai endpoint thay thế hide-set.
func (h *SectionHandler) handleReplaceHideSet(c fiber.Ctx, platform bool) error {
	return h.SafeHandler(c, func() error {
		var input visibilitydto.HideSetReplaceInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		shopID, err := primitive.ObjectIDFromHex(input.OwnerShopID)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "ownerShopId không hợp lệ", common.StatusBadRequest, err))
			return nil
		}
		role := actorRole(c)
		// SUPER_ADMIN thao tác cross-shop, vai trò khác phải thuộc cửa hàng đích
		if err := h.ValidateUserHasAccessToShop(c, shopID); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		var state *models.SectionVisibility
		if platform {
			state, err = h.VisibilityService.SetPlatformHidden(c.Context(), role, shopID, input.Paths)
		} else {
			state, err = h.VisibilityService.SetShopHidden(c.Context(), role, shopID, input.Paths)
		}
		h.HandleResponse(c, state, err)
		return nil
	})
}

// HandleSetPlatformHidden xử lý PUT /sections/platform-hidden (chỉ SUPER_ADMIN)
func (h *SectionHandler) HandleSetPlatformHidden(c fiber.Ctx) error {
	return h.handleReplaceHideSet(c, true)
}

// HandleSetShopHidden xử lý PUT /sections/shop-hidden (ADMIN trở lên)
func (h *SectionHandler) HandleSetShopHidden(c fiber.Ctx) error {
	return h.handleReplaceHideSet(c, false)
}
