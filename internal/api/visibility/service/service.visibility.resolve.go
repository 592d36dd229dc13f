// Package visibilitysvc - resolver ẩn/hiện section theo vai trò.
package visibilitysvc

import (
	"strings"

	authmodels "shop_commerce/internal/api/auth/models"
	models "shop_commerce/internal/api/visibility/models"
)

// Matches kiểm tra path có khớp với hideSet không. Khớp khi một trong ba:
//  1. path nằm đúng trong hideSet
//  2. path là con của một path bị ẩn (ẩn "/invoices" kéo theo "/invoices/create")
//  3. path nằm trong relatedPaths của một descriptor có path bị ẩn
func Matches(path string, hideSet []string, catalog []models.SectionDescriptor) bool {
	for _, hidden := range hideSet {
		if path == hidden {
			return true
		}
		if strings.HasPrefix(path, hidden+"/") {
			return true
		}
	}
	for _, descriptor := range catalog {
		hidden := false
		for _, h := range hideSet {
			if descriptor.Path == h {
				hidden = true
				break
			}
		}
		if !hidden {
			continue
		}
		for _, related := range descriptor.RelatedPaths {
			if path == related {
				return true
			}
		}
	}
	return false
}

// IsVisible kiểm tra một path có hiển thị với vai trò đã cho không.
//
// SUPER_ADMIN luôn thấy mọi section. ADMIN bỏ qua hide của cửa hàng mình
// nhưng vẫn chịu hide mức nền tảng. MANAGER và STAFF chịu cả hai lớp,
// lớp nền tảng luôn thắng.
//
// Hàm thuần: chỉ đọc tham số, không I/O, gọi song song an toàn.
func IsVisible(path string, role string, state *models.SectionVisibility, catalog []models.SectionDescriptor) bool {
	if role == authmodels.RoleSuperAdmin {
		return true
	}
	if state == nil {
		return true
	}
	if Matches(path, state.PlatformHidden, catalog) {
		return false
	}
	if role == authmodels.RoleAdmin {
		return true
	}
	return !Matches(path, state.ShopHidden, catalog)
}

// VisibleSections lọc danh mục section còn hiển thị với vai trò đã cho.
func VisibleSections(role string, state *models.SectionVisibility, catalog []models.SectionDescriptor) []models.SectionDescriptor {
	result := make([]models.SectionDescriptor, 0, len(catalog))
	for _, descriptor := range catalog {
		if IsVisible(descriptor.Path, role, state, catalog) {
			result = append(result, descriptor)
		}
	}
	return result
}
