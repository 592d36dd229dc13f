// Package visibilitysvc - test resolver ẩn/hiện section theo vai trò.
package visibilitysvc

import (
	"testing"

	authmodels "shop_commerce/internal/api/auth/models"
	models "shop_commerce/internal/api/visibility/models"
)

func testCatalog() []models.SectionDescriptor {
	return []models.SectionDescriptor{
		{Path: "/dashboard", Label: "Tổng quan"},
		{Path: "/invoices", Label: "Hóa đơn"},
		{Path: "/products", Label: "Sản phẩm", RelatedPaths: []string{"/products/labels"}},
		{Path: "/products/labels", Label: "In nhãn"},
		{Path: "/settings", Label: "Cài đặt"},
	}
}

func TestMatches_Exact(t *testing.T) {
	if !Matches("/invoices", []string{"/invoices"}, testCatalog()) {
		t.Error("path nằm đúng trong hideSet phải khớp")
	}
	if Matches("/dashboard", []string{"/invoices"}, testCatalog()) {
		t.Error("path không liên quan không được khớp")
	}
}

func TestMatches_Prefix(t *testing.T) {
	if !Matches("/invoices/create", []string{"/invoices"}, testCatalog()) {
		t.Error("ẩn /invoices phải kéo theo /invoices/create")
	}
	// Prefix phải theo ranh giới segment, không phải prefix chuỗi
	if Matches("/invoicesarchive", []string{"/invoices"}, testCatalog()) {
		t.Error("/invoicesarchive không phải con của /invoices")
	}
}

func TestMatches_RelatedPaths(t *testing.T) {
	if !Matches("/products/labels", []string{"/products"}, testCatalog()) {
		t.Error("ẩn /products phải kéo theo relatedPath /products/labels")
	}
	// relatedPaths chỉ có hiệu lực khi descriptor chứa nó bị ẩn
	if Matches("/products/labels", []string{"/dashboard"}, testCatalog()) {
		t.Error("relatedPath không được khớp khi descriptor cha không bị ẩn")
	}
}

func TestIsVisible_SuperAdminAlwaysSees(t *testing.T) {
	state := &models.SectionVisibility{
		PlatformHidden: []string{"/invoices", "/products"},
		ShopHidden:     []string{"/dashboard"},
	}
	for _, d := range testCatalog() {
		if !IsVisible(d.Path, authmodels.RoleSuperAdmin, state, testCatalog()) {
			t.Errorf("SUPER_ADMIN phải thấy mọi section, bị ẩn: %s", d.Path)
		}
	}
}

func TestIsVisible_AdminIgnoresShopHiddenButNotPlatform(t *testing.T) {
	state := &models.SectionVisibility{
		PlatformHidden: []string{"/settings"},
		ShopHidden:     []string{"/invoices"},
	}
	if !IsVisible("/invoices", authmodels.RoleAdmin, state, testCatalog()) {
		t.Error("ADMIN phải bỏ qua hide mức cửa hàng")
	}
	if IsVisible("/settings", authmodels.RoleAdmin, state, testCatalog()) {
		t.Error("ADMIN vẫn phải chịu hide mức nền tảng")
	}
}

func TestIsVisible_StaffSubjectToBothLayers(t *testing.T) {
	state := &models.SectionVisibility{
		PlatformHidden: []string{"/settings"},
		ShopHidden:     []string{"/invoices"},
	}
	for _, role := range []string{authmodels.RoleManager, authmodels.RoleStaff} {
		if IsVisible("/settings", role, state, testCatalog()) {
			t.Errorf("%s phải chịu hide mức nền tảng", role)
		}
		if IsVisible("/invoices", role, state, testCatalog()) {
			t.Errorf("%s phải chịu hide mức cửa hàng", role)
		}
		if !IsVisible("/dashboard", role, state, testCatalog()) {
			t.Errorf("%s phải thấy section không bị ẩn", role)
		}
	}
}

func TestIsVisible_NilStateShowsAll(t *testing.T) {
	if !IsVisible("/invoices", authmodels.RoleStaff, nil, testCatalog()) {
		t.Error("chưa có trạng thái ẩn/hiện thì mọi section đều hiển thị")
	}
}

func TestVisibleSections_FiltersCatalog(t *testing.T) {
	state := &models.SectionVisibility{
		ShopHidden: []string{"/products"},
	}
	visible := VisibleSections(authmodels.RoleStaff, state, testCatalog())

	for _, d := range visible {
		if d.Path == "/products" || d.Path == "/products/labels" {
			t.Errorf("section %s phải bị ẩn với STAFF", d.Path)
		}
	}
	// 5 section, ẩn /products kéo theo /products/labels
	if len(visible) != 3 {
		t.Errorf("kỳ vọng 3 section hiển thị, nhận %d", len(visible))
	}
}
