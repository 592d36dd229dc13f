// Package global chứa các biến toàn cục dùng chung của ứng dụng.
package global

import (
	"shop_commerce/config"
	"shop_commerce/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// CollectionNames chứa tên các collection trong MongoDB
type CollectionNames struct {
	Users           string // Collection người dùng
	Roles           string // Collection vai trò
	UserRoles       string // Collection gán vai trò cho người dùng
	Shops           string // Collection cửa hàng
	ShopConfigItems string // Collection cấu hình cửa hàng (1 document per key)
	Categories      string // Collection danh mục sản phẩm
	Products        string // Collection sản phẩm
	Invoices        string // Collection hóa đơn
	InvoiceChanges  string // Collection lịch sử thay đổi hóa đơn (append-only)
	Sections        string // Collection mô tả các mục chức năng (section catalog)
	SectionStates   string // Collection trạng thái ẩn/hiện các mục theo cửa hàng
	ReminderTemplates string // Collection mẫu tin nhắc (reminder template)
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration         // Cấu hình của server
var MongoDB_ColNames = CollectionNames{
	Users:             "auth_users",
	Roles:             "auth_roles",
	UserRoles:         "auth_user_roles",
	Shops:             "shops",
	ShopConfigItems:   "shop_config_items",
	Categories:        "catalog_categories",
	Products:          "catalog_products",
	Invoices:          "invoices",
	InvoiceChanges:    "invoice_changes",
	Sections:          "sections",
	SectionStates:     "section_states",
	ReminderTemplates: "reminder_templates",
}

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
