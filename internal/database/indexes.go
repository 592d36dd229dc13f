// Package database - Index cho các collection (unique, compound) tạo lúc khởi động.
package database

import (
	"context"
	"strings"

	"shop_commerce/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIndexes tạo các index cần thiết cho toàn bộ collection.
// Index đã tồn tại được bỏ qua (không coi là lỗi).
func CreateIndexes(ctx context.Context, db *mongo.Database) error {
	// auth_users: email unique
	users := db.Collection(global.MongoDB_ColNames.Users)
	if _, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("user_email_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// auth_users: tokens multikey — lookup bearer token của middleware auth
	if _, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "tokens.jwtToken", Value: 1}},
		Options: options.Index().SetName("user_tokens").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// auth_roles: name unique
	roles := db.Collection(global.MongoDB_ColNames.Roles)
	if _, err := roles.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetName("role_name_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// auth_user_roles: (userId, roleId) unique
	userRoles := db.Collection(global.MongoDB_ColNames.UserRoles)
	if _, err := userRoles.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "roleId", Value: 1},
		},
		Options: options.Index().SetName("user_role_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// shops: code unique
	shops := db.Collection(global.MongoDB_ColNames.Shops)
	if _, err := shops.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "code", Value: 1}},
		Options: options.Index().SetName("shop_code_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// shop_config_items: (ownerShopId, key) unique — 1 document per key
	shopConfigs := db.Collection(global.MongoDB_ColNames.ShopConfigItems)
	if _, err := shopConfigs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "ownerShopId", Value: 1},
			{Key: "key", Value: 1},
		},
		Options: options.Index().SetName("shop_config_owner_key_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// catalog_categories: (ownerShopId, name) unique
	categories := db.Collection(global.MongoDB_ColNames.Categories)
	if _, err := categories.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "ownerShopId", Value: 1},
			{Key: "name", Value: 1},
		},
		Options: options.Index().SetName("category_owner_name_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// catalog_products: (ownerShopId, sku) unique sparse
	products := db.Collection(global.MongoDB_ColNames.Products)
	if _, err := products.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "ownerShopId", Value: 1},
			{Key: "sku", Value: 1},
		},
		Options: options.Index().SetName("product_owner_sku_unique").SetUnique(true).SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// invoices: (ownerShopId, code) unique
	invoices := db.Collection(global.MongoDB_ColNames.Invoices)
	if _, err := invoices.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "ownerShopId", Value: 1},
			{Key: "code", Value: 1},
		},
		Options: options.Index().SetName("invoice_owner_code_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// invoice_changes: (invoiceId, createdAt) — đọc lịch sử theo thứ tự thời gian
	invoiceChanges := db.Collection(global.MongoDB_ColNames.InvoiceChanges)
	if _, err := invoiceChanges.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "invoiceId", Value: 1},
			{Key: "createdAt", Value: 1},
		},
		Options: options.Index().SetName("invoice_change_invoice_time"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// sections: path unique — catalog mục chức năng
	sections := db.Collection(global.MongoDB_ColNames.Sections)
	if _, err := sections.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "path", Value: 1}},
		Options: options.Index().SetName("section_path_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// section_states: ownerShopId unique — 1 document trạng thái ẩn/hiện per shop
	sectionStates := db.Collection(global.MongoDB_ColNames.SectionStates)
	if _, err := sectionStates.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "ownerShopId", Value: 1}},
		Options: options.Index().SetName("section_state_owner_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// reminder_templates: (ownerShopId, name) unique — tên mẫu duy nhất trong cửa hàng
	reminders := db.Collection(global.MongoDB_ColNames.ReminderTemplates)
	if _, err := reminders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "ownerShopId", Value: 1},
			{Key: "name", Value: 1},
		},
		Options: options.Index().SetName("reminder_owner_name_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
