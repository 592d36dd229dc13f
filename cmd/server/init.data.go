package main

import (
	"context"

	"shop_commerce/internal/api/events"
	"shop_commerce/internal/api/initsvc"
	visibilitysvc "shop_commerce/internal/api/visibility/service"
	"shop_commerce/internal/logger"
	"shop_commerce/internal/utility"
)

// initDataChangeLog đăng ký handler ghi log mọi thay đổi dữ liệu qua CRUD (mức debug).
// Handler chạy trong GoProtect để một panic khi ghi log không kéo sập luồng CRUD.
func initDataChangeLog() {
	events.OnDataChanged(func(ctx context.Context, e events.DataChangeEvent) {
		utility.GoProtect(func() {
			entry := logger.GetAppLogger().WithFields(map[string]interface{}{
				"collection": e.CollectionName,
				"operation":  e.Operation,
			})
			if shopID := events.GetOwnerShopIDFromDocument(e.Document); !shopID.IsZero() {
				entry = entry.WithField("ownerShopId", shopID.Hex())
			}
			entry.Debug("Data changed")
		})
	})
}

// InitDefaultData khởi tạo dữ liệu mặc định: vai trò hệ thống, super admin (nếu có config) và catalog section.
func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("Starting InitDefaultData...")

	initDataChangeLog()

	initService, err := initsvc.NewInitService()
	if err != nil {
		log.Fatalf("Failed to initialize init service: %v", err)
	}

	// 1. Vai trò hệ thống (SUPER_ADMIN, ADMIN, MANAGER, STAFF) + super admin từ env (nếu có)
	if err := initService.InitAll(); err != nil {
		log.Fatalf("Failed to initialize default roles: %v", err)
	}
	log.Info("System roles initialized")

	// 2. Catalog section mặc định (dashboard, invoices, products, ...)
	sectionService, err := visibilitysvc.NewSectionService()
	if err != nil {
		log.Fatalf("Failed to initialize section service: %v", err)
	}
	if err := sectionService.SeedDefaults(context.Background()); err != nil {
		// Không fatal: server vẫn chạy được, SUPER_ADMIN có thể tạo section thủ công
		log.WithError(err).Warn("Failed to seed default sections")
	} else {
		log.Info("Default sections seeded")
	}

	log.Info("InitDefaultData completed successfully")
}
