package main

import (
	"shop_commerce/config"
	"shop_commerce/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

func InitRegistry() {

	logrus.Info("Initialized registry") // Ghi log thông báo đã khởi tạo registry

	// Khởi tạo registry và đăng ký các collections
	err := InitCollections(global.MongoDB_Session, global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")
}

// InitCollections khởi tạo và đăng ký các collections MongoDB
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)
	colNames := []string{
		global.MongoDB_ColNames.Users,
		global.MongoDB_ColNames.Roles,
		global.MongoDB_ColNames.UserRoles,
		global.MongoDB_ColNames.Shops,
		global.MongoDB_ColNames.ShopConfigItems,
		global.MongoDB_ColNames.Categories,
		global.MongoDB_ColNames.Products,
		global.MongoDB_ColNames.Invoices,
		global.MongoDB_ColNames.InvoiceChanges,
		global.MongoDB_ColNames.Sections,
		global.MongoDB_ColNames.SectionStates,
		global.MongoDB_ColNames.ReminderTemplates,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}

		if registered {
			logrus.Infof("Collection %s registered successfully", name)
		} else {
			logrus.Errorf("Collection %s already registered", name)
		}

	}

	return nil
}
