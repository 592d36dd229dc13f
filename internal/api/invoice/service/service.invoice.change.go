// Package invoicesvc - service lịch sử thay đổi hóa đơn (append-only).
package invoicesvc

import (
	"context"
	"fmt"

	basemodels "shop_commerce/internal/api/base/models"
	basesvc "shop_commerce/internal/api/base/service"
	models "shop_commerce/internal/api/invoice/models"
	"shop_commerce/internal/common"
	"shop_commerce/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InvoiceChangeService đọc/ghi collection invoice_changes.
// Collection này là append-only: không có update, không có delete.
type InvoiceChangeService struct {
	*basesvc.BaseServiceMongoImpl[models.InvoiceChange]
}

// NewInvoiceChangeService tạo mới InvoiceChangeService.
func NewInvoiceChangeService() (*InvoiceChangeService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.InvoiceChanges)
	if !exist {
		return nil, fmt.Errorf("failed to get invoice_changes collection: %v", common.ErrNotFound)
	}
	return &InvoiceChangeService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.InvoiceChange](collection),
	}, nil
}

// FindByInvoiceID lấy lịch sử thay đổi của một hóa đơn, mới nhất trước.
func (s *InvoiceChangeService) FindByInvoiceID(ctx context.Context, invoiceID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[models.InvoiceChange], error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, bson.M{"invoiceId": invoiceID}, page, limit, opts)
}

// DeleteOne override: lịch sử là append-only, không cho xóa.
func (s *InvoiceChangeService) DeleteOne(ctx context.Context, filter interface{}) error {
	return common.NewError(common.ErrCodeBusinessOperation, "Lịch sử thay đổi hóa đơn không thể xóa.", common.StatusForbidden, nil)
}

// DeleteById override
func (s *InvoiceChangeService) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	return common.NewError(common.ErrCodeBusinessOperation, "Lịch sử thay đổi hóa đơn không thể xóa.", common.StatusForbidden, nil)
}

// DeleteMany override
func (s *InvoiceChangeService) DeleteMany(ctx context.Context, filter interface{}) (int64, error) {
	return 0, common.NewError(common.ErrCodeBusinessOperation, "Lịch sử thay đổi hóa đơn không thể xóa.", common.StatusForbidden, nil)
}
