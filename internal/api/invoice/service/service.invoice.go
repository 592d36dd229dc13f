// Package invoicesvc - service hóa đơn.
package invoicesvc

import (
	"context"
	"fmt"

	basesvc "shop_commerce/internal/api/base/service"
	invoicedto "shop_commerce/internal/api/invoice/dto"
	models "shop_commerce/internal/api/invoice/models"
	"shop_commerce/internal/common"
	"shop_commerce/internal/global"
	"shop_commerce/internal/logger"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InvoiceService xử lý nghiệp vụ hóa đơn.
type InvoiceService struct {
	*basesvc.BaseServiceMongoImpl[models.Invoice]
	changeService *InvoiceChangeService
}

// NewInvoiceService tạo mới InvoiceService.
func NewInvoiceService() (*InvoiceService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Invoices)
	if !exist {
		return nil, fmt.Errorf("failed to get invoices collection: %v", common.ErrNotFound)
	}
	changeService, err := NewInvoiceChangeService()
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice change service: %w", err)
	}
	return &InvoiceService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Invoice](collection),
		changeService:        changeService,
	}, nil
}

// ParseLineItems chuyển LineItemInput từ request thành LineItem.
func ParseLineItems(inputs []invoicedto.LineItemInput) ([]models.LineItem, error) {
	items := make([]models.LineItem, 0, len(inputs))
	for _, in := range inputs {
		productID, err := primitive.ObjectIDFromHex(in.ProductID)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("productId '%s' không hợp lệ", in.ProductID), common.StatusBadRequest, err)
		}
		items = append(items, models.LineItem{
			ProductID:   productID,
			ProductName: in.ProductName,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
		})
	}
	return items, nil
}

// InsertOne override: tính tổng và chặn mã hóa đơn trùng trong cửa hàng.
func (s *InvoiceService) InsertOne(ctx context.Context, invoice models.Invoice) (models.Invoice, error) {
	var zero models.Invoice
	exists, err := s.DocumentExists(ctx, bson.M{"ownerShopId": invoice.OwnerShopID, "code": invoice.Code})
	if err != nil {
		return zero, err
	}
	if exists {
		return zero, common.NewError(common.ErrCodeBusinessState, fmt.Sprintf("Mã hóa đơn '%s' đã tồn tại trong cửa hàng.", invoice.Code), common.StatusConflict, nil)
	}
	if invoice.Status == "" {
		invoice.Status = models.InvoiceStatusDraft
	}
	invoice.Total = models.ComputeTotal(invoice.Items)
	return s.BaseServiceMongoImpl.InsertOne(ctx, invoice)
}

// UpdateItems thay thế toàn bộ dòng hàng của hóa đơn và ghi lịch sử thay đổi.
//
// Các ChangeRecord được sinh bằng DiffItems rồi lưu một document append-only
// vào invoice_changes. Ghi lịch sử là best-effort: nếu ghi thất bại thì log
// lại và vẫn trả về hóa đơn đã cập nhật.
func (s *InvoiceService) UpdateItems(ctx context.Context, invoiceID primitive.ObjectID, newItems []models.LineItem, actorName string) (*models.Invoice, []models.ChangeRecord, error) {
	invoice, err := s.FindOneById(ctx, invoiceID)
	if err != nil {
		return nil, nil, err
	}
	if invoice.Status == models.InvoiceStatusCancelled {
		return nil, nil, common.NewError(common.ErrCodeBusinessState, "Không thể sửa hóa đơn đã hủy.", common.StatusBadRequest, nil)
	}

	records := DiffItems(invoice.Items, newItems, actorName)
	if len(records) == 0 {
		return &invoice, records, nil
	}

	totalBefore := invoice.Total
	totalAfter := models.ComputeTotal(newItems)

	updated, err := s.UpdateById(ctx, invoiceID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"items": newItems,
			"total": totalAfter,
		},
	})
	if err != nil {
		return nil, nil, err
	}

	change := models.InvoiceChange{
		OwnerShopID: invoice.OwnerShopID,
		InvoiceID:   invoice.ID,
		ActorName:   actorName,
		Changes:     records,
		TotalBefore: totalBefore,
		TotalAfter:  totalAfter,
	}
	if _, err := s.changeService.InsertOne(ctx, change); err != nil {
		logger.GetErrorLogger().WithFields(logrus.Fields{
			"invoice_id": invoice.ID.Hex(),
			"error":      err.Error(),
		}).Error("UpdateItems: Ghi lịch sử thay đổi hóa đơn thất bại")
	}

	return &updated, records, nil
}

// GetHistory lấy lịch sử thay đổi của một hóa đơn.
func (s *InvoiceService) GetHistory(ctx context.Context, invoiceID primitive.ObjectID, page, limit int64) (interface{}, error) {
	if _, err := s.FindOneById(ctx, invoiceID); err != nil {
		return nil, err
	}
	return s.changeService.FindByInvoiceID(ctx, invoiceID, page, limit)
}
