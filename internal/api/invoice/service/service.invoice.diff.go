// Package invoicesvc - so sánh hai danh sách dòng hàng của hóa đơn
// và sinh các ChangeRecord phục vụ lịch sử audit.
package invoicesvc

import (
	"fmt"

	models "shop_commerce/internal/api/invoice/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DiffItems so sánh danh sách dòng hàng trước và sau khi sửa hóa đơn.
//
// Danh sách được so theo productId, không theo thứ tự. Nếu một list chứa
// productId trùng nhau thì entry sau thắng. Mỗi productId sinh tối đa một
// record: khi số lượng và đơn giá cùng đổi, chỉ ghi nhận thay đổi số lượng
// với đơn giá MỚI; thay đổi đơn giá chỉ được ghi nhận khi số lượng giữ nguyên.
//
// Hàm thuần, không I/O, không lỗi: hai list rỗng trả về slice rỗng.
func DiffItems(previous, current []models.LineItem, actorName string) []models.ChangeRecord {
	prevByID := make(map[primitive.ObjectID]models.LineItem, len(previous))
	for _, item := range previous {
		prevByID[item.ProductID] = item
	}
	currByID := make(map[primitive.ObjectID]models.LineItem, len(current))
	for _, item := range current {
		currByID[item.ProductID] = item
	}

	records := make([]models.ChangeRecord, 0, len(prevByID)+len(currByID))

	// Hàng bị xóa, duyệt theo thứ tự list cũ
	seen := make(map[primitive.ObjectID]bool, len(previous))
	for _, item := range previous {
		old := prevByID[item.ProductID]
		if seen[item.ProductID] {
			continue
		}
		seen[item.ProductID] = true
		if _, stillThere := currByID[item.ProductID]; stillThere {
			continue
		}
		records = append(records, models.ChangeRecord{
			Action:        models.ChangeActionRemoved,
			ProductID:     old.ProductID,
			ProductName:   old.ProductName,
			OldQuantity:   old.Quantity,
			NewQuantity:   0,
			UnitPrice:     old.UnitPrice,
			AmountChange:  -(float64(old.Quantity) * old.UnitPrice),
			ChangedByName: actorName,
		})
	}

	// Hàng thêm mới hoặc thay đổi, duyệt theo thứ tự list mới
	seen = make(map[primitive.ObjectID]bool, len(current))
	for _, item := range current {
		cur := currByID[item.ProductID]
		if seen[item.ProductID] {
			continue
		}
		seen[item.ProductID] = true

		old, existed := prevByID[item.ProductID]
		if !existed {
			records = append(records, models.ChangeRecord{
				Action:        models.ChangeActionAdded,
				ProductID:     cur.ProductID,
				ProductName:   cur.ProductName,
				OldQuantity:   0,
				NewQuantity:   cur.Quantity,
				UnitPrice:     cur.UnitPrice,
				AmountChange:  float64(cur.Quantity) * cur.UnitPrice,
				ChangedByName: actorName,
			})
			continue
		}

		if cur.Quantity != old.Quantity {
			action := models.ChangeActionQtyIncreased
			if cur.Quantity < old.Quantity {
				action = models.ChangeActionQtyDecreased
			}
			records = append(records, models.ChangeRecord{
				Action:        action,
				ProductID:     cur.ProductID,
				ProductName:   cur.ProductName,
				OldQuantity:   old.Quantity,
				NewQuantity:   cur.Quantity,
				UnitPrice:     cur.UnitPrice,
				AmountChange:  float64(cur.Quantity-old.Quantity) * cur.UnitPrice,
				ChangedByName: actorName,
			})
			continue
		}

		if cur.UnitPrice != old.UnitPrice {
			records = append(records, models.ChangeRecord{
				Action:        models.ChangeActionPriceChanged,
				ProductID:     cur.ProductID,
				ProductName:   cur.ProductName,
				OldQuantity:   cur.Quantity,
				NewQuantity:   cur.Quantity,
				UnitPrice:     cur.UnitPrice,
				AmountChange:  (cur.UnitPrice - old.UnitPrice) * float64(cur.Quantity),
				ChangedByName: actorName,
				Notes:         fmt.Sprintf("Đơn giá đổi từ %.2f thành %.2f", old.UnitPrice, cur.UnitPrice),
			})
		}
	}

	return records
}
