// Package invoicesvc - test DiffItems: so sánh hai danh sách dòng hàng.
package invoicesvc

import (
	"testing"

	models "shop_commerce/internal/api/invoice/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	productA = primitive.NewObjectID()
	productB = primitive.NewObjectID()
	productC = primitive.NewObjectID()
)

func item(id primitive.ObjectID, name string, qty int64, price float64) models.LineItem {
	return models.LineItem{ProductID: id, ProductName: name, Quantity: qty, UnitPrice: price}
}

func TestDiffItems_EmptyLists(t *testing.T) {
	records := DiffItems(nil, nil, "admin")
	require.NotNil(t, records, "DiffItems phải trả về slice rỗng, không phải nil")
	assert.Empty(t, records)
}

func TestDiffItems_NoChange(t *testing.T) {
	items := []models.LineItem{item(productA, "Cà phê sữa", 2, 25000)}
	records := DiffItems(items, items, "admin")
	assert.Empty(t, records, "danh sách giống nhau không được sinh record")
}

func TestDiffItems_Added(t *testing.T) {
	previous := []models.LineItem{item(productA, "Cà phê sữa", 2, 25000)}
	current := []models.LineItem{
		item(productA, "Cà phê sữa", 2, 25000),
		item(productB, "Bánh mì", 3, 15000),
	}

	records := DiffItems(previous, current, "Nguyễn Văn A")
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, models.ChangeActionAdded, r.Action)
	assert.Equal(t, productB, r.ProductID)
	assert.Equal(t, "Bánh mì", r.ProductName)
	assert.Equal(t, int64(0), r.OldQuantity)
	assert.Equal(t, int64(3), r.NewQuantity)
	assert.Equal(t, float64(15000), r.UnitPrice)
	assert.Equal(t, float64(45000), r.AmountChange)
	assert.Equal(t, "Nguyễn Văn A", r.ChangedByName)
}

func TestDiffItems_Removed(t *testing.T) {
	previous := []models.LineItem{
		item(productA, "Cà phê sữa", 2, 25000),
		item(productB, "Bánh mì", 3, 15000),
	}
	current := []models.LineItem{item(productA, "Cà phê sữa", 2, 25000)}

	records := DiffItems(previous, current, "admin")
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, models.ChangeActionRemoved, r.Action)
	assert.Equal(t, productB, r.ProductID)
	assert.Equal(t, int64(3), r.OldQuantity)
	assert.Equal(t, int64(0), r.NewQuantity)
	assert.Equal(t, float64(-45000), r.AmountChange)
}

func TestDiffItems_QtyIncreased(t *testing.T) {
	previous := []models.LineItem{item(productA, "Cà phê sữa", 2, 25000)}
	current := []models.LineItem{item(productA, "Cà phê sữa", 5, 25000)}

	records := DiffItems(previous, current, "admin")
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, models.ChangeActionQtyIncreased, r.Action)
	assert.Equal(t, int64(2), r.OldQuantity)
	assert.Equal(t, int64(5), r.NewQuantity)
	assert.Equal(t, float64(75000), r.AmountChange)
}

func TestDiffItems_QtyDecreased(t *testing.T) {
	previous := []models.LineItem{item(productA, "Cà phê sữa", 5, 25000)}
	current := []models.LineItem{item(productA, "Cà phê sữa", 2, 25000)}

	records := DiffItems(previous, current, "admin")
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, models.ChangeActionQtyDecreased, r.Action)
	assert.Equal(t, float64(-75000), r.AmountChange)
}

func TestDiffItems_PriceChanged(t *testing.T) {
	previous := []models.LineItem{item(productA, "Cà phê sữa", 4, 25000)}
	current := []models.LineItem{item(productA, "Cà phê sữa", 4, 30000)}

	records := DiffItems(previous, current, "admin")
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, models.ChangeActionPriceChanged, r.Action)
	assert.Equal(t, int64(4), r.OldQuantity)
	assert.Equal(t, int64(4), r.NewQuantity)
	assert.Equal(t, float64(30000), r.UnitPrice)
	assert.Equal(t, float64(20000), r.AmountChange)
	assert.NotEmpty(t, r.Notes, "PRICE_CHANGED phải có notes mô tả giá cũ và mới")
	assert.Contains(t, r.Notes, "25000")
	assert.Contains(t, r.Notes, "30000")
}

// Khi số lượng và đơn giá cùng đổi thì chỉ ghi nhận thay đổi số lượng,
// amountChange tính theo đơn giá MỚI.
func TestDiffItems_QtyAndPriceChanged_SingleQtyRecord(t *testing.T) {
	previous := []models.LineItem{item(productA, "Cà phê sữa", 2, 25000)}
	current := []models.LineItem{item(productA, "Cà phê sữa", 3, 30000)}

	records := DiffItems(previous, current, "admin")
	require.Len(t, records, 1, "mỗi productId chỉ sinh tối đa một record")

	r := records[0]
	assert.Equal(t, models.ChangeActionQtyIncreased, r.Action)
	assert.Equal(t, float64(30000), r.UnitPrice)
	assert.Equal(t, float64(30000), r.AmountChange, "(3-2)*30000, dùng đơn giá mới")
}

// productId trùng nhau trong một list: entry sau thắng.
func TestDiffItems_DuplicateProductID_LastWins(t *testing.T) {
	previous := []models.LineItem{item(productA, "Cà phê sữa", 2, 25000)}
	current := []models.LineItem{
		item(productA, "Cà phê sữa", 7, 25000),
		item(productA, "Cà phê sữa", 3, 25000),
	}

	records := DiffItems(previous, current, "admin")
	require.Len(t, records, 1)
	assert.Equal(t, int64(3), records[0].NewQuantity, "entry sau trong list phải thắng")
}

// Tổng amountChange của mọi record phải bằng chênh lệch tổng tiền hóa đơn.
func TestDiffItems_AmountChangeConservation(t *testing.T) {
	previous := []models.LineItem{
		item(productA, "Cà phê sữa", 2, 25000),
		item(productB, "Bánh mì", 3, 15000),
		item(productC, "Trà đá", 1, 5000),
	}
	current := []models.LineItem{
		item(productA, "Cà phê sữa", 4, 25000), // tăng số lượng
		item(productB, "Bánh mì", 3, 18000),    // đổi giá
		// productC bị xóa
	}

	records := DiffItems(previous, current, "admin")
	require.Len(t, records, 3)

	var sum float64
	for _, r := range records {
		sum += r.AmountChange
	}
	diff := models.ComputeTotal(current) - models.ComputeTotal(previous)
	assert.Equal(t, diff, sum, "tổng amountChange phải bằng totalAfter - totalBefore")
}

func TestDiffItems_RemovedBeforeAddedOrdering(t *testing.T) {
	previous := []models.LineItem{item(productA, "Cà phê sữa", 2, 25000)}
	current := []models.LineItem{item(productB, "Bánh mì", 1, 15000)}

	records := DiffItems(previous, current, "admin")
	require.Len(t, records, 2)
	assert.Equal(t, models.ChangeActionRemoved, records[0].Action)
	assert.Equal(t, models.ChangeActionAdded, records[1].Action)
}
