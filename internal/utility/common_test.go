package utility

import (
	"encoding/json"
	"testing"
)

func TestGoProtect_RecoversPanic(t *testing.T) {
	called := false
	GoProtect(func() {
		called = true
		panic("nổ")
	})
	if !called {
		t.Error("hàm bọc trong GoProtect phải được gọi")
	}
	// Chạy tới đây nghĩa là panic đã được bắt lại
}

func TestGoProtect_RunsNormalFunc(t *testing.T) {
	ran := false
	GoProtect(func() { ran = true })
	if !ran {
		t.Error("hàm không panic phải chạy bình thường qua GoProtect")
	}
}

func TestP2Int64_FromQueryString(t *testing.T) {
	// ParsePagination truyền chuỗi query thẳng vào P2Int64
	if got := P2Int64("25"); got != 25 {
		t.Errorf("kỳ vọng 25, nhận %d", got)
	}
	if got := P2Int64("abc"); got != 0 {
		t.Errorf("chuỗi không phải số phải trả về 0, nhận %d", got)
	}
	if got := P2Int64(""); got != 0 {
		t.Errorf("chuỗi rỗng phải trả về 0, nhận %d", got)
	}
}

func TestP2Int64_FromJSONNumber(t *testing.T) {
	if got := P2Int64(json.Number("7")); got != 7 {
		t.Errorf("kỳ vọng 7, nhận %d", got)
	}
	if got := P2Int64(json.Number("1.5")); got != 0 {
		t.Errorf("json.Number không nguyên phải trả về 0, nhận %d", got)
	}
}

func TestP2Int64_FromNative(t *testing.T) {
	if got := P2Int64(int64(9)); got != 9 {
		t.Errorf("kỳ vọng 9, nhận %d", got)
	}
	if got := P2Int64(3); got != 3 {
		t.Errorf("kỳ vọng 3, nhận %d", got)
	}
	if got := P2Int64(nil); got != 0 {
		t.Errorf("kiểu không hỗ trợ phải trả về 0, nhận %d", got)
	}
}
