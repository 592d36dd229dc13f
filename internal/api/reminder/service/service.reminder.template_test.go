// Package remindersvc - test render mẫu tin nhắc và deep-link gửi.
package remindersvc

import (
	"strings"
	"testing"

	models "shop_commerce/internal/api/reminder/models"
)

func TestExtractVariables_OrderedAndDeduped(t *testing.T) {
	content := "Chào {{name}}, đơn {{code}} của {{ name }} đã sẵn sàng."
	vars := ExtractVariables(content)

	if len(vars) != 2 {
		t.Fatalf("kỳ vọng 2 biến, nhận %d: %v", len(vars), vars)
	}
	if vars[0] != "name" || vars[1] != "code" {
		t.Errorf("biến phải theo thứ tự xuất hiện, nhận %v", vars)
	}
}

func TestExtractVariables_NoPlaceholders(t *testing.T) {
	if vars := ExtractVariables("Không có biến nào."); len(vars) != 0 {
		t.Errorf("content không có placeholder phải trả về rỗng, nhận %v", vars)
	}
}

func TestRenderContent_ReplacesKnownVariables(t *testing.T) {
	content := "Chào {{name}}, hẹn gặp lúc {{time}}."
	got := RenderContent(content, map[string]string{"name": "Chị Lan", "time": "9h sáng"})

	want := "Chào Chị Lan, hẹn gặp lúc 9h sáng."
	if got != want {
		t.Errorf("RenderContent = %q, kỳ vọng %q", got, want)
	}
}

func TestRenderContent_MissingVariableKeptAsIs(t *testing.T) {
	got := RenderContent("Chào {{name}}, đơn {{code}}.", map[string]string{"name": "Anh Minh"})
	if !strings.Contains(got, "{{code}}") {
		t.Errorf("biến thiếu giá trị phải giữ nguyên placeholder, nhận %q", got)
	}
}

func TestBuildSendLink_Whatsapp(t *testing.T) {
	link := BuildSendLink(models.ChannelWhatsapp, "+84 90-123-4567", "Chào bạn")

	if !strings.HasPrefix(link, "https://wa.me/84901234567?text=") {
		t.Errorf("số điện thoại phải được làm sạch ký tự ngăn cách, nhận %q", link)
	}
	if !strings.Contains(link, "text=Ch%C3%A0o+b%E1%BA%A1n") {
		t.Errorf("message phải được URL-encode, nhận %q", link)
	}
}

func TestBuildSendLink_WhatsappNoPhone(t *testing.T) {
	link := BuildSendLink(models.ChannelWhatsapp, "", "Xin chào")
	if !strings.HasPrefix(link, "https://wa.me/?text=") {
		t.Errorf("không có số điện thoại vẫn phải dựng được link, nhận %q", link)
	}
}

func TestBuildSendLink_Telegram(t *testing.T) {
	link := BuildSendLink(models.ChannelTelegram, "0901234567", "Xin chào")
	if !strings.HasPrefix(link, "https://t.me/share/url?") {
		t.Errorf("kênh telegram phải dựng link t.me, nhận %q", link)
	}
}

func TestBuildSendLink_UnknownChannel(t *testing.T) {
	if link := BuildSendLink("sms", "0901234567", "Xin chào"); link != "" {
		t.Errorf("kênh không hỗ trợ phải trả về chuỗi rỗng, nhận %q", link)
	}
}
