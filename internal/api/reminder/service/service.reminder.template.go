// Package remindersvc - service mẫu tin nhắn nhắc hẹn.
package remindersvc

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	basesvc "shop_commerce/internal/api/base/service"
	models "shop_commerce/internal/api/reminder/models"
	"shop_commerce/internal/common"
	"shop_commerce/internal/global"
)

// ReminderTemplateService là cấu trúc chứa các phương thức liên quan đến mẫu nhắc hẹn
type ReminderTemplateService struct {
	*basesvc.BaseServiceMongoImpl[models.ReminderTemplate]
}

// NewReminderTemplateService tạo mới ReminderTemplateService
func NewReminderTemplateService() (*ReminderTemplateService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ReminderTemplates)
	if !exist {
		return nil, fmt.Errorf("failed to get reminder_templates collection: %v", common.ErrNotFound)
	}
	return &ReminderTemplateService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ReminderTemplate](collection),
	}, nil
}

var placeholderPattern = regexp.MustCompile(`\{\{\s*([a-zA-Z0-9_]+)\s*\}\}`)

// ExtractVariables liệt kê tên các placeholder {{var}} xuất hiện trong content,
// theo thứ tự xuất hiện, không trùng lặp.
func ExtractVariables(content string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(content, -1)
	seen := make(map[string]bool, len(matches))
	vars := make([]string, 0, len(matches))
	for _, m := range matches {
		name := m[1]
		if !seen[name] {
			seen[name] = true
			vars = append(vars, name)
		}
	}
	return vars
}

// RenderContent thay các placeholder {{var}} trong content bằng giá trị thực.
// Placeholder không có giá trị được giữ nguyên để người dùng thấy thiếu biến nào.
func RenderContent(content string, variables map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(content, func(match string) string {
		name := placeholderPattern.FindStringSubmatch(match)[1]
		if value, ok := variables[name]; ok {
			return value
		}
		return match
	})
}

// BuildSendLink dựng deep-link gửi tin nhắn đã render qua kênh của template.
// Trả về chuỗi rỗng nếu kênh không hỗ trợ deep-link.
func BuildSendLink(channel, phone, message string) string {
	encoded := url.QueryEscape(message)
	switch channel {
	case models.ChannelWhatsapp:
		// wa.me yêu cầu số điện thoại dạng quốc tế không có ký tự ngăn cách
		cleanPhone := strings.NewReplacer(" ", "", "-", "", "+", "").Replace(phone)
		if cleanPhone == "" {
			return "https://wa.me/?text=" + encoded
		}
		return "https://wa.me/" + cleanPhone + "?text=" + encoded
	case models.ChannelTelegram:
		return "https://t.me/share/url?url=&text=" + encoded
	default:
		return ""
	}
}

// Render render một template với dữ liệu thực, trả về nội dung và deep-link gửi.
func (s *ReminderTemplateService) Render(template *models.ReminderTemplate, variables map[string]string, phone string) (string, string) {
	content := RenderContent(template.Content, variables)
	link := BuildSendLink(template.Channel, phone, content)
	return content, link
}
