package logger

import (
	"os"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// LogConfig chứa cấu hình cho hệ thống logging
type LogConfig struct {
	Level           string   // Log level: debug, info, warn, error
	Format          string   // Format: text hoặc json
	Output          string   // Output: stdout, file, both
	LogPath         string   // Thư mục chứa file log (tương đối với root project)
	AppFile         string   // Tên file log chính của ứng dụng
	AuditFile       string   // Tên file log audit
	PerformanceFile string   // Tên file log performance
	ErrorFile       string   // Tên file log errors
	MaxSize         int      // Kích thước tối đa mỗi file (MB) trước khi rotate
	MaxBackups      int      // Số file cũ giữ lại
	MaxAge          int      // Số ngày giữ file cũ
	Compress        bool     // Nén file cũ
	ExcludePrefixes []string // Các message prefix bị loại bỏ khỏi log
}

// DefaultConfig trả về cấu hình logging mặc định, đọc override từ environment variables
func DefaultConfig() *LogConfig {
	cfg := &LogConfig{
		Level:           "info",
		Format:          "text",
		Output:          "both",
		LogPath:         "logs",
		AppFile:         "app.log",
		AuditFile:       "audit.log",
		PerformanceFile: "performance.log",
		ErrorFile:       "error.log",
		MaxSize:         100,
		MaxBackups:      5,
		MaxAge:          30,
		Compress:        true,
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("LOG_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("LOG_PATH"); v != "" {
		cfg.LogPath = v
	}
	if v := os.Getenv("LOG_MAX_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxSize = n
		}
	}
	if v := os.Getenv("LOG_MAX_BACKUPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxBackups = n
		}
	}
	if v := os.Getenv("LOG_MAX_AGE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxAge = n
		}
	}
	if v := os.Getenv("LOG_EXCLUDE_PREFIXES"); v != "" {
		for _, p := range strings.Split(v, ",") {
			p = strings.TrimSpace(p)
			if p != "" {
				cfg.ExcludePrefixes = append(cfg.ExcludePrefixes, p)
			}
		}
	}

	return cfg
}

// FilterHook đánh dấu các entry cần loại bỏ trước khi AsyncHook ghi log.
// Entry bị filter được đánh dấu bằng field "_filtered" thay vì drop trực tiếp
// vì logrus hook không thể hủy một entry.
type FilterHook struct {
	excludePrefixes []string
}

// NewFilterHook tạo FilterHook từ cấu hình
func NewFilterHook(cfg *LogConfig) *FilterHook {
	return &FilterHook{excludePrefixes: cfg.ExcludePrefixes}
}

// Levels trả về các log levels mà hook này xử lý
func (h *FilterHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire đánh dấu entry bị filter nếu message khớp một exclude prefix
func (h *FilterHook) Fire(entry *logrus.Entry) error {
	for _, prefix := range h.excludePrefixes {
		if strings.HasPrefix(entry.Message, prefix) {
			entry.Data["_filtered"] = true
			return nil
		}
	}
	return nil
}

// WithRequest trả về log entry gắn kèm thông tin request (method, path, ip, request id)
func WithRequest(c fiber.Ctx) *logrus.Entry {
	return GetAppLogger().WithFields(logrus.Fields{
		"method":     c.Method(),
		"path":       c.Path(),
		"ip":         c.IP(),
		"request_id": c.Get("X-Request-ID"),
	})
}
