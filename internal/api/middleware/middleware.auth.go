package middleware

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "shop_commerce/internal/api/auth/models"
	authsvc "shop_commerce/internal/api/auth/service"
	"shop_commerce/internal/common"
	"shop_commerce/internal/logger"
	"shop_commerce/internal/utility"
)

// AuthManager quản lý xác thực và phân quyền người dùng
type AuthManager struct {
	UserCRUD     *authsvc.UserService
	RoleCRUD     *authsvc.RoleService
	UserRoleCRUD *authsvc.UserRoleService
	Cache        *utility.Cache
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		var err error
		authManagerInstance, err = newAuthManager()
		if err != nil {
			panic(err)
		}
	})
	return authManagerInstance
}

// newAuthManager khởi tạo một instance mới của AuthManager (private constructor)
func newAuthManager() (*AuthManager, error) {
	newManager := new(AuthManager)

	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	newManager.UserCRUD = userService

	roleService, err := authsvc.NewRoleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create role service: %v", err)
	}
	newManager.RoleCRUD = roleService

	userRoleService, err := authsvc.NewUserRoleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user role service: %v", err)
	}
	newManager.UserRoleCRUD = userRoleService

	// Khởi tạo cache với thời gian sống 5 phút và thời gian dọn dẹp 10 phút
	newManager.Cache = utility.NewCache(5*time.Minute, 10*time.Minute)

	return newManager, nil
}

// getUserRoles lấy danh sách grants của user từ cache hoặc database
func (am *AuthManager) getUserRoles(ctx context.Context, userID primitive.ObjectID) ([]models.UserRole, error) {
	cacheKey := "user_roles:" + userID.Hex()
	if cached, found := am.Cache.Get(cacheKey); found {
		return cached.([]models.UserRole), nil
	}

	userRoles, err := am.UserRoleCRUD.BaseServiceMongoImpl.Find(ctx, bson.M{"userId": userID}, nil)
	if err != nil {
		if err == common.ErrNotFound {
			userRoles = []models.UserRole{}
		} else {
			return nil, err
		}
	}

	am.Cache.Set(cacheKey, userRoles)
	return userRoles, nil
}

// getRole lấy Role theo ID từ cache hoặc database
func (am *AuthManager) getRole(ctx context.Context, roleID primitive.ObjectID) (*models.Role, error) {
	cacheKey := "role:" + roleID.Hex()
	if cached, found := am.Cache.Get(cacheKey); found {
		role := cached.(models.Role)
		return &role, nil
	}

	role, err := am.RoleCRUD.BaseServiceMongoImpl.FindOneById(ctx, roleID)
	if err != nil {
		return nil, err
	}
	am.Cache.Set(cacheKey, role)
	return &role, nil
}

// InvalidateUserCache xóa cache grants của user (gọi sau khi thay đổi phân quyền)
func (am *AuthManager) InvalidateUserCache(userID primitive.ObjectID) {
	am.Cache.Delete("user_roles:" + userID.Hex())
}

// AuthMiddleware middleware xác thực cho Fiber.
// requireLevel là level vai trò tối thiểu để truy cập route (0 = chỉ cần xác thực).
// Middleware set vào context: user_id, user, user_role, role_level, active_role_id,
// active_shop_id, allowed_shop_ids.
func AuthMiddleware(requireLevel int) fiber.Handler {
	// Sử dụng singleton instance của AuthManager
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("[AUTH] Missing Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		token := parts[1]

		// Tìm user có token
		// Ưu tiên query field "token" (token mới nhất) trước vì nó được cập nhật mỗi lần login
		// Nếu không tìm thấy, query trong array "tokens" (tokens theo hwid)
		var user models.User
		var err error

		user, err = authManager.UserCRUD.FindOne(context.Background(), bson.M{"token": token}, nil)
		if err != nil {
			user, err = authManager.UserCRUD.FindOne(context.Background(), bson.M{"tokens.jwtToken": token}, nil)
		}

		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("[AUTH] Token not found in database")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Kiểm tra user có bị block không
		if user.IsBlock {
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthCredentials,
				"Tài khoản đã bị khóa: "+user.BlockNote,
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		// Lưu thông tin user vào context
		c.Locals("user_id", user.ID.Hex())
		c.Locals("user", user)

		// Lấy danh sách grants của user
		userRoles, err := authManager.getUserRoles(context.Background(), user.ID)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"user_id": user.ID.Hex(),
				"error":   err.Error(),
				"path":    c.Path(),
			}).Error("[AUTH] Failed to get user roles")
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthRole,
				"Không thể kiểm tra quyền truy cập",
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		if len(userRoles) == 0 {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"user_id":    user.ID.Hex(),
				"user_email": user.Email,
				"path":       c.Path(),
			}).Warn("[AUTH] User has no roles, denying access")
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthRole,
				"Người dùng chưa được gán vai trò. Vui lòng liên hệ quản trị viên để được cấp quyền truy cập.",
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		// Xác định grant đang hoạt động: X-Active-Role-ID nếu có, không thì grant đầu tiên
		activeGrant := &userRoles[0]
		if activeRoleIDStr := c.Get("X-Active-Role-ID"); activeRoleIDStr != "" {
			roleID, err := primitive.ObjectIDFromHex(activeRoleIDStr)
			if err != nil {
				HandleErrorResponse(c, common.NewError(
					common.ErrCodeValidationFormat,
					"X-Active-Role-ID không đúng định dạng",
					common.StatusBadRequest,
					nil,
				))
				return nil
			}

			found := false
			for i := range userRoles {
				if userRoles[i].RoleID == roleID {
					activeGrant = &userRoles[i]
					found = true
					break
				}
			}
			if !found {
				// Reject và trả về role IDs hợp lệ để client tự refresh role list
				validRoleIDs := make([]string, 0, len(userRoles))
				for _, userRole := range userRoles {
					validRoleIDs = append(validRoleIDs, userRole.RoleID.Hex())
				}
				logger.GetAppLogger().WithFields(logrus.Fields{
					"user_id":        user.ID.Hex(),
					"active_role_id": roleID.Hex(),
					"valid_role_ids": validRoleIDs,
					"path":           c.Path(),
				}).Warn("[AUTH] User does not have this role, rejecting request")
				HandleErrorResponse(c, common.NewError(
					common.ErrCodeAuthRole,
					"Người dùng không có quyền sử dụng role này. Vui lòng chọn role khác hoặc liên hệ quản trị viên.",
					common.StatusForbidden,
					map[string]interface{}{
						"invalidRoleId": roleID.Hex(),
						"validRoleIds":  validRoleIDs,
						"errorCode":     "ROLE_CONTEXT_INVALID",
					},
				))
				return nil
			}
		}

		role, err := authManager.getRole(context.Background(), activeGrant.RoleID)
		if err != nil {
			HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthRole,
				"Không thể lấy thông tin vai trò",
				common.StatusForbidden,
				nil,
			))
			return nil
		}

		// Kiểm tra level vai trò với yêu cầu của route
		if requireLevel > 0 && role.Level < requireLevel {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"user_id":        user.ID.Hex(),
				"user_email":     user.Email,
				"user_role":      role.Name,
				"role_level":     role.Level,
				"required_level": requireLevel,
				"path":           c.Path(),
			}).Warn("[AUTH] User role level insufficient")
			HandleErrorResponse(c, common.ErrPermissionDenied)
			return nil
		}

		// Lưu role context và shop context vào Locals
		c.Locals("user_role", role.Name)
		c.Locals("role_level", role.Level)
		c.Locals("active_role_id", role.ID.Hex())
		if activeGrant.ScopeShopID != nil && !activeGrant.ScopeShopID.IsZero() {
			c.Locals("active_shop_id", activeGrant.ScopeShopID.Hex())
		}

		allowedShopIDs := make([]string, 0, len(userRoles))
		for _, userRole := range userRoles {
			if userRole.ScopeShopID != nil && !userRole.ScopeShopID.IsZero() {
				allowedShopIDs = append(allowedShopIDs, userRole.ScopeShopID.Hex())
			}
		}
		c.Locals("allowed_shop_ids", allowedShopIDs)

		return c.Next()
	}
}
