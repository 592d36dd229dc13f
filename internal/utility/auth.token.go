package utility

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// tokenClaims chứa data được mã hóa trong JWT token.
// Trùng cấu trúc với models.JwtToken (tránh import cycle utility -> models).
type tokenClaims struct {
	UserID       string `json:"userId"`
	Time         string `json:"time"`
	RandomNumber string `json:"randomNumber"`
	jwt.StandardClaims
}

// CreateToken tạo JWT token cho user.
// expireHours <= 0 thì token không có hạn.
func CreateToken(secret string, userID string, timeHex string, randomNumber string, expireHours int) (map[string]string, error) {
	claims := tokenClaims{
		UserID:       userID,
		Time:         timeHex,
		RandomNumber: randomNumber,
	}
	if expireHours > 0 {
		claims.ExpiresAt = time.Now().Add(time.Duration(expireHours) * time.Hour).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, fmt.Errorf("không thể ký JWT token: %w", err)
	}

	return map[string]string{"token": signed}, nil
}

// ParseToken parse và verify JWT token, trả về userID trong token.
func ParseToken(secret string, tokenStr string) (string, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("phương thức ký token không hợp lệ: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", fmt.Errorf("token không hợp lệ")
	}
	return claims.UserID, nil
}

// HashPassword hash mật khẩu bằng bcrypt (salt nằm trong hash).
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("không thể hash mật khẩu: %w", err)
	}
	return string(hash), nil
}

// ComparePassword so sánh mật khẩu với hash đã lưu.
func ComparePassword(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
