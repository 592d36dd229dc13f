package utility

import (
	"testing"
)

func TestCreateToken_ParseToken_RoundTrip(t *testing.T) {
	secret := "test-secret"
	result, err := CreateToken(secret, "65f0c1d2e3a4b5c6d7e8f901", "18c2a3f", "42", 1)
	if err != nil {
		t.Fatalf("CreateToken lỗi: %v", err)
	}
	tokenStr, ok := result["token"]
	if !ok || tokenStr == "" {
		t.Fatal("CreateToken phải trả về map có key 'token'")
	}

	userID, err := ParseToken(secret, tokenStr)
	if err != nil {
		t.Fatalf("ParseToken lỗi: %v", err)
	}
	if userID != "65f0c1d2e3a4b5c6d7e8f901" {
		t.Errorf("ParseToken trả về userID %q, kỳ vọng 65f0c1d2e3a4b5c6d7e8f901", userID)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	result, err := CreateToken("secret-a", "user1", "1", "2", 1)
	if err != nil {
		t.Fatalf("CreateToken lỗi: %v", err)
	}
	if _, err := ParseToken("secret-b", result["token"]); err == nil {
		t.Error("ParseToken với secret sai phải trả về lỗi")
	}
}

func TestParseToken_Garbage(t *testing.T) {
	if _, err := ParseToken("secret", "not-a-jwt"); err == nil {
		t.Error("ParseToken với chuỗi rác phải trả về lỗi")
	}
}

func TestHashPassword_ComparePassword(t *testing.T) {
	hash, err := HashPassword("matkhau123")
	if err != nil {
		t.Fatalf("HashPassword lỗi: %v", err)
	}
	if hash == "matkhau123" {
		t.Error("hash không được trùng mật khẩu gốc")
	}
	if !ComparePassword(hash, "matkhau123") {
		t.Error("ComparePassword phải đúng với mật khẩu gốc")
	}
	if ComparePassword(hash, "matkhau456") {
		t.Error("ComparePassword phải sai với mật khẩu khác")
	}
}

func TestValidateEmail(t *testing.T) {
	if err := ValidateEmail("user@example.com"); err != nil {
		t.Errorf("email hợp lệ bị từ chối: %v", err)
	}
	if err := ValidateEmail("khong-phai-email"); err == nil {
		t.Error("email sai định dạng phải bị từ chối")
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("12345678"); err != nil {
		t.Errorf("mật khẩu 8 ký tự phải hợp lệ: %v", err)
	}
	if err := ValidatePassword("1234567"); err == nil {
		t.Error("mật khẩu dưới 8 ký tự phải bị từ chối")
	}
}
