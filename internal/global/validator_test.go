package global

import "testing"

type configValueInput struct {
	Value       interface{} `validate:"config_value"`
	DataType    string
	Constraints string
}

type sectionPathInput struct {
	Path string `validate:"section_path"`
}

func TestMain(m *testing.M) {
	InitValidator()
	m.Run()
}

func TestConfigValue_EmptyConstraintsSkipped(t *testing.T) {
	v := configValueInput{Value: "bat-ky", DataType: "string", Constraints: ""}
	if err := Validate.Struct(v); err != nil {
		t.Errorf("constraints rỗng phải được bỏ qua: %v", err)
	}
}

func TestConfigValue_StringLength(t *testing.T) {
	constraints := `{"minLength":2,"maxLength":5}`
	ok := configValueInput{Value: "abc", DataType: "string", Constraints: constraints}
	if err := Validate.Struct(ok); err != nil {
		t.Errorf("chuỗi trong khoảng độ dài phải hợp lệ: %v", err)
	}
	tooLong := configValueInput{Value: "abcdef", DataType: "string", Constraints: constraints}
	if err := Validate.Struct(tooLong); err == nil {
		t.Error("chuỗi vượt maxLength phải bị từ chối")
	}
}

func TestConfigValue_NumberRange(t *testing.T) {
	constraints := `{"minimum":1,"maximum":100}`
	ok := configValueInput{Value: float64(50), DataType: "number", Constraints: constraints}
	if err := Validate.Struct(ok); err != nil {
		t.Errorf("số trong khoảng phải hợp lệ: %v", err)
	}
	tooBig := configValueInput{Value: float64(101), DataType: "number", Constraints: constraints}
	if err := Validate.Struct(tooBig); err == nil {
		t.Error("số vượt maximum phải bị từ chối")
	}
}

func TestConfigValue_Enum(t *testing.T) {
	constraints := `{"enum":["vi","en"]}`
	ok := configValueInput{Value: "vi", DataType: "string", Constraints: constraints}
	if err := Validate.Struct(ok); err != nil {
		t.Errorf("giá trị trong enum phải hợp lệ: %v", err)
	}
	bad := configValueInput{Value: "fr", DataType: "string", Constraints: constraints}
	if err := Validate.Struct(bad); err == nil {
		t.Error("giá trị ngoài enum phải bị từ chối")
	}
}

func TestConfigValue_InvalidConstraintsJSON(t *testing.T) {
	v := configValueInput{Value: "x", DataType: "string", Constraints: "{khong-phai-json"}
	if err := Validate.Struct(v); err == nil {
		t.Error("constraints không phải JSON phải bị từ chối")
	}
}

func TestSectionPath(t *testing.T) {
	valid := []string{"/invoices", "/invoices/create", "/products/labels"}
	for _, p := range valid {
		if err := Validate.Struct(sectionPathInput{Path: p}); err != nil {
			t.Errorf("path %q phải hợp lệ: %v", p, err)
		}
	}
	invalid := []string{"invoices", "/Invoices", "/invoices/", "//x", ""}
	for _, p := range invalid {
		if err := Validate.Struct(sectionPathInput{Path: p}); err == nil {
			t.Errorf("path %q phải bị từ chối", p)
		}
	}
}
