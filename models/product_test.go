package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDiscountPercent(t *testing.T) {
	cases := []struct {
		name     string
		price    float64
		original float64
		want     int
	}{
		{"twenty percent", 80000, 100000, 20},
		{"no original price", 50000, 0, 0},
		{"no discount", 100000, 100000, 0},
		{"fractional", 66600, 99900, 33},
		{"full discount", 0, 100000, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Product{Price: tc.price, OriginalPrice: tc.original}
			if got := p.DiscountPercent(); got != tc.want {
				t.Errorf("DiscountPercent() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestDiscountAmount(t *testing.T) {
	p := Product{Price: 80000, OriginalPrice: 100000}
	if got := p.DiscountAmount(); got != 20000 {
		t.Errorf("DiscountAmount() = %v, want 20000", got)
	}

	// Harga jual di atas harga asli tidak boleh menghasilkan diskon negatif
	p = Product{Price: 120000, OriginalPrice: 100000}
	if got := p.DiscountAmount(); got != 0 {
		t.Errorf("DiscountAmount() = %v, want 0", got)
	}
}

func TestViewNeverExposesFilePaths(t *testing.T) {
	p := Product{
		Title:         "Logo Senja",
		Price:         80000,
		OriginalPrice: 100000,
		Category:      "logo",
		FilePath:      "private/files/logo-senja.zip",
		WatermarkPath: "private/watermarks/wm.png",
	}

	data, err := json.Marshal(p.View())
	if err != nil {
		t.Fatalf("marshal view: %v", err)
	}
	body := string(data)
	if strings.Contains(body, "logo-senja.zip") || strings.Contains(body, "file_path") {
		t.Errorf("view leaks file path: %s", body)
	}
	if strings.Contains(body, "wm.png") || strings.Contains(body, "watermark_path") {
		t.Errorf("view leaks watermark path: %s", body)
	}
	if !strings.Contains(body, `"discount_percent":20`) {
		t.Errorf("view missing derived discount: %s", body)
	}
}

func TestProductJSONNeverExposesFilePaths(t *testing.T) {
	p := Product{FilePath: "private/files/a.zip", WatermarkPath: "private/wm.png"}
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal product: %v", err)
	}
	if strings.Contains(string(data), "a.zip") || strings.Contains(string(data), "wm.png") {
		t.Errorf("product json leaks file path: %s", data)
	}
}

func TestValidCategory(t *testing.T) {
	if !ValidCategory("logo") {
		t.Error("logo should be valid")
	}
	if ValidCategory("hardware") {
		t.Error("hardware should not be valid")
	}
}
