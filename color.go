package luxafor

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ─── Renk Tipi ──────────────────────────────────────────────────────────────────

// RGB, bir rengin üç kanalını komut çerçevelerinde taşındığı haliyle
// (kanal başına bir byte) temsil eder.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// String, rengin "#rrggbb" biçimindeki temsilini döner.
func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Scale, her kanalı verilen parlaklık çarpanıyla ölçekleyip aşağı
// yuvarlanmış yeni bir renk döner. Çarpan [0,1] aralığına kırpılır;
// 1.0 rengi değiştirmez, 0.0 siyah üretir.
func (c RGB) Scale(brightness float64) RGB {
	f := clampUnit(brightness)
	return RGB{
		R: uint8(math.Floor(float64(c.R) * f)),
		G: uint8(math.Floor(float64(c.G) * f)),
		B: uint8(math.Floor(float64(c.B) * f)),
	}
}

// ─── Renk Ayrıştırma ────────────────────────────────────────────────────────────

// hexColorPattern, kabul edilen renk dizgisi biçimini tanımlar: isteğe
// bağlı '#' öneki ve 3 veya 6 onaltılık rakam.
var hexColorPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ParseColor, CSS tarzı bir onaltılık renk dizgisini RGB değerine çözer.
// Baştaki ve sondaki boşluklar atılır, '#' öneki isteğe bağlıdır ve
// büyük/küçük harf ayrımı yapılmaz. Üç rakamlı kısa biçimde her rakam
// ikiye katlanır ("f00" → "ff0000"). Desene uymayan dizgiler için
// ErrInvalidColor döner.
//
//	c, err := luxafor.ParseColor("#1e90ff")
//	c, err := luxafor.ParseColor("f00") // RGB{255, 0, 0}
func ParseColor(s string) (RGB, error) {
	m := hexColorPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	hex := m[1]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	return RGB{
		R: hexByte(hex[0:2]),
		G: hexByte(hex[2:4]),
		B: hexByte(hex[4:6]),
	}, nil
}

// hexByte, iki onaltılık rakamı tek byte'a çevirir. Çağıran, girişin
// desen denetiminden geçtiğini garanti eder.
func hexByte(s string) uint8 {
	v, _ := strconv.ParseUint(s, 16, 8)
	return uint8(v)
}

// DecodeColor, bir renk dizgisini ayrıştırır ve parlaklık çarpanını
// uygular. Komut gövdelerinin çalışma anında kullandığı yoldur.
//
//	c, err := luxafor.DecodeColor("#f00", 0.5) // RGB{127, 0, 0}
func DecodeColor(s string, brightness float64) (RGB, error) {
	c, err := ParseColor(s)
	if err != nil {
		return RGB{}, err
	}
	return c.Scale(brightness), nil
}
