package luxafor

import (
	"encoding/binary"
	"fmt"
)

// ─── Çerçeve Oluşturma ──────────────────────────────────────────────────────────
//
// Bu dosya, bayrağın USB HID protokolü için düşük seviyeli çerçeve oluşturma
// fonksiyonlarını içerir. Giden çerçeveler 7 veya 8 byte'lık ham raporlardır:
// ilk byte komut tipini (opcode), kalan byte'lar komuta özgü parametreleri
// taşır. Rapor kimliği byte'ı burada eklenmez; o işletim sistemine bağlı bir
// taşıma detayıdır ve yazma sınırında eklenir.
//
// Dikkat: Flash çerçevesinde süre tekrar sayısından önce, Wave çerçevesinde
// ise sonra gelir. Bu asimetri firmware'in beklediği düzendir.

// command, kuyruğa alınmış tek bir cihaz komutunun çözümlenmiş
// parametrelerini taşır. Alanlar çağrı seçenekleri ve Config varsayılanları
// birleştirilerek doldurulur; renk parlaklık çarpanı uygulanmış halidir.
type command struct {
	kind     commandKind
	target   Target
	pattern  WavePattern
	color    RGB
	duration uint8
	times    uint8
}

// encodeCommand, komutu cihaza yazılacak ham çerçeveye dönüştürür.
func encodeCommand(c command) []byte {
	switch c.kind {
	case cmdFade:
		return buildFadeFrame(c.target, c.color, c.duration)
	case cmdFlash:
		return buildFlashFrame(c.target, c.color, c.duration, c.times)
	case cmdWave:
		return buildWaveFrame(c.pattern, c.color, c.times, c.duration)
	default:
		return buildColorFrame(c.target, c.color)
	}
}

// buildColorFrame, statik renk çerçevesi oluşturur.
//
// Çerçeve Formatı (toplam 7 byte):
//
//	[1B] opcode = 0x01 (cmdColor)
//	[1B] hedef LED grubu
//	[3B] R, G, B
//	[2B] sıfır dolgu
//
// Cihaz, çerçeveyi aldığında ACK [0x42, 0x00] raporu döner.
func buildColorFrame(target Target, c RGB) []byte {
	return []byte{byte(cmdColor), byte(target), c.R, c.G, c.B, 0x00, 0x00}
}

// buildFadeFrame, yumuşak renk geçişi çerçevesi oluşturur.
//
// Çerçeve Formatı (toplam 7 byte):
//
//	[1B] opcode = 0x02 (cmdFade)
//	[1B] hedef LED grubu
//	[3B] R, G, B
//	[1B] geçiş süresi (0 = en hızlı)
//	[1B] sıfır dolgu
//
// Cihaz, geçiş tamamlandığında DONE [0x00, 0x01] raporu döner.
func buildFadeFrame(target Target, c RGB, duration uint8) []byte {
	return []byte{byte(cmdFade), byte(target), c.R, c.G, c.B, duration, 0x00}
}

// buildFlashFrame, yakıp söndürme çerçevesi oluşturur.
//
// Çerçeve Formatı (toplam 8 byte):
//
//	[1B] opcode = 0x03 (cmdFlash)
//	[1B] hedef LED grubu
//	[3B] R, G, B
//	[1B] yanıp sönme hızı
//	[1B] sıfır dolgu
//	[1B] tekrar sayısı
//
// Cihaz, son tekrar bittiğinde DONE raporu döner.
func buildFlashFrame(target Target, c RGB, duration, times uint8) []byte {
	return []byte{byte(cmdFlash), byte(target), c.R, c.G, c.B, duration, 0x00, times}
}

// buildWaveFrame, dalga animasyonu çerçevesi oluşturur.
//
// Çerçeve Formatı (toplam 8 byte):
//
//	[1B] opcode = 0x04 (cmdWave)
//	[1B] dalga deseni (1-5)
//	[3B] R, G, B
//	[1B] sıfır dolgu
//	[1B] tekrar sayısı
//	[1B] dalga hızı
//
// Flash'ın aksine tekrar sayısı süreden önce gelir. Cihaz, animasyon
// bittiğinde DONE raporu döner.
func buildWaveFrame(pattern WavePattern, c RGB, times, duration uint8) []byte {
	return []byte{byte(cmdWave), byte(pattern), c.R, c.G, c.B, 0x00, times, duration}
}

// ─── Yanıt Ayrıştırma ───────────────────────────────────────────────────────────

// parseResponse, cihazdan okunan ham raporu yanıt koduna çözer. Kod,
// raporun ilk iki byte'ının big-endian birleşimidir; kalan byte'lar yok
// sayılır. Tanınmayan kodlar ham byte'larıyla birlikte ErrUnknownResponse
// olarak döner.
//
//	[0x42, 0x00, ...] → ResponseAck
//	[0x00, 0x01, ...] → ResponseDone
func parseResponse(report []byte) (Response, error) {
	if len(report) < 2 {
		return 0, fmt.Errorf("%w: rapor çok kısa (%d byte)", ErrUnknownResponse, len(report))
	}

	r := Response(binary.BigEndian.Uint16(report[0:2]))
	switch r {
	case ResponseAck, ResponseDone:
		return r, nil
	}
	return 0, fmt.Errorf("%w: [0x%02x 0x%02x]", ErrUnknownResponse, report[0], report[1])
}
