package luxafor

import (
	"fmt"

	"github.com/karalabe/hid"
)

// ─── Taşıma Katmanı ─────────────────────────────────────────────────────────────

// Transport, cihazla ham HID raporu alışverişi yapan bağlantıyı soyutlar.
// *hid.Device bu arayüzü doğrudan karşılar; testler sahte bir taşıma
// katmanı enjekte eder.
type Transport interface {
	// Write, bir giden raporu cihaza yazar.
	Write(b []byte) (int, error)

	// Read, cihazdan bir gelen raporu okur. Rapor gelene kadar bloklar.
	Read(b []byte) (int, error)

	// Close, bağlantıyı kapatır ve bekleyen okumaları sonlandırır.
	Close() error
}

// Opener, Connect'in cihaz bulup açmak için kullandığı fonksiyondur.
// Varsayılan uygulama USB veriyoluna bakar; WithOpener ile değiştirilir.
type Opener func() (Transport, DeviceInfo, error)

// ─── Cihaz Bilgisi ──────────────────────────────────────────────────────────────

// DeviceInfo, numaralandırmada bulunan bir bayrağın kimlik bilgilerini
// taşır.
type DeviceInfo struct {
	Path         string // Platforma özgü USB yolu
	VendorID     uint16
	ProductID    uint16
	Serial       string
	Manufacturer string
	Product      string
}

// String, cihazın okunabilir kimliğini döner.
func (i DeviceInfo) String() string {
	return fmt.Sprintf("%s %s (vid=0x%04x pid=0x%04x)", i.Manufacturer, i.Product, i.VendorID, i.ProductID)
}

func fromHIDInfo(info hid.DeviceInfo) DeviceInfo {
	return DeviceInfo{
		Path:         info.Path,
		VendorID:     info.VendorID,
		ProductID:    info.ProductID,
		Serial:       info.Serial,
		Manufacturer: info.Manufacturer,
		Product:      info.Product,
	}
}

// ─── Cihaz Bulma ────────────────────────────────────────────────────────────────

// Enumerate, USB veriyolunda takılı bayrakları listeler. Yolu boş dönen
// girdiler (başka bir sürücü tarafından tutulan arayüzler) atlanır.
// HID erişiminin desteklenmediği platformlarda boş liste döner.
func Enumerate() []DeviceInfo {
	if !hid.Supported() {
		return nil
	}

	var found []DeviceInfo
	for _, info := range hid.Enumerate(VendorID, ProductID) {
		if info.Path == "" {
			continue
		}
		found = append(found, fromHIDInfo(info))
	}
	return found
}

// openFirstFlag, veriyolundaki ilk açılabilen bayrağı açar. Hiç aday
// yoksa ErrNoDevice, adaylar var ama hiçbiri açılamıyorsa son açma
// hatası döner.
func openFirstFlag() (Transport, DeviceInfo, error) {
	if !hid.Supported() {
		return nil, DeviceInfo{}, fmt.Errorf("%w: bu platformda ham HID erişimi yok", ErrNoDevice)
	}

	var lastErr error
	for _, info := range hid.Enumerate(VendorID, ProductID) {
		if info.Path == "" {
			continue
		}
		handle, err := info.Open()
		if err != nil {
			lastErr = err
			continue
		}
		return handle, fromHIDInfo(info), nil
	}

	if lastErr != nil {
		return nil, DeviceInfo{}, fmt.Errorf("cihaz açılamadı: %w", lastErr)
	}
	return nil, DeviceInfo{}, ErrNoDevice
}

// ─── Rapor Kimliği ──────────────────────────────────────────────────────────────

// withReportID, giden çerçeveyi yazma öncesi platforma göre hazırlar.
// Windows HID yığını her raporun başında bir rapor kimliği byte'ı
// bekler; cihaz numaralı rapor kullanmadığından bu byte 0x00'dır. Diğer
// platformlarda çerçeve olduğu gibi yazılır.
func withReportID(frame []byte, goos string) []byte {
	if goos != "windows" {
		return frame
	}

	out := make([]byte, 0, len(frame)+1)
	out = append(out, 0x00)
	return append(out, frame...)
}
