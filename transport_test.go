package luxafor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithReportIDPlatforms(t *testing.T) {
	frame := []byte{0x01, 0xff, 0x10, 0x20, 0x30, 0x00, 0x00}

	// Windows dışındaki platformlar çerçeveyi olduğu gibi yazar.
	assert.Equal(t, frame, withReportID(frame, "linux"))
	assert.Equal(t, frame, withReportID(frame, "darwin"))
	assert.Equal(t, frame, withReportID(frame, "freebsd"))

	prefixed := withReportID(frame, "windows")
	require.Len(t, prefixed, len(frame)+1)
	assert.Equal(t, byte(0x00), prefixed[0])
	assert.Equal(t, frame, prefixed[1:])

	// Kaynak çerçeve değişmeden kalır.
	assert.Equal(t, []byte{0x01, 0xff, 0x10, 0x20, 0x30, 0x00, 0x00}, frame)
}

func TestDeviceInfoString(t *testing.T) {
	info := DeviceInfo{
		Manufacturer: "LUXAFOR",
		Product:      "FLAG",
		VendorID:     VendorID,
		ProductID:    ProductID,
	}

	s := info.String()
	assert.Contains(t, s, "LUXAFOR")
	assert.Contains(t, s, "FLAG")
	assert.Contains(t, s, "0x04d8")
	assert.Contains(t, s, "0xf372")
}
