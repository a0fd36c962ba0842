package luxafor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildColorFrame(t *testing.T) {
	frame := buildColorFrame(TargetAll, RGB{0x00, 0xff, 0x00})
	assert.Equal(t, []byte{0x01, 0xff, 0x00, 0xff, 0x00, 0x00, 0x00}, frame)

	frame = buildColorFrame(TargetFrontTop, RGB{0x12, 0x34, 0x56})
	assert.Equal(t, []byte{0x01, 0x03, 0x12, 0x34, 0x56, 0x00, 0x00}, frame)
}

func TestBuildFadeFrame(t *testing.T) {
	frame := buildFadeFrame(TargetBack, RGB{0xaa, 0xbb, 0xcc}, 30)
	assert.Equal(t, []byte{0x02, 0x42, 0xaa, 0xbb, 0xcc, 0x1e, 0x00}, frame)
}

func TestBuildFlashFrame(t *testing.T) {
	// Süre 5. byte'ta, tekrar sayısı son byte'ta, arada sıfır dolgu.
	frame := buildFlashFrame(TargetFront, RGB{0xff, 0xaa, 0x00}, 10, 3)
	assert.Equal(t, []byte{0x03, 0x41, 0xff, 0xaa, 0x00, 0x0a, 0x00, 0x03}, frame)
}

func TestBuildWaveFrame(t *testing.T) {
	// Flash'ın tersine tekrar sayısı süreden önce gelir.
	frame := buildWaveFrame(WaveOne, RGB{0x00, 0xff, 0xff}, 5, 20)
	assert.Equal(t, []byte{0x04, 0x01, 0x00, 0xff, 0xff, 0x00, 0x05, 0x14}, frame)
}

func TestEncodeCommandDispatch(t *testing.T) {
	c := RGB{1, 2, 3}

	tests := []struct {
		name string
		cmd  command
		want []byte
	}{
		{
			name: "color",
			cmd:  command{kind: cmdColor, target: TargetAll, color: c},
			want: []byte{0x01, 0xff, 1, 2, 3, 0x00, 0x00},
		},
		{
			name: "fade",
			cmd:  command{kind: cmdFade, target: TargetAll, color: c, duration: 7},
			want: []byte{0x02, 0xff, 1, 2, 3, 7, 0x00},
		},
		{
			name: "flash",
			cmd:  command{kind: cmdFlash, target: TargetBack, color: c, duration: 7, times: 2},
			want: []byte{0x03, 0x42, 1, 2, 3, 7, 0x00, 2},
		},
		{
			name: "wave",
			cmd:  command{kind: cmdWave, pattern: WaveFive, color: c, duration: 7, times: 2},
			want: []byte{0x04, 0x05, 1, 2, 3, 0x00, 2, 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, encodeCommand(tt.cmd))
		})
	}
}

func TestCommandKindResponse(t *testing.T) {
	assert.Equal(t, ResponseAck, cmdColor.response())
	assert.Equal(t, ResponseDone, cmdFade.response())
	assert.Equal(t, ResponseDone, cmdFlash.response())
	assert.Equal(t, ResponseDone, cmdWave.response())
}

func TestParseResponseKnownCodes(t *testing.T) {
	r, err := parseResponse([]byte{0x42, 0x00})
	require.NoError(t, err)
	assert.Equal(t, ResponseAck, r)

	r, err = parseResponse([]byte{0x00, 0x01})
	require.NoError(t, err)
	assert.Equal(t, ResponseDone, r)
}

func TestParseResponseIgnoresTrailingBytes(t *testing.T) {
	report := []byte{0x42, 0x00, 0xde, 0xad, 0xbe, 0xef, 0x00, 0x07}
	r, err := parseResponse(report)
	require.NoError(t, err)
	assert.Equal(t, ResponseAck, r)
}

func TestParseResponseRejectsUnknown(t *testing.T) {
	tests := [][]byte{
		{0x00, 0x00},
		{0x42, 0x01},
		{0x01, 0x00},
		{0xff, 0xff},
	}

	for _, report := range tests {
		_, err := parseResponse(report)
		assert.ErrorIs(t, err, ErrUnknownResponse, "rapor %v", report)
	}
}

func TestParseResponseErrorCarriesRawBytes(t *testing.T) {
	_, err := parseResponse([]byte{0x9a, 0x3c})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "0x9a")
	assert.Contains(t, err.Error(), "0x3c")
}

func TestParseResponseShortReport(t *testing.T) {
	_, err := parseResponse([]byte{0x42})
	assert.ErrorIs(t, err, ErrUnknownResponse)

	_, err = parseResponse(nil)
	assert.ErrorIs(t, err, ErrUnknownResponse)
}

func TestResponseString(t *testing.T) {
	assert.Equal(t, "ACK", ResponseAck.String())
	assert.Equal(t, "DONE", ResponseDone.String())
	assert.Equal(t, "Unknown(0x0000)", Response(0).String())
}
