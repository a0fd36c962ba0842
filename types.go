package luxafor

import (
	"errors"
	"fmt"
	"math"
)

// ─── Protokol Sabitleri ─────────────────────────────────────────────────────────

const (
	// VendorID, bayrağın USB üretici kimliğidir (Microchip Technology).
	VendorID uint16 = 0x04d8

	// ProductID, bayrağın USB ürün kimliğidir.
	ProductID uint16 = 0xf372

	// inboundReportLength, cihazdan gelen bir HID raporunun byte uzunluğudur.
	// Yanıt kodu ilk iki byte'ta taşınır, kalan byte'lar yok sayılır.
	inboundReportLength = 8
)

// ─── Komut Tipleri ──────────────────────────────────────────────────────────────

// commandKind, giden çerçevenin ilk byte'ını (opcode) belirler.
// Değerler cihaz firmware'inin tanıdığı protokol sabitleridir.
type commandKind byte

const (
	// cmdColor, hedef LED grubunu anında tek renge boyar.
	cmdColor commandKind = 0x01

	// cmdFade, hedef grubu belirtilen sürede yeni renge geçirir.
	cmdFade commandKind = 0x02

	// cmdFlash, hedef grubu belirtilen hız ve tekrar sayısıyla yakıp söndürür.
	cmdFlash commandKind = 0x03

	// cmdWave, beş gömülü dalga deseninden birini çalıştırır.
	cmdWave commandKind = 0x04
)

// response, komutun donanımdan beklediği onay kodunu döner.
// Renk komutu ACK, animasyon komutları (fade/flash/wave) DONE bekler.
func (k commandKind) response() Response {
	if k == cmdColor {
		return ResponseAck
	}
	return ResponseDone
}

// String, commandKind'ın okunabilir adını döner.
func (k commandKind) String() string {
	switch k {
	case cmdColor:
		return "Color"
	case cmdFade:
		return "Fade"
	case cmdFlash:
		return "Flash"
	case cmdWave:
		return "Wave"
	default:
		return fmt.Sprintf("Unknown(0x%02x)", byte(k))
	}
}

// ─── Hedef LED Grupları ─────────────────────────────────────────────────────────

// Target, komutun uygulanacağı LED grubunu seçer. Her değer protokolde
// ayrılmış bir byte'a karşılık gelir.
//
// Bayrağın iki yüzü vardır: bayrak şeklindeki ön yüz ve düz arka yüz.
// Her yüzde alttan üste numaralanmış üç LED bulunur.
type Target byte

const (
	// TargetAll, her iki yüzdeki altı LED'in tamamını hedefler.
	TargetAll Target = 0xff

	// TargetFront, ön yüzdeki üç LED'i birlikte hedefler.
	TargetFront Target = 0x41

	// TargetBack, arka yüzdeki üç LED'i birlikte hedefler.
	TargetBack Target = 0x42

	// TargetFrontBottom, ön yüzün en alttaki LED'ini hedefler.
	TargetFrontBottom Target = 0x01

	// TargetFrontCenter, ön yüzün ortadaki LED'ini hedefler.
	TargetFrontCenter Target = 0x02

	// TargetFrontTop, ön yüzün en üstteki LED'ini hedefler.
	TargetFrontTop Target = 0x03

	// TargetBackBottom, arka yüzün en alttaki LED'ini hedefler.
	TargetBackBottom Target = 0x04

	// TargetBackCenter, arka yüzün ortadaki LED'ini hedefler.
	TargetBackCenter Target = 0x05

	// TargetBackTop, arka yüzün en üstteki LED'ini hedefler.
	TargetBackTop Target = 0x06
)

// String, Target'ın okunabilir adını döner.
func (t Target) String() string {
	switch t {
	case TargetAll:
		return "All"
	case TargetFront:
		return "Front"
	case TargetBack:
		return "Back"
	case TargetFrontBottom:
		return "FrontBottom"
	case TargetFrontCenter:
		return "FrontCenter"
	case TargetFrontTop:
		return "FrontTop"
	case TargetBackBottom:
		return "BackBottom"
	case TargetBackCenter:
		return "BackCenter"
	case TargetBackTop:
		return "BackTop"
	default:
		return fmt.Sprintf("Target(0x%02x)", byte(t))
	}
}

// ─── Dalga Desenleri ────────────────────────────────────────────────────────────

// WavePattern, Wave komutunun çalıştıracağı donanım desenini seçer.
// Desenlerin görsel davranışı firmware'e gömülüdür; sürücü yalnızca
// desen numarasını iletir.
type WavePattern byte

const (
	WaveOne   WavePattern = 1 // Kısa tek dalga
	WaveTwo   WavePattern = 2 // Uzun tek dalga
	WaveThree WavePattern = 3 // Binişen kısa dalga
	WaveFour  WavePattern = 4 // Binişen uzun dalga
	WaveFive  WavePattern = 5 // Tüm LED'lerde dalga
)

// String, WavePattern'ın okunabilir adını döner.
func (p WavePattern) String() string {
	if p >= WaveOne && p <= WaveFive {
		return fmt.Sprintf("Wave%d", byte(p))
	}
	return fmt.Sprintf("Wave(0x%02x)", byte(p))
}

// ─── Yanıt Kodları ──────────────────────────────────────────────────────────────

// Response, cihazdan gelen raporun ilk iki byte'ından big-endian olarak
// çözülen onay kodunu temsil eder. Yalnızca iki kod tanınır; diğer her
// değer ErrUnknownResponse ile reddedilir.
type Response uint16

const (
	// ResponseAck, cihazın bir renk komutunu kabul ettiğini bildirir.
	// Ham hali: [0x42, 0x00].
	ResponseAck Response = 0x4200

	// ResponseDone, cihazın bir animasyonu (fade/flash/wave) bitirdiğini
	// bildirir. Ham hali: [0x00, 0x01].
	ResponseDone Response = 0x0001
)

// String, Response'un okunabilir adını döner.
func (r Response) String() string {
	switch r {
	case ResponseAck:
		return "ACK"
	case ResponseDone:
		return "DONE"
	default:
		return fmt.Sprintf("Unknown(0x%04x)", uint16(r))
	}
}

// ─── Yapılandırma ───────────────────────────────────────────────────────────────

// Config, komut çağrılarında belirtilmeyen parametrelerin yerine geçen
// varsayılan değerleri tutar. Device tarafından sahiplenilir: yalnızca
// Configure işlemiyle değişir ve her komut gövdesi çalıştığı anda okur.
//
// Tüm alanlar her an geçerli aralıklara kırpılmış değerler taşır.
type Config struct {
	// Brightness, RGB kanallarına uygulanan parlaklık çarpanıdır (0.0-1.0).
	Brightness float64

	// Target, hedef belirtilmeyen komutların kullanacağı LED grubudur.
	Target Target

	// Duration, süre belirtilmeyen Fade/Flash/Wave komutlarının
	// kullanacağı süre byte'ıdır (0-255, 0 = en hızlı).
	Duration uint8

	// Times, tekrar sayısı belirtilmeyen Flash/Wave komutlarının
	// kullanacağı tekrar byte'ıdır (0-255).
	Times uint8
}

// defaultConfig, yeni bir Device'ın başlangıç varsayılanlarını döner.
func defaultConfig() Config {
	return Config{
		Brightness: 1.0,
		Target:     TargetAll,
		Duration:   0,
		Times:      1,
	}
}

// normalized, tüm alanları geçerli aralıklara kırpılmış bir kopya döner.
func (c Config) normalized() Config {
	c.Brightness = clampUnit(c.Brightness)
	return c
}

// clampUnit, parlaklık çarpanını [0,1] aralığına kırpar.
func clampUnit(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// clampByte, süre ve tekrar alanlarını [0,255] aralığına kırpar.
func clampByte(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}

// ─── Hatalar ────────────────────────────────────────────────────────────────────

var (
	// ErrInvalidColor, renk dizgisi beklenen onaltılık desene uymadığında
	// döner. Hata iletisi sorunlu dizgiyi içerir.
	ErrInvalidColor = errors.New("geçersiz renk formatı")

	// ErrUnknownResponse, gelen raporun ilk iki byte'ı tanınan iki yanıt
	// kodundan birine denk gelmediğinde döner. Hata iletisi ham byte'ları
	// içerir.
	ErrUnknownResponse = errors.New("tanınmayan cihaz yanıtı")

	// ErrNoDevice, numaralandırmada açılabilir bir bayrak bulunamadığında
	// Connect tarafından döner.
	ErrNoDevice = errors.New("uygun cihaz bulunamadı")

	// ErrNotConnected, bağlantı kurulmadan komut gönderilmeye
	// çalışıldığında döner.
	ErrNotConnected = errors.New("cihaz bağlı değil, önce Connect() çağırın")

	// ErrQueueCleared, Clear çağrısıyla kuyruktan düşürülen görevlerin
	// sonuç kanallarına yazılır.
	ErrQueueCleared = errors.New("komut kuyruğu temizlendi")
)

// ─── Komut Seçenekleri ──────────────────────────────────────────────────────────

// Option, tek bir komut çağrısının parametrelerini ayarlar veya Configure
// ile kalıcı varsayılanları değiştirir. Belirtilmeyen parametreler
// Config'deki varsayılanlara düşer.
type Option func(*options)

type options struct {
	brightness *float64
	target     *Target
	duration   *int
	times      *int
}

// collectOptions, verilen seçenekleri tek bir options değerinde toplar.
func collectOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// applyTo, belirtilen seçenekleri cfg üzerine uygular ve kırpılmış sonucu
// döner. Configure'un kalıcı güncellemesi de komut gövdelerinin çağrı
// bazlı çözümlemesi de bu yardımcıyı kullanır.
func (o options) applyTo(cfg Config) Config {
	if o.brightness != nil {
		cfg.Brightness = clampUnit(*o.brightness)
	}
	if o.target != nil {
		cfg.Target = *o.target
	}
	if o.duration != nil {
		cfg.Duration = clampByte(*o.duration)
	}
	if o.times != nil {
		cfg.Times = clampByte(*o.times)
	}
	return cfg
}

// WithBrightness, parlaklık çarpanını ayarlar. Değer [0,1] aralığına
// kırpılır.
//
//	dev.Configure(luxafor.WithBrightness(0.5)) // kalıcı varsayılan
//	dev.Color("#ff0000", luxafor.WithBrightness(1.0)) // tek komutluk
func WithBrightness(b float64) Option {
	return func(o *options) {
		o.brightness = &b
	}
}

// WithTarget, hedef LED grubunu ayarlar.
//
//	dev.Color("#00ff00", luxafor.WithTarget(luxafor.TargetBack))
func WithTarget(t Target) Option {
	return func(o *options) {
		o.target = &t
	}
}

// WithDuration, süre byte'ını ayarlar. Değer [0,255] aralığına kırpılır;
// 0 en hızlı geçiş anlamına gelir.
func WithDuration(d int) Option {
	return func(o *options) {
		o.duration = &d
	}
}

// WithTimes, tekrar sayısını ayarlar; yalnızca Flash ve Wave kullanır.
// Değer [0,255] aralığına kırpılır.
func WithTimes(n int) Option {
	return func(o *options) {
		o.times = &n
	}
}

// ─── Cihaz Seçenekleri ──────────────────────────────────────────────────────────

// DeviceOption, Device yapılandırma seçeneklerini tanımlar.
// Functional Options pattern kullanılır.
type DeviceOption func(*deviceOptions)

type deviceOptions struct {
	logger Logger
	opener Opener
	config Config
}

func defaultDeviceOptions() deviceOptions {
	return deviceOptions{
		logger: nil,
		opener: openFirstFlag,
		config: defaultConfig(),
	}
}

// WithLogger, özel bir loglama arayüzü ayarlar.
// Varsayılan olarak loglama devre dışıdır.
//
//	dev := luxafor.NewDevice(luxafor.WithLogger(log.Default()))
func WithLogger(l Logger) DeviceOption {
	return func(o *deviceOptions) {
		o.logger = l
	}
}

// WithOpener, Connect'in kullanacağı cihaz açma fonksiyonunu değiştirir.
// Testlerde sahte bir taşıma katmanı enjekte etmek veya özel bir
// numaralandırma stratejisi uygulamak için kullanılır.
func WithOpener(open Opener) DeviceOption {
	return func(o *deviceOptions) {
		o.opener = open
	}
}

// WithConfig, başlangıç komut varsayılanlarını ayarlar. Alanlar geçerli
// aralıklara kırpılır; değerler sonradan Configure ile değiştirilebilir.
//
//	dev := luxafor.NewDevice(luxafor.WithConfig(luxafor.Config{
//	    Brightness: 0.8,
//	    Target:     luxafor.TargetFront,
//	    Times:      2,
//	}))
func WithConfig(cfg Config) DeviceOption {
	return func(o *deviceOptions) {
		o.config = cfg.normalized()
	}
}

// ─── Logger Arayüzü ─────────────────────────────────────────────────────────────

// Logger, kütüphanenin loglama arayüzüdür.
// stdlib log paketi veya zerolog/zap gibi kütüphanelerle uyumludur.
type Logger interface {
	// Printf, formatlanmış bir log mesajı yazar.
	Printf(format string, v ...interface{})
}
