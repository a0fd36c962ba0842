package luxafor

import (
	"fmt"
	"runtime"
	"sync"
)

// Device, tek bir USB bayrağıyla tüm etkileşimi yöneten ana yapıdır.
// Thread-safe olarak tasarlanmıştır; komut metotları herhangi bir
// goroutine'den çağrılabilir, komutlar geliş sırasıyla işletilir.
//
// Kullanım:
//
//	dev := luxafor.NewDevice()
//	if err := dev.Connect(); err != nil {
//	    log.Fatal(err)
//	}
//	defer dev.Close()
//
//	if err := <-dev.Color("#00ff00"); err != nil {
//	    log.Fatal(err)
//	}
type Device struct {
	// opts, cihaz yapılandırma seçenekleridir.
	opts deviceOptions

	// mu, bağlantı durumu ve config için mutex'tir.
	mu sync.Mutex

	// writeMu, HID yazma işlemleri için mutex'tir.
	// Aynı anda birden fazla goroutine yazmasını engeller.
	writeMu sync.Mutex

	// transport, aktif HID bağlantısıdır.
	transport Transport

	// connected, bağlantı durumunu gösterir.
	connected bool

	// info, bağlanılan bayrağın kimlik bilgileridir.
	info DeviceInfo

	// config, komut varsayılanlarıdır. Configure işlemiyle değişir.
	config Config

	// queue, komutları sıralayan ve teker teker işleten kuyruktur.
	queue *commandQueue

	// stopRead, okuma döngüsünün kasıtlı kapanışını işaretler.
	stopRead chan struct{}
}

// NewDevice, yeni bir Device nesnesi oluşturur. USB veriyoluna henüz
// dokunulmaz; Connect() çağrılmalıdır.
//
//	// Basit kullanım
//	dev := luxafor.NewDevice()
//
//	// Seçeneklerle
//	dev := luxafor.NewDevice(
//	    luxafor.WithLogger(log.Default()),
//	    luxafor.WithConfig(luxafor.Config{Brightness: 0.5, Target: luxafor.TargetAll, Times: 1}),
//	)
func NewDevice(options ...DeviceOption) *Device {
	opts := defaultDeviceOptions()
	for _, opt := range options {
		opt(&opts)
	}

	d := &Device{
		opts:   opts,
		config: opts.config,
	}
	d.queue = newCommandQueue(d.logf)
	return d
}

// ─── Bağlantı Yönetimi ──────────────────────────────────────────────────────────

// Connect, veriyolundaki ilk bayrağı açar ve okuma döngüsünü başlatır.
// Bağlantı zaten kuruluysa önce mevcut bağlantı kapatılır; kuyruktaki
// görevler korunur.
func (d *Device) Connect() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.transport != nil {
		d.closeInternal()
	}

	d.logf("cihaz aranıyor (vid=0x%04x pid=0x%04x)", VendorID, ProductID)

	t, info, err := d.opts.opener()
	if err != nil {
		return fmt.Errorf("bağlantı kurulamadı: %w", err)
	}

	d.transport = t
	d.info = info
	d.connected = true
	d.stopRead = make(chan struct{})
	go d.readLoop(t, d.stopRead)

	d.logf("bağlantı kuruldu: %s", info)
	return nil
}

// Close, cihaz bağlantısını kapatır ve okuma döngüsünü sonlandırır.
// Uçuştaki bir komut cihazdan yanıt bekliyorsa o bekleme çözülmez;
// kapatmadan önce komut sonuçlarını beklemek çağıranın sorumluluğudur.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closeInternal()
}

// closeInternal, bağlantıyı kapatır (d.mu tutulurken çağrılır).
func (d *Device) closeInternal() error {
	if d.stopRead != nil {
		close(d.stopRead)
		d.stopRead = nil
	}
	d.connected = false
	if d.transport != nil {
		err := d.transport.Close()
		d.transport = nil
		return err
	}
	return nil
}

// IsConnected, bağlantının aktif olup olmadığını döner.
func (d *Device) IsConnected() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.connected
}

// Info, bağlanılan bayrağın kimlik bilgilerini döner.
// Connect() çağrılmadan önce sıfır değer döner.
func (d *Device) Info() DeviceInfo {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.info
}

// Config, geçerli komut varsayılanlarının bir kopyasını döner.
func (d *Device) Config() Config {
	return d.snapshotConfig()
}

// Pending, uçuştaki komut dahil tamamlanmamış komut sayısını döner.
func (d *Device) Pending() int {
	return d.queue.depth()
}

// ─── Okuma Döngüsü ──────────────────────────────────────────────────────────────

// readLoop, cihazdan gelen raporları okuyup bekleyen komutla eşleştiren
// arka plan goroutine'idir. Connect tarafından başlatılır; taşıma katmanı
// kapatıldığında okuma hatasıyla sonlanır.
func (d *Device) readLoop(t Transport, stop chan struct{}) {
	buf := make([]byte, inboundReportLength)
	for {
		n, err := t.Read(buf)
		if err != nil {
			select {
			case <-stop:
				// Kasıtlı kapanış, sessizce çık
			default:
				d.logf("okuma döngüsü sonlandı: %v", err)
			}
			return
		}
		if n == 0 {
			continue
		}

		resp, err := parseResponse(buf[:n])
		if err != nil {
			d.logf("gelen rapor çözülemedi: %v", err)
			continue
		}
		if !d.queue.satisfy(resp) {
			d.logf("beklenmeyen yanıt yok sayıldı: %s", resp)
		}
	}
}

// ─── Çerçeve Yazma ──────────────────────────────────────────────────────────────

// writeFrame, çerçeveyi platforma göre hazırlayıp cihaza yazar.
// Komut gövdeleri tarafından kuyruk goroutine'inde çağrılır.
func (d *Device) writeFrame(frame []byte) error {
	d.writeMu.Lock()
	defer d.writeMu.Unlock()

	d.mu.Lock()
	t := d.transport
	ok := d.connected
	d.mu.Unlock()

	if !ok || t == nil {
		return ErrNotConnected
	}

	if _, err := t.Write(withReportID(frame, runtime.GOOS)); err != nil {
		return fmt.Errorf("çerçeve yazılamadı: %w", err)
	}
	return nil
}

// ─── Dahili Yardımcılar ─────────────────────────────────────────────────────────

// logf, yapılandırılmış logger varsa mesaj yazar.
func (d *Device) logf(format string, v ...interface{}) {
	if d.opts.logger != nil {
		d.opts.logger.Printf("[luxafor] "+format, v...)
	}
}

// ensureConnected, bağlantının aktif olduğunu kontrol eder.
func (d *Device) ensureConnected() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.connected || d.transport == nil {
		return ErrNotConnected
	}
	return nil
}

// snapshotConfig, komut varsayılanlarının o anki kopyasını döner.
func (d *Device) snapshotConfig() Config {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.config
}

// storeConfig, komut varsayılanlarını günceller.
func (d *Device) storeConfig(cfg Config) {
	d.mu.Lock()
	d.config = cfg
	d.mu.Unlock()
}
