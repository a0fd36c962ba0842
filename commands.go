package luxafor

// ─── Renk Komutları ─────────────────────────────────────────────────────────────

// Color, hedef LED grubunu anında verilen renge boyar.
//
// Komut kuyruğa alınır ve sırası geldiğinde cihaza yazılır. Dönen kanal,
// cihaz komutu onayladığında nil, aksi halde hatayı taşır; 1 kapasiteli
// olduğundan sonucu okumamak güvenlidir. Geçersiz renk dizgisi hiç
// kuyruğa girmez, kanal hemen ErrInvalidColor ile döner.
//
//	if err := <-dev.Color("#ff0000"); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Yalnızca arka yüz, yarı parlaklık
//	dev.Color("0f0", luxafor.WithTarget(luxafor.TargetBack), luxafor.WithBrightness(0.5))
func (d *Device) Color(color string, opts ...Option) <-chan error {
	return d.submit(cmdColor, color, 0, opts)
}

// Fade, hedef LED grubunu verilen renge yumuşak geçişle getirir. Cihaz,
// geçiş tamamlanana kadar DONE raporu göndermez; kuyruk o süre boyunca
// sıradaki komutu bekletir.
//
//	dev.Fade("#336699", luxafor.WithDuration(30))
func (d *Device) Fade(color string, opts ...Option) <-chan error {
	return d.submit(cmdFade, color, 0, opts)
}

// Off, hedef LED grubunu söndürür; hedef belirtilmezse tüm LED'leri.
// Siyah renkli bir Color komutudur ve parlaklık çarpanından etkilenmez.
//
//	defer func() { <-dev.Off() }()
func (d *Device) Off(opts ...Option) <-chan error {
	return d.submit(cmdColor, "#000000", 0, opts)
}

// ─── Animasyon Komutları ────────────────────────────────────────────────────────

// Flash, hedef LED grubunu verilen renkle yakıp söndürür. Hız
// WithDuration, tekrar sayısı WithTimes ile ayarlanır; belirtilmeyenler
// Config varsayılanlarından gelir. Sonuç, son tekrar bittiğinde teslim
// edilir.
//
//	dev.Flash("#ffaa00", luxafor.WithTimes(3), luxafor.WithDuration(10))
func (d *Device) Flash(color string, opts ...Option) <-chan error {
	return d.submit(cmdFlash, color, 0, opts)
}

// Wave, verilen renk ve desenle dalga animasyonu çalıştırır. Desenlerin
// görsel davranışı firmware'e gömülüdür. Sonuç, animasyon bittiğinde
// teslim edilir.
//
//	dev.Wave("#00ffff", luxafor.WaveThree, luxafor.WithDuration(20), luxafor.WithTimes(5))
func (d *Device) Wave(color string, pattern WavePattern, opts ...Option) <-chan error {
	return d.submit(cmdWave, color, pattern, opts)
}

// ─── Kuyruk ve Yapılandırma ─────────────────────────────────────────────────────

// Configure, kalıcı komut varsayılanlarını değiştirir. Değişiklik sıradan
// bir kuyruk görevi olarak işletilir: daha önce gönderilmiş komutlar eski
// varsayılanlarla, sonra gönderilenler yenileriyle çalışır. Değerler
// geçerli aralıklara kırpılır.
//
//	<-dev.Configure(luxafor.WithBrightness(0.5), luxafor.WithTarget(luxafor.TargetFront))
func (d *Device) Configure(opts ...Option) <-chan error {
	o := collectOptions(opts)
	return d.queue.enqueue("Configure", func() error {
		d.storeConfig(o.applyTo(d.snapshotConfig()))
		return nil
	})
}

// Clear, sırada bekleyen komutları düşürür; her birinin sonuç kanalına
// ErrQueueCleared yazılır. Uçuştaki komut kesilmez. Dönen kanal, uçuştaki
// komut tamamlandığında (kuyruk boşsa hemen) nil taşır.
//
//	dev.Flash("#ff0000", luxafor.WithTimes(250))
//	dev.Color("#00ff00") // düşürülecek
//	<-dev.Clear()
func (d *Device) Clear() <-chan error {
	return d.queue.clear()
}

// ─── Komut Yürütme ──────────────────────────────────────────────────────────────

// submit, bir cihaz komutunu doğrulayıp kuyruğa alır. Renk dizgisi ve
// bağlantı durumu çağrı anında denetlenir; parlaklık ve varsayılanlar ise
// komut uçuşa alındığı anda çözülür. Böylece araya giren bir Configure,
// sıradaki komutları etkiler.
func (d *Device) submit(kind commandKind, color string, pattern WavePattern, opts []Option) <-chan error {
	if err := d.ensureConnected(); err != nil {
		return settled(err)
	}
	if _, err := ParseColor(color); err != nil {
		return settled(err)
	}

	o := collectOptions(opts)
	return d.queue.enqueue(kind.String(), func() error {
		return d.execute(kind, color, pattern, o)
	})
}

// execute, uçuştaki komutun gövdesidir: parametreleri çözer, çerçeveyi
// yazar ve cihazın onayını bekler. Beklenen yanıt işareti yazmadan önce
// kurulur; cihaz çerçeveye anında yanıt verse bile rapor kaybolmaz.
func (d *Device) execute(kind commandKind, color string, pattern WavePattern, o options) error {
	eff := o.applyTo(d.snapshotConfig())

	c, err := DecodeColor(color, eff.Brightness)
	if err != nil {
		return err
	}

	cmd := command{
		kind:     kind,
		target:   eff.Target,
		pattern:  pattern,
		color:    c,
		duration: eff.Duration,
		times:    eff.Times,
	}

	w := d.queue.expect(kind.response())
	if err := d.writeFrame(encodeCommand(cmd)); err != nil {
		return err
	}
	w.wait()
	return nil
}

// settled, sonucu baştan belli olan bir komut için dolu kanal döner.
func settled(err error) <-chan error {
	ch := make(chan error, 1)
	ch <- err
	return ch
}
