package mailer

import (
	"fmt"

	"erp-kozo-backend/config"

	"gopkg.in/gomail.v2"
)

// Mailer mengirim notifikasi email ke customer. Nonaktif kalau SMTP_HOST
// tidak diset, supaya development lokal tidak butuh akun SMTP.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewFromEnv() *Mailer {
	return &Mailer{
		host:     config.GetEnv("SMTP_HOST", ""),
		port:     config.GetEnvAsInt("SMTP_PORT", 587),
		username: config.GetEnv("SMTP_USERNAME", ""),
		password: config.GetEnv("SMTP_PASSWORD", ""),
		from:     config.GetEnv("SMTP_FROM", "noreply@kozoapparel.id"),
	}
}

func (m *Mailer) Enabled() bool {
	return m.host != ""
}

func (m *Mailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	return dialer.DialAndSend(msg)
}

func (m *Mailer) SendShippingNotification(to, nama, namaPesanan, nomorResi string) error {
	body := fmt.Sprintf(
		"Halo %s,\n\nPesanan \"%s\" sudah kami kirim.\nNomor resi: %s\n\nTerima kasih sudah order di Kozo Apparel.",
		nama, namaPesanan, nomorResi,
	)
	return m.send(to, "Pesanan Anda sudah dikirim", body)
}

func (m *Mailer) SendKuitansiNotification(to, nama, nomorKuitansi string, jumlah float64) error {
	body := fmt.Sprintf(
		"Halo %s,\n\nPembayaran Anda sebesar Rp %.0f sudah kami terima.\nNomor kuitansi: %s\n\nTerima kasih.",
		nama, jumlah, nomorKuitansi,
	)
	return m.send(to, "Pembayaran diterima", body)
}
