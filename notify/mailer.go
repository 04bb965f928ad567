package notify

import (
	"fmt"
	"log"
	"net/smtp"
)

// Mailer mengirim email notifikasi lewat SMTP.
// Jika host atau kredensial kosong, pengiriman dilewati tanpa error
// supaya lingkungan development tetap jalan tanpa SMTP.
type Mailer struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// NewMailer membuat Mailer dari konfigurasi SMTP.
func NewMailer(host, port, username, password, from string) *Mailer {
	return &Mailer{Host: host, Port: port, Username: username, Password: password, From: from}
}

// Enabled melaporkan apakah konfigurasi SMTP lengkap.
func (m *Mailer) Enabled() bool {
	return m.Host != "" && m.From != ""
}

// SendDownloadLink mengirim link download ke pelanggan setelah order
// dikonfirmasi. Gagal kirim hanya dicatat oleh pemanggil; status order
// tidak di-rollback.
func (m *Mailer) SendDownloadLink(to, orderNumber, link string) error {
	if !m.Enabled() {
		log.Printf("SMTP not configured, skipping download email for %s", orderNumber)
		return nil
	}

	subject := fmt.Sprintf("Order %s siap diunduh", orderNumber)
	body := fmt.Sprintf(
		"Terima kasih! Order %s sudah dikonfirmasi.\r\n\r\n"+
			"Link download: %s\r\n\r\n"+
			"Link berlaku selama 30 hari sejak email ini dikirim.\r\n",
		orderNumber, link,
	)
	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n%s",
		m.From, to, subject, body,
	))

	addr := m.Host + ":" + m.Port
	var auth smtp.Auth
	if m.Username != "" {
		auth = smtp.PlainAuth("", m.Username, m.Password, m.Host)
	}
	return smtp.SendMail(addr, auth, m.From, []string{to}, msg)
}
