package token

import (
	"errors"
	"time"

	"github.com/o1egl/paseto"
)

// Footer menandai token sesi yang diterbitkan aplikasi ini.
const Footer = "arunika-session"

// DefaultLifetime adalah masa berlaku token sesi.
const DefaultLifetime = 7 * 24 * time.Hour

// ErrInvalidToken dikembalikan untuk token rusak, salah kunci, atau kedaluwarsa.
var ErrInvalidToken = errors.New("invalid or expired token")

// Payload mendefinisikan isi token sesi.
type Payload struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Maker menerbitkan dan memverifikasi token sesi PASETO v2.
type Maker struct {
	paseto   *paseto.V2
	key      []byte
	lifetime time.Duration
}

// NewMaker membuat Maker dengan kunci simetris 32 byte.
func NewMaker(key []byte, lifetime time.Duration) (*Maker, error) {
	if len(key) != 32 {
		return nil, errors.New("token key must be 32 bytes")
	}
	if lifetime <= 0 {
		lifetime = DefaultLifetime
	}
	return &Maker{paseto: paseto.NewV2(), key: key, lifetime: lifetime}, nil
}

// Issue menerbitkan token sesi untuk pengguna.
func (m *Maker) Issue(userID, username, role string) (string, error) {
	now := time.Now()
	payload := Payload{
		UserID:    userID,
		Username:  username,
		Role:      role,
		IssuedAt:  now,
		ExpiresAt: now.Add(m.lifetime),
	}
	return m.paseto.Encrypt(m.key, payload, Footer)
}

// Verify membongkar token dan memeriksa masa berlakunya.
func (m *Maker) Verify(tokenStr string) (*Payload, error) {
	var payload Payload
	var footer string
	if err := m.paseto.Decrypt(tokenStr, m.key, &payload, &footer); err != nil {
		return nil, ErrInvalidToken
	}
	if footer != Footer || payload.UserID == "" {
		return nil, ErrInvalidToken
	}
	if time.Now().After(payload.ExpiresAt) {
		return nil, ErrInvalidToken
	}
	return &payload, nil
}

// Lifetime mengembalikan masa berlaku token yang dikonfigurasi.
func (m *Maker) Lifetime() time.Duration {
	return m.lifetime
}
