package auth

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/ramiyazhr/kampusskill-app2/internal/apperr"
	"github.com/ramiyazhr/kampusskill-app2/internal/models"
	"github.com/ramiyazhr/kampusskill-app2/internal/storage"
	"github.com/ramiyazhr/kampusskill-app2/internal/utils"
)

// SessionKey: entri di transient store yang menyimpan user yang sedang
// login. Tidak ada entri = logout.
const SessionKey = "loggedInUser"

// ErrInvalidCredentials sengaja satu pesan untuk semua kegagalan login
// supaya tidak bisa dipakai menebak akun mana yang terdaftar.
var ErrInvalidCredentials = apperr.NewConflict("Email/NIM atau password salah.")

type RegisterInput struct {
	Name     string
	Email    string
	NIM      string
	Password string
}

// Service memegang pointer session dan mirror-nya di transient store.
type Service struct {
	data    *storage.Dataset
	session storage.KV

	mu      sync.RWMutex
	current *models.User
}

func NewService(data *storage.Dataset, session storage.KV) *Service {
	return &Service{data: data, session: session}
}

// Login: identifier dicocokkan ke email ATAU nim, exact dan case-sensitive.
func (s *Service) Login(ctx context.Context, identifier, password string) (models.User, error) {
	users, err := s.data.Users(ctx)
	if err != nil {
		return models.User{}, err
	}

	for _, u := range users {
		if u.Email != identifier && u.NIM != identifier {
			continue
		}
		if !utils.CheckPassword(password, u.PasswordHash) {
			return models.User{}, ErrInvalidCredentials
		}

		s.mu.Lock()
		cp := u
		s.current = &cp
		s.mu.Unlock()

		raw, err := json.Marshal(u)
		if err != nil {
			return models.User{}, err
		}
		if err := s.session.Set(ctx, SessionKey, raw); err != nil {
			return models.User{}, err
		}
		return u, nil
	}
	return models.User{}, ErrInvalidCredentials
}

// Logout clears the session pointer and its transient entry.
func (s *Service) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	return s.session.Delete(ctx, SessionKey)
}

// Current returns the logged-in user, or false when logged out.
func (s *Service) Current() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return models.User{}, false
	}
	return *s.current, true
}

// Restore rehydrates the session pointer from the transient store.
func (s *Service) Restore(ctx context.Context) (models.User, bool, error) {
	raw, err := s.session.Get(ctx, SessionKey)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, err
	}
	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return models.User{}, false, err
	}
	s.mu.Lock()
	s.current = &u
	s.mu.Unlock()
	return u, true, nil
}

// Register membuat akun student baru. Berhasil register tidak otomatis login.
func (s *Service) Register(ctx context.Context, in RegisterInput) (models.User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	nim := strings.TrimSpace(in.NIM)
	password := strings.TrimSpace(in.Password)

	// --- Validasi basic
	fieldErrs := apperr.FieldErrors{}
	if name == "" {
		fieldErrs.Add("name", "Nama wajib diisi")
	}
	if email == "" {
		fieldErrs.Add("email", "Email wajib diisi")
	} else if !strings.Contains(email, "@") {
		fieldErrs.Add("email", "Format email tidak valid")
	}
	if nim == "" {
		fieldErrs.Add("nim", "NIM wajib diisi")
	} else if len(nim) < 8 || !allDigits(nim) {
		fieldErrs.Add("nim", "NIM minimal 8 digit angka")
	}
	if password == "" {
		fieldErrs.Add("password", "Password wajib diisi")
	} else if len(password) < 6 {
		fieldErrs.Add("password", "Password minimal 6 karakter")
	}
	if len(fieldErrs) > 0 {
		return models.User{}, apperr.NewValidation(fieldErrs)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	newUser := models.User{
		ID:           "user_" + uuid.NewString(),
		Name:         name,
		Email:        email,
		NIM:          nim,
		PasswordHash: hash,
		IsVerified:   true, // auto-verified di prototipe ini
		Role:         models.RoleStudent,
	}

	err = s.data.MutateUsers(ctx, func(users []models.User) ([]models.User, error) {
		for _, u := range users {
			if u.Email == email {
				return nil, apperr.NewConflict("Email sudah terdaftar.")
			}
			if u.NIM == nim {
				return nil, apperr.NewConflict("NIM sudah terdaftar.")
			}
		}
		return append(users, newUser), nil
	})
	if err != nil {
		return models.User{}, err
	}
	return newUser, nil
}

// Users exposes the collection for admin views and the export dump.
func (s *Service) Users(ctx context.Context) ([]models.User, error) {
	return s.data.Users(ctx)
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
