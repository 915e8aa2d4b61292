package export

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/ramiyazhr/kampusskill-app2/internal/apperr"
	"github.com/ramiyazhr/kampusskill-app2/internal/models"
	"github.com/ramiyazhr/kampusskill-app2/internal/storage"
)

// DefaultFileName mengikuti nama file unduhan di panel admin.
const DefaultFileName = "kampusskill_data.json"

var ErrAdminOnly = apperr.NewConflict("Hanya admin yang dapat mengekspor data.")

// Dump format: satu dokumen berisi kedua koleksi, read-only, bukan
// untuk di-import balik.
type Dump struct {
	Users    []models.User    `json:"users"`
	Services []models.Service `json:"services"`
}

type Service struct {
	data *storage.Dataset
}

func NewService(data *storage.Dataset) *Service {
	return &Service{data: data}
}

// Write writes the indented JSON dump. Khusus admin.
func (s *Service) Write(ctx context.Context, caller models.User, w io.Writer) error {
	if !caller.IsAdmin() {
		return ErrAdminOnly
	}

	users, err := s.data.Users(ctx)
	if err != nil {
		return err
	}
	services, err := s.data.Services(ctx)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Dump{Users: users, Services: services})
}

// WriteFile: varian yang menulis langsung ke file.
func (s *Service) WriteFile(ctx context.Context, caller models.User, path string) error {
	if path == "" {
		path = DefaultFileName
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := s.Write(ctx, caller, f); err != nil {
		return err
	}
	return f.Close()
}
