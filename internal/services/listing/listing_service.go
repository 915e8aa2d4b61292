package listing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ramiyazhr/kampusskill-app2/internal/apperr"
	"github.com/ramiyazhr/kampusskill-app2/internal/models"
	"github.com/ramiyazhr/kampusskill-app2/internal/notify"
	"github.com/ramiyazhr/kampusskill-app2/internal/storage"
)

var (
	ErrQuotaExceeded   = apperr.NewConflict(fmt.Sprintf("Batas %d posting jasa per hari tercapai.", models.MaxPostsPerDay))
	ErrSelfRating      = apperr.NewConflict("Anda tidak dapat memberi rating pada jasa sendiri.")
	ErrAlreadyRated    = apperr.NewConflict("Anda sudah pernah memberi rating pada jasa ini.")
	ErrSelfReport      = apperr.NewConflict("Anda tidak dapat melaporkan jasa sendiri.")
	ErrAlreadyReported = apperr.NewConflict("Anda sudah pernah melaporkan jasa ini.")
	ErrAdminOnly       = apperr.NewConflict("Hanya admin yang dapat melakukan aksi ini.")
)

// Input: field listing yang bisa diisi/diedit user. Field lain
// (id, provider, ratings, reports, createdAt, status) milik repository.
type Input struct {
	Title       string
	Category    models.Category
	Description string
	Price       int64
	Contact     string
	Photo       string
	Gallery     []string
	GmapsURL    string
}

type Notifier interface {
	Push(kind notify.Kind, text string) notify.Message
}

// Service: repository listing. Setiap mutasi mengambil snapshot koleksi
// penuh, transform, lalu persist lewat Dataset.
type Service struct {
	data *storage.Dataset
	log  *zap.Logger

	// Notifier menerima pesan UI (opsional). Now bisa di-pin oleh test
	// untuk cek batas hari kuota.
	Notifier Notifier
	Now      func() time.Time
}

func NewService(data *storage.Dataset, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{data: data, log: log, Now: time.Now}
}

func validateInput(in Input) error {
	fieldErrs := apperr.FieldErrors{}
	if in.Title == "" {
		fieldErrs.Add("title", "Judul wajib diisi")
	}
	if !models.ValidCategory(in.Category) {
		fieldErrs.Add("category", "Kategori tidak dikenal")
	}
	if in.Description == "" {
		fieldErrs.Add("description", "Deskripsi wajib diisi")
	}
	if in.Price < 0 {
		fieldErrs.Add("price", "Harga tidak boleh negatif")
	}
	if in.Contact == "" {
		fieldErrs.Add("contact", "Kontak wajib diisi")
	}
	if len(in.Gallery) > models.MaxGalleryImages {
		fieldErrs.Add("gallery", fmt.Sprintf("Maksimal %d foto galeri di luar foto utama", models.MaxGalleryImages))
	}
	if len(fieldErrs) > 0 {
		return apperr.NewValidation(fieldErrs)
	}
	return nil
}

// Add membuat listing baru milik owner. Kuota harian dihitung dari
// createdAt yang jatuh di hari kalender yang sama dengan sekarang.
func (s *Service) Add(ctx context.Context, in Input, owner models.User) (models.Service, error) {
	if err := validateInput(in); err != nil {
		return models.Service{}, err
	}

	now := s.Now()
	created := models.Service{
		ID:           "svc_" + uuid.NewString(),
		ProviderID:   owner.ID,
		ProviderName: owner.Name,
		Title:        in.Title,
		Category:     in.Category,
		Description:  in.Description,
		Price:        in.Price,
		Contact:      in.Contact,
		Photo:        in.Photo,
		Gallery:      in.Gallery,
		GmapsURL:     in.GmapsURL,
		Ratings:      []models.Rating{},
		Reports:      []string{},
		CreatedAt:    now,
		Status:       models.StatusActive,
	}

	err := s.data.MutateServices(ctx, func(services []models.Service) ([]models.Service, error) {
		count := 0
		for _, svc := range services {
			if svc.ProviderID == owner.ID && sameDay(svc.CreatedAt, now) {
				count++
			}
		}
		if count >= models.MaxPostsPerDay {
			return nil, ErrQuotaExceeded
		}
		return append(services, created), nil
	})
	if err != nil {
		return models.Service{}, err
	}

	s.log.Info("listing dibuat",
		zap.String("id", created.ID),
		zap.String("provider", owner.ID),
		zap.String("category", string(created.Category)))
	return created, nil
}

// Get returns one non-deleted listing by id.
func (s *Service) Get(ctx context.Context, id string) (models.Service, error) {
	services, err := s.data.Services(ctx)
	if err != nil {
		return models.Service{}, err
	}
	for _, svc := range services {
		if svc.ID == id && svc.Status != models.StatusDeleted {
			return svc, nil
		}
	}
	return models.Service{}, apperr.ErrNotFound
}

// Update replaces the editable fields. Listing yang sudah deleted
// dianggap tidak ada. Kepemilikan dicek pemanggil, bukan repository.
func (s *Service) Update(ctx context.Context, id string, in Input) (models.Service, error) {
	if err := validateInput(in); err != nil {
		return models.Service{}, err
	}

	var updated models.Service
	err := s.data.MutateServices(ctx, func(services []models.Service) ([]models.Service, error) {
		i, err := findListing(services, id)
		if err != nil {
			return nil, err
		}
		svc := services[i]
		svc.Title = in.Title
		svc.Category = in.Category
		svc.Description = in.Description
		svc.Price = in.Price
		svc.Contact = in.Contact
		svc.Photo = in.Photo
		svc.Gallery = in.Gallery
		svc.GmapsURL = in.GmapsURL
		services[i] = svc
		updated = svc
		return services, nil
	})
	if err != nil {
		return models.Service{}, err
	}
	return updated, nil
}

// Delete: soft-delete. Baris tetap tersimpan sebagai audit trail.
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.data.MutateServices(ctx, func(services []models.Service) ([]models.Service, error) {
		i, err := findListing(services, id)
		if err != nil {
			return nil, err
		}
		services[i].MarkDeleted()
		return services, nil
	})
	if err != nil {
		return err
	}
	s.push(notify.KindInfo, "Jasa berhasil dihapus.")
	return nil
}

// AddRating menolak rating untuk jasa sendiri dan rating ganda.
func (s *Service) AddRating(ctx context.Context, id string, r models.Rating) error {
	if r.Rating < 1 || r.Rating > 5 {
		fieldErrs := apperr.FieldErrors{}
		fieldErrs.Add("rating", "Rating harus 1 sampai 5")
		return apperr.NewValidation(fieldErrs)
	}
	if r.Date.IsZero() {
		r.Date = s.Now()
	}

	return s.data.MutateServices(ctx, func(services []models.Service) ([]models.Service, error) {
		i, err := findListing(services, id)
		if err != nil {
			return nil, err
		}
		svc := services[i]
		if svc.ProviderID == r.UserID {
			return nil, ErrSelfRating
		}
		if svc.HasRatingFrom(r.UserID) {
			return nil, ErrAlreadyRated
		}
		svc.Ratings = append(svc.Ratings, r)
		services[i] = svc
		return services, nil
	})
}

// Report mencatat pelapor unik; di ambang laporan listing pindah ke
// flagged (kecuali sudah deleted).
func (s *Service) Report(ctx context.Context, id, reporterID string) error {
	var flaggedTitle string
	err := s.data.MutateServices(ctx, func(services []models.Service) ([]models.Service, error) {
		i, err := findListing(services, id)
		if err != nil {
			return nil, err
		}
		svc := services[i]
		if svc.ProviderID == reporterID {
			return nil, ErrSelfReport
		}
		if svc.ReportedBy(reporterID) {
			return nil, ErrAlreadyReported
		}
		svc.Reports = append(svc.Reports, reporterID)
		if len(svc.Reports) >= models.MaxReportsBeforeFlag {
			svc.Flag()
			if svc.Status == models.StatusFlagged {
				flaggedTitle = svc.Title
			}
		}
		services[i] = svc
		return services, nil
	})
	if err != nil {
		return err
	}

	if flaggedTitle != "" {
		s.log.Info("listing ditandai untuk review admin", zap.String("id", id))
		s.push(notify.KindInfo, fmt.Sprintf("Jasa %q telah ditandai untuk ditinjau admin.", flaggedTitle))
	}
	return nil
}

// Approve: khusus admin. Reset laporan, status kembali active.
// Deleted bersifat terminal dan ditolak.
func (s *Service) Approve(ctx context.Context, id string, caller models.User) error {
	if !caller.IsAdmin() {
		return ErrAdminOnly
	}

	err := s.data.MutateServices(ctx, func(services []models.Service) ([]models.Service, error) {
		for i := range services {
			if services[i].ID != id {
				continue
			}
			if err := services[i].Approve(); err != nil {
				return nil, err
			}
			return services, nil
		}
		return nil, apperr.ErrNotFound
	})
	if err != nil {
		return err
	}
	s.push(notify.KindSuccess, "Jasa berhasil disetujui kembali.")
	return nil
}

// TodaysPostCount: berapa listing yang provider buat hari ini.
func (s *Service) TodaysPostCount(ctx context.Context, providerID string) (int, error) {
	services, err := s.data.Services(ctx)
	if err != nil {
		return 0, err
	}
	now := s.Now()
	count := 0
	for _, svc := range services {
		if svc.ProviderID == providerID && sameDay(svc.CreatedAt, now) {
			count++
		}
	}
	return count, nil
}

// findListing ignores deleted rows: untuk operasi user biasa, listing
// yang sudah dihapus sama dengan tidak ada.
func findListing(services []models.Service, id string) (int, error) {
	for i := range services {
		if services[i].ID == id && services[i].Status != models.StatusDeleted {
			return i, nil
		}
	}
	return 0, apperr.ErrNotFound
}

func sameDay(a, b time.Time) bool {
	a, b = a.Local(), b.Local()
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func (s *Service) push(kind notify.Kind, text string) {
	if s.Notifier != nil {
		s.Notifier.Push(kind, text)
	}
}
