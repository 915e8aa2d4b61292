package catalog

import (
	"context"
	"sort"
	"strings"

	"github.com/ramiyazhr/kampusskill-app2/internal/models"
	"github.com/ramiyazhr/kampusskill-app2/internal/storage"
)

type SortOption string

const (
	SortNewest   SortOption = "newest"
	SortRating   SortOption = "rating"
	SortPriceAsc SortOption = "price_asc"
)

// SortOptions: label dropdown urutan, sesuai urutan tampil.
func SortOptions() map[SortOption]string {
	return map[SortOption]string{
		SortNewest:   "Terbaru",
		SortRating:   "Rating Tertinggi",
		SortPriceAsc: "Harga Terendah",
	}
}

type Query struct {
	Search   string          // substring di judul/deskripsi, case-insensitive
	Category models.Category // kosong = semua kategori
	Sort     SortOption      // default: newest
}

// Service: layer baca untuk browse publik, profil, dan antrean admin.
type Service struct {
	data *storage.Dataset
}

func NewService(data *storage.Dataset) *Service {
	return &Service{data: data}
}

func (s *Service) Categories() []models.Category {
	return models.Categories
}

// Browse: set publik = listing active yang punya foto utama.
func (s *Service) Browse(ctx context.Context, q Query) ([]models.Service, error) {
	services, err := s.data.Services(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.Service, 0, len(services))
	term := strings.ToLower(q.Search)
	for _, svc := range services {
		if svc.Status != models.StatusActive || svc.Photo == "" {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(svc.Title), term) &&
			!strings.Contains(strings.ToLower(svc.Description), term) {
			continue
		}
		if q.Category != "" && svc.Category != q.Category {
			continue
		}
		result = append(result, svc)
	}

	switch q.Sort {
	case SortRating:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].AverageRating() > result[j].AverageRating()
		})
	case SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	default: // newest
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		})
	}
	return result, nil
}

// ForProvider: listing milik provider yang belum dihapus (tampilan profil).
// Listing flagged tetap terlihat oleh pemiliknya.
func (s *Service) ForProvider(ctx context.Context, providerID string) ([]models.Service, error) {
	services, err := s.data.Services(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]models.Service, 0)
	for _, svc := range services {
		if svc.ProviderID == providerID && svc.Status != models.StatusDeleted {
			result = append(result, svc)
		}
	}
	return result, nil
}

// Flagged: antrean review admin.
func (s *Service) Flagged(ctx context.Context) ([]models.Service, error) {
	services, err := s.data.Services(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]models.Service, 0)
	for _, svc := range services {
		if svc.Status == models.StatusFlagged {
			result = append(result, svc)
		}
	}
	return result, nil
}
