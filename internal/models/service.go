package models

import (
	"errors"
	"time"
)

type Category string

const (
	CategoryPrint        Category = "Print"
	CategoryDesign       Category = "Desain"
	CategoryVideoEditing Category = "Edit Video"
	CategoryTutoring     Category = "Les Privat"
	CategoryPhotography  Category = "Fotografi"
	CategoryIT           Category = "IT"
	CategoryOther        Category = "Lainnya"
)

// Categories is the fixed list shown in filter dropdowns.
var Categories = []Category{
	CategoryPrint,
	CategoryDesign,
	CategoryVideoEditing,
	CategoryTutoring,
	CategoryPhotography,
	CategoryIT,
	CategoryOther,
}

func ValidCategory(c Category) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

type Status string

const (
	StatusActive  Status = "active"
	StatusFlagged Status = "flagged"
	StatusDeleted Status = "deleted"
)

const (
	// MaxReportsBeforeFlag: jumlah laporan sebelum jasa otomatis ditandai.
	MaxReportsBeforeFlag = 3
	// MaxPostsPerDay: batas posting jasa per provider per hari.
	MaxPostsPerDay = 5
	// MaxGalleryImages: foto tambahan di luar foto utama.
	MaxGalleryImages = 4
)

type Rating struct {
	UserID  string    `json:"userId"`
	Rating  int       `json:"rating"` // 1-5
	Comment string    `json:"comment"`
	Date    time.Time `json:"date"`
}

type Service struct {
	ID           string   `json:"id"`
	ProviderID   string   `json:"providerId"`
	ProviderName string   `json:"providerName"` // snapshot nama provider saat dibuat
	Title        string   `json:"title"`
	Category     Category `json:"category"`
	Description  string   `json:"description"`
	Price        int64    `json:"price"` // rupiah
	Contact      string   `json:"contact"`

	Photo    string   `json:"photo,omitempty"`
	Gallery  []string `json:"gallery,omitempty"`
	GmapsURL string   `json:"gmapsUrl,omitempty"`

	Ratings []Rating `json:"ratings"`
	Reports []string `json:"reports"` // user IDs pelapor, unik

	CreatedAt time.Time `json:"createdAt"`
	Status    Status    `json:"status"`
}

// ErrDeletedTerminal: jasa yang sudah dihapus tidak bisa pindah status lagi.
var ErrDeletedTerminal = errors.New("jasa yang sudah dihapus tidak dapat diubah statusnya")

// Flag marks the listing for admin review. Deleted stays deleted.
func (s *Service) Flag() {
	if s.Status == StatusDeleted {
		return
	}
	s.Status = StatusFlagged
}

// Approve clears the report set and reactivates the listing.
func (s *Service) Approve() error {
	if s.Status == StatusDeleted {
		return ErrDeletedTerminal
	}
	s.Reports = []string{}
	s.Status = StatusActive
	return nil
}

// MarkDeleted soft-deletes the listing. Terminal.
func (s *Service) MarkDeleted() {
	s.Status = StatusDeleted
}

func (s *Service) HasRatingFrom(userID string) bool {
	for _, r := range s.Ratings {
		if r.UserID == userID {
			return true
		}
	}
	return false
}

func (s *Service) ReportedBy(userID string) bool {
	for _, id := range s.Reports {
		if id == userID {
			return true
		}
	}
	return false
}

// AverageRating returns 0 when the listing has no ratings yet.
func (s *Service) AverageRating() float64 {
	if len(s.Ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range s.Ratings {
		sum += r.Rating
	}
	return float64(sum) / float64(len(s.Ratings))
}
