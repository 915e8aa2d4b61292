package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/ramiyazhr/kampusskill-app2/internal/storage"
)

// Service: daftar favorit per instalasi (bukan per user), disimpan di
// key sendiri terpisah dari koleksi users/services.
type Service struct {
	kv storage.KV
	mu sync.Mutex
}

func NewService(kv storage.KV) *Service {
	return &Service{kv: kv}
}

// List returns the favorite listing ids. Blob yang tidak bisa diparse
// diperlakukan sebagai kosong, kebijakan recovery yang sama dengan Dataset.
func (s *Service) List(ctx context.Context) ([]string, error) {
	raw, err := s.kv.Get(ctx, storage.KeyFavorites)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return []string{}, nil
	}
	return ids, nil
}

// Toggle menambah atau menghapus id dari daftar, lalu persist.
func (s *Service) Toggle(ctx context.Context, serviceID string) (favorited bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.List(ctx)
	if err != nil {
		return false, err
	}

	next := make([]string, 0, len(ids)+1)
	found := false
	for _, id := range ids {
		if id == serviceID {
			found = true
			continue
		}
		next = append(next, id)
	}
	if !found {
		next = append(next, serviceID)
	}

	raw, err := json.Marshal(next)
	if err != nil {
		return false, err
	}
	if err := s.kv.Set(ctx, storage.KeyFavorites, raw); err != nil {
		return false, err
	}
	return !found, nil
}

func (s *Service) IsFavorite(ctx context.Context, serviceID string) (bool, error) {
	ids, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == serviceID {
			return true, nil
		}
	}
	return false, nil
}
