package storage

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/ramiyazhr/kampusskill-app2/internal/models"
)

// Dataset owns the users and services collections on top of a KV backend.
// Semua mutasi membaca koleksi penuh, transform, lalu tulis balik penuh —
// last-writer-wins, tanpa partial update.
type Dataset struct {
	kv  KV
	log *zap.Logger
	mu  sync.Mutex
}

func NewDataset(kv KV, log *zap.Logger) *Dataset {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dataset{kv: kv, log: log}
}

// Load seeds both collections on first run dan merekonsiliasi listing
// bawaan pada run berikutnya. Data korup tidak pernah fatal: reset ke seed.
func (d *Dataset) Load(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.loadUsers(ctx); err != nil {
		return d.resetToSeeds(ctx, err)
	}
	if err := d.loadServices(ctx); err != nil {
		return d.resetToSeeds(ctx, err)
	}
	return nil
}

func (d *Dataset) loadUsers(ctx context.Context) error {
	raw, err := d.kv.Get(ctx, KeyUsers)
	if errors.Is(err, ErrKeyNotFound) {
		d.log.Info("koleksi users belum ada, seeding data demo")
		return d.writeUsers(ctx, SeedUsers())
	}
	if err != nil {
		return err
	}
	var users []models.User
	return json.Unmarshal(raw, &users)
}

// loadServices: partisi listing tersimpan menjadi seed-origin (prefix
// "service_") dan buatan user, ganti seed-origin dengan seed terbaru dari
// kode, gabung, dedup per id (yang terakhir menang), lalu persist.
// Idempoten: dijalankan dua kali hasilnya sama.
func (d *Dataset) loadServices(ctx context.Context) error {
	raw, err := d.kv.Get(ctx, KeyServices)
	if errors.Is(err, ErrKeyNotFound) {
		d.log.Info("koleksi services belum ada, seeding data demo")
		return d.writeServices(ctx, SeedServices())
	}
	if err != nil {
		return err
	}

	var stored []models.Service
	if err := json.Unmarshal(raw, &stored); err != nil {
		return err
	}

	merged := append([]models.Service{}, SeedServices()...)
	for _, s := range stored {
		if !isSeedID(s.ID) {
			merged = append(merged, s)
		}
	}

	seen := make(map[string]int, len(merged))
	unique := make([]models.Service, 0, len(merged))
	for _, s := range merged {
		if i, ok := seen[s.ID]; ok {
			unique[i] = s
			continue
		}
		seen[s.ID] = len(unique)
		unique = append(unique, s)
	}

	return d.writeServices(ctx, unique)
}

func isSeedID(id string) bool {
	return len(id) >= len(SeedIDPrefix) && id[:len(SeedIDPrefix)] == SeedIDPrefix
}

func (d *Dataset) resetToSeeds(ctx context.Context, cause error) error {
	d.log.Warn("gagal memproses data tersimpan, reset ke default", zap.Error(cause))
	if err := d.writeUsers(ctx, SeedUsers()); err != nil {
		return err
	}
	return d.writeServices(ctx, SeedServices())
}

// Users returns the full user collection.
func (d *Dataset) Users(ctx context.Context) ([]models.User, error) {
	raw, err := d.kv.Get(ctx, KeyUsers)
	if err != nil {
		return nil, err
	}
	var users []models.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Services returns the full listing collection, termasuk yang deleted.
func (d *Dataset) Services(ctx context.Context) ([]models.Service, error) {
	raw, err := d.kv.Get(ctx, KeyServices)
	if err != nil {
		return nil, err
	}
	var services []models.Service
	if err := json.Unmarshal(raw, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// MutateUsers applies fn to a snapshot of the collection and persists the
// whole result. fn yang mengembalikan error membatalkan tanpa menulis.
func (d *Dataset) MutateUsers(ctx context.Context, fn func([]models.User) ([]models.User, error)) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	users, err := d.Users(ctx)
	if err != nil {
		return err
	}
	next, err := fn(users)
	if err != nil {
		return err
	}
	return d.writeUsers(ctx, next)
}

// MutateServices: pola yang sama untuk koleksi listing.
func (d *Dataset) MutateServices(ctx context.Context, fn func([]models.Service) ([]models.Service, error)) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	services, err := d.Services(ctx)
	if err != nil {
		return err
	}
	next, err := fn(services)
	if err != nil {
		return err
	}
	return d.writeServices(ctx, next)
}

func (d *Dataset) writeUsers(ctx context.Context, users []models.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return d.kv.Set(ctx, KeyUsers, raw)
}

func (d *Dataset) writeServices(ctx context.Context, services []models.Service) error {
	raw, err := json.Marshal(services)
	if err != nil {
		return err
	}
	return d.kv.Set(ctx, KeyServices, raw)
}
