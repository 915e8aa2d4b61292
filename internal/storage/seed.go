package storage

import (
	"time"

	"github.com/ramiyazhr/kampusskill-app2/internal/models"
	"github.com/ramiyazhr/kampusskill-app2/internal/utils"
)

// SeedIDPrefix menandai listing bawaan. Listing buatan user memakai id
// "svc_<uuid>" sehingga partisi rekonsiliasi tidak pernah salah pilah.
const SeedIDPrefix = "service_"

// Hash dihitung sekali; bcrypt terlalu mahal untuk diulang tiap rekonsiliasi.
var (
	adminSeedHash   = mustHash("Admin123")
	studentSeedHash = mustHash("password123")
)

// SeedUsers returns the demo accounts. Password di-hash saat seed dibuat
// (admin: Admin123, lainnya: password123) supaya akun demo tetap bisa login.
func SeedUsers() []models.User {
	return []models.User{
		{
			ID:           "admin_1",
			Name:         "Admin KampusSkill",
			Email:        "admin@example.com",
			NIM:          "00000000",
			PasswordHash: adminSeedHash,
			IsVerified:   true,
			Role:         models.RoleAdmin,
		},
		{
			ID:           "user_1",
			Name:         "Budi Sanjaya",
			Email:        "budi@kampus.ac.id",
			NIM:          "1234567890",
			PasswordHash: studentSeedHash,
			IsVerified:   true,
			Role:         models.RoleStudent,
		},
		{
			ID:           "user_2",
			Name:         "Citra Lestari",
			Email:        "citra@kampus.ac.id",
			NIM:          "0987654321",
			PasswordHash: studentSeedHash,
			IsVerified:   true,
			Role:         models.RoleStudent,
		},
		{
			ID:           "user_3",
			Name:         "Doni Susanto",
			Email:        "doni@kampus.ac.id",
			NIM:          "1122334455",
			PasswordHash: studentSeedHash,
			IsVerified:   true,
			Role:         models.RoleStudent,
		},
	}
}

// SeedServices returns the demo listings. service_10 sengaja sudah
// dilaporkan 3 user supaya alur review admin langsung terlihat.
func SeedServices() []models.Service {
	now := time.Now()
	day := 24 * time.Hour

	return []models.Service{
		{
			ID:           "service_1",
			ProviderID:   "user_2",
			ProviderName: "Citra Lestari",
			Title:        "Jasa Desain Grafis & Branding UKM",
			Category:     models.CategoryDesign,
			Description:  "Menerima jasa desain logo, poster, banner, dan media sosial untuk keperluan acara kampus atau UKM. Pengerjaan cepat 1-3 hari. Gratis 3x revisi minor.",
			Price:        250000,
			Contact:      "WA: 081222333444",
			Photo:        "https://images.unsplash.com/photo-1633469415951-f725a6003933?q=80&w=800",
			Gallery: []string{
				"https://images.unsplash.com/photo-1626785774573-4b799315345d?q=80&w=600",
				"https://images.unsplash.com/photo-1572044162444-24c9562b74b0?q=80&w=600",
				"https://images.unsplash.com/photo-1558655146-364adaf1fcc9?q=80&w=600",
			},
			Ratings: []models.Rating{
				{UserID: "user_1", Rating: 5, Comment: "Desainnya modern dan komunikatif!", Date: now.Add(-2 * day)},
				{UserID: "user_3", Rating: 5, Comment: "Pengerjaan cepat dan hasilnya memuaskan.", Date: now.Add(-1 * day)},
			},
			Reports:   []string{},
			CreatedAt: now.Add(-10 * day),
			Status:    models.StatusActive,
		},
		{
			ID:           "service_2",
			ProviderID:   "user_1",
			ProviderName: "Budi Sanjaya",
			Title:        "Les Privat Kalkulus & Fisika Dasar",
			Category:     models.CategoryTutoring,
			Description:  "Bimbingan belajar privat untuk mata kuliah Kalkulus I, II, dan Fisika Dasar. Bisa online via Zoom atau offline di perpustakaan pusat. Durasi 90 menit/sesi.",
			Price:        85000,
			Contact:      "WA: 081122334455",
			Photo:        "https://images.unsplash.com/photo-1509062522246-3755977927d7?q=80&w=800",
			Gallery: []string{
				"https://images.unsplash.com/photo-1543269865-cbf427effbad?q=80&w=600",
				"https://images.unsplash.com/photo-1588724345769-42b7a484a56d?q=80&w=600",
			},
			Ratings: []models.Rating{
				{UserID: "user_2", Rating: 5, Comment: "Penjelasannya runut dan mudah dimengerti. Nilai auto A!", Date: now},
			},
			Reports:   []string{},
			CreatedAt: now.Add(-8 * day),
			Status:    models.StatusActive,
		},
		{
			ID:           "service_3",
			ProviderID:   "user_3",
			ProviderName: "Doni Susanto",
			Title:        "Jasa Foto & Video Event/Wisuda",
			Category:     models.CategoryPhotography,
			Description:  "Abadikan momen spesialmu (wisuda, seminar, acara UKM) dengan hasil foto dan video sinematik berkualitas. Paket sudah termasuk editing. Gear: Sony A7III.",
			Price:        750000,
			Contact:      "WA: 085566778899",
			Photo:        "https://images.unsplash.com/photo-1520340356584-f179b52f43c0?q=80&w=800",
			Gallery: []string{
				"https://images.unsplash.com/photo-1604542245265-7d3726a6e298?q=80&w=600",
			},
			Ratings: []models.Rating{
				{UserID: "user_1", Rating: 5, Comment: "Kameramennya handal, hasilnya keren banget!", Date: now.Add(-1 * day)},
			},
			Reports:   []string{},
			CreatedAt: now.Add(-7 * day),
			Status:    models.StatusActive,
		},
		{
			ID:           "service_4",
			ProviderID:   "user_1",
			ProviderName: "Budi Sanjaya",
			Title:        "Print, Jilid & Scan Cepat",
			Category:     models.CategoryPrint,
			Description:  "Cetak tugas, makalah, skripsi. Bisa jilid softcover/hardcover dan scan dokumen. Harga per lembar HVS A4 80gr. Buka sampai malam.",
			Price:        500,
			Contact:      "WA: 081122334455",
			Photo:        "https://images.unsplash.com/photo-1604356675563-762c681b49f2?q=80&w=800",
			Gallery: []string{
				"https://images.unsplash.com/photo-1544991185-5db73c641c20?q=80&w=600",
			},
			GmapsURL: "https://maps.app.goo.gl/uKq4bPzB5a9x8f7g9",
			Ratings: []models.Rating{
				{UserID: "user_2", Rating: 4, Comment: "Cepat dan murah, mantap.", Date: now},
			},
			Reports:   []string{},
			CreatedAt: now.Add(-6 * day),
			Status:    models.StatusActive,
		},
		{
			ID:           "service_5",
			ProviderID:   "user_3",
			ProviderName: "Doni Susanto",
			Title:        "Reparasi & Instal Ulang Laptop",
			Category:     models.CategoryIT,
			Description:  "Laptop lemot, kena virus, atau butuh instal ulang Windows/MacOS? Terima servis laptop berbagai merk dan instalasi software aplikasi standar.",
			Price:        150000,
			Contact:      "WA: 085566778899",
			Photo:        "https://images.unsplash.com/photo-1593642702821-c8da6771f0c6?q=80&w=800",
			Ratings: []models.Rating{
				{UserID: "user_1", Rating: 5, Comment: "Laptop jadi ngebut lagi, recommended!", Date: now.Add(-3 * day)},
			},
			Reports:   []string{},
			CreatedAt: now.Add(-5 * day),
			Status:    models.StatusActive,
		},
		{
			ID:           "service_6",
			ProviderID:   "user_2",
			ProviderName: "Citra Lestari",
			Title:        "Jasa Angkut Pindahan Kost",
			Category:     models.CategoryOther,
			Description:  "Punya banyak barang saat pindahan kost? Saya bantu angkut pakai motor. Area sekitar kampus saja ya. Maksimal 3-4 kardus ukuran sedang per angkut.",
			Price:        40000,
			Contact:      "WA: 081222333444",
			Photo:        "https://images.unsplash.com/photo-1566576721346-d4a3b4d30954?q=80&w=800",
			Ratings:      []models.Rating{},
			Reports:      []string{},
			CreatedAt:    now.Add(-4 * day),
			Status:       models.StatusActive,
		},
		{
			ID:           "service_7",
			ProviderID:   "user_1",
			ProviderName: "Budi Sanjaya",
			Title:        "Joki Coding (Python, Web, Java)",
			Category:     models.CategoryIT,
			Description:  "Stuck dengan tugas coding? Saya bantu kerjakan tugas Pemrograman Dasar (Python), Web (HTML, CSS, JS), atau Java. Harga tergantung tingkat kesulitan.",
			Price:        350000,
			Contact:      "WA: 081122334455",
			Photo:        "https://images.unsplash.com/photo-1550439062-609e1531270e?q=80&w=800",
			Ratings: []models.Rating{
				{UserID: "user_3", Rating: 5, Comment: "Sangat terbantu, source code rapi dan ada penjelasannya!", Date: now.Add(-2 * day)},
			},
			Reports:   []string{},
			CreatedAt: now.Add(-3 * day),
			Status:    models.StatusActive,
		},
		{
			ID:           "service_8",
			ProviderID:   "user_3",
			ProviderName: "Doni Susanto",
			Title:        "Jasa Edit Video Reels & TikTok",
			Category:     models.CategoryVideoEditing,
			Description:  "Editing video pendek untuk Instagram Reels atau TikTok. Bisa tambah teks, musik trending, dan transisi kekinian.",
			Price:        100000,
			Contact:      "WA: 085566778899",
			Photo:        "https://images.unsplash.com/photo-1611162617213-7d7a39e9b1d7?q=80&w=800",
			Ratings: []models.Rating{
				{UserID: "user_2", Rating: 5, Comment: "Videonya jadi FYP, mantap!", Date: now},
			},
			Reports:   []string{},
			CreatedAt: now.Add(-2 * day),
			Status:    models.StatusActive,
		},
		{
			ID:           "service_9",
			ProviderID:   "user_2",
			ProviderName: "Citra Lestari",
			Title:        "Jasa Laundry Kiloan Antar-Jemput",
			Category:     models.CategoryOther,
			Description:  "Laundry kiloan bersih wangi, paket sudah termasuk setrika. Gratis antar-jemput untuk area asrama dan sekitarnya. Tersedia paket kilat 1 hari.",
			Price:        8000,
			Contact:      "WA: 081222333444",
			Photo:        "https://images.unsplash.com/photo-1626806819282-2c1dc01a5e0c?q=80&w=800",
			GmapsURL:     "https://maps.app.goo.gl/uKq4bPzB5a9x8f7g9",
			Ratings: []models.Rating{
				{UserID: "user_1", Rating: 5, Comment: "Praktis banget ada antar-jemput.", Date: now.Add(-1 * day)},
			},
			Reports:   []string{},
			CreatedAt: now.Add(-1 * day),
			Status:    models.StatusActive,
		},
		{
			ID:           "service_10",
			ProviderID:   "user_3",
			ProviderName: "Doni Susanto",
			Title:        "Jasa Bermasalah (Untuk Demo)",
			Category:     models.CategoryIT,
			Description:  "Jasa ini sengaja dibuat untuk demo fitur report. Sudah dilaporkan oleh 3 user berbeda dan akan muncul di Panel Admin untuk ditinjau.",
			Price:        10000,
			Contact:      "WA: 085511223300",
			Photo:        "https://images.unsplash.com/photo-1555952494-0357e82ac7e2?q=80&w=800",
			Ratings: []models.Rating{
				{UserID: "user_1", Rating: 1, Comment: "Tidak direkomendasikan sama sekali.", Date: now},
			},
			Reports:   []string{"user_1", "user_2", "admin_1"},
			CreatedAt: now,
			Status:    models.StatusFlagged,
		},
	}
}

func mustHash(pw string) string {
	h, err := utils.HashPassword(pw)
	if err != nil {
		panic(err)
	}
	return h
}
