package main

import (
	"time"

	"github.com/bkpsdm/portal-api/internal/config"
	"github.com/bkpsdm/portal-api/internal/constants"
	"github.com/bkpsdm/portal-api/internal/logger"
	"github.com/bkpsdm/portal-api/internal/models"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	now := time.Now()

	newsItems := []models.News{
		{
			Title:       "Sosialisasi Peraturan Kepegawaian Terbaru",
			Content:     "BKPSDM menyelenggarakan sosialisasi peraturan kepegawaian terbaru bagi seluruh perangkat daerah.",
			PublishDate: now.AddDate(0, 0, -7),
			Author:      "Humas BKPSDM",
			Category:    constants.NewsCategoryKepegawaian,
			Status:      true,
		},
		{
			Title:       "Pembukaan Seleksi Jabatan Pimpinan Tinggi",
			Content:     "Seleksi terbuka jabatan pimpinan tinggi pratama resmi dibuka untuk ASN yang memenuhi syarat.",
			PublishDate: now.AddDate(0, 0, -3),
			Author:      "Bidang Mutasi",
			Category:    constants.NewsCategoryPengumuman,
			Status:      true,
		},
		{
			Title:       "Pelatihan Kepemimpinan Administrator Angkatan II",
			Content:     "Pelatihan kepemimpinan administrator angkatan II diikuti 40 peserta dari berbagai perangkat daerah.",
			PublishDate: now.AddDate(0, 0, -1),
			Author:      "Bidang Pengembangan",
			Category:    constants.NewsCategoryPengembangan,
			Status:      false,
		},
	}
	for _, item := range newsItems {
		var existing models.News
		if err := models.DB.Where("title = ?", item.Title).First(&existing).Error; err != nil {
			if err := models.DB.Create(&item).Error; err != nil {
				stdLog.Printf("Failed to create news %q: %v", item.Title, err)
			} else {
				stdLog.Printf("Created news: %s", item.Title)
			}
		} else {
			stdLog.Printf("News already exists: %s", item.Title)
		}
	}

	announcements := []models.Announcement{
		{
			Title:       "Jadwal Ujian Dinas Tahun Ini",
			Description: "Ujian dinas tingkat I dan II dilaksanakan bulan depan. Peserta wajib membawa surat tugas.",
			PublishDate: now.AddDate(0, 0, -2),
			Status:      true,
		},
		{
			Title:       "Pemutakhiran Data ASN",
			Description: "Seluruh ASN diwajibkan memutakhirkan data kepegawaian melalui aplikasi milik instansi.",
			PublishDate: now.AddDate(0, 0, -10),
			Status:      true,
		},
	}
	for _, item := range announcements {
		var existing models.Announcement
		if err := models.DB.Where("title = ?", item.Title).First(&existing).Error; err != nil {
			if err := models.DB.Create(&item).Error; err != nil {
				stdLog.Printf("Failed to create announcement %q: %v", item.Title, err)
			} else {
				stdLog.Printf("Created announcement: %s", item.Title)
			}
		} else {
			stdLog.Printf("Announcement already exists: %s", item.Title)
		}
	}

	downloads := []models.Download{
		{
			DocumentName: "Formulir Usul Kenaikan Pangkat",
			Publisher:    "Bidang Mutasi",
			Category:     constants.DownloadCategoryFormulir,
			FilePath:     "/uploads/dokumen/formulir-kenaikan-pangkat.pdf",
			UploadDate:   now.AddDate(0, 0, -14),
			Description:  "Formulir usul kenaikan pangkat periode April dan Oktober.",
		},
		{
			DocumentName: "Panduan Pengisian SKP",
			Publisher:    "Bidang Kinerja",
			Category:     constants.DownloadCategoryPanduan,
			FilePath:     "/uploads/dokumen/panduan-skp.pdf",
			UploadDate:   now.AddDate(0, 0, -30),
			Description:  "Panduan teknis pengisian sasaran kinerja pegawai.",
		},
	}
	for _, item := range downloads {
		var existing models.Download
		if err := models.DB.Where("document_name = ?", item.DocumentName).First(&existing).Error; err != nil {
			if err := models.DB.Create(&item).Error; err != nil {
				stdLog.Printf("Failed to create download %q: %v", item.DocumentName, err)
			} else {
				stdLog.Printf("Created download: %s", item.DocumentName)
			}
		} else {
			stdLog.Printf("Download already exists: %s", item.DocumentName)
		}
	}

	events := []models.Event{
		{
			EventName:   "Rapat Koordinasi Kepegawaian",
			StartDate:   now.AddDate(0, 0, 7),
			EndDate:     now.AddDate(0, 0, 7),
			Time:        "09.00 - 12.00 WIB",
			Location:    "Aula BKPSDM",
			Description: "Rapat koordinasi pengelola kepegawaian seluruh perangkat daerah.",
			Organizer:   "Sekretariat BKPSDM",
		},
		{
			EventName:   "Bimbingan Teknis Aplikasi Kepegawaian",
			StartDate:   now.AddDate(0, 0, 14),
			EndDate:     now.AddDate(0, 0, 15),
			Time:        "08.00 - 16.00 WIB",
			Location:    "Ruang Pelatihan Lantai 2",
			Description: "Bimbingan teknis penggunaan aplikasi layanan kepegawaian.",
			Organizer:   "Bidang Pengembangan",
		},
	}
	for _, item := range events {
		var existing models.Event
		if err := models.DB.Where("event_name = ?", item.EventName).First(&existing).Error; err != nil {
			if err := models.DB.Create(&item).Error; err != nil {
				stdLog.Printf("Failed to create event %q: %v", item.EventName, err)
			} else {
				stdLog.Printf("Created event: %s", item.EventName)
			}
		} else {
			stdLog.Printf("Event already exists: %s", item.EventName)
		}
	}

	staticContents := []models.StaticContent{
		{
			Key:     constants.StaticContentVisiMisi,
			Title:   "Visi dan Misi",
			Content: "Terwujudnya aparatur sipil negara yang profesional dan berintegritas.",
		},
		{
			Key:     constants.StaticContentStrukturOrganisasi,
			Title:   "Struktur Organisasi",
			Content: "Struktur organisasi badan kepegawaian dan pengembangan sumber daya manusia.",
		},
	}
	for _, item := range staticContents {
		var existing models.StaticContent
		if err := models.DB.Where("key = ?", item.Key).First(&existing).Error; err != nil {
			if err := models.DB.Create(&item).Error; err != nil {
				stdLog.Printf("Failed to create static content %q: %v", item.Key, err)
			} else {
				stdLog.Printf("Created static content: %s", item.Key)
			}
		} else {
			stdLog.Printf("Static content already exists: %s", item.Key)
		}
	}

	websiteConfigs := []models.WebsiteConfig{
		{Key: constants.ConfigKeyHeaderLogo, Value: "/uploads/logo/header.png"},
		{Key: constants.ConfigKeyFooterLogo, Value: "/uploads/logo/footer.png"},
		{Key: constants.ConfigKeyFooterContent, Value: "© BKPSDM. Seluruh hak cipta dilindungi."},
	}
	for _, item := range websiteConfigs {
		var existing models.WebsiteConfig
		if err := models.DB.Where("key = ?", item.Key).First(&existing).Error; err != nil {
			if err := models.DB.Create(&item).Error; err != nil {
				stdLog.Printf("Failed to create website config %q: %v", item.Key, err)
			} else {
				stdLog.Printf("Created website config: %s", item.Key)
			}
		} else {
			stdLog.Printf("Website config already exists: %s", item.Key)
		}
	}

	if err := models.InitDefaultAdmin(cfg.Admin.Username, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		stdLog.Printf("Failed to bootstrap default admin: %v", err)
	}

	stdLog.Println("Seeding finished")
}
