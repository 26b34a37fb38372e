package constants

// News categories
const (
	NewsCategoryUmum         = "umum"
	NewsCategoryKepegawaian  = "kepegawaian"
	NewsCategoryPengembangan = "pengembangan"
	NewsCategoryPengumuman   = "pengumuman"
	NewsCategoryKegiatan     = "kegiatan"
)

// NewsCategories all accepted news categories
var NewsCategories = []string{
	NewsCategoryUmum,
	NewsCategoryKepegawaian,
	NewsCategoryPengembangan,
	NewsCategoryPengumuman,
	NewsCategoryKegiatan,
}

// Download categories
const (
	DownloadCategoryPeraturan = "peraturan"
	DownloadCategoryFormulir  = "formulir"
	DownloadCategoryPanduan   = "panduan"
	DownloadCategoryLaporan   = "laporan"
	DownloadCategoryLainnya   = "lainnya"
)

// DownloadCategories all accepted download categories
var DownloadCategories = []string{
	DownloadCategoryPeraturan,
	DownloadCategoryFormulir,
	DownloadCategoryPanduan,
	DownloadCategoryLaporan,
	DownloadCategoryLainnya,
}

// User roles
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// UserRoles all accepted user roles
var UserRoles = []string{RoleAdmin, RoleEditor}

// Well-known static content keys (informational; any key is accepted)
const (
	StaticContentVisiMisi           = "visi_misi"
	StaticContentStrukturOrganisasi = "struktur_organisasi"
)

// Well-known website config keys
const (
	ConfigKeyHeaderLogo    = "header_logo"
	ConfigKeyFooterLogo    = "footer_logo"
	ConfigKeyFooterContent = "footer_content"
)

// Default page sizes per listing
const (
	DefaultAnnouncementLimit = 10
	DefaultDownloadLimit     = 50
	DefaultPopularNewsLimit  = 5
	DefaultLatestNewsLimit   = 5
	DefaultUpcomingLimit     = 5
)
