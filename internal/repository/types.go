package repository

// NewsListFilter filter for news listings
type NewsListFilter struct {
	Category      string
	Status        *bool
	OnlyPublished bool
	Limit         int
	Offset        int
	OrderBy       string
}

// AnnouncementListFilter filter for announcement listings
type AnnouncementListFilter struct {
	OnlyActive bool
	Limit      int
	Offset     int
	OrderBy    string
}

// DownloadListFilter filter for download listings
type DownloadListFilter struct {
	Category string
	Limit    int
	Offset   int
}

// EventListFilter filter for event listings
type EventListFilter struct {
	UpcomingOnly bool
	Limit        int
	Offset       int
	OrderBy      string
}

// UserListFilter filter for user listings
type UserListFilter struct {
	Limit  int
	Offset int
}
