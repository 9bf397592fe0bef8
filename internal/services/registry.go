package services

// ServiceContainer holds every application service.
type ServiceContainer struct {
	NotificationService NotificationService
	UploadService       UploadService
	AuthService         AuthService
	UserService         UserService
	ArtistService       ArtistService
	ArtworkService      ArtworkService
	GalleryService      GalleryService
	MuseumService       MuseumService
	EventService        EventService
	MediaService        MediaService
	ShowcaseService     ShowcaseService
	EngagementService   EngagementService
	SearchService       SearchService
	AnalyticsService    AnalyticsService
}
