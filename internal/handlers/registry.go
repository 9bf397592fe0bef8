package handlers

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	UploadHandler       *UploadHandler
	NotificationHandler *NotificationHandler
	ArtistHandler       *ArtistHandler
	ArtworkHandler      *ArtworkHandler
	GalleryHandler      *GalleryHandler
	MuseumHandler       *MuseumHandler
	EventHandler        *EventHandler
	MediaHandler        *MediaHandler
	ShowcaseHandler     *ShowcaseHandler
	EngagementHandler   *EngagementHandler
	SearchHandler       *SearchHandler
	AnalyticsHandler    *AnalyticsHandler
	SystemHandler       *SystemHandler
}
