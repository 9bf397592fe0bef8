package contextkeys

type contextKey string

// DBContextKey stores the request's *gorm.DB (pool or transaction).
const DBContextKey = contextKey("db")

// Gin context keys set by the auth middleware.
const (
	UserIDKey = "userID"
	RoleKey   = "role"
	EmailKey  = "email"
)
