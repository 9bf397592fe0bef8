package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID                 uint       `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	Email              string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash       string     `gorm:"column:password" json:"-"`
	FirstName          string     `json:"first_name"`
	LastName           string     `json:"last_name"`
	ProfilePicture     string     `json:"profile_picture"`
	Role               UserRole   `gorm:"type:varchar(20);default:'user'" json:"role"`
	UserType           UserType   `gorm:"type:varchar(20);default:'visitor'" json:"user_type"`
	OAuthProvider      string     `gorm:"column:oauth_provider" json:"oauth_provider,omitempty"`
	OAuthID            string     `gorm:"column:oauth_id" json:"-"`
	OAuthToken         string     `gorm:"column:oauth_token" json:"-"`
	OAuthRefreshToken  string     `gorm:"column:oauth_refresh_token" json:"-"`
	OAuthTokenExpiry   *time.Time `gorm:"column:oauth_token_expiry" json:"-"`
	IsActive           bool       `gorm:"default:true" json:"is_active"`
	Bio                string     `json:"bio"`
	Location           string     `json:"location"`
	SecurityQuestion   string     `json:"security_question,omitempty"`
	SecurityAnswerHash string     `gorm:"column:security_answer" json:"-"`
	Timestamps
}

func (u *User) AfterFind(tx *gorm.DB) error {
	u.ProfilePicture = NormalizeImagePath(u.ProfilePicture)
	return nil
}

// IsOAuth reports whether the account was created through an external provider.
func (u *User) IsOAuth() bool {
	return u.OAuthProvider != ""
}

type UserSavedArtwork struct {
	ID        uint      `gorm:"column:save_id;primaryKey;autoIncrement" json:"save_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_artwork" json:"user_id"`
	ArtworkID uint      `gorm:"not null;uniqueIndex:idx_user_artwork" json:"artwork_id"`
	SavedAt   time.Time `gorm:"autoCreateTime" json:"saved_at"`
}

type UserFollowedArtist struct {
	ID         uint      `gorm:"column:follow_id;primaryKey;autoIncrement" json:"follow_id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_user_artist" json:"user_id"`
	ArtistID   uint      `gorm:"not null;uniqueIndex:idx_user_artist" json:"artist_id"`
	FollowedAt time.Time `gorm:"autoCreateTime" json:"followed_at"`
}
