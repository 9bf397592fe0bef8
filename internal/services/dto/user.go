package dto

import "banarts/internal/models"

// UpdateUserRequest applies only the fields that are present.
type UpdateUserRequest struct {
	Email     *string          `json:"email" validate:"omitempty,email"`
	Role      *models.UserRole `json:"role" validate:"omitempty,is-user-role"`
	IsActive  *bool            `json:"is_active"`
	FirstName *string          `json:"first_name" validate:"omitempty,max=100"`
	LastName  *string          `json:"last_name" validate:"omitempty,max=100"`
	Bio       *string          `json:"bio"`
	Location  *string          `json:"location"`
}

func (r *UpdateUserRequest) IsEmpty() bool {
	return r.Email == nil && r.Role == nil && r.IsActive == nil &&
		r.FirstName == nil && r.LastName == nil && r.Bio == nil && r.Location == nil
}

type FollowArtistRequest struct {
	ArtistID uint `json:"artist_id" form:"artist_id" validate:"required,gt=0"`
}

type SaveArtworkRequest struct {
	ArtworkID uint `json:"artwork_id" form:"artwork_id" validate:"required,gt=0"`
}

type FollowResponse struct {
	Followed bool   `json:"followed"`
	Message  string `json:"message"`
}

type SaveResponse struct {
	Saved   bool   `json:"saved"`
	Message string `json:"message"`
}

// SearchResponse groups search hits by section.
type SearchResponse struct {
	Artworks  []models.Artwork `json:"artworks"`
	Artists   []models.Artist  `json:"artists"`
	Museums   []models.Museum  `json:"museums"`
	Galleries []models.Gallery `json:"galleries"`
}

// CreateUserRequest is the admin form for adding an account.
type CreateUserRequest struct {
	Email     string          `json:"email" validate:"required,email"`
	Password  string          `json:"password" validate:"required"`
	Role      models.UserRole `json:"role" validate:"omitempty,is-user-role"`
	FirstName string          `json:"first_name" validate:"max=100"`
	LastName  string          `json:"last_name" validate:"max=100"`
}
