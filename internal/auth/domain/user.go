package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// DefaultAvatar is used until a user uploads a picture or signs in with a
// provider profile photo.
const DefaultAvatar = "https://cdn.pixabay.com/photo/2015/10/05/22/37/blank-profile-picture-973460_1280.png"

// User is the stored credential record. PasswordHash never leaves the
// server; responses use the Profile projection instead.
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	Username     string        `bson:"username"`
	Email        string        `bson:"email"`
	PasswordHash string        `bson:"password"`
	Avatar       string        `bson:"avatar"`
	CreatedAt    time.Time     `bson:"created_at"`
	UpdatedAt    time.Time     `bson:"updated_at"`
}

// Profile is the client-facing view of a user. It is a separate type, not
// a field stripped at serialization time, so a hash can never leak through
// a forgotten tag.
type Profile struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Profile projects the record into its client-facing view.
func (u *User) Profile() *Profile {
	return &Profile{
		ID:        u.ID.Hex(),
		Username:  u.Username,
		Email:     u.Email,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
