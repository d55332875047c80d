package models

// UserRecord is a user as persisted in users.json.
type UserRecord struct {
	ID             string  `json:"id"`             // Time-derived identifier, immutable
	Username       string  `json:"username"`       // Unique username
	Email          string  `json:"email"`          // Unique email
	Password       string  `json:"password"`       // Password digest
	ProfilePicture *string `json:"profilePicture"` // Public path of the uploaded picture, null if none
	CreatedAt      string  `json:"createdAt"`      // ISO-8601 creation timestamp
}

// User is the public view of a user record, without the password digest.
// swagger:model User
type User struct {
	ID             string  `json:"id"`
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	ProfilePicture *string `json:"profilePicture"`
	CreatedAt      string  `json:"createdAt"`
}

// UserWithStatus is a public user annotated with presence.
// swagger:model UserWithStatus
type UserWithStatus struct {
	User
	IsOnline bool `json:"isOnline"`
}

// Public strips the password digest from the record.
func (u UserRecord) Public() User {
	return User{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		ProfilePicture: u.ProfilePicture,
		CreatedAt:      u.CreatedAt,
	}
}
