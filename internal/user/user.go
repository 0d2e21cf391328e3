package user

// User carries the minimum identity the storefront needs: checkout and the
// client area only ask "who is signed in". Profile management lives with the
// identity provider, not here.
type User struct {
	ID        int    `json:"userId"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	FullName  string `json:"fullName"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

func sanitizeUser(u User) User {
	u.Password = ""
	return u
}
