package domain

// User is an entry of the users collection. Sign-in is handled elsewhere;
// this is only the stored shape.
type User struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName,omitempty"`
}
