package model

// User is a verified account. Usernames are unique case-insensitively.
// A record is only written after the signup maze has been completed;
// it is immutable afterwards.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
}
