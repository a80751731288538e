package model

// User is a staff account. Only staff interact with the API; there is a
// single role, so no role column exists.
type User struct {
    ID           uint64 `json:"id"`        // users.id
    Email        string `json:"email"`     // users.email
    FullName     string `json:"full_name"` // users.full_name
    PasswordHash string `json:"-"`         // users.password_hash, never serialized
    CreatedAt    string `json:"created_at"`
}
