// File: models/directory.go
package models

// DirectoryUser is a record in the seed user directory service.
type DirectoryUser struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
