// File: handlers/bundle.go
package handlers

import (
	userRepo "estateconnect/database/repository/user"
)

// HandlerBundle aggregates the handlers and the repositories the route
// middleware needs, so route registration takes a single dependency.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	Catalog   *CatalogHandler
	Wizard    *WizardHandler
	Directory *DirectoryHandler
	Admin     *AdminHandler
	Feed      *FeedHandler
}
