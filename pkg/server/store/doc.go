// Package store provides storage abstractions for the Vantage server.
//
// This package defines interfaces for database operations, allowing the
// server endpoints to be decoupled from the specific database implementation.
// This enables easier testing with mocks and potential support for different
// storage backends.
//
// Every operation that touches tenant data takes an organization ID and is
// scoped to it. A row belonging to another organization behaves exactly like
// a row that does not exist.
//
// # Usage
//
//	projects := gorm.NewProjectsStore(db)
//	project, err := projects.GetProject(orgID, projectID)
//	if err != nil {
//	    if errors.Is(err, store.ErrProjectNotFound) {
//	        // Handle not found
//	    }
//	}
package store
