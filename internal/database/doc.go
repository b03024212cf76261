// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into entity-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, migrations, existence lookups
//	├── users/           # User CRUD operations
//	├── books/           # Book CRUD operations
//	├── reviews/         # Review CRUD operations
//	├── comments/        # Comment CRUD operations
//	├── likes/           # Like CRUD operations
//	└── tokens/          # Bearer token storage
//
// # Using Sub-packages
//
// Each sub-package provides a Repository with the same keyed-CRUD surface:
// FindAll, FindByID, FindWhere(field, value), Insert, Update and Delete.
//
//	db, err := database.NewDatabase("./elllibres.db")
//
//	booksRepo := books.NewRepository(db.DB)
//	book, err := booksRepo.FindByID(123)
//	mine, err := booksRepo.FindWhere("user_id", userID)
//
// Relationship lookups (books by user, reviews by book, comments in a
// review) are FindWhere equality queries executed by the engine, never
// in-process filtering over a full table scan.
//
// The main Database struct also exposes Exists/ExistsExcept, which back the
// validation component's exists and unique rules.
package database
