// Package repository provides the data access layer for Valoriza.
// This file contains the factory that creates repositories based on the
// configured database driver.
package repository

import (
	"context"
)

// Repositories holds all repository instances.
type Repositories struct {
	User       UserRepository
	Tag        TagRepository
	Compliment ComplimentRepository
}

// DatabaseHealth is the lifecycle surface of a database connection: opened
// at boot, health-checked while serving, closed at shutdown.
type DatabaseHealth interface {
	Ping(ctx context.Context) error
	Close() error
}
