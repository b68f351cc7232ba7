package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	TokenRepository       *TokenRepository
	ProfileRepository     *ProfileRepository
	ApplicationRepository *ApplicationRepository
	JobRepository         *JobRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		TokenRepository:       NewTokenRepository(db),
		ProfileRepository:     NewProfileRepository(db),
		ApplicationRepository: NewApplicationRepository(db),
		JobRepository:         NewJobRepository(),
	}
}
