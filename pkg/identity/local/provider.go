package local

import (
	"context"

	"notes-be/internal/repository/specification"
	"notes-be/internal/repository/unitofwork"
	"notes-be/pkg/identity"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Provider validates credentials against the users table with bcrypt.
// Useful for single-box deployments without an external auth service.
type Provider struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewProvider(uowFactory unitofwork.RepositoryFactory) *Provider {
	return &Provider{
		uowFactory: uowFactory,
	}
}

func (p *Provider) SignInWithPassword(ctx context.Context, email, password string) (uuid.UUID, error) {
	uow := p.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return uuid.Nil, err
	}
	if user == nil || user.PasswordHash == nil {
		return uuid.Nil, identity.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		return uuid.Nil, identity.ErrInvalidCredentials
	}

	return user.Id, nil
}
