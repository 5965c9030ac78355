package factory

import (
	"fmt"

	"notes-be/internal/repository/unitofwork"
	"notes-be/pkg/identity"
	"notes-be/pkg/identity/gotrue"
	"notes-be/pkg/identity/local"
)

func NewIdentityProvider(providerType, gotrueURL, gotrueKey string, uowFactory unitofwork.RepositoryFactory) (identity.Provider, error) {
	switch providerType {
	case "local", "":
		return local.NewProvider(uowFactory), nil
	case "gotrue":
		if gotrueURL == "" {
			return nil, fmt.Errorf("gotrue identity provider requires GOTRUE_URL")
		}
		return gotrue.NewProvider(gotrueURL, gotrueKey), nil
	default:
		return nil, fmt.Errorf("unsupported identity provider: %s", providerType)
	}
}
