package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"github.com/dylan-park/TradeBell/internal/domain"
	"github.com/dylan-park/TradeBell/internal/domain/entity"
	"github.com/dylan-park/TradeBell/pkg/errcodes"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary         //nolint:gochecknoglobals // skip
	validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip
)

// LoadAccounts reads the watched-accounts file, a JSON array of
// {"name": ..., "api_key": ...} objects.
func LoadAccounts(path string) ([]entity.Account, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read accounts file %q: %w", path, err)
	}

	var accounts []entity.Account
	if err := json.Unmarshal(content, &accounts); err != nil {
		return nil, fmt.Errorf("parse accounts file %q: %w", path, err)
	}

	if len(accounts) == 0 {
		return nil, fmt.Errorf("accounts file %q lists no accounts", path)
	}

	names := make(map[string]struct{}, len(accounts))

	for i, account := range accounts {
		if err := validate.Struct(account); err != nil {
			return nil, domain.WrapError(err, errcodes.InvalidAccountName, fmt.Sprintf("account %d", i))
		}

		if _, ok := names[account.Name]; ok {
			return nil, domain.NewError(errcodes.InvalidAccountName, fmt.Sprintf("duplicate account name %q", account.Name))
		}

		names[account.Name] = struct{}{}
	}

	return accounts, nil
}
