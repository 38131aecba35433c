package admin

import (
	"fmt"
	"strings"

	"golang.org/x/net/context"
	"lendsqr.dev/admin-api-gateway/app/utils/idgen"
)

type AdminService struct {
	accountRepo AccountRepository
}

func NewService(accountRepo AccountRepository) *AdminService {
	return &AdminService{
		accountRepo: accountRepo,
	}
}

func (s *AdminService) RegisterAccount(ctx context.Context, account *Account) (*Account, error) {
	publicId, err := s.generatePublicID()
	if err != nil {
		return nil, err
	}
	account.PublicID = publicId
	account.Email = strings.ToLower(strings.TrimSpace(account.Email))
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *AdminService) UpdateAccount(ctx context.Context, account *Account) (*Account, error) {
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *AdminService) FindByEmail(ctx context.Context, email string) (*Account, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	accounts, err := s.accountRepo.FindByFilter(ctx, AccountFilter{
		Email: &normalized,
	})
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, nil
	}
	if len(accounts) != 1 {
		return nil, fmt.Errorf("invalid email")
	}
	return accounts[0], nil
}

func (s *AdminService) FindByPublicID(ctx context.Context, publicID string) (*Account, error) {
	return s.accountRepo.FindFirst(ctx, AccountFilter{
		PublicID: &publicID,
	})
}

func (s *AdminService) generatePublicID() (string, error) {
	return idgen.GenerateSecureID("adm", 24)
}
