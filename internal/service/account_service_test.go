package service_test

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/gas-delivery/internal/auth"
	"github.com/spec-kit/gas-delivery/internal/repository"
	"github.com/spec-kit/gas-delivery/internal/service"
	apperrors "github.com/spec-kit/gas-delivery/pkg/util"
)

func newAccountService() (*service.AccountService, repository.UserRepository) {
	users := repository.NewUserRepository()
	svc := service.NewAccountService(service.AccountDependencies{
		UserRepo: users,
		Verifier: auth.NewPlaintextVerifier(),
	})
	return svc, users
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	require.Error(t, err)
	return apperrors.ToDomainError(err).HTTPStatus
}

func TestRegisterClassifiesContact(t *testing.T) {
	svc, _ := newAccountService()
	ctx := context.Background()

	byEmail, _, err := svc.Register(ctx, "Alice", "a@x.com", "p1")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", byEmail.Email)
	assert.Empty(t, byEmail.Mobile)

	byMobile, _, err := svc.Register(ctx, "Bob", "5550100", "p2")
	require.NoError(t, err)
	assert.Equal(t, "5550100", byMobile.Mobile)
	assert.Empty(t, byMobile.Email)

	assert.NotEqual(t, byEmail.ID, byMobile.ID)
	assert.False(t, byEmail.IsAdmin)
}

func TestRegisterRequiresAllFields(t *testing.T) {
	svc, _ := newAccountService()
	ctx := context.Background()

	for _, tc := range []struct{ name, contact, password string }{
		{"", "a@x.com", "p1"},
		{"Alice", "", "p1"},
		{"Alice", "a@x.com", ""},
	} {
		_, _, err := svc.Register(ctx, tc.name, tc.contact, tc.password)
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	}
}

func TestRegisterDuplicateContact(t *testing.T) {
	svc, _ := newAccountService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Alice", "a@x.com", "p1")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "Impostor", "a@x.com", "other")
	assert.Equal(t, http.StatusConflict, statusOf(t, err))

	_, _, err = svc.Register(ctx, "Bob", "b@x.com", "p2")
	assert.NoError(t, err)
}

func TestRegisterConcurrentDuplicates(t *testing.T) {
	svc, _ := newAccountService()
	ctx := context.Background()

	const attempts = 16
	results := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := svc.Register(ctx, "Racer", "race@x.com", "p1")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	successes := 0
	for err := range results {
		if err == nil {
			successes++
		} else {
			assert.Equal(t, http.StatusConflict, apperrors.ToDomainError(err).HTTPStatus)
		}
	}
	assert.Equal(t, 1, successes)
}

func TestLoginExactMatch(t *testing.T) {
	svc, _ := newAccountService()
	ctx := context.Background()

	registered, _, err := svc.Register(ctx, "Alice", "a@x.com", "p1")
	require.NoError(t, err)

	user, _, err := svc.Login(ctx, "a@x.com", "p1")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.Equal(t, "Alice", user.Name)

	for _, tc := range []struct{ contact, password string }{
		{"a@x.com", "P1"},      // password is case-sensitive
		{"A@X.COM", "p1"},      // so is the contact
		{"a@x.com", "p1 "},     // no trimming
		{"other@x.com", "p1"},  // unknown contact
		{"a@x.com", "wrong"},   // wrong password
	} {
		_, _, err := svc.Login(ctx, tc.contact, tc.password)
		assert.Equal(t, http.StatusUnauthorized, statusOf(t, err), "contact=%q password=%q", tc.contact, tc.password)
	}
}

func TestLoginByMobile(t *testing.T) {
	svc, _ := newAccountService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Bob", "5550100", "p2")
	require.NoError(t, err)

	user, _, err := svc.Login(ctx, "5550100", "p2")
	require.NoError(t, err)
	assert.Equal(t, "Bob", user.Name)
}

func TestLoginIssuesTokenWhenConfigured(t *testing.T) {
	users := repository.NewUserRepository()
	tokens := auth.NewTokenManager("test-secret", 5)
	svc := service.NewAccountService(service.AccountDependencies{
		UserRepo: users,
		Verifier: auth.NewPlaintextVerifier(),
		Tokens:   tokens,
	})
	ctx := context.Background()

	registered, token, err := svc.Register(ctx, "Alice", "a@x.com", "p1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tokens.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, claims.UserID)
}

// Update overwrites all four mutable fields even when the caller supplies
// empty values; omitted fields null out. Full-replace, not merge.
func TestUpdateProfileOverwritesOmittedFields(t *testing.T) {
	svc, _ := newAccountService()
	ctx := context.Background()

	registered, _, err := svc.Register(ctx, "Alice", "a@x.com", "p1")
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, registered.ID, service.ProfileUpdateInput{
		Name: "Alice B",
		// Email, Address, ProfilePic deliberately omitted.
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice B", updated.Name)
	assert.Empty(t, updated.Email)
	assert.Empty(t, updated.Address)
	assert.Empty(t, updated.ProfilePic)

	// The password survives an overwrite untouched.
	fetched, err := svc.Profile(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "p1", fetched.Password)
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	svc, _ := newAccountService()

	_, err := svc.UpdateProfile(context.Background(), "missing", service.ProfileUpdateInput{Name: "X"})
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func TestBcryptVerifierLoginFlow(t *testing.T) {
	users := repository.NewUserRepository()
	svc := service.NewAccountService(service.AccountDependencies{
		UserRepo: users,
		Verifier: auth.NewBcryptVerifier(4),
	})
	ctx := context.Background()

	registered, _, err := svc.Register(ctx, "Alice", "a@x.com", "p1")
	require.NoError(t, err)
	assert.NotEqual(t, "p1", registered.Password)

	_, _, err = svc.Login(ctx, "a@x.com", "p1")
	assert.NoError(t, err)

	_, _, err = svc.Login(ctx, "a@x.com", "wrong")
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
}
