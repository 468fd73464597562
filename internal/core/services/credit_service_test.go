package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindscribe/journal_ai_app/internal/apperrors"
	"github.com/mindscribe/journal_ai_app/internal/core/domain"
	portsrepo "github.com/mindscribe/journal_ai_app/internal/core/ports/repositories"
	"github.com/mindscribe/journal_ai_app/internal/core/services"
)

// fakeUserRepo is an in-memory user store whose ConsumeCredit mirrors the
// atomic guarded decrement the real repository performs in SQL.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

var _ portsrepo.UserRepositoryFacade = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) SaveUser(ctx context.Context, user domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.users[user.UserID]; exists {
		return apperrors.ErrDuplicate
	}
	f.users[user.UserID] = &user
	return nil
}

func (f *fakeUserRepo) UpdateUser(ctx context.Context, user domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.users[user.UserID]; !exists {
		return apperrors.ErrNotFound
	}
	f.users[user.UserID] = &user
	return nil
}

func (f *fakeUserRepo) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, exists := f.users[userID]
	if !exists {
		return nil, apperrors.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) FindUserByProviderID(ctx context.Context, providerID string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.ProviderID == providerID {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeUserRepo) ConsumeCredit(ctx context.Context, userID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, exists := f.users[userID]
	if !exists {
		return 0, apperrors.ErrNotFound
	}
	if user.Credits <= 0 {
		return 0, apperrors.ErrInsufficientCredits
	}
	user.Credits--
	return user.Credits, nil
}

func TestCreditService_GetBalance(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	userID := uuid.NewString()
	require.NoError(t, repo.SaveUser(ctx, domain.User{UserID: userID, Credits: 7}))

	svc := services.NewCreditService(repo)

	balance, err := svc.GetBalance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), balance)
}

func TestCreditService_Consume_Decrements(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	userID := uuid.NewString()
	require.NoError(t, repo.SaveUser(ctx, domain.User{UserID: userID, Credits: 2}))

	svc := services.NewCreditService(repo)

	remaining, err := svc.Consume(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), remaining)

	remaining, err = svc.Consume(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), remaining)

	_, err = svc.Consume(ctx, userID)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientCredits)
}

func TestCreditService_Consume_UnknownUser(t *testing.T) {
	ctx := context.Background()
	svc := services.NewCreditService(newFakeUserRepo())

	_, err := svc.Consume(ctx, uuid.NewString())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

// With one credit left, concurrent spends must settle to exactly one success.
func TestCreditService_Consume_ConcurrentLastCredit(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	userID := uuid.NewString()
	require.NoError(t, repo.SaveUser(ctx, domain.User{UserID: userID, Credits: 1}))

	svc := services.NewCreditService(repo)

	const attempts = 16
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Consume(ctx, userID)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes, insufficient int
	for err := range results {
		switch {
		case err == nil:
			successes++
		default:
			assert.ErrorIs(t, err, apperrors.ErrInsufficientCredits)
			insufficient++
		}
	}

	assert.Equal(t, 1, successes, "exactly one concurrent spend should win the last credit")
	assert.Equal(t, attempts-1, insufficient)

	balance, err := svc.GetBalance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)
}
