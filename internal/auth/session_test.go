package auth

import (
	"context"
	"testing"
	"time"

	"github.com/quillhaven/moderation-backend/internal/common"
	"github.com/quillhaven/moderation-backend/internal/domain"
	"github.com/quillhaven/moderation-backend/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockStore is a mock implementation of store.Client
type MockStore struct {
	mock.Mock
}

func (m *MockStore) List(ctx context.Context, collection string, filters store.Filters, newestFirst bool, dest any) error {
	args := m.Called(collection, filters, newestFirst, dest)
	return args.Error(0)
}

func (m *MockStore) Update(ctx context.Context, collection string, id string, patch store.Patch) error {
	args := m.Called(collection, id, patch)
	return args.Error(0)
}

func (m *MockStore) UpdateWhere(ctx context.Context, collection string, filters store.Filters, patch store.Patch) error {
	args := m.Called(collection, filters, patch)
	return args.Error(0)
}

func (m *MockStore) Insert(ctx context.Context, collection string, record any) error {
	args := m.Called(collection, record)
	return args.Error(0)
}

func (m *MockStore) Delete(ctx context.Context, collection string, filters store.Filters) error {
	args := m.Called(collection, filters)
	return args.Error(0)
}

// memSessions is an in-memory SessionStore for tests.
type memSessions struct {
	live map[string]string
}

func newMemSessions() *memSessions {
	return &memSessions{live: make(map[string]string)}
}

func (m *memSessions) Put(_ context.Context, sessionID, operatorID string, _ time.Duration) error {
	m.live[sessionID] = operatorID
	return nil
}

func (m *memSessions) Exists(_ context.Context, sessionID string) (bool, error) {
	_, ok := m.live[sessionID]
	return ok, nil
}

func (m *memSessions) Drop(_ context.Context, sessionID string) error {
	delete(m.live, sessionID)
	return nil
}

func operatorWithPassword(t *testing.T, password string) domain.Operator {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return domain.Operator{ID: "op1", Email: "mod@example.com", PasswordHash: string(hash)}
}

func expectOperatorLookup(ms *MockStore, operators []domain.Operator) {
	ms.On("List", "operators", store.Filters{"email": "mod@example.com"}, false, mock.Anything).
		Run(func(args mock.Arguments) {
			dest := args.Get(3).(*[]domain.Operator)
			*dest = operators
		}).Return(nil)
}

func TestSignInAdmitsAndSignOutRevokes(t *testing.T) {
	ms := new(MockStore)
	sessions := newMemSessions()
	svc := NewService(ms, sessions, "test-secret", time.Hour)
	expectOperatorLookup(ms, []domain.Operator{operatorWithPassword(t, "correct horse")})

	token, err := svc.SignIn(context.Background(), "mod@example.com", "correct horse")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	assert.True(t, svc.IsAdmitted(context.Background(), token))

	id, err := svc.OperatorID(token)
	assert.NoError(t, err)
	assert.Equal(t, "op1", id)

	assert.NoError(t, svc.SignOut(context.Background(), token))
	// Revoked immediately, even though the JWT is not yet expired.
	assert.False(t, svc.IsAdmitted(context.Background(), token))
}

func TestSignInWrongPassword(t *testing.T) {
	ms := new(MockStore)
	svc := NewService(ms, newMemSessions(), "test-secret", time.Hour)
	expectOperatorLookup(ms, []domain.Operator{operatorWithPassword(t, "correct horse")})

	_, err := svc.SignIn(context.Background(), "mod@example.com", "wrong")

	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestSignInUnknownOperator(t *testing.T) {
	ms := new(MockStore)
	svc := NewService(ms, newMemSessions(), "test-secret", time.Hour)
	expectOperatorLookup(ms, nil)

	_, err := svc.SignIn(context.Background(), "mod@example.com", "whatever")

	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestIsAdmittedRejectsGarbageToken(t *testing.T) {
	svc := NewService(new(MockStore), newMemSessions(), "test-secret", time.Hour)

	assert.False(t, svc.IsAdmitted(context.Background(), "not-a-jwt"))
}

func TestIsAdmittedRejectsForeignSignature(t *testing.T) {
	ms := new(MockStore)
	sessions := newMemSessions()
	issuer := NewService(ms, sessions, "issuer-secret", time.Hour)
	expectOperatorLookup(ms, []domain.Operator{operatorWithPassword(t, "pw")})

	token, err := issuer.SignIn(context.Background(), "mod@example.com", "pw")
	assert.NoError(t, err)

	verifier := NewService(ms, sessions, "different-secret", time.Hour)
	assert.False(t, verifier.IsAdmitted(context.Background(), token))
}
