package user

import (
	"Gomez-Kitchen/domain"
	"Gomez-Kitchen/entities"
	"Gomez-Kitchen/pkg/jwt"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepository struct {
	users map[string]*entities.User
}

func (r *fakeUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	r.users[user.ID.String()] = user
	return nil
}

func (r *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepository) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	_, err := r.GetUserByEmail(ctx, email)
	return err == nil, nil
}

func newService() (UserService, jwt.JWTService, *fakeUserRepository) {
	repo := &fakeUserRepository{users: map[string]*entities.User{}}
	jwtService := jwt.NewJWTServiceWithSecret("secret")
	return NewUserService(repo, jwtService), jwtService, repo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, jwtService, repo := newService()
	ctx := context.Background()

	res, err := svc.Register(ctx, domain.RegisterRequest{Name: "Ana", Email: "Ana@Example.com", Password: "secreto"})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", res.Email)
	assert.NotEqual(t, "secreto", repo.users[res.ID].Password)

	id, err := jwtService.GetUserIDByToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.ID, id)

	_, err = svc.Register(ctx, domain.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "otro123"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	login, err := svc.Login(ctx, domain.LoginRequest{Email: "ana@example.com", Password: "secreto"})
	require.NoError(t, err)
	id, err = jwtService.GetUserIDByToken(login.Token)
	require.NoError(t, err)
	assert.Equal(t, res.ID, id)

	_, err = svc.Login(ctx, domain.LoginRequest{Email: "ana@example.com", Password: "wrong!"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, domain.LoginRequest{Email: "nobody@example.com", Password: "secreto"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestMeAndGetOther(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()

	res, err := svc.Register(ctx, domain.RegisterRequest{Name: "Luis", Email: "luis@example.com", Password: "secreto"})
	require.NoError(t, err)

	me, err := svc.Me(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.MeResponse{ID: res.ID, Name: "Luis", Email: "luis@example.com"}, me)

	other, err := svc.GetOther(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OtherUserResponse{ID: res.ID, Name: "Luis"}, other)

	_, err = svc.GetOther(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
