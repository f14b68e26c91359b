package service

import (
	"context"
	"testing"

	"github.com/Aman-1313/fitealthy/internal/domain"
	"github.com/Aman-1313/fitealthy/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func TestRegisterUser_HashesPassword(t *testing.T) {
	userRepo := new(UserRepoMock)
	trainerRepo := new(TrainerRepoMock)
	svc := NewAuthService(userRepo, trainerRepo, testSecret, 0)

	userRepo.On("GetByEmail", mock.Anything, "sam@example.com").Return(nil, repository.ErrNotFound)
	trainerRepo.On("GetByEmail", mock.Anything, "sam@example.com").Return(nil, repository.ErrNotFound)

	var created *domain.User
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*domain.User)
		}).Return(primitive.NewObjectID(), nil)

	user, err := svc.RegisterUser(context.Background(), "sam", "sam@example.com", "hunter2hunter2")
	require.NoError(t, err)

	assert.Empty(t, user.PasswordHash)
	require.NotNil(t, created)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("hunter2hunter2")))
}

func TestRegisterUser_EmailTakenByTrainer(t *testing.T) {
	userRepo := new(UserRepoMock)
	trainerRepo := new(TrainerRepoMock)
	svc := NewAuthService(userRepo, trainerRepo, testSecret, 0)

	userRepo.On("GetByEmail", mock.Anything, "coach@example.com").Return(nil, repository.ErrNotFound)
	trainerRepo.On("GetByEmail", mock.Anything, "coach@example.com").Return(&domain.Trainer{Email: "coach@example.com"}, nil)

	_, err := svc.RegisterUser(context.Background(), "sam", "coach@example.com", "hunter2hunter2")
	assert.ErrorIs(t, err, ErrAccountAlreadyExists)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterTrainer_RejectsUnknownType(t *testing.T) {
	svc := NewAuthService(new(UserRepoMock), new(TrainerRepoMock), testSecret, 0)

	_, err := svc.RegisterTrainer(context.Background(), "coach", "coach@example.com", "hunter2hunter2", "yoga")
	assert.Error(t, err)
}

func TestLogin_ClientSuccess(t *testing.T) {
	userRepo := new(UserRepoMock)
	trainerRepo := new(TrainerRepoMock)
	svc := NewAuthService(userRepo, trainerRepo, testSecret, 0)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.DefaultCost)
	require.NoError(t, err)
	userID := primitive.NewObjectID()
	userRepo.On("GetByEmail", mock.Anything, "sam@example.com").Return(&domain.User{
		ID:           userID,
		Email:        "sam@example.com",
		PasswordHash: string(hash),
	}, nil)

	token, accountID, role, err := svc.Login(context.Background(), "sam@example.com", "hunter2hunter2")
	require.NoError(t, err)

	assert.NotEmpty(t, token)
	assert.Equal(t, userID.Hex(), accountID)
	assert.Equal(t, domain.RoleClient, role)
}

func TestLogin_FallsBackToTrainer(t *testing.T) {
	userRepo := new(UserRepoMock)
	trainerRepo := new(TrainerRepoMock)
	svc := NewAuthService(userRepo, trainerRepo, testSecret, 0)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.DefaultCost)
	require.NoError(t, err)
	trainerID := primitive.NewObjectID()
	userRepo.On("GetByEmail", mock.Anything, "coach@example.com").Return(nil, repository.ErrNotFound)
	trainerRepo.On("GetByEmail", mock.Anything, "coach@example.com").Return(&domain.Trainer{
		ID:           trainerID,
		Email:        "coach@example.com",
		PasswordHash: string(hash),
	}, nil)

	_, accountID, role, err := svc.Login(context.Background(), "coach@example.com", "hunter2hunter2")
	require.NoError(t, err)

	assert.Equal(t, trainerID.Hex(), accountID)
	assert.Equal(t, domain.RoleTrainer, role)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(UserRepoMock)
	svc := NewAuthService(userRepo, new(TrainerRepoMock), testSecret, 0)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	require.NoError(t, err)
	userRepo.On("GetByEmail", mock.Anything, "sam@example.com").Return(&domain.User{
		ID:           primitive.NewObjectID(),
		PasswordHash: string(hash),
	}, nil)

	_, _, _, err = svc.Login(context.Background(), "sam@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestLogin_UnknownEmail(t *testing.T) {
	userRepo := new(UserRepoMock)
	trainerRepo := new(TrainerRepoMock)
	svc := NewAuthService(userRepo, trainerRepo, testSecret, 0)

	userRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, repository.ErrNotFound)
	trainerRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, repository.ErrNotFound)

	_, _, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}
