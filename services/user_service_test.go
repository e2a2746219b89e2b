package services

import (
	"testing"
	"time"

	"github.com/JWDT/bug-tracker/dto"
	"github.com/JWDT/bug-tracker/middleware"
	"github.com/JWDT/bug-tracker/models"
	"github.com/JWDT/bug-tracker/repositories"
	"github.com/JWDT/bug-tracker/repositories/mock_repositories"
	"github.com/JWDT/bug-tracker/types"
	"github.com/JWDT/bug-tracker/utils"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupUserServiceMocks(t *testing.T) (*UserService, *mock_repositories.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock_repositories.NewMockUserRepo(ctrl)
	mockAudit := mock_repositories.NewMockAuditRepo(ctrl)
	repos := &repositories.Repos{
		User:  mockUser,
		Audit: mockAudit,
	}

	oldGen := middleware.GenerateToken
	middleware.GenerateToken = func(user models.User, expireDuration time.Duration) (string, error) {
		return "token123", nil
	}
	t.Cleanup(func() { middleware.GenerateToken = oldGen })

	oldLog := utils.LogAuditWithConsole
	utils.LogAuditWithConsole = func(types.ActorContext, string, string, string, interface{}, interface{}, string, repositories.AuditRepo) {
	}
	t.Cleanup(func() { utils.LogAuditWithConsole = oldLog })

	return NewUserService(repos), mockUser
}

// --------------------- RegisterUser ---------------------
func TestRegisterUser_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("alice@test.com").Return(models.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(user *models.User) error {
		user.ID = 1
		return nil
	})

	input := dto.RegisterUserDTO{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@test.com",
		Password:  "123456",
	}
	user, token, fieldErrs, err := svc.RegisterUser(input)

	assert.NoError(t, err)
	assert.Empty(t, fieldErrs)
	assert.Equal(t, "token123", token)
	assert.Equal(t, models.UserRoleSubmitter, user.Role)
	assert.NotEqual(t, "123456", user.Password)
}

func TestRegisterUser_EmailTaken(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("alice@test.com").Return(models.User{ID: 1}, nil)

	input := dto.RegisterUserDTO{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@test.com",
		Password:  "123456",
	}
	user, token, fieldErrs, err := svc.RegisterUser(input)

	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.Empty(t, token)
	assert.Len(t, fieldErrs, 1)
	assert.Equal(t, "email", fieldErrs[0].Field)
	assert.Equal(t, "that email is already in use.", fieldErrs[0].Message)
}

// --------------------- LoginUser ---------------------
func TestLoginUser_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	stored := models.User{ID: 1, Email: "bob@test.com", Password: string(hashed)}
	mockUser.EXPECT().GetUserByEmail("bob@test.com").Return(stored, nil)

	user, token, fieldErrs, err := svc.LoginUser(dto.LoginUserDTO{Email: "bob@test.com", Password: "123456"})

	assert.NoError(t, err)
	assert.Empty(t, fieldErrs)
	assert.Equal(t, "token123", token)
	assert.Equal(t, uint(1), user.ID)
}

func TestLoginUser_UnknownEmail(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("ghost@test.com").Return(models.User{}, gorm.ErrRecordNotFound)

	user, token, fieldErrs, err := svc.LoginUser(dto.LoginUserDTO{Email: "ghost@test.com", Password: "123456"})

	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.Empty(t, token)
	assert.Len(t, fieldErrs, 1)
	assert.Equal(t, "email", fieldErrs[0].Field)
	assert.Equal(t, "that email doesn't exist.", fieldErrs[0].Message)
}

func TestLoginUser_WrongPassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.DefaultCost)
	stored := models.User{ID: 1, Email: "bob@test.com", Password: string(hashed)}
	mockUser.EXPECT().GetUserByEmail("bob@test.com").Return(stored, nil)

	user, _, fieldErrs, err := svc.LoginUser(dto.LoginUserDTO{Email: "bob@test.com", Password: "wrong"})

	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.Len(t, fieldErrs, 1)
	assert.Equal(t, "password", fieldErrs[0].Field)
	assert.Equal(t, "incorrect password.", fieldErrs[0].Message)
}

// --------------------- ChangeRole ---------------------
func TestChangeRole_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	stored := models.User{ID: 5, Role: models.UserRoleSubmitter}
	mockUser.EXPECT().GetUserByID(uint(5)).Return(stored, nil)
	mockUser.EXPECT().SaveUser(gomock.Any()).Return(nil)

	user, fieldErrs, err := svc.ChangeRole(testActor, 5, "developer")

	assert.NoError(t, err)
	assert.Empty(t, fieldErrs)
	assert.Equal(t, models.UserRoleDeveloper, user.Role)
}

func TestChangeRole_InvalidRole(t *testing.T) {
	svc, _ := setupUserServiceMocks(t)

	user, fieldErrs, err := svc.ChangeRole(testActor, 5, "superuser")

	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.Len(t, fieldErrs, 1)
	assert.Equal(t, "role", fieldErrs[0].Field)
	assert.Equal(t, "invalid user role.", fieldErrs[0].Message)
}

func TestChangeRole_UserNotFound(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(99)).Return(models.User{}, gorm.ErrRecordNotFound)

	user, fieldErrs, err := svc.ChangeRole(testActor, 99, "developer")

	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.Len(t, fieldErrs, 1)
	assert.Equal(t, "failed to find a user with that id.", fieldErrs[0].Message)
}
