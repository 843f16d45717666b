package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/taskboard/taskboard-api/internal/models"
	"github.com/taskboard/taskboard-api/internal/repository"
	"github.com/taskboard/taskboard-api/internal/token"
)

type AuthServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	issuer  *token.Issuer
	service *AuthService
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.db = setupTestDB(suite.T())
	suite.issuer = token.NewIssuer("test-secret", time.Hour)
	suite.service = NewAuthService(repository.NewUserRepository(suite.db), suite.issuer)
}

func (suite *AuthServiceTestSuite) TestRegister_Success() {
	user, signed, err := suite.service.Register(RegisterInput{
		Email:     "new@example.com",
		Password:  "supersecret",
		FirstName: "New",
		LastName:  "User",
	})

	suite.Require().NoError(err)
	suite.Equal("new@example.com", user.Email)
	suite.Equal(models.RoleUser, user.Role)
	suite.True(user.IsActive)
	suite.NotEqual("supersecret", user.PasswordHash)

	userID, role, err := suite.issuer.Parse(signed)
	suite.Require().NoError(err)
	suite.Equal(user.ID, userID)
	suite.Equal(models.RoleUser, role)
}

func (suite *AuthServiceTestSuite) TestRegister_DuplicateEmail() {
	_, _, err := suite.service.Register(RegisterInput{
		Email:     "taken@example.com",
		Password:  "supersecret",
		FirstName: "First",
		LastName:  "User",
	})
	suite.Require().NoError(err)

	_, _, err = suite.service.Register(RegisterInput{
		Email:     "taken@example.com",
		Password:  "othersecret",
		FirstName: "Second",
		LastName:  "User",
	})

	suite.ErrorIs(err, ErrEmailTaken)
}

func (suite *AuthServiceTestSuite) TestRegister_PasswordTooShort() {
	_, _, err := suite.service.Register(RegisterInput{
		Email:    "short@example.com",
		Password: "short",
	})

	suite.ErrorIs(err, ErrPasswordTooShort)
}

func (suite *AuthServiceTestSuite) TestRegister_InvalidRole() {
	_, _, err := suite.service.Register(RegisterInput{
		Email:    "role@example.com",
		Password: "supersecret",
		Role:     "Superuser",
	})

	suite.ErrorIs(err, ErrInvalidRole)
}

func (suite *AuthServiceTestSuite) TestRegister_ExplicitRole() {
	user, _, err := suite.service.Register(RegisterInput{
		Email:    "manager@example.com",
		Password: "supersecret",
		Role:     "Manager",
	})

	suite.Require().NoError(err)
	suite.Equal(models.RoleManager, user.Role)
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	_, _, err := suite.service.Register(RegisterInput{
		Email:    "login@example.com",
		Password: "supersecret",
	})
	suite.Require().NoError(err)

	user, signed, err := suite.service.Login(LoginInput{
		Email:    "login@example.com",
		Password: "supersecret",
	})

	suite.Require().NoError(err)
	suite.NotEmpty(signed)
	suite.Require().NotNil(user.LastLoginAt)
	suite.WithinDuration(time.Now(), *user.LastLoginAt, time.Minute)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	_, _, err := suite.service.Register(RegisterInput{
		Email:    "login@example.com",
		Password: "supersecret",
	})
	suite.Require().NoError(err)

	_, _, err = suite.service.Login(LoginInput{
		Email:    "login@example.com",
		Password: "wrongpassword",
	})

	suite.ErrorIs(err, ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownEmail() {
	_, _, err := suite.service.Login(LoginInput{
		Email:    "missing@example.com",
		Password: "whatever",
	})

	suite.ErrorIs(err, ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestLogin_InactiveUser() {
	user, _, err := suite.service.Register(RegisterInput{
		Email:    "inactive@example.com",
		Password: "supersecret",
	})
	suite.Require().NoError(err)

	suite.db.Model(user).Update("is_active", false)

	_, _, err = suite.service.Login(LoginInput{
		Email:    "inactive@example.com",
		Password: "supersecret",
	})

	suite.ErrorIs(err, ErrInvalidCredentials)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
