package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mindscribe/journal_ai_app/internal/apperrors"
	"github.com/mindscribe/journal_ai_app/internal/core/domain"
	portssvc "github.com/mindscribe/journal_ai_app/internal/core/ports/services"
	"github.com/mindscribe/journal_ai_app/internal/core/services"
	"github.com/mindscribe/journal_ai_app/internal/dto"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

func validIdentityData() dto.IdentityEventData {
	return dto.IdentityEventData{
		ID:        "user_2abcDEF",
		FirstName: "Ada",
		LastName:  "Lovelace",
		EmailAddresses: []dto.IdentityEmailAddress{
			{ID: "idn_1", EmailAddress: "ada@example.com"},
			{ID: "idn_2", EmailAddress: "secondary@example.com"},
		},
		PrimaryEmailAddressID: "idn_1",
	}
}

func (suite *UserServiceTestSuite) TestProvisionUser_Success() {
	ctx := context.Background()
	data := validIdentityData()

	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()

	user, err := suite.service.ProvisionUser(ctx, data)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.Equal("user_2abcDEF", user.ProviderID)
	suite.Equal("ada@example.com", user.Email)
	suite.Equal("Ada Lovelace", user.Name)
	suite.Equal(int64(0), user.Credits)

	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestProvisionUser_MissingPrimaryEmail() {
	ctx := context.Background()
	data := validIdentityData()
	data.PrimaryEmailAddressID = "idn_unknown"

	user, err := suite.service.ProvisionUser(ctx, data)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrMissingPrimaryEmail)
	suite.Nil(user)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestProvisionUser_Redelivery() {
	ctx := context.Background()
	data := validIdentityData()

	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.ProvisionUser(ctx, data)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(user)
}

func (suite *UserServiceTestSuite) TestGetUserByProviderID_NotFound() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByProviderID", ctx, "user_missing").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.GetUserByProviderID(ctx, "user_missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(user)
}

func (suite *UserServiceTestSuite) TestGetUserByID_Success() {
	ctx := context.Background()
	expected := &domain.User{UserID: "u1", Email: "ada@example.com", Credits: 3}

	suite.mockUserRepo.On("FindUserByID", ctx, "u1").Return(expected, nil).Once()

	user, err := suite.service.GetUserByID(ctx, "u1")

	suite.Require().NoError(err)
	suite.Equal(expected.Email, user.Email)
	suite.Equal(int64(3), user.Credits)
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
