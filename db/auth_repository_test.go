package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apiError "github.com/campustech/marketplace/errors"
	"github.com/campustech/marketplace/models"
)

func createTestUser(t *testing.T, repo AuthRepository, name, email, regNumber string) *models.User {
	t.Helper()

	user := &models.User{
		Name:           name,
		HashedPassword: "not-a-real-hash",
	}
	if email != "" {
		user.Email = toStringPtr(email)
	}
	if regNumber != "" {
		user.RegNumber = toStringPtr(regNumber)
	}

	created, err := repo.CreateUser(user)
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	return created
}

func TestCreateAndFindUser(t *testing.T) {
	repo := NewAuthRepo(newTestDB(t))

	created := createTestUser(t, repo, "John Doe", "john@sampleschool.edu", "H200001A")

	byEmail, err := repo.FindUserByEmail("john@sampleschool.edu")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byRegNumber, err := repo.FindUserByRegNumber("H200001A")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byRegNumber.ID)

	byID, err := repo.FindUserByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", byID.Name)
}

func TestFindUserNotFound(t *testing.T) {
	repo := NewAuthRepo(newTestDB(t))

	_, err := repo.FindUserByEmail("ghost@sampleschool.edu")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repo.FindUserByRegNumber("Z999999Z")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repo.FindUserByID(404)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestIsEmailExist(t *testing.T) {
	repo := NewAuthRepo(newTestDB(t))
	createTestUser(t, repo, "John Doe", "john@sampleschool.edu", "")

	err := repo.IsEmailExist("john@sampleschool.edu")
	require.Error(t, err)
	assert.ErrorIs(t, err, apiError.ErrDuplicateEmail)
	assert.Equal(t, "Email already registered.", err.Error())

	assert.NoError(t, repo.IsEmailExist("new@sampleschool.edu"))
}

func TestIsRegNumberExist(t *testing.T) {
	repo := NewAuthRepo(newTestDB(t))
	createTestUser(t, repo, "Jane Smith", "", "H200002B")

	err := repo.IsRegNumberExist("H200002B")
	require.Error(t, err)
	assert.ErrorIs(t, err, apiError.ErrDuplicateRegNumber)
	assert.Equal(t, "Registration number already registered.", err.Error())

	assert.NoError(t, repo.IsRegNumberExist("H200009Z"))
}

func TestEmailOnlyAndRegNumberOnlyUsers(t *testing.T) {
	repo := NewAuthRepo(newTestDB(t))

	// Multiple users without an email or without a reg number must not
	// trip the unique indexes.
	createTestUser(t, repo, "Email Only A", "a@sampleschool.edu", "")
	createTestUser(t, repo, "Email Only B", "b@sampleschool.edu", "")
	createTestUser(t, repo, "Reg Only A", "", "H200003C")
	createTestUser(t, repo, "Reg Only B", "", "H200004D")
}

func TestTokenBlacklist(t *testing.T) {
	repo := NewAuthRepo(newTestDB(t))

	assert.False(t, repo.IsTokenInBlacklist("some-token"))

	require.NoError(t, repo.AddToBlackList(&models.Blacklist{Token: "some-token"}))
	assert.True(t, repo.IsTokenInBlacklist("some-token"))
	assert.True(t, repo.IsTokenInBlacklist("  some-token  "))
	assert.False(t, repo.IsTokenInBlacklist("other-token"))
}
