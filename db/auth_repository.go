package db

import (
	"log"
	"strings"

	apiError "github.com/campustech/marketplace/errors"
	"github.com/campustech/marketplace/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type AuthRepository interface {
	CreateUser(user *models.User) (*models.User, error)
	IsEmailExist(email string) error
	IsRegNumberExist(regNumber string) error
	FindUserByEmail(email string) (*models.User, error)
	FindUserByRegNumber(regNumber string) (*models.User, error)
	FindUserByID(id uint) (*models.User, error)
	AddToBlackList(blacklist *models.Blacklist) error
	IsTokenInBlacklist(token string) bool
}

type authRepo struct {
	DB *gorm.DB
}

func NewAuthRepo(db *GormDB) AuthRepository {
	return &authRepo{db.DB}
}

func (a *authRepo) CreateUser(user *models.User) (*models.User, error) {
	if user == nil {
		log.Println("CreateUser error: user is nil")
		return nil, errors.New("user is nil")
	}

	result := a.DB.Create(user)
	if result.Error != nil {
		log.Printf("CreateUser error: %v", result.Error)
		return nil, result.Error
	}

	return user, nil
}

func (a *authRepo) IsEmailExist(email string) error {
	var count int64
	err := a.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return errors.Wrap(err, "gorm count error")
	}
	if count > 0 {
		return apiError.ErrDuplicateEmail
	}
	return nil
}

func (a *authRepo) IsRegNumberExist(regNumber string) error {
	var count int64
	err := a.DB.Model(&models.User{}).Where("reg_number = ?", regNumber).Count(&count).Error
	if err != nil {
		return errors.Wrap(err, "gorm count error")
	}
	if count > 0 {
		return apiError.ErrDuplicateRegNumber
	}
	return nil
}

func (a *authRepo) FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := a.DB.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *authRepo) FindUserByRegNumber(regNumber string) (*models.User, error) {
	var user models.User
	err := a.DB.Where("reg_number = ?", regNumber).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *authRepo) FindUserByID(id uint) (*models.User, error) {
	var user models.User
	err := a.DB.Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *authRepo) AddToBlackList(blacklist *models.Blacklist) error {
	result := a.DB.Create(blacklist)
	return result.Error
}

func normalizeToken(token string) string {
	return strings.TrimSpace(token)
}

func (a *authRepo) IsTokenInBlacklist(token string) bool {
	normalizedToken := normalizeToken(token)

	var count int64
	a.DB.Model(&models.Blacklist{}).Where("token = ?", normalizedToken).Count(&count)
	return count > 0
}
