package services

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/leebenson/conform"
	"gorm.io/gorm"

	"github.com/campustech/marketplace/config"
	"github.com/campustech/marketplace/db"
	apiError "github.com/campustech/marketplace/errors"
	"github.com/campustech/marketplace/models"
	"github.com/campustech/marketplace/services/jwt"
)

// AuthService interface
type AuthService interface {
	SignupUser(request *models.SignupRequest) (*models.UserResponse, *apiError.Error)
	LoginUser(request *models.LoginRequest) (*models.LoginResponse, *apiError.Error)
}

type authService struct {
	Config   *config.Config
	authRepo db.AuthRepository
	validate *validator.Validate
	trans    ut.Translator
}

// NewAuthService instantiate an authService
func NewAuthService(authRepo db.AuthRepository, conf *config.Config) AuthService {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		log.Printf("unable to register validator translations: %v", err)
	}

	return &authService{
		Config:   conf,
		authRepo: authRepo,
		validate: validate,
		trans:    trans,
	}
}

// SignupUser validates the registration form and creates the account.
// Every violated rule maps to the exact user-facing message of the form.
func (s *authService) SignupUser(request *models.SignupRequest) (*models.UserResponse, *apiError.Error) {
	if request == nil {
		log.Println("SignupUser error: request is nil")
		return nil, apiError.ErrInternalServerError
	}

	if err := conform.Strings(request); err != nil {
		log.Printf("SignupUser conform error: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	if request.Name == "" || request.Password == "" || request.ConfirmPassword == "" {
		return nil, apiError.New("Please fill in all required fields.", http.StatusBadRequest)
	}

	regNumber := strings.ToUpper(request.RegNumber)
	if request.Email == "" && regNumber == "" {
		return nil, apiError.New("Please provide either email or registration number.", http.StatusBadRequest)
	}

	if request.Password != request.ConfirmPassword {
		return nil, apiError.New("Passwords do not match.", http.StatusBadRequest)
	}

	if err := models.ValidatePassword(request.Password); err != nil {
		return nil, apiError.New(err.Error(), http.StatusBadRequest)
	}

	if regNumber != "" && !models.ValidateRegNumber(regNumber) {
		return nil, apiError.ErrInvalidRegNumberFormat
	}

	if request.Email != "" {
		if err := s.validate.Var(request.Email, "email"); err != nil {
			log.Printf("SignupUser email validation: %v", models.TranslateError(err, s.trans))
			return nil, apiError.New("Please enter a valid email address.", http.StatusBadRequest)
		}
		if err := s.authRepo.IsEmailExist(request.Email); err != nil {
			log.Printf("SignupUser error: %v", err)
			return nil, apiError.GetUniqueContraintError(err)
		}
	}

	if regNumber != "" {
		if err := s.authRepo.IsRegNumberExist(regNumber); err != nil {
			log.Printf("SignupUser error: %v", err)
			return nil, apiError.GetUniqueContraintError(err)
		}
	}

	hashedPassword, err := models.HashPassword(request.Password)
	if err != nil {
		log.Printf("SignupUser error hashing password: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	user := &models.User{
		Name:           request.Name,
		HashedPassword: hashedPassword,
	}
	if request.Email != "" {
		user.Email = &request.Email
	}
	if regNumber != "" {
		user.RegNumber = &regNumber
	}

	createdUser, err := s.authRepo.CreateUser(user)
	if err != nil {
		log.Printf("SignupUser error creating user: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	return &models.UserResponse{
		ID:        createdUser.ID,
		Name:      createdUser.Name,
		Email:     createdUser.Email,
		RegNumber: createdUser.RegNumber,
	}, nil
}

// LoginUser resolves the identifier to an account and verifies the
// password. An identifier containing '@' is treated as an email; anything
// else is uppercased and must match the registration number format.
func (a *authService) LoginUser(request *models.LoginRequest) (*models.LoginResponse, *apiError.Error) {
	if err := conform.Strings(request); err != nil {
		log.Printf("LoginUser conform error: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	if request.Identifier == "" || request.Password == "" {
		return nil, apiError.New("Please fill in all fields.", http.StatusBadRequest)
	}

	var foundUser *models.User
	var err error
	if strings.Contains(request.Identifier, "@") {
		foundUser, err = a.authRepo.FindUserByEmail(request.Identifier)
	} else {
		regNumber := strings.ToUpper(request.Identifier)
		if !models.ValidateRegNumber(regNumber) {
			return nil, apiError.ErrInvalidRegNumberFormat
		}
		foundUser, err = a.authRepo.FindUserByRegNumber(regNumber)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apiError.ErrInvalidCredentials
		}
		log.Printf("Error finding user by identifier: %v", err)
		return nil, apiError.New("unable to find user", http.StatusInternalServerError)
	}

	if err := foundUser.VerifyPassword(request.Password); err != nil {
		return nil, apiError.ErrInvalidCredentials
	}

	accessToken, err := jwt.GenerateAccessToken(foundUser.ID, foundUser.Name, a.Config.JWTSecret)
	if err != nil {
		log.Printf("Error generating access token for user %d: %v", foundUser.ID, err)
		return nil, apiError.ErrInternalServerError
	}

	return &models.LoginResponse{
		UserResponse: models.UserResponse{
			ID:        foundUser.ID,
			Name:      foundUser.Name,
			Email:     foundUser.Email,
			RegNumber: foundUser.RegNumber,
		},
		AccessToken: accessToken,
	}, nil
}
