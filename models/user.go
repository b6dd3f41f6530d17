package models

import (
	"errors"
	"fmt"
	"regexp"

	goval "github.com/go-passwd/validator"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

// regNumberPattern is the institutional registration number format:
// one uppercase letter, six digits, one uppercase letter (e.g. H200000A).
var regNumberPattern = regexp.MustCompile(`^[A-Z]\d{6}[A-Z]$`)

// User represents a registered member of the marketplace. Exactly one of
// Email or RegNumber may be nil, never both; that rule lives in the auth
// service, not in the schema.
type User struct {
	Model
	Name           string  `json:"name" gorm:"size:100;not null"`
	Email          *string `json:"email,omitempty" gorm:"size:120;uniqueIndex"`
	RegNumber      *string `json:"reg_number,omitempty" gorm:"size:20;uniqueIndex"`
	HashedPassword string  `json:"-" gorm:"not null"`

	Products         []Product `gorm:"foreignKey:SellerID" json:"-"`
	SentMessages     []Message `gorm:"foreignKey:SenderID" json:"-"`
	ReceivedMessages []Message `gorm:"foreignKey:ReceiverID" json:"-"`
}

// ValidateRegNumber reports whether s matches the registration number
// format. Callers are expected to uppercase the input first.
func ValidateRegNumber(s string) bool {
	return regNumberPattern.MatchString(s)
}

// ValidatePassword enforces the password policy for new accounts.
func ValidatePassword(password string) error {
	passwordValidator := goval.New(goval.MinLength(6, errors.New("Password must be at least 6 characters long.")))
	err := passwordValidator.Validate(password)
	return err
}

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hashedPassword), err
}

// VerifyPassword compares the candidate password with the stored hash.
func (u *User) VerifyPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(password))
}

// TranslateError renders validator violations through the given
// translator, one error per violated rule.
func TranslateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	validatorErrs := err.(validator.ValidationErrors)
	for _, e := range validatorErrs {
		translatedErr := fmt.Errorf(e.Translate(trans) + "; ")
		errs = append(errs, translatedErr)
	}
	return errs
}

// SignupRequest carries the registration form fields.
type SignupRequest struct {
	Name            string `json:"name" conform:"trim"`
	Email           string `json:"email" conform:"trim"`
	RegNumber       string `json:"reg_number" conform:"trim"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// LoginRequest carries a single identifier that is either an email address
// or a registration number.
type LoginRequest struct {
	Identifier string `json:"identifier" conform:"trim"`
	Password   string `json:"password"`
}

type UserResponse struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Email     *string `json:"email,omitempty"`
	RegNumber *string `json:"reg_number,omitempty"`
}

type LoginResponse struct {
	UserResponse
	AccessToken string `json:"access_token"`
}
