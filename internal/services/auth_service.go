package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"voxia/internal/domain"
	"voxia/internal/domain/models"
	"voxia/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the slice of users access the auth flows need.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
	FindByResetToken(ctx context.Context, token string, now time.Time) (models.User, error)
	Insert(ctx context.Context, u models.User) (models.User, error)
	SetToken(ctx context.Context, id primitive.ObjectID, token string, now time.Time) error
	SetResetToken(ctx context.Context, id primitive.ObjectID, token string, expires time.Time) error
	SetPassword(ctx context.Context, id primitive.ObjectID, hash string, now time.Time) error
	UpdateProfile(ctx context.Context, id primitive.ObjectID, patch bson.M, now time.Time) (models.User, error)
}

// ResetMailer delivers the password reset link. Satisfied by EmailService.
type ResetMailer interface {
	SendResetPassword(to, link string) error
}

const resetTokenTTL = time.Hour

// AuthService handles registration, login and the password reset flow.
type AuthService struct {
	Users     UserStore
	Mailer    ResetMailer
	JWTSecret []byte
	TokenTTL  time.Duration
	ResetBase string
	RequestID string
	Now       func() time.Time
}

func (s AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s AuthService) tokenTTL() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return 24 * time.Hour
}

type RegisterInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

// Register creates a user with a bcrypt-hashed password and issues a token.
func (s AuthService) Register(ctx context.Context, in RegisterInput) (models.User, string, error) {
	if _, err := s.Users.FindByEmail(ctx, in.Email); err == nil {
		return models.User{}, "", domain.ConflictError{Resource: "user", Msg: "already exists"}
	} else if !domain.IsNotFound(err) {
		return models.User{}, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, "", domain.InternalError{Msg: "hash password", Err: err}
	}

	role := in.Role
	if role == "" {
		role = models.RoleEmployee
	}
	now := s.now()
	u := models.User{
		Username: in.Username,
		Email:    in.Email,
		Password: string(hash),
		Role:     role,
		Gender:   "Male",
		JobTitle: "Sales Executive",
		Preferences: models.Preferences{
			CabinClass:  "Economy",
			HotelRating: 3,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	u, err = s.Users.Insert(ctx, u)
	if err != nil {
		return models.User{}, "", err
	}

	token, err := s.issueToken(u)
	if err != nil {
		return models.User{}, "", err
	}

	utils.LogEvent(s.RequestID, "auth", "register", "email="+in.Email)
	return u, token, nil
}

// Login verifies credentials, issues a JWT and stores it on the user
// document as the last-issued token.
func (s AuthService) Login(ctx context.Context, email, password string) (models.User, string, error) {
	u, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		if domain.IsNotFound(err) {
			return models.User{}, "", domain.AuthError{Msg: "invalid credentials"}
		}
		return models.User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return models.User{}, "", domain.AuthError{Msg: "invalid credentials"}
	}

	token, err := s.issueToken(u)
	if err != nil {
		return models.User{}, "", err
	}
	if err := s.Users.SetToken(ctx, u.ID, token, s.now()); err != nil {
		return models.User{}, "", err
	}

	utils.LogEvent(s.RequestID, "auth", "login", "email="+email)
	return u, token, nil
}

// FetchToken returns the user's last-issued token.
func (s AuthService) FetchToken(ctx context.Context, email string) (string, error) {
	u, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u.Token == "" {
		return "", domain.NotFoundError{Resource: "token"}
	}
	return u.Token, nil
}

// Profile loads the user behind a verified token's subject.
func (s AuthService) Profile(ctx context.Context, rawID string) (models.User, error) {
	id, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return models.User{}, domain.InvalidIDError{ID: rawID, Err: err}
	}
	return s.Users.FindByID(ctx, id)
}

type ProfilePatch struct {
	Username    *string             `json:"username"`
	Gender      *string             `json:"gender"`
	JobTitle    *string             `json:"jobTitle"`
	Preferences *models.Preferences `json:"preferences"`
}

// UpdateProfile applies the present fields only.
func (s AuthService) UpdateProfile(ctx context.Context, rawID string, patch ProfilePatch) (models.User, error) {
	id, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return models.User{}, domain.InvalidIDError{ID: rawID, Err: err}
	}

	set := bson.M{}
	if patch.Username != nil {
		set["username"] = *patch.Username
	}
	if patch.Gender != nil {
		set["gender"] = *patch.Gender
	}
	if patch.JobTitle != nil {
		set["jobTitle"] = *patch.JobTitle
	}
	if patch.Preferences != nil {
		set["preferences"] = *patch.Preferences
	}
	if len(set) == 0 {
		return models.User{}, domain.ValidationError{Msg: "no fields to update"}
	}
	return s.Users.UpdateProfile(ctx, id, set, s.now())
}

// ForgotPassword stores a fresh single-use token with a one hour expiry and
// mails the reset link.
func (s AuthService) ForgotPassword(ctx context.Context, email string) error {
	u, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return domain.InternalError{Msg: "generate reset token", Err: err}
	}
	token := hex.EncodeToString(raw)

	if err := s.Users.SetResetToken(ctx, u.ID, token, s.now().Add(resetTokenTTL)); err != nil {
		return err
	}

	link := s.ResetBase + "?token=" + token
	if err := s.Mailer.SendResetPassword(u.Email, link); err != nil {
		return err
	}

	utils.LogEvent(s.RequestID, "auth", "forgot_password", "email="+email)
	return nil
}

// ResetPassword consumes a valid reset token. Reusing the old password is
// rejected.
func (s AuthService) ResetPassword(ctx context.Context, token, password string) error {
	if token == "" || password == "" {
		return domain.ValidationError{Msg: "token and password are required"}
	}

	u, err := s.Users.FindByResetToken(ctx, token, s.now())
	if err != nil {
		if domain.IsNotFound(err) {
			return domain.ValidationError{Field: "token", Msg: "invalid or expired"}
		}
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil {
		return domain.ValidationError{Field: "password", Msg: "new password cannot be the same as the old password"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.InternalError{Msg: "hash password", Err: err}
	}
	if err := s.Users.SetPassword(ctx, u.ID, string(hash), s.now()); err != nil {
		return err
	}

	utils.LogEvent(s.RequestID, "auth", "reset_password", "email="+u.Email)
	return nil
}

func (s AuthService) issueToken(u models.User) (string, error) {
	claims := jwt.MapClaims{
		"userId": u.ID.Hex(),
		"role":   u.Role,
		"email":  u.Email,
		"exp":    s.now().Add(s.tokenTTL()).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.JWTSecret)
	if err != nil {
		return "", domain.InternalError{Msg: "sign token", Err: err}
	}
	return signed, nil
}
