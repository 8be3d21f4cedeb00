package authhandler

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"jobboard-backend/db"
	userstore "jobboard-backend/lib/user/store"
	apperrors "jobboard-backend/lib/utils/app-errors"
	authutils "jobboard-backend/lib/utils/auth-utils"
	"jobboard-backend/lib/utils/helpers"
	authapimodels "jobboard-backend/models/api/auth"
	dbmodels "jobboard-backend/models/db"
)

type Provider interface {
	Register(data authapimodels.RegisterRequest) (user authapimodels.UserView, err error)
	Login(data authapimodels.LoginRequest) (resp authapimodels.JWTResponse, err error)
	RefreshToken(refreshToken string) (resp authapimodels.JWTResponse, err error)
	Me(userID string) (user authapimodels.UserView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		userStore: userstore.NewInstance(db.DB),
	}
}

type impl struct {
	userStore userstore.Provider
}

var errBadCredentials = apperrors.Unauthorized("invalid email or password")

func (i impl) Register(data authapimodels.RegisterRequest) (authapimodels.UserView, error) {
	data.Normalize()
	if err := data.Validate(); err != nil {
		return authapimodels.UserView{}, err
	}
	logger := log.WithField("email", data.Email)
	rec, err := i.userStore.GetByEmail(data.Email)
	if err != nil {
		return authapimodels.UserView{}, errors.Wrap(err, "ошибка получения пользователя")
	}
	if rec != nil {
		return authapimodels.UserView{}, apperrors.Conflict("user with this email already exists")
	}
	hash, err := authutils.HashPassword(data.Password)
	if err != nil {
		return authapimodels.UserView{}, errors.Wrap(err, "ошибка хеширования пароля")
	}
	user := dbmodels.User{
		Email:    data.Email,
		Password: hash,
		Name:     data.Name,
		Role:     data.Role,
		IsActive: true,
	}
	user.ID, err = i.userStore.Create(user)
	if err != nil {
		if helpers.IsDuplicateKeyError(err) {
			return authapimodels.UserView{}, apperrors.Conflict("user with this email already exists")
		}
		return authapimodels.UserView{}, errors.Wrap(err, "ошибка создания пользователя")
	}
	logger.
		WithField("user_id", user.ID).
		WithField("role", user.Role).
		Info("зарегистрирован пользователь")
	return userConvert(user), nil
}

func (i impl) Login(data authapimodels.LoginRequest) (authapimodels.JWTResponse, error) {
	if err := data.Validate(); err != nil {
		return authapimodels.JWTResponse{}, err
	}
	user, err := i.userStore.GetByEmail(data.Email)
	if err != nil {
		return authapimodels.JWTResponse{}, errors.Wrap(err, "ошибка получения пользователя")
	}
	if user == nil || !user.IsActive || !authutils.CheckPassword(user.Password, data.Password) {
		log.WithField("email", helpers.NormalizeEmail(data.Email)).Info("неудачная попытка входа")
		return authapimodels.JWTResponse{}, errBadCredentials
	}
	err = i.userStore.Update(user.ID, map[string]interface{}{"last_login": time.Now()})
	if err != nil {
		log.WithError(err).WithField("user_id", user.ID).Warn("не удалось сохранить дату входа")
	}
	return i.issueTokens(*user)
}

func (i impl) RefreshToken(refreshToken string) (authapimodels.JWTResponse, error) {
	userID, err := authutils.ParseRefreshToken(refreshToken)
	if err != nil {
		return authapimodels.JWTResponse{}, apperrors.Unauthorized("invalid refresh token")
	}
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		return authapimodels.JWTResponse{}, errors.Wrap(err, "ошибка получения пользователя")
	}
	if user == nil || !user.IsActive {
		return authapimodels.JWTResponse{}, apperrors.Unauthorized("invalid refresh token")
	}
	return i.issueTokens(*user)
}

func (i impl) Me(userID string) (authapimodels.UserView, error) {
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		return authapimodels.UserView{}, errors.Wrap(err, "ошибка получения пользователя")
	}
	if user == nil || !user.IsActive {
		return authapimodels.UserView{}, apperrors.Unauthorized("user not found")
	}
	return userConvert(*user), nil
}

func (i impl) issueTokens(user dbmodels.User) (authapimodels.JWTResponse, error) {
	token, err := authutils.GetToken(user.ID, user.Name, user.Email, user.Role)
	if err != nil {
		return authapimodels.JWTResponse{}, errors.Wrap(err, "ошибка создания токена")
	}
	refreshToken, err := authutils.GetRefreshToken(user.ID)
	if err != nil {
		return authapimodels.JWTResponse{}, errors.Wrap(err, "ошибка создания refresh токена")
	}
	return authapimodels.JWTResponse{
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}

func userConvert(user dbmodels.User) authapimodels.UserView {
	return authapimodels.UserView{
		ID:       user.ID,
		Email:    user.Email,
		Name:     user.Name,
		Role:     user.Role,
		RoleName: user.Role.ToHuman(),
	}
}
