package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-gift-cards/internal/models"
	"github.com/sbilibin2017/gw-gift-cards/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(reader *services.MockUserReader, writer *services.MockUserWriter)
		wantErr   error
	}{
		{
			name: "success",
			setupMock: func(reader *services.MockUserReader, writer *services.MockUserWriter) {
				reader.EXPECT().
					GetByUsernameOrEmail(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
				writer.EXPECT().
					Save(gomock.Any(), "admin", gomock.Any(), "admin@example.com").
					Do(func(_ context.Context, _ string, passwordHash string, _ string) {
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("secret")))
					}).
					Return(nil)
			},
		},
		{
			name: "user already exists",
			setupMock: func(reader *services.MockUserReader, writer *services.MockUserWriter) {
				reader.EXPECT().
					GetByUsernameOrEmail(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&models.UserDB{UserID: uuid.New()}, nil)
			},
			wantErr: services.ErrUserAlreadyExists,
		},
		{
			name: "reader error",
			setupMock: func(reader *services.MockUserReader, writer *services.MockUserWriter) {
				reader.EXPECT().
					GetByUsernameOrEmail(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
		{
			name: "writer error",
			setupMock: func(reader *services.MockUserReader, writer *services.MockUserWriter) {
				reader.EXPECT().
					GetByUsernameOrEmail(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
				writer.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("insert failed"))
			},
			wantErr: errors.New("insert failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockJWT := services.NewMockJWTGenerator(ctrl)
			tt.setupMock(mockReader, mockWriter)

			svc := services.NewAuthService(mockReader, mockWriter, mockJWT)
			err := svc.Register(context.Background(), "admin", "secret", "admin@example.com")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	userID := uuid.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	user := &models.UserDB{
		UserID:       userID,
		Username:     "admin",
		PasswordHash: string(hash),
	}

	tests := []struct {
		name      string
		password  string
		setupMock func(reader *services.MockUserReader, jwt *services.MockJWTGenerator)
		wantToken string
		wantErr   error
	}{
		{
			name:     "success",
			password: "secret",
			setupMock: func(reader *services.MockUserReader, jwt *services.MockJWTGenerator) {
				reader.EXPECT().
					GetByUsernameOrEmail(gomock.Any(), gomock.Any(), gomock.Nil()).
					Return(user, nil)
				jwt.EXPECT().
					Generate(gomock.Any(), userID).
					Return("token", nil)
			},
			wantToken: "token",
		},
		{
			name:     "user does not exist",
			password: "secret",
			setupMock: func(reader *services.MockUserReader, jwt *services.MockJWTGenerator) {
				reader.EXPECT().
					GetByUsernameOrEmail(gomock.Any(), gomock.Any(), gomock.Nil()).
					Return(nil, nil)
			},
			wantErr: services.ErrUserDoesNotExist,
		},
		{
			name:     "wrong password",
			password: "nope",
			setupMock: func(reader *services.MockUserReader, jwt *services.MockJWTGenerator) {
				reader.EXPECT().
					GetByUsernameOrEmail(gomock.Any(), gomock.Any(), gomock.Nil()).
					Return(user, nil)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:     "jwt generation error",
			password: "secret",
			setupMock: func(reader *services.MockUserReader, jwt *services.MockJWTGenerator) {
				reader.EXPECT().
					GetByUsernameOrEmail(gomock.Any(), gomock.Any(), gomock.Nil()).
					Return(user, nil)
				jwt.EXPECT().
					Generate(gomock.Any(), userID).
					Return("", errors.New("sign error"))
			},
			wantErr: errors.New("sign error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockJWT := services.NewMockJWTGenerator(ctrl)
			tt.setupMock(mockReader, mockJWT)

			svc := services.NewAuthService(mockReader, mockWriter, mockJWT)
			token, err := svc.Login(context.Background(), "admin", tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}
