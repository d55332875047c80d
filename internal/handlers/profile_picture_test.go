package handlers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-private-chat/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartRequest(t *testing.T, userID, filename string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if userID != "" {
		require.NoError(t, mw.WriteField("userId", userID))
	}
	if filename != "" {
		part, err := mw.CreateFormFile("profilePicture", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/users/profile-picture", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadProfilePictureHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		userID    string
		filename  string
		content   []byte
		mockSetup func(m *MockProfilePictureUploader)
		wantBody  string
	}{
		{
			name:     "success",
			userID:   "1",
			filename: "me.png",
			content:  []byte("png-bytes"),
			mockSetup: func(m *MockProfilePictureUploader) {
				m.EXPECT().
					UploadProfilePicture(gomock.Any(), "1", "me.png", gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _ string, content io.Reader) (string, error) {
						data, err := io.ReadAll(content)
						require.NoError(t, err)
						assert.Equal(t, "png-bytes", string(data))
						return "/uploads/abc.png", nil
					})
			},
			wantBody: `{"success":true,"message":"Profile picture updated successfully","profilePicture":"/uploads/abc.png"}`,
		},
		{
			name:     "missing file",
			userID:   "1",
			wantBody: `{"success":false,"message":"No file uploaded"}`,
		},
		{
			name:     "missing user id",
			filename: "me.png",
			content:  []byte("x"),
			wantBody: `{"success":false,"message":"User ID is required"}`,
		},
		{
			name:     "file too large",
			userID:   "1",
			filename: "big.png",
			content:  bytes.Repeat([]byte("a"), MaxPictureSize+1),
			wantBody: `{"success":false,"message":"File too large. Maximum size is 5MB"}`,
		},
		{
			name:     "invalid extension",
			userID:   "1",
			filename: "notes.txt",
			content:  []byte("x"),
			mockSetup: func(m *MockProfilePictureUploader) {
				m.EXPECT().
					UploadProfilePicture(gomock.Any(), "1", "notes.txt", gomock.Any()).
					Return("", services.ErrInvalidFileType)
			},
			wantBody: `{"success":false,"message":"Only image files are allowed!"}`,
		},
		{
			name:     "user not found",
			userID:   "9",
			filename: "me.gif",
			content:  []byte("x"),
			mockSetup: func(m *MockProfilePictureUploader) {
				m.EXPECT().
					UploadProfilePicture(gomock.Any(), "9", "me.gif", gomock.Any()).
					Return("", services.ErrUserNotFound)
			},
			wantBody: `{"success":false,"message":"User not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockProfilePictureUploader(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			rr := httptest.NewRecorder()
			NewUploadProfilePictureHandler(mockSvc)(rr, multipartRequest(t, tt.userID, tt.filename, tt.content))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestUploadProfilePictureHandler_NotMultipart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodPost, "/api/users/profile-picture", bytes.NewBufferString(`{"userId":"1"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	NewUploadProfilePictureHandler(NewMockProfilePictureUploader(ctrl))(rr, req)

	assert.JSONEq(t, `{"success":false,"message":"No file uploaded"}`, rr.Body.String())
}
