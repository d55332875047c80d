package handlers

//go:generate mockgen -source=profile_picture.go -destination=profile_picture_mock.go -package=handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/sbilibin2017/gw-private-chat/internal/logger"
)

// MaxPictureSize is the largest accepted profile picture.
const MaxPictureSize = 5 << 20

// multipartOverhead leaves room for form fields and part headers around the file.
const multipartOverhead = 64 << 10

// ProfilePictureUploader stores a new profile picture for a user.
type ProfilePictureUploader interface {
	UploadProfilePicture(ctx context.Context, userID, filename string, content io.Reader) (string, error)
}

// ProfilePictureResponse represents a successful upload
// swagger:model ProfilePictureResponse
type ProfilePictureResponse struct {
	// Always true
	// default: true
	Success bool `json:"success"`

	// Result message
	// default: Profile picture updated successfully
	Message string `json:"message,omitempty"`

	// Public path of the new picture
	// default: /uploads/0b6b2c1e-5f0e-4a4c-9a55-0c2f4e1d7c3a.png
	ProfilePicture string `json:"profilePicture"`
}

// NewUploadProfilePictureHandler returns an HTTP handler for profile picture uploads.
// @Summary Upload profile picture
// @Description Accepts files named .jpg, .jpeg, .png or .gif (lower-case, checked by name only) up to 5MB. The previous picture is deleted.
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param userId formData string true "User ID"
// @Param profilePicture formData file true "Image file"
// @Success 200 {object} handlers.ProfilePictureResponse
// @Failure default {object} handlers.ErrorResponse "Missing userId, missing or invalid file, user not found"
// @Router /users/profile-picture [post]
func NewUploadProfilePictureHandler(svc ProfilePictureUploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, MaxPictureSize+multipartOverhead)

		if err := r.ParseMultipartForm(1 << 20); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeError(w, "File too large. Maximum size is 5MB")
				return
			}
			logger.Log.Warnw("failed to parse upload", "err", err)
			writeError(w, "No file uploaded")
			return
		}
		defer r.MultipartForm.RemoveAll()

		file, header, err := r.FormFile("profilePicture")
		if err != nil {
			writeError(w, "No file uploaded")
			return
		}
		defer file.Close()

		userID := r.FormValue("userId")
		if userID == "" {
			writeError(w, "User ID is required")
			return
		}

		if header.Size > MaxPictureSize {
			writeError(w, "File too large. Maximum size is 5MB")
			return
		}

		ref, err := svc.UploadProfilePicture(r.Context(), userID, header.Filename, file)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, ProfilePictureResponse{
			Success:        true,
			Message:        "Profile picture updated successfully",
			ProfilePicture: ref,
		})
	}
}
