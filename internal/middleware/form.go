package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"mime"
	"net/http"
	"net/url"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/nutripal/profile-backend/internal/models"
	"github.com/nutripal/profile-backend/internal/storage"
)

const (
	ProfilePictureField = "profilePicture"

	maxMultipartMemory = 32 << 20
)

const (
	profileInputKey contextKey = "profileInput"
	stagedFileKey   contextKey = "stagedFile"
)

// ParseProfileForm reads the profile fields and the optional profilePicture
// upload from a multipart, urlencoded or JSON body. The upload is staged to
// disk; whatever is left of it is removed once the request completes.
func ParseProfileForm(stager *storage.Stager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			input, file, err := readProfileForm(r, stager)
			if r.MultipartForm != nil {
				defer r.MultipartForm.RemoveAll()
			}
			if err != nil {
				log.Printf("[ParseProfileForm] request=%s error=%v", chimw.GetReqID(r.Context()), err)
				writeJSON(w, http.StatusBadRequest, models.NewMessageResponse("Invalid form data"))
				return
			}
			defer func() {
				if err := stager.Remove(file); err != nil {
					log.Printf("[ParseProfileForm] cleanup path=%s error=%v", file.Path, err)
				}
			}()

			ctx := context.WithValue(r.Context(), profileInputKey, input)
			ctx = context.WithValue(ctx, stagedFileKey, file)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetProfileInput returns the parsed body fields, or nil outside ParseProfileForm.
func GetProfileInput(ctx context.Context) *models.ProfileInput {
	input, _ := ctx.Value(profileInputKey).(*models.ProfileInput)
	return input
}

// GetStagedFile returns the staged upload, or nil when none was sent.
func GetStagedFile(ctx context.Context) *storage.StagedFile {
	file, _ := ctx.Value(stagedFileKey).(*storage.StagedFile)
	return file
}

func readProfileForm(r *http.Request, stager *storage.Stager) (*models.ProfileInput, *storage.StagedFile, error) {
	input := &models.ProfileInput{}
	if r.Body == nil || r.Body == http.NoBody {
		return input, nil, nil
	}

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		// No usable content type: treat as an empty body.
		return input, nil, nil
	}

	switch mediaType {
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			return nil, nil, err
		}
		fillFromValues(input, r.MultipartForm.Value)

		headers := r.MultipartForm.File[ProfilePictureField]
		if len(headers) == 0 {
			return input, nil, nil
		}
		file, err := stager.Stage(headers[0])
		if err != nil {
			return nil, nil, err
		}
		return input, file, nil

	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, nil, err
		}
		fillFromValues(input, r.PostForm)
		return input, nil, nil

	case "application/json":
		if err := json.NewDecoder(r.Body).Decode(input); err != nil && !errors.Is(err, io.EOF) {
			return nil, nil, err
		}
		return input, nil, nil
	}

	return input, nil, nil
}

func fillFromValues(input *models.ProfileInput, values url.Values) {
	input.UID = values.Get("uid")
	input.Name = optionalValue(values, "name")
	input.Gender = optionalValue(values, "gender")
	input.Lifestyle = optionalValue(values, "lifestyle")
}

func optionalValue(values url.Values, key string) *string {
	v, ok := values[key]
	if !ok || len(v) == 0 {
		return nil
	}
	return &v[0]
}
