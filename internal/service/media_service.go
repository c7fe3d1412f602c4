package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"coachdesk/coaching-app/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrInvalidMediaKind = errors.New("unknown media kind")
	ErrInvalidObjectKey = errors.New("object key does not belong to this coach")
	ErrURLGeneration    = errors.New("failed to generate presigned URL")
)

// MediaKind namespaces uploaded objects by what they illustrate.
type MediaKind string

const (
	MediaExerciseImage    MediaKind = "exercise-image"
	MediaProgressPhoto    MediaKind = "progress-photo"
	MediaTestimonialImage MediaKind = "testimonial-image"
	MediaClientImage      MediaKind = "client-image"
)

// UploadTarget is a presigned upload URL plus the key the caller should
// persist once the upload succeeds.
type UploadTarget struct {
	ObjectKey string `json:"objectKey"`
	UploadURL string `json:"uploadUrl"`
}

// MediaService hands out presigned URLs for direct-to-storage uploads and
// downloads. Object keys are prefixed with the owning coach's id so a key
// alone identifies its owner.
type MediaService interface {
	RequestUpload(ctx context.Context, coachID primitive.ObjectID, kind MediaKind, fileName, contentType string) (*UploadTarget, error)
	GetDownloadURL(ctx context.Context, coachID primitive.ObjectID, objectKey string) (string, error)
	DeleteObject(ctx context.Context, coachID primitive.ObjectID, objectKey string) error
}

type mediaService struct {
	fileStorage storage.FileStorage
}

// NewMediaService creates a new instance of mediaService.
func NewMediaService(fileStorage storage.FileStorage) MediaService {
	return &mediaService{fileStorage: fileStorage}
}

func (s *mediaService) RequestUpload(ctx context.Context, coachID primitive.ObjectID, kind MediaKind, fileName, contentType string) (*UploadTarget, error) {
	if coachID == primitive.NilObjectID {
		return nil, errors.New("coach ID is required")
	}
	switch kind {
	case MediaExerciseImage, MediaProgressPhoto, MediaTestimonialImage, MediaClientImage:
	default:
		return nil, ErrInvalidMediaKind
	}

	ext := path.Ext(fileName)
	objectKey := fmt.Sprintf("%s/%s/%s%s", coachID.Hex(), kind, uuid.NewString(), ext)

	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrURLGeneration, err)
	}
	return &UploadTarget{ObjectKey: objectKey, UploadURL: uploadURL}, nil
}

func (s *mediaService) GetDownloadURL(ctx context.Context, coachID primitive.ObjectID, objectKey string) (string, error) {
	if err := checkKeyOwnership(coachID, objectKey); err != nil {
		return "", err
	}
	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, objectKey, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrURLGeneration, err)
	}
	return url, nil
}

func (s *mediaService) DeleteObject(ctx context.Context, coachID primitive.ObjectID, objectKey string) error {
	if err := checkKeyOwnership(coachID, objectKey); err != nil {
		return err
	}
	return s.fileStorage.DeleteObject(ctx, objectKey)
}

// checkKeyOwnership verifies the key sits under the coach's prefix. Keys
// follow <coachId>/<kind>/<uuid><ext>.
func checkKeyOwnership(coachID primitive.ObjectID, objectKey string) error {
	if coachID == primitive.NilObjectID {
		return errors.New("coach ID is required")
	}
	if objectKey == "" || !strings.HasPrefix(objectKey, coachID.Hex()+"/") {
		return ErrInvalidObjectKey
	}
	return nil
}
