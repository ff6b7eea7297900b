package sync

import (
	"context"
	"fmt"

	"lms-records/internal/domain"
	"lms-records/internal/lms"
)

// TokenSource yields the access token for one command run.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// Materials is the authorized part of the LMS API the orchestrator drives.
type Materials interface {
	CreateMaterial(ctx context.Context, req lms.CreateMaterialRequest) error
	ListMaterials(ctx context.Context, moduleID, groupID int64) ([]domain.RemoteMaterial, error)
	DeleteMaterial(ctx context.Context, materialID int64) error
}

// Connector binds Materials to an access token.
type Connector func(accessToken string) Materials

// UploadError means the LMS rejected the lesson Name. Lessons before it stay
// uploaded; lessons after it were not attempted.
type UploadError struct {
	Name    string
	Message string
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("when uploading lesson %q the LMS returned an error: %s", e.Name, e.Message)
}

// RemoveError means the LMS refused to delete the material Name.
type RemoveError struct {
	Name    string
	Message string
}

func (e *RemoveError) Error() string {
	return fmt.Sprintf("when removing lesson %q the LMS returned an error: %s", e.Name, e.Message)
}
