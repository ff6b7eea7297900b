// Package sync drives the upload and removal of lesson records for a group.
// Calls are made one at a time, in list order, and the first failure stops
// the run; work already done on the LMS is left in place.
package sync

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"lms-records/internal/domain"
	"lms-records/internal/lms"
	"lms-records/internal/mappers"
	"lms-records/internal/records"
)

type Syncer struct {
	Tokens   TokenSource
	Connect  Connector
	ModuleID int64

	// Out receives one line per created or deleted material unless Quiet.
	Out   io.Writer
	Quiet bool
	Log   *zap.Logger
}

func (s *Syncer) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

func (s *Syncer) report(format string, args ...any) {
	if s.Quiet || s.Out == nil {
		return
	}
	_, _ = fmt.Fprintf(s.Out, format+"\n", args...)
}

func (s *Syncer) materials(ctx context.Context) (Materials, error) {
	token, err := s.Tokens.AccessToken(ctx)
	if err != nil {
		return nil, err
	}
	return s.Connect(token), nil
}

// Plan returns the lessons Upload would create from input, without touching
// the LMS.
func Plan(input string) []domain.Lesson {
	return records.Build(input)
}

// Upload creates one material per lesson in input.
func (s *Syncer) Upload(ctx context.Context, groupID int64, input string) error {
	api, err := s.materials(ctx)
	if err != nil {
		return err
	}

	lessons := Plan(input)
	s.logger().Info("uploading lessons", zap.Int64("group_id", groupID), zap.Int("count", len(lessons)))

	for i, l := range lessons {
		req := mappers.LessonToMaterial(l, s.ModuleID, groupID)
		if err := api.CreateMaterial(ctx, req); err != nil {
			s.logger().Warn("upload stopped",
				zap.Int("index", i),
				zap.String("lesson", l.Name),
				zap.Int("remaining", len(lessons)-i),
			)
			var rej *lms.RejectedError
			if errors.As(err, &rej) {
				return &UploadError{Name: l.Name, Message: rej.Message}
			}
			return fmt.Errorf("upload lesson %q: %w", l.Name, err)
		}
		s.report("Successfully uploaded lesson %q", l.Name)
	}
	return nil
}

// Remove deletes every material of the group, in the order the LMS lists them.
func (s *Syncer) Remove(ctx context.Context, groupID int64) error {
	api, err := s.materials(ctx)
	if err != nil {
		return err
	}

	materials, err := api.ListMaterials(ctx, s.ModuleID, groupID)
	if err != nil {
		return err
	}
	s.logger().Info("removing lessons", zap.Int64("group_id", groupID), zap.Int("count", len(materials)))

	for i, m := range materials {
		if err := api.DeleteMaterial(ctx, m.ID); err != nil {
			s.logger().Warn("remove stopped",
				zap.Int("index", i),
				zap.Int64("material_id", m.ID),
				zap.Int("remaining", len(materials)-i),
			)
			var rej *lms.RejectedError
			if errors.As(err, &rej) {
				return &RemoveError{Name: m.Name, Message: rej.Message}
			}
			return fmt.Errorf("remove lesson %q: %w", m.Name, err)
		}
		s.report("Successfully removed lesson %s", m.Name)
	}
	return nil
}
