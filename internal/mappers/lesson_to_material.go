package mappers

import (
	"strings"

	"lms-records/internal/domain"
	"lms-records/internal/lms"
)

const (
	TypeVideo = "video"
	TypeOther = "other"

	// materials are attached to a group, not to the whole module
	materialCategory = "group"
)

// DeliveryType classifies a recording link: YouTube links (youtube.com,
// youtu.be) are videos, anything else is "other".
func DeliveryType(link string) string {
	if strings.Contains(link, "youtu") {
		return TypeVideo
	}
	return TypeOther
}

func LessonToMaterial(l domain.Lesson, moduleID, groupID int64) lms.CreateMaterialRequest {
	return lms.CreateMaterialRequest{
		Category: materialCategory,
		Type:     DeliveryType(l.Link),
		ModuleID: moduleID,
		GroupID:  groupID,
		Name:     l.Name,
		Link:     l.Link,
	}
}
