package lms

import "lms-records/internal/domain"

// LoginRequest is the body of POST /auth/login. URL is the admin panel page
// the login is made from; the LMS requires it.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	URL      string `json:"url"`
}

// TokenResponse is returned by both login and refresh.
type TokenResponse struct {
	Success      bool   `json:"success"`
	Error        string `json:"error"`
	RefreshToken string `json:"refreshToken"`
	AccessToken  string `json:"accessToken"`
}

// GenericResponse is the envelope every LMS response carries.
type GenericResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// CreateMaterialRequest creates one additional material in a group.
type CreateMaterialRequest struct {
	Category string `json:"category"`
	Type     string `json:"type"`
	ModuleID int64  `json:"moduleId"`
	GroupID  int64  `json:"groupId"`
	Name     string `json:"name"`
	Link     string `json:"link"`
}

// ListMaterialsResponse lists the materials of a group. Group is nil when the
// field is missing from the response.
type ListMaterialsResponse struct {
	Success bool                    `json:"success"`
	Error   string                  `json:"error"`
	Group   []domain.RemoteMaterial `json:"group"`
}

// DeleteMaterialRequest deletes one additional material.
type DeleteMaterialRequest struct {
	MaterialID int64 `json:"materialId"`
}
