package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateTeamRequest struct {
	Name        string `json:"name"`
	CourseID    string `json:"course_id"`
	Description string `json:"description"`
	TopicID     string `json:"topic_id"`
	Country     string `json:"country"`
	Language    string `json:"language"`
}

type TeamMemberResponse struct {
	UserID     int64  `json:"user_id"`
	Username   string `json:"username"`
	DateJoined string `json:"date_joined"`
}

type TeamResponse struct {
	TeamID      string               `json:"team_id"`
	Name        string               `json:"name"`
	IsActive    bool                 `json:"is_active"`
	CourseID    string               `json:"course_id"`
	TopicID     string               `json:"topic_id"`
	DateCreated string               `json:"date_created"`
	Description string               `json:"description"`
	Country     string               `json:"country"`
	Language    string               `json:"language"`
	Members     []TeamMemberResponse `json:"members,omitempty"`
}

type CreateTeamResponse struct {
	Team TeamResponse `json:"team"`
}

type TeamsResponse struct {
	Teams []TeamResponse `json:"teams"`
}

type AddMemberRequest struct {
	UserID int64 `json:"user_id"`
}

type MembershipResponse struct {
	UserID     int64  `json:"user_id"`
	TeamID     string `json:"team_id"`
	DateJoined string `json:"date_joined"`
}

type AddMemberResponse struct {
	Membership MembershipResponse `json:"membership"`
}

type MembershipsResponse struct {
	Memberships []MembershipResponse `json:"memberships"`
}

type CreateUserRequest struct {
	Username string `json:"username"`
}

type UserResponse struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

type TeamStatResponse struct {
	TeamID       string `json:"team_id"`
	Name         string `json:"name"`
	MemberCount  int    `json:"member_count"`
	LastActivity string `json:"last_activity"`
}

type StatsResponse struct {
	CourseID string             `json:"course_id"`
	Teams    []TeamStatResponse `json:"teams"`
}

type NamespaceResponse struct {
	Namespace string `json:"namespace"`
}
