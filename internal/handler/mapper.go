package handler

import (
	"time"

	"github.com/bagdasarian/course-teams/internal/domain"
)

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func domainTeamToHTTP(team *domain.Team) TeamResponse {
	var members []TeamMemberResponse
	if team.Members != nil {
		members = make([]TeamMemberResponse, 0, len(team.Members))
		for _, member := range team.Members {
			members = append(members, TeamMemberResponse{
				UserID:     member.UserID,
				Username:   member.Username,
				DateJoined: formatTime(member.DateJoined),
			})
		}
	}

	return TeamResponse{
		TeamID:      team.TeamID,
		Name:        team.Name,
		IsActive:    team.IsActive,
		CourseID:    team.CourseID.String(),
		TopicID:     team.TopicID,
		DateCreated: formatTime(team.DateCreated),
		Description: team.Description,
		Country:     team.Country,
		Language:    team.Language,
		Members:     members,
	}
}

func domainTeamsToHTTP(teams []*domain.Team) []TeamResponse {
	result := make([]TeamResponse, 0, len(teams))
	for _, team := range teams {
		result = append(result, domainTeamToHTTP(team))
	}
	return result
}

func domainMembershipToHTTP(m *domain.Membership) MembershipResponse {
	return MembershipResponse{
		UserID:     m.UserID,
		TeamID:     m.TeamID,
		DateJoined: formatTime(m.DateJoined),
	}
}

func domainMembershipsToHTTP(memberships []*domain.Membership) []MembershipResponse {
	result := make([]MembershipResponse, 0, len(memberships))
	for _, m := range memberships {
		result = append(result, domainMembershipToHTTP(m))
	}
	return result
}

func domainUserToHTTP(user *domain.User) UserResponse {
	return UserResponse{
		UserID:   user.ID,
		Username: user.Username,
	}
}

func domainStatsToHTTP(stats []*domain.TeamStat) []TeamStatResponse {
	result := make([]TeamStatResponse, 0, len(stats))
	for _, s := range stats {
		result = append(result, TeamStatResponse{
			TeamID:       s.TeamID,
			Name:         s.Name,
			MemberCount:  s.MemberCount,
			LastActivity: formatTime(s.LastActivity),
		})
	}
	return result
}
