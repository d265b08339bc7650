package domain

import "time"

// Team - команда внутри курса. TeamID выводится из Name один раз при создании.
type Team struct {
	ID          int
	TeamID      string
	Name        string
	IsActive    bool
	CourseID    CourseKey
	TopicID     string
	DateCreated time.Time
	Description string
	Country     string
	Language    string
	Members     []TeamMember
}

type TeamMember struct {
	UserID     int64
	Username   string
	DateJoined time.Time
}

// Membership - участие одного пользователя в одной команде.
// Пара (UserID, TeamID) уникальна.
type Membership struct {
	ID         int
	UserID     int64
	TeamID     string
	DateJoined time.Time
}

type TeamFilter struct {
	CourseID CourseKey
	TopicID  string
}

type TeamStat struct {
	TeamID       string
	Name         string
	MemberCount  int
	LastActivity time.Time
}
