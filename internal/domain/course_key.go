package domain

import (
	"strings"
)

const courseKeyPrefix = "course-v1:"

// CourseKey - идентификатор курса в формате course-v1:ORG+COURSE+RUN
// или устаревшем ORG/COURSE/RUN.
type CourseKey string

func (k CourseKey) String() string {
	return string(k)
}

// Parts возвращает org, course и run. ok == false, если ключ некорректен.
func (k CourseKey) Parts() (org, course, run string, ok bool) {
	s := string(k)

	var parts []string
	if rest, found := strings.CutPrefix(s, courseKeyPrefix); found {
		parts = strings.Split(rest, "+")
	} else {
		parts = strings.Split(s, "/")
	}

	if len(parts) != 3 {
		return "", "", "", false
	}
	for _, p := range parts {
		if p == "" || strings.ContainsAny(p, " \t\n/+") {
			return "", "", "", false
		}
	}

	return parts[0], parts[1], parts[2], true
}

func (k CourseKey) Valid() bool {
	_, _, _, ok := k.Parts()
	return ok
}

func ParseCourseKey(s string) (CourseKey, error) {
	k := CourseKey(strings.TrimSpace(s))
	if !k.Valid() {
		return "", NewInvalidArgumentError("invalid course key: %q", s)
	}
	return k, nil
}
