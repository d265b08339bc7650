package service

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// \s в RE2 - только ASCII, поэтому разделители Unicode добавлены через \p{Z}
	slugDisallowed = regexp.MustCompile(`[^\p{L}\p{M}\p{N}_\s\p{Z}-]`)
	slugSeparators = regexp.MustCompile(`[-\s\p{Z}]+`)
)

// Slugify превращает имя команды в идентификатор: убирает всё, кроме букв,
// цифр, '_', пробелов и дефисов, приводит к нижнему регистру и схлопывает
// пробелы и дефисы в один '-'. Буквы любых алфавитов сохраняются.
func Slugify(value string) string {
	value = norm.NFKC.String(value)
	value = slugDisallowed.ReplaceAllString(value, "")
	value = strings.ToLower(strings.TrimSpace(value))
	return slugSeparators.ReplaceAllString(value, "-")
}

// UniqueTeamID возвращает candidate, если его нет среди existing, иначе
// первый свободный вариант candidate-2, candidate-3, ...
func UniqueTeamID(candidate string, existing []string) string {
	taken := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		taken[id] = struct{}{}
	}

	if _, ok := taken[candidate]; !ok {
		return candidate
	}

	for suffix := 2; ; suffix++ {
		id := candidate + "-" + strconv.Itoa(suffix)
		if _, ok := taken[id]; !ok {
			return id
		}
	}
}
