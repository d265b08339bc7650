// Package milestone генерирует пространства имен для записей о выполнении пререквизитов.
package milestone

import "fmt"

const EntranceExam = "ENTRANCE_EXAM"

// NamespaceChoices - допустимые пространства имен по символическому имени.
var NamespaceChoices = map[string]string{
	EntranceExam: "entrance_exams",
}

// GenerateNamespace возвращает "<courseKey>.entrance_exams" для пространства
// имен вступительного экзамена. Для любого другого значения ok == false.
func GenerateNamespace(namespace string, courseKey fmt.Stringer) (string, bool) {
	if !isChoice(namespace) {
		return "", false
	}

	switch namespace {
	case NamespaceChoices[EntranceExam]:
		return fmt.Sprintf("%s.%s", keyString(courseKey), NamespaceChoices[EntranceExam]), true
	default:
		return "", false
	}
}

func isChoice(namespace string) bool {
	for _, v := range NamespaceChoices {
		if v == namespace {
			return true
		}
	}
	return false
}

func keyString(k fmt.Stringer) string {
	if k == nil {
		return ""
	}
	return k.String()
}
