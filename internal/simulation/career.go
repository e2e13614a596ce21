package simulation

import "strings"

func careerKey(careerPath string) string {
	return strings.ToLower(strings.TrimSpace(careerPath))
}

func lookupCareer[T any](m map[string]T, careerPath string) T {
	if v, ok := m[careerKey(careerPath)]; ok {
		return v
	}
	return m["ceo"]
}

// careerTitle flavours a template title for the learner's career path.
func careerTitle(r Rand, baseTitle, careerPath string) string {
	prefix := pick(r, lookupCareer(careerPrefixes, careerPath))
	variations := []string{
		prefix + " " + baseTitle,
		baseTitle,
		baseTitle + " - " + strings.ToUpper(careerPath) + " Perspective",
		baseTitle + ": A " + careerPath + " Challenge",
	}
	return pick(r, variations)
}
