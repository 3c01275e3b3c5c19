package models

// AllCategories is the pseudo-tag that disables gallery filtering.
const AllCategories = "tous"

// Categories returns AllCategories followed by every distinct tag,
// in order of first appearance.
func Categories(projects []Project) []string {
	seen := map[string]bool{}
	out := []string{AllCategories}
	for _, p := range projects {
		for _, tag := range p.Tags {
			if !seen[tag] {
				seen[tag] = true
				out = append(out, tag)
			}
		}
	}
	return out
}

// FilterByTag keeps the projects carrying tag. An empty tag or
// AllCategories returns the input unchanged.
func FilterByTag(projects []Project, tag string) []Project {
	if tag == "" || tag == AllCategories {
		return projects
	}
	out := []Project{}
	for _, p := range projects {
		for _, t := range p.Tags {
			if t == tag {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
