// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"sort"
	"strings"

	"github.com/pdiddy/arxiv-scout/pkg/types"
)

// categoryNames maps the common arXiv category codes to display names.
// The table is a build-time constant and never mutated at runtime.
var categoryNames = map[string]string{
	// Computer Science
	"cs.AI": "Artificial Intelligence",
	"cs.CL": "Computation and Language",
	"cs.CV": "Computer Vision and Pattern Recognition",
	"cs.LG": "Machine Learning",
	"cs.NE": "Neural and Evolutionary Computing",
	"cs.RO": "Robotics",
	"cs.SE": "Software Engineering",
	"cs.DS": "Data Structures and Algorithms",
	"cs.DB": "Databases",
	"cs.DC": "Distributed, Parallel, and Cluster Computing",
	"cs.CR": "Cryptography and Security",
	"cs.HC": "Human-Computer Interaction",
	"cs.IR": "Information Retrieval",
	"cs.IT": "Information Theory",
	"cs.MA": "Multiagent Systems",
	"cs.PL": "Programming Languages",
	// Statistics
	"stat.ML": "Machine Learning (Statistics)",
	"stat.TH": "Statistics Theory",
	"stat.ME": "Methodology",
	// Mathematics
	"math.OC": "Optimization and Control",
	"math.ST": "Statistics Theory",
	"math.PR": "Probability",
	"math.NA": "Numerical Analysis",
	// Physics
	"quant-ph": "Quantum Physics",
	"cond-mat": "Condensed Matter",
	"hep-th":   "High Energy Physics - Theory",
	// Electrical Engineering
	"eess.SP": "Signal Processing",
	"eess.IV": "Image and Video Processing",
	"eess.AS": "Audio and Speech Processing",
	// Quantitative Biology
	"q-bio.NC": "Neurons and Cognition",
	"q-bio.QM": "Quantitative Methods",
	// Quantitative Finance
	"q-fin.ST": "Statistical Finance",
	"q-fin.CP": "Computational Finance",
}

// sortTokens maps sort option names to the remote order parameter.
var sortTokens = map[string]string{
	"relevance":        "",
	"date_desc":        "-announced_date_first",
	"date_asc":         "announced_date_first",
	"submissions_desc": "-submittedDate",
	"submissions_asc":  "submittedDate",
}

// SortToken returns the remote sort token for a sort option name.
// Unrecognized names degrade silently to "" (relevance ordering).
func SortToken(name string) string {
	return sortTokens[name]
}

// groupPrefixes maps category code prefixes to group labels, checked in
// order. Codes matching none of them fall into the "Physics" catch-all,
// an approximation that holds for the built-in table.
var groupPrefixes = []struct {
	prefix string
	group  string
}{
	{"cs.", "Computer Science"},
	{"stat.", "Statistics"},
	{"math.", "Mathematics"},
	{"eess.", "Electrical Engineering"},
	{"q-bio.", "Quantitative Biology"},
	{"q-fin.", "Quantitative Finance"},
}

// GroupFor returns the group label for a category code by prefix.
func GroupFor(code string) string {
	for _, gp := range groupPrefixes {
		if strings.HasPrefix(code, gp.prefix) {
			return gp.group
		}
	}
	return "Physics"
}

// CategoryName returns the display name for a code, or the code itself
// when it is not in the built-in table.
func CategoryName(code string) string {
	if name, ok := categoryNames[code]; ok {
		return name
	}
	return code
}

// allCategories is built once at package initialization and read-only
// afterwards, so concurrent readers need no synchronization.
var allCategories = buildCategories()

func buildCategories() []types.Category {
	cats := make([]types.Category, 0, len(categoryNames))
	for code, name := range categoryNames {
		cats = append(cats, types.Category{Code: code, Name: name, Group: GroupFor(code)})
	}
	sort.Slice(cats, func(i, j int) bool {
		if cats[i].Group != cats[j].Group {
			return cats[i].Group < cats[j].Group
		}
		return cats[i].Code < cats[j].Code
	})
	return cats
}

// Categories returns all known categories sorted by (group, code). The
// returned slice is shared; callers must not modify it.
func Categories() []types.Category {
	return allCategories
}
