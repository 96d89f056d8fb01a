// Package render turns a SolutionRecord into a human-readable report.
package render

import (
	"fmt"
	"strings"

	"github.com/anthropics/tutor-engine/internal/domain"
)

// maxResources caps how many reference links a report shows.
const maxResources = 4

// Format renders a solution record as a markdown report. Sections appear
// in a fixed order and empty sections are omitted; consumers rely on the
// layout, so it is never reordered.
func Format(rec domain.SolutionRecord) string {
	var out []string

	if rec.DetectedSubject != "" {
		out = append(out, fmt.Sprintf("**Subject: %s**\n", subjectTitle(rec.DetectedSubject)))
	}

	if len(rec.Solution) > 0 {
		out = append(out, "### Solution Steps:")
		for _, step := range rec.Solution {
			out = append(out, "- "+step)
		}
		out = append(out, "")
	}

	if len(rec.Explanation) > 0 {
		out = append(out, "### Explanation:")
		for _, exp := range rec.Explanation {
			out = append(out, "- "+exp)
		}
		out = append(out, "")
	}

	if rec.FinalAnswer != "" {
		out = append(out, fmt.Sprintf("### Final Answer:\n**%s**\n", rec.FinalAnswer))
	}

	if rec.Method != "" {
		out = append(out, "### Method: "+rec.Method)
	}

	if rec.WhyThisWorks != "" {
		out = append(out, "\n### Why This Works:\n"+rec.WhyThisWorks)
	}

	if rec.HowItIsPossible != "" {
		out = append(out, "\n### How It's Possible:\n"+rec.HowItIsPossible)
	}

	if len(rec.Reasons) > 0 {
		out = append(out, "\n### Reasons Behind:")
		for _, reason := range rec.Reasons {
			out = append(out, "- "+reason)
		}
	}

	if len(rec.Resources) > 0 {
		out = append(out, "\n### Verified Resources:")
		resources := rec.Resources
		if len(resources) > maxResources {
			resources = resources[:maxResources]
		}
		for _, r := range resources {
			out = append(out, fmt.Sprintf("- [%s](%s): %s", r.Name, r.URL, r.Description))
		}
	}

	return strings.Join(out, "\n")
}

// subjectTitle renders "social_science" as "Social Science".
func subjectTitle(s domain.Subject) string {
	words := strings.Split(string(s), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
