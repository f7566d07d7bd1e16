package doxcv

import (
	"context"
	"strings"

	"github.com/alnah/go-doxcv/internal/cv"
	"github.com/alnah/go-doxcv/internal/dox"
	"github.com/alnah/go-doxcv/internal/render/web"
)

// Updater rewrites the marker-delimited regions of a static HTML résumé
// page from a DOX source. Updating is a pure string transform: running it
// twice over its own output converges for unchanged source input.
type Updater struct {
	free *web.FreeTextConverter
}

// NewUpdater creates an Updater.
func NewUpdater() *Updater {
	return &Updater{free: web.NewFreeTextConverter()}
}

// UpdateInput holds the inputs of one page update.
type UpdateInput struct {
	// Source is the full DOX document text.
	Source string
	// HTML is the current page content.
	HTML string
}

// UpdateResult holds the rewritten page. Missing lists the section keys
// whose marker pair was absent from the page; those regions were left
// untouched and callers report them as non-fatal warnings.
type UpdateResult struct {
	HTML    string
	Missing []string
}

// Update renders each section present in the source and splices it between
// the page's marker pairs. Sections absent from the source are skipped, so
// their regions keep their current content. The result ends with exactly
// one trailing newline.
func (u *Updater) Update(ctx context.Context, input UpdateInput) (*UpdateResult, error) {
	if input.Source == "" {
		return nil, ErrEmptySource
	}
	if input.HTML == "" {
		return nil, ErrEmptyHTML
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resume := cv.ParseResume(input.Source)
	sections := dox.Sections(input.Source)

	fragments := map[string]string{}
	if len(resume.Contact) > 0 {
		fragments[dox.KeyContact] = web.Contact(resume.Contact)
	}
	if resume.Summary != "" {
		fragments[dox.KeySummary] = u.free.ToHTML(resume.Summary)
	}
	if _, ok := sections[dox.KeySkills]; ok {
		fragments[dox.KeySkills] = web.Skills(resume.Skills, sections[dox.KeySkills])
	}
	if _, ok := sections[dox.KeyEducation]; ok {
		fragments[dox.KeyEducation] = web.Education(resume.Education, u.free)
	}
	if _, ok := sections[dox.KeyExperience]; ok {
		fragments[dox.KeyExperience] = web.Work(resume.Experience)
	}

	page := input.HTML
	var missing []string
	// Fixed order keeps warnings deterministic.
	for _, key := range []string{dox.KeyContact, dox.KeySummary, dox.KeySkills, dox.KeyEducation, dox.KeyExperience} {
		inner, ok := fragments[key]
		if !ok {
			continue
		}
		region, ok := web.RegionFor(key)
		if !ok {
			continue
		}
		var replaced bool
		page, replaced = web.ReplaceRegion(page, region, inner)
		if !replaced {
			missing = append(missing, key)
		}
	}

	return &UpdateResult{
		HTML:    strings.TrimRight(page, "\n") + "\n",
		Missing: missing,
	}, nil
}
