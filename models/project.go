package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MaxTitleLength       = 200
	MinDescriptionLength = 10
)

// Status is the workflow state of a project. Only the three values below exist.
type Status string

const (
	StatusInProgress Status = "En cours"
	StatusCompleted  Status = "Complété"
	StatusProposed   Status = "Proposé"
)

// Statuses lists every status in display order.
func Statuses() []Status {
	return []Status{StatusInProgress, StatusCompleted, StatusProposed}
}

// ParseStatus maps raw input to a Status. Blank input yields StatusInProgress.
func ParseStatus(raw string) (Status, error) {
	switch s := Status(strings.TrimSpace(raw)); s {
	case "":
		return StatusInProgress, nil
	case StatusInProgress, StatusCompleted, StatusProposed:
		return s, nil
	default:
		return "", fmt.Errorf("unknown status %q", raw)
	}
}

// Project is a portfolio entry shown on the public site.
// ID, CreatedAt and UpdatedAt are assigned by the store.
type Project struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Date        string    `json:"date" db:"date"`
	Tags        []string  `json:"tags" db:"tags"`
	Description string    `json:"description" db:"description"`
	Thumbnail   string    `json:"thumbnail" db:"thumbnail"`
	Images      []string  `json:"images" db:"images"`
	Location    string    `json:"location" db:"location"`
	AreaLabel   string    `json:"areaLabel" db:"area_label"`
	Program     string    `json:"program" db:"program"`
	Status      Status    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// ProjectInput is the payload for creating or replacing a project.
type ProjectInput struct {
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
	Thumbnail   string   `json:"thumbnail"`
	Images      []string `json:"images"`
	Location    string   `json:"location"`
	AreaLabel   string   `json:"areaLabel"`
	Program     string   `json:"program"`
	Status      string   `json:"status"`
}

// Validate returns every failing field. Presence checks come first, in the
// order title, description, thumbnail, images, tags, so the first entry is
// the one reported to the user.
func (in ProjectInput) Validate() []FieldError {
	var errs []FieldError

	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)

	if title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "title required"})
	}
	if description == "" {
		errs = append(errs, FieldError{Field: "description", Message: "description required"})
	}
	if strings.TrimSpace(in.Thumbnail) == "" {
		errs = append(errs, FieldError{Field: "thumbnail", Message: "thumbnail required"})
	}
	if len(CleanList(in.Images)) == 0 {
		errs = append(errs, FieldError{Field: "images", Message: "images required"})
	}
	if len(CleanList(in.Tags)) == 0 {
		errs = append(errs, FieldError{Field: "tags", Message: "tags required"})
	}

	if utf8.RuneCountInString(title) > MaxTitleLength {
		errs = append(errs, FieldError{
			Field:   "title",
			Message: fmt.Sprintf("title must be at most %d characters", MaxTitleLength),
		})
	}
	if description != "" && utf8.RuneCountInString(description) < MinDescriptionLength {
		errs = append(errs, FieldError{
			Field:   "description",
			Message: fmt.Sprintf("description must be at least %d characters", MinDescriptionLength),
		})
	}
	if _, err := ParseStatus(in.Status); err != nil {
		errs = append(errs, FieldError{Field: "status", Message: "status must be one of En cours, Complété, Proposé"})
	}

	return errs
}

// Normalize returns the persistable form of the input: strings trimmed,
// blank list entries dropped, defaults applied. Call Validate first.
func (in ProjectInput) Normalize() Project {
	status, err := ParseStatus(in.Status)
	if err != nil {
		status = StatusInProgress
	}

	return Project{
		Title:       strings.TrimSpace(in.Title),
		Date:        strings.TrimSpace(in.Date),
		Tags:        CleanList(in.Tags),
		Description: strings.TrimSpace(in.Description),
		Thumbnail:   strings.TrimSpace(in.Thumbnail),
		Images:      CleanList(in.Images),
		Location:    strings.TrimSpace(in.Location),
		AreaLabel:   strings.TrimSpace(in.AreaLabel),
		Program:     strings.TrimSpace(in.Program),
		Status:      status,
	}
}

// InputFrom converts a stored project back into an editable input.
func InputFrom(p Project) ProjectInput {
	return ProjectInput{
		Title:       p.Title,
		Date:        p.Date,
		Tags:        append([]string(nil), p.Tags...),
		Description: p.Description,
		Thumbnail:   p.Thumbnail,
		Images:      append([]string(nil), p.Images...),
		Location:    p.Location,
		AreaLabel:   p.AreaLabel,
		Program:     p.Program,
		Status:      string(p.Status),
	}
}

// CleanList trims every entry and drops the blank ones, keeping order.
func CleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// SplitTags parses the comma-separated tag field of the admin form.
func SplitTags(raw string) []string {
	return CleanList(strings.Split(raw, ","))
}

// SplitLines parses a newline-separated field such as the image URL list.
func SplitLines(raw string) []string {
	return CleanList(strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n"))
}

// ProjectsResponse is the standard response format for project listings.
type ProjectsResponse struct {
	Projects []Project `json:"projects"`
	Total    int       `json:"total"`
}
