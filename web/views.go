package web

import (
	"strings"

	"saaarchi/models"
)

const placeholderImage = "/placeholder.svg"

// GalleryPage feeds the home and listing pages.
type GalleryPage struct {
	Title      string
	Projects   []models.Project
	Categories []string
	Selected   string
	LoadFailed bool
	Contact    ContactForm
}

// ContactForm carries the contact form state across a failed submission.
type ContactForm struct {
	Values  models.ContactRequest
	Success string
	Error   string
}

// NewGalleryPage filters projects by the selected tag after the full fetch.
func NewGalleryPage(title string, projects []models.Project, selected string) GalleryPage {
	selected = strings.TrimSpace(selected)
	if selected == "" {
		selected = models.AllCategories
	}
	return GalleryPage{
		Title:      title,
		Projects:   models.FilterByTag(projects, selected),
		Categories: models.Categories(projects),
		Selected:   selected,
	}
}

// DetailPage feeds the project detail page.
type DetailPage struct {
	Project   models.Project
	Hero      string
	Highlight string
	Rest      []string
}

// NewDetailPage picks the hero and highlight images. The highlight is the
// second image, else the first, else the hero; it is not repeated in Rest.
func NewDetailPage(p models.Project) DetailPage {
	hero := p.Thumbnail
	if hero == "" && len(p.Images) > 0 {
		hero = p.Images[0]
	}
	if hero == "" {
		hero = placeholderImage
	}

	highlight := hero
	switch {
	case len(p.Images) > 1:
		highlight = p.Images[1]
	case len(p.Images) == 1:
		highlight = p.Images[0]
	}

	rest := []string{}
	for _, img := range p.Images {
		if img != highlight {
			rest = append(rest, img)
		}
	}

	return DetailPage{Project: p, Hero: hero, Highlight: highlight, Rest: rest}
}

// DashboardPage feeds the admin dashboard.
type DashboardPage struct {
	Projects   []models.Project
	LoadFailed bool
	Form       ProjectForm
	User       models.Identity
}

// ProjectForm is the create/edit form of the dashboard. Tags and Images hold
// the raw comma- and newline-separated text.
type ProjectForm struct {
	ID          string `form:"-"`
	Title       string `form:"title"`
	Date        string `form:"date"`
	Tags        string `form:"tags"`
	Description string `form:"description"`
	Thumbnail   string `form:"thumbnail"`
	Images      string `form:"images"`
	Location    string `form:"location"`
	AreaLabel   string `form:"areaLabel"`
	Program     string `form:"program"`
	Status      string `form:"status"`
	Error       string `form:"-"`
}

// Editing reports whether the form targets an existing project.
func (f ProjectForm) Editing() bool {
	return f.ID != ""
}

// EditForm prefills the form from a stored project.
func EditForm(p models.Project) ProjectForm {
	in := models.InputFrom(p)
	return ProjectForm{
		ID:          p.ID,
		Title:       in.Title,
		Date:        in.Date,
		Tags:        strings.Join(in.Tags, ", "),
		Description: in.Description,
		Thumbnail:   in.Thumbnail,
		Images:      strings.Join(in.Images, "\n"),
		Location:    in.Location,
		AreaLabel:   in.AreaLabel,
		Program:     in.Program,
		Status:      in.Status,
	}
}

// Input converts the submitted form into a project payload.
func (f ProjectForm) Input() models.ProjectInput {
	return models.ProjectInput{
		Title:       f.Title,
		Date:        f.Date,
		Tags:        models.SplitTags(f.Tags),
		Description: f.Description,
		Thumbnail:   f.Thumbnail,
		Images:      models.SplitLines(f.Images),
		Location:    f.Location,
		AreaLabel:   f.AreaLabel,
		Program:     f.Program,
		Status:      f.Status,
	}
}

// LoginPage feeds the login form.
type LoginPage struct {
	Email       string
	CallbackURL string
	Error       string
}

// ErrorPage is the neutral not-found / loading-failed page.
type ErrorPage struct {
	Title   string
	Message string
}
