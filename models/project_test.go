package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() ProjectInput {
	return ProjectInput{
		Title:       "Villa A",
		Description: "Ten characters minimum",
		Thumbnail:   "https://x/t.jpg",
		Images:      []string{"https://x/1.jpg"},
		Tags:        []string{"résidentiel"},
	}
}

func TestProjectInputValidate_FirstFailingField(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*ProjectInput)
		expected string
	}{
		{
			name:     "empty title",
			mutate:   func(in *ProjectInput) { in.Title = "" },
			expected: "title required",
		},
		{
			name:     "whitespace title",
			mutate:   func(in *ProjectInput) { in.Title = "   " },
			expected: "title required",
		},
		{
			name:     "blank description",
			mutate:   func(in *ProjectInput) { in.Description = "\t" },
			expected: "description required",
		},
		{
			name:     "blank thumbnail",
			mutate:   func(in *ProjectInput) { in.Thumbnail = " " },
			expected: "thumbnail required",
		},
		{
			name:     "images only blanks",
			mutate:   func(in *ProjectInput) { in.Images = []string{"", "  "} },
			expected: "images required",
		},
		{
			name:     "no tags",
			mutate:   func(in *ProjectInput) { in.Tags = nil },
			expected: "tags required",
		},
		{
			name: "title checked before everything else",
			mutate: func(in *ProjectInput) {
				in.Title = ""
				in.Description = ""
				in.Tags = nil
			},
			expected: "title required",
		},
		{
			name: "images checked before tags",
			mutate: func(in *ProjectInput) {
				in.Images = nil
				in.Tags = []string{" "}
			},
			expected: "images required",
		},
		{
			name:     "title too long",
			mutate:   func(in *ProjectInput) { in.Title = strings.Repeat("a", MaxTitleLength+1) },
			expected: "title must be at most 200 characters",
		},
		{
			name:     "description too short",
			mutate:   func(in *ProjectInput) { in.Description = "short" },
			expected: "description must be at least 10 characters",
		},
		{
			name:     "unknown status",
			mutate:   func(in *ProjectInput) { in.Status = "Archivé" },
			expected: "status must be one of En cours, Complété, Proposé",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			errs := in.Validate()
			require.NotEmpty(t, errs)
			assert.Equal(t, tt.expected, errs[0].Message)
		})
	}
}

func TestProjectInputValidate_ReportsEveryField(t *testing.T) {
	errs := ProjectInput{}.Validate()

	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.Equal(t, []string{"title", "description", "thumbnail", "images", "tags"}, fields)
}

func TestProjectInputValidate_Valid(t *testing.T) {
	assert.Empty(t, validInput().Validate())

	in := validInput()
	in.Title = strings.Repeat("é", MaxTitleLength)
	assert.Empty(t, in.Validate(), "length is counted in characters, not bytes")
}

func TestProjectInputNormalize(t *testing.T) {
	in := ProjectInput{
		Title:       "  Villa A ",
		Date:        " 2024 ",
		Tags:        []string{" résidentiel", "", "villa "},
		Description: " Ten characters minimum ",
		Thumbnail:   " https://x/t.jpg",
		Images:      []string{"https://x/1.jpg", "  ", "https://x/2.jpg"},
		Location:    " Tunis ",
	}

	p := in.Normalize()

	assert.Equal(t, "Villa A", p.Title)
	assert.Equal(t, "2024", p.Date)
	assert.Equal(t, []string{"résidentiel", "villa"}, p.Tags)
	assert.Equal(t, "Ten characters minimum", p.Description)
	assert.Equal(t, "https://x/t.jpg", p.Thumbnail)
	assert.Equal(t, []string{"https://x/1.jpg", "https://x/2.jpg"}, p.Images)
	assert.Equal(t, "Tunis", p.Location)
	assert.Equal(t, "", p.AreaLabel)
	assert.Equal(t, "", p.Program)
	assert.Equal(t, StatusInProgress, p.Status)
	assert.Empty(t, p.ID)
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected Status
		wantErr  bool
	}{
		{input: "", expected: StatusInProgress},
		{input: "En cours", expected: StatusInProgress},
		{input: "Complété", expected: StatusCompleted},
		{input: " Proposé ", expected: StatusProposed},
		{input: "complété", wantErr: true},
		{input: "Done", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s, err := ParseStatus(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, s)
		})
	}
}

func TestSplitTagsAndLines(t *testing.T) {
	assert.Equal(t, []string{"résidentiel", "villa", "moderne"}, SplitTags("résidentiel, villa,,  moderne "))
	assert.Empty(t, SplitTags(" , "))

	assert.Equal(t,
		[]string{"https://x/1.jpg", "https://x/2.jpg"},
		SplitLines("https://x/1.jpg\r\n\n https://x/2.jpg \n"))
}

func TestInputFromRoundTrip(t *testing.T) {
	p := validInput().Normalize()
	p.ID = "abc"

	again := InputFrom(p).Normalize()
	again.ID = p.ID
	assert.Equal(t, p, again)
}

func TestValidationError(t *testing.T) {
	assert.Nil(t, NewValidationError(nil))

	err := NewValidationError([]FieldError{
		{Field: "title", Message: "title required"},
		{Field: "tags", Message: "tags required"},
	})
	require.Error(t, err)
	assert.Equal(t, "title required", err.Error())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []FieldError{
		{Field: "title", Message: "title required"},
		{Field: "tags", Message: "tags required"},
	}, verr.Fields)
}

func TestCategoriesAndFilter(t *testing.T) {
	projects := []Project{
		{ID: "1", Tags: []string{"résidentiel", "villa"}},
		{ID: "2", Tags: []string{"commercial"}},
		{ID: "3", Tags: []string{"villa"}},
	}

	assert.Equal(t, []string{"tous", "résidentiel", "villa", "commercial"}, Categories(projects))

	assert.Len(t, FilterByTag(projects, ""), 3)
	assert.Len(t, FilterByTag(projects, AllCategories), 3)

	villas := FilterByTag(projects, "villa")
	require.Len(t, villas, 2)
	assert.Equal(t, "1", villas[0].ID)
	assert.Equal(t, "3", villas[1].ID)

	assert.Empty(t, FilterByTag(projects, "industriel"))
}
