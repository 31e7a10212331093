package render

import (
	"github.com/fundboard/fundboard/internal/dao"
	"github.com/fundboard/fundboard/internal/model1"
)

// Projects renders the submitted funding projects.
type Projects struct {
	Base
}

// Name returns the view name.
func (*Projects) Name() string { return "projects" }

// Title returns the view title.
func (*Projects) Title() string { return "Projects" }

// Endpoint returns the projects endpoint.
func (*Projects) Endpoint() string { return "/super-admin/projects" }

// SearchColumn returns the filtered column.
func (*Projects) SearchColumn() string { return "title_search" }

// FilterPlaceholder returns the filter placeholder.
func (*Projects) FilterPlaceholder() string { return "Search by title..." }

// Columns returns the project columns.
func (*Projects) Columns() model1.Columns[dao.Record] {
	return model1.Columns[dao.Record]{
		SelectCol(),
		{
			ID:       "title_search",
			Header:   "PROJECT",
			Accessor: func(r dao.Record) any { return ProjectTitle(r) },
			Cell:     func(r dao.Record) string { return Missing(ProjectTitle(r)) },
		},
		{
			ID:       "parent_name",
			Header:   "SUBMITTER",
			Accessor: func(r dao.Record) any { return submitter(r) },
		},
		{
			ID:     "parent_email",
			Header: "EMAIL",
			Accessor: func(r dao.Record) any {
				return FirstOf(r, "parent_email", "parentEmail", "submitter_email", "email")
			},
		},
		{
			ID:     "parent_phone",
			Header: "PHONE",
			Accessor: func(r dao.Record) any {
				return FirstOf(r, "parent_phone", "parentPhone", "submitter_phone", "phone_number", "phone")
			},
			Attrs: model1.Attrs{Wide: true},
		},
		DateCol("created_at", "SUBMITTED"),
	}
}

// ProjectTitle returns the first title field a project carries.
func ProjectTitle(r dao.Record) string {
	return FirstOf(r, "title_search", "title", "project_name", "name", "project_title")
}

func submitter(r dao.Record) string {
	if s := FirstOf(r, "parent_name", "parentName", "submitter_name"); s != "" {
		return s
	}
	if s := FullName(r); s != "" {
		return s
	}
	return FirstOf(r, "parent.first_name")
}
