package render

import (
	"strings"

	"github.com/derailed/tcell/v2"
	"github.com/fundboard/fundboard/internal/dao"
	"github.com/fundboard/fundboard/internal/model1"
)

// Offer states.
const (
	OfferDraft     = "draft"
	OfferPublished = "published"
	OfferClosed    = "closed"
)

// Offers renders the calls for projects.
type Offers struct {
	Base
}

// Name returns the view name.
func (*Offers) Name() string { return "offers" }

// Title returns the view title.
func (*Offers) Title() string { return "Offers" }

// Endpoint returns the offers endpoint.
func (*Offers) Endpoint() string { return "/offers" }

// SearchColumn returns the filtered column.
func (*Offers) SearchColumn() string { return "title" }

// FilterPlaceholder returns the filter placeholder.
func (*Offers) FilterPlaceholder() string { return "Search an offer..." }

// Columns returns the offer columns.
func (*Offers) Columns() model1.Columns[dao.Record] {
	return model1.Columns[dao.Record]{
		SelectCol(),
		{
			ID:       "title",
			Header:   "OFFER",
			Accessor: Field("title"),
			Cell:     func(r dao.Record) string { return Missing(r.Text("title")) },
		},
		{
			ID:       "sector",
			Header:   "SECTOR",
			Accessor: func(r dao.Record) any { return NA(FirstOf(r, "sector", "sectors")) },
		},
		{
			ID:       "status",
			Header:   "STATUS",
			Accessor: func(r dao.Record) any { return OfferStatus(r) },
		},
		DateCol("launch_date", "LAUNCH"),
		DateCol("deadline_date", "DEADLINE"),
		{
			ID:       "amount",
			Header:   "AMOUNT",
			Accessor: func(r dao.Record) any { return offerAmount(r) },
			Cell:     func(r dao.Record) string { return Money(offerAmount(r)) },
			Attrs:    model1.Attrs{Numeric: true},
		},
		{
			ID:       "description",
			Header:   "DESCRIPTION",
			Accessor: Field("description"),
			Attrs:    model1.Attrs{Wide: true},
		},
	}
}

// RowColor grays out closed offers and flags drafts.
func (*Offers) RowColor(r dao.Record) tcell.Color {
	switch OfferStatus(r) {
	case OfferClosed:
		return model1.KillColor
	case OfferDraft:
		return model1.PendingColor
	default:
		return model1.StdColor
	}
}

// OfferStatus returns the offer state, draft when unset.
func OfferStatus(r dao.Record) string {
	if s := strings.ToLower(r.Text("status")); s != "" {
		return s
	}
	return OfferDraft
}

func offerAmount(r dao.Record) any {
	for _, k := range []string{"amount", "funding_amount"} {
		if f, ok := AsFloat(r.Get(k)); ok {
			return f
		}
	}
	return nil
}

// Submissions renders the projects submitted to one offer.
type Submissions struct {
	Base
}

// Name returns the view name.
func (*Submissions) Name() string { return "submissions" }

// Title returns the view title.
func (*Submissions) Title() string { return "Submissions" }

// Endpoint returns the submissions endpoint of the offer given by --param offer_id=ID.
func (*Submissions) Endpoint() string { return "/offers/{offer_id}/submissions" }

// SearchColumn returns the filtered column.
func (*Submissions) SearchColumn() string { return "project_title" }

// FilterPlaceholder returns the filter placeholder.
func (*Submissions) FilterPlaceholder() string { return "Search a project..." }

// Columns returns the submission columns.
func (*Submissions) Columns() model1.Columns[dao.Record] {
	return model1.Columns[dao.Record]{
		SelectCol(),
		{
			ID:       "project_title",
			Header:   "PROJECT",
			Accessor: Field("project_title"),
			Cell:     func(r dao.Record) string { return Missing(r.Text("project_title")) },
		},
		{
			ID:       "submitter",
			Header:   "SUBMITTER",
			Accessor: func(r dao.Record) any { return FullName(r) },
		},
		FieldCol("phone_number", "PHONE"),
		{
			ID:       "status",
			Header:   "STATUS",
			Accessor: func(r dao.Record) any { return SubmissionStatus(r) },
		},
		DateCol("submitted_at", "SUBMITTED"),
		{
			ID:       "email",
			Header:   "EMAIL",
			Accessor: Field("email"),
			Attrs:    model1.Attrs{Wide: true},
		},
	}
}

// SubmissionStatus returns the submission state, submitted when unset.
func SubmissionStatus(r dao.Record) string {
	if s := FirstOf(r, "status"); s != "" {
		return strings.ToLower(s)
	}
	return "submitted"
}
