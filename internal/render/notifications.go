package render

import (
	"github.com/derailed/tcell/v2"
	"github.com/fundboard/fundboard/internal/dao"
	"github.com/fundboard/fundboard/internal/model1"
)

// Notifications renders the signed in user's inbox.
type Notifications struct {
	Base
}

// Name returns the view name.
func (*Notifications) Name() string { return "notifications" }

// Title returns the view title.
func (*Notifications) Title() string { return "Notifications" }

// Endpoint returns the notifications endpoint.
func (*Notifications) Endpoint() string { return "/notifications" }

// SearchColumn returns the filtered column.
func (*Notifications) SearchColumn() string { return "subject" }

// FilterPlaceholder returns the filter placeholder.
func (*Notifications) FilterPlaceholder() string { return "Search a subject..." }

// Columns returns the notification columns.
func (*Notifications) Columns() model1.Columns[dao.Record] {
	return model1.Columns[dao.Record]{
		SelectCol(),
		{
			ID:       "subject",
			Header:   "SUBJECT",
			Accessor: Field("subject"),
			Cell:     func(r dao.Record) string { return Missing(r.Text("subject")) },
		},
		{
			ID:       "type",
			Header:   "TYPE",
			Accessor: func(r dao.Record) any { return NotificationKind(r) },
		},
		{
			ID:       "is_read",
			Header:   "READ",
			Accessor: func(r dao.Record) any { return Truthy(r.Get("is_read")) },
			Cell:     func(r dao.Record) string { return YesNo(r.Get("is_read")) },
		},
		DateCol("created_at", "RECEIVED"),
		{
			ID:       "content",
			Header:   "CONTENT",
			Accessor: Field("content"),
			Attrs:    model1.Attrs{Wide: true},
		},
	}
}

// RowColor flags unread notifications.
func (*Notifications) RowColor(r dao.Record) tcell.Color {
	if !Truthy(r.Get("is_read")) {
		return model1.PendingColor
	}
	return model1.StdColor
}

// NotificationKind returns official for broadcasts to every school or user,
// else the notification type.
func NotificationKind(r dao.Record) string {
	switch r.Text("receiver_type") {
	case "all_schools", "all_users":
		return "official"
	}
	if r.Text("type") == "broadcast" {
		return "official"
	}
	return NA(r.Text("type"))
}
