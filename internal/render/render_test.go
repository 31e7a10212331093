package render

import (
	"testing"
	"time"

	"github.com/derailed/tcell/v2"
	"github.com/fundboard/fundboard/internal/dao"
	"github.com/fundboard/fundboard/internal/model1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRendererFor(t *testing.T) {
	for _, n := range Names() {
		r, err := RendererFor(n)
		require.NoError(t, err)
		assert.Equal(t, n, r.Name())

		cc := r.Columns()
		require.NotEmpty(t, cc)
		assert.Equal(t, SelectColumn, cc[0].ID)
		assert.False(t, cc[0].CanSort())
		assert.False(t, cc[0].CanFilter())
		_, ok := cc.IndexOf(r.SearchColumn(), true)
		assert.True(t, ok, n)
		if n != "exports" {
			assert.NotEmpty(t, r.Endpoint(), n)
		}
	}

	_, err := RendererFor("nope")
	assert.Error(t, err)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"classes", "exports", "fees", "notifications", "offers", "parents", "payments", "projects", "schools", "students", "submissions"}, Names())
}

func TestMoney(t *testing.T) {
	uu := map[string]struct {
		v any
		e string
	}{
		"int":      {v: 1500, e: "1,500 F"},
		"float":    {v: 1234567.6, e: "1,234,568 F"},
		"string":   {v: "250000", e: "250,000 F"},
		"small":    {v: 12.0, e: "12 F"},
		"negative": {v: -4500, e: "-4,500 F"},
		"nil":      {v: nil, e: NAValue},
		"text":     {v: "n/a", e: NAValue},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			assert.Equal(t, u.e, Money(u.v))
		})
	}
}

func TestHumanDuration(t *testing.T) {
	uu := map[string]struct {
		d time.Duration
		e string
	}{
		"sub":   {d: time.Millisecond, e: "0s"},
		"secs":  {d: 42 * time.Second, e: "42s"},
		"mins":  {d: 3 * time.Minute, e: "3m"},
		"hours": {d: 5 * time.Hour, e: "5h"},
		"days":  {d: 72 * time.Hour, e: "3d"},
		"years": {d: 800 * 24 * time.Hour, e: "2y"},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			assert.Equal(t, u.e, HumanDuration(u.d))
		})
	}
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, 50, Percent(500, 1000))
	assert.Equal(t, 0, Percent(10, 0))
	assert.Equal(t, "yes", YesNo("1"))
	assert.Equal(t, "yes", YesNo(1.0))
	assert.Equal(t, "no", YesNo(nil))
	assert.Equal(t, "2024-03-01", Date("2024-03-01T10:00:00Z"))
	assert.Equal(t, "later", Date("later"))
	assert.Equal(t, NAValue, NA(""))
	assert.Equal(t, MissingValue, Missing(""))
	assert.Equal(t, NAValue, ToAge(nil))
}

func TestStudentsColumns(t *testing.T) {
	cc := (&Students{}).Columns()
	r := dao.Record{"id": 7, "first_name": "Ada", "last_name": "Mbuyi", "matricule": "M-12"}

	c, ok := cc.Find("last_name")
	require.True(t, ok)
	assert.Equal(t, "Ada Mbuyi", c.Render(r))
	assert.Equal(t, "Mbuyi", c.Value(r))

	c, ok = cc.Find("class_name")
	require.True(t, ok)
	assert.Equal(t, NAValue, c.Render(r))

	c, ok = cc.Find("status")
	require.True(t, ok)
	assert.Equal(t, StateActive, c.Render(r))
	assert.Equal(t, StateInactive, c.Render(dao.Record{"status": "Inactif"}))

	assert.Equal(t, []string{SelectColumn, "last_name", "matricule", "class_name", "status"}, cc.IDs(false))
}

func TestFeesProgress(t *testing.T) {
	uu := map[string]struct {
		r dao.Record
		e string
	}{
		"half":    {r: dao.Record{"total_due": 1000, "total_paid": 500, "remaining_balance": 500}, e: "50%"},
		"settled": {r: dao.Record{"total_due": "1000", "total_paid": "1000", "remaining_balance": "0"}, e: "100% ✓"},
		"no-due":  {r: dao.Record{}, e: "0%"},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			assert.Equal(t, u.e, progress(u.r))
		})
	}
}

func TestMoneyColSortsNumerically(t *testing.T) {
	c := MoneyCol("total_due", "TOTAL DUE")
	lo, hi := dao.Record{"total_due": "900"}, dao.Record{"total_due": "15000"}

	assert.Equal(t, -1, model1.Compare(c.Value(lo), c.Value(hi)))
	assert.Equal(t, "15,000 F", c.Render(hi))
}

func TestProjects(t *testing.T) {
	cc := (&Projects{}).Columns()
	r := dao.Record{
		"project_name":    "Library",
		"first_name":      "Ada",
		"last_name":       "Mbuyi",
		"submitter_phone": "+243",
	}

	assert.Equal(t, "Library", ProjectTitle(r))
	c, _ := cc.Find("parent_name")
	assert.Equal(t, "Ada Mbuyi", c.Render(r))
	c, _ = cc.Find("parent_phone")
	assert.Equal(t, "+243", c.Render(r))
	c, _ = cc.Find("title_search")
	assert.Equal(t, MissingValue, c.Render(dao.Record{}))
}

func TestParentsVerified(t *testing.T) {
	c, ok := (&Parents{}).Columns().Find("email_verified")
	require.True(t, ok)
	assert.Equal(t, "yes", c.Render(dao.Record{"email_verified": true}))
	assert.Equal(t, "no", c.Render(dao.Record{"email_verified": 0.0}))
}

func TestGeneric(t *testing.T) {
	g := NewGeneric("things", []dao.Record{
		{"id": 1, "name": "a"},
		{"id": 2, "color": "red"},
	})

	assert.Equal(t, "things", g.Name())
	assert.Equal(t, "color", g.SearchColumn())
	assert.Equal(t, []string{SelectColumn, "color", "name", "id"}, g.Columns().IDs(true))

	assert.Empty(t, NewGeneric("empty", nil).SearchColumn())
}

func TestRowColors(t *testing.T) {
	uu := map[string]struct {
		view string
		r    dao.Record
		e    tcell.Color
	}{
		"student-active":   {view: "students", r: dao.Record{"status": "actif"}, e: model1.StdColor},
		"student-inactive": {view: "students", r: dao.Record{"status": "inactif"}, e: model1.KillColor},
		"fees-settled":     {view: "fees", r: dao.Record{"total_due": 100, "total_paid": 100, "remaining_balance": 0}, e: model1.CompletedColor},
		"fees-unpaid":      {view: "fees", r: dao.Record{"total_due": 100, "total_paid": 0, "remaining_balance": 100}, e: model1.ErrColor},
		"fees-partial":     {view: "fees", r: dao.Record{"total_due": 100, "total_paid": 40, "remaining_balance": 60}, e: model1.StdColor},
		"school-pending":   {view: "schools", r: dao.Record{"status": "PENDING"}, e: model1.PendingColor},
		"export-folder":    {view: "exports", r: dao.Record{"kind": "folder"}, e: model1.HighlightColor},
		"export-glacier":   {view: "exports", r: dao.Record{"kind": "object", "storage_class": "GLACIER"}, e: model1.PendingColor},
		"payments-default": {view: "payments", r: dao.Record{}, e: model1.StdColor},
		"notif-unread":     {view: "notifications", r: dao.Record{"is_read": 0.0}, e: model1.PendingColor},
		"notif-read":       {view: "notifications", r: dao.Record{"is_read": 1.0}, e: model1.StdColor},
		"offer-draft":      {view: "offers", r: dao.Record{}, e: model1.PendingColor},
		"offer-closed":     {view: "offers", r: dao.Record{"status": "closed"}, e: model1.KillColor},
		"offer-published":  {view: "offers", r: dao.Record{"status": "published"}, e: model1.StdColor},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			r, err := RendererFor(u.view)
			require.NoError(t, err)
			assert.Equal(t, u.e, ColorerFor(r)(model1.Row[dao.Record]{Original: u.r}))
		})
	}
}

func TestExports(t *testing.T) {
	var e Exports
	cc := e.Columns()
	r := dao.Record{"name": "fees.csv", "size": float64(2048), "kind": "object"}

	size, ok := cc.Find("size")
	require.True(t, ok)
	assert.Equal(t, "2.0 KiB", size.Render(r))
	assert.Equal(t, NAValue, size.Render(dao.Record{}))

	age, ok := cc.Find("last_modified")
	require.True(t, ok)
	assert.Equal(t, NAValue, age.Render(r))

	assert.Equal(t, "512 B", FormatSize(512))
	assert.Equal(t, "1.5 MiB", FormatSize(1536*1024))
}

func TestNotifications(t *testing.T) {
	uu := map[string]struct {
		r dao.Record
		e string
	}{
		"broadcast":   {r: dao.Record{"type": "broadcast"}, e: "official"},
		"all-schools": {r: dao.Record{"type": "support", "receiver_type": "all_schools"}, e: "official"},
		"support":     {r: dao.Record{"type": "support"}, e: "support"},
		"none":        {r: dao.Record{}, e: NAValue},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			assert.Equal(t, u.e, NotificationKind(u.r))
		})
	}

	c, ok := (&Notifications{}).Columns().Find("is_read")
	require.True(t, ok)
	assert.Equal(t, "yes", c.Render(dao.Record{"is_read": 1.0}))
	assert.Equal(t, "no", c.Render(dao.Record{}))
}

func TestOffers(t *testing.T) {
	cc := (&Offers{}).Columns()

	c, ok := cc.Find("amount")
	require.True(t, ok)
	assert.Equal(t, "2,500 F", c.Render(dao.Record{"funding_amount": "2500"}))
	assert.Equal(t, "100 F", c.Render(dao.Record{"amount": 100, "funding_amount": 2500}))
	assert.Equal(t, NAValue, c.Render(dao.Record{}))

	c, ok = cc.Find("sector")
	require.True(t, ok)
	assert.Equal(t, "agri", c.Render(dao.Record{"sectors": "agri"}))

	assert.Equal(t, OfferDraft, OfferStatus(dao.Record{}))
	assert.Equal(t, OfferPublished, OfferStatus(dao.Record{"status": "Published"}))
}

func TestSubmissions(t *testing.T) {
	var s Submissions
	assert.True(t, dao.Needs(s.Endpoint(), "offer_id"))

	cc := s.Columns()
	r := dao.Record{"project_title": "Well", "first_name": "Ada", "last_name": "Mbuyi"}
	c, ok := cc.Find("submitter")
	require.True(t, ok)
	assert.Equal(t, "Ada Mbuyi", c.Render(r))

	c, ok = cc.Find("status")
	require.True(t, ok)
	assert.Equal(t, "submitted", c.Render(r))
	assert.Equal(t, "accepted", c.Render(dao.Record{"status": "Accepted"}))
}

func TestClassesEndpoint(t *testing.T) {
	assert.True(t, dao.Needs((&Classes{}).Endpoint(), "year_id"))
}
