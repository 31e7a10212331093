package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fundboard/fundboard/internal/aws"
	"github.com/fundboard/fundboard/internal/config"
	"github.com/fundboard/fundboard/internal/config/data"
	"github.com/fundboard/fundboard/internal/dao"
	"github.com/fundboard/fundboard/internal/model"
	"github.com/fundboard/fundboard/internal/render"
)

const awsTimeout = 30 * time.Second

// board holds one configured listing: where its rows come from and the table
// showing them.
type board struct {
	cfg      *config.Config
	session  *dao.Session
	factory  *dao.SourceFactory
	sid      *dao.SourceID
	renderer render.Renderer
	table    *model.DataTable[dao.Record]
	data     *model.TableData
}

func loadBoard(ctx context.Context, flags *data.Flags, args []string, log *slog.Logger) (*board, error) {
	cfg := config.NewConfig()
	if err := cfg.Load(config.AppConfigFile); err != nil {
		return nil, err
	}
	if err := cfg.Refine(flags); err != nil {
		return nil, fmt.Errorf("failed to refine configuration: %w", err)
	}
	fb := cfg.Fundboard

	aliases := config.NewAliases()
	if err := aliases.Load(); err != nil {
		log.Warn("Aliases ignored", "error", err)
	}
	viewName := aliases.Get(fb.DefaultView)

	session, err := dao.LoadSession(config.AppSessionFile)
	if err != nil {
		return nil, err
	}
	session.Override(*flags.Token, *flags.SchoolID)
	if config.IsStringSet(flags.YearID) {
		session.YearID = *flags.YearID
	}
	if flags.Params != nil {
		for k, v := range *flags.Params {
			session.SetParam(k, v)
		}
	}

	r, rErr := render.RendererFor(viewName)
	source, err := sourceURI(args, r, rErr)
	if err != nil {
		return nil, err
	}
	sid, err := dao.NewSourceID(source)
	if err != nil {
		return nil, err
	}
	if sid.IsPrefix() {
		r, rErr = &render.Exports{}, nil
	}

	factory := dao.NewFactory(fb.APIURL, session, log)
	if sid.Scheme == dao.SchemeS3 {
		conn := aws.NewAPIClient(aws.ClientConfig{
			Profile: fb.AWS.Profile,
			Region:  fb.AWS.Region,
			Timeout: awsTimeout,
		})
		if !conn.CheckConnectivity(ctx) {
			log.Warn("AWS connectivity check failed", "profile", conn.ActiveProfile(), "region", conn.ActiveRegion())
		}
		factory.SetAWS(conn)
	}

	acc, err := dao.AccessorFor(factory, sid)
	if err != nil {
		return nil, err
	}
	if rErr != nil {
		rr, err := acc.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", sid, err)
		}
		r = render.NewGeneric(sourceName(sid), rr)
	}

	search := r.SearchColumn()
	if config.IsStringSet(flags.Search) {
		search = *flags.Search
	}
	table := model.NewDataTable(r.Columns(), nil, model.Options[dao.Record]{
		SearchColumn:      search,
		FilterPlaceholder: r.FilterPlaceholder(),
		Selection:         model.NewSelectionStore(nil),
		RowID:             dao.RecordID,
		PageSize:          fb.PageSize,
	})
	if config.IsStringSet(flags.Filter) {
		table.SetFilterText(*flags.Filter)
	}

	td := model.NewTableData(acc, table, fb.RefreshInterval(), log)
	td.SetCache(factory.Cache())
	td.SetPredicate(preFilter(flags))

	return &board{
		cfg:      cfg,
		session:  session,
		factory:  factory,
		sid:      sid,
		renderer: r,
		table:    table,
		data:     td,
	}, nil
}

// preFilter narrows records by the --status and --class flags.
func preFilter(flags *data.Flags) dao.Predicate {
	var status, class string
	if flags.Status != nil {
		status = *flags.Status
	}
	if flags.Class != nil {
		class = *flags.Class
	}

	return dao.Where(
		dao.FieldIs(status, "status"),
		dao.FieldIs(class, "current_class_id", "class_id", "class_name"),
	)
}

// sourceURI returns the source given on the command line, else the view's
// backend endpoint.
func sourceURI(args []string, r render.Renderer, rErr error) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if rErr != nil {
		return "", rErr
	}
	if r.Endpoint() == "" {
		return "", errors.New("no source given and view has no endpoint")
	}

	return "api:" + r.Endpoint(), nil
}

func sourceName(sid *dao.SourceID) string {
	base := filepath.Base(sid.Location)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
