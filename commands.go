package main

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/blogem/contest-jury/controllers"
	"github.com/blogem/contest-jury/database"
	"github.com/blogem/contest-jury/models"
	"github.com/blogem/contest-jury/routes"
)

func newMigrateCmd(withApp appRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, _ []string, a *app) error {
			version, err := database.SchemaVersion(a.db)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "database %s at schema version %d\n", a.cfg.DBPath, version)
			return nil
		}),
	}
}

func newAuditLogCmd(withApp appRunner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auditlog",
		Short: "Inspect and append to the audit log",
	}
	cmd.AddCommand(newAuditLogListCmd(withApp), newAuditLogRecordCmd(withApp))
	return cmd
}

func newAuditLogListCmd(withApp appRunner) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of the audit log, newest first",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, _ []string, a *app) error {
			ctx := cmd.Context()

			timeFormat, err := a.services.Configuration.TimeFormat(ctx)
			if err != nil {
				return err
			}
			p, err := a.services.AuditLog.GetPage(ctx, page, timeFormat)
			if err != nil {
				return err
			}
			return printAuditLogPage(cmd.OutOrStdout(), p.Rows, p.CurrentPage, p.TotalPages)
		}),
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number (1 is the newest page)")
	return cmd
}

func printAuditLogPage(out io.Writer, rows []models.DisplayRow, current, total int) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	titles := make([]string, 0, len(models.AuditLogFields))
	for _, f := range models.AuditLogFields {
		titles = append(titles, strings.ToUpper(f.Title))
	}
	_, _ = fmt.Fprintln(tw, strings.Join(titles, "\t"))

	for _, row := range rows {
		cells := row.Cells()
		values := make([]string, 0, len(cells))
		for _, c := range cells {
			values = append(values, c.Value)
		}
		_, _ = fmt.Fprintln(tw, strings.Join(values, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(out, "page %d of %d\n", current, total)
	return err
}

func newAuditLogRecordCmd(withApp appRunner) *cobra.Command {
	var (
		user, datatype, dataID, action, extraInfo string
		contestID                                 int64
	)

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Append an entry to the audit log",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, _ []string, a *app) error {
			entry := &models.AuditLogEntry{
				Timestamp: time.Now(),
				Datatype:  datatype,
				Action:    action,
				User:      optional(user),
				DataID:    optional(dataID),
				ExtraInfo: optional(extraInfo),
			}
			if contestID > 0 {
				entry.ContestID = &contestID
			}

			if err := a.services.AuditLog.Record(cmd.Context(), entry); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "recorded audit log entry %d\n", entry.ID)
			return nil
		}),
	}

	cmd.Flags().StringVar(&user, "user", "", "user that performed the action")
	cmd.Flags().StringVar(&datatype, "datatype", "", "kind of resource acted upon, e.g. problem")
	cmd.Flags().StringVar(&dataID, "id", "", "identifier of the resource")
	cmd.Flags().StringVar(&action, "action", "", "what happened, e.g. updated")
	cmd.Flags().StringVar(&extraInfo, "extra", "", "free-form detail")
	cmd.Flags().Int64Var(&contestID, "contest", 0, "contest the action belongs to")
	_ = cmd.MarkFlagRequired("datatype")
	_ = cmd.MarkFlagRequired("action")

	return cmd
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func newScoreboardCmd(withApp appRunner) *cobra.Command {
	var (
		static  bool
		contest string
	)

	cmd := &cobra.Command{
		Use:   "scoreboard",
		Short: "Render the public scoreboard as HTML on stdout",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, _ []string, a *app) error {
			ctrl := controllers.NewControllers(a.services, controllers.Options{
				Logger:            a.logger,
				AdminRole:         a.cfg.AdminRole,
				ScoreboardRefresh: a.cfg.ScoreboardRefresh,
			})

			query := url.Values{}
			if static {
				query.Set("static", "1")
				if contest != "" {
					query.Set("contest", contest)
				}
			}
			target := routes.MustURL(routes.PublicScoreboard, nil)
			if len(query) > 0 {
				target += "?" + query.Encode()
			}

			req := httptest.NewRequest(http.MethodGet, target, nil).WithContext(cmd.Context())
			rec := httptest.NewRecorder()
			ctrl.Scoreboard.Index(rec, req)

			if rec.Code != http.StatusOK {
				return fmt.Errorf("scoreboard rendering failed with status %d: %s",
					rec.Code, strings.TrimSpace(rec.Body.String()))
			}
			_, err := rec.Body.WriteTo(cmd.OutOrStdout())
			return err
		}),
	}

	cmd.Flags().BoolVar(&static, "static", false, "render without navigation, for publishing as a static page")
	cmd.Flags().StringVar(&contest, "contest", "", "external id of the contest to show (static mode only)")
	return cmd
}
