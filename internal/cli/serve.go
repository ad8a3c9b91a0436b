package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/proverbial/internal/config"
	"github.com/robalobadob/proverbial/internal/daily"
	"github.com/robalobadob/proverbial/internal/httpserver"
	"github.com/robalobadob/proverbial/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server (HTML page and JSON API)",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "HTTP port (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	set, err := loadPuzzles(cfg)
	if err != nil {
		return fmt.Errorf("load puzzles: %w", err)
	}

	st, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	if cfg.InsecureSecret() {
		log.Warn().Msg("SESSION_SECRET not set; using development secret")
	}

	port := cfg.Port
	if servePort > 0 {
		port = servePort
	}

	srv := httpserver.New(httpserver.Options{
		Store:        st,
		Puzzles:      set,
		Clock:        daily.In(cfg.Location),
		Secret:       []byte(cfg.SessionSecret),
		ClientOrigin: cfg.ClientOrigin,
		CookieSecure: cfg.CookieSecure,
	})

	log.Info().Int("port", port).Int("puzzles", len(set)).Str("store", cfg.Store).Msg("starting server")
	return srv.Start(cmd.Context(), fmt.Sprintf(":%d", port))
}

// openStore opens the configured session store and drops earlier days' sessions.
func openStore(ctx context.Context, c *config.Config) (store.Store, error) {
	var (
		st  store.Store
		err error
	)
	switch c.Store {
	case "sqlite":
		st, err = store.OpenSQLite(c.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", c.DBPath, err)
		}
	default:
		st = store.NewMemoryStore()
	}

	today := daily.DateKey(daily.In(c.Location)())
	if n, err := st.PurgeBefore(ctx, today); err != nil {
		log.Warn().Err(err).Msg("purge old sessions")
	} else if n > 0 {
		log.Info().Int("sessions", n).Msg("purged sessions from earlier days")
	}
	return st, nil
}
