package cmd

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/yayangurayan/jurnalforex/config"
	"github.com/yayangurayan/jurnalforex/internal/logx"
	"github.com/yayangurayan/jurnalforex/journal"
	"github.com/yayangurayan/jurnalforex/storage"
)

// app is one opened journal for the duration of a command.
type app struct {
	cfg  *config.Config
	kv   storage.KV
	sess *journal.Session
	term *terminal
	log  zerolog.Logger
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if o.ConfigPath != "" {
		var err error
		cfg, err = config.LoadFromFile(o.ConfigPath)
		if err != nil {
			return nil, err
		}
	}
	if o.DBPath != "" {
		cfg.Storage.Path = o.DBPath
	}
	if o.LogLevel != "" {
		cfg.Log.Level = o.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (o *rootOptions) open(cmd *cobra.Command, show views) (*app, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}

	log := logx.New(cfg.Log.Level, cmd.ErrOrStderr(), !cfg.Log.JSON)

	kv, err := storage.Open(cfg.Storage.Type, cfg.Storage.Path, cfg.Storage.Namespace)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	log.Debug().Str("type", cfg.Storage.Type).Str("path", cfg.Storage.Path).Msg("storage opened")

	term := newTerminal(cmd.OutOrStdout(), cmd.ErrOrStderr(), cmd.InOrStdin(), cfg.Display.Currency, cfg.Export.Dir)
	term.assumeYes = o.Yes
	term.show = show

	store := journal.Open(kv, journal.WithLogger(log))
	sess := journal.NewSession(store, term, journal.WithSessionLogger(log))

	return &app{cfg: cfg, kv: kv, sess: sess, term: term, log: log}, nil
}

func (a *app) Close() error {
	return a.kv.Close()
}

// resolve asks for the answer to a staged confirmation and applies it.
func (a *app) resolve() error {
	if _, ok := a.sess.Pending(); !ok {
		return nil
	}
	if !a.term.answer() {
		a.sess.Dismiss()
		fmt.Fprintln(a.term.out, "Cancelled.")
		return nil
	}
	if err := a.sess.Confirm(); err != nil {
		return reportedError{err}
	}
	return nil
}

func reported(err error) error {
	if err == nil {
		return nil
	}
	return reportedError{err}
}
