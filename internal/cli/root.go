package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/InderD24/NFL-Fantasy-Football-Tool/internal/catalog"
	"github.com/InderD24/NFL-Fantasy-Football-Tool/internal/config"
	"github.com/InderD24/NFL-Fantasy-Football-Tool/internal/draft"
	"github.com/InderD24/NFL-Fantasy-Football-Tool/internal/logger"
	"github.com/InderD24/NFL-Fantasy-Football-Tool/internal/models"
	"github.com/InderD24/NFL-Fantasy-Football-Tool/internal/rankings"
	"github.com/InderD24/NFL-Fantasy-Football-Tool/internal/snapshot"
)

// Options are the startup flags of the draft session
type Options struct {
	Teams      int
	Pick       int
	Rounds     int
	Rankings   string
	Format     string
	Roster     string
	ConfigPath string
	Resume     string
}

// Execute runs the root command
func Execute() error {
	return NewRoot().Execute()
}

// NewRoot builds the root command: load rankings, start the draft, and run
// the interactive loop
func NewRoot() *cobra.Command {
	opts := &Options{}
	root := &cobra.Command{
		Use:   "draft-helper",
		Short: "Live fantasy football draft helper (multi-source ranks, safe/risky suggestions)",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := NewDraftSession(opts)
			if err != nil {
				return err
			}
			printBanner(cmd, sess, opts)
			return sess.REPL(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	root.Flags().IntVar(&opts.Teams, "teams", 10, "number of teams")
	root.Flags().IntVar(&opts.Pick, "pick", 0, "your draft slot (1-indexed)")
	root.Flags().IntVar(&opts.Rounds, "rounds", 14, "total rounds")
	root.Flags().StringVar(&opts.Rankings, "rankings", "rankings_ppr_master.csv", "rankings file (.csv or .xlsx)")
	root.Flags().StringVar(&opts.Format, "format", "ppr", "scoring format: ppr, half, std (informational)")
	root.Flags().StringVar(&opts.Roster, "roster", "", "starting slot overrides, e.g. QB:1,RB:2,WR:2,TE:1,FLEX:1,K:1,DST:1")
	root.Flags().StringVar(&opts.ConfigPath, "config", "", "policy config file (YAML)")
	root.Flags().StringVar(&opts.Resume, "resume", "", "snapshot file to restore before starting")
	_ = root.MarkFlagRequired("pick")
	return root
}

// NewDraftSession wires rankings, config, engine, and snapshot store into a
// ready session. Any failure here is fatal to startup.
func NewDraftSession(opts *Options) (*Session, error) {
	switch strings.ToLower(opts.Format) {
	case "ppr", "half", "std":
	default:
		return nil, fmt.Errorf("unknown scoring format %q (valid: ppr, half, std)", opts.Format)
	}

	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyRosterOverride(opts.Roster); err != nil {
		return nil, err
	}

	store, err := snapshot.FromEnv()
	if err != nil {
		return nil, err
	}

	if opts.Resume != "" {
		data, err := snapshot.NewFileStore(opts.Resume).Load("")
		if err != nil {
			return nil, err
		}
		eng, sessionID, err := snapshot.Unmarshal(data)
		if err != nil {
			return nil, err
		}
		logger.Info("Restored draft snapshot", "path", opts.Resume, "picks", len(eng.Picks()))
		sess := NewSession(eng, store, cfg)
		if sessionID != "" {
			sess.SessionID = sessionID
		}
		return sess, nil
	}

	players, err := rankings.Load(opts.Rankings)
	if err != nil {
		return nil, err
	}
	cat := catalog.New()
	cat.Load(players)
	logger.Info("Loaded rankings", "file", opts.Rankings, "players", cat.Len())

	eng, err := draft.Start(models.DraftConfig{
		Teams:  opts.Teams,
		Slot:   opts.Pick,
		Rounds: opts.Rounds,
		Format: strings.ToLower(opts.Format),
	}, cfg.Slots(), cat)
	if err != nil {
		return nil, err
	}
	return NewSession(eng, store, cfg), nil
}

func printBanner(cmd *cobra.Command, sess *Session, opts *Options) {
	out := cmd.OutOrStdout()
	cfg := sess.Engine.Config()
	fmt.Fprintf(out, "Loaded %d players from %s.\n", sess.Engine.Catalog().Len(), opts.Rankings)
	fmt.Fprintf(out, "Teams: %d, Your slot: %d, Rounds: %d, Scoring: %s\n",
		cfg.Teams, cfg.Slot, cfg.Rounds, strings.ToUpper(cfg.Format))
	fmt.Fprintf(out, "Roster: %s\n", draft.NeedsString(sess.Engine.Needs(cfg.Slot)))
	if turn, err := sess.Engine.CurrentTurn(); err == nil {
		fmt.Fprintf(out, "Next up: Round %d, Overall #%d. Type 'suggest' to start.\n", turn.Round, turn.Overall)
	}
}
