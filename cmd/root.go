package cmd

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/cyberquest/cyberquest/internal/config"
	"github.com/cyberquest/cyberquest/internal/logger"
	"github.com/cyberquest/cyberquest/internal/questions"
	"github.com/cyberquest/cyberquest/internal/quiz"
	"github.com/cyberquest/cyberquest/internal/scoring"
	"github.com/cyberquest/cyberquest/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "cyberquest",
	Short: "Cybersecurity awareness quiz",
	Long:  "CyberQuest: a terminal quiz that scores your security awareness, tracks progress and ranks players.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CYBERQUEST_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (overrides CYBERQUEST_CONFIG env var)")
	rootCmd.PersistentFlags().String("questions", "", "Path to a JSON or YAML question bank (overrides CYBERQUEST_QUESTIONS env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file and environment, then applies the
// persistent flags on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if p, _ := cmd.Flags().GetString("questions"); p != "" {
		cfg.QuestionsPath = p
	}
	return cfg, nil
}

// resolveDBPath returns the configured database path, falling back to the
// default XDG location.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// runtime holds the dependencies shared by every command.
type runtime struct {
	cfg     config.Config
	log     *logger.Logger
	store   *store.Store
	service *quiz.Service
}

func (r *runtime) Close() {
	r.log.Sync()
	_ = r.store.Close()
}

// setup builds the logger, opens the store, loads the question bank and
// assembles the quiz service. With interactive set, logs go to a file next
// to the database so they do not draw over the terminal UI, and each
// session draws a shuffled sample of the level. Otherwise sessions use the
// level's full question set.
func setup(cmd *cobra.Command, interactive bool) (*runtime, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}

	logPath := cfg.Log.File
	if logPath == "" && interactive {
		logPath = filepath.Join(filepath.Dir(dbPath), "cyberquest.log")
	}
	log, err := logger.New(cfg.Log.Mode, logPath)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	bank, err := loadBank(cfg)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	log.Debug("store opened", "path", dbPath, "bank_version", bank.Version())

	var opts []quiz.Option
	if interactive {
		seed := uint64(time.Now().UnixNano())
		opts = append(opts, quiz.WithShuffle(rand.New(rand.NewPCG(seed, seed>>1))))
	}
	service := quiz.NewService(scoring.NewEngine(cfg.Policy()), bank, st, log, opts...)
	return &runtime{cfg: cfg, log: log, store: st, service: service}, nil
}

func loadBank(cfg config.Config) (*questions.Bank, error) {
	if cfg.QuestionsPath == "" {
		return questions.Default()
	}
	bank, err := questions.LoadFile(cfg.QuestionsPath)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	return bank, nil
}
