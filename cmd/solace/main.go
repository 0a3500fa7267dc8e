package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/solace/internal/cli"
	"github.com/alexanderramin/solace/internal/companion"
	"github.com/alexanderramin/solace/internal/db"
	"github.com/alexanderramin/solace/internal/domain"
	"github.com/alexanderramin/solace/internal/llm"
	"github.com/alexanderramin/solace/internal/repository"
	"github.com/alexanderramin/solace/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.solace/solace.db
	dbPath := os.Getenv("SOLACE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".solace", "solace.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	checkinRepo := repository.NewSQLiteCheckInRepo(database)
	chatRepo := repository.NewSQLiteChatMessageRepo(database)
	journalRepo := repository.NewSQLiteJournalRepo(database)
	routineRepo := repository.NewSQLiteRoutineRepo(database)
	challengeRepo := repository.NewSQLiteChallengeRepo(database)
	shareRepo := repository.NewSQLiteMoodShareRepo(database)
	profileRepo := repository.NewSQLiteUserProfileRepo(database)
	stateRepo := repository.NewSQLiteAppStateRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	// Bootstrap the single local profile so every row has an owner.
	ctx := context.Background()
	profile, err := profileRepo.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		now := time.Now().UTC()
		profile = &domain.UserProfile{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := profileRepo.Upsert(ctx, profile); err != nil {
			return fmt.Errorf("creating profile: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}

	// Wire the companion: proxy-backed when enabled, deterministic otherwise.
	var chatClient llm.ChatClient
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		chatClient = llm.NewProxyClient(llmCfg, observer)
	}
	comp := companion.NewService(chatClient, companion.NewResponder(nil))

	app := &cli.App{
		CheckIns:   service.NewCheckInService(checkinRepo),
		Chat:       service.NewChatService(chatRepo, comp, uow),
		Journal:    service.NewJournalService(journalRepo),
		Routine:    service.NewRoutineService(routineRepo),
		Challenges: service.NewChallengeService(challengeRepo),
		Shares:     service.NewMoodShareService(shareRepo),
		Profile:    service.NewProfileService(profileRepo),
		AppState:   service.NewAppStateService(stateRepo),
		UserID:     profile.ID,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
