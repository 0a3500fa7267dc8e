package service

import (
	"testing"

	"github.com/alexanderramin/solace/internal/db"
	"github.com/alexanderramin/solace/internal/repository"
	"github.com/alexanderramin/solace/internal/testutil"
)

type testRepos struct {
	checkins    *repository.SQLiteCheckInRepo
	messages    *repository.SQLiteChatMessageRepo
	journals    *repository.SQLiteJournalRepo
	routines    *repository.SQLiteRoutineRepo
	completions *repository.SQLiteChallengeRepo
	shares      *repository.SQLiteMoodShareRepo
	profiles    *repository.SQLiteUserProfileRepo
	states      *repository.SQLiteAppStateRepo
	uow         db.UnitOfWork
}

func setupRepos(t *testing.T) testRepos {
	t.Helper()
	database := testutil.NewTestDB(t)
	return testRepos{
		checkins:    repository.NewSQLiteCheckInRepo(database),
		messages:    repository.NewSQLiteChatMessageRepo(database),
		journals:    repository.NewSQLiteJournalRepo(database),
		routines:    repository.NewSQLiteRoutineRepo(database),
		completions: repository.NewSQLiteChallengeRepo(database),
		shares:      repository.NewSQLiteMoodShareRepo(database),
		profiles:    repository.NewSQLiteUserProfileRepo(database),
		states:      repository.NewSQLiteAppStateRepo(database),
		uow:         testutil.NewTestUoW(database),
	}
}
