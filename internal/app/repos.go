package app

import (
	"gorm.io/gorm"

	repos "github.com/yungbote/neurohealing-backend/internal/data/repos/healing"
	"github.com/yungbote/neurohealing-backend/internal/platform/logger"
)

type Repos struct {
	Assessment  repos.AssessmentRepo
	Snapshot    repos.SnapshotRepo
	Celebration repos.CelebrationRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Assessment:  repos.NewAssessmentRepo(db, log),
		Snapshot:    repos.NewSnapshotRepo(db, log),
		Celebration: repos.NewCelebrationRepo(db, log),
	}
}
