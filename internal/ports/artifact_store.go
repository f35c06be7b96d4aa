package ports

import "github.com/Zcytxcbyz/projectile/internal/domain"

// ArtifactStore persists scenario and solve runs for later comparison.
type ArtifactStore interface {
	SaveRun(run domain.RunResult) (id string, err error)
}
