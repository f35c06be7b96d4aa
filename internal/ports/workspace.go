package ports

import "github.com/Zcytxcbyz/projectile/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
