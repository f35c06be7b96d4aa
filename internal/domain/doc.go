// Package domain holds the launch, landing and scenario model shared by every
// layer of projectile.
//
// Nothing here parses YAML, talks HTTP or touches the filesystem. The solver,
// use cases and infra adapters all map into and out of these plain values.
package domain
