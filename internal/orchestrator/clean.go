package orchestrator

import (
	"github.com/jakoblorz/carton/internal/linker"
	"github.com/jakoblorz/carton/internal/tui"
	"github.com/jakoblorz/carton/internal/workspace"
	"go.uber.org/zap"
)

// Clean removes every profile's build directory and the compile database
// link. Removal is best effort: both are attempted, failures are reported as
// warnings and absent targets are ignored. Only a missing project fails.
func (o *Orchestrator) Clean() error {
	ws, err := o.detect()
	if err != nil {
		return err
	}

	target := workspace.TargetDir(ws.RootPath)
	link := workspace.CompileDatabaseLink(ws.RootPath)
	existed := o.fs.Exists(target)

	removed := existed
	if err := o.fs.RemoveAll(target); err != nil {
		tui.Warn(o.stderr, "failed to remove %s: %v", workspace.TargetDirName, err)
		removed = false
	}
	if err := linker.Unlink(o.fs, link); err != nil {
		tui.Warn(o.stderr, "%v", err)
	}

	o.logger.Debug("Cleaned build state", zap.String("target", target), zap.Bool("existed", existed))
	if removed {
		tui.Status(o.stdout, "Removed", "%s", workspace.TargetDirName)
	}
	return nil
}
