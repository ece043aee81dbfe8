// Package rundir inspects the directories a VGK pass touches: the
// tool directory holding the executables, and the working directory
// every tool output lands in.
package rundir

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ndsanders/pyvgk/pkg/vgk"
)

// CheckTools verifies the executables a pass needs are present in the
// tool directory. The solver binary is only required when the pass
// will invoke it.
func CheckTools(dir string, solve bool) error {
	tools := []string{vgk.VGKCONExe}
	if solve {
		tools = append(tools, vgk.VGKExe)
	}

	for _, tool := range tools {
		path := filepath.Join(dir, tool)
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("tool %s not found in %s: %w", tool, dir, err)
		}
		if info.IsDir() {
			return fmt.Errorf("tool path %s is a directory", path)
		}
	}
	return nil
}

// HasArtifact reports whether a tool output exists in the current
// working directory. The tools write beside the caller, never beside
// their own executables.
func HasArtifact(name string) bool {
	info, err := os.Stat(name)
	return err == nil && !info.IsDir()
}
