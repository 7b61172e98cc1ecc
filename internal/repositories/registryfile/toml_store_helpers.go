package registryfile

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// toUserFriendlyPath shortens paths under the home directory to "~/...".
func toUserFriendlyPath(path string) string {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	usr, err := user.Current()
	if err != nil || usr.HomeDir == "" {
		return absPath
	}
	homeDir := usr.HomeDir
	if absPath == homeDir {
		return "~"
	}
	if strings.HasPrefix(absPath, homeDir+string(os.PathSeparator)) {
		return filepath.Join("~", strings.TrimPrefix(absPath, homeDir+string(os.PathSeparator)))
	}
	return absPath
}
