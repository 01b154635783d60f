package logging

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// logFilePrefix names the files this package owns inside the log
// directory. Rotation never touches anything else.
const logFilePrefix = "wastewise_"

type logFile struct {
	path string
	mod  time.Time
}

// pruneOldLogs keeps the newest keep log files in dir and deletes the
// rest. keep <= 0 disables pruning.
func pruneOldLogs(dir string, keep int) error {
	if keep <= 0 {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	var files []logFile
	for _, e := range entries {
		if e.IsDir() || !ownsLogFile(e.Name()) {
			continue
		}
		f := logFile{path: filepath.Join(dir, e.Name())}
		if info, err := e.Info(); err == nil {
			f.mod = info.ModTime()
		}
		files = append(files, f)
	}
	if len(files) <= keep {
		return nil
	}
	sort.Slice(files, func(i, j int) bool {
		if files[i].mod.Equal(files[j].mod) {
			// Timestamped names sort chronologically.
			return files[i].path < files[j].path
		}
		return files[i].mod.Before(files[j].mod)
	})
	for _, f := range files[:len(files)-keep] {
		_ = os.Remove(f.path)
	}
	return nil
}

func ownsLogFile(name string) bool {
	return strings.HasPrefix(name, logFilePrefix) && strings.HasSuffix(name, ".log")
}
