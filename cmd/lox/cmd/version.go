package cmd

import (
	"fmt"
	"runtime"
)

var (
	Version   = "0.1.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("lox v{{.Version}}\n  Git Commit: %s\n  Build Date: %s\n  Go Version: %s\n  OS/Arch:    %s/%s\n",
		GitCommit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH))
}
