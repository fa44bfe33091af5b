package cmd

import (
	"fmt"

	"github.com/biruktesfaye/gitlet/core"
	"github.com/fatih/color"
)

var logVerbose bool

// dateFormat is spec §6's locale-independent pattern "E MMM dd HH:mm:ss yyyy
// Z" expressed as a Go reference-time layout, rendered in the local zone.
const dateFormat = "Mon Jan 02 15:04:05 2006 -0700"

var commitHashColor = color.New(color.FgYellow)

func printLogEntry(repo *core.Repository, e core.LogEntry) {
	fmt.Println("===")
	commitHashColor.Printf("commit %s\n", e.Fingerprint)
	if e.SecondParent != "" {
		fmt.Printf("Merge: %s %s\n", e.Parent[:7], e.SecondParent[:7])
	}
	if logVerbose {
		settings := repo.Config.Settings()
		if settings.UserName != "" || settings.UserEmail != "" {
			fmt.Printf("Author: %s <%s>\n", settings.UserName, settings.UserEmail)
		}
	}
	fmt.Printf("Date: %s\n", e.Timestamp.Local().Format(dateFormat))
	fmt.Println(e.Message)
	fmt.Println()
}

func init() {
	logCmd := NewRepoCommand(
		"log",
		"Print the current branch's commit history",
		0,
		func(repo *core.Repository, args []string) error {
			entries, err := repo.Log()
			if err != nil {
				return err
			}
			for _, e := range entries {
				printLogEntry(repo, e)
			}
			return nil
		},
	)
	logCmd.Flags().BoolVar(&logVerbose, "verbose", false, "show the committer identity before the date line")
	rootCmd.AddCommand(logCmd)

	globalLogCmd := NewRepoCommand(
		"global-log",
		"Print every commit ever made, in no particular order",
		0,
		func(repo *core.Repository, args []string) error {
			entries, err := repo.GlobalLog()
			if err != nil {
				return err
			}
			for _, e := range entries {
				printLogEntry(repo, e)
			}
			return nil
		},
	)
	globalLogCmd.Flags().BoolVar(&logVerbose, "verbose", false, "show the committer identity before the date line")
	rootCmd.AddCommand(globalLogCmd)
}
