package cmd

import (
	"github.com/biruktesfaye/gitlet/core"
	"github.com/spf13/cobra"
)

// HandlerFunc is the signature every repository-backed command delegates
// to, carrying the repository handle and cobra's raw positional arguments.
type HandlerFunc func(repo *core.Repository, args []string) error

// NewRepoCommand builds a cobra.Command that resolves the current
// repository before calling handler (spec §7: "Not in an initialized
// Gitlet directory." when run outside one), with an exact-arity check.
func NewRepoCommand(use, short string, arity int, handler HandlerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  exactArity(arity),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := core.FindRepository()
			if err != nil {
				return err
			}
			return handler(repo, args)
		},
	}
}

// NewInitCommand builds a cobra.Command for init, the one command that
// must run without an existing repository.
func NewInitCommand(use, short string, run func(args []string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  exactArity(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args)
		},
	}
}

// NewVariadicRepoCommand is NewRepoCommand for commands whose arity isn't a
// single fixed number (checkout's three call shapes); argsFn supplies the
// arity check.
func NewVariadicRepoCommand(use, short string, argsFn cobra.PositionalArgs, handler HandlerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  argsFn,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := core.FindRepository()
			if err != nil {
				return err
			}
			return handler(repo, args)
		},
	}
}

// exactArity rejects any invocation with other than n positional arguments,
// using spec §6's literal arity-violation message.
func exactArity(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return core.NewUserError("Incorrect operands.")
		}
		return nil
	}
}
