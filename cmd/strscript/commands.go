package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agenthands/strscript/pkg/compiler/lexer"
	"github.com/agenthands/strscript/pkg/runner"
)

func newRunCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run <file>",
		Short: "Run a program and print its output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			path := args[0]

			src, err := a.load(path)
			if err != nil {
				return err
			}

			log := a.logger.With().Str("file", path).Logger()
			_, err = runner.Run(src,
				runner.WithOutput(cmd.OutOrStdout()),
				runner.WithLogger(log),
				runner.WithGasLimit(a.cfg.Gas),
			)
			if err != nil {
				a.diag.PrintError(path, src, err)
				return errReported
			}
			return nil
		},
	}
}

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Lex and parse a program without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			path := args[0]

			src, err := a.load(path)
			if err != nil {
				return err
			}

			prog, err := runner.Check(src)
			if err != nil {
				a.diag.PrintError(path, src, err)
				return errReported
			}
			a.logger.Debug().Str("file", path).Int("statements", len(prog.Statements)).Msg("checked")
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}

func newTokensCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the token stream of a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			path := args[0]

			src, err := a.load(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			s := lexer.NewScanner(src)
			for {
				tok := s.Next()
				if tok.Kind == lexer.KindError {
					a.diag.PrintError(path, src, s.Err())
					return errReported
				}
				fmt.Fprintf(out, "%s\t%s\n", tok.Pos(), tok)
				if tok.Kind == lexer.KindEOF {
					return nil
				}
			}
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), cliToolVersion)
		},
	}
}
