package main

import (
	"fmt"
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/cratedoc/cmd/cratedoc/commands"
	cderrors "git.home.luguber.info/inful/cratedoc/internal/errors"
	"git.home.luguber.info/inful/cratedoc/internal/version"
)

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("cratedoc"),
		kong.Description("Build Rust crate documentation with KaTeX math rendering."),
		kong.Vars{
			"version": fmt.Sprintf("cratedoc %s (commit %s, built %s)", version.Version, version.GitCommit, version.BuildTime),
		},
	)

	err := ctx.Run(&commands.Global{Logger: slog.Default()}, cli)
	cderrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
}
