package commands

import (
	"log/slog"
	"os"

	"git.home.luguber.info/inful/cratedoc/internal/config"
	cderrors "git.home.luguber.info/inful/cratedoc/internal/errors"
	"git.home.luguber.info/inful/cratedoc/internal/logfields"
)

// starterHeader loads KaTeX from a CDN and renders math in every generated page.
const starterHeader = `<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/katex@0.16.11/dist/katex.min.css">
<script defer src="https://cdn.jsdelivr.net/npm/katex@0.16.11/dist/katex.min.js"></script>
<script defer src="https://cdn.jsdelivr.net/npm/katex@0.16.11/dist/contrib/auto-render.min.js"></script>
<script>
    document.addEventListener("DOMContentLoaded", function() {
        renderMathInElement(document.body, {
            delimiters: [
                {left: "$$", right: "$$", display: true},
                {left: "$", right: "$", display: false}
            ]
        });
    });
</script>
`

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration file"`
}

func (i *InitCmd) Run(_ *Global, root *CLI) error {
	if err := config.Init(root.Config, i.Force); err != nil {
		return err
	}
	slog.Info("Wrote configuration file", logfields.Path(root.Config))

	headerPath := config.Default().Header
	if _, err := os.Stat(headerPath); err == nil && !i.Force {
		slog.Info("Header file already exists, leaving it alone", logfields.Header(headerPath))
		return nil
	}
	if err := os.WriteFile(headerPath, []byte(starterHeader), 0o644); err != nil {
		return cderrors.Wrap(err, cderrors.CategoryFileSystem, cderrors.SeverityFatal, "failed to write header file").
			WithContext("path", headerPath)
	}
	slog.Info("Wrote starter KaTeX header", logfields.Header(headerPath))
	return nil
}
