package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"studio/internal/config"
	"studio/internal/logging"
	"studio/internal/project"
	"studio/internal/repl"
	"studio/internal/server"
	"studio/internal/shell"
	_ "studio/internal/shell/commands" // register commands
)

var rootCmd = &cobra.Command{
	Use:   "studio",
	Short: "Studio is a simulated development environment",
	Long: `Studio runs an in-memory virtual filesystem with a simulated
shell and version-control command interpreter. Serve it to a browser
frontend over HTTP, or drive it directly from a terminal REPL.`,
}

func init() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the Studio HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Global
			log, err := logging.NewLogger(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			defer log.Sync()

			var gen project.Generator
			if cfg.GeneratorURL != "" {
				gen = project.NewHTTPGenerator(cfg.GeneratorURL)
			}

			srv := server.NewServer(shell.NewSessionManager(), gen, log)
			log.Info("listening", zap.String("addr", cfg.ListenAddr))
			return http.ListenAndServe(cfg.ListenAddr, srv)
		},
	}

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Run an interactive Studio shell in this terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			sm := shell.NewSessionManager()
			sess := sm.CreateSession("")
			if err := seedSession(sess); err != nil {
				return fmt.Errorf("seeding sample project: %w", err)
			}
			return repl.Run(sess)
		},
	}

	rootCmd.AddCommand(serveCmd, replCmd)
}

// seedSession gives the REPL something to explore.
func seedSession(sess *shell.Session) error {
	bfs := memfs.New()
	seed := map[string]string{
		"index.html": "<!doctype html>\n<html>\n  <body>Hello from Studio</body>\n</html>\n",
		"src/app.js": "console.log('hello');\n",
		"README.md":  "# Sample project\n",
	}
	for path, content := range seed {
		if err := util.WriteFile(bfs, path, []byte(content), 0o644); err != nil {
			return err
		}
	}
	return project.Import(sess, "sample", bfs)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
