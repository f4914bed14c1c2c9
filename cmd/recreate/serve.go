package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	recreate "github.com/hungrypc/recreate-framework"
	"github.com/hungrypc/recreate-framework/internal/treefile"
	"github.com/hungrypc/recreate-framework/pkg/sched"
)

const pageShell = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>recreate</title></head>
<body>%s</body>
</html>
`

func serveCmd() *cobra.Command {
	var (
		addr    string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "serve [tree.yaml]",
		Short: "Serve a mounted tree over HTTP",
		Long: `Serve mounts the tree description freshly on every request and responds
with the resulting HTML. Scheduler metrics are exposed on /metrics in
Prometheus format.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(verbose)

			tree := sampleTree()
			if len(args) == 1 {
				loaded, err := treefile.Load(args[0])
				if err != nil {
					return err
				}
				tree = loaded
			}

			metrics := sched.NewMetrics()

			r := chi.NewRouter()
			r.Get("/", func(w http.ResponseWriter, req *http.Request) {
				start := time.Now()
				html, err := recreate.Render(tree,
					sched.WithMetrics(metrics),
					sched.WithLogger(logger),
				)
				if err != nil {
					logger.Error("mount failed", "error", err)
					http.Error(w, err.Error(), http.StatusInternalServerError)
					return
				}
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				fmt.Fprintf(w, pageShell, html)
				logger.Debug("request served", "elapsed", time.Since(start))
			})
			r.Handle("/metrics", promhttp.Handler())

			logger.Info("listening", "addr", addr)
			server := &http.Server{
				Addr:              addr,
				Handler:           r,
				ReadHeaderTimeout: 5 * time.Second,
			}
			return server.ListenAndServe()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":3000", "Listen address")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}
